// Package pipeline orchestrates the discovery steps for a single
// origin: fetch the homepage, build the traversal frontier, crawl the
// remaining pages, analyze each page, and assemble the brief.
//
// Steps implement the Step interface and run in sequence over a shared
// *model.DiscoveryRun. A BatchProcessor runs independent pipelines for
// multiple origins concurrently.
package pipeline
