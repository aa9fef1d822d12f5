// Package crawler implements the discovery side of the engine: origin
// normalization, canonical URL identity, the single-shot bounded
// Fetcher, same-origin link extraction, and the frontier bounder that
// turns extracted links into an ordered, capped traversal list.
//
// The package performs no analysis. It only decides what the engine is
// allowed to look at and fetches it politely, exactly once per URL.
package crawler
