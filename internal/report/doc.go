// Package report renders discovery briefs in three formats: plain text
// for the terminal, JSON for tool integration, and Markdown for
// documentation and sharing.
//
// Writers are pure renderers. Bands, confidences, and health were all
// decided upstream; nothing in this package recomputes them.
package report
