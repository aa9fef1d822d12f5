// Package score turns detected signals into a confidence-capped
// attention band and rates crawl yield as discovery health.
//
// The proposer is a two-stage pipeline kept deliberately separate:
// RawBand proposes from signal count, CapBand lowers the proposal to
// the ceiling its aggregate confidence supports. The cap guarantees the
// engine cannot present high alarm from low-confidence evidence,
// whatever the counting logic evolves into.
package score
