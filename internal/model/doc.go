// Package model defines the data structures shared across the QA Radar
// discovery engine: trust domains, evidence-backed signals, attention
// bands, fetch results, and the DiscoveryBrief aggregate that every
// consumer layer reads.
//
// All values in this package are immutable once produced. The engine
// builds them exactly once per run; presentation and persistence layers
// treat them as sealed and must not re-derive bands or confidence.
package model
