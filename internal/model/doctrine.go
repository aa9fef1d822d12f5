package model

// Doctrine holds the process-wide doctrine constants: the evidence bar
// every signal must meet and the scope exclusions that keep the engine
// honest about what it is not.
//
// Design decision: Doctrine is an immutable value injected into the
// assembler and presentation layers rather than mutable global state.
// A run captures the doctrine it was produced under, so two runs can be
// compared even if the doctrine evolves between releases.
type Doctrine struct {
	// Banner is the fixed caption presented with every brief.
	Banner string

	// EvidenceBar states the minimum substantiation a signal requires.
	EvidenceBar string

	// ScopeExclusions lists what the engine deliberately does not do.
	ScopeExclusions []string
}

// DefaultDoctrine returns the engine's doctrine constants.
func DefaultDoctrine() Doctrine {
	return Doctrine{
		Banner: "Discovery-level intelligence designed to support senior QA judgment. " +
			"This system does not issue final assessments, severity ratings, or remediation " +
			"directives. Final authority rests with the human auditor.",
		EvidenceBar: "Every signal must cite the concrete pattern that produced it; " +
			"no signal may rest on page content the engine did not observe.",
		ScopeExclusions: []string{
			"No page rendering or script execution",
			"No cross-origin traversal",
			"No legal or regulatory compliance determinations",
			"No final defect verdicts",
		},
	}
}
