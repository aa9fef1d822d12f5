package model

// EvidenceType classifies how a signal was substantiated.
type EvidenceType int

const (
	// EvidenceDirectObservation means the indicator was seen verbatim in
	// the page markup.
	EvidenceDirectObservation EvidenceType = iota

	// EvidencePatternConsistency means the indicator is a recurring
	// pattern rather than a single concrete observation.
	EvidencePatternConsistency

	// EvidenceUserImpactPath means the indicator sits on a path a user
	// would follow when something goes wrong.
	EvidenceUserImpactPath

	// EvidenceProfessionalInference means the indicator rests on
	// grounded professional judgment rather than direct markup evidence.
	EvidenceProfessionalInference
)

// String returns the serialized evidence type name.
func (e EvidenceType) String() string {
	switch e {
	case EvidenceDirectObservation:
		return "Direct Observation"
	case EvidencePatternConsistency:
		return "Pattern Consistency"
	case EvidenceUserImpactPath:
		return "Clear User Impact Path"
	case EvidenceProfessionalInference:
		return "Grounded Professional Inference"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e EvidenceType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// decode as EvidenceDirectObservation.
func (e *EvidenceType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Pattern Consistency":
		*e = EvidencePatternConsistency
	case "Clear User Impact Path":
		*e = EvidenceUserImpactPath
	case "Grounded Professional Inference":
		*e = EvidenceProfessionalInference
	default:
		*e = EvidenceDirectObservation
	}
	return nil
}

// Signal is a single evidence-backed risk indicator extracted from page
// markup. Signals are immutable values: the detector produces them with
// the rule's fixed evidence type and confidence, and nothing downstream
// modifies them.
type Signal struct {
	// Description is a short statement of the indicator.
	Description string `json:"description"`

	// EvidenceType classifies how the indicator was substantiated.
	EvidenceType EvidenceType `json:"evidence_type"`

	// Rationale explains why the indicator warrants reviewer attention.
	Rationale string `json:"rationale"`

	// Confidence is the rule's static confidence level. It reflects how
	// directly the pattern implies the stated concern, not how many
	// times the pattern appeared on the page.
	Confidence Confidence `json:"confidence"`
}
