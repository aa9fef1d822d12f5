package model

// AttentionBand is an indicative, confidence-capped severity proxy.
// It is explicitly not a final defect severity: Critical is reserved
// for human escalation and is never assigned by the engine itself.
//
// Design decision: We use iota-based constants rather than strings so
// bands are ordered and comparable (the cap rule lowers a band by
// comparison). String() provides the serialized form.
type AttentionBand int

const (
	// BandLow indicates no or weak indicator evidence.
	BandLow AttentionBand = iota

	// BandMedium indicates a cluster of indicators worth a closer look.
	BandMedium

	// BandHigh indicates a dense cluster of indicators, only reachable
	// in strict mode and only with sufficient aggregate confidence.
	BandHigh

	// BandCritical is reserved for explicit human escalation.
	// The proposer never emits it; it exists so reviewers can record
	// escalations against the same scale.
	BandCritical
)

// String returns the serialized attention band name.
func (b AttentionBand) String() string {
	switch b {
	case BandLow:
		return "Low"
	case BandMedium:
		return "Medium"
	case BandHigh:
		return "High"
	case BandCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so bands serialize as
// their names in JSON output.
func (b AttentionBand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText. Unknown names decode as BandLow.
func (b *AttentionBand) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Medium":
		*b = BandMedium
	case "High":
		*b = BandHigh
	case "Critical":
		*b = BandCritical
	default:
		*b = BandLow
	}
	return nil
}

// Confidence expresses how directly a pattern implies the stated
// concern. It is a static property of a detection rule, not of the page
// it matched on.
type Confidence int

const (
	// ConfidenceLow marks inferential signals with a loose link to the
	// concern they describe.
	ConfidenceLow Confidence = iota

	// ConfidenceModerate marks signals with a plausible but indirect
	// link to the concern.
	ConfidenceModerate

	// ConfidenceHigh marks directly observed evidence.
	ConfidenceHigh
)

// String returns the serialized confidence name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "Low"
	case ConfidenceModerate:
		return "Moderate"
	case ConfidenceHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// decode as ConfidenceLow.
func (c *Confidence) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Moderate":
		*c = ConfidenceModerate
	case "High":
		*c = ConfidenceHigh
	default:
		*c = ConfidenceLow
	}
	return nil
}

// MaxBand returns the highest attention band this confidence level may
// support. This is the ceiling table behind the cap rule: the engine
// must never present high alarm from low-confidence evidence.
//
//	Low      -> Medium
//	Moderate -> High
//	High     -> Critical (no cap below Critical)
func (c Confidence) MaxBand() AttentionBand {
	switch c {
	case ConfidenceLow:
		return BandMedium
	case ConfidenceModerate:
		return BandHigh
	default:
		return BandCritical
	}
}
