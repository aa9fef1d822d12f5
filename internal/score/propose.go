package score

import "github.com/qa-radar/qaradar/internal/model"

// Propose aggregates a page's signals into an attention band and the
// overall confidence backing it.
//
// A page with no signals scores (Low, High): the absence of evidence
// is itself a high-confidence observation. Otherwise the raw band is
// chosen from signal count, then lowered to the ceiling the aggregate
// confidence supports. Critical is never produced here; it is reserved
// for explicit human escalation.
func Propose(signals []model.Signal, strict bool) (model.AttentionBand, model.Confidence) {
	if len(signals) == 0 {
		return model.BandLow, model.ConfidenceHigh
	}

	confidence := OverallConfidence(signals)
	raw := RawBand(len(signals), strict)
	return CapBand(raw, confidence), confidence
}

// OverallConfidence is the maximum individual confidence among the
// signals. Aggregation is optimistic: one directly observed signal
// lifts the whole page's confidence.
func OverallConfidence(signals []model.Signal) model.Confidence {
	overall := model.ConfidenceLow
	for _, s := range signals {
		if s.Confidence > overall {
			overall = s.Confidence
		}
	}
	return overall
}

// RawBand proposes a band from signal count alone, before capping.
//
// Non-strict mode never escalates past Medium, the conservative
// default for discovery output headed to a human reviewer. Strict mode
// allows High for dense signal clusters. Neither mode emits Critical.
func RawBand(count int, strict bool) model.AttentionBand {
	if strict {
		switch {
		case count >= 4:
			return model.BandHigh
		case count >= 2:
			return model.BandMedium
		default:
			return model.BandLow
		}
	}

	if count >= 3 {
		return model.BandMedium
	}
	return model.BandLow
}

// CapBand lowers a raw band to the highest band within the confidence
// ceiling. Bands already at or below the ceiling pass through.
func CapBand(raw model.AttentionBand, confidence model.Confidence) model.AttentionBand {
	if ceiling := confidence.MaxBand(); raw > ceiling {
		return ceiling
	}
	return raw
}
