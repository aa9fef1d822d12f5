package score

import "github.com/qa-radar/qaradar/internal/model"

// Discovery-health thresholds on successfully fetched pages.
const (
	healthHighThreshold   = 6
	healthMediumThreshold = 2
)

// DiscoveryHealth rates crawl yield. It is purely a function of how
// many pages were fetched successfully. Visibility and risk are kept
// orthogonal, so no signal content ever feeds in here.
func DiscoveryHealth(fetchedPages int) model.DiscoveryHealth {
	switch {
	case fetchedPages >= healthHighThreshold:
		return model.HealthHigh
	case fetchedPages >= healthMediumThreshold:
		return model.HealthMedium
	default:
		return model.HealthLimited
	}
}
