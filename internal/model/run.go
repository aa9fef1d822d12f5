package model

// DiscoveryRun is the accumulated state of one discovery run. It is
// created once per origin and threaded through the pipeline; each step
// reads what earlier steps produced and fills in its own section.
type DiscoveryRun struct {
	// Origin is the canonical origin URL, e.g. "https://example.com".
	Origin string

	// Host is the origin's host component, used for same-origin checks.
	Host string

	// Strict enables the stricter severity thresholds.
	Strict bool

	// MaxPages bounds the traversal list for this run.
	MaxPages int

	// Homepage is the homepage fetch result. The homepage fetch is the
	// only one whose failure aborts the run.
	Homepage FetchResult

	// Frontier is the bounded, deterministic traversal list, homepage
	// first. Filled by the frontier step.
	Frontier []string

	// Results holds one fetch result per frontier entry, in frontier
	// order. Filled by the crawl step.
	Results []FetchResult

	// Pages holds the per-page analysis records for usable fetches, in
	// frontier order. Filled by the analyze step.
	Pages []PageRecord

	// FetchErrors records pages that could not be fetched, were not
	// usable HTML, or redirected off-origin. Filled by the analyze step.
	FetchErrors []FetchError

	// Brief is the assembled output. Filled by the assemble step.
	Brief *DiscoveryBrief
}

// NewDiscoveryRun creates a run for the given canonical origin and host.
func NewDiscoveryRun(origin, host string) *DiscoveryRun {
	return &DiscoveryRun{
		Origin:   origin,
		Host:     host,
		MaxPages: 10,
	}
}
