package model

// FetchResult is the outcome of exactly one bounded HTTP GET.
// One instance exists per attempted URL; the engine never retries, so a
// FetchResult is immutable once produced.
type FetchResult struct {
	// URL is the canonical URL that was requested.
	URL string `json:"url"`

	// FinalURL is the URL after redirects resolved. Callers must use
	// this, not URL, for all subsequent identity decisions.
	FinalURL string `json:"final_url"`

	// Status is the HTTP status code, or 0 when the request never
	// produced a response (timeout, connection failure).
	Status int `json:"status"`

	// Body is the response body. Non-empty only when Status is 200 and
	// the content was classified as HTML.
	Body string `json:"-"`

	// Error is a descriptive failure string. Empty on success. Fetch
	// failures are data, not Go errors: they are recorded in the brief
	// and never abort the run (homepage excepted).
	Error string `json:"error,omitempty"`
}

// Usable reports whether the fetch yielded HTML content worth analyzing.
func (f FetchResult) Usable() bool {
	return f.Error == "" && f.Status == 200 && f.Body != ""
}

// FetchError is the serialized form of a failed fetch, carried in the
// DiscoveryBrief so reviewers can see what the crawl could not reach.
type FetchError struct {
	// URL is the canonical URL that failed.
	URL string `json:"url"`

	// Status is the HTTP status code, or 0 for network-level failures.
	Status int `json:"status"`

	// Error describes the failure.
	Error string `json:"error"`
}
