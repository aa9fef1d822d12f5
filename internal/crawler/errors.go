package crawler

import "errors"

// Engine-boundary errors. These abort a run before any network activity
// and are the only errors the discovery side surfaces directly; per-URL
// fetch failures travel as data inside model.FetchResult instead.
var (
	// ErrEmptyOrigin is returned when the origin string is empty after
	// trimming. The run aborts before any network activity.
	ErrEmptyOrigin = errors.New("invalid input: origin is empty")

	// ErrUnparsableOrigin is returned when the origin cannot be parsed
	// into an absolute URL with a scheme and host.
	ErrUnparsableOrigin = errors.New("invalid input: origin is not a valid absolute URL")

	// ErrInvalidMaxPages is returned by the bounder when the page cap is
	// not a positive integer.
	ErrInvalidMaxPages = errors.New("invalid configuration: max pages must be positive")

	// ErrHomepageUnreachable is returned when the homepage fetch fails.
	// This is the only fetch failure fatal to a run: with no origin
	// content there is nothing to classify.
	ErrHomepageUnreachable = errors.New("homepage fetch failed")
)
