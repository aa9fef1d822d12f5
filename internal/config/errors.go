package config

import "errors"

// Configuration validation errors. Package-level sentinels so callers
// can branch with errors.Is while still getting readable messages.
var (
	// ErrNoOrigin is returned when no origin was supplied.
	ErrNoOrigin = errors.New("no origin specified: provide at least one website origin")

	// ErrInvalidMaxPages is returned when the page cap is not positive.
	ErrInvalidMaxPages = errors.New("invalid configuration: max pages must be a positive integer")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid configuration: timeout must be positive")

	// ErrInvalidConcurrency is returned when the fetch concurrency is
	// not positive.
	ErrInvalidConcurrency = errors.New("invalid configuration: concurrency must be positive")

	// ErrInvalidMaxBodySize is returned when the body cap is negative.
	ErrInvalidMaxBodySize = errors.New("invalid configuration: max body size must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are requested.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
