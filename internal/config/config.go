package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultMaxPages bounds the traversal list per origin. Ten pages is
	// enough to cover a homepage plus its primary trust surfaces
	// without the crawl turning into a site mirror.
	DefaultMaxPages = 10

	// DefaultTimeout is the per-request timeout. Public origins that
	// cannot answer within ten seconds are recorded as fetch failures
	// rather than stalling the run.
	DefaultTimeout = 10 * time.Second

	// DefaultConcurrency caps parallel fetches beyond the homepage.
	// Four keeps the crawl polite toward a single origin while still
	// finishing a ten-page frontier quickly.
	DefaultConcurrency = 4

	// DefaultRequestsPerSecond is the politeness ceiling per origin.
	DefaultRequestsPerSecond = 2.0

	// DefaultMaxBodySize caps response bodies at 2MB.
	DefaultMaxBodySize = 2 * 1024 * 1024

	// AppName is used for XDG directory paths.
	AppName = "qaradar"
)

// Config holds all options for a discovery run.
//
// Design decision: a single flat struct, populated once from CLI flags
// and a config file, then treated as read-only. The option count is
// small enough that nested sub-structs would add noise, not clarity.
type Config struct {
	// Origins are the raw origin strings to discover, as supplied on
	// the command line. Normalization happens inside the engine.
	Origins []string

	// MaxPages is the traversal cap per origin. Must be positive.
	MaxPages int

	// StrictMode enables the stricter raw-band thresholds in the
	// severity proposer.
	StrictMode bool

	// Timeout is the per-request fetch timeout.
	Timeout time.Duration

	// Concurrency caps parallel fetches beyond the homepage.
	Concurrency int

	// RequestsPerSecond is the politeness rate limit per origin.
	// Zero disables limiting.
	RequestsPerSecond float64

	// UserAgent overrides the fetcher's User-Agent when non-empty.
	UserAgent string

	// MaxBodySize caps response bodies in bytes. Zero means default.
	MaxBodySize int64

	// Verbose switches logging from warnings to debug.
	Verbose bool

	// JSONReport selects JSON output. Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with
	// JSONReport.
	MarkdownReport bool

	// ReportFile, when set, writes the report there instead of stdout.
	ReportFile string

	// ConfigFilePath is an explicit config file location. Empty means
	// search the default locations.
	ConfigFilePath string

	// OriginConfigs holds per-origin overrides from the config file.
	OriginConfigs *File

	// DBDir is the directory for the run-history database. Empty
	// disables persistence.
	DBDir string

	// SaveHistory records the brief in the history database when true.
	SaveHistory bool
}

// NewConfig returns a Config with all defaults applied.
func NewConfig() *Config {
	return &Config{
		MaxPages:          DefaultMaxPages,
		Timeout:           DefaultTimeout,
		Concurrency:       DefaultConcurrency,
		RequestsPerSecond: DefaultRequestsPerSecond,
		MaxBodySize:       DefaultMaxBodySize,
	}
}

// XDGDataDir returns the XDG data directory for qaradar
// (~/.local/share/qaradar on Linux).
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks the configuration and returns the first problem
// found. It is called once after CLI parsing, before any network
// activity.
func (c *Config) Validate() error {
	if len(c.Origins) == 0 {
		return ErrNoOrigin
	}
	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// ForOrigin returns the effective settings for one origin, with config
// file overrides applied on top of the CLI-level values.
func (c *Config) ForOrigin(origin string) (maxPages int, strict bool, userAgent string) {
	maxPages, strict, userAgent = c.MaxPages, c.StrictMode, c.UserAgent

	if c.OriginConfigs == nil {
		return maxPages, strict, userAgent
	}

	apply := func(oc OriginConfig) {
		if oc.MaxPages > 0 {
			maxPages = oc.MaxPages
		}
		if oc.Strict != nil {
			strict = *oc.Strict
		}
		if oc.UserAgent != "" {
			userAgent = oc.UserAgent
		}
	}

	apply(c.OriginConfigs.Defaults)
	if oc, ok := c.OriginConfigs.Origins[origin]; ok {
		apply(oc)
	}
	return maxPages, strict, userAgent
}
