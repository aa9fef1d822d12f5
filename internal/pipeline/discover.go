package pipeline

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/qa-radar/qaradar/internal/brief"
	"github.com/qa-radar/qaradar/internal/crawler"
	"github.com/qa-radar/qaradar/internal/model"
)

// Discovery wires the standard steps into a ready-to-run pipeline for
// single origins. It is the programmatic entry point the CLI uses.
type Discovery struct {
	// fetcher performs all HTTP requests for the run.
	fetcher *crawler.Fetcher

	// assembler produces the final brief.
	assembler *brief.Assembler

	// maxPages bounds the traversal list.
	maxPages int

	// strict enables the stricter severity thresholds.
	strict bool

	// concurrency caps parallel page fetches.
	concurrency int

	// logger is shared by all steps.
	logger *slog.Logger
}

// DiscoveryOption configures a Discovery.
type DiscoveryOption func(*Discovery)

// WithFetcher replaces the default fetcher.
func WithFetcher(fetcher *crawler.Fetcher) DiscoveryOption {
	return func(d *Discovery) {
		d.fetcher = fetcher
	}
}

// WithMaxPages sets the traversal cap. Values below one keep the default.
func WithMaxPages(n int) DiscoveryOption {
	return func(d *Discovery) {
		if n > 0 {
			d.maxPages = n
		}
	}
}

// WithStrict enables strict severity thresholds.
func WithStrict(strict bool) DiscoveryOption {
	return func(d *Discovery) {
		d.strict = strict
	}
}

// WithConcurrency sets the page fetch concurrency.
func WithConcurrency(n int) DiscoveryOption {
	return func(d *Discovery) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithDiscoveryLogger sets the logger shared by all steps.
func WithDiscoveryLogger(logger *slog.Logger) DiscoveryOption {
	return func(d *Discovery) {
		d.logger = logger
	}
}

// NewDiscovery creates a Discovery with the given doctrine and options.
func NewDiscovery(doctrine model.Doctrine, opts ...DiscoveryOption) *Discovery {
	d := &Discovery{
		assembler:   brief.NewAssembler(doctrine),
		maxPages:    10,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.fetcher == nil {
		d.fetcher = crawler.NewFetcher(10 * time.Second)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// Run discovers one origin end to end and returns its brief.
//
// The raw origin is normalized first; a string that cannot be made into
// an absolute URL fails before any network access. After that the only
// fatal fetch is the homepage.
func (d *Discovery) Run(ctx context.Context, rawOrigin string) (*model.DiscoveryBrief, error) {
	origin, err := crawler.NormalizeOrigin(rawOrigin)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(origin)
	if err != nil {
		return nil, err
	}

	run := model.NewDiscoveryRun(origin, u.Host)
	run.Strict = d.strict
	run.MaxPages = d.maxPages

	p := New(WithLogger(d.logger))
	p.AddSteps(
		NewHomepageStep(d.fetcher, d.logger),
		NewFrontierStep(d.logger),
		NewCrawlStep(d.fetcher, d.concurrency, d.logger),
		NewAnalyzeStep(d.logger),
		NewAssembleStep(d.assembler),
	)

	if err := p.Execute(ctx, run); err != nil {
		return nil, err
	}

	return run.Brief, nil
}
