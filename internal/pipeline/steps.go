package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/qa-radar/qaradar/internal/analyze"
	"github.com/qa-radar/qaradar/internal/brief"
	"github.com/qa-radar/qaradar/internal/crawler"
	"github.com/qa-radar/qaradar/internal/model"
	"github.com/qa-radar/qaradar/internal/score"
)

// HomepageStep fetches the origin's homepage. This is the only fetch
// whose failure aborts the run: without a homepage there is no frontier
// and no archetype, so the run has nothing to report on.
type HomepageStep struct {
	// fetcher performs the HTTP request.
	fetcher *crawler.Fetcher

	// logger for structured logging.
	logger *slog.Logger
}

// NewHomepageStep creates the homepage fetch step.
func NewHomepageStep(fetcher *crawler.Fetcher, logger *slog.Logger) *HomepageStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &HomepageStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *HomepageStep) Name() string {
	return "homepage_fetch"
}

// Do fetches the homepage and stores the result on the run.
func (s *HomepageStep) Do(ctx context.Context, run *model.DiscoveryRun) error {
	result := s.fetcher.Fetch(ctx, run.Origin)
	run.Homepage = result

	if !result.Usable() {
		return fmt.Errorf("%w: %s: %s", crawler.ErrHomepageUnreachable, run.Origin, result.Error)
	}

	s.logger.Debug("homepage fetched",
		"origin", run.Origin,
		"final_url", result.FinalURL,
		"body_size", len(result.Body),
	)
	return nil
}

// FrontierStep extracts same-origin links from the homepage and builds
// the bounded, deterministic traversal list.
type FrontierStep struct {
	logger *slog.Logger
}

// NewFrontierStep creates the frontier construction step.
func NewFrontierStep(logger *slog.Logger) *FrontierStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FrontierStep{logger: logger}
}

// Name returns the step name.
func (s *FrontierStep) Name() string {
	return "frontier_build"
}

// Do builds the frontier from the homepage fetch result.
// Link resolution uses the final URL so that a redirected homepage
// produces correctly resolved relative links.
func (s *FrontierStep) Do(_ context.Context, run *model.DiscoveryRun) error {
	links := crawler.ExtractLinks(run.Homepage.Body, run.Homepage.FinalURL)

	frontier, err := crawler.Bound(run.Origin, links, run.MaxPages)
	if err != nil {
		return err
	}
	run.Frontier = frontier

	s.logger.Debug("frontier built",
		"origin", run.Origin,
		"links_found", len(links),
		"frontier_size", len(frontier),
	)
	return nil
}

// CrawlStep fetches every frontier page beyond the homepage. Fetches
// run concurrently under a limit, but results land at their frontier
// index so downstream steps see deterministic order.
type CrawlStep struct {
	fetcher     *crawler.Fetcher
	concurrency int
	logger      *slog.Logger
}

// NewCrawlStep creates the concurrent crawl step. Concurrency values
// below one are clamped to one.
func NewCrawlStep(fetcher *crawler.Fetcher, concurrency int, logger *slog.Logger) *CrawlStep {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CrawlStep{fetcher: fetcher, concurrency: concurrency, logger: logger}
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return "crawl"
}

// Do fetches the frontier pages. Each URL is requested exactly once;
// the homepage result from the earlier step is reused, never refetched.
// Page-level fetch failures are data, not errors, and cancellation is
// data too: fetches cut short land in the results as failures so the
// run still produces a partial brief. This step never returns an error.
func (s *CrawlStep) Do(ctx context.Context, run *model.DiscoveryRun) error {
	run.Results = make([]model.FetchResult, len(run.Frontier))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, pageURL := range run.Frontier {
		if pageURL == run.Origin {
			run.Results[i] = run.Homepage
			continue
		}

		g.Go(func() error {
			// Each goroutine writes only its own index, so no mutex
			// is needed.
			run.Results[i] = s.fetcher.Fetch(ctx, pageURL)

			s.logger.Debug("page fetched",
				"url", pageURL,
				"status", run.Results[i].Status,
				"error", run.Results[i].Error,
			)
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // Goroutines never return errors

	if err := ctx.Err(); err != nil {
		s.logger.Warn("crawl cancelled, continuing with partial results",
			"origin", run.Origin,
			"reason", err,
		)
	}
	return nil
}

// AnalyzeStep turns fetch results into page records: trust-domain
// classification, signal detection, severity proposal, and the review
// prompt. Unusable fetches become fetch-error entries instead.
type AnalyzeStep struct {
	logger *slog.Logger
}

// NewAnalyzeStep creates the per-page analysis step.
func NewAnalyzeStep(logger *slog.Logger) *AnalyzeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStep{logger: logger}
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do analyzes every fetch result in frontier order. Pure CPU work, so
// it always runs to completion even when the run was cancelled; the
// partial brief is built from whatever the crawl managed to fetch.
//
// Page identity is the canonical form of the final URL after redirects.
// Classification uses that same identity, so a page redirected from
// /promo to /checkout is classified by where it landed. A fetch that
// landed on another host is out of scope; it is recorded as a fetch
// error, never as a page record, so every page record stays same-origin
// with the run.
func (s *AnalyzeStep) Do(_ context.Context, run *model.DiscoveryRun) error {
	run.Pages = make([]model.PageRecord, 0, len(run.Results))
	run.FetchErrors = make([]model.FetchError, 0)

	for _, result := range run.Results {
		if !result.Usable() {
			run.FetchErrors = append(run.FetchErrors, model.FetchError{
				URL:    result.URL,
				Status: result.Status,
				Error:  result.Error,
			})
			continue
		}

		if !crawler.SameOrigin(run.Host, result.FinalURL) {
			run.FetchErrors = append(run.FetchErrors, model.FetchError{
				URL:    result.URL,
				Status: result.Status,
				Error:  fmt.Sprintf("redirected off-origin to %s", result.FinalURL),
			})
			s.logger.Warn("page redirected off-origin",
				"url", result.URL,
				"final_url", result.FinalURL,
			)
			continue
		}

		pageURL := crawler.CanonicalizeString(result.FinalURL)
		domain := analyze.ClassifyTrustDomain(pageURL)
		signals := analyze.DetectSignals(result.Body)
		band, confidence := score.Propose(signals, run.Strict)

		run.Pages = append(run.Pages, model.PageRecord{
			URL:           pageURL,
			TrustDomain:   domain,
			Signals:       signals,
			AttentionBand: band,
			Confidence:    confidence,
			ReviewPrompt:  model.ReviewPrompt(domain),
		})

		s.logger.Debug("page analyzed",
			"url", pageURL,
			"domain", domain.String(),
			"signals", len(signals),
			"band", band.String(),
		)
	}

	return nil
}

// AssembleStep groups the page records by trust domain and produces the
// final brief.
type AssembleStep struct {
	assembler *brief.Assembler
}

// NewAssembleStep creates the brief assembly step.
func NewAssembleStep(assembler *brief.Assembler) *AssembleStep {
	return &AssembleStep{assembler: assembler}
}

// Name returns the step name.
func (s *AssembleStep) Name() string {
	return "assemble"
}

// Do assembles the brief from the accumulated run state.
func (s *AssembleStep) Do(_ context.Context, run *model.DiscoveryRun) error {
	run.Brief = s.assembler.Assemble(run.Origin, run.Pages, run.FetchErrors, run.Homepage.Body)
	return nil
}
