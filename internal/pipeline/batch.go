package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/qa-radar/qaradar/internal/model"
)

// DiscoverFunc runs a full discovery for one origin and returns its
// brief. The batch processor calls it once per origin.
type DiscoverFunc func(ctx context.Context, origin string) (*model.DiscoveryBrief, error)

// BatchResult is the outcome of one origin in a batch run. Exactly one
// of Brief and Err is set.
type BatchResult struct {
	// Origin is the origin string as supplied to the batch.
	Origin string

	// Brief is the assembled brief when discovery succeeded.
	Brief *model.DiscoveryBrief

	// Err is the failure when discovery aborted, e.g. an unreachable
	// homepage.
	Err error
}

// BatchProcessor runs discoveries for multiple origins concurrently.
//
// Design decision: a separate processor rather than batching inside
// Pipeline keeps the pipeline focused on one origin and lets the batch
// layer own concurrency and failure isolation. One origin failing never
// stops the others.
type BatchProcessor struct {
	// discover runs a single-origin discovery.
	discover DiscoverFunc

	// concurrency is the maximum number of origins in flight.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithBatchConcurrency sets the maximum number of concurrent origin
// discoveries. Default is 2: origins are independent hosts, but the
// machine running the batch is not infinitely wide.
func WithBatchConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor around a discovery function.
func NewBatchProcessor(discover DiscoverFunc, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		discover:    discover,
		concurrency: 2,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// Process discovers all origins and returns one result per origin, in
// input order. Per-origin failures are recorded in their result; the
// error return is non-nil only when the batch itself was cancelled.
func (bp *BatchProcessor) Process(ctx context.Context, origins []string) ([]BatchResult, error) {
	bp.logger.Debug("starting batch discovery",
		"origins", len(origins),
		"concurrency", bp.concurrency,
	)

	start := time.Now()
	results := make([]BatchResult, len(origins))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, origin := range origins {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = BatchResult{Origin: origin, Err: ctx.Err()}
				return ctx.Err()
			default:
			}

			brief, err := bp.discover(ctx, origin)
			results[i] = BatchResult{Origin: origin, Brief: brief, Err: err}

			if err != nil {
				bp.logger.Warn("discovery failed",
					"origin", origin,
					"error", err,
				)
			}
			// Per-origin failures stay in the result so the other
			// origins keep running.
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch discovery complete",
		"origins", len(origins),
		"elapsed", time.Since(start),
	)

	return results, err
}
