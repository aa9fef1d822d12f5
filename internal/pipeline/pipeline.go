package pipeline

import (
	"context"
	"log/slog"

	"github.com/qa-radar/qaradar/internal/model"
)

// Step defines the interface that all pipeline steps implement.
// Steps execute in sequence, each reading and extending the run state
// produced by the ones before it.
//
// Design decision: an interface rather than function types because
// steps carry configuration (fetcher, limits, logger) and a Name()
// method keeps logging uniform.
type Step interface {
	// Do executes the pipeline step. A returned error aborts the run;
	// recoverable page-level problems are recorded on the run instead.
	Do(ctx context.Context, run *model.DiscoveryRun) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes an ordered list of steps over one discovery run.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options.
// Steps are added with AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence.
//
// Each step owns its response to cancellation: the network-bound steps
// degrade to recorded fetch failures so a cancelled run still yields a
// partial brief from whatever completed, while the analysis steps are
// cheap and always finish. The first step error aborts the run and is
// returned to the caller.
func (p *Pipeline) Execute(ctx context.Context, run *model.DiscoveryRun) error {
	for _, step := range p.steps {
		p.logger.Debug("executing step",
			"step", step.Name(),
			"origin", run.Origin,
		)

		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"origin", run.Origin,
				"error", err,
			)
			return err
		}
	}

	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
