package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/qa-radar/qaradar/internal/model"
)

// recordStep is a test step that records its execution.
type recordStep struct {
	name     string
	err      error
	executed *[]string
}

func (s *recordStep) Name() string { return s.name }

func (s *recordStep) Do(_ context.Context, _ *model.DiscoveryRun) error {
	*s.executed = append(*s.executed, s.name)
	return s.err
}

func TestPipelineExecutesInOrder(t *testing.T) {
	t.Parallel()

	var executed []string
	p := New()
	p.AddSteps(
		&recordStep{name: "first", executed: &executed},
		&recordStep{name: "second", executed: &executed},
		&recordStep{name: "third", executed: &executed},
	)

	run := model.NewDiscoveryRun("https://example.com", "example.com")
	if err := p.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(executed) != len(want) {
		t.Fatalf("executed %d steps, want %d", len(executed), len(want))
	}
	for i, name := range want {
		if executed[i] != name {
			t.Errorf("step[%d] = %q, want %q", i, executed[i], name)
		}
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	t.Parallel()

	stepErr := errors.New("boom")
	var executed []string
	p := New()
	p.AddSteps(
		&recordStep{name: "first", executed: &executed},
		&recordStep{name: "failing", err: stepErr, executed: &executed},
		&recordStep{name: "never", executed: &executed},
	)

	run := model.NewDiscoveryRun("https://example.com", "example.com")
	err := p.Execute(context.Background(), run)
	if !errors.Is(err, stepErr) {
		t.Errorf("Execute() error = %v, want %v", err, stepErr)
	}

	for _, name := range executed {
		if name == "never" {
			t.Error("steps after a failure should not execute")
		}
	}
}

// ctxStep fails with the context error when its context is cancelled.
type ctxStep struct{ name string }

func (s *ctxStep) Name() string { return s.name }

func (s *ctxStep) Do(ctx context.Context, _ *model.DiscoveryRun) error {
	return ctx.Err()
}

func TestPipelinePropagatesStepCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var executed []string
	p := New()
	p.AddSteps(
		&ctxStep{name: "cancelled"},
		&recordStep{name: "never", executed: &executed},
	)

	run := model.NewDiscoveryRun("https://example.com", "example.com")
	err := p.Execute(ctx, run)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
	if len(executed) != 0 {
		t.Error("steps after a cancelled step should not execute")
	}
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	var executed []string
	p := New()
	p.AddSteps(
		&recordStep{name: "a", executed: &executed},
		&recordStep{name: "b", executed: &executed},
	)

	names := p.StepNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("StepNames() = %v, want [a b]", names)
	}
}
