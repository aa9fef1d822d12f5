// Package brief assembles analyzed pages into the DiscoveryBrief
// aggregate. Assembly is the last engine stage: after it, the brief is
// sealed and every downstream layer reads it as-is.
package brief

import (
	"time"

	"github.com/qa-radar/qaradar/internal/analyze"
	"github.com/qa-radar/qaradar/internal/model"
	"github.com/qa-radar/qaradar/internal/score"
)

// Assembler builds DiscoveryBriefs under a fixed doctrine.
type Assembler struct {
	// doctrine is the immutable doctrine value captured in every brief
	// this assembler produces.
	doctrine model.Doctrine

	// now supplies timestamps; replaceable for deterministic tests.
	now func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock replaces the timestamp source. Tests use this for
// reproducible briefs.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// NewAssembler creates an Assembler with the given doctrine.
func NewAssembler(doctrine model.Doctrine, opts ...Option) *Assembler {
	a := &Assembler{
		doctrine: doctrine,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assemble groups page records by trust domain and produces the final
// discovery record. Per-domain insertion order is preserved; domain
// groups appear in fixed presentation order, including empty ones so
// the brief's shape is stable across runs.
//
// Discovery health comes from fetch yield alone and the archetype guess
// from homepage markup alone. Neither reads signal content.
func (a *Assembler) Assemble(origin string, records []model.PageRecord, fetchErrors []model.FetchError, homepage string) *model.DiscoveryBrief {
	groups := model.GroupByDomain(records)

	if fetchErrors == nil {
		fetchErrors = make([]model.FetchError, 0)
	}

	return &model.DiscoveryBrief{
		Origin:          origin,
		DiscoveryHealth: score.DiscoveryHealth(len(records)),
		Archetype:       analyze.GuessArchetype(homepage),
		Groups:          groups,
		FetchErrors:     fetchErrors,
		Timestamp:       a.now(),
		Doctrine:        a.doctrine,
	}
}
