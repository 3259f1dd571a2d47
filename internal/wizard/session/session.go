// Package session wires one wizard run together: a configuration store, a
// compatibility evaluator, a navigator, and the validation orchestrator.
// Each session owns its own evaluator and caches, so parallel sessions and
// test suites cannot interfere through shared state.
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/zjrosen/stackforge/internal/log"
	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/compat"
	"github.com/zjrosen/stackforge/internal/wizard/navigator"
	"github.com/zjrosen/stackforge/internal/wizard/options"
	"github.com/zjrosen/stackforge/internal/wizard/rules"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
	"github.com/zjrosen/stackforge/internal/wizard/validate"
)

// Session is a single wizard run over the default catalog and rule set.
type Session struct {
	id       uuid.UUID
	store    *scaffold.Store
	cat      *catalog.Catalog
	nav      *navigator.Navigator
	eval     *compat.Evaluator
	orch     *validate.Orchestrator
	provider *options.Provider
	current  int
}

// New creates a session over the default catalog and rules.
func New(cfg compat.Config) *Session {
	return NewWith(catalog.Default(), rules.Default(), cfg)
}

// NewWith creates a session over a custom catalog and registry.
func NewWith(cat *catalog.Catalog, registry *rules.Registry, cfg compat.Config) *Session {
	s := &Session{
		id:    uuid.New(),
		store: scaffold.NewStore(),
		cat:   cat,
		eval:  compat.NewEvaluator(registry, cfg),
		orch:  validate.New(cat),
	}
	s.nav = navigator.New(cat)
	s.provider = options.NewProvider(cat, s.eval)
	s.current = s.nav.FirstVisibleIndex(s.store.Snapshot())

	// Invalidation must complete inside the mutation, so the very next
	// evaluation observes consistent verdicts.
	s.store.OnChange(func(change scaffold.Change) {
		s.eval.Invalidate(context.Background())
		s.ensureVisible()
	})

	log.Info(log.CatSession, "wizard session started", "id", s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Snapshot returns the current configuration.
func (s *Session) Snapshot() scaffold.Config {
	return s.store.Snapshot()
}

// Set assigns a scalar field.
func (s *Session) Set(f scaffold.Field, value string) {
	s.store.Set(f, value)
}

// SetList assigns a multi-select field.
func (s *Session) SetList(f scaffold.Field, values []string) {
	s.store.SetList(f, values)
}

// Replace swaps in a whole configuration, as the eval CLI does when loading
// a snapshot from disk.
func (s *Session) Replace(cfg scaffold.Config) {
	s.store.Replace(cfg)
}

// CurrentIndex returns the absolute index of the active step.
func (s *Session) CurrentIndex() int {
	return s.current
}

// CurrentStep returns the active step descriptor.
func (s *Session) CurrentStep() (catalog.Step, bool) {
	return s.cat.At(s.current)
}

// VisibleSteps returns the steps the user can currently navigate through.
func (s *Session) VisibleSteps() []catalog.Step {
	return s.nav.VisibleSteps(s.store.Snapshot())
}

// Progress returns the active step's visible rank and the visible total.
func (s *Session) Progress() (rank, total int) {
	cfg := s.store.Snapshot()
	return s.nav.VisibleIndex(s.current, cfg), len(s.nav.VisibleSteps(cfg))
}

// ValidateCurrent gates the active step without moving.
func (s *Session) ValidateCurrent() validate.Result {
	return s.orch.ValidateStep(s.current, s.store.Snapshot())
}

// ValidateAll checks the whole configuration, including cross-field rules
// that in-wizard progression defers until their step is reached.
func (s *Session) ValidateAll() []validate.Result {
	return s.orch.ValidateConfig(s.store.Snapshot())
}

// Advance validates the active step and, on success, moves to the next
// visible step. Returns the validation result and whether the session moved;
// a valid result with moved == false means the last step was reached.
func (s *Session) Advance(ctx context.Context) (validate.Result, bool) {
	cfg := s.store.Snapshot()
	result := s.orch.ValidateStep(s.current, cfg)
	if !result.Valid {
		log.Debug(log.CatSession, "advance blocked by validation", "step", s.current, "error", result.Err)
		return result, false
	}

	next := s.nav.NextVisibleIndex(s.current, cfg)
	if next == navigator.None {
		return result, false
	}
	s.current = next
	log.Debug(log.CatSession, "advanced", "step", s.current)
	return result, true
}

// Retreat moves to the previous visible step. Returns false at the start.
func (s *Session) Retreat() bool {
	prev := s.nav.PrevVisibleIndex(s.current, s.store.Snapshot())
	if prev == navigator.None {
		return false
	}
	s.current = prev
	return true
}

// Options annotates the active step's options with compatibility verdicts.
func (s *Session) Options(ctx context.Context) []options.Option {
	step, ok := s.CurrentStep()
	if !ok {
		return nil
	}
	return s.provider.Annotate(ctx, step.ID, s.store.Snapshot())
}

// SummaryItem pairs a visible value-bearing step with its selection.
type SummaryItem struct {
	StepID string
	Title  string
	Value  string
}

// Summary lists every visible step that carries a field together with its
// current value, in step order. Unanswered steps appear with an empty value.
func (s *Session) Summary() []SummaryItem {
	cfg := s.store.Snapshot()
	var items []SummaryItem
	for _, step := range s.nav.VisibleSteps(cfg) {
		if step.Field == "" {
			continue
		}
		items = append(items, SummaryItem{
			StepID: step.ID,
			Title:  step.Title,
			Value:  cfg.Value(step.Field),
		})
	}
	return items
}

// HasIncompatibilities re-checks every selected value against the engine.
func (s *Session) HasIncompatibilities(ctx context.Context) bool {
	return s.provider.HasIncompatibilities(ctx, s.store.Snapshot())
}

// EvaluatorStats exposes cache counters for the eval CLI's summary output.
func (s *Session) EvaluatorStats() compat.Stats {
	return s.eval.Stats()
}

// Provider returns the option annotation facade.
func (s *Session) Provider() *options.Provider {
	return s.provider
}

// ensureVisible snaps the active step back to the nearest visible one after
// a mutation hides it, so navigation never points at a hidden step.
func (s *Session) ensureVisible() {
	cfg := s.store.Snapshot()
	if s.nav.VisibleIndex(s.current, cfg) != navigator.None {
		return
	}
	if prev := s.nav.PrevVisibleIndex(s.current, cfg); prev != navigator.None {
		s.current = prev
		return
	}
	s.current = s.nav.FirstVisibleIndex(cfg)
}
