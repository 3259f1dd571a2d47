package compat

import (
	"context"
	"fmt"
	"maps"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/stackforge/internal/cachemanager"
	"github.com/zjrosen/stackforge/internal/log"
	"github.com/zjrosen/stackforge/internal/wizard/rules"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Performance budgets. Exceeding one logs a developer-facing warning; it
// never fails the evaluation.
const (
	optionBudget = 50 * time.Millisecond
	batchBudget  = 100 * time.Millisecond
)

// Config tunes one evaluator instance.
type Config struct {
	// TTL bounds how long cached verdicts live. Invalidation on
	// configuration change is what actually keeps verdicts fresh; the TTL
	// is a backstop for sessions left idle.
	TTL time.Duration

	// SkipCache disables both cache levels. Used by watch-mode re-runs.
	SkipCache bool

	// Tracer emits a span per fresh evaluation. Nil disables tracing.
	Tracer trace.Tracer
}

// DefaultConfig returns the evaluator defaults.
func DefaultConfig() Config {
	return Config{TTL: cachemanager.DefaultExpiration}
}

// Stats counts cache and evaluation activity for one evaluator.
type Stats struct {
	OptionHits    int
	OptionMisses  int
	StepHits      int
	StepMisses    int
	Evaluations   int
	Faults        int
	Invalidations int
}

// Evaluator owns the rule registry view, the two cache levels, and the
// fail-open policy. Each wizard session gets its own instance so tests and
// concurrent sessions cannot interfere through shared state.
type Evaluator struct {
	registry    *rules.Registry
	allow       []scaffold.Field
	cfg         Config
	optionCache *cachemanager.InMemoryCacheManager[string, Result]
	stepCache   *cachemanager.InMemoryCacheManager[string, map[string]Result]
	stats       Stats
}

// NewEvaluator builds an evaluator over the given registry. The fingerprint
// allowlist is computed from the registry's declared reads, never
// hand-maintained.
func NewEvaluator(registry *rules.Registry, cfg Config) *Evaluator {
	if cfg.TTL <= 0 {
		cfg.TTL = cachemanager.DefaultExpiration
	}
	return &Evaluator{
		registry:    registry,
		allow:       registry.ReadSet(),
		cfg:         cfg,
		optionCache: cachemanager.NewInMemoryCacheManager[string, Result]("compat-option", cfg.TTL, cachemanager.DefaultCleanupInterval),
		stepCache:   cachemanager.NewInMemoryCacheManager[string, map[string]Result]("compat-step", cfg.TTL, cachemanager.DefaultCleanupInterval),
	}
}

// Allowlist returns the fields the fingerprint is derived from.
func (e *Evaluator) Allowlist() []scaffold.Field {
	return e.allow
}

// Stats returns a copy of the activity counters.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

// Evaluate returns the compatibility verdict for one option. It never
// returns an error and never panics: every internal failure degrades to a
// compatible verdict, logged for developers.
func (e *Evaluator) Evaluate(ctx context.Context, stepID, option string, cfg scaffold.Config) Result {
	fp := scaffold.Fingerprint(cfg, e.allow)
	return e.evaluate(ctx, fp, stepID, option, cfg)
}

// EvaluateBatch evaluates every supplied option for a step as one cached
// unit, so a re-render can fetch a whole step without re-deriving the
// fingerprint or rescanning rules per option.
func (e *Evaluator) EvaluateBatch(ctx context.Context, stepID string, options []string, cfg scaffold.Config) map[string]Result {
	fp := scaffold.Fingerprint(cfg, e.allow)
	key := fp + "|" + stepID

	if !e.cfg.SkipCache {
		if cached, ok := e.stepCache.Get(ctx, key); ok {
			e.stats.StepHits++
			// Hand out a copy so a caller mutating the map cannot
			// poison the cached verdicts behind it.
			return maps.Clone(cached)
		}
	}
	e.stats.StepMisses++

	start := time.Now()
	results := make(map[string]Result, len(options))
	for _, option := range options {
		results[option] = e.evaluate(ctx, fp, stepID, option, cfg)
	}
	if elapsed := time.Since(start); elapsed > batchBudget {
		log.Warn(log.CatEval, "step batch exceeded budget", "step", stepID, "options", len(options), "elapsed", elapsed)
	}

	if !e.cfg.SkipCache {
		e.stepCache.Set(ctx, key, maps.Clone(results), e.cfg.TTL)
	}
	return results
}

// Invalidate clears both cache levels wholesale. Partial invalidation is
// deliberately unsupported: any allow-listed field change may flip any
// cached verdict.
func (e *Evaluator) Invalidate(ctx context.Context) {
	_ = e.optionCache.Flush(ctx)
	_ = e.stepCache.Flush(ctx)
	e.stats.Invalidations++
	log.Debug(log.CatCache, "evaluator caches invalidated")
}

func (e *Evaluator) evaluate(ctx context.Context, fp, stepID, option string, cfg scaffold.Config) (result Result) {
	var span trace.Span

	// Outer supervisor: no failure in here may reach the caller. A broken
	// rule costs at worst one wrongly-enabled option, recoverable at
	// generation time; a panic would strand the user mid-wizard. The span
	// closes here, after recovery, so it records the verdict the caller
	// actually receives.
	defer func() {
		if r := recover(); r != nil {
			e.stats.Faults++
			log.Error(log.CatEval, "evaluation panic, failing open", "step", stepID, "option", option, "panic", fmt.Sprintf("%v", r))
			result = compatible
		}
		if span != nil {
			span.SetAttributes(attribute.Bool("result.compatible", result.Compatible))
			span.End()
		}
	}()

	key := fp + "|" + stepID + "|" + option
	if !e.cfg.SkipCache {
		if cached, ok := e.optionCache.Get(ctx, key); ok {
			e.stats.OptionHits++
			return cached
		}
	}
	e.stats.OptionMisses++

	if e.cfg.Tracer != nil {
		ctx, span = e.cfg.Tracer.Start(ctx, "compat.evaluate", trace.WithSpanKind(trace.SpanKindInternal))
		span.SetAttributes(
			attribute.String("step.id", stepID),
			attribute.String("option.value", option),
		)
	}

	start := time.Now()
	result = e.compute(stepID, option, cfg)
	if elapsed := time.Since(start); elapsed > optionBudget {
		log.Warn(log.CatEval, "option evaluation exceeded budget", "step", stepID, "option", option, "elapsed", elapsed)
	}

	if !e.cfg.SkipCache {
		e.optionCache.Set(ctx, key, result, e.cfg.TTL)
	}
	e.stats.Evaluations++
	return result
}

func (e *Evaluator) compute(stepID, option string, cfg scaffold.Config) Result {
	matched := e.registry.ForTarget(stepID, option)
	if len(matched) == 0 {
		// Open world: undeclared means allowed.
		return compatible
	}

	triggered := make([]rules.Rule, 0, len(matched))
	for _, rule := range matched {
		outcome := runPredicate(rule, cfg)
		if outcome.fault != nil {
			// Fail open per rule: a defective predicate is treated as
			// not triggered and the remaining rules still run.
			e.stats.Faults++
			log.ErrorErr(log.CatRules, "rule predicate fault, treating as not triggered", outcome.fault, "rule", rule.ID)
			continue
		}
		if outcome.triggered {
			triggered = append(triggered, rule)
		}
	}

	if len(triggered) == 0 {
		return compatible
	}

	// ForTarget returns priority order, so the first match supplies the
	// user-facing reason.
	first := triggered[0]
	reason := FallbackReason
	if msg := runMessage(first, cfg); msg.fault != nil {
		e.stats.Faults++
		log.ErrorErr(log.CatRules, "rule message fault, using fallback", msg.fault, "rule", first.ID)
	} else {
		reason = msg.text
	}

	return Result{
		Compatible:       false,
		Reason:           reason,
		ConflictingField: first.ConflictingField,
		ConflictingValue: cfg.Value(first.ConflictingField),
	}
}
