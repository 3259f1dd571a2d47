// Package options is the consumer-facing facade over the compatibility
// evaluator: it annotates a step's option list with verdicts the rendering
// collaborator can display directly.
package options

import (
	"context"

	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/compat"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Option is a catalog option annotated with its compatibility verdict.
type Option struct {
	Value  string
	Label  string
	Result compat.Result
}

// Provider annotates catalog options using the evaluator.
type Provider struct {
	cat  *catalog.Catalog
	eval *compat.Evaluator
}

// NewProvider creates a provider over the given catalog and evaluator.
func NewProvider(cat *catalog.Catalog, eval *compat.Evaluator) *Provider {
	return &Provider{cat: cat, eval: eval}
}

// Annotate returns the step's options with verdicts attached, in catalog
// order. Unknown steps yield nil.
func (p *Provider) Annotate(ctx context.Context, stepID string, cfg scaffold.Config) []Option {
	step, _, ok := p.cat.ByID(stepID)
	if !ok {
		return nil
	}

	verdicts := p.eval.EvaluateBatch(ctx, stepID, step.OptionValues(), cfg)
	annotated := make([]Option, len(step.Options))
	for i, opt := range step.Options {
		annotated[i] = Option{
			Value:  opt.Value,
			Label:  opt.Label,
			Result: verdicts[opt.Value],
		}
	}
	return annotated
}

// IsCompatible returns the verdict for a single option.
func (p *Provider) IsCompatible(ctx context.Context, stepID, option string, cfg scaffold.Config) compat.Result {
	return p.eval.Evaluate(ctx, stepID, option, cfg)
}

// HasIncompatibilities re-checks every currently selected value against the
// engine, regardless of which step is active. It is the final sanity gate
// before generation, independent of per-field step validation: a selection
// made before a conflicting later choice would otherwise go unnoticed.
func (p *Provider) HasIncompatibilities(ctx context.Context, cfg scaffold.Config) bool {
	for _, step := range p.cat.Steps() {
		if step.Field == "" {
			continue
		}
		for _, value := range selectedValues(step, cfg) {
			if verdict := p.eval.Evaluate(ctx, step.ID, value, cfg); !verdict.Compatible {
				return true
			}
		}
	}
	return false
}

// selectedValues returns the currently chosen values for a step: the single
// scalar selection, or each element of a multi-select.
func selectedValues(step catalog.Step, cfg scaffold.Config) []string {
	if step.Field.IsList() {
		return cfg.List(step.Field)
	}
	if value := cfg.Value(step.Field); value != "" {
		return []string{value}
	}
	return nil
}
