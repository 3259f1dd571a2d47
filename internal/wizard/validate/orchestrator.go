package validate

import (
	"fmt"

	"github.com/zjrosen/stackforge/internal/log"
	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Result reports whether a step may be advanced past.
type Result struct {
	Valid bool
	Err   string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Err: msg}
}

// Orchestrator is the single place that combines step-local validity with
// whole-configuration consistency. The navigator's "Next" transition is
// gated on it.
type Orchestrator struct {
	cat        *catalog.Catalog
	crossRules []CrossRule
	skip       map[string]scaffold.Field
}

// New builds an orchestrator with the default cross-field rules.
func New(cat *catalog.Catalog) *Orchestrator {
	return &Orchestrator{
		cat:        cat,
		crossRules: DefaultCrossRules(),
		skip:       DefaultSkipTable(),
	}
}

// NewWithRules builds an orchestrator with a custom cross-field rule set and
// skip table. Used by tests and the lint command.
func NewWithRules(cat *catalog.Catalog, crossRules []CrossRule, skip map[string]scaffold.Field) *Orchestrator {
	return &Orchestrator{cat: cat, crossRules: crossRules, skip: skip}
}

// SkipTable exposes the (ruleID, gating field) pairs for lint.
func (o *Orchestrator) SkipTable() map[string]scaffold.Field {
	return o.skip
}

// CrossRuleIDs returns the IDs of the configured cross-field rules.
func (o *Orchestrator) CrossRuleIDs() []string {
	ids := make([]string, len(o.crossRules))
	for i, rule := range o.crossRules {
		ids[i] = rule.ID
	}
	return ids
}

// ValidateStep checks the step at the given absolute index. An unknown index
// is a caller bug and is surfaced, unlike rule-authoring defects which the
// evaluator swallows.
func (o *Orchestrator) ValidateStep(stepIndex int, cfg scaffold.Config) Result {
	step, ok := o.cat.At(stepIndex)
	if !ok {
		log.Error(log.CatValidate, "validation requested for unknown step index", "index", stepIndex)
		return invalid(fmt.Sprintf("invalid step: no step at index %d", stepIndex))
	}

	if result := o.validateField(step, cfg); !result.Valid {
		return result
	}

	return o.validateCrossField(cfg)
}

// ValidateConfig checks a whole configuration at once, as the eval command
// does for a snapshot loaded from disk. Every visible step's field validation
// runs, and the cross-field rules run without the skip table since there is
// no "not reached yet" state for a complete snapshot.
func (o *Orchestrator) ValidateConfig(cfg scaffold.Config) []Result {
	var failures []Result
	for _, step := range o.cat.Steps() {
		if step.VisibleWhen != nil && !step.VisibleWhen(cfg) {
			continue
		}
		if result := o.validateField(step, cfg); !result.Valid {
			failures = append(failures, result)
		}
	}
	for _, rule := range o.crossRules {
		if rule.Violated(cfg) {
			failures = append(failures, invalid(rule.Message(cfg)))
		}
	}
	return failures
}

// validateField runs the descriptor's own validator plus option membership
// for select kinds.
func (o *Orchestrator) validateField(step catalog.Step, cfg scaffold.Config) Result {
	switch step.Kind {
	case catalog.KindSingleSelect:
		value := cfg.Value(step.Field)
		if value != "" && !step.HasOption(value) {
			return invalid(fmt.Sprintf("%q is not a valid choice for %s", value, step.Title))
		}
	case catalog.KindMultiSelect:
		for _, value := range cfg.List(step.Field) {
			if !step.HasOption(value) {
				return invalid(fmt.Sprintf("%q is not a valid choice for %s", value, step.Title))
			}
		}
	}

	if step.Validate != nil {
		if err := step.Validate(cfg.Value(step.Field)); err != nil {
			return invalid(err.Error())
		}
	}
	return valid()
}

// validateCrossField runs the coarse whole-configuration rules, honoring the
// skip table so unreached steps never block progression.
func (o *Orchestrator) validateCrossField(cfg scaffold.Config) Result {
	for _, rule := range o.crossRules {
		if gate, gated := o.skip[rule.ID]; gated && !cfg.IsSet(gate) {
			log.Debug(log.CatValidate, "cross-field rule skipped, gating field unset", "rule", rule.ID, "field", gate)
			continue
		}
		if rule.Violated(cfg) {
			return invalid(rule.Message(cfg))
		}
	}
	return valid()
}
