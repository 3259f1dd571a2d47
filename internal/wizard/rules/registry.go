package rules

import (
	"errors"
	"slices"
	"sort"

	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Registry errors
var (
	ErrDuplicateID  = errors.New("duplicate rule id")
	ErrEmptyID      = errors.New("rule id cannot be empty")
	ErrEmptyTarget  = errors.New("rule target step and option cannot be empty")
	ErrNilPredicate = errors.New("rule predicate cannot be nil")
)

// Registry holds an ordered, immutable collection of compatibility rules.
type Registry struct {
	rules []Rule
}

// NewRegistry builds a registry from the given rules, validating each.
// Registration order is preserved and breaks priority ties.
func NewRegistry(rules ...Rule) (*Registry, error) {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			return nil, ErrEmptyID
		}
		if seen[r.ID] {
			return nil, ErrDuplicateID
		}
		if r.TargetStep == "" || r.TargetOption == "" {
			return nil, ErrEmptyTarget
		}
		if r.Incompatible == nil {
			return nil, ErrNilPredicate
		}
		seen[r.ID] = true
	}
	return &Registry{rules: slices.Clone(rules)}, nil
}

// All returns every rule in registration order.
func (r *Registry) All() []Rule {
	return r.rules
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// ForTarget returns the rules scoped to (step, option), sorted by priority
// with registration order as the stable tie-break.
func (r *Registry) ForTarget(step, option string) []Rule {
	matched := make([]Rule, 0)
	for _, rule := range r.rules {
		if rule.TargetStep == step && rule.TargetOption == option {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})
	return matched
}

// ReadSet returns the sorted union of every rule's declared reads. This is
// the fingerprint allowlist: the exact set of fields whose mutation must
// invalidate cached verdicts.
func (r *Registry) ReadSet() []scaffold.Field {
	set := make(map[scaffold.Field]bool)
	for _, rule := range r.rules {
		for _, f := range rule.Reads {
			set[f] = true
		}
	}
	fields := make([]scaffold.Field, 0, len(set))
	for f := range set {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}
