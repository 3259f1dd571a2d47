// Package rules defines declarative compatibility rules and the ordered
// registry the evaluator consumes. A rule is scoped to one (step, option)
// pair and flags that option incompatible with the wider configuration.
package rules

import (
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Rule declares when a single option conflicts with the current configuration.
type Rule struct {
	// ID uniquely identifies the rule for lint output and diagnostics.
	ID string

	// Description explains the rule to developers; never shown to users.
	Description string

	// TargetStep and TargetOption scope the rule to one selectable option.
	// Targets that reference no real step or option are inert, not errors.
	TargetStep   string
	TargetOption string

	// Priority resolves which rule's message wins when several trigger.
	// Lower wins; ties fall back to registration order.
	Priority int

	// Reads declares every field the predicate inspects. The evaluator
	// fingerprints exactly the union of these declarations, so an
	// undeclared read would serve stale cached verdicts.
	Reads []scaffold.Field

	// ConflictingField names the field this rule blames, reported alongside
	// the incompatibility verdict.
	ConflictingField scaffold.Field

	// Incompatible reports whether the option conflicts under cfg.
	Incompatible func(cfg scaffold.Config) bool

	// Message renders the user-facing reason. May be nil; the evaluator
	// falls back to a generic message.
	Message func(cfg scaffold.Config) string
}
