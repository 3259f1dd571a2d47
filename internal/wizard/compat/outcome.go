package compat

import (
	"fmt"
	"strings"

	"github.com/zjrosen/stackforge/internal/wizard/rules"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// predicateOutcome is the explicit result of running one rule's predicate.
// A fault means the predicate panicked; the supervisor in the evaluator maps
// faults to "not triggered".
type predicateOutcome struct {
	triggered bool
	fault     error
}

// runPredicate executes a rule's incompatibility check inside a failure
// boundary. Panics become faults instead of escaping to the caller.
func runPredicate(rule rules.Rule, cfg scaffold.Config) (outcome predicateOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = predicateOutcome{fault: fmt.Errorf("predicate panic in rule %s: %v", rule.ID, r)}
		}
	}()
	return predicateOutcome{triggered: rule.Incompatible(cfg)}
}

// messageOutcome is the explicit result of rendering one rule's message.
type messageOutcome struct {
	text  string
	fault error
}

// runMessage renders a rule's message inside a failure boundary. A panic, a
// nil message func, or a blank rendering all yield a fault so the caller
// substitutes the fallback text.
func runMessage(rule rules.Rule, cfg scaffold.Config) (outcome messageOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = messageOutcome{fault: fmt.Errorf("message panic in rule %s: %v", rule.ID, r)}
		}
	}()
	if rule.Message == nil {
		return messageOutcome{fault: fmt.Errorf("rule %s has no message func", rule.ID)}
	}
	text := rule.Message(cfg)
	if strings.TrimSpace(text) == "" {
		return messageOutcome{fault: fmt.Errorf("rule %s rendered a blank message", rule.ID)}
	}
	return messageOutcome{text: text}
}
