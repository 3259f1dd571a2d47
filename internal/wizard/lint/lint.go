// Package lint checks rule and catalog definitions for authoring mistakes
// that the engine itself tolerates at runtime.
package lint

import (
	"fmt"
	"sort"

	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/rules"
	"github.com/zjrosen/stackforge/internal/wizard/validate"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one lint result.
type Finding struct {
	Severity Severity
	RuleID   string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.RuleID, f.Message)
}

// Check runs every lint pass over the registry, catalog, and cross-field
// rule set. Findings are warnings; strict mode promotion is the caller's
// concern.
func Check(cat *catalog.Catalog, reg *rules.Registry, orch *validate.Orchestrator) []Finding {
	var findings []Finding
	findings = append(findings, checkOrphanTargets(cat, reg)...)
	findings = append(findings, checkEmptyReads(reg)...)
	findings = append(findings, checkUndeclaredConflictField(reg)...)
	findings = append(findings, checkSkipTable(orch)...)
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].RuleID != findings[j].RuleID {
			return findings[i].RuleID < findings[j].RuleID
		}
		return findings[i].Message < findings[j].Message
	})
	return findings
}

// checkOrphanTargets flags rules whose target step or option does not exist
// in the catalog. Such rules never trigger.
func checkOrphanTargets(cat *catalog.Catalog, reg *rules.Registry) []Finding {
	var findings []Finding
	for _, rule := range reg.All() {
		step, _, ok := cat.ByID(rule.TargetStep)
		if !ok {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				RuleID:   rule.ID,
				Message:  fmt.Sprintf("targets unknown step %q; the rule can never trigger", rule.TargetStep),
			})
			continue
		}
		if !step.HasOption(rule.TargetOption) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				RuleID:   rule.ID,
				Message:  fmt.Sprintf("targets option %q which step %q does not offer", rule.TargetOption, rule.TargetStep),
			})
		}
	}
	return findings
}

// checkEmptyReads flags rules that declare no read fields. The evaluator
// fingerprints the union of declared reads, so an empty declaration means
// cached verdicts for this rule never invalidate on configuration change.
func checkEmptyReads(reg *rules.Registry) []Finding {
	var findings []Finding
	for _, rule := range reg.All() {
		if len(rule.Reads) == 0 {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				RuleID:   rule.ID,
				Message:  "declares no read fields; its cached verdicts will never refresh",
			})
		}
	}
	return findings
}

// checkUndeclaredConflictField flags rules that blame a field they never
// declared reading.
func checkUndeclaredConflictField(reg *rules.Registry) []Finding {
	var findings []Finding
	for _, rule := range reg.All() {
		if rule.ConflictingField == "" {
			continue
		}
		declared := false
		for _, field := range rule.Reads {
			if field == rule.ConflictingField {
				declared = true
				break
			}
		}
		if !declared {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				RuleID:   rule.ID,
				Message:  fmt.Sprintf("blames field %q without declaring it in reads", rule.ConflictingField),
			})
		}
	}
	return findings
}

// checkSkipTable flags skip-table entries that name no configured cross-field
// rule, usually a leftover after a rule rename.
func checkSkipTable(orch *validate.Orchestrator) []Finding {
	known := make(map[string]bool)
	for _, id := range orch.CrossRuleIDs() {
		known[id] = true
	}

	var findings []Finding
	for ruleID := range orch.SkipTable() {
		if !known[ruleID] {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				RuleID:   ruleID,
				Message:  "skip-table entry names no configured cross-field rule",
			})
		}
	}
	return findings
}
