// Package compat implements the compatibility evaluator: it consults the
// rule registry for a (step, option) pair, caches verdicts keyed by a
// configuration fingerprint, and fails open on every rule-authoring defect
// so a broken rule can never strand the user mid-wizard.
package compat

import (
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// FallbackReason replaces a rule message that panics or renders blank.
const FallbackReason = "This option is not compatible with your current selections"

// Result is an immutable compatibility verdict for one option. Safe to cache
// and share.
type Result struct {
	Compatible       bool
	Reason           string
	ConflictingField scaffold.Field
	ConflictingValue string
}

// Compatible is the open-world default verdict.
var compatible = Result{Compatible: true}
