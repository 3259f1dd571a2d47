package scaffold

import (
	"slices"
	"strings"
)

// Fingerprint derives a stable cache key prefix from the given fields of a
// configuration. Only fields that rule predicates declare they read belong
// here; fingerprinting the whole configuration would invalidate cached
// verdicts on edits that cannot change any rule's outcome.
func Fingerprint(cfg Config, fields []Field) string {
	sorted := slices.Clone(fields)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var b strings.Builder
	for i, f := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(string(f))
		b.WriteByte('=')
		b.WriteString(cfg.Value(f))
	}
	return b.String()
}
