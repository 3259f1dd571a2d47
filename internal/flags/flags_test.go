package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "known flag set to true returns true",
			registry: New(map[string]bool{FlagStrictLint: true}),
			flag:     FlagStrictLint,
			expected: true,
		},
		{
			name:     "known flag set to false returns false",
			registry: New(map[string]bool{FlagTraceEval: false}),
			flag:     FlagTraceEval,
			expected: false,
		},
		{
			name:     "unknown flag returns false",
			registry: New(map[string]bool{FlagStrictLint: true}),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagWatch,
			expected: false,
		},
		{
			name:     "nil flags map returns false",
			registry: New(nil),
			flag:     FlagWatch,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All_ReturnsDefensiveCopy(t *testing.T) {
	r := New(map[string]bool{FlagStrictLint: true})

	copied := r.All()
	copied[FlagStrictLint] = false
	copied[FlagWatch] = true

	require.True(t, r.Enabled(FlagStrictLint))
	require.False(t, r.Enabled(FlagWatch))
	require.Equal(t, map[string]bool{FlagStrictLint: true}, r.All())
}

func TestRegistry_All_NilSafe(t *testing.T) {
	var r *Registry
	require.Equal(t, map[string]bool{}, r.All())
	require.Equal(t, map[string]bool{}, New(nil).All())
}
