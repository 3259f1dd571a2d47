package navigator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// testCatalog builds a five-step catalog where steps "b" and "d" are only
// visible once an AI template is selected.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	aiOnly := func(cfg scaffold.Config) bool {
		return cfg.IsSet(scaffold.FieldAITemplates)
	}
	cat, err := catalog.New(
		catalog.Step{ID: "a", Kind: catalog.KindText},
		catalog.Step{ID: "b", Kind: catalog.KindText, VisibleWhen: aiOnly},
		catalog.Step{ID: "c", Kind: catalog.KindText},
		catalog.Step{ID: "d", Kind: catalog.KindText, VisibleWhen: aiOnly},
		catalog.Step{ID: "e", Kind: catalog.KindText},
	)
	require.NoError(t, err)
	return cat
}

func withAI() scaffold.Config {
	return scaffold.Config{AITemplates: []string{scaffold.AITemplateChatbot}}
}

func TestVisibleSteps_FiltersHidden(t *testing.T) {
	nav := New(testCatalog(t))

	ids := func(steps []catalog.Step) []string {
		out := make([]string, len(steps))
		for i, s := range steps {
			out[i] = s.ID
		}
		return out
	}

	require.Equal(t, []string{"a", "c", "e"}, ids(nav.VisibleSteps(scaffold.Config{})))
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(nav.VisibleSteps(withAI())))
}

func TestNextVisibleIndex_SkipsHidden(t *testing.T) {
	nav := New(testCatalog(t))

	require.Equal(t, 2, nav.NextVisibleIndex(0, scaffold.Config{}))
	require.Equal(t, 1, nav.NextVisibleIndex(0, withAI()))
	require.Equal(t, None, nav.NextVisibleIndex(4, scaffold.Config{}))
}

func TestPrevVisibleIndex_SkipsHidden(t *testing.T) {
	nav := New(testCatalog(t))

	require.Equal(t, 0, nav.PrevVisibleIndex(2, scaffold.Config{}))
	require.Equal(t, 1, nav.PrevVisibleIndex(2, withAI()))
	require.Equal(t, None, nav.PrevVisibleIndex(0, scaffold.Config{}))
}

func TestVisibleIndex(t *testing.T) {
	nav := New(testCatalog(t))

	require.Equal(t, 0, nav.VisibleIndex(0, scaffold.Config{}))
	require.Equal(t, 1, nav.VisibleIndex(2, scaffold.Config{}))
	require.Equal(t, 2, nav.VisibleIndex(4, scaffold.Config{}))
	// Hidden step has no visible rank
	require.Equal(t, None, nav.VisibleIndex(1, scaffold.Config{}))
	// Out of range
	require.Equal(t, None, nav.VisibleIndex(99, scaffold.Config{}))
	require.Equal(t, None, nav.VisibleIndex(-1, scaffold.Config{}))
}

func TestAbsoluteIndex(t *testing.T) {
	nav := New(testCatalog(t))

	require.Equal(t, 0, nav.AbsoluteIndex(0, scaffold.Config{}))
	require.Equal(t, 2, nav.AbsoluteIndex(1, scaffold.Config{}))
	require.Equal(t, 4, nav.AbsoluteIndex(2, scaffold.Config{}))
	require.Equal(t, None, nav.AbsoluteIndex(3, scaffold.Config{}))
	require.Equal(t, None, nav.AbsoluteIndex(-1, scaffold.Config{}))
}

// Scenario: a step gated on aiTemplates joins the flow exactly in place once
// a template is selected.
func TestAITemplateStepJoinsFlow(t *testing.T) {
	cat := catalog.Default()
	nav := New(cat)

	_, templatesIdx, ok := cat.ByID(catalog.StepAITemplates)
	require.True(t, ok)
	_, providerIdx, ok := cat.ByID(catalog.StepAIProvider)
	require.True(t, ok)

	// Without templates the provider step is hidden entirely.
	empty := scaffold.Config{}
	for _, step := range nav.VisibleSteps(empty) {
		require.NotEqual(t, catalog.StepAIProvider, step.ID)
	}

	// With a template selected, Next from the templates step lands on it.
	cfg := withAI()
	require.Equal(t, providerIdx, nav.NextVisibleIndex(templatesIdx, cfg))
}

// The round trip VisibleIndex then AbsoluteIndex must return the original
// absolute index for every visible step.
func TestProperty_VisibleAbsoluteRoundTrip(t *testing.T) {
	cat := catalog.Default()
	nav := New(cat)

	templates := []string{scaffold.AITemplateChatbot, scaffold.AITemplateRAG, scaffold.AITemplateImageGen}

	rapid.Check(t, func(t *rapid.T) {
		cfg := scaffold.Config{
			Database:    rapid.SampledFrom([]string{"", scaffold.DatabasePostgres, scaffold.DatabaseNone}).Draw(t, "database"),
			AITemplates: rapid.SliceOfNDistinct(rapid.SampledFrom(templates), 0, 3, rapid.ID[string]).Draw(t, "aiTemplates"),
		}

		for i := 0; i < cat.Len(); i++ {
			rank := nav.VisibleIndex(i, cfg)
			if rank == None {
				continue
			}
			if got := nav.AbsoluteIndex(rank, cfg); got != i {
				t.Fatalf("round trip broke for absolute index %d: rank %d mapped back to %d", i, rank, got)
			}
		}
	})
}

// Navigation must never land on a hidden step.
func TestProperty_NextNeverYieldsHiddenStep(t *testing.T) {
	cat := catalog.Default()
	nav := New(cat)

	rapid.Check(t, func(t *rapid.T) {
		cfg := scaffold.Config{
			Database: rapid.SampledFrom([]string{"", scaffold.DatabaseNone, scaffold.DatabaseSQLite}).Draw(t, "database"),
		}
		start := rapid.IntRange(-1, cat.Len()).Draw(t, "start")

		next := nav.NextVisibleIndex(start, cfg)
		if next == None {
			return
		}
		if rank := nav.VisibleIndex(next, cfg); rank == None {
			t.Fatalf("NextVisibleIndex(%d) yielded hidden step %d", start, next)
		}
	})
}
