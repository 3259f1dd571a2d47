package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

func TestNewConfig_OptionsApplyInOrder(t *testing.T) {
	cfg := NewConfig(
		Frontend(scaffold.FrontendVue),
		Frontend(scaffold.FrontendReact),
		AITemplates(scaffold.AITemplateChatbot, scaffold.AITemplateSummarize),
	)

	require.Equal(t, scaffold.FrontendReact, cfg.FrontendFramework)
	require.Equal(t, []string{scaffold.AITemplateChatbot, scaffold.AITemplateSummarize}, cfg.AITemplates)
	require.Empty(t, cfg.BackendFramework, "unset fields stay at the unset sentinel")
}

func TestPresets_OverridesWin(t *testing.T) {
	cfg := ReactHonoStack(Backend(scaffold.BackendNestJS))
	require.Equal(t, scaffold.BackendNestJS, cfg.BackendFramework)
	require.Equal(t, scaffold.FrontendReact, cfg.FrontendFramework)
}

func TestRAGStack_MakesAIStepsVisible(t *testing.T) {
	cfg := RAGStack()
	require.True(t, cfg.IsSet(scaffold.FieldAITemplates))
	require.True(t, cfg.HasAITemplate(scaffold.AITemplateRAG))
	require.Equal(t, scaffold.VectorStorePGVector, cfg.AIVectorStore)
}
