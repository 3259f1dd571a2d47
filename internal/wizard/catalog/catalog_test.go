package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

func TestNew_DuplicateID(t *testing.T) {
	_, err := New(
		Step{ID: "a", Kind: KindText},
		Step{ID: "a", Kind: KindText},
	)
	require.ErrorIs(t, err, ErrDuplicateStepID)
}

func TestNew_EmptyID(t *testing.T) {
	_, err := New(Step{Kind: KindText})
	require.ErrorIs(t, err, ErrEmptyStepID)
}

func TestCatalog_At(t *testing.T) {
	cat := Default()

	step, ok := cat.At(0)
	require.True(t, ok)
	require.Equal(t, StepProjectName, step.ID)

	_, ok = cat.At(-1)
	require.False(t, ok)
	_, ok = cat.At(cat.Len())
	require.False(t, ok)
}

func TestCatalog_ByID(t *testing.T) {
	cat := Default()

	step, idx, ok := cat.ByID(StepBackend)
	require.True(t, ok)
	require.Equal(t, StepBackend, step.ID)

	again, ok := cat.At(idx)
	require.True(t, ok)
	require.Equal(t, step.ID, again.ID)

	_, _, ok = cat.ByID("missing")
	require.False(t, ok)
}

func TestCatalog_HasOption(t *testing.T) {
	cat := Default()

	require.True(t, cat.HasOption(StepBackend, scaffold.BackendExpress))
	require.False(t, cat.HasOption(StepBackend, "rails"))
	require.False(t, cat.HasOption("missing", scaffold.BackendExpress))
}

func TestDefault_SummaryIsLastAndAlwaysVisible(t *testing.T) {
	cat := Default()

	last, ok := cat.At(cat.Len() - 1)
	require.True(t, ok)
	require.Equal(t, StepSummary, last.ID)
	require.Nil(t, last.VisibleWhen)
}

func TestDefault_AIProviderVisibility(t *testing.T) {
	cat := Default()
	step, _, ok := cat.ByID(StepAIProvider)
	require.True(t, ok)
	require.NotNil(t, step.VisibleWhen)

	require.False(t, step.VisibleWhen(scaffold.Config{}))
	require.True(t, step.VisibleWhen(scaffold.Config{AITemplates: []string{scaffold.AITemplateChatbot}}))
}

func TestDefault_VectorStoreVisibleOnlyWithRAG(t *testing.T) {
	cat := Default()
	step, _, ok := cat.ByID(StepAIVectorStore)
	require.True(t, ok)

	require.False(t, step.VisibleWhen(scaffold.Config{AITemplates: []string{scaffold.AITemplateChatbot}}))
	require.True(t, step.VisibleWhen(scaffold.Config{AITemplates: []string{scaffold.AITemplateRAG}}))
}

func TestDefault_ProjectNameValidation(t *testing.T) {
	cat := Default()
	step, _, _ := cat.ByID(StepProjectName)

	require.NoError(t, step.Validate("my-app-2"))
	require.Error(t, step.Validate(""))
	require.Error(t, step.Validate("ab"))
	require.Error(t, step.Validate("My App"))
	require.Error(t, step.Validate(strings.Repeat("a", 51)))
}

func TestDefault_NodeVersionValidation(t *testing.T) {
	cat := Default()
	step, _, _ := cat.ByID(StepNodeVersion)

	require.NoError(t, step.Validate(""))
	require.NoError(t, step.Validate("20.11.1"))
	require.Error(t, step.Validate("latest"))
}

func TestDefault_AIProviderRequiredMessage(t *testing.T) {
	cat := Default()
	step, _, _ := cat.ByID(StepAIProvider)

	err := step.Validate("")
	require.Error(t, err)
	require.Equal(t, "Please select an AI provider for your templates", err.Error())
}

func TestExportYAML(t *testing.T) {
	out, err := Default().ExportYAML()
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, "id: project-name")
	require.Contains(t, text, "id: ai-provider")
	require.Contains(t, text, "visibleWhen: at least one AI template is selected")
	require.Contains(t, text, "value: nextjs")
}
