package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

func stepIndex(t *testing.T, cat *catalog.Catalog, id string) int {
	t.Helper()
	_, idx, ok := cat.ByID(id)
	require.True(t, ok)
	return idx
}

func TestValidateStep_UnknownIndex(t *testing.T) {
	orch := New(catalog.Default())

	for _, idx := range []int{-1, 99} {
		result := orch.ValidateStep(idx, scaffold.Config{})
		require.False(t, result.Valid)
		require.Contains(t, result.Err, "invalid step")
	}
}

func TestValidateStep_ProjectNameFormat(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepProjectName)

	result := orch.ValidateStep(idx, scaffold.Config{ProjectName: "My Project!"})
	require.False(t, result.Valid)
	require.Contains(t, result.Err, "Project name")

	result = orch.ValidateStep(idx, scaffold.Config{ProjectName: "my-project"})
	require.True(t, result.Valid)
}

func TestValidateStep_AIProviderRequired(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepAIProvider)

	cfg := scaffold.Config{AITemplates: []string{scaffold.AITemplateChatbot}}
	result := orch.ValidateStep(idx, cfg)

	require.False(t, result.Valid)
	require.Equal(t, "Please select an AI provider for your templates", result.Err)

	cfg.AIProvider = scaffold.AIProviderAnthropic
	result = orch.ValidateStep(idx, cfg)
	require.True(t, result.Valid)
}

func TestValidateStep_SelectMembership(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepBackend)

	result := orch.ValidateStep(idx, scaffold.Config{BackendFramework: "rails"})
	require.False(t, result.Valid)
	require.Contains(t, result.Err, "rails")
}

func TestValidateStep_MultiSelectMembership(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepExtras)

	result := orch.ValidateStep(idx, scaffold.Config{Extras: []string{scaffold.ExtraDocker, "kubernetes"}})
	require.False(t, result.Valid)
	require.Contains(t, result.Err, "kubernetes")
}

func TestValidateStep_CrossFieldRuleSkippedWhileGateUnset(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepAuth)

	// NextAuth with no frontend chosen yet: the rule is gated on the
	// frontend field, so progression is not blocked.
	cfg := scaffold.Config{AuthProvider: scaffold.AuthNextAuth}
	result := orch.ValidateStep(idx, cfg)
	require.True(t, result.Valid)

	// Once the frontend is set to something other than Next.js the rule
	// applies.
	cfg.FrontendFramework = scaffold.FrontendVue
	result = orch.ValidateStep(idx, cfg)
	require.False(t, result.Valid)
	require.Contains(t, result.Err, "NextAuth requires the Next.js routing conventions")
}

func TestValidateStep_CrossFieldCatchesBackTrackedConflict(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepFrontend)

	// User picked Express first, then went back and switched to Next.js.
	cfg := scaffold.Config{
		FrontendFramework: scaffold.FrontendNextJS,
		BackendFramework:  scaffold.BackendExpress,
	}
	result := orch.ValidateStep(idx, cfg)
	require.False(t, result.Valid)
	require.Contains(t, result.Err, "standalone express server")
}

func TestValidateStep_FieldErrorWinsOverCrossField(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepFrontend)

	// Both a missing frontend selection and a cross-field violation exist;
	// the field-level error is returned first.
	cfg := scaffold.Config{ORM: scaffold.ORMMongoose, Database: scaffold.DatabasePostgres}
	result := orch.ValidateStep(idx, cfg)
	require.False(t, result.Valid)
	require.Equal(t, "Please select a frontend framework", result.Err)
}

func TestValidateStep_SummaryStepHasNoFieldValidation(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepSummary)

	cfg := scaffold.Config{
		ProjectName:       "my-app",
		FrontendFramework: scaffold.FrontendReact,
		BackendFramework:  scaffold.BackendExpress,
		Database:          scaffold.DatabasePostgres,
		ORM:               scaffold.ORMPrisma,
		AuthProvider:      scaffold.AuthNone,
		Styling:           scaffold.StylingTailwind,
	}
	result := orch.ValidateStep(idx, cfg)
	require.True(t, result.Valid)
}

func TestNewWithRules_CustomSkipTable(t *testing.T) {
	cat := catalog.Default()
	fired := false
	rules := []CrossRule{{
		ID:       "always",
		Violated: func(scaffold.Config) bool { fired = true; return true },
		Message:  func(scaffold.Config) string { return "blocked" },
	}}

	// Gated on a field that is never set: the rule must not run.
	orch := NewWithRules(cat, rules, map[string]scaffold.Field{"always": scaffold.FieldDeployTarget})
	result := orch.ValidateStep(stepIndex(t, cat, catalog.StepSummary), scaffold.Config{})
	require.True(t, result.Valid)
	require.False(t, fired)

	// Ungated it fires.
	orch = NewWithRules(cat, rules, nil)
	result = orch.ValidateStep(stepIndex(t, cat, catalog.StepSummary), scaffold.Config{})
	require.False(t, result.Valid)
	require.Equal(t, "blocked", result.Err)
}

func TestValidateStep_TemplatePickDoesNotDeadlock(t *testing.T) {
	cat := catalog.Default()
	orch := New(cat)
	idx := stepIndex(t, cat, catalog.StepAITemplates)

	// Templates just picked, provider not reached yet. The provider rule
	// is gated on the provider field, so Next is not blocked here; the
	// ai-provider step's own validator takes over once it is reached.
	cfg := scaffold.Config{AITemplates: []string{scaffold.AITemplateChatbot}}
	result := orch.ValidateStep(idx, cfg)
	require.True(t, result.Valid)
}

func TestValidateConfig_ReportsAllFailures(t *testing.T) {
	orch := New(catalog.Default())

	cfg := scaffold.Config{
		ProjectName:       "my-app",
		FrontendFramework: scaffold.FrontendReact,
		BackendFramework:  scaffold.BackendHono,
		Database:          scaffold.DatabasePostgres,
		ORM:               scaffold.ORMPrisma,
		Styling:           scaffold.StylingTailwind,
		AITemplates:       []string{scaffold.AITemplateChatbot},
	}
	failures := orch.ValidateConfig(cfg)

	// Auth is unset, the ai-provider step is visible but empty, and the
	// ungated provider cross rule fires too.
	var messages []string
	for _, f := range failures {
		messages = append(messages, f.Err)
	}
	require.Contains(t, messages, "Please select an authentication provider")
	require.Contains(t, messages, "Please select an AI provider for your templates")

	cfg.AuthProvider = scaffold.AuthNone
	cfg.AIProvider = scaffold.AIProviderOpenAI
	require.Empty(t, orch.ValidateConfig(cfg))
}

func TestValidateConfig_HiddenStepsSkipped(t *testing.T) {
	orch := New(catalog.Default())

	// No database means the ORM step is hidden, so its required validator
	// must not fire.
	cfg := scaffold.Config{
		ProjectName:       "my-app",
		FrontendFramework: scaffold.FrontendReact,
		BackendFramework:  scaffold.BackendHono,
		Database:          scaffold.DatabaseNone,
		AuthProvider:      scaffold.AuthNone,
		Styling:           scaffold.StylingTailwind,
	}
	require.Empty(t, orch.ValidateConfig(cfg))
}
