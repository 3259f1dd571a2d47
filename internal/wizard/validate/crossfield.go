// Package validate gates step progression: it composes per-step field
// validation with a coarser cross-field rule set checked against the whole
// configuration.
package validate

import (
	"fmt"

	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// CrossRule checks whole-configuration consistency. Violated reports true
// when the configuration is inconsistent; Message explains the violation.
type CrossRule struct {
	ID       string
	Violated func(cfg scaffold.Config) bool
	Message  func(cfg scaffold.Config) string
}

// DefaultCrossRules returns the production cross-field rule set. These are
// deliberately coarser than the per-option registry: they catch combinations
// a user can only reach by going back and changing an earlier answer.
func DefaultCrossRules() []CrossRule {
	return []CrossRule{
		{
			ID: "nextjs-standalone-backend",
			Violated: func(cfg scaffold.Config) bool {
				if cfg.FrontendFramework != scaffold.FrontendNextJS {
					return false
				}
				return cfg.BackendFramework == scaffold.BackendExpress || cfg.BackendFramework == scaffold.BackendFastify
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("Next.js projects cannot include a standalone %s server", cfg.BackendFramework)
			},
		},
		{
			ID: "nextauth-needs-nextjs",
			Violated: func(cfg scaffold.Config) bool {
				return cfg.AuthProvider == scaffold.AuthNextAuth && cfg.FrontendFramework != scaffold.FrontendNextJS
			},
			Message: func(cfg scaffold.Config) string {
				return "NextAuth requires the Next.js routing conventions; choose a different auth provider or switch to Next.js"
			},
		},
		{
			ID: "mongoose-needs-mongodb",
			Violated: func(cfg scaffold.Config) bool {
				return cfg.ORM == scaffold.ORMMongoose && cfg.Database != scaffold.DatabaseMongoDB
			},
			Message: func(cfg scaffold.Config) string {
				return "Mongoose requires MongoDB as the database"
			},
		},
		{
			ID: "pgvector-needs-postgres",
			Violated: func(cfg scaffold.Config) bool {
				return cfg.AIVectorStore == scaffold.VectorStorePGVector && cfg.Database != scaffold.DatabasePostgres
			},
			Message: func(cfg scaffold.Config) string {
				return "pgvector requires PostgreSQL as the database"
			},
		},
		{
			ID: "ai-provider-chosen-with-templates",
			Violated: func(cfg scaffold.Config) bool {
				return cfg.IsSet(scaffold.FieldAITemplates) && !cfg.IsSet(scaffold.FieldAIProvider)
			},
			Message: func(cfg scaffold.Config) string {
				return "Please select an AI provider for your templates"
			},
		},
	}
}

// DefaultSkipTable maps rule IDs to the field that must be set before the
// rule applies. While the field is still at its unset sentinel the rule is
// skipped, so a half-filled configuration never blocks forward progress
// before the user reaches the step that sets that field.
func DefaultSkipTable() map[string]scaffold.Field {
	return map[string]scaffold.Field{
		"nextjs-standalone-backend":         scaffold.FieldFrontend,
		"nextauth-needs-nextjs":             scaffold.FieldFrontend,
		"mongoose-needs-mongodb":            scaffold.FieldDatabase,
		"pgvector-needs-postgres":           scaffold.FieldDatabase,
		"ai-provider-chosen-with-templates": scaffold.FieldAIProvider,
	}
}
