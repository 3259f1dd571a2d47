package catalog

import (
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Step IDs for the default catalog. Rules reference these.
const (
	StepProjectName        = "project-name"
	StepProjectDescription = "project-description"
	StepNodeVersion        = "node-version"
	StepFrontend           = "frontend"
	StepBackend            = "backend"
	StepDatabase           = "database"
	StepORM                = "orm"
	StepAuth               = "auth"
	StepStyling            = "styling"
	StepAITemplates        = "ai-templates"
	StepAIProvider         = "ai-provider"
	StepAIVectorStore      = "ai-vector-store"
	StepExtras             = "extras"
	StepDeploy             = "deploy"
	StepSummary            = "summary"
)

// Default builds the production step catalog.
func Default() *Catalog {
	cat, err := New(
		Step{
			ID:       StepProjectName,
			Title:    "Project name",
			Kind:     KindText,
			Field:    scaffold.FieldProjectName,
			Validate: varRule("required,min=3,max=50,lowercase,hostname_rfc1123", "Project name must be 3 to 50 characters of lowercase letters, numbers, and hyphens"),
		},
		Step{
			ID:       StepProjectDescription,
			Title:    "Project description",
			Kind:     KindText,
			Field:    scaffold.FieldProjectDescription,
			Validate: varRule("omitempty,max=200", "Description must be at most 200 characters"),
		},
		Step{
			ID:       StepNodeVersion,
			Title:    "Minimum Node.js version",
			Kind:     KindText,
			Field:    scaffold.FieldNodeVersion,
			Validate: optionalSemver("Node version must be a valid semantic version, e.g. 20.11.1"),
		},
		Step{
			ID:    StepFrontend,
			Title: "Frontend framework",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldFrontend,
			Options: []Option{
				{Value: scaffold.FrontendNextJS, Label: "Next.js"},
				{Value: scaffold.FrontendReact, Label: "React"},
				{Value: scaffold.FrontendVue, Label: "Vue"},
				{Value: scaffold.FrontendSvelte, Label: "Svelte"},
				{Value: scaffold.FrontendAngular, Label: "Angular"},
			},
			Validate: required("Please select a frontend framework"),
		},
		Step{
			ID:    StepBackend,
			Title: "Backend framework",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldBackend,
			Options: []Option{
				{Value: scaffold.BackendExpress, Label: "Express"},
				{Value: scaffold.BackendFastify, Label: "Fastify"},
				{Value: scaffold.BackendNestJS, Label: "NestJS"},
				{Value: scaffold.BackendHono, Label: "Hono"},
				{Value: scaffold.BackendNone, Label: "No separate backend"},
			},
			Validate: required("Please select a backend framework"),
		},
		Step{
			ID:    StepDatabase,
			Title: "Database",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldDatabase,
			Options: []Option{
				{Value: scaffold.DatabasePostgres, Label: "PostgreSQL"},
				{Value: scaffold.DatabaseMySQL, Label: "MySQL"},
				{Value: scaffold.DatabaseMongoDB, Label: "MongoDB"},
				{Value: scaffold.DatabaseSQLite, Label: "SQLite"},
				{Value: scaffold.DatabaseNone, Label: "No database"},
			},
			Validate: required("Please select a database"),
		},
		Step{
			ID:    StepORM,
			Title: "ORM / data layer",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldORM,
			Options: []Option{
				{Value: scaffold.ORMPrisma, Label: "Prisma"},
				{Value: scaffold.ORMDrizzle, Label: "Drizzle"},
				{Value: scaffold.ORMTypeORM, Label: "TypeORM"},
				{Value: scaffold.ORMMongoose, Label: "Mongoose"},
				{Value: scaffold.ORMNone, Label: "Plain queries"},
			},
			VisibleWhen: func(cfg scaffold.Config) bool {
				return cfg.Database != scaffold.DatabaseNone
			},
			VisibleWhenDoc: "database is not 'none'",
			Validate:       required("Please select a data layer"),
		},
		Step{
			ID:    StepAuth,
			Title: "Authentication provider",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldAuthProvider,
			Options: []Option{
				{Value: scaffold.AuthClerk, Label: "Clerk"},
				{Value: scaffold.AuthAuth0, Label: "Auth0"},
				{Value: scaffold.AuthNextAuth, Label: "NextAuth"},
				{Value: scaffold.AuthSupabase, Label: "Supabase Auth"},
				{Value: scaffold.AuthNone, Label: "No authentication"},
			},
			Validate: required("Please select an authentication provider"),
		},
		Step{
			ID:    StepStyling,
			Title: "Styling",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldStyling,
			Options: []Option{
				{Value: scaffold.StylingTailwind, Label: "Tailwind CSS"},
				{Value: scaffold.StylingCSSModules, Label: "CSS Modules"},
				{Value: scaffold.StylingStyledComponents, Label: "styled-components"},
				{Value: scaffold.StylingSass, Label: "Sass"},
			},
			Validate: required("Please select a styling option"),
		},
		Step{
			ID:    StepAITemplates,
			Title: "AI feature templates",
			Kind:  KindMultiSelect,
			Field: scaffold.FieldAITemplates,
			Options: []Option{
				{Value: scaffold.AITemplateChatbot, Label: "Chatbot"},
				{Value: scaffold.AITemplateRAG, Label: "Retrieval-augmented generation"},
				{Value: scaffold.AITemplateImageGen, Label: "Image generation"},
				{Value: scaffold.AITemplateSummarize, Label: "Summarization"},
			},
		},
		Step{
			ID:    StepAIProvider,
			Title: "AI provider",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldAIProvider,
			Options: []Option{
				{Value: scaffold.AIProviderOpenAI, Label: "OpenAI"},
				{Value: scaffold.AIProviderAnthropic, Label: "Anthropic"},
				{Value: scaffold.AIProviderGemini, Label: "Gemini"},
				{Value: scaffold.AIProviderOllama, Label: "Ollama (local)"},
			},
			VisibleWhen: func(cfg scaffold.Config) bool {
				return cfg.IsSet(scaffold.FieldAITemplates)
			},
			VisibleWhenDoc: "at least one AI template is selected",
			Validate:       required("Please select an AI provider for your templates"),
		},
		Step{
			ID:    StepAIVectorStore,
			Title: "Vector store",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldVectorStore,
			Options: []Option{
				{Value: scaffold.VectorStorePinecone, Label: "Pinecone"},
				{Value: scaffold.VectorStorePGVector, Label: "pgvector"},
				{Value: scaffold.VectorStoreChroma, Label: "Chroma"},
			},
			VisibleWhen: func(cfg scaffold.Config) bool {
				return cfg.HasAITemplate(scaffold.AITemplateRAG)
			},
			VisibleWhenDoc: "the RAG template is selected",
			Validate:       required("Please select a vector store for retrieval"),
		},
		Step{
			ID:    StepExtras,
			Title: "Extras",
			Kind:  KindMultiSelect,
			Field: scaffold.FieldExtras,
			Options: []Option{
				{Value: scaffold.ExtraDocker, Label: "Dockerfile"},
				{Value: scaffold.ExtraCI, Label: "CI workflow"},
				{Value: scaffold.ExtraESLint, Label: "ESLint config"},
				{Value: scaffold.ExtraTesting, Label: "Test setup"},
				{Value: scaffold.ExtraStorybook, Label: "Storybook"},
			},
		},
		Step{
			ID:    StepDeploy,
			Title: "Deploy target",
			Kind:  KindSingleSelect,
			Field: scaffold.FieldDeployTarget,
			Options: []Option{
				{Value: scaffold.DeployVercel, Label: "Vercel"},
				{Value: scaffold.DeployNetlify, Label: "Netlify"},
				{Value: scaffold.DeployAWS, Label: "AWS"},
				{Value: scaffold.DeployNone, Label: "Decide later"},
			},
		},
		Step{
			ID:    StepSummary,
			Title: "Review and generate",
			Kind:  KindCustom,
			Field: "",
		},
	)
	if err != nil {
		// The default catalog is static; a failure here is a programming
		// error caught by the package tests.
		panic(err)
	}
	return cat
}
