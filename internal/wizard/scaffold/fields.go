// Package scaffold defines the wizard configuration snapshot, the field
// vocabulary rules and validators operate over, and the mutable store that
// owns the configuration between evaluations.
package scaffold

// Field names a single configuration slot.
type Field string

const (
	FieldProjectName        Field = "projectName"
	FieldProjectDescription Field = "projectDescription"
	FieldNodeVersion        Field = "nodeVersion"
	FieldFrontend           Field = "frontendFramework"
	FieldBackend            Field = "backendFramework"
	FieldDatabase           Field = "database"
	FieldORM                Field = "orm"
	FieldAuthProvider       Field = "authProvider"
	FieldStyling            Field = "styling"
	FieldAITemplates        Field = "aiTemplates"
	FieldAIProvider         Field = "aiProvider"
	FieldVectorStore        Field = "aiVectorStore"
	FieldExtras             Field = "extras"
	FieldDeployTarget       Field = "deployTarget"
)

// listFields are the multi-select fields; everything else is scalar.
var listFields = map[Field]bool{
	FieldAITemplates: true,
	FieldExtras:      true,
}

// IsList reports whether the field holds multiple values.
func (f Field) IsList() bool {
	return listFields[f]
}

// Frontend framework option values.
const (
	FrontendNextJS  = "nextjs"
	FrontendReact   = "react"
	FrontendVue     = "vue"
	FrontendSvelte  = "svelte"
	FrontendAngular = "angular"
)

// Backend framework option values.
const (
	BackendExpress = "express"
	BackendFastify = "fastify"
	BackendNestJS  = "nestjs"
	BackendHono    = "hono"
	BackendNone    = "none"
)

// Database option values.
const (
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
	DatabaseMongoDB  = "mongodb"
	DatabaseSQLite   = "sqlite"
	DatabaseNone     = "none"
)

// ORM option values.
const (
	ORMPrisma   = "prisma"
	ORMDrizzle  = "drizzle"
	ORMTypeORM  = "typeorm"
	ORMMongoose = "mongoose"
	ORMNone     = "none"
)

// Auth provider option values.
const (
	AuthClerk    = "clerk"
	AuthAuth0    = "auth0"
	AuthNextAuth = "nextauth"
	AuthSupabase = "supabase"
	AuthNone     = "none"
)

// Styling option values.
const (
	StylingTailwind         = "tailwind"
	StylingCSSModules       = "css-modules"
	StylingStyledComponents = "styled-components"
	StylingSass             = "sass"
)

// AI template option values.
const (
	AITemplateChatbot   = "chatbot"
	AITemplateRAG       = "rag"
	AITemplateImageGen  = "image-generation"
	AITemplateSummarize = "summarization"
)

// AI provider option values.
const (
	AIProviderOpenAI    = "openai"
	AIProviderAnthropic = "anthropic"
	AIProviderGemini    = "gemini"
	AIProviderOllama    = "ollama"
)

// Vector store option values.
const (
	VectorStorePinecone = "pinecone"
	VectorStorePGVector = "pgvector"
	VectorStoreChroma   = "chroma"
)

// Extras option values.
const (
	ExtraDocker    = "docker"
	ExtraCI        = "ci"
	ExtraESLint    = "eslint"
	ExtraTesting   = "testing"
	ExtraStorybook = "storybook"
)

// Deploy target option values.
const (
	DeployVercel  = "vercel"
	DeployNetlify = "netlify"
	DeployAWS     = "aws"
	DeployNone    = "none"
)
