package testutil

import "github.com/zjrosen/stackforge/internal/wizard/scaffold"

// ReactHonoStack returns a complete, conflict-free configuration with a
// separate backend. Mirrors the happy path most wizard tests walk.
func ReactHonoStack(opts ...ConfigOption) scaffold.Config {
	base := []ConfigOption{
		ProjectName("my-app"),
		Frontend(scaffold.FrontendReact),
		Backend(scaffold.BackendHono),
		Database(scaffold.DatabasePostgres),
		ORM(scaffold.ORMPrisma),
		Auth(scaffold.AuthNone),
		Styling(scaffold.StylingTailwind),
	}
	return NewConfig(append(base, opts...)...)
}

// NextJSStack returns a complete Next.js configuration with no separate
// backend server.
func NextJSStack(opts ...ConfigOption) scaffold.Config {
	base := []ConfigOption{
		ProjectName("my-app"),
		Frontend(scaffold.FrontendNextJS),
		Backend(scaffold.BackendNone),
		Database(scaffold.DatabasePostgres),
		ORM(scaffold.ORMDrizzle),
		Auth(scaffold.AuthNextAuth),
		Styling(scaffold.StylingTailwind),
	}
	return NewConfig(append(base, opts...)...)
}

// RAGStack returns a configuration with the retrieval template selected, so
// the AI provider and vector store steps are both visible.
func RAGStack(opts ...ConfigOption) scaffold.Config {
	base := []ConfigOption{
		ProjectName("my-app"),
		Frontend(scaffold.FrontendReact),
		Backend(scaffold.BackendFastify),
		Database(scaffold.DatabasePostgres),
		ORM(scaffold.ORMPrisma),
		Auth(scaffold.AuthClerk),
		Styling(scaffold.StylingTailwind),
		AITemplates(scaffold.AITemplateRAG),
		AIProvider(scaffold.AIProviderOpenAI),
		VectorStore(scaffold.VectorStorePGVector),
	}
	return NewConfig(append(base, opts...)...)
}
