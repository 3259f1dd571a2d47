package rules

import (
	"fmt"

	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Default builds the production rule set. Priorities step by 10 in
// declaration order so new rules can slot between existing ones without
// renumbering everything.
func Default() *Registry {
	reg, err := NewRegistry(
		Rule{
			ID:               "express-vs-nextjs",
			Description:      "Next.js ships its own API routes; a separate Express server is redundant",
			TargetStep:       "backend",
			TargetOption:     scaffold.BackendExpress,
			Priority:         10,
			Reads:            []scaffold.Field{scaffold.FieldFrontend},
			ConflictingField: scaffold.FieldFrontend,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.FrontendFramework == scaffold.FrontendNextJS
			},
			Message: func(cfg scaffold.Config) string {
				return "Express cannot be used with Next.js. Next.js API routes already provide a backend."
			},
		},
		Rule{
			ID:               "fastify-vs-nextjs",
			Description:      "Same conflict as Express: Next.js replaces the standalone server",
			TargetStep:       "backend",
			TargetOption:     scaffold.BackendFastify,
			Priority:         20,
			Reads:            []scaffold.Field{scaffold.FieldFrontend},
			ConflictingField: scaffold.FieldFrontend,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.FrontendFramework == scaffold.FrontendNextJS
			},
			Message: func(cfg scaffold.Config) string {
				return "Fastify cannot be used with Next.js. Next.js API routes already provide a backend."
			},
		},
		Rule{
			ID:               "nextauth-needs-nextjs",
			Description:      "NextAuth only runs inside a Next.js app",
			TargetStep:       "auth",
			TargetOption:     scaffold.AuthNextAuth,
			Priority:         30,
			Reads:            []scaffold.Field{scaffold.FieldFrontend},
			ConflictingField: scaffold.FieldFrontend,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.IsSet(scaffold.FieldFrontend) && cfg.FrontendFramework != scaffold.FrontendNextJS
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("NextAuth requires a Next.js frontend, but %s is selected.", cfg.FrontendFramework)
			},
		},
		Rule{
			ID:               "mongoose-needs-mongodb",
			Description:      "Mongoose is a MongoDB ODM and speaks no other protocol",
			TargetStep:       "orm",
			TargetOption:     scaffold.ORMMongoose,
			Priority:         40,
			Reads:            []scaffold.Field{scaffold.FieldDatabase},
			ConflictingField: scaffold.FieldDatabase,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.IsSet(scaffold.FieldDatabase) && cfg.Database != scaffold.DatabaseMongoDB
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("Mongoose only works with MongoDB, but %s is selected.", cfg.Database)
			},
		},
		Rule{
			ID:               "drizzle-vs-mongodb",
			Description:      "Drizzle targets SQL databases only",
			TargetStep:       "orm",
			TargetOption:     scaffold.ORMDrizzle,
			Priority:         50,
			Reads:            []scaffold.Field{scaffold.FieldDatabase},
			ConflictingField: scaffold.FieldDatabase,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.Database == scaffold.DatabaseMongoDB
			},
			Message: func(cfg scaffold.Config) string {
				return "Drizzle does not support MongoDB. Choose a SQL database or a different ORM."
			},
		},
		Rule{
			ID:               "typeorm-vs-mongodb",
			Description:      "TypeORM's MongoDB driver is unmaintained; the generator does not emit it",
			TargetStep:       "orm",
			TargetOption:     scaffold.ORMTypeORM,
			Priority:         60,
			Reads:            []scaffold.Field{scaffold.FieldDatabase},
			ConflictingField: scaffold.FieldDatabase,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.Database == scaffold.DatabaseMongoDB
			},
			Message: func(cfg scaffold.Config) string {
				return "TypeORM with MongoDB is not supported by the generated templates."
			},
		},
		Rule{
			ID:               "orm-needs-database",
			Description:      "An ORM without a database has nothing to map",
			TargetStep:       "orm",
			TargetOption:     scaffold.ORMPrisma,
			Priority:         70,
			Reads:            []scaffold.Field{scaffold.FieldDatabase},
			ConflictingField: scaffold.FieldDatabase,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.Database == scaffold.DatabaseNone
			},
			Message: func(cfg scaffold.Config) string {
				return "Prisma requires a database. Select one before choosing an ORM."
			},
		},
		Rule{
			ID:               "pgvector-needs-postgres",
			Description:      "pgvector is a Postgres extension",
			TargetStep:       "ai-vector-store",
			TargetOption:     scaffold.VectorStorePGVector,
			Priority:         80,
			Reads:            []scaffold.Field{scaffold.FieldDatabase},
			ConflictingField: scaffold.FieldDatabase,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.IsSet(scaffold.FieldDatabase) && cfg.Database != scaffold.DatabasePostgres
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("pgvector runs inside Postgres, but %s is selected as the database.", cfg.Database)
			},
		},
		Rule{
			ID:               "styled-components-react-only",
			Description:      "styled-components is a React library",
			TargetStep:       "styling",
			TargetOption:     scaffold.StylingStyledComponents,
			Priority:         90,
			Reads:            []scaffold.Field{scaffold.FieldFrontend},
			ConflictingField: scaffold.FieldFrontend,
			Incompatible: func(cfg scaffold.Config) bool {
				switch cfg.FrontendFramework {
				case scaffold.FrontendVue, scaffold.FrontendSvelte, scaffold.FrontendAngular:
					return true
				}
				return false
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("styled-components only supports React based frameworks, not %s.", cfg.FrontendFramework)
			},
		},
		Rule{
			ID:               "vercel-vs-standalone-server",
			Description:      "Vercel deploys serverless functions, not long-running servers",
			TargetStep:       "deploy",
			TargetOption:     scaffold.DeployVercel,
			Priority:         100,
			Reads:            []scaffold.Field{scaffold.FieldBackend},
			ConflictingField: scaffold.FieldBackend,
			Incompatible: func(cfg scaffold.Config) bool {
				switch cfg.BackendFramework {
				case scaffold.BackendExpress, scaffold.BackendFastify, scaffold.BackendNestJS:
					return true
				}
				return false
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("Vercel cannot host a long-running %s server. Pick a serverless-friendly backend or another deploy target.", cfg.BackendFramework)
			},
		},
		Rule{
			ID:               "supabase-auth-needs-postgres",
			Description:      "Supabase auth rides on the Supabase Postgres instance",
			TargetStep:       "auth",
			TargetOption:     scaffold.AuthSupabase,
			Priority:         110,
			Reads:            []scaffold.Field{scaffold.FieldDatabase},
			ConflictingField: scaffold.FieldDatabase,
			Incompatible: func(cfg scaffold.Config) bool {
				return cfg.IsSet(scaffold.FieldDatabase) && cfg.Database != scaffold.DatabasePostgres
			},
			Message: func(cfg scaffold.Config) string {
				return fmt.Sprintf("Supabase auth requires Postgres, but %s is selected.", cfg.Database)
			},
		},
	)
	if err != nil {
		// The default set is static; a validation failure here is a
		// programming error caught by the package tests.
		panic(err)
	}
	return reg
}
