// Package testutil provides fluent scaffold configuration builders for tests.
package testutil

import "github.com/zjrosen/stackforge/internal/wizard/scaffold"

// ConfigOption configures a scaffold config during builder setup.
type ConfigOption func(*scaffold.Config)

// NewConfig builds a scaffold config from options, starting from an empty
// configuration so unset sentinels behave exactly as they do mid-wizard.
func NewConfig(opts ...ConfigOption) scaffold.Config {
	var cfg scaffold.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ProjectName sets the project name.
func ProjectName(name string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.ProjectName = name }
}

// Description sets the project description.
func Description(desc string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.ProjectDescription = desc }
}

// NodeVersion sets the minimum Node.js version.
func NodeVersion(version string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.NodeVersion = version }
}

// Frontend sets the frontend framework.
func Frontend(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.FrontendFramework = value }
}

// Backend sets the backend framework.
func Backend(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.BackendFramework = value }
}

// Database sets the database.
func Database(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.Database = value }
}

// ORM sets the data layer.
func ORM(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.ORM = value }
}

// Auth sets the authentication provider.
func Auth(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.AuthProvider = value }
}

// Styling sets the styling option.
func Styling(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.Styling = value }
}

// AITemplates sets the selected AI templates.
func AITemplates(values ...string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.AITemplates = values }
}

// AIProvider sets the AI provider.
func AIProvider(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.AIProvider = value }
}

// VectorStore sets the vector store.
func VectorStore(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.AIVectorStore = value }
}

// Extras sets the selected extras.
func Extras(values ...string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.Extras = values }
}

// Deploy sets the deploy target.
func Deploy(value string) ConfigOption {
	return func(cfg *scaffold.Config) { cfg.DeployTarget = value }
}
