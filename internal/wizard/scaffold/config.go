package scaffold

import (
	"slices"
	"strings"
)

// Config is a snapshot of every wizard selection. The engine treats it as
// immutable for the duration of a call; only the Store mutates configuration
// between calls.
type Config struct {
	ProjectName        string   `yaml:"projectName"`
	ProjectDescription string   `yaml:"projectDescription"`
	NodeVersion        string   `yaml:"nodeVersion"`
	FrontendFramework  string   `yaml:"frontendFramework"`
	BackendFramework   string   `yaml:"backendFramework"`
	Database           string   `yaml:"database"`
	ORM                string   `yaml:"orm"`
	AuthProvider       string   `yaml:"authProvider"`
	Styling            string   `yaml:"styling"`
	AITemplates        []string `yaml:"aiTemplates"`
	AIProvider         string   `yaml:"aiProvider"`
	AIVectorStore      string   `yaml:"aiVectorStore"`
	Extras             []string `yaml:"extras"`
	DeployTarget       string   `yaml:"deployTarget"`
}

// Value returns the canonical string form of a field. Multi-select fields are
// joined sorted so the result is stable regardless of selection order.
func (c Config) Value(f Field) string {
	if f.IsList() {
		return joinSorted(c.List(f))
	}
	switch f {
	case FieldProjectName:
		return c.ProjectName
	case FieldProjectDescription:
		return c.ProjectDescription
	case FieldNodeVersion:
		return c.NodeVersion
	case FieldFrontend:
		return c.FrontendFramework
	case FieldBackend:
		return c.BackendFramework
	case FieldDatabase:
		return c.Database
	case FieldORM:
		return c.ORM
	case FieldAuthProvider:
		return c.AuthProvider
	case FieldStyling:
		return c.Styling
	case FieldAIProvider:
		return c.AIProvider
	case FieldVectorStore:
		return c.AIVectorStore
	case FieldDeployTarget:
		return c.DeployTarget
	default:
		return ""
	}
}

// List returns the values of a multi-select field. Scalar fields return nil.
func (c Config) List(f Field) []string {
	switch f {
	case FieldAITemplates:
		return c.AITemplates
	case FieldExtras:
		return c.Extras
	default:
		return nil
	}
}

// IsSet reports whether the field has left its unset sentinel: a non-empty
// string for scalars, a non-empty list for multi-selects.
func (c Config) IsSet(f Field) bool {
	if f.IsList() {
		return len(c.List(f)) > 0
	}
	return c.Value(f) != ""
}

// HasAITemplate reports whether the named AI template is selected.
func (c Config) HasAITemplate(name string) bool {
	return slices.Contains(c.AITemplates, name)
}

// HasExtra reports whether the named extra is selected.
func (c Config) HasExtra(name string) bool {
	return slices.Contains(c.Extras, name)
}

func joinSorted(values []string) string {
	if len(values) == 0 {
		return ""
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}
