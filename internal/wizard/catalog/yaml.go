package catalog

import (
	"gopkg.in/yaml.v3"
)

// stepDoc is the serialisable view of a Step. Predicates and validators are
// funcs, so only their documentation strings survive the export.
type stepDoc struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Kind        Kind     `yaml:"kind"`
	Field       string   `yaml:"field,omitempty"`
	Options     []Option `yaml:"options,omitempty"`
	VisibleWhen string   `yaml:"visibleWhen,omitempty"`
	Validated   bool     `yaml:"validated"`
}

// ExportYAML renders the catalog for review tooling and the catalog CLI
// command.
func (c *Catalog) ExportYAML() ([]byte, error) {
	docs := make([]stepDoc, len(c.steps))
	for i, step := range c.steps {
		docs[i] = stepDoc{
			ID:          step.ID,
			Title:       step.Title,
			Kind:        step.Kind,
			Field:       string(step.Field),
			Options:     step.Options,
			VisibleWhen: step.VisibleWhenDoc,
			Validated:   step.Validate != nil,
		}
	}
	return yaml.Marshal(map[string][]stepDoc{"steps": docs})
}
