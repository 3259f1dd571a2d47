package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration snapshot from a YAML file. Unknown keys are
// rejected so a typo in a field name fails loudly instead of silently
// evaluating an empty field.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied snapshot path
	if err != nil {
		return Config{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML snapshot.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is a fresh wizard with nothing selected yet.
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parsing snapshot: %w", err)
	}
	// yaml decodes an empty sequence as a non-nil empty slice; fold it back
	// to the unset sentinel so a saved-then-loaded configuration compares
	// equal to one that was never touched.
	if len(cfg.AITemplates) == 0 {
		cfg.AITemplates = nil
	}
	if len(cfg.Extras) == 0 {
		cfg.Extras = nil
	}
	return cfg, nil
}

// Save writes a configuration snapshot as YAML.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
