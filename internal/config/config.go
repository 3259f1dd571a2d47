// Package config provides configuration types and defaults for stackforge.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/stackforge/internal/log"
)

// Config holds all configuration options for stackforge.
type Config struct {
	Debug   bool            `mapstructure:"debug"`
	LogPath string          `mapstructure:"log_path"`
	Cache   CacheConfig     `mapstructure:"cache"`
	Watch   WatchConfig     `mapstructure:"watch"`
	Tracing TracingConfig   `mapstructure:"tracing"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// CacheConfig holds compatibility cache tuning.
type CacheConfig struct {
	// TTLSeconds bounds how long a verdict stays cached without any
	// configuration change. 0 means cache forever until invalidated.
	TTLSeconds int `mapstructure:"ttl_seconds"`

	// Disabled forces a fresh evaluation on every lookup. Intended for
	// debugging rule authoring, not production use.
	Disabled bool `mapstructure:"disabled"`
}

// TTL returns the configured TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// WatchConfig holds file watching configuration for eval --watch.
type WatchConfig struct {
	// DebounceMS is the quiet period after the last write event before
	// the snapshot is re-evaluated.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Debounce returns the configured debounce as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// TracingConfig holds trace export configuration for the evaluator.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/stackforge/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/stackforge/traces/traces.jsonl or empty string if home
// dir is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stackforge", "traces", "traces.jsonl")
}

// DefaultLogPath returns the default debug log location.
func DefaultLogPath() string {
	return filepath.Join(".stackforge", "debug.log")
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(cache CacheConfig) error {
	if cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds must not be negative, got %d", cache.TTLSeconds)
	}
	return nil
}

// Validate runs every section validator.
func (c Config) Validate() error {
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug:   false,
		LogPath: DefaultLogPath(),
		Cache: CacheConfig{
			TTLSeconds: 300,
			Disabled:   false,
		},
		Watch: WatchConfig{
			DebounceMS: 250,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Flags: map[string]bool{},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Stackforge Configuration

# Write debug logs to log_path
debug: false
# log_path: .stackforge/debug.log

# Compatibility cache tuning
cache:
  ttl_seconds: 300   # Cached verdicts expire after this many seconds (0 = never)
  disabled: false    # Force a fresh evaluation on every lookup (debugging only)

# eval --watch settings
watch:
  debounce_ms: 250   # Quiet period after the last file write before re-evaluating

# Trace export for the compatibility engine
tracing:
  enabled: false
  exporter: file              # "none", "file", "stdout", or "otlp"
  # file_path: ~/.config/stackforge/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Feature flags
flags:
  strict-lint: false   # Treat lint findings as errors
  trace-eval: false    # Emit a span per option evaluation
  watch: false         # Always run eval in watch mode
`
}

// WriteDefaultConfig writes the default config template to the given path,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
