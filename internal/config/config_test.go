package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.False(t, cfg.Debug)
	require.Equal(t, 300, cfg.Cache.TTLSeconds)
	require.False(t, cfg.Cache.Disabled)
	require.Equal(t, 250, cfg.Watch.DebounceMS)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Equal(t, 1.0, cfg.Tracing.SampleRate)
	require.NoError(t, cfg.Validate())
}

func TestCacheConfig_TTL(t *testing.T) {
	require.Equal(t, 5*time.Minute, CacheConfig{TTLSeconds: 300}.TTL())
	require.Equal(t, time.Duration(0), CacheConfig{}.TTL())
}

func TestWatchConfig_Debounce(t *testing.T) {
	require.Equal(t, 250*time.Millisecond, WatchConfig{DebounceMS: 250}.Debounce())
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		tracing TracingConfig
		wantErr string
	}{
		{
			name:    "defaults are valid",
			tracing: Defaults().Tracing,
		},
		{
			name:    "sample rate below range",
			tracing: TracingConfig{SampleRate: -0.1},
			wantErr: "sample_rate",
		},
		{
			name:    "sample rate above range",
			tracing: TracingConfig{SampleRate: 1.5},
			wantErr: "sample_rate",
		},
		{
			name:    "unknown exporter",
			tracing: TracingConfig{Exporter: "jaeger", SampleRate: 1.0},
			wantErr: "tracing.exporter",
		},
		{
			name:    "file exporter without path when enabled",
			tracing: TracingConfig{Enabled: true, Exporter: "file", SampleRate: 1.0},
			wantErr: "file_path",
		},
		{
			name:    "otlp exporter without endpoint when enabled",
			tracing: TracingConfig{Enabled: true, Exporter: "otlp", SampleRate: 1.0},
			wantErr: "otlp_endpoint",
		},
		{
			name:    "file exporter without path is fine while disabled",
			tracing: TracingConfig{Enabled: false, Exporter: "file", SampleRate: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.tracing)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := Defaults()
	cfg.Cache.TTLSeconds = -1
	require.ErrorContains(t, cfg.Validate(), "cache.ttl_seconds")

	cfg = Defaults()
	cfg.Watch.DebounceMS = -10
	require.ErrorContains(t, cfg.Validate(), "watch.debounce_ms")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".stackforge", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "cache:")
	require.Contains(t, string(data), "strict-lint")
}
