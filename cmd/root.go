package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/stackforge/internal/config"
	"github.com/zjrosen/stackforge/internal/flags"
	"github.com/zjrosen/stackforge/internal/log"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
	flagReg *flags.Registry

	// logCleanup flushes the debug log on exit. Set by initConfig when
	// debug logging is enabled.
	logCleanup func()

	// cfgErr holds a configuration load or validation failure. initConfig
	// runs inside cobra.OnInitialize and cannot return, so the error is
	// surfaced from PersistentPreRunE before any subcommand runs.
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:           "stackforge",
	Short:         "Compatibility engine for project scaffold wizards",
	Long:          `Stackforge evaluates scaffold option compatibility, resolves conditional wizard steps, and validates scaffold configurations against a declarative rule set.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfgErr
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .stackforge/config.yaml, then ~/.config/stackforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to the configured log path")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_path", defaults.LogPath)
	viper.SetDefault("cache.ttl_seconds", defaults.Cache.TTLSeconds)
	viper.SetDefault("cache.disabled", defaults.Cache.Disabled)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	// STACKFORGE_DEBUG=true enables debug logging without a config file.
	viper.SetEnvPrefix("STACKFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .stackforge/config.yaml (current directory)
		// 2. ~/.config/stackforge/config.yaml (user config)
		if _, err := os.Stat(filepath.Join(".stackforge", "config.yaml")); err == nil {
			viper.SetConfigFile(filepath.Join(".stackforge", "config.yaml"))
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "stackforge"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .stackforge/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(".stackforge", "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("loading configuration: %w", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		cfgErr = fmt.Errorf("invalid configuration: %w", err)
		return
	}
	flagReg = flags.New(cfg.Flags)

	if cfg.Debug || debug {
		if cleanup, err := log.Init(cfg.LogPath); err == nil {
			logCleanup = cleanup
			log.SetMinLevel(log.LevelDebug)
		}
	}
}

// configFilePath returns the config file viper actually loaded, or the
// default location if none was.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return filepath.Join(".stackforge", "config.yaml")
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
