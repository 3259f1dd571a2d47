package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stackforge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stackforge configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configSetFlagCmd = &cobra.Command{
	Use:   "set-flag <name>=<true|false>",
	Short: "Toggle a feature flag in the config file",
	Long: `Toggle a feature flag, preserving comments and formatting elsewhere in the
config file.

Examples:
  stackforge config set-flag strict-lint=true
  stackforge config set-flag trace-eval=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, rawValue, ok := strings.Cut(args[0], "=")
		if !ok || name == "" {
			return fmt.Errorf("expected <name>=<true|false>, got %q", args[0])
		}
		value, err := strconv.ParseBool(rawValue)
		if err != nil {
			return fmt.Errorf("flag value must be true or false, got %q", rawValue)
		}

		updated := flagReg.All()
		updated[name] = value

		path := configFilePath()
		if err := config.SaveFlags(path, updated); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s=%v in %s\n", name, value, path)
		return nil
	},
}

var configShowFlagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List feature flags and their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := flagReg.All()
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)

		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No flags configured.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, all[name])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetFlagCmd)
	configCmd.AddCommand(configShowFlagsCmd)
	rootCmd.AddCommand(configCmd)
}
