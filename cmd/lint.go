package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stackforge/internal/flags"
	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/lint"
	"github.com/zjrosen/stackforge/internal/wizard/rules"
	"github.com/zjrosen/stackforge/internal/wizard/validate"
)

var lintStrict bool

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check rule definitions for authoring mistakes",
	Long: `Check the compatibility rules, catalog, and cross-field rule set for
mistakes the engine tolerates at runtime: rules targeting steps or options
that do not exist, rules with no declared reads, and stale skip-table
entries.

Findings are warnings by default. With --strict (or the strict-lint config
flag) any finding fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.Default()

		findings := lint.Check(cat, rules.Default(), validate.New(cat))
		if len(findings) == 0 {
			fmt.Fprintln(out, "No findings.")
			return nil
		}

		for _, finding := range findings {
			fmt.Fprintln(out, finding)
		}

		if lintStrict || flagReg.Enabled(flags.FlagStrictLint) {
			return fmt.Errorf("%d lint finding(s)", len(findings))
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false,
		"treat findings as errors")
	rootCmd.AddCommand(lintCmd)
}
