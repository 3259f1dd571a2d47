package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stackforge/internal/wizard/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Export the step catalog as YAML",
	Long: `Export the full step catalog as YAML: every step, its options, its
validation, and the condition under which it appears. Useful for frontends
that render the wizard from data.

Example:
  stackforge catalog > catalog.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := catalog.Default().ExportYAML()
		if err != nil {
			return fmt.Errorf("exporting catalog: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
