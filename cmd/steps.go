package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/navigator"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

var stepsFile string

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Show the wizard step flow",
	Long: `Show every wizard step in order. Without a snapshot, conditional steps are
listed with the condition that reveals them. With -f, each step is marked
visible or hidden for that snapshot.

Examples:
  stackforge steps
  stackforge steps -f scaffold.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.Default()

		if stepsFile == "" {
			renderStepFlow(out, cat)
			return nil
		}

		snapshot, err := scaffold.Load(stepsFile)
		if err != nil {
			return err
		}
		renderStepVisibility(out, cat, snapshot)
		return nil
	},
}

func init() {
	stepsCmd.Flags().StringVarP(&stepsFile, "file", "f", "",
		"scaffold snapshot to resolve conditional steps against")
	rootCmd.AddCommand(stepsCmd)
}

func renderStepFlow(out io.Writer, cat *catalog.Catalog) {
	for i, step := range cat.Steps() {
		if step.VisibleWhenDoc != "" {
			fmt.Fprintf(out, "%2d. %s (%s) - shown when %s\n", i+1, step.Title, step.ID, step.VisibleWhenDoc)
		} else {
			fmt.Fprintf(out, "%2d. %s (%s)\n", i+1, step.Title, step.ID)
		}
	}
}

func renderStepVisibility(out io.Writer, cat *catalog.Catalog, snapshot scaffold.Config) {
	nav := navigator.New(cat)
	visible := nav.VisibleSteps(snapshot)
	rank := 0

	for _, step := range cat.Steps() {
		if shown, _, ok := stepIn(visible, step.ID); ok {
			rank++
			fmt.Fprintf(out, "%2d. %s (%s)\n", rank, shown.Title, shown.ID)
		} else {
			fmt.Fprintf(out, "  . %s (%s) - hidden: requires %s\n", step.Title, step.ID, step.VisibleWhenDoc)
		}
	}
	fmt.Fprintf(out, "\n%d of %d steps visible\n", len(visible), cat.Len())
}

func stepIn(steps []catalog.Step, id string) (catalog.Step, int, bool) {
	for i, step := range steps {
		if step.ID == id {
			return step, i, true
		}
	}
	return catalog.Step{}, 0, false
}
