package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stackforge/internal/config"
	"github.com/zjrosen/stackforge/internal/flags"
	"github.com/zjrosen/stackforge/internal/log"
	"github.com/zjrosen/stackforge/internal/tracing"
	"github.com/zjrosen/stackforge/internal/watcher"
	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/compat"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
	"github.com/zjrosen/stackforge/internal/wizard/session"
)

var (
	evalFile  string
	evalWatch bool
	evalStep  string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a scaffold snapshot against the compatibility rules",
	Long: `Evaluate a scaffold configuration snapshot: report each visible step, the
compatibility verdict for every option, and any whole-configuration
validation failures.

Examples:
  # Evaluate a snapshot once
  stackforge eval -f scaffold.yaml

  # Limit output to one step
  stackforge eval -f scaffold.yaml --step backend

  # Re-evaluate whenever the snapshot file changes
  stackforge eval -f scaffold.yaml --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchMode() {
			return runEvalWatch(cmd)
		}
		return runEvalOnce(cmd.OutOrStdout(), false)
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalFile, "file", "f", "scaffold.yaml",
		"scaffold snapshot to evaluate")
	evalCmd.Flags().BoolVar(&evalWatch, "watch", false,
		"re-evaluate whenever the snapshot file changes")
	evalCmd.Flags().StringVar(&evalStep, "step", "",
		"limit output to a single step id")
	rootCmd.AddCommand(evalCmd)
}

// watchMode reports whether eval should watch the snapshot file: either the
// --watch flag or the watch feature flag turns it on.
func watchMode() bool {
	return evalWatch || flagReg.Enabled(flags.FlagWatch)
}

// evaluatorConfig derives evaluator tuning from app config and flags.
// Watch-mode runs skip the cache: the snapshot changed, so cached verdicts
// are stale by definition.
func evaluatorConfig(skipCache bool) (compat.Config, *tracing.Provider, error) {
	evalCfg := compat.Config{
		TTL:       cfg.Cache.TTL(),
		SkipCache: cfg.Cache.Disabled || skipCache,
	}

	tracingCfg := cfg.Tracing
	if flagReg.Enabled(flags.FlagTraceEval) {
		tracingCfg.Enabled = true
	}
	if err := config.ValidateTracing(tracingCfg); err != nil {
		return compat.Config{}, nil, err
	}
	provider, err := tracing.NewProvider(tracingCfg)
	if err != nil {
		return compat.Config{}, nil, fmt.Errorf("initializing tracing: %w", err)
	}
	if provider.Enabled() {
		evalCfg.Tracer = provider.Tracer()
	}
	return evalCfg, provider, nil
}

func runEvalOnce(out io.Writer, skipCache bool) error {
	snapshot, err := scaffold.Load(evalFile)
	if err != nil {
		return err
	}

	evalCfg, provider, err := evaluatorConfig(skipCache)
	if err != nil {
		return err
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	s := session.New(evalCfg)
	s.Replace(snapshot)

	renderEvaluation(out, s)
	return nil
}

func runEvalWatch(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if err := runEvalOnce(out, false); err != nil {
		return err
	}

	w, err := watcher.New(watcher.Config{
		Path:        evalFile,
		DebounceDur: cfg.Watch.Debounce(),
	})
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	fmt.Fprintf(out, "\nWatching %s for changes (ctrl-c to stop)\n", evalFile)

	for {
		select {
		case <-onChange:
			log.Info(log.CatWatcher, "snapshot changed, re-evaluating", "file", evalFile)
			fmt.Fprintf(out, "\n--- %s changed ---\n", evalFile)
			if err := runEvalOnce(out, true); err != nil {
				// A half-written snapshot mid-save is expected; report
				// and keep watching.
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case <-sigs:
			return nil
		}
	}
}

// renderEvaluation prints the step-by-step report for a loaded session.
func renderEvaluation(out io.Writer, s *session.Session) {
	ctx := context.Background()
	snapshot := s.Snapshot()

	for _, step := range s.VisibleSteps() {
		if evalStep != "" && step.ID != evalStep {
			continue
		}

		fmt.Fprintf(out, "%s (%s)\n", step.Title, step.ID)
		if step.Field != "" {
			if value := snapshot.Value(step.Field); value != "" {
				fmt.Fprintf(out, "  selected: %s\n", value)
			}
		}

		if step.Kind != catalog.KindSingleSelect && step.Kind != catalog.KindMultiSelect {
			continue
		}
		for _, opt := range s.Provider().Annotate(ctx, step.ID, snapshot) {
			if opt.Result.Compatible {
				fmt.Fprintf(out, "  [ok]   %s\n", opt.Value)
			} else {
				fmt.Fprintf(out, "  [skip] %s: %s\n", opt.Value, opt.Result.Reason)
			}
		}
	}

	if failures := s.ValidateAll(); len(failures) > 0 {
		fmt.Fprintln(out, "\nValidation failures:")
		for _, failure := range failures {
			fmt.Fprintf(out, "  - %s\n", failure.Err)
		}
	} else {
		fmt.Fprintln(out, "\nConfiguration is valid.")
	}

	stats := s.EvaluatorStats()
	fmt.Fprintf(out, "Evaluations: %d (option cache %d/%d, step cache %d/%d)\n",
		stats.Evaluations,
		stats.OptionHits, stats.OptionHits+stats.OptionMisses,
		stats.StepHits, stats.StepHits+stats.StepMisses)
}
