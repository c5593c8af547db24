package main

import (
	"fmt"
	"os"
	"sentimentfactor/cmd"
	"sentimentfactor/internal/app"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	baselinePreset  string
	candidatePreset string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Backtest two strategies and compare them on their common dates",
	Long: `Runs a baseline and a candidate strategy, aligns both return series on
the rebalance dates they share and summarizes each aligned series.
Strategy override flags apply to the candidate only.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&baselinePreset, "baseline", "baseline", "baseline preset")
	compareCmd.Flags().StringVar(&candidatePreset, "candidate", "sentiment", "candidate preset")
	addStrategyFlags(compareCmd)
}

func runCompare(c *cobra.Command, args []string) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)

	baseline, err := resolveStrategy(deps.Config, baselinePreset, config.StrategyConfig{})
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	candidate, err := resolveStrategy(deps.Config, candidatePreset, strategyOverrides())
	if err != nil {
		return fmt.Errorf("candidate: %w", err)
	}
	window := resolveWindows(deps.Config)

	profile, endProfile := domain.NewProfile()
	ctx := domain.WithProfile(contextOf(c), profile)

	result, err := deps.BacktestApp.Compare(ctx, app.CompareInput{
		Baseline:       baseline,
		Candidate:      candidate,
		Start:          window.Start,
		End:            window.End,
		SentimentStart: window.SentimentStart,
		SentimentEnd:   window.SentimentEnd,
		MaxTickers:     maxTickers(deps.Config),
		Persist:        persistFlag || deps.Config.Db.PersistResults,
	})
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}
	endProfile()

	if outputJson {
		util.Pprint(result)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "date\t%s\t%s\n", baseline.Name, candidate.Name)
	for i, r := range result.AlignedBaseline {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\n",
			r.Date.Format(time.DateOnly),
			r.Return,
			result.AlignedCandidate[i].Return,
		)
	}
	w.Flush()

	printSummary(baseline.Name, result.BaselineSummary)
	printSummary(candidate.Name, result.CandidateSummary)
	return nil
}
