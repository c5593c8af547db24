package main

import (
	"context"
	"fmt"
	"os"
	"sentimentfactor/cmd"
	"sentimentfactor/internal/app"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Backtest one strategy",
	RunE:  runBacktest,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&presetName, "preset", "", "named strategy preset (default strategy when empty)")
	addStrategyFlags(runCmd)
}

func runBacktest(c *cobra.Command, args []string) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)

	strategy, err := resolveStrategy(deps.Config, presetName, strategyOverrides())
	if err != nil {
		return err
	}
	window := resolveWindows(deps.Config)

	profile, endProfile := domain.NewProfile()
	ctx := domain.WithProfile(contextOf(c), profile)

	result, err := deps.BacktestApp.Run(ctx, app.RunInput{
		Strategy:       strategy,
		Start:          window.Start,
		End:            window.End,
		SentimentStart: window.SentimentStart,
		SentimentEnd:   window.SentimentEnd,
		MaxTickers:     maxTickers(deps.Config),
		Persist:        persistFlag || deps.Config.Db.PersistResults,
	})
	if err != nil {
		return fmt.Errorf("backtest failed: %w", err)
	}
	endProfile()

	if outputJson {
		util.Pprint(result)
		return nil
	}
	printRunResult(result)
	return nil
}

func contextOf(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printRunResult(result *app.RunResult) {
	fmt.Printf("strategy %s: %d returns, %d skipped dates", result.Strategy.Name, len(result.Returns), len(result.Skipped))
	if result.Synthetic {
		fmt.Print(" (synthetic data)")
	}
	fmt.Println()
	if result.RunID != nil {
		fmt.Printf("stored as run %s\n", result.RunID.String())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "date\tend\treturn\tlong\tshort\twealth")
	for i, r := range result.Returns {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			r.Date.Format(time.DateOnly),
			r.End.Format(time.DateOnly),
			r.Return,
			r.LongReturn,
			r.ShortReturn,
			result.Summary.Cumulative[i],
		)
	}
	w.Flush()

	printSummary(result.Strategy.Name, result.Summary)

	if len(result.Skipped) > 0 {
		fmt.Println("skipped:")
		for _, s := range result.Skipped {
			fmt.Printf("  %s %s %s\n", s.Date.Format(time.DateOnly), s.Reason, s.Detail)
		}
	}
}

func printSummary(name string, summary *domain.PerformanceSummary) {
	fmt.Printf("%s: annualized return %.2f%%, volatility %.2f%%, sharpe %.3f\n",
		name,
		summary.AnnualizedReturn*100,
		summary.AnnualizedVolatility*100,
		summary.SharpeRatio,
	)
}
