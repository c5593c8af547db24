package main

import (
	"fmt"
	"sentimentfactor/cmd"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/util"
	"time"

	"github.com/spf13/cobra"
)

var (
	configFile string
	outputJson bool

	// strategy overrides, zero means keep the preset value
	presetName       string
	factorsFlag      []string
	lookbackFlag     int
	minValidFlag     int
	legRatioFlag     float64
	legFloorFlag     int
	floorPolicyFlag  string
	emptyPanelFlag   string
	fallbackSeedFlag int64

	startFlag      string
	endFlag        string
	maxTickersFlag int
	persistFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "sentimentfactor",
	Short: "Long/short factor backtests with an optional news sentiment factor",
	Long: `Runs cross-sectional momentum, value and sentiment strategies over a
ticker universe, rebalancing monthly into equal-weighted long and short legs.

Examples:
  sentimentfactor run --preset baseline
  sentimentfactor run --preset sentiment --floor-policy skip
  sentimentfactor compare --baseline baseline --candidate sentiment
  sentimentfactor ingest-prices --start 2019-01-01
  sentimentfactor export --format parquet --out ./data`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&startFlag, "start", "", "price window start (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&endFlag, "end", "", "price window end (YYYY-MM-DD)")
	rootCmd.PersistentFlags().IntVar(&maxTickersFlag, "max-tickers", 0, "truncate the ticker universe")
}

func addStrategyFlags(c *cobra.Command) {
	c.Flags().StringSliceVar(&factorsFlag, "factors", nil, "factors to combine, e.g. momentum,value,sentiment")
	c.Flags().IntVar(&lookbackFlag, "lookback", 0, "momentum lookback in months")
	c.Flags().IntVar(&minValidFlag, "min-valid", 0, "minimum eligible tickers per date")
	c.Flags().Float64Var(&legRatioFlag, "leg-ratio", 0, "fraction of eligible tickers per leg")
	c.Flags().IntVar(&legFloorFlag, "leg-floor", 0, "minimum leg size")
	c.Flags().StringVar(&floorPolicyFlag, "floor-policy", "", "skip or force")
	c.Flags().StringVar(&emptyPanelFlag, "empty-panel-policy", "", "fail or synthetic")
	c.Flags().Int64Var(&fallbackSeedFlag, "fallback-seed", 0, "seed for the synthetic fallback")
	c.Flags().BoolVar(&persistFlag, "persist", false, "store the run in postgres")
	c.Flags().BoolVar(&outputJson, "json", false, "print the full result as JSON")
}

func strategyOverrides() config.StrategyConfig {
	return config.StrategyConfig{
		Factors:          factorsFlag,
		LookbackPeriods:  lookbackFlag,
		MinValid:         minValidFlag,
		LegRatio:         legRatioFlag,
		LegFloor:         legFloorFlag,
		FloorPolicy:      floorPolicyFlag,
		EmptyPanelPolicy: emptyPanelFlag,
		FallbackSeed:     fallbackSeedFlag,
	}
}

func loadDependencies() (*cmd.Dependencies, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if startFlag != "" {
		cfg.Prices.Start = startFlag
	}
	if endFlag != "" {
		cfg.Prices.End = endFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cmd.InitializeDependenciesFromConfig(cfg)
}

// resolveStrategy merges CLI overrides over a named preset, or over the
// configured default strategy when name is empty
func resolveStrategy(cfg *config.Config, name string, overrides config.StrategyConfig) (config.StrategyConfig, error) {
	base := cfg.Strategy
	if name != "" {
		p, err := cfg.Preset(name)
		if err != nil {
			return config.StrategyConfig{}, err
		}
		base = p
	}
	strategy := base.Merge(overrides)
	if err := strategy.Validate(); err != nil {
		return config.StrategyConfig{}, fmt.Errorf("invalid strategy: %w", err)
	}
	return strategy, nil
}

type runWindow struct {
	Start, End                   time.Time
	SentimentStart, SentimentEnd time.Time
}

// windows are validated by config.Load
func resolveWindows(cfg *config.Config) runWindow {
	start, _ := util.ParseDate(cfg.Prices.Start)
	end, _ := util.ParseDate(cfg.Prices.End)
	sentimentStart, _ := util.ParseDate(cfg.Sentiment.Start)
	sentimentEnd, _ := util.ParseDate(cfg.Sentiment.End)
	return runWindow{
		Start:          start,
		End:            end,
		SentimentStart: sentimentStart,
		SentimentEnd:   sentimentEnd,
	}
}

func maxTickers(cfg *config.Config) int {
	if maxTickersFlag > 0 {
		return maxTickersFlag
	}
	return cfg.Universe.MaxTickers
}
