package main

import (
	"context"
	"database/sql"
	"fmt"
	"sentimentfactor/cmd"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/logger"
	"sentimentfactor/internal/repository"

	"github.com/spf13/cobra"
)

var (
	sourceFlag       string
	tickerSourceFlag string
	exportFormat     string
	exportOut        string
)

var ingestTickersCmd = &cobra.Command{
	Use:   "ingest-tickers",
	Short: "Copy the ticker csv into postgres",
	RunE: func(c *cobra.Command, args []string) error {
		deps, cfg, err := loadIngestDependencies(func(cfg *config.Config) {
			cfg.Universe.Source = "csv"
			if tickerSourceFlag != "" {
				cfg.Universe.Path = tickerSourceFlag
			}
		})
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := contextOf(c)
		symbols, err := deps.TickerRepository.List(ctx)
		if err != nil {
			return err
		}
		dest := repository.NewTickerRepository(deps.Db, repository.TickerFilter{Benchmark: cfg.Universe.Benchmark})
		return inTx(ctx, deps.Db, func(tx *sql.Tx) error {
			if err := dest.Upsert(tx, symbols); err != nil {
				return err
			}
			logger.FromContext(ctx).Infow("ingested tickers", "count", len(symbols))
			return nil
		})
	},
}

var ingestPricesCmd = &cobra.Command{
	Use:   "ingest-prices",
	Short: "Copy prices from a remote source into the adjusted_price table",
	RunE: func(c *cobra.Command, args []string) error {
		if sourceFlag == "postgres" {
			return fmt.Errorf("cannot ingest prices from postgres into itself")
		}
		deps, cfg, err := loadIngestDependencies(func(cfg *config.Config) {
			cfg.Prices.Source = sourceFlag
		})
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := contextOf(c)
		symbols, err := universe(ctx, deps, cfg)
		if err != nil {
			return err
		}
		window := resolveWindows(cfg)
		dest := repository.NewAdjustedPriceRepository(deps.Db)
		return inTx(ctx, deps.Db, func(tx *sql.Tx) error {
			n, err := repository.IngestPrices(ctx, tx, deps.PriceSource, dest, symbols, window.Start, window.End)
			if err != nil {
				return err
			}
			logger.FromContext(ctx).Infow("ingested prices", "source", cfg.Prices.Source, "rows", n)
			return nil
		})
	},
}

var ingestFundamentalsCmd = &cobra.Command{
	Use:   "ingest-fundamentals",
	Short: "Store today's price-to-book ratios in postgres",
	RunE: func(c *cobra.Command, args []string) error {
		deps, cfg, err := loadIngestDependencies(func(cfg *config.Config) {
			cfg.Fundamentals.Source = "yahoo"
		})
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := contextOf(c)
		symbols, err := universe(ctx, deps, cfg)
		if err != nil {
			return err
		}
		dest := repository.NewAssetFundamentalsRepository(deps.Db)
		return inTx(ctx, deps.Db, func(tx *sql.Tx) error {
			n, err := repository.IngestPriceToBook(ctx, tx, deps.FundamentalsSource, dest, symbols)
			if err != nil {
				return err
			}
			logger.FromContext(ctx).Infow("ingested price to book", "rows", n)
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download prices from the configured source into a csv file or parquet directory",
	RunE: func(c *cobra.Command, args []string) error {
		if exportOut == "" {
			return fmt.Errorf("--out is required")
		}
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := contextOf(c)
		symbols, err := universe(ctx, deps, deps.Config)
		if err != nil {
			return err
		}
		window := resolveWindows(deps.Config)
		prices, err := deps.PriceSource.GetPrices(ctx, symbols, window.Start, window.End)
		if err != nil {
			return err
		}

		switch exportFormat {
		case "csv":
			err = repository.WritePricesCsv(exportOut, prices)
		case "parquet":
			err = repository.WriteBars(exportOut, deps.Config.Parquet.Market, prices)
		default:
			return fmt.Errorf("unknown export format %q", exportFormat)
		}
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Infow("exported prices", "format", exportFormat, "rows", len(prices), "out", exportOut)
		return nil
	},
}

func init() {
	ingestTickersCmd.Flags().StringVar(&tickerSourceFlag, "path", "", "ticker csv (defaults to universe.path)")
	ingestPricesCmd.Flags().StringVar(&sourceFlag, "source", "yahoo", "price source: yahoo, alpaca, parquet or csv")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv or parquet")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "csv file or parquet data directory")

	rootCmd.AddCommand(ingestTickersCmd, ingestPricesCmd, ingestFundamentalsCmd, exportCmd)
}

// loadIngestDependencies applies modify to the loaded config and requires
// a database to write into
func loadIngestDependencies(modify func(cfg *config.Config)) (*cmd.Dependencies, *config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if startFlag != "" {
		cfg.Prices.Start = startFlag
	}
	if endFlag != "" {
		cfg.Prices.End = endFlag
	}
	modify(cfg)
	if !cfg.Db.Enabled() {
		return nil, nil, fmt.Errorf("ingest commands require db settings")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	deps, err := cmd.InitializeDependenciesFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return deps, cfg, nil
}

func universe(ctx context.Context, deps *cmd.Dependencies, cfg *config.Config) ([]string, error) {
	symbols, err := deps.TickerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickers: %w", err)
	}
	if n := maxTickers(cfg); n > 0 && len(symbols) > n {
		symbols = symbols[:n]
	}
	// the benchmark is filtered out of the universe but still worth storing
	if cfg.Universe.Benchmark != "" {
		symbols = append(symbols, cfg.Universe.Benchmark)
	}
	return symbols, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
