package cmd

import (
	"database/sql"
	"fmt"
	"sentimentfactor/api"
	"sentimentfactor/internal/app"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/repository"
	l1_service "sentimentfactor/internal/service/l1"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Dependencies is everything the entrypoints need; the ingest commands
// reach past the app layer to the raw sources
type Dependencies struct {
	Config      *config.Config
	Db          *sql.DB
	ApiHandler  *api.ApiHandler
	BacktestApp app.BacktestApp

	TickerRepository   repository.TickerRepository
	PriceSource        repository.PriceRepository
	FundamentalsSource repository.FundamentalsRepository
}

func CloseDependencies(deps *Dependencies) {
	if deps == nil || deps.Db == nil {
		return
	}
	if err := deps.Db.Close(); err != nil {
		zap.S().Errorw("failed to close db", "error", err.Error())
	}
}

func InitializeDependencies(configPath string) (*Dependencies, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return InitializeDependenciesFromConfig(cfg)
}

func InitializeDependenciesFromConfig(cfg *config.Config) (*Dependencies, error) {
	var dbConn *sql.DB
	if cfg.Db.Enabled() {
		var err error
		dbConn, err = sql.Open("postgres", cfg.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
	}

	tickerRepository, err := newTickerRepository(cfg, dbConn)
	if err != nil {
		return nil, err
	}

	alpacaRepository := repository.NewAlpacaRepository(repository.AlpacaConfig{
		ApiKey:            cfg.Alpaca.ApiKey,
		ApiSecret:         cfg.Alpaca.ApiSecret,
		DataURL:           cfg.Alpaca.DataURL,
		Feed:              cfg.Alpaca.Feed,
		NewsRatePerSecond: cfg.Sentiment.RatePerSecond,
		MaxHeadlines:      cfg.Sentiment.MaxHeadlinesPerTicker,
	})

	priceSource, err := newPriceSource(cfg, dbConn, alpacaRepository)
	if err != nil {
		return nil, err
	}
	fundamentalsSource, err := newFundamentalsSource(cfg, dbConn)
	if err != nil {
		return nil, err
	}
	sentimentService, err := newSentimentService(cfg, alpacaRepository)
	if err != nil {
		return nil, err
	}

	priceService := l1_service.NewPriceService(
		priceSource,
		cfg.Prices.MinDailyObservations,
		cfg.Prices.MinMonthlyObservations,
	)
	fundamentalsService := l1_service.NewFundamentalsService(fundamentalsSource, l1_service.FundamentalsConfig{
		NumWorkers:    cfg.Fundamentals.Workers,
		RatePerSecond: cfg.Fundamentals.RatePerSecond,
		Timeout:       cfg.Fundamentals.Timeout,
		MaxAttempts:   cfg.Fundamentals.MaxAttempts,
	})

	var backtestRunRepository repository.BacktestRunRepository
	if dbConn != nil {
		backtestRunRepository = repository.NewBacktestRunRepository(dbConn)
	}

	backtestApp := app.NewBacktestApp(
		tickerRepository,
		priceService,
		fundamentalsService,
		sentimentService,
		backtestRunRepository,
		dbConn,
	)

	return &Dependencies{
		Config:      cfg,
		Db:          dbConn,
		BacktestApp: backtestApp,
		ApiHandler: &api.ApiHandler{
			Db:                    dbConn,
			BacktestApp:           backtestApp,
			BacktestRunRepository: backtestRunRepository,
			Config:                cfg,
		},
		TickerRepository:   tickerRepository,
		PriceSource:        priceSource,
		FundamentalsSource: fundamentalsSource,
	}, nil
}

func newTickerRepository(cfg *config.Config, dbConn *sql.DB) (repository.TickerRepository, error) {
	filter := repository.TickerFilter{
		Benchmark:  cfg.Universe.Benchmark,
		MaxTickers: cfg.Universe.MaxTickers,
	}
	switch cfg.Universe.Source {
	case "csv":
		return repository.NewCsvTickerRepository(cfg.Universe.Path, filter), nil
	case "postgres":
		if dbConn == nil {
			return nil, fmt.Errorf("universe.source postgres requires db settings")
		}
		return repository.NewTickerRepository(dbConn, filter), nil
	}
	return nil, fmt.Errorf("unknown universe.source %q", cfg.Universe.Source)
}

func newPriceSource(cfg *config.Config, dbConn *sql.DB, alpacaRepository repository.AlpacaRepository) (repository.PriceRepository, error) {
	switch cfg.Prices.Source {
	case "yahoo":
		return repository.NewYahooPriceRepository(cfg.Fundamentals.Workers), nil
	case "alpaca":
		return alpacaRepository, nil
	case "postgres":
		if dbConn == nil {
			return nil, fmt.Errorf("prices.source postgres requires db settings")
		}
		return repository.NewAdjustedPriceRepository(dbConn), nil
	case "parquet":
		if cfg.Parquet.DataDir == "" {
			return nil, fmt.Errorf("prices.source parquet requires parquet.data_dir")
		}
		return repository.NewParquetPriceRepository(cfg.Parquet.DataDir, cfg.Parquet.Market), nil
	case "csv":
		return repository.NewCsvPriceRepository(cfg.Prices.CsvPath), nil
	}
	return nil, fmt.Errorf("unknown prices.source %q", cfg.Prices.Source)
}

func newFundamentalsSource(cfg *config.Config, dbConn *sql.DB) (repository.FundamentalsRepository, error) {
	switch cfg.Fundamentals.Source {
	case "yahoo":
		return repository.NewYahooFundamentalsRepository(), nil
	case "postgres":
		if dbConn == nil {
			return nil, fmt.Errorf("fundamentals.source postgres requires db settings")
		}
		return repository.NewAssetFundamentalsRepository(dbConn), nil
	}
	return nil, fmt.Errorf("unknown fundamentals.source %q", cfg.Fundamentals.Source)
}

// newSentimentService returns nil for the none source so strategies
// that ask for sentiment fail at setup
func newSentimentService(cfg *config.Config, headlines repository.HeadlineRepository) (l1_service.SentimentService, error) {
	switch cfg.Sentiment.Source {
	case "synthetic":
		return l1_service.NewSentimentService(
			repository.NewSyntheticSentimentRepository(cfg.Sentiment.Seed, cfg.Sentiment.NumEvents),
		), nil
	case "headlines":
		classifier, err := repository.NewGptRepository(cfg.OpenAI.ApiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create sentiment classifier: %w", err)
		}
		return l1_service.NewSentimentService(
			repository.NewHeadlineSentimentRepository(headlines, classifier, cfg.Fundamentals.Workers),
		), nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown sentiment.source %q", cfg.Sentiment.Source)
}
