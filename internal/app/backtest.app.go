package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/db/models/postgres/public/model"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"sentimentfactor/internal/repository"
	l1_service "sentimentfactor/internal/service/l1"
	l2_service "sentimentfactor/internal/service/l2"
	l3_service "sentimentfactor/internal/service/l3"
	"sentimentfactor/internal/util"
	"time"

	"github.com/google/uuid"
)

// BacktestApp runs factor strategies end to end: load the universe and
// its data, build the factor panel, walk the rebalance dates and summarize
type BacktestApp interface {
	Run(ctx context.Context, in RunInput) (*RunResult, error)
	Compare(ctx context.Context, in CompareInput) (*CompareResult, error)
}

type RunInput struct {
	Strategy config.StrategyConfig
	// price history window
	Start time.Time
	End   time.Time
	// sentiment event window; defaults to the price window
	SentimentStart time.Time
	SentimentEnd   time.Time
	// truncates the ticker source when positive
	MaxTickers int
	Persist    bool
}

type RunResult struct {
	RunID     *uuid.UUID
	Strategy  config.StrategyConfig
	Returns   domain.ReturnSeries
	Snapshots []domain.PortfolioSnapshot
	Skipped   []domain.SkippedDate
	Processed int
	Summary   *domain.PerformanceSummary
	// set when the factor panel was fabricated after an empty intersection
	Synthetic bool

	PriceStats        *l1_service.PriceLoadStats
	FundamentalsStats *l1_service.LookupStats
}

type backtestAppHandler struct {
	TickerRepository      repository.TickerRepository
	PriceService          l1_service.PriceService
	FundamentalsService   l1_service.FundamentalsService
	SentimentService      l1_service.SentimentService
	BacktestRunRepository repository.BacktestRunRepository
	// nil disables persistence
	Db *sql.DB
}

func NewBacktestApp(
	tickerRepository repository.TickerRepository,
	priceService l1_service.PriceService,
	fundamentalsService l1_service.FundamentalsService,
	sentimentService l1_service.SentimentService,
	backtestRunRepository repository.BacktestRunRepository,
	db *sql.DB,
) BacktestApp {
	return backtestAppHandler{
		TickerRepository:      tickerRepository,
		PriceService:          priceService,
		FundamentalsService:   fundamentalsService,
		SentimentService:      sentimentService,
		BacktestRunRepository: backtestRunRepository,
		Db:                    db,
	}
}

func (h backtestAppHandler) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	if err := in.Strategy.Validate(); err != nil {
		return nil, domain.NewError(domain.ErrorKind_Setup, "validate strategy", err)
	}
	factors, err := factorNames(in.Strategy.Factors)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKind_Setup, "validate strategy", err)
	}
	floorPolicy, err := l2_service.NewFloorPolicy(in.Strategy.FloorPolicy)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKind_Setup, "validate strategy", err)
	}
	if !util.DateLte(in.Start, in.End) {
		return nil, domain.NewError(domain.ErrorKind_Setup, "validate strategy", fmt.Errorf("start %s is after end %s", in.Start.Format(time.DateOnly), in.End.Format(time.DateOnly)))
	}

	log := logger.FromContext(ctx).With("strategy", in.Strategy.Name)
	profile, _ := domain.GetProfile(ctx)

	_, endSpan := profile.StartNewSpan("load tickers")
	symbols, err := h.TickerRepository.List(ctx)
	endSpan()
	if err != nil {
		return nil, domain.NewError(domain.ErrorKind_Setup, "load tickers", err)
	}
	if len(symbols) == 0 {
		return nil, domain.NewError(domain.ErrorKind_Setup, "load tickers", fmt.Errorf("ticker source is empty"))
	}
	if in.MaxTickers > 0 && len(symbols) > in.MaxTickers {
		symbols = symbols[:in.MaxTickers]
	}

	result := &RunResult{Strategy: in.Strategy}

	_, endSpan = profile.StartNewSpan("load prices")
	prices, priceStats, err := h.PriceService.LoadPricePanel(ctx, symbols, in.Start, in.End)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}
	result.PriceStats = priceStats

	columns := []l2_service.FactorColumn{}
	for _, f := range factors {
		switch f {
		case domain.FactorName_Momentum:
			columns = append(columns, l2_service.FactorColumn{
				Factor: f,
				Panel:  l2_service.Momentum(prices, in.Strategy.LookbackPeriods),
			})
		case domain.FactorName_Value:
			_, endSpan = profile.StartNewSpan("load fundamentals")
			ratios, stats := h.FundamentalsService.LoadPriceToBook(ctx, prices.Symbols)
			endSpan()
			result.FundamentalsStats = &stats
			columns = append(columns, l2_service.FactorColumn{
				Factor: f,
				Panel:  l2_service.Value(ratios, prices.Dates, prices.Symbols),
			})
		case domain.FactorName_Sentiment:
			if h.SentimentService == nil {
				return nil, domain.NewError(domain.ErrorKind_Setup, "load sentiment", fmt.Errorf("no sentiment source configured"))
			}
			start, end := in.SentimentStart, in.SentimentEnd
			if start.IsZero() || end.IsZero() {
				start, end = in.Start, in.End
			}
			_, endSpan = profile.StartNewSpan("load sentiment")
			sentiment, err := h.SentimentService.LoadSentimentPanel(ctx, prices.Symbols, start, end)
			endSpan()
			if err != nil {
				return nil, fmt.Errorf("failed to load sentiment: %w", err)
			}
			columns = append(columns, l2_service.FactorColumn{Factor: f, Panel: sentiment})
		}
	}

	_, endSpan = profile.StartNewSpan("build factor panel")
	factorPanel, err := l2_service.BuildFactorPanel(columns)
	endSpan()
	if errors.Is(err, domain.ErrEmptyPanel) && in.Strategy.EmptyPanelPolicy == "synthetic" {
		log.Warnw("factor sources share no dates, falling back to synthetic data",
			"seed", in.Strategy.FallbackSeed,
		)
		r := rand.New(rand.NewSource(in.Strategy.FallbackSeed))
		factorPanel, prices, err = l3_service.SyntheticFallback(r, in.Strategy.LookbackPeriods, factors)
		result.Synthetic = true
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build factor panel: %w", err)
	}

	_, endSpan = profile.StartNewSpan("backtest")
	backtestResult, err := l3_service.Backtest(logger.WithLogger(ctx, log), l3_service.BacktestInput{
		FactorPanel: factorPanel,
		Prices:      prices,
		Lookback:    in.Strategy.LookbackPeriods,
		MinValid:    in.Strategy.MinValid,
		Selection: l2_service.SelectionConfig{
			Ratio:       in.Strategy.LegRatio,
			Floor:       in.Strategy.LegFloor,
			FloorPolicy: floorPolicy,
		},
	})
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to run backtest: %w", err)
	}
	result.Returns = backtestResult.Returns
	result.Snapshots = backtestResult.Snapshots
	result.Skipped = backtestResult.Skipped
	result.Processed = backtestResult.Processed

	if len(result.Returns) == 0 {
		return nil, fmt.Errorf("strategy %s skipped all %d rebalance dates: %w", in.Strategy.Name, len(result.Skipped), domain.ErrNoReturns)
	}
	result.Summary, err = l3_service.Summarize(result.Returns)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize returns: %w", err)
	}

	if in.Persist {
		_, endSpan = profile.StartNewSpan("persist results")
		runID, err := h.persist(ctx, in, result)
		endSpan()
		if err != nil {
			return nil, err
		}
		result.RunID = runID
	}

	log.Infow("strategy run complete",
		"processed", result.Processed,
		"skipped", len(result.Skipped),
		"synthetic", result.Synthetic,
		"annualizedReturn", result.Summary.AnnualizedReturn,
		"sharpe", result.Summary.SharpeRatio,
		"phasesMs", profile.Durations(),
	)

	return result, nil
}

func (h backtestAppHandler) persist(ctx context.Context, in RunInput, result *RunResult) (*uuid.UUID, error) {
	if h.Db == nil || h.BacktestRunRepository == nil {
		return nil, domain.NewError(domain.ErrorKind_Setup, "persist results", fmt.Errorf("no database configured"))
	}
	run, returns, err := toRunModels(in, result)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.BacktestRunRepository.Add(tx, *run, returns)
	if err != nil {
		return nil, fmt.Errorf("failed to save backtest run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit backtest run: %w", err)
	}

	return &inserted.BacktestRunID, nil
}

func toRunModels(in RunInput, result *RunResult) (*model.BacktestRun, []model.BacktestReturn, error) {
	strategyJson, err := json.Marshal(in.Strategy)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal strategy: %w", err)
	}

	run := &model.BacktestRun{
		StrategyName: in.Strategy.Name,
		Config:       string(strategyJson),
		StartDate:    in.Start,
		EndDate:      in.End,
		Synthetic:    result.Synthetic,
		Processed:    int32(result.Processed),
		Skipped:      int32(len(result.Skipped)),
		CreatedAt:    time.Now().UTC(),
	}
	if result.Summary != nil {
		run.AnnualizedReturn = util.FloatPointer(result.Summary.AnnualizedReturn)
		run.AnnualizedVolatility = util.FloatPointer(result.Summary.AnnualizedVolatility)
		run.SharpeRatio = util.FloatPointer(result.Summary.SharpeRatio)
	}

	returns := make([]model.BacktestReturn, len(result.Returns))
	for i, r := range result.Returns {
		returns[i] = model.BacktestReturn{
			Date:        r.Date,
			EndDate:     r.End,
			Return:      r.Return,
			LongReturn:  r.LongReturn,
			ShortReturn: r.ShortReturn,
		}
	}
	return run, returns, nil
}

func factorNames(factors []string) ([]domain.FactorName, error) {
	out := make([]domain.FactorName, 0, len(factors))
	for _, f := range factors {
		name, err := domain.NewFactorName(f)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}
