package l3_service

import (
	"context"
	"fmt"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	l2_service "sentimentfactor/internal/service/l2"
	"time"
)

type BacktestInput struct {
	FactorPanel *domain.FactorPanel
	// monthly prices used to realize forward returns
	Prices *domain.Panel
	// leading factor panel dates without enough history to trade
	Lookback  int
	MinValid  int
	Selection l2_service.SelectionConfig
}

type BacktestResult struct {
	Returns   domain.ReturnSeries
	Snapshots []domain.PortfolioSnapshot
	Skipped   []domain.SkippedDate
	// number of rebalance transitions that produced a return
	Processed int
}

// Backtest walks the rebalance dates in order. On each date it scores the
// cross-section, picks the long and short legs and holds them until the
// adjacent date in the index. A date that cannot be traded is recorded in
// Skipped and the walk moves on; only non-eligibility errors end the run.
func Backtest(ctx context.Context, in BacktestInput) (*BacktestResult, error) {
	if in.FactorPanel == nil || in.Prices == nil {
		return nil, domain.NewError(domain.ErrorKind_Setup, "backtest", fmt.Errorf("factor panel and prices are required"))
	}
	if in.Lookback < 0 {
		return nil, domain.NewError(domain.ErrorKind_Setup, "backtest", fmt.Errorf("lookback must be non-negative, got %d", in.Lookback))
	}
	log := logger.FromContext(ctx)

	result := &BacktestResult{
		Returns:   domain.ReturnSeries{},
		Snapshots: []domain.PortfolioSnapshot{},
		Skipped:   []domain.SkippedDate{},
	}

	dates := []time.Time{}
	if in.Lookback < len(in.FactorPanel.Dates) {
		dates = in.FactorPanel.Dates[in.Lookback:]
	}

	for i := 0; i+1 < len(dates); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date, next := dates[i], dates[i+1]

		ret, snapshot, err := rebalance(in, date, next)
		if err != nil {
			gap, ok := domain.AsEligibilityGap(err)
			if !ok {
				return nil, fmt.Errorf("failed to rebalance on %s: %w", date.Format(time.DateOnly), err)
			}
			log.Debugw("skipping rebalance date",
				"date", date.Format(time.DateOnly),
				"reason", gap.Reason,
				"detail", gap.Detail,
			)
			result.Skipped = append(result.Skipped, domain.SkippedDate{
				Date:   date,
				Reason: gap.Reason,
				Detail: gap.Detail,
			})
			continue
		}

		result.Returns = append(result.Returns, *ret)
		result.Snapshots = append(result.Snapshots, *snapshot)
		result.Processed++
	}

	log.Infow("backtest complete",
		"dates", len(dates),
		"processed", result.Processed,
		"skipped", len(result.Skipped),
	)

	return result, nil
}

func rebalance(in BacktestInput, date, next time.Time) (*domain.PeriodReturn, *domain.PortfolioSnapshot, error) {
	scores, err := l2_service.ScoreCrossSection(in.FactorPanel.Row(date), in.MinValid)
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := l2_service.SelectPortfolio(scores, in.Selection)
	if err != nil {
		return nil, nil, err
	}
	ret, err := ForwardReturn(in.Prices, *snapshot, next)
	if err != nil {
		return nil, nil, err
	}
	return ret, snapshot, nil
}
