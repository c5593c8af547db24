package app

import (
	"context"
	"fmt"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	l3_service "sentimentfactor/internal/service/l3"
	"time"
)

type CompareInput struct {
	Baseline  config.StrategyConfig
	Candidate config.StrategyConfig
	Start     time.Time
	End       time.Time

	SentimentStart time.Time
	SentimentEnd   time.Time
	MaxTickers     int
	Persist        bool
}

type CompareResult struct {
	Baseline  *RunResult
	Candidate *RunResult
	// both series restricted to the dates they share
	AlignedBaseline  domain.ReturnSeries
	AlignedCandidate domain.ReturnSeries
	BaselineSummary  *domain.PerformanceSummary
	CandidateSummary *domain.PerformanceSummary
}

// Compare runs both strategies and summarizes them over their common
// rebalance dates, so neither is credited for periods the other skipped
func (h backtestAppHandler) Compare(ctx context.Context, in CompareInput) (*CompareResult, error) {
	profile, _ := domain.GetProfile(ctx)

	runs := []*RunResult{}
	for _, strategy := range []config.StrategyConfig{in.Baseline, in.Candidate} {
		span, endSpan := profile.StartNewSpan("run " + strategy.Name)
		subProfile, endSubProfile := span.NewSubProfile()
		result, err := h.Run(domain.WithProfile(ctx, subProfile), RunInput{
			Strategy:       strategy,
			Start:          in.Start,
			End:            in.End,
			SentimentStart: in.SentimentStart,
			SentimentEnd:   in.SentimentEnd,
			MaxTickers:     in.MaxTickers,
			Persist:        in.Persist,
		})
		endSubProfile()
		endSpan()
		if err != nil {
			return nil, fmt.Errorf("failed to run strategy %s: %w", strategy.Name, err)
		}
		runs = append(runs, result)
	}

	out := &CompareResult{
		Baseline:  runs[0],
		Candidate: runs[1],
	}
	out.AlignedBaseline, out.AlignedCandidate = domain.Align(runs[0].Returns, runs[1].Returns)
	if len(out.AlignedBaseline) == 0 {
		return nil, fmt.Errorf("strategies %s and %s share no return dates: %w", in.Baseline.Name, in.Candidate.Name, domain.ErrNoReturns)
	}

	var err error
	out.BaselineSummary, err = l3_service.Summarize(out.AlignedBaseline)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize %s: %w", in.Baseline.Name, err)
	}
	out.CandidateSummary, err = l3_service.Summarize(out.AlignedCandidate)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize %s: %w", in.Candidate.Name, err)
	}

	logger.FromContext(ctx).Infow("strategy comparison complete",
		"baseline", in.Baseline.Name,
		"candidate", in.Candidate.Name,
		"periods", len(out.AlignedBaseline),
		"baselineSharpe", out.BaselineSummary.SharpeRatio,
		"candidateSharpe", out.CandidateSummary.SharpeRatio,
	)

	return out, nil
}
