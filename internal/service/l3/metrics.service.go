package l3_service

import (
	"fmt"
	"math"
	"sentimentfactor/internal/domain"

	"github.com/montanaflynn/stats"
)

// monthly rebalancing
const PeriodsPerYear = 12

// Summarize computes the cumulative curve and annualized statistics of a
// return series. Wealth is floored at zero, so a period that loses more
// than everything leaves the curve at zero from then on. The identity
// cumulative[i] = cumulative[i-1]*(1+r[i]) holds only while wealth stays
// positive.
func Summarize(series domain.ReturnSeries) (*domain.PerformanceSummary, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty return series")
	}

	cumulative := make([]float64, len(series))
	wealth := 1.0
	for i, r := range series {
		wealth = math.Max(0, wealth*(1+r.Return))
		cumulative[i] = wealth
	}

	annualizedReturn := -1.0
	if final := cumulative[len(cumulative)-1]; final > 0 {
		annualizedReturn = math.Pow(final, float64(PeriodsPerYear)/float64(len(series))) - 1
	}

	annualizedVolatility := 0.0
	// identical returns (or a single one) have exactly zero volatility
	if values := series.Values(); !allEqual(values) {
		stdev, err := stats.StandardDeviationSample(values)
		if err != nil {
			return nil, fmt.Errorf("failed to compute volatility: %w", err)
		}
		annualizedVolatility = stdev * math.Sqrt(PeriodsPerYear)
	}

	sharpeRatio := 0.0
	if annualizedVolatility > 0 {
		sharpeRatio = annualizedReturn / annualizedVolatility
	}

	return &domain.PerformanceSummary{
		Cumulative:           cumulative,
		AnnualizedReturn:     annualizedReturn,
		AnnualizedVolatility: annualizedVolatility,
		SharpeRatio:          sharpeRatio,
	}, nil
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
