package l3_service

import (
	"math"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func seriesOf(returns ...float64) domain.ReturnSeries {
	out := domain.ReturnSeries{}
	for i, r := range returns {
		d := util.MonthEnd(util.NewDate(2022, 1+i, 1))
		out = append(out, domain.PeriodReturn{
			Date:   d,
			End:    util.MonthEnd(d.AddDate(0, 0, 1)),
			Return: r,
		})
	}
	return out
}

func TestSummarize(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		_, err := Summarize(domain.ReturnSeries{})
		require.Error(t, err)
	})

	t.Run("two periods", func(t *testing.T) {
		summary, err := Summarize(seriesOf(0.1, -0.05))
		require.NoError(t, err)

		diff := cmp.Diff([]float64{1.1, 1.045}, summary.Cumulative, cmpopts.EquateApprox(0, 1e-12))
		require.Empty(t, diff)
		require.InDelta(t, math.Pow(1.045, 6)-1, summary.AnnualizedReturn, 1e-12)
		require.InDelta(t, 0.15/math.Sqrt(2)*math.Sqrt(12), summary.AnnualizedVolatility, 1e-12)
		require.InDelta(t, summary.AnnualizedReturn/summary.AnnualizedVolatility, summary.SharpeRatio, 1e-12)
	})

	t.Run("equal returns have zero sharpe", func(t *testing.T) {
		summary, err := Summarize(seriesOf(0.02, 0.02, 0.02, 0.02))
		require.NoError(t, err)
		require.Equal(t, 0.0, summary.AnnualizedVolatility)
		require.Equal(t, 0.0, summary.SharpeRatio)
		require.Greater(t, summary.AnnualizedReturn, 0.0)
	})

	t.Run("single period", func(t *testing.T) {
		summary, err := Summarize(seriesOf(0.01))
		require.NoError(t, err)
		require.Equal(t, 0.0, summary.AnnualizedVolatility)
		require.Equal(t, 0.0, summary.SharpeRatio)
		require.InDelta(t, math.Pow(1.01, 12)-1, summary.AnnualizedReturn, 1e-12)
	})

	t.Run("wealth is floored at zero", func(t *testing.T) {
		summary, err := Summarize(seriesOf(0.2, -1.4, 0.5))
		require.NoError(t, err)
		require.Equal(t, []float64{1.2, 0, 0}, summary.Cumulative)
		require.Equal(t, -1.0, summary.AnnualizedReturn)
	})

	t.Run("cumulative compounds each return", func(t *testing.T) {
		returns := []float64{0.03, -0.01, 0.07, -0.12, 0.0, 0.04}
		summary, err := Summarize(seriesOf(returns...))
		require.NoError(t, err)
		for i, r := range returns {
			prev := 1.0
			if i > 0 {
				prev = summary.Cumulative[i-1]
			}
			require.GreaterOrEqual(t, summary.Cumulative[i], 0.0)
			require.InDelta(t, prev*(1+r), summary.Cumulative[i], 1e-12)
		}
	})
}
