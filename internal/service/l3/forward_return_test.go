package l3_service

import (
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestForwardReturn(t *testing.T) {
	start, end := util.NewDate(2023, 3, 31), util.NewDate(2023, 4, 30)
	dates := []time.Time{start, end}
	symbols := []string{"AAPL", "MSFT", "XOM", "CVX", "ZERO"}

	prices := domain.NewPanel(dates, symbols)
	for s, p := range map[string][2]float64{
		"AAPL": {100, 110},
		"MSFT": {200, 210},
		"XOM":  {50, 45},
		"CVX":  {80, 80},
		"ZERO": {0, 10},
	} {
		prices.Set(start, s, p[0])
		prices.Set(end, s, p[1])
	}

	t.Run("equal weighted legs", func(t *testing.T) {
		ret, err := ForwardReturn(prices, domain.PortfolioSnapshot{
			Date:  start,
			Long:  []string{"AAPL", "MSFT"},
			Short: []string{"XOM", "CVX"},
			N:     2,
		}, end)
		require.NoError(t, err)
		require.InDelta(t, 0.075, ret.LongReturn, 1e-12)
		require.InDelta(t, -0.05, ret.ShortReturn, 1e-12)
		require.InDelta(t, 0.125, ret.Return, 1e-12)
		require.Equal(t, start, ret.Date)
		require.Equal(t, end, ret.End)
	})

	t.Run("missing price voids the period", func(t *testing.T) {
		missing := prices.Restrict(dates, symbols)
		missing.Unset(end, "CVX")
		_, err := ForwardReturn(missing, domain.PortfolioSnapshot{
			Date:  start,
			Long:  []string{"AAPL"},
			Short: []string{"CVX"},
			N:     1,
		}, end)
		gap, ok := domain.AsEligibilityGap(err)
		require.True(t, ok)
		require.Equal(t, domain.SkipReason_MissingForwardPrice, gap.Reason)
	})

	t.Run("zero base price", func(t *testing.T) {
		_, err := ForwardReturn(prices, domain.PortfolioSnapshot{
			Date:  start,
			Long:  []string{"ZERO"},
			Short: []string{"CVX"},
			N:     1,
		}, end)
		gap, ok := domain.AsEligibilityGap(err)
		require.True(t, ok)
		require.Equal(t, domain.SkipReason_MissingForwardPrice, gap.Reason)
	})

	t.Run("next date outside the price panel", func(t *testing.T) {
		_, err := ForwardReturn(prices, domain.PortfolioSnapshot{
			Date:  start,
			Long:  []string{"AAPL"},
			Short: []string{"CVX"},
			N:     1,
		}, util.NewDate(2023, 5, 31))
		require.True(t, domain.IsKind(err, domain.ErrorKind_Eligibility))
	})
}
