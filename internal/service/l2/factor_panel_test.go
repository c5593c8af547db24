package l2_service

import (
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func monthEnds(n int) []time.Time {
	return util.MonthEnds(util.NewDate(2022, 1, 1), util.NewDate(2022, 1, 1).AddDate(0, n-1, 0))
}

func TestMomentum(t *testing.T) {
	dates := monthEnds(4)
	prices := domain.NewPanel(dates, []string{"A", "B", "C"})
	for i, d := range dates {
		prices.Set(d, "A", 100+10*float64(i))
		if i != 1 {
			prices.Set(d, "B", 50)
		}
		prices.Set(d, "C", 0)
	}

	mom := Momentum(prices, 2)
	require.Equal(t, dates, mom.Dates)

	// no history for the first two dates
	_, ok := mom.Get(dates[0], "A")
	require.False(t, ok)
	_, ok = mom.Get(dates[1], "A")
	require.False(t, ok)

	// A trades at 100, 110, 120, 130
	v, ok := mom.Get(dates[2], "A")
	require.True(t, ok)
	require.InDelta(t, 120.0/100-1, v, 1e-12)
	v, ok = mom.Get(dates[3], "A")
	require.True(t, ok)
	require.InDelta(t, 130.0/110-1, v, 1e-12)

	// base price missing
	_, ok = mom.Get(dates[3], "B")
	require.False(t, ok)
	v, ok = mom.Get(dates[2], "B")
	require.True(t, ok)
	require.Equal(t, 0.0, v)

	// zero base price
	_, ok = mom.Get(dates[2], "C")
	require.False(t, ok)
}

func TestValue(t *testing.T) {
	dates := monthEnds(3)
	v := Value(map[string]float64{"A": 2.5, "X": 1}, dates, []string{"A", "B"})
	require.Equal(t, []string{"A", "B"}, v.Symbols)
	require.Equal(t, []float64{-2.5, -2.5, -2.5}, v.Column("A"))
	require.Empty(t, v.Column("B"))
}

func TestBuildFactorPanel(t *testing.T) {
	t.Run("intersects dates and unions symbols", func(t *testing.T) {
		dates := monthEnds(5)
		mom := domain.NewPanel(dates, []string{"A", "B"})
		mom.Set(dates[3], "A", 0.1)
		mom.Set(dates[4], "B", 0.2)
		sent := domain.NewPanel(dates[2:], []string{"B", "C"})
		sent.Set(dates[3], "C", 1)

		fp, err := BuildFactorPanel([]FactorColumn{
			{Factor: domain.FactorName_Momentum, Panel: mom},
			{Factor: domain.FactorName_Sentiment, Panel: sent},
		})
		require.NoError(t, err)
		require.Equal(t, dates[2:], fp.Dates)
		require.Equal(t, []string{"A", "B", "C"}, fp.Symbols)
		require.Equal(t, []domain.FactorName{domain.FactorName_Momentum, domain.FactorName_Sentiment}, fp.Factors)

		row := fp.Row(dates[3])
		diff := cmp.Diff(map[domain.FactorName]map[string]float64{
			domain.FactorName_Momentum:  {"A": 0.1},
			domain.FactorName_Sentiment: {"C": 1},
		}, row.Values, cmpopts.EquateEmpty())
		require.Empty(t, diff)
	})

	t.Run("empty intersection", func(t *testing.T) {
		dates := monthEnds(4)
		_, err := BuildFactorPanel([]FactorColumn{
			{Factor: domain.FactorName_Momentum, Panel: domain.NewPanel(dates[:2], []string{"A"})},
			{Factor: domain.FactorName_Value, Panel: domain.NewPanel(dates[2:], []string{"A"})},
		})
		require.ErrorIs(t, err, domain.ErrEmptyPanel)
		require.True(t, domain.IsKind(err, domain.ErrorKind_EmptyPanel))
	})

	t.Run("duplicate factor", func(t *testing.T) {
		p := domain.NewPanel(monthEnds(1), []string{"A"})
		_, err := BuildFactorPanel([]FactorColumn{
			{Factor: domain.FactorName_Value, Panel: p},
			{Factor: domain.FactorName_Value, Panel: p},
		})
		require.True(t, domain.IsKind(err, domain.ErrorKind_Setup))
	})
}
