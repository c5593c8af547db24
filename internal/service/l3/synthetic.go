package l3_service

import (
	"fmt"
	"math/rand"
	"sentimentfactor/internal/domain"
	l2_service "sentimentfactor/internal/service/l2"
	"sentimentfactor/internal/util"
)

const (
	syntheticPeriods = 25
	syntheticTickers = 50
)

// SyntheticFallback fabricates a factor panel and matching prices for runs
// whose real data has no dates in common. Draws happen in a fixed order
// (prices, value, sentiment; date-major) so a seed always yields the same
// panel whichever factors are requested.
func SyntheticFallback(r *rand.Rand, lookback int, factors []domain.FactorName) (*domain.FactorPanel, *domain.Panel, error) {
	first := util.NewDate(2022, 1, 1)
	dates := util.MonthEnds(first, first.AddDate(0, syntheticPeriods-1, 0))
	symbols := make([]string, syntheticTickers)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("TICKER%d", i)
	}

	prices := domain.NewPanel(dates, symbols)
	last := map[string]float64{}
	for _, d := range dates {
		for _, s := range symbols {
			p, ok := last[s]
			if !ok {
				p = 1
			}
			p *= 1 + r.NormFloat64()*0.05 + 0.01
			last[s] = p
			prices.Set(d, s, p)
		}
	}

	value := domain.NewPanel(dates, symbols)
	for _, d := range dates {
		for _, s := range symbols {
			value.Set(d, s, -(5 + r.Float64()*45))
		}
	}

	sentiment := domain.NewPanel(dates, symbols)
	for _, d := range dates {
		for _, s := range symbols {
			sentiment.Set(d, s, float64(r.Intn(3)-1))
		}
	}

	columns := []l2_service.FactorColumn{}
	for _, f := range factors {
		switch f {
		case domain.FactorName_Momentum:
			columns = append(columns, l2_service.FactorColumn{Factor: f, Panel: l2_service.Momentum(prices, lookback)})
		case domain.FactorName_Value:
			columns = append(columns, l2_service.FactorColumn{Factor: f, Panel: value})
		case domain.FactorName_Sentiment:
			columns = append(columns, l2_service.FactorColumn{Factor: f, Panel: sentiment})
		default:
			return nil, nil, domain.NewError(domain.ErrorKind_Setup, "synthetic fallback", fmt.Errorf("unknown factor %q", f))
		}
	}

	factorPanel, err := l2_service.BuildFactorPanel(columns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build synthetic factor panel: %w", err)
	}
	return factorPanel, prices, nil
}
