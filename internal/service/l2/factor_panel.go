package l2_service

import (
	"fmt"
	"sentimentfactor/internal/domain"
	"time"
)

// FactorColumn is one independently indexed factor table
type FactorColumn struct {
	Factor domain.FactorName
	Panel  *domain.Panel
}

// Momentum is the trailing percentage change over lookback rebalance
// periods. The first lookback dates are always missing, as is any cell whose
// current or base price is missing or whose base price is zero.
func Momentum(prices *domain.Panel, lookback int) *domain.Panel {
	out := domain.NewPanel(prices.Dates, prices.Symbols)
	if lookback < 1 {
		return out
	}
	for i := lookback; i < len(prices.Dates); i++ {
		date, base := prices.Dates[i], prices.Dates[i-lookback]
		for _, symbol := range prices.Symbols {
			p0, ok := prices.Get(base, symbol)
			if !ok || p0 == 0 {
				continue
			}
			p1, ok := prices.Get(date, symbol)
			if !ok {
				continue
			}
			out.Set(date, symbol, p1/p0-1)
		}
	}
	return out
}

// Value is the negated ratio broadcast across every date. Tickers without a
// ratio stay in the panel as missing.
func Value(ratios map[string]float64, dates []time.Time, symbols []string) *domain.Panel {
	out := domain.NewPanel(dates, symbols)
	for _, symbol := range out.Symbols {
		ratio, ok := ratios[symbol]
		if !ok {
			continue
		}
		for _, d := range out.Dates {
			out.Set(d, symbol, -ratio)
		}
	}
	return out
}

// BuildFactorPanel aligns the columns on the dates they all share. The symbol
// set is the union across columns, in first-seen order.
func BuildFactorPanel(columns []FactorColumn) (*domain.FactorPanel, error) {
	if len(columns) == 0 {
		return nil, domain.NewError(domain.ErrorKind_Setup, "build factor panel", fmt.Errorf("no factor columns"))
	}

	panels := make([]*domain.Panel, 0, len(columns))
	factors := make([]domain.FactorName, 0, len(columns))
	seenFactor := map[domain.FactorName]bool{}
	seenSymbol := map[string]bool{}
	symbols := []string{}
	for _, c := range columns {
		if c.Panel == nil {
			return nil, domain.NewError(domain.ErrorKind_Setup, "build factor panel", fmt.Errorf("nil panel for factor %s", c.Factor))
		}
		if seenFactor[c.Factor] {
			return nil, domain.NewError(domain.ErrorKind_Setup, "build factor panel", fmt.Errorf("duplicate factor %s", c.Factor))
		}
		seenFactor[c.Factor] = true
		factors = append(factors, c.Factor)
		panels = append(panels, c.Panel)

		for _, s := range c.Panel.Symbols {
			if !seenSymbol[s] {
				seenSymbol[s] = true
				symbols = append(symbols, s)
			}
		}
	}

	dates := domain.IntersectDates(panels...)
	if len(dates) == 0 {
		return nil, domain.ErrEmptyPanel
	}

	restricted := map[domain.FactorName]*domain.Panel{}
	for _, c := range columns {
		restricted[c.Factor] = c.Panel.Restrict(dates, symbols)
	}

	return domain.NewFactorPanel(dates, symbols, factors, restricted), nil
}
