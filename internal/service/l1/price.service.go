package l1_service

import (
	"context"
	"fmt"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"sentimentfactor/internal/repository"
	"sentimentfactor/internal/util"
	"sort"
	"time"
)

/**

behavior - load daily adjusted closes for the universe in one bulk request,
throw away tickers that barely traded, then collapse each ticker to one price
per calendar month (the last observation in the month), labeled with the
month-end date

*/

type PriceService interface {
	LoadPricePanel(ctx context.Context, symbols []string, start, end time.Time) (*domain.Panel, *PriceLoadStats, error)
}

type PriceLoadStats struct {
	Requested int
	// tickers dropped for too few daily or monthly observations
	DroppedSparse int
	// tickers the source returned nothing for
	Missing  int
	Retained int
}

type priceServiceHandler struct {
	PriceRepository        repository.PriceRepository
	MinDailyObservations   int
	MinMonthlyObservations int
}

func NewPriceService(priceRepository repository.PriceRepository, minDailyObservations, minMonthlyObservations int) PriceService {
	return priceServiceHandler{
		PriceRepository:        priceRepository,
		MinDailyObservations:   minDailyObservations,
		MinMonthlyObservations: minMonthlyObservations,
	}
}

func (h priceServiceHandler) LoadPricePanel(ctx context.Context, symbols []string, start, end time.Time) (*domain.Panel, *PriceLoadStats, error) {
	log := logger.FromContext(ctx)

	prices, err := h.PriceRepository.GetPrices(ctx, symbols, start, end)
	if err != nil {
		return nil, nil, domain.NewError(domain.ErrorKind_Provider, "load prices", err)
	}

	stats := &PriceLoadStats{Requested: len(symbols)}
	bySymbol := groupPrices(symbols, prices)

	retained := []string{}
	for _, symbol := range symbols {
		daily, ok := bySymbol[symbol]
		if !ok {
			stats.Missing++
			continue
		}
		if len(daily) < h.MinDailyObservations {
			stats.DroppedSparse++
			continue
		}
		retained = append(retained, symbol)
	}
	if len(retained) == 0 {
		return nil, stats, domain.NewError(
			domain.ErrorKind_Provider,
			"load prices",
			fmt.Errorf("none of %d tickers has at least %d daily prices", len(symbols), h.MinDailyObservations),
		)
	}

	panel := ResampleMonthEnd(retained, bySymbol)

	if h.MinMonthlyObservations > 0 {
		kept := []string{}
		for _, symbol := range panel.Symbols {
			if panel.CountPresent(symbol) >= h.MinMonthlyObservations {
				kept = append(kept, symbol)
			} else {
				stats.DroppedSparse++
			}
		}
		panel = panel.Restrict(panel.Dates, kept)
		if len(kept) == 0 {
			return nil, stats, domain.NewError(
				domain.ErrorKind_Provider,
				"load prices",
				fmt.Errorf("no ticker has at least %d monthly prices", h.MinMonthlyObservations),
			)
		}
	}
	stats.Retained = len(panel.Symbols)

	log.Infof("loaded monthly prices for %d/%d tickers over %d months", stats.Retained, stats.Requested, len(panel.Dates))
	return panel, stats, nil
}

// groupPrices buckets rows by requested symbol, each bucket in date order
func groupPrices(symbols []string, prices []domain.AssetPrice) map[string][]domain.AssetPrice {
	wanted := map[string]bool{}
	for _, s := range symbols {
		wanted[s] = true
	}
	out := map[string][]domain.AssetPrice{}
	for _, p := range prices {
		if !wanted[p.Symbol] || !p.Price.IsPositive() {
			continue
		}
		out[p.Symbol] = append(out[p.Symbol], p)
	}
	for symbol := range out {
		rows := out[symbol]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})
	}
	return out
}

// ResampleMonthEnd builds a month-end panel spanning every calendar month
// between the earliest and latest observation. Each cell is the last price
// observed in that month; months with no observation stay missing.
func ResampleMonthEnd(symbols []string, bySymbol map[string][]domain.AssetPrice) *domain.Panel {
	var first, last time.Time
	for _, symbol := range symbols {
		for _, p := range bySymbol[symbol] {
			if first.IsZero() || p.Date.Before(first) {
				first = p.Date
			}
			if p.Date.After(last) {
				last = p.Date
			}
		}
	}

	dates := []time.Time{}
	if !first.IsZero() {
		dates = util.MonthEnds(first, last)
	}
	panel := domain.NewPanel(dates, symbols)
	for _, symbol := range symbols {
		// rows are date ordered, so later observations overwrite earlier ones
		for _, p := range bySymbol[symbol] {
			panel.Set(util.MonthEnd(p.Date), symbol, p.Price.InexactFloat64())
		}
	}
	return panel
}
