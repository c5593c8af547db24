package l3_service

import (
	"sentimentfactor/internal/domain"
	"time"
)

// ForwardReturn realizes the snapshot's long/short return between its date
// and next. Every held ticker needs a usable price on both dates; there is
// no partial credit.
func ForwardReturn(prices *domain.Panel, snapshot domain.PortfolioSnapshot, next time.Time) (*domain.PeriodReturn, error) {
	if len(snapshot.Long) == 0 || len(snapshot.Short) == 0 {
		return nil, domain.NewEligibilityGap(domain.SkipReason_LegTooSmall, "empty leg on %s", snapshot.Date.Format(time.DateOnly))
	}

	longReturn, err := legReturn(prices, snapshot.Long, snapshot.Date, next)
	if err != nil {
		return nil, err
	}
	shortReturn, err := legReturn(prices, snapshot.Short, snapshot.Date, next)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodReturn{
		Date:        snapshot.Date,
		End:         next,
		Return:      longReturn - shortReturn,
		LongReturn:  longReturn,
		ShortReturn: shortReturn,
	}, nil
}

// legReturn is the equal weighted mean of simple returns
func legReturn(prices *domain.Panel, symbols []string, start, end time.Time) (float64, error) {
	total := 0.0
	for _, symbol := range symbols {
		p0, ok := prices.Get(start, symbol)
		if !ok || p0 == 0 {
			return 0, domain.NewEligibilityGap(
				domain.SkipReason_MissingForwardPrice,
				"no price for %s on %s", symbol, start.Format(time.DateOnly),
			)
		}
		p1, ok := prices.Get(end, symbol)
		if !ok {
			return 0, domain.NewEligibilityGap(
				domain.SkipReason_MissingForwardPrice,
				"no price for %s on %s", symbol, end.Format(time.DateOnly),
			)
		}
		total += p1/p0 - 1
	}
	return total / float64(len(symbols)), nil
}
