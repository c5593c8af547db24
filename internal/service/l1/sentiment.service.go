package l1_service

import (
	"context"
	"fmt"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"sentimentfactor/internal/repository"
	"sentimentfactor/internal/util"
	"time"

	"github.com/montanaflynn/stats"
)

type SentimentService interface {
	LoadSentimentPanel(ctx context.Context, symbols []string, start, end time.Time) (*domain.Panel, error)
}

type sentimentServiceHandler struct {
	SentimentEventRepository repository.SentimentEventRepository
}

func NewSentimentService(sentimentEventRepository repository.SentimentEventRepository) SentimentService {
	return sentimentServiceHandler{
		SentimentEventRepository: sentimentEventRepository,
	}
}

func (h sentimentServiceHandler) LoadSentimentPanel(ctx context.Context, symbols []string, start, end time.Time) (*domain.Panel, error) {
	log := logger.FromContext(ctx)

	events, err := h.SentimentEventRepository.ListEvents(ctx, symbols, start, end)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKind_Provider, "load sentiment", err)
	}

	panel, err := AggregateSentiment(symbols, events)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKind_Provider, "load sentiment", err)
	}

	log.Infof("aggregated %d sentiment events into %d months", len(events), len(panel.Dates))
	return panel, nil
}

// AggregateSentiment averages event scores per (calendar month, ticker). The
// panel is indexed by the month-end of every month with at least one event;
// a ticker with no events in a month is missing there.
func AggregateSentiment(symbols []string, events []domain.SentimentEvent) (*domain.Panel, error) {
	wanted := map[string]bool{}
	for _, s := range symbols {
		wanted[s] = true
	}

	// month end -> symbol -> scores
	scores := map[time.Time]map[string][]float64{}
	for _, e := range events {
		if !wanted[e.Symbol] {
			continue
		}
		monthEnd := util.MonthEnd(e.Date)
		if _, ok := scores[monthEnd]; !ok {
			scores[monthEnd] = map[string][]float64{}
		}
		scores[monthEnd][e.Symbol] = append(scores[monthEnd][e.Symbol], e.Score)
	}

	dates := make([]time.Time, 0, len(scores))
	for d := range scores {
		dates = append(dates, d)
	}
	panel := domain.NewPanel(dates, symbols)
	for date, bySymbol := range scores {
		for symbol, s := range bySymbol {
			mean, err := stats.Mean(s)
			if err != nil {
				return nil, fmt.Errorf("failed to average sentiment for %s on %s: %w", symbol, date.Format(time.DateOnly), err)
			}
			panel.Set(date, symbol, mean)
		}
	}
	return panel, nil
}
