package repository

import (
	"context"
	"fmt"
	"math/rand"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"sync"
	"time"
)

// HeadlineRepository lists news headlines for one ticker
type HeadlineRepository interface {
	ListHeadlines(ctx context.Context, symbol string, start, end time.Time) ([]domain.Headline, error)
}

// SentimentEventRepository produces scored news events for the universe
type SentimentEventRepository interface {
	ListEvents(ctx context.Context, symbols []string, start, end time.Time) ([]domain.SentimentEvent, error)
}

var syntheticLabels = []domain.SentimentLabel{
	domain.SentimentLabel_Positive,
	domain.SentimentLabel_Neutral,
	domain.SentimentLabel_Negative,
}

type syntheticSentimentRepositoryHandler struct {
	Seed      int64
	NumEvents int
}

// NewSyntheticSentimentRepository draws NumEvents events with a uniformly
// random ticker, label and day in [start, end]. Every call reseeds, so the
// same inputs always yield the same events.
func NewSyntheticSentimentRepository(seed int64, numEvents int) SentimentEventRepository {
	return syntheticSentimentRepositoryHandler{
		Seed:      seed,
		NumEvents: numEvents,
	}
}

func (h syntheticSentimentRepositoryHandler) ListEvents(ctx context.Context, symbols []string, start, end time.Time) ([]domain.SentimentEvent, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("cannot generate sentiment events for empty universe")
	}
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return nil, fmt.Errorf("invalid sentiment window %s to %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	r := rand.New(rand.NewSource(h.Seed))
	out := make([]domain.SentimentEvent, 0, h.NumEvents)
	for i := 0; i < h.NumEvents; i++ {
		symbol := symbols[r.Intn(len(symbols))]
		label := syntheticLabels[r.Intn(len(syntheticLabels))]
		date := start.AddDate(0, 0, r.Intn(days+1))
		out = append(out, domain.SentimentEvent{
			Symbol:   symbol,
			Date:     date,
			Label:    label,
			Score:    label.Score(),
			Headline: fmt.Sprintf("%s Inc. reports earnings.", symbol),
		})
	}
	return out, nil
}

type headlineSentimentRepositoryHandler struct {
	HeadlineRepository  HeadlineRepository
	SentimentClassifier SentimentClassifier
	NumWorkers          int
}

// NewHeadlineSentimentRepository classifies real headlines. A ticker whose
// headlines cannot be fetched contributes no events; classification failures
// drop the single headline.
func NewHeadlineSentimentRepository(headlines HeadlineRepository, classifier SentimentClassifier, numWorkers int) SentimentEventRepository {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return headlineSentimentRepositoryHandler{
		HeadlineRepository:  headlines,
		SentimentClassifier: classifier,
		NumWorkers:          numWorkers,
	}
}

type headlineEventsResult struct {
	symbol string
	events []domain.SentimentEvent
	err    error
}

func (h headlineSentimentRepositoryHandler) ListEvents(ctx context.Context, symbols []string, start, end time.Time) ([]domain.SentimentEvent, error) {
	log := logger.FromContext(ctx)

	inputCh := make(chan string, len(symbols))
	resultCh := make(chan headlineEventsResult, len(symbols))
	var wg sync.WaitGroup
	for i := 0; i < h.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range inputCh {
				events, err := h.eventsForSymbol(ctx, symbol, start, end)
				resultCh <- headlineEventsResult{symbol: symbol, events: events, err: err}
			}
		}()
	}
	for _, s := range symbols {
		inputCh <- s
	}
	close(inputCh)
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := []domain.SentimentEvent{}
	numFailed := 0
	var lastErr error
	for r := range resultCh {
		if r.err != nil {
			numFailed++
			lastErr = r.err
			log.Debugf("skipping headlines for %s: %v", r.symbol, r.err)
			continue
		}
		out = append(out, r.events...)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if len(symbols) > 0 && numFailed == len(symbols) {
		return nil, fmt.Errorf("failed to fetch headlines for every symbol: %w", lastErr)
	}
	return out, nil
}

func (h headlineSentimentRepositoryHandler) eventsForSymbol(ctx context.Context, symbol string, start, end time.Time) ([]domain.SentimentEvent, error) {
	log := logger.FromContext(ctx)
	headlines, err := h.HeadlineRepository.ListHeadlines(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}

	out := []domain.SentimentEvent{}
	for _, hl := range headlines {
		label, err := h.SentimentClassifier.Classify(ctx, hl.Headline)
		if err != nil {
			log.Debugf("dropping headline for %s: %v", symbol, err)
			continue
		}
		out = append(out, domain.SentimentEvent{
			Symbol:   symbol,
			Date:     hl.Date,
			Label:    label,
			Score:    label.Score(),
			Headline: hl.Headline,
		})
	}
	return out, nil
}
