package l1_service

import (
	"context"
	"sentimentfactor/internal/logger"
	"sentimentfactor/internal/repository"
	"sentimentfactor/internal/util"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type FundamentalsService interface {
	LoadPriceToBook(ctx context.Context, symbols []string) (map[string]float64, LookupStats)
}

// LookupStats counts the outcome of every per-ticker lookup. A ticker is in
// exactly one bucket.
type LookupStats struct {
	Processed int
	// no ratio, or a ratio that is not positive
	Skipped  int
	Failures int
}

type FundamentalsConfig struct {
	NumWorkers    int
	RatePerSecond float64
	Timeout       time.Duration
	MaxAttempts   int
	RetryDelay    time.Duration
}

type fundamentalsServiceHandler struct {
	FundamentalsRepository repository.FundamentalsRepository
	Config                 FundamentalsConfig
}

func NewFundamentalsService(fundamentalsRepository repository.FundamentalsRepository, cfg FundamentalsConfig) FundamentalsService {
	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 250 * time.Millisecond
	}
	return fundamentalsServiceHandler{
		FundamentalsRepository: fundamentalsRepository,
		Config:                 cfg,
	}
}

type priceToBookResult struct {
	symbol string
	pb     *float64
	err    error
}

// LoadPriceToBook looks every ticker up independently. Failures never abort
// the load; the ticker just has no ratio.
func (h fundamentalsServiceHandler) LoadPriceToBook(ctx context.Context, symbols []string) (map[string]float64, LookupStats) {
	log := logger.FromContext(ctx)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if h.Config.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(h.Config.RatePerSecond), 1)
	}

	inputCh := make(chan string, len(symbols))
	resultCh := make(chan priceToBookResult, len(symbols))
	var wg sync.WaitGroup

	for i := 0; i < h.Config.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range inputCh {
				var pb *float64
				err := util.Retry(ctx, h.Config.MaxAttempts, h.Config.RetryDelay, h.Config.Timeout, func(ctx context.Context) error {
					if err := limiter.Wait(ctx); err != nil {
						return err
					}
					var err error
					pb, err = h.FundamentalsRepository.GetPriceToBook(ctx, symbol)
					return err
				})
				resultCh <- priceToBookResult{symbol: symbol, pb: pb, err: err}
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

	out := map[string]float64{}
	stats := LookupStats{}
	for r := range resultCh {
		switch {
		case r.err != nil:
			stats.Failures++
			log.Debugf("failed to get price to book for %s: %v", r.symbol, r.err)
		case r.pb == nil || *r.pb <= 0:
			stats.Skipped++
		default:
			stats.Processed++
			out[r.symbol] = *r.pb
		}
	}

	log.Infof("price to book: %d found, %d skipped, %d failed", stats.Processed, stats.Skipped, stats.Failures)
	return out, stats
}
