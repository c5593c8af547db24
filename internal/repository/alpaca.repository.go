package repository

import (
	"context"
	"fmt"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const alpacaBarBatchSize = 100

// AlpacaRepository serves adjusted daily bars and news headlines from the
// alpaca market data api
type AlpacaRepository interface {
	PriceRepository
	HeadlineRepository
}

type AlpacaConfig struct {
	ApiKey    string
	ApiSecret string
	DataURL   string
	Feed      string
	// max news requests per second; 0 means unlimited
	NewsRatePerSecond float64
	MaxHeadlines      int
}

func NewAlpacaRepository(cfg AlpacaConfig) AlpacaRepository {
	opts := marketdata.ClientOpts{
		APIKey:    cfg.ApiKey,
		APISecret: cfg.ApiSecret,
	}
	if cfg.DataURL != "" {
		opts.BaseURL = cfg.DataURL
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.NewsRatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.NewsRatePerSecond), 1)
	}
	maxHeadlines := cfg.MaxHeadlines
	if maxHeadlines <= 0 {
		maxHeadlines = 50
	}

	return &alpacaRepositoryHandler{
		MdClient:     marketdata.NewClient(opts),
		Feed:         cfg.Feed,
		NewsLimiter:  limiter,
		MaxHeadlines: maxHeadlines,
	}
}

type alpacaRepositoryHandler struct {
	MdClient     *marketdata.Client
	Feed         string
	NewsLimiter  *rate.Limiter
	MaxHeadlines int
}

func (h alpacaRepositoryHandler) GetPrices(ctx context.Context, symbols []string, start, end time.Time) ([]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)
	out := []domain.AssetPrice{}

	for i := 0; i < len(symbols); i += alpacaBarBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch := symbols[i:min(i+alpacaBarBatchSize, len(symbols))]

		multiBars, err := h.MdClient.GetMultiBars(batch, marketdata.GetBarsRequest{
			TimeFrame:  marketdata.OneDay,
			Adjustment: marketdata.All,
			Start:      start,
			End:        end,
			Feed:       h.Feed,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get bars for batch starting at %s: %w", batch[0], err)
		}

		for symbol, bars := range multiBars {
			for _, b := range bars {
				if b.Close <= 0 {
					continue
				}
				out = append(out, domain.AssetPrice{
					Symbol: strings.ToUpper(symbol),
					Price:  decimal.NewFromFloat(b.Close),
					Date:   b.Timestamp.UTC(),
				})
			}
		}
		log.Debugf("fetched bars for %d/%d symbols", min(i+alpacaBarBatchSize, len(symbols)), len(symbols))
	}

	SortPrices(out)
	return out, nil
}

func (h alpacaRepositoryHandler) ListHeadlines(ctx context.Context, symbol string, start, end time.Time) ([]domain.Headline, error) {
	if err := h.NewsLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	news, err := h.MdClient.GetNews(marketdata.GetNewsRequest{
		Symbols:    []string{symbol},
		Start:      start,
		End:        end,
		TotalLimit: h.MaxHeadlines,
		Sort:       marketdata.SortAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get news for %s: %w", symbol, err)
	}

	out := make([]domain.Headline, 0, len(news))
	for _, n := range news {
		if strings.TrimSpace(n.Headline) == "" {
			continue
		}
		out = append(out, domain.Headline{
			Symbol:   symbol,
			Headline: n.Headline,
			Date:     n.CreatedAt.UTC(),
			Source:   "alpaca",
		})
	}
	return out, nil
}
