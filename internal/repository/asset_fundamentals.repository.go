package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sentimentfactor/internal/db/models/postgres/public/model"
	. "sentimentfactor/internal/db/models/postgres/public/table"
	"sentimentfactor/internal/logger"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/piquette/finance-go/equity"
)

// FundamentalsRepository looks up the price-to-book ratio of one ticker.
// A nil ratio with no error means the source has no value for it.
type FundamentalsRepository interface {
	GetPriceToBook(ctx context.Context, symbol string) (*float64, error)
}

type yahooFundamentalsRepositoryHandler struct{}

func NewYahooFundamentalsRepository() FundamentalsRepository {
	return yahooFundamentalsRepositoryHandler{}
}

func (h yahooFundamentalsRepositoryHandler) GetPriceToBook(ctx context.Context, symbol string) (*float64, error) {
	type result struct {
		pb  *float64
		err error
	}
	// equity.Get has no context support, so the lookup races the deadline
	ch := make(chan result, 1)
	go func() {
		q, err := equity.Get(symbol)
		if err != nil {
			ch <- result{err: fmt.Errorf("failed to get quote for %s: %w", symbol, err)}
			return
		}
		if q == nil || q.PriceToBook == 0 {
			ch <- result{}
			return
		}
		pb := q.PriceToBook
		ch <- result{pb: &pb}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.pb, r.err
	}
}

type AssetFundamentalsRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetFundamentalsRepository(db *sql.DB) *AssetFundamentalsRepositoryHandler {
	return &AssetFundamentalsRepositoryHandler{Db: db}
}

func (h AssetFundamentalsRepositoryHandler) Add(tx qrm.Executable, af []model.AssetFundamental) error {
	if len(af) == 0 {
		return fmt.Errorf("no models were provided to insert into asset_fundamental")
	}
	query := AssetFundamental.
		INSERT(AssetFundamental.MutableColumns).
		MODELS(af).
		ON_CONFLICT(
			AssetFundamental.Symbol, AssetFundamental.Date,
		).DO_UPDATE(
		SET(
			AssetFundamental.PriceToBook.SET(AssetFundamental.EXCLUDED.PriceToBook),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add asset fundamental to db: %w", err)
	}

	return nil
}

// GetPriceToBook returns the most recently ingested ratio for symbol
func (h AssetFundamentalsRepositoryHandler) GetPriceToBook(ctx context.Context, symbol string) (*float64, error) {
	query := AssetFundamental.
		SELECT(AssetFundamental.AllColumns).
		WHERE(
			AssetFundamental.Symbol.EQ(String(symbol)),
		).
		ORDER_BY(AssetFundamental.Date.DESC()).
		LIMIT(1)

	out := model.AssetFundamental{}
	err := query.QueryContext(ctx, h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset fundamental with symbol %s: %w", symbol, err)
	}

	return out.PriceToBook, nil
}

// IngestPriceToBook stores today's ratio for every symbol the source has one for
func IngestPriceToBook(ctx context.Context, tx qrm.Executable, source FundamentalsRepository, dest *AssetFundamentalsRepositoryHandler, symbols []string) (int, error) {
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	log := logger.FromContext(ctx)
	models := []model.AssetFundamental{}
	for _, s := range symbols {
		pb, err := source.GetPriceToBook(ctx, s)
		if err != nil {
			log.Warnf("skipping %s: %v", s, err)
			continue
		}
		if pb == nil {
			continue
		}
		models = append(models, model.AssetFundamental{
			Symbol:      s,
			Date:        date,
			PriceToBook: pb,
			CreatedAt:   now,
		})
	}
	if len(models) == 0 {
		return 0, nil
	}
	if err := dest.Add(tx, models); err != nil {
		return 0, err
	}
	return len(models), nil
}
