package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sentimentfactor/internal/db/models/postgres/public/model"
	. "sentimentfactor/internal/db/models/postgres/public/table"
	"sentimentfactor/internal/domain"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// AdjustedPriceRepository is the postgres price store filled by the
// ingest-prices command
type AdjustedPriceRepository interface {
	PriceRepository
	Add(qrm.Executable, []model.AdjustedPrice) error
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return &adjustedPriceRepositoryHandler{
		Db: db,
	}
}

type adjustedPriceRepositoryHandler struct {
	Db *sql.DB
}

func (h adjustedPriceRepositoryHandler) Add(tx qrm.Executable, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}
	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func (h adjustedPriceRepositoryHandler) GetPrices(ctx context.Context, symbols []string, start, end time.Time) ([]domain.AssetPrice, error) {
	if len(symbols) == 0 {
		return []domain.AssetPrice{}, nil
	}
	postgresStr := make([]Expression, 0, len(symbols))
	for _, s := range symbols {
		postgresStr = append(postgresStr, String(s))
	}

	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.IN(postgresStr...),
				AdjustedPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Symbol.ASC(), AdjustedPrice.Date.ASC())

	result := []model.AdjustedPrice{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %d symbols: %w", len(symbols), err)
	}

	out := make([]domain.AssetPrice, 0, len(result))
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date.UTC(),
			Price:  decimal.NewFromFloat(p.Price),
		})
	}

	return out, nil
}

// IngestPrices copies everything source has for symbols into the
// adjusted_price table
func IngestPrices(ctx context.Context, tx qrm.Executable, source PriceRepository, dest AdjustedPriceRepository, symbols []string, start, end time.Time) (int, error) {
	prices, err := source.GetPrices(ctx, symbols, start, end)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	models := make([]model.AdjustedPrice, 0, len(prices))
	for _, p := range prices {
		models = append(models, model.AdjustedPrice{
			Symbol:    p.Symbol,
			Date:      p.Date,
			Price:     p.Price.InexactFloat64(),
			CreatedAt: now,
		})
	}

	if err := dest.Add(tx, models); err != nil {
		return 0, err
	}
	return len(models), nil
}
