package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sentimentfactor/internal/db/models/postgres/public/model"
	"sentimentfactor/internal/db/models/postgres/public/table"
	"strings"

	"github.com/gocarina/gocsv"
)

// TickerRepository loads the investable universe as an ordered list of
// uppercase symbols
type TickerRepository interface {
	List(ctx context.Context) ([]string, error)
}

type TickerFilter struct {
	// excluded from the universe, e.g. ^GSPC
	Benchmark  string
	MaxTickers int
}

// Apply normalizes raw symbols: trims, uppercases, drops empties and
// duplicates, removes the benchmark and truncates to MaxTickers
func (f TickerFilter) Apply(raw []string) []string {
	benchmark := strings.ToUpper(strings.TrimSpace(f.Benchmark))
	seen := map[string]bool{}
	out := []string{}
	for _, r := range raw {
		s := strings.ToUpper(strings.TrimSpace(r))
		if s == "" || s == benchmark || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if f.MaxTickers > 0 && len(out) == f.MaxTickers {
			break
		}
	}
	return out
}

type tickerRow struct {
	Symbol string `csv:"ticker"`
}

type csvTickerRepositoryHandler struct {
	Path   string
	Filter TickerFilter
}

// NewCsvTickerRepository reads a header-less, single column ticker file
func NewCsvTickerRepository(path string, filter TickerFilter) TickerRepository {
	return csvTickerRepositoryHandler{
		Path:   path,
		Filter: filter,
	}
}

func (h csvTickerRepositoryHandler) List(ctx context.Context) ([]string, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ticker file %s: %w", h.Path, err)
	}
	defer f.Close()

	rows := []tickerRow{}
	if err := gocsv.UnmarshalWithoutHeaders(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse ticker file %s: %w", h.Path, err)
	}

	raw := make([]string, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, r.Symbol)
	}
	return h.Filter.Apply(raw), nil
}

type tickerRepositoryHandler struct {
	Db     *sql.DB
	Filter TickerFilter
}

// NewTickerRepository lists the universe from the ticker table, in symbol order
func NewTickerRepository(db *sql.DB, filter TickerFilter) *tickerRepositoryHandler {
	return &tickerRepositoryHandler{
		Db:     db,
		Filter: filter,
	}
}

func (h tickerRepositoryHandler) List(ctx context.Context) ([]string, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		ORDER_BY(table.Ticker.Symbol.ASC())

	result := []model.Ticker{}
	if err := query.QueryContext(ctx, h.Db, &result); err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	raw := make([]string, 0, len(result))
	for _, t := range result {
		raw = append(raw, t.Symbol)
	}
	return h.Filter.Apply(raw), nil
}

func (h tickerRepositoryHandler) Upsert(tx *sql.Tx, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}
	models := make([]model.Ticker, 0, len(symbols))
	for _, s := range symbols {
		models = append(models, model.Ticker{
			Symbol: strings.ToUpper(strings.TrimSpace(s)),
		})
	}

	query := table.Ticker.
		INSERT(table.Ticker.MutableColumns).
		MODELS(models).
		ON_CONFLICT(table.Ticker.Symbol).
		DO_NOTHING()

	if _, err := query.Exec(tx); err != nil {
		return fmt.Errorf("failed to upsert tickers: %w", err)
	}
	return nil
}
