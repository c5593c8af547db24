package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sentimentfactor/internal/domain"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"
)

// BarRecord is the on-disk schema of a daily bar file
type BarRecord struct {
	Symbol     string  `parquet:"symbol"`
	Timestamp  int64   `parquet:"timestamp,timestamp(millisecond)"` // Unix ms
	Open       float64 `parquet:"open"`
	High       float64 `parquet:"high"`
	Low        float64 `parquet:"low"`
	Close      float64 `parquet:"close"`
	Volume     int64   `parquet:"volume"`
	TradeCount int64   `parquet:"trade_count"`
	VWAP       float64 `parquet:"vwap"`
}

type parquetPriceRepositoryHandler struct {
	DataDir string
	Market  string
}

// NewParquetPriceRepository reads daily bars laid out as
//
//	<DataDir>/<market>/daily/<SYMBOL>/<YYYY>.parquet
func NewParquetPriceRepository(dataDir, market string) PriceRepository {
	if market == "" {
		market = "us"
	}
	return parquetPriceRepositoryHandler{
		DataDir: dataDir,
		Market:  market,
	}
}

func (h parquetPriceRepositoryHandler) barPath(symbol string, year int) string {
	return filepath.Join(h.DataDir, h.Market, "daily", strings.ToUpper(symbol), fmt.Sprintf("%d.parquet", year))
}

func (h parquetPriceRepositoryHandler) GetPrices(ctx context.Context, symbols []string, start, end time.Time) ([]domain.AssetPrice, error) {
	out := []domain.AssetPrice{}
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for year := start.Year(); year <= end.Year(); year++ {
			path := h.barPath(symbol, year)
			records, err := parquet.ReadFile[BarRecord](path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}

			for _, r := range records {
				ts := time.UnixMilli(r.Timestamp).UTC()
				if ts.Before(start) || ts.After(end) || r.Close <= 0 {
					continue
				}
				out = append(out, domain.AssetPrice{
					Symbol: strings.ToUpper(symbol),
					Price:  decimal.NewFromFloat(r.Close),
					Date:   ts,
				})
			}
		}
	}

	SortPrices(out)
	return out, nil
}

// WriteBars writes one year file per (symbol, year) in the layout
// NewParquetPriceRepository reads, replacing existing files
func WriteBars(dataDir, market string, prices []domain.AssetPrice) error {
	h := parquetPriceRepositoryHandler{DataDir: dataDir, Market: market}
	type key struct {
		symbol string
		year   int
	}
	groups := map[key][]BarRecord{}
	for _, p := range prices {
		k := key{symbol: strings.ToUpper(p.Symbol), year: p.Date.Year()}
		c := p.Price.InexactFloat64()
		groups[k] = append(groups[k], BarRecord{
			Symbol:    k.symbol,
			Timestamp: p.Date.UnixMilli(),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
		})
	}

	for k, records := range groups {
		path := h.barPath(k.symbol, k.year)
		if err := writeParquetFile(path, records); err != nil {
			return fmt.Errorf("writing bars for %s/%d: %w", k.symbol, k.year, err)
		}
	}
	return nil
}

func writeParquetFile[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return parquet.WriteFile(path, records)
}
