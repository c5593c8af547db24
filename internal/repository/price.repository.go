package repository

import (
	"context"
	"fmt"
	"os"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// PriceRepository returns split and dividend adjusted daily closes for the
// requested symbols over [start, end]. A symbol the source has nothing for is
// simply absent from the result; only a failure of the whole request is an
// error.
type PriceRepository interface {
	GetPrices(ctx context.Context, symbols []string, start, end time.Time) ([]domain.AssetPrice, error)
}

// SortPrices orders rows by symbol, then date
func SortPrices(prices []domain.AssetPrice) {
	sort.SliceStable(prices, func(i, j int) bool {
		if prices[i].Symbol != prices[j].Symbol {
			return prices[i].Symbol < prices[j].Symbol
		}
		return prices[i].Date.Before(prices[j].Date)
	})
}

type yahooPriceRepositoryHandler struct {
	NumWorkers int
}

func NewYahooPriceRepository(numWorkers int) PriceRepository {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return yahooPriceRepositoryHandler{
		NumWorkers: numWorkers,
	}
}

type yahooPriceResult struct {
	symbol string
	prices []domain.AssetPrice
	err    error
}

func (h yahooPriceRepositoryHandler) GetPrices(ctx context.Context, symbols []string, start, end time.Time) ([]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)
	if len(symbols) == 0 {
		return []domain.AssetPrice{}, nil
	}

	inputCh := make(chan string, len(symbols))
	resultCh := make(chan yahooPriceResult, len(symbols))
	var wg sync.WaitGroup

	for i := 0; i < h.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range inputCh {
				if ctx.Err() != nil {
					resultCh <- yahooPriceResult{symbol: symbol, err: ctx.Err()}
					continue
				}
				prices, err := getYahooChart(symbol, start, end)
				resultCh <- yahooPriceResult{symbol: symbol, prices: prices, err: err}
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

	out := []domain.AssetPrice{}
	numFailed := 0
	var lastErr error
	for r := range resultCh {
		if r.err != nil {
			numFailed++
			lastErr = r.err
			log.Debugf("no prices for %s: %v", r.symbol, r.err)
			continue
		}
		out = append(out, r.prices...)
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("price download interrupted: %w", ctx.Err())
	}
	if numFailed == len(symbols) {
		return nil, fmt.Errorf("failed to download prices for all %d symbols: %w", numFailed, lastErr)
	}
	if numFailed > 0 {
		log.Warnf("failed to download prices for %d/%d symbols", numFailed, len(symbols))
	}

	SortPrices(out)
	return out, nil
}

func getYahooChart(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		price := decimalFrom(iter.Bar().AdjClose)
		if price.IsZero() {
			continue
		}
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  price,
			Date:   time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	return out, nil
}

// chart bars carry adjusted closes as decimal upstream and as float64 in
// the psanford fork
func decimalFrom(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	}
	return decimal.Zero
}

type priceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

type csvPriceRepositoryHandler struct {
	Path string
}

// NewCsvPriceRepository reads long format date,symbol,price rows
func NewCsvPriceRepository(path string) PriceRepository {
	return csvPriceRepositoryHandler{Path: path}
}

func (h csvPriceRepositoryHandler) GetPrices(ctx context.Context, symbols []string, start, end time.Time) ([]domain.AssetPrice, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file %s: %w", h.Path, err)
	}
	defer f.Close()

	rows := []priceRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse price file %s: %w", h.Path, err)
	}

	wanted := map[string]bool{}
	for _, s := range symbols {
		wanted[strings.ToUpper(s)] = true
	}

	out := []domain.AssetPrice{}
	for i, r := range rows {
		symbol := strings.ToUpper(strings.TrimSpace(r.Symbol))
		if !wanted[symbol] {
			continue
		}
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(r.Date))
		if err != nil {
			return nil, fmt.Errorf("invalid date on row %d of %s: %w", i+2, h.Path, err)
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  decimal.NewFromFloat(r.Price),
			Date:   date,
		})
	}

	SortPrices(out)
	return out, nil
}

// WritePricesCsv writes prices in the format NewCsvPriceRepository reads
func WritePricesCsv(path string, prices []domain.AssetPrice) error {
	rows := make([]priceRow, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, priceRow{
			Date:   p.Date.Format(time.DateOnly),
			Symbol: p.Symbol,
			Price:  p.Price.InexactFloat64(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
