package repository

import (
	"context"
	"os"
	"path/filepath"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCsvPriceRepository_GetPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	err := os.WriteFile(path, []byte(`date,symbol,price
2022-01-03,aapl,100
2022-01-03,MSFT,200
2022-01-04,AAPL,101.5
2022-02-01,AAPL,110
2022-01-04,GOOG,50
`), 0o644)
	require.NoError(t, err)

	repo := NewCsvPriceRepository(path)
	got, err := repo.GetPrices(
		context.Background(),
		[]string{"AAPL", "MSFT"},
		util.NewDate(2022, 1, 1),
		util.NewDate(2022, 1, 31),
	)
	require.NoError(t, err)

	expected := []domain.AssetPrice{
		{Symbol: "AAPL", Price: decimal.NewFromInt(100), Date: util.NewDate(2022, 1, 3)},
		{Symbol: "AAPL", Price: decimal.NewFromFloat(101.5), Date: util.NewDate(2022, 1, 4)},
		{Symbol: "MSFT", Price: decimal.NewFromInt(200), Date: util.NewDate(2022, 1, 3)},
	}
	diff := cmp.Diff(expected, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }))
	require.Empty(t, diff)
}

func TestWritePricesCsv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	prices := []domain.AssetPrice{
		{Symbol: "AAPL", Price: decimal.NewFromInt(100), Date: util.NewDate(2022, 1, 3)},
	}
	require.NoError(t, WritePricesCsv(path, prices))

	got, err := NewCsvPriceRepository(path).GetPrices(context.Background(), []string{"AAPL"}, util.NewDate(2022, 1, 1), util.NewDate(2022, 12, 31))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Price.Equal(decimal.NewFromInt(100)))
}

func TestParquetPriceRepository_GetPrices(t *testing.T) {
	dir := t.TempDir()
	prices := []domain.AssetPrice{
		{Symbol: "AAPL", Price: decimal.NewFromInt(100), Date: util.NewDate(2021, 12, 31)},
		{Symbol: "AAPL", Price: decimal.NewFromInt(105), Date: util.NewDate(2022, 1, 3)},
		{Symbol: "AAPL", Price: decimal.NewFromInt(107), Date: util.NewDate(2022, 3, 1)},
	}
	require.NoError(t, WriteBars(dir, "us", prices))

	repo := NewParquetPriceRepository(dir, "us")

	t.Run("spans year files and filters range", func(t *testing.T) {
		got, err := repo.GetPrices(context.Background(), []string{"AAPL"}, util.NewDate(2021, 12, 1), util.NewDate(2022, 1, 31))
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.True(t, got[0].Date.Equal(util.NewDate(2021, 12, 31)))
		require.True(t, got[1].Price.Equal(decimal.NewFromInt(105)))
	})

	t.Run("unknown symbol is absent", func(t *testing.T) {
		got, err := repo.GetPrices(context.Background(), []string{"ZZZZ"}, util.NewDate(2021, 1, 1), util.NewDate(2022, 12, 31))
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
