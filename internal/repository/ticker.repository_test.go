package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTickerFilter_Apply(t *testing.T) {
	t.Run("normalizes and drops benchmark", func(t *testing.T) {
		f := TickerFilter{Benchmark: "^GSPC", MaxTickers: 10}
		got := f.Apply([]string{" aapl", "^gspc", "", "MSFT ", "aapl", "goog"})
		require.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, got)
	})

	t.Run("truncates to max in file order", func(t *testing.T) {
		f := TickerFilter{MaxTickers: 2}
		got := f.Apply([]string{"c", "b", "a"})
		require.Equal(t, []string{"C", "B"}, got)
	})

	t.Run("zero max keeps everything", func(t *testing.T) {
		f := TickerFilter{}
		got := f.Apply([]string{"c", "b", "a"})
		require.Len(t, got, 3)
	})
}

func TestCsvTickerRepository_List(t *testing.T) {
	t.Run("reads header-less file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "companies_all")
		err := os.WriteFile(path, []byte("^GSPC\naapl\n msft\nnvda\n"), 0o644)
		require.NoError(t, err)

		repo := NewCsvTickerRepository(path, TickerFilter{Benchmark: "^GSPC", MaxTickers: 500})
		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, got)
	})

	t.Run("missing file fails", func(t *testing.T) {
		repo := NewCsvTickerRepository(filepath.Join(t.TempDir(), "nope"), TickerFilter{})
		_, err := repo.List(context.Background())
		require.Error(t, err)
	})
}
