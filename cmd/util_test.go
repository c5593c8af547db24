package cmd

import (
	"sentimentfactor/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeDependenciesFromConfig(t *testing.T) {
	t.Run("defaults need no database", func(t *testing.T) {
		deps, err := InitializeDependenciesFromConfig(config.Default())
		require.NoError(t, err)
		require.Nil(t, deps.Db)
		require.NotNil(t, deps.BacktestApp)
		require.NotNil(t, deps.ApiHandler)
		require.Equal(t, deps.BacktestApp, deps.ApiHandler.BacktestApp)
		CloseDependencies(deps)
	})

	t.Run("postgres sources require a database", func(t *testing.T) {
		for _, modify := range []func(cfg *config.Config){
			func(cfg *config.Config) { cfg.Universe.Source = "postgres" },
			func(cfg *config.Config) { cfg.Prices.Source = "postgres" },
			func(cfg *config.Config) { cfg.Fundamentals.Source = "postgres" },
		} {
			cfg := config.Default()
			modify(cfg)
			_, err := InitializeDependenciesFromConfig(cfg)
			require.ErrorContains(t, err, "requires db settings")
		}
	})

	t.Run("unknown price source", func(t *testing.T) {
		cfg := config.Default()
		cfg.Prices.Source = "bloomberg"
		_, err := InitializeDependenciesFromConfig(cfg)
		require.ErrorContains(t, err, "unknown prices.source")
	})

	t.Run("parquet needs a data dir", func(t *testing.T) {
		cfg := config.Default()
		cfg.Prices.Source = "parquet"
		_, err := InitializeDependenciesFromConfig(cfg)
		require.Error(t, err)

		cfg.Parquet.DataDir = t.TempDir()
		_, err = InitializeDependenciesFromConfig(cfg)
		require.NoError(t, err)
	})
}

func TestNewSentimentService(t *testing.T) {
	cfg := config.Default()
	cfg.Sentiment.Source = "none"
	svc, err := newSentimentService(cfg, nil)
	require.NoError(t, err)
	require.Nil(t, svc)

	cfg.Sentiment.Source = "synthetic"
	svc, err = newSentimentService(cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, svc)
}
