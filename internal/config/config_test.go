package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 500, cfg.Universe.MaxTickers)
		require.Equal(t, "^GSPC", cfg.Universe.Benchmark)
		require.Equal(t, 18, cfg.Prices.MinDailyObservations)
		require.Equal(t, BaselineStrategy(), cfg.Strategy)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte(`
universe:
  max_tickers: 50
strategy:
  lookback_periods: 3
  min_valid: 12
presets:
  sentiment:
    min_valid: 8
`), 0o644)
		require.NoError(t, err)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 50, cfg.Universe.MaxTickers)
		require.Equal(t, 3, cfg.Strategy.LookbackPeriods)
		require.Equal(t, 12, cfg.Strategy.MinValid)
		// untouched fields keep their defaults
		require.Equal(t, 0.2, cfg.Strategy.LegRatio)

		preset, err := cfg.Preset("sentiment")
		require.NoError(t, err)
		require.Equal(t, 8, preset.MinValid)
		require.Equal(t, 3, preset.LookbackPeriods)
	})

	t.Run("env overrides secrets", func(t *testing.T) {
		t.Setenv("ALPACA_API_KEY", "key")
		t.Setenv("PORT", "8080")
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "key", cfg.Alpaca.ApiKey)
		require.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid strategy is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("strategy:\n  floor_policy: sometimes\n"), 0o644)
		require.NoError(t, err)

		_, err = Load(path)
		require.ErrorContains(t, err, "floor_policy")
	})

	t.Run("invalid sentiment window is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("sentiment:\n  start: 2022-13-01\n"), 0o644)
		require.NoError(t, err)

		_, err = Load(path)
		require.ErrorContains(t, err, "sentiment window")
	})
}

func TestStrategyConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *StrategyConfig)
		wantErr bool
	}{
		{name: "baseline", modify: func(s *StrategyConfig) {}},
		{name: "no factors", modify: func(s *StrategyConfig) { s.Factors = nil }, wantErr: true},
		{name: "zero lookback", modify: func(s *StrategyConfig) { s.LookbackPeriods = 0 }, wantErr: true},
		{name: "leg ratio above half", modify: func(s *StrategyConfig) { s.LegRatio = 0.6 }, wantErr: true},
		{name: "zero floor", modify: func(s *StrategyConfig) { s.LegFloor = 0 }, wantErr: true},
		{name: "unknown empty panel policy", modify: func(s *StrategyConfig) { s.EmptyPanelPolicy = "retry" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BaselineStrategy()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDbConfig_ToConnectionStr(t *testing.T) {
	c := DbConfig{Host: "localhost", Port: "5432", User: "postgres", Password: "pw", Database: "sf"}
	require.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=sf sslmode=disable", c.ToConnectionStr())
}
