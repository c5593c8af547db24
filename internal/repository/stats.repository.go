package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type RunStats struct {
	Runs          int `json:"runs"`
	Strategies    int `json:"strategies"`
	SyntheticRuns int `json:"syntheticRuns"`
	Returns       int `json:"returns"`
}

func GetRunStats(ctx context.Context, db *sql.DB) (*RunStats, error) {
	query := `select
	(select count(*) from backtest_run) as "num_runs",
	(select count(distinct strategy_name) from backtest_run) as "distinct_strategies",
	(select count(*) from backtest_run where synthetic) as "num_synthetic_runs",
	(select count(*) from backtest_return) as "num_returns";`

	row := db.QueryRowContext(ctx, query)

	out := RunStats{}

	err := row.Scan(&out.Runs, &out.Strategies, &out.SyntheticRuns, &out.Returns)
	if err != nil {
		return nil, fmt.Errorf("failed to get run stats: %w", err)
	}

	return &out, nil
}
