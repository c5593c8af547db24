package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sentimentfactor/internal/db/models/postgres/public/model"
	. "sentimentfactor/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// BacktestRunRepository stores finished runs. Get returns a nil run when
// the id is unknown.
type BacktestRunRepository interface {
	Add(tx *sql.Tx, run model.BacktestRun, returns []model.BacktestReturn) (*model.BacktestRun, error)
	Get(ctx context.Context, runID uuid.UUID) (*model.BacktestRun, []model.BacktestReturn, error)
}

func NewBacktestRunRepository(db *sql.DB) BacktestRunRepository {
	return backtestRunRepositoryHandler{Db: db}
}

type backtestRunRepositoryHandler struct {
	Db *sql.DB
}

func (h backtestRunRepositoryHandler) Add(tx *sql.Tx, run model.BacktestRun, returns []model.BacktestReturn) (*model.BacktestRun, error) {
	query := BacktestRun.
		INSERT(BacktestRun.MutableColumns).
		MODEL(run).
		RETURNING(BacktestRun.AllColumns)

	out := model.BacktestRun{}
	if err := query.Query(tx, &out); err != nil {
		return nil, fmt.Errorf("failed to insert backtest run: %w", err)
	}

	if len(returns) == 0 {
		return &out, nil
	}
	for i := range returns {
		returns[i].BacktestRunID = out.BacktestRunID
	}

	returnsQuery := BacktestReturn.
		INSERT(BacktestReturn.MutableColumns).
		MODELS(returns)
	if _, err := returnsQuery.Exec(tx); err != nil {
		return nil, fmt.Errorf("failed to insert %d backtest returns: %w", len(returns), err)
	}

	return &out, nil
}

func (h backtestRunRepositoryHandler) Get(ctx context.Context, runID uuid.UUID) (*model.BacktestRun, []model.BacktestReturn, error) {
	runQuery := BacktestRun.
		SELECT(BacktestRun.AllColumns).
		WHERE(BacktestRun.BacktestRunID.EQ(UUID(runID)))

	run := model.BacktestRun{}
	err := runQuery.QueryContext(ctx, h.Db, &run)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get backtest run %s: %w", runID.String(), err)
	}

	returnsQuery := BacktestReturn.
		SELECT(BacktestReturn.AllColumns).
		WHERE(BacktestReturn.BacktestRunID.EQ(UUID(runID))).
		ORDER_BY(BacktestReturn.Date.ASC())

	returns := []model.BacktestReturn{}
	if err := returnsQuery.QueryContext(ctx, h.Db, &returns); err != nil {
		return nil, nil, fmt.Errorf("failed to list returns for run %s: %w", runID.String(), err)
	}

	return &run, returns, nil
}
