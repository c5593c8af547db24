package api

import (
	"fmt"
	"sentimentfactor/internal/repository"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type storedRunResponse struct {
	RunID                uuid.UUID        `json:"runID"`
	StrategyName         string           `json:"strategyName"`
	Config               string           `json:"config"`
	Start                string           `json:"start"`
	End                  string           `json:"end"`
	Synthetic            bool             `json:"synthetic"`
	Processed            int32            `json:"processed"`
	Skipped              int32            `json:"skipped"`
	AnnualizedReturn     *float64         `json:"annualizedReturn"`
	AnnualizedVolatility *float64         `json:"annualizedVolatility"`
	SharpeRatio          *float64         `json:"sharpeRatio"`
	CreatedAt            time.Time        `json:"createdAt"`
	Returns              []returnResponse `json:"returns"`
}

func (h ApiHandler) getRun(c *gin.Context) {
	if h.BacktestRunRepository == nil {
		returnErrorJsonCode(fmt.Errorf("run storage is not configured"), c, 503)
		return
	}
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	run, returns, err := h.BacktestRunRepository.Get(c.Request.Context(), runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if run == nil {
		returnErrorJsonCode(fmt.Errorf("run %s not found", runID.String()), c, 404)
		return
	}

	out := storedRunResponse{
		RunID:                run.BacktestRunID,
		StrategyName:         run.StrategyName,
		Config:               run.Config,
		Start:                run.StartDate.Format(time.DateOnly),
		End:                  run.EndDate.Format(time.DateOnly),
		Synthetic:            run.Synthetic,
		Processed:            run.Processed,
		Skipped:              run.Skipped,
		AnnualizedReturn:     run.AnnualizedReturn,
		AnnualizedVolatility: run.AnnualizedVolatility,
		SharpeRatio:          run.SharpeRatio,
		CreatedAt:            run.CreatedAt,
		Returns:              make([]returnResponse, len(returns)),
	}
	for i, r := range returns {
		out.Returns[i] = returnResponse{
			Date:        r.Date.Format(time.DateOnly),
			End:         r.EndDate.Format(time.DateOnly),
			Return:      r.Return,
			LongReturn:  r.LongReturn,
			ShortReturn: r.ShortReturn,
		}
	}

	c.JSON(200, out)
}

func (h ApiHandler) getStats(c *gin.Context) {
	if h.Db == nil {
		returnErrorJsonCode(fmt.Errorf("run storage is not configured"), c, 503)
		return
	}
	stats, err := repository.GetRunStats(c.Request.Context(), h.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, stats)
}
