package api

import (
	"fmt"
	"sentimentfactor/internal/app"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StrategyRequest picks a named preset (or the configured default strategy)
// and overlays any non-zero fields
type StrategyRequest struct {
	Preset   string                `json:"preset"`
	Strategy config.StrategyConfig `json:"strategy"`
}

type BacktestRequest struct {
	StrategyRequest
	Start      string `json:"start"`
	End        string `json:"end"`
	MaxTickers int    `json:"maxTickers"`
	Persist    bool   `json:"persist"`
}

type skippedDateResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

type snapshotResponse struct {
	Date  string   `json:"date"`
	Long  []string `json:"long"`
	Short []string `json:"short"`
}

type BacktestResponse struct {
	RunID     *uuid.UUID                 `json:"runID,omitempty"`
	Strategy  config.StrategyConfig      `json:"strategy"`
	Returns   []returnResponse           `json:"returns"`
	Summary   *domain.PerformanceSummary `json:"summary"`
	Snapshots []snapshotResponse         `json:"snapshots"`
	Skipped   []skippedDateResponse      `json:"skipped"`
	Processed int                        `json:"processed"`
	Synthetic bool                       `json:"synthetic"`
	Profile   *domain.Profile            `json:"profile,omitempty"`
}

type returnResponse struct {
	Date        string  `json:"date"`
	End         string  `json:"end"`
	Return      float64 `json:"return"`
	LongReturn  float64 `json:"longReturn"`
	ShortReturn float64 `json:"shortReturn"`
}

func (h ApiHandler) backtest(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	ctx := domain.WithProfile(c.Request.Context(), profile)

	var requestBody BacktestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	strategy, err := h.resolveStrategy(requestBody.StrategyRequest, "")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	start, end, err := h.resolveWindow(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	sentimentStart, sentimentEnd := h.sentimentWindow()

	result, err := h.BacktestApp.Run(ctx, app.RunInput{
		Strategy:       strategy,
		Start:          start,
		End:            end,
		SentimentStart: sentimentStart,
		SentimentEnd:   sentimentEnd,
		MaxTickers:     requestBody.MaxTickers,
		Persist:        requestBody.Persist,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run backtest: %w", err), c)
		return
	}
	endProfile()

	response := toBacktestResponse(result)
	response.Profile = profile
	c.JSON(200, response)
}

func (h ApiHandler) resolveStrategy(in StrategyRequest, defaultPreset string) (config.StrategyConfig, error) {
	base := h.Config.Strategy
	preset := in.Preset
	if preset == "" {
		preset = defaultPreset
	}
	if preset != "" {
		p, err := h.Config.Preset(preset)
		if err != nil {
			return config.StrategyConfig{}, err
		}
		base = p
	}
	strategy := base.Merge(in.Strategy)
	if err := strategy.Validate(); err != nil {
		return config.StrategyConfig{}, fmt.Errorf("invalid strategy: %w", err)
	}
	return strategy, nil
}

// resolveWindow falls back to the configured price window for missing dates
func (h ApiHandler) resolveWindow(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" {
		startStr = h.Config.Prices.Start
	}
	if endStr == "" {
		endStr = h.Config.Prices.End
	}
	start, err := util.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := util.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date cannot be before start date")
	}
	return start, end, nil
}

func (h ApiHandler) sentimentWindow() (time.Time, time.Time) {
	// validated by config.Load
	start, _ := util.ParseDate(h.Config.Sentiment.Start)
	end, _ := util.ParseDate(h.Config.Sentiment.End)
	return start, end
}

func toBacktestResponse(result *app.RunResult) BacktestResponse {
	returns := make([]returnResponse, len(result.Returns))
	for i, r := range result.Returns {
		returns[i] = returnResponse{
			Date:        r.Date.Format(time.DateOnly),
			End:         r.End.Format(time.DateOnly),
			Return:      r.Return,
			LongReturn:  r.LongReturn,
			ShortReturn: r.ShortReturn,
		}
	}
	snapshots := make([]snapshotResponse, len(result.Snapshots))
	for i, s := range result.Snapshots {
		snapshots[i] = snapshotResponse{
			Date:  s.Date.Format(time.DateOnly),
			Long:  s.Long,
			Short: s.Short,
		}
	}
	skipped := make([]skippedDateResponse, len(result.Skipped))
	for i, s := range result.Skipped {
		skipped[i] = skippedDateResponse{
			Date:   s.Date.Format(time.DateOnly),
			Reason: string(s.Reason),
			Detail: s.Detail,
		}
	}

	return BacktestResponse{
		RunID:     result.RunID,
		Strategy:  result.Strategy,
		Returns:   returns,
		Summary:   result.Summary,
		Snapshots: snapshots,
		Skipped:   skipped,
		Processed: result.Processed,
		Synthetic: result.Synthetic,
	}
}
