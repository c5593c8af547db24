package api

import (
	"fmt"
	"sentimentfactor/internal/app"
	"sentimentfactor/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompareRequest struct {
	Baseline   StrategyRequest `json:"baseline"`
	Candidate  StrategyRequest `json:"candidate"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	MaxTickers int             `json:"maxTickers"`
	Persist    bool            `json:"persist"`
}

type CompareResponse struct {
	Baseline         BacktestResponse           `json:"baseline"`
	Candidate        BacktestResponse           `json:"candidate"`
	AlignedDates     []string                   `json:"alignedDates"`
	BaselineSummary  *domain.PerformanceSummary `json:"baselineSummary"`
	CandidateSummary *domain.PerformanceSummary `json:"candidateSummary"`
	Profile          *domain.Profile            `json:"profile,omitempty"`
}

func (h ApiHandler) compare(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	ctx := domain.WithProfile(c.Request.Context(), profile)

	var requestBody CompareRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	baseline, err := h.resolveStrategy(requestBody.Baseline, "baseline")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("baseline: %w", err), c, 400)
		return
	}
	candidate, err := h.resolveStrategy(requestBody.Candidate, "sentiment")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("candidate: %w", err), c, 400)
		return
	}
	start, end, err := h.resolveWindow(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	sentimentStart, sentimentEnd := h.sentimentWindow()

	result, err := h.BacktestApp.Compare(ctx, app.CompareInput{
		Baseline:       baseline,
		Candidate:      candidate,
		Start:          start,
		End:            end,
		SentimentStart: sentimentStart,
		SentimentEnd:   sentimentEnd,
		MaxTickers:     requestBody.MaxTickers,
		Persist:        requestBody.Persist,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compare strategies: %w", err), c)
		return
	}
	endProfile()

	alignedDates := []string{}
	for _, d := range result.AlignedBaseline.Dates() {
		alignedDates = append(alignedDates, d.Format("2006-01-02"))
	}

	c.JSON(200, CompareResponse{
		Baseline:         toBacktestResponse(result.Baseline),
		Candidate:        toBacktestResponse(result.Candidate),
		AlignedDates:     alignedDates,
		BaselineSummary:  result.BaselineSummary,
		CandidateSummary: result.CandidateSummary,
		Profile:          profile,
	})
}
