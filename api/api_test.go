package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sentimentfactor/internal/app"
	mock_app "sentimentfactor/internal/app/mocks"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*gin.Engine, *mock_app.MockBacktestApp) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	backtestApp := mock_app.NewMockBacktestApp(ctrl)
	handler := ApiHandler{
		BacktestApp: backtestApp,
		Config:      config.Default(),
	}
	return handler.InitializeRouterEngine(), backtestApp
}

func post(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	bytesBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(bytesBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleRunResult(strategy config.StrategyConfig) *app.RunResult {
	return &app.RunResult{
		Strategy: strategy,
		Returns: domain.ReturnSeries{
			{Date: util.NewDate(2022, 7, 31), End: util.NewDate(2022, 8, 31), Return: 0.07, LongReturn: 0.05, ShortReturn: -0.02},
		},
		Snapshots: []domain.PortfolioSnapshot{
			{Date: util.NewDate(2022, 7, 31), Long: []string{"AAPL"}, Short: []string{"XOM"}, N: 1},
		},
		Skipped: []domain.SkippedDate{
			{Date: util.NewDate(2022, 8, 31), Reason: domain.SkipReason_ZeroVariance},
		},
		Processed: 1,
		Summary: &domain.PerformanceSummary{
			Cumulative:       []float64{1.07},
			AnnualizedReturn: 1.252,
		},
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestHandler(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, 200, w.Code)
}

func TestBacktest(t *testing.T) {
	t.Run("preset with overrides", func(t *testing.T) {
		router, backtestApp := newTestHandler(t)
		backtestApp.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in app.RunInput) (*app.RunResult, error) {
				require.Equal(t, "sentiment", in.Strategy.Name)
				require.Equal(t, 12, in.Strategy.MinValid)
				require.Equal(t, "force", in.Strategy.FloorPolicy)
				require.Equal(t, util.NewDate(2022, 1, 1), in.Start)
				require.Equal(t, util.NewDate(2024, 12, 31), in.End)
				require.Equal(t, util.NewDate(2022, 1, 1), in.SentimentStart)
				require.Equal(t, 100, in.MaxTickers)
				return sampleRunResult(in.Strategy), nil
			},
		)

		w := post(router, "/backtest", map[string]any{
			"preset":     "sentiment",
			"strategy":   map[string]any{"minValid": 12},
			"start":      "2022-01-01",
			"maxTickers": 100,
		})
		require.Equal(t, 200, w.Code)

		response := BacktestResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Returns, 1)
		require.Equal(t, "2022-07-31", response.Returns[0].Date)
		require.Equal(t, 0.07, response.Returns[0].Return)
		require.Equal(t, "zero_variance", response.Skipped[0].Reason)
		require.NotNil(t, response.Profile)
		require.False(t, response.Synthetic)
	})

	t.Run("invalid override", func(t *testing.T) {
		router, _ := newTestHandler(t)
		w := post(router, "/backtest", map[string]any{
			"strategy": map[string]any{"floorPolicy": "sometimes"},
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("inverted window", func(t *testing.T) {
		router, _ := newTestHandler(t)
		w := post(router, "/backtest", map[string]any{"start": "2023-01-01", "end": "2022-01-01"})
		require.Equal(t, 400, w.Code)
	})

	t.Run("error kinds map to status codes", func(t *testing.T) {
		tests := []struct {
			err  error
			code int
		}{
			{domain.NewError(domain.ErrorKind_Setup, "load tickers", fmt.Errorf("missing file")), 400},
			{fmt.Errorf("failed: %w", domain.ErrEmptyPanel), 422},
			{fmt.Errorf("failed: %w", domain.ErrNoReturns), 422},
			{domain.NewError(domain.ErrorKind_Provider, "load prices", fmt.Errorf("rate limited")), 502},
			{fmt.Errorf("boom"), 500},
		}
		for _, tt := range tests {
			router, backtestApp := newTestHandler(t)
			backtestApp.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			w := post(router, "/backtest", map[string]any{})
			require.Equal(t, tt.code, w.Code, tt.err.Error())
		}
	})
}

func TestCompare(t *testing.T) {
	router, backtestApp := newTestHandler(t)
	backtestApp.EXPECT().Compare(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in app.CompareInput) (*app.CompareResult, error) {
			require.Equal(t, "baseline", in.Baseline.Name)
			require.Equal(t, 30, in.Baseline.MinValid)
			require.Equal(t, "sentiment", in.Candidate.Name)
			require.Equal(t, 3, in.Candidate.LookbackPeriods)

			baseline, candidate := sampleRunResult(in.Baseline), sampleRunResult(in.Candidate)
			return &app.CompareResult{
				Baseline:         baseline,
				Candidate:        candidate,
				AlignedBaseline:  baseline.Returns,
				AlignedCandidate: candidate.Returns,
				BaselineSummary:  baseline.Summary,
				CandidateSummary: candidate.Summary,
			}, nil
		},
	)

	w := post(router, "/compare", map[string]any{
		"candidate": map[string]any{"strategy": map[string]any{"lookbackPeriods": 3}},
	})
	require.Equal(t, 200, w.Code)

	response := CompareResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, []string{"2022-07-31"}, response.AlignedDates)
	require.Equal(t, "baseline", response.Baseline.Strategy.Name)
	require.Equal(t, 1.252, response.CandidateSummary.AnnualizedReturn)
}
