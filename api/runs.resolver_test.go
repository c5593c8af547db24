package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/db/models/postgres/public/model"
	mock_repository "sentimentfactor/internal/repository/mocks"
	"sentimentfactor/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetRun(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	runRepository := mock_repository.NewMockBacktestRunRepository(ctrl)
	router := ApiHandler{
		BacktestRunRepository: runRepository,
		Config:                config.Default(),
	}.InitializeRouterEngine()

	runID := uuid.New()

	t.Run("stored run", func(t *testing.T) {
		runRepository.EXPECT().Get(gomock.Any(), runID).Return(
			&model.BacktestRun{
				BacktestRunID: runID,
				StrategyName:  "sentiment",
				StartDate:     util.NewDate(2022, 1, 1),
				EndDate:       util.NewDate(2024, 1, 1),
				Synthetic:     true,
				Processed:     18,
				SharpeRatio:   util.FloatPointer(0.4),
			},
			[]model.BacktestReturn{
				{Date: util.NewDate(2022, 7, 31), EndDate: util.NewDate(2022, 8, 31), Return: 0.07},
			},
			nil,
		)

		w := get(router, "/runs/"+runID.String())
		require.Equal(t, 200, w.Code)

		response := storedRunResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, runID, response.RunID)
		require.Equal(t, "2022-01-01", response.Start)
		require.True(t, response.Synthetic)
		require.Equal(t, 0.4, *response.SharpeRatio)
		require.Nil(t, response.AnnualizedReturn)
		require.Equal(t, []returnResponse{{Date: "2022-07-31", End: "2022-08-31", Return: 0.07}}, response.Returns)
	})

	t.Run("unknown run", func(t *testing.T) {
		runRepository.EXPECT().Get(gomock.Any(), runID).Return(nil, nil, nil)
		require.Equal(t, 404, get(router, "/runs/"+runID.String()).Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		runRepository.EXPECT().Get(gomock.Any(), runID).Return(nil, nil, fmt.Errorf("connection refused"))
		require.Equal(t, 500, get(router, "/runs/"+runID.String()).Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		require.Equal(t, 400, get(router, "/runs/not-a-uuid").Code)
	})
}

func TestStorageNotConfigured(t *testing.T) {
	router, _ := newTestHandler(t)
	require.Equal(t, 503, get(router, "/runs/"+uuid.New().String()).Code)
	require.Equal(t, 503, get(router, "/stats").Code)
}
