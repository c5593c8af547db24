package l1_service

import (
	"context"
	"errors"
	"sentimentfactor/internal/domain"
	mock_repository "sentimentfactor/internal/repository/mocks"
	"sentimentfactor/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAggregateSentiment(t *testing.T) {
	t.Run("monthly mean labeled at midnight month end", func(t *testing.T) {
		events := []domain.SentimentEvent{
			{Symbol: "AAPL", Date: time.Date(2022, 1, 3, 15, 30, 0, 0, time.UTC), Score: 1},
			{Symbol: "AAPL", Date: util.NewDate(2022, 1, 20), Score: 0},
			{Symbol: "AAPL", Date: util.NewDate(2022, 1, 31), Score: -1},
			{Symbol: "AAPL", Date: util.NewDate(2022, 1, 31), Score: 1},
			{Symbol: "MSFT", Date: util.NewDate(2022, 3, 2), Score: -1},
			// not in the universe
			{Symbol: "GOOG", Date: util.NewDate(2022, 2, 2), Score: 1},
		}
		panel, err := AggregateSentiment([]string{"AAPL", "MSFT"}, events)
		require.NoError(t, err)

		// february has no universe events, so it is absent
		require.Equal(t, []time.Time{util.NewDate(2022, 1, 31), util.NewDate(2022, 3, 31)}, panel.Dates)

		v, ok := panel.Get(util.NewDate(2022, 1, 31), "AAPL")
		require.True(t, ok)
		require.Equal(t, 0.25, v)

		_, ok = panel.Get(util.NewDate(2022, 1, 31), "MSFT")
		require.False(t, ok)

		v, ok = panel.Get(util.NewDate(2022, 3, 31), "MSFT")
		require.True(t, ok)
		require.Equal(t, -1.0, v)
	})
}

func Test_sentimentServiceHandler_LoadSentimentPanel(t *testing.T) {
	t.Run("source failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		eventRepository := mock_repository.NewMockSentimentEventRepository(ctrl)
		handler := NewSentimentService(eventRepository)

		eventRepository.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		_, err := handler.LoadSentimentPanel(context.Background(), []string{"AAPL"}, util.NewDate(2022, 1, 1), util.NewDate(2024, 1, 1))
		require.True(t, domain.IsKind(err, domain.ErrorKind_Provider))
	})
}
