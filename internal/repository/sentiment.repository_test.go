package repository

import (
	"context"
	"errors"
	"sentimentfactor/internal/domain"
	mock_repository "sentimentfactor/internal/repository/mocks"
	"sentimentfactor/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyntheticSentimentRepository_ListEvents(t *testing.T) {
	start := util.NewDate(2022, 1, 1)
	end := util.NewDate(2024, 1, 1)
	symbols := []string{"AAPL", "MSFT", "GOOG"}

	t.Run("same seed gives same events", func(t *testing.T) {
		a, err := NewSyntheticSentimentRepository(42, 200).ListEvents(context.Background(), symbols, start, end)
		require.NoError(t, err)
		b, err := NewSyntheticSentimentRepository(42, 200).ListEvents(context.Background(), symbols, start, end)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("repeated calls give same events", func(t *testing.T) {
		repo := NewSyntheticSentimentRepository(42, 50)
		a, err := repo.ListEvents(context.Background(), symbols, start, end)
		require.NoError(t, err)
		b, err := repo.ListEvents(context.Background(), symbols, start, end)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("events are well formed", func(t *testing.T) {
		events, err := NewSyntheticSentimentRepository(7, 500).ListEvents(context.Background(), symbols, start, end)
		require.NoError(t, err)
		require.Len(t, events, 500)
		for _, e := range events {
			require.Contains(t, symbols, e.Symbol)
			require.Equal(t, e.Label.Score(), e.Score)
			require.False(t, e.Date.Before(start))
			require.False(t, e.Date.After(end))
			require.Equal(t, e.Symbol+" Inc. reports earnings.", e.Headline)
		}
	})

	t.Run("empty universe", func(t *testing.T) {
		_, err := NewSyntheticSentimentRepository(1, 10).ListEvents(context.Background(), nil, start, end)
		require.Error(t, err)
	})
}

func TestHeadlineSentimentRepository_ListEvents(t *testing.T) {
	ctx := context.Background()
	start := util.NewDate(2022, 1, 1)
	end := util.NewDate(2022, 3, 1)

	t.Run("classifies headlines and drops failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		headlines := mock_repository.NewMockHeadlineRepository(ctrl)
		classifier := mock_repository.NewMockSentimentClassifier(ctrl)

		headlines.EXPECT().
			ListHeadlines(gomock.Any(), "AAPL", start, end).
			Return([]domain.Headline{
				{Symbol: "AAPL", Headline: "Apple beats", Date: util.NewDate(2022, 1, 5)},
				{Symbol: "AAPL", Headline: "Apple ???", Date: util.NewDate(2022, 1, 6)},
			}, nil)
		headlines.EXPECT().
			ListHeadlines(gomock.Any(), "MSFT", start, end).
			Return(nil, errors.New("rate limited"))

		classifier.EXPECT().Classify(gomock.Any(), "Apple beats").Return(domain.SentimentLabel_Positive, nil)
		classifier.EXPECT().Classify(gomock.Any(), "Apple ???").Return(domain.SentimentLabel(""), errors.New("bad response"))

		repo := NewHeadlineSentimentRepository(headlines, classifier, 2)
		events, err := repo.ListEvents(ctx, []string{"AAPL", "MSFT"}, start, end)
		require.NoError(t, err)
		require.Equal(t, []domain.SentimentEvent{
			{
				Symbol:   "AAPL",
				Date:     util.NewDate(2022, 1, 5),
				Label:    domain.SentimentLabel_Positive,
				Score:    1,
				Headline: "Apple beats",
			},
		}, events)
	})

	t.Run("every symbol failing is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		headlines := mock_repository.NewMockHeadlineRepository(ctrl)
		classifier := mock_repository.NewMockSentimentClassifier(ctrl)

		headlines.EXPECT().
			ListHeadlines(gomock.Any(), gomock.Any(), start, end).
			Return(nil, errors.New("down")).
			Times(2)

		repo := NewHeadlineSentimentRepository(headlines, classifier, 1)
		_, err := repo.ListEvents(ctx, []string{"AAPL", "MSFT"}, start, end)
		require.ErrorContains(t, err, "down")
	})
}
