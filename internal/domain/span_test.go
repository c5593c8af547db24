package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("spans close when the next one starts", func(t *testing.T) {
		p, end := NewProfile()
		first, _ := p.StartNewSpan("load prices")
		require.Nil(t, first.ElapsedMs)

		p.StartNewSpan("backtest")
		require.NotNil(t, first.ElapsedMs)

		end()
		require.NotNil(t, p.Spans[1].ElapsedMs)
		require.NotNil(t, p.TotalMs)
	})

	t.Run("durations sum repeated names", func(t *testing.T) {
		p, end := NewProfile()
		p.StartNewSpan("load")
		p.StartNewSpan("load")
		p.StartNewSpan("score")
		end()

		d := p.Durations()
		require.Len(t, d, 2)
		require.Contains(t, d, "load")
		require.Contains(t, d, "score")
	})

	t.Run("sub profiles attach on end", func(t *testing.T) {
		p, end := NewProfile()
		span, endSpan := p.StartNewSpan("run baseline")
		sub, endSub := span.NewSubProfile()
		sub.StartNewSpan("load tickers")
		endSub()
		endSpan()
		end()

		require.Len(t, span.SubSpans, 1)
		require.Equal(t, "load tickers", span.SubSpans[0].Name)

		again, _ := span.NewSubProfile()
		require.Same(t, sub, again)
	})
}

func TestGetProfile(t *testing.T) {
	p, _ := NewProfile()
	got, _ := GetProfile(WithProfile(context.Background(), p))
	require.Same(t, p, got)

	detached, _ := GetProfile(context.Background())
	require.NotNil(t, detached)
	require.NotSame(t, p, detached)
}
