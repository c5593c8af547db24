package domain

import (
	"fmt"
	"strings"
	"time"
)

type SentimentLabel string

const (
	SentimentLabel_Positive SentimentLabel = "positive"
	SentimentLabel_Neutral  SentimentLabel = "neutral"
	SentimentLabel_Negative SentimentLabel = "negative"
)

func NewSentimentLabel(s string) (SentimentLabel, error) {
	switch SentimentLabel(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentLabel_Positive:
		return SentimentLabel_Positive, nil
	case SentimentLabel_Neutral:
		return SentimentLabel_Neutral, nil
	case SentimentLabel_Negative:
		return SentimentLabel_Negative, nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

// Score maps positive/neutral/negative onto 1/0/-1
func (l SentimentLabel) Score() float64 {
	switch l {
	case SentimentLabel_Positive:
		return 1
	case SentimentLabel_Negative:
		return -1
	}
	return 0
}

type Headline struct {
	Symbol   string
	Headline string
	Date     time.Time
	Source   string
}

// SentimentEvent is one scored news event for a ticker
type SentimentEvent struct {
	Symbol   string
	Date     time.Time
	Label    SentimentLabel
	Score    float64
	Headline string
}
