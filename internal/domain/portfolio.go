package domain

import (
	"time"
)

// PortfolioSnapshot is the long/short selection made on one rebalance date.
// Both legs hold N tickers, equal weighted, and never overlap.
type PortfolioSnapshot struct {
	Date  time.Time
	Long  []string
	Short []string
	N     int
}

func (p PortfolioSnapshot) HeldSymbols() []string {
	symbols := make([]string, 0, len(p.Long)+len(p.Short))
	symbols = append(symbols, p.Long...)
	symbols = append(symbols, p.Short...)
	return symbols
}

// SkipReason names why a rebalance date contributed nothing to the series
type SkipReason string

const (
	SkipReason_InsufficientUniverse SkipReason = "insufficient_universe"
	SkipReason_ZeroVariance         SkipReason = "zero_variance"
	SkipReason_LegTooSmall          SkipReason = "leg_too_small"
	SkipReason_MissingForwardPrice  SkipReason = "missing_forward_price"
)

type SkippedDate struct {
	Date   time.Time
	Reason SkipReason
	Detail string
}
