package l2_service

import (
	"fmt"
	"sentimentfactor/internal/domain"
	"sort"
)

type FloorPolicy string

const (
	// skip the date when the leg size falls below the floor
	FloorPolicy_Skip FloorPolicy = "skip"
	// raise the leg size to the floor
	FloorPolicy_Force FloorPolicy = "force"
)

func NewFloorPolicy(s string) (FloorPolicy, error) {
	switch FloorPolicy(s) {
	case FloorPolicy_Skip, FloorPolicy_Force:
		return FloorPolicy(s), nil
	}
	return "", fmt.Errorf("unknown floor policy %q", s)
}

type SelectionConfig struct {
	// fraction of eligible tickers in each leg
	Ratio       float64
	Floor       int
	FloorPolicy FloorPolicy
}

// LegSize returns n for k eligible tickers, or an eligibility gap when no
// valid pair of disjoint legs exists
func (c SelectionConfig) LegSize(k int) (int, error) {
	// the epsilon keeps 0.2*k from truncating just below a whole number
	n := int(c.Ratio*float64(k) + 1e-9)

	switch c.FloorPolicy {
	case FloorPolicy_Force:
		n = max(n, c.Floor)
	default:
		if n < c.Floor {
			return 0, domain.NewEligibilityGap(domain.SkipReason_LegTooSmall, "n=%d below floor %d with %d tickers", n, c.Floor, k)
		}
	}

	if n < 1 || 2*n > k {
		return 0, domain.NewEligibilityGap(domain.SkipReason_LegTooSmall, "n=%d does not fit two disjoint legs in %d tickers", n, k)
	}
	return n, nil
}

// SelectPortfolio goes long the top n composite scores and short the bottom
// n. Ties keep the panel's symbol order, so a run is reproducible.
func SelectPortfolio(scores *CrossSectionScores, cfg SelectionConfig) (*domain.PortfolioSnapshot, error) {
	k := len(scores.Symbols)
	n, err := cfg.LegSize(k)
	if err != nil {
		return nil, err
	}

	ranked := make([]string, k)
	copy(ranked, scores.Symbols)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores.Composite[ranked[i]] > scores.Composite[ranked[j]]
	})

	long := make([]string, n)
	copy(long, ranked[:n])
	inLong := map[string]bool{}
	for _, s := range long {
		inLong[s] = true
	}

	ascending := make([]string, k)
	copy(ascending, scores.Symbols)
	sort.SliceStable(ascending, func(i, j int) bool {
		return scores.Composite[ascending[i]] < scores.Composite[ascending[j]]
	})

	// worst first; a tie spanning both legs resolves to the long side
	short := make([]string, 0, n)
	for _, s := range ascending {
		if len(short) == n {
			break
		}
		if !inLong[s] {
			short = append(short, s)
		}
	}

	return &domain.PortfolioSnapshot{
		Date:  scores.Date,
		Long:  long,
		Short: short,
		N:     n,
	}, nil
}
