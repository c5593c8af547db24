package l2_service

import (
	"fmt"
	"math"
	"sentimentfactor/internal/domain"
	"time"

	"github.com/montanaflynn/stats"
)

const ZScoreClip = 3.0

// CrossSectionScores is the scored universe on one rebalance date. Symbols
// keeps the panel's symbol order and holds exactly the eligible tickers.
type CrossSectionScores struct {
	Date      time.Time
	Symbols   []string
	Composite map[string]float64
	// clipped z-scores of the factors that contributed to Composite
	ZScores map[domain.FactorName]map[string]float64
	// factors with no cross-sectional variance on this date
	DroppedFactors []domain.FactorName
}

// ScoreCrossSection standardizes each factor over the tickers that have
// every factor present, clips to [-3, 3] and averages into a composite.
//
// A factor with zero variance carries no ranking information and is left
// out of the composite for the date. If no factor has variance, or the
// factors cancel so every ticker has the same composite, the date is an
// eligibility gap.
func ScoreCrossSection(row domain.FactorRow, minValid int) (*CrossSectionScores, error) {
	eligible := []string{}
	for _, symbol := range row.Symbols {
		present := true
		for _, f := range row.Factors {
			if _, ok := row.Values[f][symbol]; !ok {
				present = false
				break
			}
		}
		if present {
			eligible = append(eligible, symbol)
		}
	}

	if len(eligible) < minValid || len(eligible) == 0 {
		return nil, domain.NewEligibilityGap(
			domain.SkipReason_InsufficientUniverse,
			"%d eligible tickers, need %d", len(eligible), minValid,
		)
	}

	zScores := map[domain.FactorName]map[string]float64{}
	dropped := []domain.FactorName{}
	for _, f := range row.Factors {
		values := make([]float64, len(eligible))
		for i, symbol := range eligible {
			values[i] = row.Values[f][symbol]
		}
		z, err := clippedZScores(values)
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", f, err)
		}
		if z == nil {
			dropped = append(dropped, f)
			continue
		}
		bySymbol := map[string]float64{}
		for i, symbol := range eligible {
			bySymbol[symbol] = z[i]
		}
		zScores[f] = bySymbol
	}

	if len(zScores) == 0 {
		return nil, domain.NewEligibilityGap(
			domain.SkipReason_ZeroVariance,
			"no factor varies across %d tickers", len(eligible),
		)
	}

	composite := map[string]float64{}
	for _, symbol := range eligible {
		sum := 0.0
		// factor order keeps the sum reproducible
		for _, f := range row.Factors {
			if z, ok := zScores[f]; ok {
				sum += z[symbol]
			}
		}
		composite[symbol] = sum / float64(len(zScores))
	}

	if !hasSpread(eligible, composite) {
		return nil, domain.NewEligibilityGap(
			domain.SkipReason_ZeroVariance,
			"composite score is identical across %d tickers", len(eligible),
		)
	}

	return &CrossSectionScores{
		Date:           row.Date,
		Symbols:        eligible,
		Composite:      composite,
		ZScores:        zScores,
		DroppedFactors: dropped,
	}, nil
}

// hasSpread reports whether the composite varies, with the tolerance used
// for the factor columns
func hasSpread(symbols []string, composite map[string]float64) bool {
	values := make([]float64, len(symbols))
	for i, symbol := range symbols {
		values[i] = composite[symbol]
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return false
	}
	stdev, err := stats.StandardDeviationPopulation(values)
	if err != nil || math.IsNaN(stdev) {
		return false
	}
	return stdev > varianceTolerance(mean)
}

func varianceTolerance(mean float64) float64 {
	return 1e-12 * math.Max(1, math.Abs(mean))
}

// clippedZScores uses the population standard deviation. It returns nil when
// the values have no variance.
func clippedZScores(values []float64) ([]float64, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return nil, err
	}
	if stdev <= varianceTolerance(mean) || math.IsNaN(stdev) {
		return nil, nil
	}

	out := make([]float64, len(values))
	for i, v := range values {
		z := (v - mean) / stdev
		out[i] = math.Max(-ZScoreClip, math.Min(ZScoreClip, z))
	}
	return out, nil
}
