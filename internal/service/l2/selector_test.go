package l2_service

import (
	"math/rand"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionConfig_LegSize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SelectionConfig
		k       int
		want    int
		wantGap bool
	}{
		{
			name: "ratio of universe",
			cfg:  SelectionConfig{Ratio: 0.2, Floor: 5, FloorPolicy: FloorPolicy_Skip},
			k:    50,
			want: 10,
		},
		{
			name: "no truncation below whole number",
			cfg:  SelectionConfig{Ratio: 0.2, Floor: 1, FloorPolicy: FloorPolicy_Skip},
			k:    35,
			want: 7,
		},
		{
			name:    "below floor is skipped",
			cfg:     SelectionConfig{Ratio: 0.2, Floor: 5, FloorPolicy: FloorPolicy_Skip},
			k:       20,
			wantGap: true,
		},
		{
			name: "below floor is forced",
			cfg:  SelectionConfig{Ratio: 0.2, Floor: 5, FloorPolicy: FloorPolicy_Force},
			k:    12,
			want: 5,
		},
		{
			name:    "forced legs that cannot be disjoint",
			cfg:     SelectionConfig{Ratio: 0.2, Floor: 5, FloorPolicy: FloorPolicy_Force},
			k:       9,
			wantGap: true,
		},
		{
			name:    "zero leg",
			cfg:     SelectionConfig{Ratio: 0.2, Floor: 0, FloorPolicy: FloorPolicy_Skip},
			k:       4,
			wantGap: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.cfg.LegSize(tt.k)
			if tt.wantGap {
				gap, ok := domain.AsEligibilityGap(err)
				require.True(t, ok)
				require.Equal(t, domain.SkipReason_LegTooSmall, gap.Reason)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, n)
		})
	}
}

func scoresOf(symbols []string, composite map[string]float64) *CrossSectionScores {
	return &CrossSectionScores{
		Date:      util.NewDate(2022, 6, 30),
		Symbols:   symbols,
		Composite: composite,
	}
}

func TestSelectPortfolio(t *testing.T) {
	t.Run("top and bottom n", func(t *testing.T) {
		scores := scoresOf(
			[]string{"A", "B", "C", "D", "E", "F"},
			map[string]float64{"A": 0.5, "B": -1.2, "C": 1.4, "D": 0.1, "E": -0.3, "F": 0.9},
		)
		snapshot, err := SelectPortfolio(scores, SelectionConfig{Ratio: 0.34, Floor: 1, FloorPolicy: FloorPolicy_Skip})
		require.NoError(t, err)
		require.Equal(t, 2, snapshot.N)
		require.Equal(t, []string{"C", "F"}, snapshot.Long)
		require.Equal(t, []string{"B", "E"}, snapshot.Short)
		require.Equal(t, scores.Date, snapshot.Date)
	})

	t.Run("ties keep symbol order and never overlap", func(t *testing.T) {
		scores := scoresOf(
			[]string{"A", "B", "C", "D"},
			map[string]float64{"A": 0, "B": 0, "C": 0, "D": 0},
		)
		snapshot, err := SelectPortfolio(scores, SelectionConfig{Ratio: 0.5, Floor: 1, FloorPolicy: FloorPolicy_Skip})
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, snapshot.Long)
		require.Equal(t, []string{"C", "D"}, snapshot.Short)
	})

	t.Run("leg too small", func(t *testing.T) {
		scores := scoresOf([]string{"A", "B", "C"}, map[string]float64{"A": 1, "B": 0, "C": -1})
		_, err := SelectPortfolio(scores, SelectionConfig{Ratio: 0.2, Floor: 1, FloorPolicy: FloorPolicy_Skip})
		require.True(t, domain.IsKind(err, domain.ErrorKind_Eligibility))
	})

	t.Run("legs are disjoint and sized n", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for trial := 0; trial < 100; trial++ {
			k := 2 + r.Intn(60)
			symbols := make([]string, k)
			composite := map[string]float64{}
			for i := range symbols {
				symbols[i] = "T" + string(rune('A'+i%26)) + string(rune('A'+i/26))
				// coarse values so ties are common
				composite[symbols[i]] = float64(r.Intn(5))
			}
			cfg := SelectionConfig{Ratio: r.Float64() * 0.5, Floor: r.Intn(4), FloorPolicy: FloorPolicy_Force}
			snapshot, err := SelectPortfolio(scoresOf(symbols, composite), cfg)
			if err != nil {
				_, ok := domain.AsEligibilityGap(err)
				require.True(t, ok)
				continue
			}
			require.Len(t, snapshot.Long, snapshot.N)
			require.Len(t, snapshot.Short, snapshot.N)
			inLong := map[string]bool{}
			minLong := composite[snapshot.Long[0]]
			for _, s := range snapshot.Long {
				inLong[s] = true
				minLong = min(minLong, composite[s])
			}
			for _, s := range snapshot.Short {
				require.False(t, inLong[s])
				require.LessOrEqual(t, composite[s], minLong)
			}
		}
	})
}

func TestNewFloorPolicy(t *testing.T) {
	p, err := NewFloorPolicy("force")
	require.NoError(t, err)
	require.Equal(t, FloorPolicy_Force, p)

	_, err = NewFloorPolicy("sometimes")
	require.Error(t, err)
}
