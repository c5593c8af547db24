package domain

import (
	"fmt"
	"time"
)

type FactorName string

const (
	FactorName_Momentum  FactorName = "momentum"
	FactorName_Value     FactorName = "value"
	FactorName_Sentiment FactorName = "sentiment"
)

func NewFactorName(s string) (FactorName, error) {
	switch FactorName(s) {
	case FactorName_Momentum, FactorName_Value, FactorName_Sentiment:
		return FactorName(s), nil
	}
	return "", fmt.Errorf("unknown factor %q", s)
}

// FactorPanel is a set of factor columns aligned on one date index. Every
// column shares Dates and Symbols; a ticker with no data in a column is kept
// as missing there rather than dropped from the panel.
type FactorPanel struct {
	Dates   []time.Time
	Symbols []string
	Factors []FactorName

	columns map[FactorName]*Panel
}

func NewFactorPanel(dates []time.Time, symbols []string, factors []FactorName, columns map[FactorName]*Panel) *FactorPanel {
	return &FactorPanel{
		Dates:   dates,
		Symbols: symbols,
		Factors: factors,
		columns: columns,
	}
}

func (f FactorPanel) Column(factor FactorName) (*Panel, bool) {
	c, ok := f.columns[factor]
	return c, ok
}

// FactorRow is every active factor's cross-section on a single date
type FactorRow struct {
	Date    time.Time
	Symbols []string
	Values  map[FactorName]map[string]float64
	Factors []FactorName
}

func (f FactorPanel) Row(date time.Time) FactorRow {
	values := map[FactorName]map[string]float64{}
	for _, factor := range f.Factors {
		values[factor] = f.columns[factor].Row(date)
	}
	return FactorRow{
		Date:    date,
		Symbols: f.Symbols,
		Values:  values,
		Factors: f.Factors,
	}
}
