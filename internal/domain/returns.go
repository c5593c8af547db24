package domain

import (
	"time"
)

// PeriodReturn is the realized long/short return of the portfolio formed on
// Date and held until End (the next rebalance date). Date is the formation
// date, not the date the return is realized.
type PeriodReturn struct {
	Date        time.Time `json:"date"`
	End         time.Time `json:"end"`
	Return      float64   `json:"return"`
	LongReturn  float64   `json:"longReturn"`
	ShortReturn float64   `json:"shortReturn"`
}

// ReturnSeries has one entry per successfully processed rebalance
// transition, dates strictly increasing. Skipped periods are absent.
type ReturnSeries []PeriodReturn

func (r ReturnSeries) Values() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.Return
	}
	return out
}

func (r ReturnSeries) Dates() []time.Time {
	out := make([]time.Time, len(r))
	for i, p := range r {
		out[i] = p.Date
	}
	return out
}

// Align keeps only the entries of a and b that share a date
func Align(a, b ReturnSeries) (ReturnSeries, ReturnSeries) {
	bByDate := map[string]PeriodReturn{}
	for _, p := range b {
		bByDate[p.Date.Format(time.DateOnly)] = p
	}
	outA, outB := ReturnSeries{}, ReturnSeries{}
	for _, p := range a {
		if other, ok := bByDate[p.Date.Format(time.DateOnly)]; ok {
			outA = append(outA, p)
			outB = append(outB, other)
		}
	}
	return outA, outB
}

// PerformanceSummary is derived from a non-empty ReturnSeries
type PerformanceSummary struct {
	Cumulative           []float64 `json:"cumulative"`
	AnnualizedReturn     float64   `json:"annualizedReturn"`
	AnnualizedVolatility float64   `json:"annualizedVolatility"`
	SharpeRatio          float64   `json:"sharpeRatio"`
}
