package domain

import (
	"math"
	"sort"
	"time"
)

// Panel is a date x symbol table of real values. A cell that was never set
// (or was set to NaN/Inf) is missing; there is no zero fill.
//
// Dates are kept strictly increasing and symbols keep their insertion order,
// which is the order used for stable tie-breaking downstream.
type Panel struct {
	Dates   []time.Time
	Symbols []string

	// date (YYYY-MM-DD) -> symbol -> value
	cells       map[string]map[string]float64
	symbolIndex map[string]int
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// NewPanel creates an empty panel over the given index. Dates are sorted
// and de-duplicated by calendar day.
func NewPanel(dates []time.Time, symbols []string) *Panel {
	seen := map[string]bool{}
	uniqueDates := []time.Time{}
	for _, d := range dates {
		k := dateKey(d)
		if seen[k] {
			continue
		}
		seen[k] = true
		uniqueDates = append(uniqueDates, normalizeDate(d))
	}
	sort.Slice(uniqueDates, func(i, j int) bool {
		return uniqueDates[i].Before(uniqueDates[j])
	})

	symbolIndex := map[string]int{}
	uniqueSymbols := []string{}
	for _, s := range symbols {
		if _, ok := symbolIndex[s]; ok {
			continue
		}
		symbolIndex[s] = len(uniqueSymbols)
		uniqueSymbols = append(uniqueSymbols, s)
	}

	return &Panel{
		Dates:       uniqueDates,
		Symbols:     uniqueSymbols,
		cells:       map[string]map[string]float64{},
		symbolIndex: symbolIndex,
	}
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Set stores a value. Non-finite values are recorded as missing, and cells
// outside the panel index are ignored.
func (p *Panel) Set(date time.Time, symbol string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		p.Unset(date, symbol)
		return
	}
	if !p.HasDate(date) || !p.HasSymbol(symbol) {
		return
	}
	k := dateKey(date)
	if _, ok := p.cells[k]; !ok {
		p.cells[k] = map[string]float64{}
	}
	p.cells[k][symbol] = value
}

func (p *Panel) Unset(date time.Time, symbol string) {
	if row, ok := p.cells[dateKey(date)]; ok {
		delete(row, symbol)
	}
}

// Get returns the value at (date, symbol) and whether it is present
func (p *Panel) Get(date time.Time, symbol string) (float64, bool) {
	if row, ok := p.cells[dateKey(date)]; ok {
		if v, ok := row[symbol]; ok {
			return v, true
		}
	}
	return 0, false
}

func (p *Panel) HasDate(date time.Time) bool {
	k := dateKey(date)
	i := sort.Search(len(p.Dates), func(i int) bool {
		return dateKey(p.Dates[i]) >= k
	})
	return i < len(p.Dates) && dateKey(p.Dates[i]) == k
}

func (p *Panel) HasSymbol(symbol string) bool {
	_, ok := p.symbolIndex[symbol]
	return ok
}

// Row returns a copy of the present values on the given date
func (p *Panel) Row(date time.Time) map[string]float64 {
	out := map[string]float64{}
	for symbol, v := range p.cells[dateKey(date)] {
		out[symbol] = v
	}
	return out
}

// Column returns the present values of one symbol in date order
func (p *Panel) Column(symbol string) []float64 {
	out := []float64{}
	for _, d := range p.Dates {
		if v, ok := p.Get(d, symbol); ok {
			out = append(out, v)
		}
	}
	return out
}

// CountPresent is the number of present cells for symbol
func (p *Panel) CountPresent(symbol string) int {
	n := 0
	for _, row := range p.cells {
		if _, ok := row[symbol]; ok {
			n++
		}
	}
	return n
}

// Restrict returns a new panel holding only the given dates (those that
// exist in p) and the given symbols
func (p *Panel) Restrict(dates []time.Time, symbols []string) *Panel {
	keep := []time.Time{}
	for _, d := range dates {
		if p.HasDate(d) {
			keep = append(keep, d)
		}
	}
	out := NewPanel(keep, symbols)
	for _, d := range out.Dates {
		for symbol, v := range p.cells[dateKey(d)] {
			out.Set(d, symbol, v)
		}
	}
	return out
}

// IntersectDates returns the dates common to every panel, in order
func IntersectDates(panels ...*Panel) []time.Time {
	if len(panels) == 0 {
		return []time.Time{}
	}
	out := []time.Time{}
	for _, d := range panels[0].Dates {
		inAll := true
		for _, other := range panels[1:] {
			if !other.HasDate(d) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, d)
		}
	}
	return out
}
