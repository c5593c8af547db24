package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

// MonthEnd returns the last calendar day of t's month, at midnight UTC
func MonthEnd(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// MonthEnds lists every calendar month-end from start's month through end's
// month, inclusive
func MonthEnds(start, end time.Time) []time.Time {
	out := []time.Time{}
	if end.Before(start) {
		return out
	}
	for t := MonthEnd(start); DateLte(t, MonthEnd(end)); t = MonthEnd(t.AddDate(0, 0, 1)) {
		out = append(out, t)
	}
	return out
}
