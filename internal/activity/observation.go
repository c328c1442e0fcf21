package activity

import (
	"time"

	"github.com/fchimpan/gh-kusa-map/internal/calendar"
)

// Observation is a count recorded for a single calendar day.
type Observation struct {
	Date  time.Time
	Count int
}

// Counts returns the count of every observation, in input order.
func Counts(obs []Observation) []int {
	out := make([]int, len(obs))
	for i, o := range obs {
		out[i] = o.Count
	}
	return out
}

// Span returns the earliest and latest observation dates.
// ok is false when obs is empty.
func Span(obs []Observation) (first, last time.Time, ok bool) {
	for i, o := range obs {
		d := calendar.Day(o.Date)
		if i == 0 || d.Before(first) {
			first = d
		}
		if i == 0 || d.After(last) {
			last = d
		}
	}
	return first, last, len(obs) > 0
}

// CellIndex maps grid cell indexes to observations.
type CellIndex map[int]Observation

// IndexByCell places each observation on its grid cell. Observations outside
// the layout's date range are dropped and counted.
// Later observations for the same day replace earlier ones.
func IndexByCell(l calendar.Layout, obs []Observation) (CellIndex, int) {
	out := make(CellIndex, len(obs))
	dropped := 0
	for _, o := range obs {
		i := l.CellIndex(o.Date)
		if !l.IsActive(i) {
			dropped++
			continue
		}
		out[i] = Observation{Date: calendar.Day(o.Date), Count: o.Count}
	}
	return out, dropped
}
