package heatmap

import (
	"time"
)

// MonthSummary aggregates the active days of one calendar month.
type MonthSummary struct {
	Month      time.Time // first day of the month, UTC
	Days       int
	ActiveDays int // days with a count > 0
	Total      int
	Max        int
	MaxDate    time.Time
}

// Summarize returns one entry per month touched by the range, oldest first.
// Months partially covered by the range only count their covered days.
func Summarize(h Heatmap) []MonthSummary {
	var out []MonthSummary
	for c := 0; c < h.Cols; c++ {
		for r := 0; r < h.Rows; r++ {
			cell := h.Cells[r][c]
			if !cell.Active {
				continue
			}
			m := time.Date(cell.Date.Year(), cell.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
			if len(out) == 0 || !out[len(out)-1].Month.Equal(m) {
				out = append(out, MonthSummary{Month: m})
			}
			s := &out[len(out)-1]
			s.Days++
			if cell.Count > 0 {
				s.ActiveDays++
			}
			s.Total += cell.Count
			if cell.Count > s.Max {
				s.Max = cell.Count
				s.MaxDate = cell.Date
			}
		}
	}
	return out
}
