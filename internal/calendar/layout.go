package calendar

import (
	"time"
)

// DaysInWeek is the number of rows in every week column.
const DaysInWeek = 7

// Layout is the week x day geometry of a heatmap covering [Start, End].
// Cells are addressed by a linear index i = week*7 + weekday, where weekday
// follows time.Weekday (0=Sunday..6=Saturday).
type Layout struct {
	Start time.Time
	End   time.Time

	LeadingEmpty  int
	TrailingEmpty int
	TotalDays     int
	Weeks         int

	// FirstGridDate is the date of cell 0 (Start shifted back to Sunday).
	FirstGridDate time.Time
}

// Day truncates t to midnight UTC of its own calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	// Both sides are UTC midnights, so the difference is a whole number of days.
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// ComputeLayout returns the grid geometry for the inclusive range [start, end].
// It fails with *InvalidRangeError when end precedes start.
func ComputeLayout(start, end time.Time) (Layout, error) {
	start = Day(start)
	end = Day(end)
	if end.Before(start) {
		return Layout{}, &InvalidRangeError{Start: start, End: end}
	}

	leading := int(start.Weekday())
	trailing := DaysInWeek - (int(end.Weekday()) + 1)
	total := DaysBetween(start, end)
	weeks := (leading + total + trailing + DaysInWeek - 1) / DaysInWeek

	return Layout{
		Start:         start,
		End:           end,
		LeadingEmpty:  leading,
		TrailingEmpty: trailing,
		TotalDays:     total,
		Weeks:         weeks,
		FirstGridDate: start.AddDate(0, 0, -leading),
	}, nil
}

// Cells returns the number of cells in the grid, empty placeholders included.
func (l Layout) Cells() int {
	return l.Weeks * DaysInWeek
}

// LastActiveIndex is the index of the cell holding End.
func (l Layout) LastActiveIndex() int {
	return l.LeadingEmpty + l.TotalDays
}

// DateAt returns the calendar date of cell i.
func (l Layout) DateAt(i int) time.Time {
	return l.FirstGridDate.AddDate(0, 0, i)
}

// IsActive reports whether cell i represents a day inside the range.
func (l Layout) IsActive(i int) bool {
	return i >= l.LeadingEmpty && i <= l.LastActiveIndex()
}

// CellIndex is the inverse of DateAt. The result may fall outside the grid.
func (l Layout) CellIndex(date time.Time) int {
	return DaysBetween(l.FirstGridDate, date)
}

// Index returns the linear index of (week, weekday).
func Index(week, weekday int) int {
	return week*DaysInWeek + weekday
}

// WeekStart returns the date of the first cell in the given week column.
func (l Layout) WeekStart(week int) time.Time {
	return l.DateAt(Index(week, 0))
}
