package calendar

import (
	"strings"
	"time"
)

var (
	// DayNames are indexed by time.Weekday.
	DayNames = [DaysInWeek]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	// MonthNames are indexed by time.Month - 1.
	MonthNames = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// ShortDay returns the three letter name of d.
func ShortDay(d time.Weekday) string {
	return DayNames[d][:3]
}

// ShortMonth returns the three letter name of m.
func ShortMonth(m time.Month) string {
	return MonthNames[m-1][:3]
}

// MonthLabel marks a week column that carries a month name.
type MonthLabel struct {
	Week  int
	Month time.Month
}

// Text returns the short month name.
func (m MonthLabel) Text() string {
	return ShortMonth(m.Month)
}

// MonthLabels returns one label per week column whose first cell falls on
// day-of-month 7..13. This places most months once, near their first full
// week, but depending on alignment a month may be skipped or its label may
// land a column late.
func (l Layout) MonthLabels() []MonthLabel {
	var out []MonthLabel
	for w := 0; w < l.Weeks; w++ {
		d := l.WeekStart(w)
		if d.Day() >= DaysInWeek && d.Day() < 2*DaysInWeek {
			out = append(out, MonthLabel{Week: w, Month: d.Month()})
		}
	}
	return out
}

// WeekdayLabels resolves a week label pattern into one label per weekday row.
// Rows with an empty string get no label.
//
// Accepted patterns:
//   - "" or "all": every weekday
//   - "odd": Mon, Wed, Fri (GitHub's layout)
//   - "none": no labels
//   - a comma separated list of 7 labels, e.g. "S,M,T,W,T,F,S" (blank entries hide a row)
func WeekdayLabels(pattern string) ([DaysInWeek]string, error) {
	var out [DaysInWeek]string
	switch strings.ToLower(strings.TrimSpace(pattern)) {
	case "", "all":
		for d := range out {
			out[d] = ShortDay(time.Weekday(d))
		}
		return out, nil
	case "odd":
		for d := range out {
			if d%2 == 1 {
				out[d] = ShortDay(time.Weekday(d))
			}
		}
		return out, nil
	case "none":
		return out, nil
	}

	parts := strings.Split(pattern, ",")
	if len(parts) != DaysInWeek {
		return out, &InvalidPatternError{Pattern: pattern}
	}
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out, nil
}
