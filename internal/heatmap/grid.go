package heatmap

import (
	"time"

	"github.com/fchimpan/gh-kusa-map/internal/activity"
	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

type Cell struct {
	Date    time.Time
	Active  bool // inside the requested range
	HasData bool
	Count   int
	Level   int    // 0 (no activity) .. Variance-1
	Color   string // empty for inactive cells
}

// Heatmap is a 7(row: weekday 0..6) x N(col: week) grid.
// Rows correspond to time.Weekday (0=Sunday..6=Saturday).
type Heatmap struct {
	Layout   calendar.Layout
	Buckets  intensity.Buckets
	Palette  intensity.Palette
	Variance int

	Rows  int
	Cols  int
	Cells [][]Cell // [row][col]

	// Months holds month labels with Week relative to column 0.
	Months []calendar.MonthLabel

	// MaxCount and Total cover the whole range, even after Window.
	MaxCount int
	Total    int
	// Dropped counts observations outside the range.
	Dropped int
	// Offset is the layout week shown in column 0; non-zero after Window.
	Offset int
}

type Options struct {
	BaseColor string
	Variance  int
	Colors    []string
}

// Build lays out [from, to] and colors every active cell from obs.
//
// Thresholds are computed over every supplied count, including observations
// that fall outside the range. Active cells without an observation get the
// lightest palette color.
func Build(from, to time.Time, obs []activity.Observation, opts Options) (Heatmap, error) {
	layout, err := calendar.ComputeLayout(from, to)
	if err != nil {
		return Heatmap{}, err
	}
	buckets, err := intensity.ComputeBuckets(activity.Counts(obs), opts.Variance)
	if err != nil {
		return Heatmap{}, err
	}
	palette, err := intensity.ResolvePalette(opts.BaseColor, opts.Variance, opts.Colors)
	if err != nil {
		return Heatmap{}, err
	}
	byCell, dropped := activity.IndexByCell(layout, obs)

	cols := layout.Weeks
	cells := make([][]Cell, calendar.DaysInWeek)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	h := Heatmap{
		Layout:   layout,
		Buckets:  buckets,
		Palette:  palette,
		Variance: opts.Variance,
		Rows:     calendar.DaysInWeek,
		Cols:     cols,
		Cells:    cells,
		Months:   layout.MonthLabels(),
		Dropped:  dropped,
	}

	for c := 0; c < cols; c++ {
		for r := 0; r < calendar.DaysInWeek; r++ {
			i := calendar.Index(c, r)
			cell := Cell{Date: layout.DateAt(i), Active: layout.IsActive(i)}
			if cell.Active {
				cell.Color = palette.Empty()
				if o, ok := byCell[i]; ok {
					idx, err := intensity.Classify(o.Count, buckets, opts.Variance)
					if err != nil {
						return Heatmap{}, err
					}
					cell.HasData = true
					cell.Count = o.Count
					cell.Level = opts.Variance - 1 - idx
					cell.Color = palette[idx]
					h.Total += o.Count
					if o.Count > h.MaxCount {
						h.MaxCount = o.Count
					}
				}
			}
			cells[r][c] = cell
		}
	}
	return h, nil
}

// Window returns the most recent maxCols weeks. Month labels that fall in the
// dropped columns are removed and the rest are shifted.
func (h Heatmap) Window(maxCols int) Heatmap {
	if maxCols <= 0 {
		maxCols = 1
	}
	if h.Cols <= maxCols {
		return h
	}

	skip := h.Cols - maxCols
	out := h
	out.Cols = maxCols
	out.Offset = h.Offset + skip
	out.Cells = make([][]Cell, h.Rows)
	for r := range h.Cells {
		out.Cells[r] = h.Cells[r][skip:]
	}
	out.Months = nil
	for _, m := range h.Months {
		if m.Week >= skip {
			out.Months = append(out.Months, calendar.MonthLabel{Week: m.Week - skip, Month: m.Month})
		}
	}
	return out
}
