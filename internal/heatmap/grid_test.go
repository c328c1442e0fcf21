package heatmap

import (
	"testing"
	"time"

	"github.com/fchimpan/gh-kusa-map/internal/activity"
	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultOptions() Options {
	return Options{BaseColor: "#666666", Variance: 4}
}

func TestBuild_ClassifiesCells(t *testing.T) {
	t.Parallel()

	obs := []activity.Observation{
		{Date: day(2023, 1, 1), Count: 0},
		{Date: day(2023, 1, 2), Count: 0},
		{Date: day(2023, 1, 3), Count: 5},
		{Date: day(2023, 1, 4), Count: 5},
		{Date: day(2023, 1, 5), Count: 10},
		{Date: day(2023, 1, 6), Count: 20},
	}
	h, err := Build(day(2023, 1, 1), day(2023, 1, 7), obs, defaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Rows != 7 || h.Cols != 1 {
		t.Fatalf("grid size: %dx%d", h.Rows, h.Cols)
	}
	if len(h.Buckets) != 3 || h.Buckets[1] != 10 {
		t.Fatalf("buckets: %v", h.Buckets)
	}

	wantLevels := []int{0, 0, 2, 2, 2, 3, 0}
	for r, want := range wantLevels {
		if got := h.Cells[r][0].Level; got != want {
			t.Fatalf("row %d: level got %d want %d", r, got, want)
		}
	}
	if h.Cells[5][0].Color != h.Palette[0] {
		t.Fatalf("max count should use the darkest color")
	}
	if h.Cells[6][0].HasData || h.Cells[6][0].Color != h.Palette.Empty() {
		t.Fatalf("day without data should use the empty color: %+v", h.Cells[6][0])
	}
	if h.Total != 40 || h.MaxCount != 20 {
		t.Fatalf("total=%d max=%d", h.Total, h.MaxCount)
	}
}

func TestBuild_InactiveCellsHaveNoColor(t *testing.T) {
	t.Parallel()

	// Wednesday .. Monday
	obs := []activity.Observation{{Date: day(2023, 1, 2), Count: 3}}
	h, err := Build(day(2023, 1, 4), day(2023, 1, 9), obs, defaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Dropped != 1 {
		t.Fatalf("dropped: got %d", h.Dropped)
	}
	for c := 0; c < h.Cols; c++ {
		for r := 0; r < h.Rows; r++ {
			cell := h.Cells[r][c]
			if cell.Active == (cell.Color == "") {
				t.Fatalf("cell %v: active=%v color=%q", cell.Date, cell.Active, cell.Color)
			}
		}
	}
	if h.Cells[2][0].Active || !h.Cells[3][0].Active || !h.Cells[1][1].Active || h.Cells[2][1].Active {
		t.Fatalf("unexpected active flags")
	}
}

func TestBuild_PaletteOverride(t *testing.T) {
	t.Parallel()

	opts := Options{BaseColor: "#666666", Variance: 2, Colors: []string{"#216e39", "#ebedf0"}}
	obs := []activity.Observation{{Date: day(2023, 1, 1), Count: 1}}
	h, err := Build(day(2023, 1, 1), day(2023, 1, 2), obs, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Cells[0][0].Color != "#216e39" || h.Cells[1][0].Color != "#ebedf0" {
		t.Fatalf("override not applied: %q %q", h.Cells[0][0].Color, h.Cells[1][0].Color)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Build(day(2023, 1, 2), day(2023, 1, 1), nil, defaultOptions()); !calendar.IsInvalidRange(err) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
	if _, err := Build(day(2023, 1, 1), day(2023, 1, 2), nil, Options{BaseColor: "#666666", Variance: 1}); !intensity.IsInvalidBucketCount(err) {
		t.Fatalf("expected InvalidBucketCountError, got %v", err)
	}
	obs := []activity.Observation{{Date: day(2023, 1, 1), Count: -1}}
	if _, err := Build(day(2023, 1, 1), day(2023, 1, 2), obs, defaultOptions()); !intensity.IsInvalidCount(err) {
		t.Fatalf("expected InvalidCountError, got %v", err)
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	h, err := Build(day(2023, 1, 1), day(2023, 12, 31), nil, defaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := h.Window(10)
	if w.Cols != 10 || len(w.Cells[0]) != 10 {
		t.Fatalf("cols: got %d", w.Cols)
	}
	if w.Offset != h.Cols-10 {
		t.Fatalf("offset: got %d", w.Offset)
	}
	if !w.Cells[0][9].Date.Equal(h.Cells[0][h.Cols-1].Date) {
		t.Fatalf("window should keep the latest weeks")
	}
	for _, m := range w.Months {
		if m.Week < 0 || m.Week >= w.Cols {
			t.Fatalf("month label outside window: %+v", m)
		}
		if w.Cells[0][m.Week].Date.Day() < 7 || w.Cells[0][m.Week].Date.Day() >= 14 {
			t.Fatalf("month label shifted incorrectly: %+v", m)
		}
	}
	if same := h.Window(h.Cols + 5); same.Cols != h.Cols || same.Offset != 0 {
		t.Fatalf("window wider than grid should be a no-op")
	}
}
