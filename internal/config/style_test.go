package config

import (
	"strings"
	"testing"

	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

func TestDecode_MergesOverDefaults(t *testing.T) {
	t.Parallel()

	in := `
base_color: "#216e39"
intensity_variance: 5
circle_cells: true
week_label_pattern: odd
`
	s, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseColor != "#216e39" || s.IntensityVariance != 5 || !s.CircleCells || s.WeekLabelPattern != "odd" {
		t.Fatalf("unexpected style: %+v", s)
	}
	if s.CellSize != 12 || s.GutterSize != 3 || s.CellRadius != 3 {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	s, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseColor != Default().BaseColor || s.IntensityVariance != Default().IntensityVariance {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "unknown key", in: "base_colour: red\n"},
		{name: "bad variance", in: "intensity_variance: 1\n"},
		{name: "bad color", in: "base_color: nope\n"},
		{name: "palette size", in: "colors: ['#000000']\n"},
		{name: "cell size", in: "cell_size: 0\n"},
		{name: "pattern", in: "week_label_pattern: 'a,b'\n"},
	}
	for _, tt := range tests {
		if _, err := Decode(strings.NewReader(tt.in)); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestValidate_BucketCountError(t *testing.T) {
	t.Parallel()

	s := Default()
	s.IntensityVariance = 0
	if err := s.Validate(); !intensity.IsInvalidBucketCount(err) {
		t.Fatalf("expected InvalidBucketCountError, got %v", err)
	}
}
