package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

// Style holds the knobs that shape a rendered heatmap.
type Style struct {
	BaseColor         string   `yaml:"base_color"`
	IntensityVariance int      `yaml:"intensity_variance"`
	Colors            []string `yaml:"colors"` // overrides the palette built from BaseColor

	CellSize    int  `yaml:"cell_size"`
	GutterSize  int  `yaml:"gutter_size"`
	CellRadius  int  `yaml:"cell_radius"`
	CircleCells bool `yaml:"circle_cells"`
	// Width of the SVG element; 0 means the natural width of the grid.
	Width int `yaml:"width"`

	WeekLabelPattern string `yaml:"week_label_pattern"`
}

func Default() Style {
	return Style{
		BaseColor:         "#666666",
		IntensityVariance: 4,
		CellSize:          12,
		GutterSize:        3,
		CellRadius:        3,
	}
}

// Load reads a YAML style file on top of Default. Keys absent from the file
// keep their default values.
func Load(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode is Load for an already opened reader.
func Decode(r io.Reader) (Style, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate checks the style without building anything from it.
func (s Style) Validate() error {
	if s.IntensityVariance < intensity.MinBuckets {
		return &intensity.InvalidBucketCountError{Count: s.IntensityVariance}
	}
	if _, err := intensity.ResolvePalette(s.BaseColor, s.IntensityVariance, s.Colors); err != nil {
		return err
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("cell_size must be > 0")
	}
	if s.GutterSize < 0 || s.CellRadius < 0 || s.Width < 0 {
		return fmt.Errorf("gutter_size, cell_radius and width must be >= 0")
	}
	if _, err := calendar.WeekdayLabels(s.WeekLabelPattern); err != nil {
		return err
	}
	return nil
}
