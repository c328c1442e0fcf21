package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-kusa-map/internal/activity"
	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

// Terminal is the subset of go-gh's term.Term used to pick output defaults.
type Terminal interface {
	IsTerminalOutput() bool
	IsColorEnabled() bool
	Size() (int, int, error)
}

type Deps struct {
	Open     func(path string) (io.ReadCloser, error)
	Create   func(path string) (io.WriteCloser, error)
	RunTUI   func(title string, h heatmap.Heatmap, style config.Style, color bool) error
	Terminal func() Terminal
	Now      func() time.Time
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		Open:     func(path string) (io.ReadCloser, error) { return os.Open(path) },
		Create:   func(path string) (io.WriteCloser, error) { return os.Create(path) },
		RunTUI:   defaultRunTUI,
		Terminal: func() Terminal { return term.FromEnv() },
		Now:      time.Now,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

const (
	outputTerm    = "term"
	outputSVG     = "svg"
	outputTUI     = "tui"
	outputSummary = "summary"
)

func NewRootCmd(deps Deps) *cobra.Command {
	var (
		input      string
		formatStr  string
		fromStr    string
		toStr      string
		output     string
		outPath    string
		configPath string

		baseColor  string
		variance   int
		colors     []string
		circle     bool
		cellSize   int
		gutter     int
		radius     int
		width      int
		weekLabels string
	)

	c := &cobra.Command{
		Use:          "kusa-map",
		Short:        "Render an activity heatmap calendar from per-day counts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			style := config.Default()
			if configPath != "" {
				s, err := config.Load(configPath)
				if err != nil {
					return err
				}
				style = s
			}

			// Flags win over the config file, but only when set explicitly.
			flags := cmd.Flags()
			if flags.Changed("base-color") {
				style.BaseColor = baseColor
			}
			if flags.Changed("variance") {
				style.IntensityVariance = variance
			}
			if flags.Changed("colors") {
				style.Colors = colors
			}
			if flags.Changed("circle") {
				style.CircleCells = circle
			}
			if flags.Changed("cell-size") {
				style.CellSize = cellSize
			}
			if flags.Changed("gutter") {
				style.GutterSize = gutter
			}
			if flags.Changed("radius") {
				style.CellRadius = radius
			}
			if flags.Changed("width") {
				style.Width = width
			}
			if flags.Changed("week-labels") {
				style.WeekLabelPattern = weekLabels
			}
			if err := style.Validate(); err != nil {
				printHint(deps.Stderr, err)
				return err
			}

			format, err := activity.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			output = strings.ToLower(output)
			switch output {
			case outputTerm, outputSVG, outputTUI, outputSummary:
			default:
				return fmt.Errorf("--output must be one of term, svg, tui, summary")
			}

			// Default range: the year ending today, like GitHub's profile graph.
			to := calendar.Day(deps.Now())
			if toStr != "" {
				t, err := parseDate("--to", toStr)
				if err != nil {
					return err
				}
				to = t
			}
			from := to.AddDate(-1, 0, -1)
			if fromStr != "" {
				t, err := parseDate("--from", fromStr)
				if err != nil {
					return err
				}
				from = t
			}

			opts := runOptions{
				Input:  input,
				Format: format,
				From:   from,
				To:     to,
				Output: output,
				Out:    outPath,
				Style:  style,
			}
			if err := run(deps, opts); err != nil {
				printHint(deps.Stderr, err)
				return err
			}
			return nil
		},
	}

	def := config.Default()
	c.Flags().StringVarP(&input, "input", "i", "-", "observations file (\"-\" reads stdin)")
	c.Flags().StringVar(&formatStr, "format", string(activity.FormatAuto), "input format: auto, json, csv or github")
	c.Flags().StringVarP(&fromStr, "from", "f", "", "start date (YYYY-MM-DD). default: one year before --to")
	c.Flags().StringVarP(&toStr, "to", "t", "", "end date (YYYY-MM-DD). default: today")
	c.Flags().StringVarP(&output, "output", "o", outputTerm, "output: term, svg, tui or summary")
	c.Flags().StringVar(&outPath, "out", "", "write output to a file instead of stdout")
	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML style file")

	c.Flags().StringVar(&baseColor, "base-color", def.BaseColor, "most intense color; lighter levels are derived from it")
	c.Flags().IntVar(&variance, "variance", def.IntensityVariance, "number of intensity levels, empty days included (>= 2)")
	c.Flags().StringSliceVar(&colors, "colors", nil, "explicit palette, most to least intense (overrides --base-color)")
	c.Flags().BoolVar(&circle, "circle", false, "draw round cells (svg)")
	c.Flags().IntVar(&cellSize, "cell-size", def.CellSize, "cell size in px (svg)")
	c.Flags().IntVar(&gutter, "gutter", def.GutterSize, "gap between cells in px (svg)")
	c.Flags().IntVar(&radius, "radius", def.CellRadius, "cell corner radius in px (svg)")
	c.Flags().IntVar(&width, "width", 0, "svg width in px (default: natural width)")
	c.Flags().StringVar(&weekLabels, "week-labels", "", "weekday labels: all, odd, none or 7 comma separated labels")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

func parseDate(flag, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q (expected YYYY-MM-DD)", flag, s)
	}
	return t, nil
}

func printHint(w io.Writer, err error) {
	switch {
	case calendar.IsInvalidRange(err):
		fmt.Fprintln(w, "hint: --from must be on or before --to")
	case activity.IsParseError(err):
		fmt.Fprintln(w, `hint: expected JSON [{"date":"YYYY-MM-DD","count":N}], CSV "date,count" rows, or a GitHub contributionCalendar (see --format)`)
	case intensity.IsInvalidColor(err):
		fmt.Fprintln(w, "hint: colors are hex values such as #216e39")
	}
}
