package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fchimpan/gh-kusa-map/internal/activity"
	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
	"github.com/fchimpan/gh-kusa-map/internal/render"
)

type runOptions struct {
	Input  string
	Format activity.Format
	From   time.Time
	To     time.Time
	Output string
	Out    string
	Style  config.Style
}

func run(deps Deps, opts runOptions) error {
	if deps.Open == nil {
		return fmt.Errorf("deps.Open is nil")
	}
	if deps.Create == nil {
		return fmt.Errorf("deps.Create is nil")
	}
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.Terminal == nil {
		return fmt.Errorf("deps.Terminal is nil")
	}

	obs, err := readObservations(deps, opts.Input, opts.Format)
	if err != nil {
		return err
	}

	h, err := heatmap.Build(opts.From, opts.To, obs, heatmap.Options{
		BaseColor: opts.Style.BaseColor,
		Variance:  opts.Style.IntensityVariance,
		Colors:    opts.Style.Colors,
	})
	if err != nil {
		return err
	}
	if h.Dropped > 0 {
		fmt.Fprintf(deps.Stderr, "warning: ignored %d observation(s) outside %s..%s\n",
			h.Dropped, h.Layout.Start.Format(time.DateOnly), h.Layout.End.Format(time.DateOnly))
		if h.Dropped == len(obs) {
			if first, last, ok := activity.Span(obs); ok {
				fmt.Fprintf(deps.Stderr, "hint: the input covers %s..%s, try --from %s --to %s\n",
					first.Format(time.DateOnly), last.Format(time.DateOnly),
					first.Format(time.DateOnly), last.Format(time.DateOnly))
			}
		}
	}

	t := deps.Terminal()
	if opts.Output == outputTUI {
		if opts.Out != "" {
			return fmt.Errorf("--out cannot be used with --output tui")
		}
		if !t.IsTerminalOutput() {
			return fmt.Errorf("--output tui requires a terminal")
		}
		return deps.RunTUI(inputTitle(opts.Input), h, opts.Style, t.IsColorEnabled())
	}

	w := deps.Stdout
	tty := t.IsTerminalOutput()
	color := t.IsColorEnabled()
	if opts.Out != "" {
		f, err := deps.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
		tty = false
		color = false
	}

	width := 0
	if tty {
		if tw, _, err := t.Size(); err == nil && tw > 0 {
			width = tw
		}
	}

	switch opts.Output {
	case outputSVG:
		return render.SVG(w, h, opts.Style)
	case outputSummary:
		return render.Summary(w, heatmap.Summarize(h), tty, width)
	default:
		if width > 0 {
			if cols := render.TermColumns(width); cols < h.Cols {
				h = h.Window(cols)
				fmt.Fprintf(deps.Stderr, "warning: showing the latest %d of %d weeks to fit the terminal\n", h.Cols, h.Layout.Weeks)
			}
		}
		if err := render.Terminal(w, h, opts.Style, color); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, render.Describe(h))
		return err
	}
}

func readObservations(deps Deps, path string, format activity.Format) ([]activity.Observation, error) {
	var r io.Reader
	if path == "" || path == "-" {
		if deps.Stdin == nil {
			return nil, fmt.Errorf("deps.Stdin is nil")
		}
		r = deps.Stdin
	} else {
		f, err := deps.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	obs, err := activity.Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}
	return obs, nil
}

func inputTitle(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}
