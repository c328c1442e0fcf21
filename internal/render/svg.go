package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
)

const (
	labelColumnW = 40 // room for weekday labels left of the grid
	monthRowH    = 40 // room for month labels above the grid
	legendGap    = 10
	legendTextW  = 40

	labelStyle = `font-size:12px;line-height:18px;font-family:system-ui,-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,"Helvetica Neue",Arial,"Noto Sans",sans-serif;text-transform:uppercase;fill:#4a4a4a`
)

// SVG writes h as a standalone SVG document: weekday labels on the left,
// month labels on top, one cell per active day, and a More/Less legend below.
func SVG(w io.Writer, h heatmap.Heatmap, style config.Style) error {
	dayLabels, err := calendar.WeekdayLabels(style.WeekLabelPattern)
	if err != nil {
		return err
	}

	step := style.CellSize + style.GutterSize
	viewW := step*h.Cols + labelColumnW
	viewH := step*calendar.DaysInWeek + monthRowH + legendGap + style.CellSize + 20
	width := viewW
	if style.Width > 0 {
		width = style.Width
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" viewBox="0 0 %d %d">`+"\n", width, viewW, viewH)
	fmt.Fprintf(&sb, `  <style>.label{%s}</style>`+"\n", labelStyle)

	// weekday labels
	fmt.Fprintf(&sb, `  <g transform="translate(0, %d)">`+"\n", monthRowH)
	for d, text := range dayLabels {
		if text == "" {
			continue
		}
		y := (d+1)*style.CellSize + d*style.GutterSize
		fmt.Fprintf(&sb, `    <text x="0" y="%d" class="label">%s</text>`+"\n", y, html.EscapeString(text))
	}
	sb.WriteString("  </g>\n")

	// month labels
	fmt.Fprintf(&sb, `  <g transform="translate(%d, 0)">`+"\n", labelColumnW)
	for _, m := range h.Months {
		fmt.Fprintf(&sb, `    <text x="%d" y="20" class="label">%s</text>`+"\n", m.Week*step, m.Text())
	}
	sb.WriteString("  </g>\n")

	// cells
	fmt.Fprintf(&sb, `  <g transform="translate(%d, %d)">`+"\n", labelColumnW, monthRowH)
	for c := 0; c < h.Cols; c++ {
		fmt.Fprintf(&sb, `    <g transform="translate(%d, 0)">`+"\n", c*step)
		for r := 0; r < h.Rows; r++ {
			cell := h.Cells[r][c]
			if !cell.Active {
				continue
			}
			sb.WriteString("      ")
			writeCell(&sb, style, 0, r*step, cell.Color)
			sb.WriteString("\n")
		}
		sb.WriteString("    </g>\n")
	}
	sb.WriteString("  </g>\n")

	// legend
	legendY := step*calendar.DaysInWeek + monthRowH + legendGap
	fmt.Fprintf(&sb, `  <g transform="translate(%d, %d)">`+"\n", labelColumnW, legendY)
	fmt.Fprintf(&sb, `    <text x="0" y="%d" class="label">More</text>`+"\n", style.CellSize)
	for i, color := range h.Palette {
		sb.WriteString("    ")
		writeCell(&sb, style, i*step+legendTextW, 0, color)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, `    <text x="%d" y="%d" class="label">Less</text>`+"\n", len(h.Palette)*step+legendTextW, style.CellSize)
	sb.WriteString("  </g>\n")
	sb.WriteString("</svg>\n")

	_, err = io.WriteString(w, sb.String())
	return err
}

func writeCell(sb *strings.Builder, style config.Style, x, y int, fill string) {
	if style.CircleCells {
		r := float64(style.CellSize) / 2
		fmt.Fprintf(sb, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>`, float64(x)+r, float64(y)+r, r, fill)
		return
	}
	fmt.Fprintf(sb, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>`,
		x, y, style.CellSize, style.CellSize, style.CellRadius, fill)
}
