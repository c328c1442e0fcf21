package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
)

const (
	// TermLabelWidth is the width of the weekday label column.
	TermLabelWidth = 4
	// TermCellWidth is the width of one week column (glyph + gap).
	TermCellWidth = 2
)

var (
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))

	// Used when color is disabled, light -> dark.
	levelGlyphs = []string{"░", "▒", "▓", "█"}
)

const (
	cellGlyph  = "■"
	emptyGlyph = "·"
)

// TermColumns returns how many week columns fit in width terminal cells.
func TermColumns(width int) int {
	return max((width-TermLabelWidth)/TermCellWidth, 1)
}

// Terminal writes h as text. With color, cells are drawn in their palette
// color; without, the level picks a shade glyph.
func Terminal(w io.Writer, h heatmap.Heatmap, style config.Style, color bool) error {
	s, err := TerminalString(h, style, color)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func TerminalString(h heatmap.Heatmap, style config.Style, color bool) (string, error) {
	dayLabels, err := calendar.WeekdayLabels(style.WeekLabelPattern)
	if err != nil {
		return "", err
	}

	cellFor := glyphCells(h)
	if color {
		cellFor = colorCells(h)
	}

	var b strings.Builder
	b.WriteString(monthHeader(h))
	b.WriteByte('\n')

	for r := 0; r < h.Rows; r++ {
		b.WriteString(styleLabel.Render(padLabel(dayLabels[r])))
		for c := 0; c < h.Cols; c++ {
			cell := h.Cells[r][c]
			if !cell.Active {
				b.WriteString(strings.Repeat(" ", TermCellWidth))
				continue
			}
			b.WriteString(cellFor(cell))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", TermLabelWidth))
	b.WriteString(styleLabel.Render("More "))
	for i := range h.Palette {
		b.WriteString(cellFor(heatmap.Cell{Active: true, Level: h.Variance - 1 - i, Color: h.Palette[i]}))
		b.WriteByte(' ')
	}
	b.WriteString(styleLabel.Render("Less"))
	b.WriteByte('\n')
	return b.String(), nil
}

// padLabel fits s into the label column, measured in terminal cells.
func padLabel(s string) string {
	s = ansi.Truncate(s, TermLabelWidth-1, "")
	return s + strings.Repeat(" ", TermLabelWidth-ansi.StringWidth(s))
}

// monthHeader places each month label above its week column. A label that
// would touch the previous one is skipped.
func monthHeader(h heatmap.Heatmap) string {
	var b strings.Builder
	pos := 0
	next := TermLabelWidth
	for _, m := range h.Months {
		x := TermLabelWidth + m.Week*TermCellWidth
		if x < next {
			continue
		}
		b.WriteString(strings.Repeat(" ", x-pos))
		b.WriteString(m.Text())
		pos = x + len(m.Text())
		next = pos + 1
	}
	return styleLabel.Render(b.String())
}

func colorCells(h heatmap.Heatmap) func(heatmap.Cell) string {
	cache := make(map[string]string, len(h.Palette))
	for _, c := range h.Palette {
		cache[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(cellGlyph)
	}
	return func(cell heatmap.Cell) string {
		if s, ok := cache[cell.Color]; ok {
			return s
		}
		return cellGlyph
	}
}

func glyphCells(h heatmap.Heatmap) func(heatmap.Cell) string {
	top := h.Variance - 1
	return func(cell heatmap.Cell) string {
		if cell.Level <= 0 {
			return emptyGlyph
		}
		if top <= 1 {
			return levelGlyphs[len(levelGlyphs)-1]
		}
		i := (cell.Level - 1) * (len(levelGlyphs) - 1) / (top - 1)
		return levelGlyphs[min(i, len(levelGlyphs)-1)]
	}
}

// Describe returns a one line summary of the range shown by h.
func Describe(h heatmap.Heatmap) string {
	return fmt.Sprintf("%d contributions from %s to %s (max %d/day)",
		h.Total, h.Layout.Start.Format("2006-01-02"), h.Layout.End.Format("2006-01-02"), h.MaxCount)
}
