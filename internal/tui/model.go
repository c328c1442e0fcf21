package tui

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
	"github.com/fchimpan/gh-kusa-map/internal/render"
)

// Model shows a heatmap full screen. It only reacts to window resizes, which
// re-fit the grid to the most recent weeks, and to quit keys.
type Model struct {
	title string
	full  heatmap.Heatmap
	style config.Style
	color bool

	ready bool
	w     int
	h     int

	view    heatmap.Heatmap
	body    string
	err     error
	viewBuf bytes.Buffer
}

func NewModel(title string, h heatmap.Heatmap, style config.Style, color bool) *Model {
	return &Model{
		title: title,
		full:  h,
		style: style,
		color: color,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.rebuild()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// Err returns the last rendering error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) rebuild() {
	// Keep a couple columns for padding.
	cols := render.TermColumns(m.w - 2)
	m.view = m.full.Window(cols)
	m.body, m.err = render.TerminalString(m.view, m.style, m.color)
	m.ready = true
}

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	m.viewBuf.Reset()
	b := &m.viewBuf

	if m.err != nil {
		fmt.Fprintf(b, "error: %v (q quit)\n", m.err)
		return b.String()
	}

	hud := renderHUD(m.title, m.full, m.view)
	lines := strings.Split(strings.TrimRight(m.body, "\n"), "\n")

	contentW := lipgloss.Width(hud)
	for _, l := range lines {
		if w := lipgloss.Width(l); w > contentW {
			contentW = w
		}
	}
	leftPad := ""
	if m.w > contentW {
		leftPad = strings.Repeat(" ", (m.w-contentW)/2)
	}

	// Lines: HUD(1) + blank(1) + heatmap + blank(1) + help(1)
	contentH := 2 + len(lines) + 2
	if m.h > contentH {
		b.WriteString(strings.Repeat("\n", (m.h-contentH)/2))
	}

	b.WriteString(leftPad)
	b.WriteString(hud)
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(leftPad)
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(leftPad)
	b.WriteString(styleHudDim.Render("q quit"))
	b.WriteByte('\n')
	return b.String()
}

func renderHUD(title string, full, view heatmap.Heatmap) string {
	sep := styleHudDim.Render("  |  ")

	parts := []string{}
	if title != "" {
		parts = append(parts, styleHudLabel.Render("source ")+styleHudValue.Render(title), sep)
	}
	parts = append(parts,
		styleHudLabel.Render("total ")+styleHudScore.Render(fmt.Sprintf("%d", full.Total)),
		sep,
		styleHudLabel.Render("max ")+styleHudValue.Render(fmt.Sprintf("%d/day", full.MaxCount)),
		sep,
		styleHudLabel.Render("weeks ")+styleHudValue.Render(fmt.Sprintf("%d/%d", view.Cols, full.Cols)),
	)
	if view.Cols < full.Cols {
		parts = append(parts, styleHudDim.Render("  (widen the window to see older weeks)"))
	}
	return strings.Join(parts, "")
}

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)
