package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
	"github.com/fchimpan/gh-kusa-map/internal/tui"
)

func defaultRunTUI(title string, h heatmap.Heatmap, style config.Style, color bool) error {
	m := tui.NewModel(title, h, style, color)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}
