package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pvernier/macrolog/internal/theme"
)

// styles holds every lipgloss style the views draw with. Rebuilt
// wholesale on a theme change so no stale colors survive a toggle.
type styles struct {
	title    lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	errText  lipgloss.Style
	selected lipgloss.Style
	kcal     lipgloss.Style
	protein  lipgloss.Style
	carbs    lipgloss.Style
	fat      lipgloss.Style
	status   lipgloss.Style
}

func newStyles(pal theme.Palette) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.Accent),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(pal.Border).
			Padding(0, 1),

		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.Accent),

		text:  lipgloss.NewStyle().Foreground(pal.Text),
		muted: lipgloss.NewStyle().Foreground(pal.Muted),

		accent: lipgloss.NewStyle().Foreground(pal.Accent),

		errText: lipgloss.NewStyle().
			Foreground(pal.Error).
			Bold(true),

		selected: lipgloss.NewStyle().
			Foreground(pal.Text).
			Bold(true).
			Underline(true),

		kcal:    lipgloss.NewStyle().Foreground(pal.Calories),
		protein: lipgloss.NewStyle().Foreground(pal.Protein),
		carbs:   lipgloss.NewStyle().Foreground(pal.Carbs),
		fat:     lipgloss.NewStyle().Foreground(pal.Fat),

		status: lipgloss.NewStyle().Foreground(pal.Muted).Italic(true),
	}
}
