package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines every binding the dashboard understands. Shown by the
// bubbles help view at the bottom of the screen.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	ChartLeft  key.Binding
	ChartRight key.Binding
	SelectDay  key.Binding
	ResetToday key.Binding
	ToggleMode key.Binding
	Theme      key.Binding
	Delete     key.Binding
	Form       key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		ChartLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "chart back"),
		),
		ChartRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "chart forward"),
		),
		SelectDay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show day"),
		),
		ResetToday: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "back to today"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "kcal/macros"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove entry"),
		),
		Form: key.NewBinding(
			key.WithKeys("a", "tab"),
			key.WithHelp("a", "add entry"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Form, k.Delete, k.ToggleMode, k.SelectDay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete, k.Form},
		{k.ChartLeft, k.ChartRight, k.SelectDay, k.ResetToday},
		{k.ToggleMode, k.Theme, k.Reload, k.Quit},
	}
}
