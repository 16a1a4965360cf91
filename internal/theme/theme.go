// Package theme defines the light and dark color palettes. A palette
// maps UI roles and chart series to lipgloss colors; switching themes
// swaps the palette only, never the data behind it.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme names as persisted in preferences.
const (
	Dark  = "dark"
	Light = "light"
)

// Palette holds every color the UI and chart draw with.
type Palette struct {
	Name string

	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
	Border lipgloss.Color

	// Chart / nutrient series colors.
	Calories lipgloss.Color
	Protein  lipgloss.Color
	Carbs    lipgloss.Color
	Fat      lipgloss.Color
}

var dark = Palette{
	Name:     Dark,
	Text:     lipgloss.Color("#d4d4d8"),
	Muted:    lipgloss.Color("#71717a"),
	Accent:   lipgloss.Color("#94a3b8"),
	Error:    lipgloss.Color("#fca5a5"),
	Border:   lipgloss.Color("#52525b"),
	Calories: lipgloss.Color("#F97316"), // orange
	Protein:  lipgloss.Color("#60A5FA"), // blue
	Carbs:    lipgloss.Color("#FBBF24"), // amber
	Fat:      lipgloss.Color("#F472B6"), // pink
}

var light = Palette{
	Name:     Light,
	Text:     lipgloss.Color("#27272a"),
	Muted:    lipgloss.Color("#a1a1aa"),
	Accent:   lipgloss.Color("#475569"),
	Error:    lipgloss.Color("#dc2626"),
	Border:   lipgloss.Color("#d4d4d8"),
	Calories: lipgloss.Color("#c2410c"),
	Protein:  lipgloss.Color("#1d4ed8"),
	Carbs:    lipgloss.Color("#b45309"),
	Fat:      lipgloss.Color("#be185d"),
}

// ByName returns the palette for a persisted theme name. Unknown names
// fall back to dark, the default.
func ByName(name string) Palette {
	if name == Light {
		return light
	}
	return dark
}

// Toggle returns the other palette.
func (p Palette) Toggle() Palette {
	if p.Name == Dark {
		return light
	}
	return dark
}
