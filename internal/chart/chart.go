// Package chart renders the historical trend as Unicode sparklines.
//
// The [Chart] is an explicit create-once resource: the UI constructs
// it on first data and afterwards only calls [Chart.Update], which
// mutates the label and data slices in place for the lifetime of the
// program. Presentation mode and theme changes flip flags and colors
// without touching the data.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvernier/macrolog/internal/logbook"
	"github.com/pvernier/macrolog/internal/theme"
)

// Mode selects which series are visible.
type Mode int

const (
	// ModeCalories shows the single calories series.
	ModeCalories Mode = iota
	// ModeNutrients shows protein, carbs, and fat.
	ModeNutrients
)

func (m Mode) String() string {
	if m == ModeNutrients {
		return "nutrients"
	}
	return "calories"
}

// series indices into the dataset array.
const (
	serCalories = iota
	serProtein
	serCarbs
	serFat
	serCount
)

var serLabels = [serCount]string{"kcal", "protein", "carbs", "fat"}

type dataset struct {
	values  []float64
	visible bool
}

// Chart holds the trend data and presentation state.
type Chart struct {
	labels  []string // dates, ascending
	sets    [serCount]dataset
	mode    Mode
	cursor  int
	palette theme.Palette
}

// New creates the chart with the initial series and mode. Call once;
// subsequent data changes go through Update.
func New(s logbook.Series, pal theme.Palette) *Chart {
	c := &Chart{palette: pal}
	c.sets[serCalories].visible = true
	c.Update(s)
	c.cursor = len(c.labels) - 1
	return c
}

// Update replaces the chart's labels and values in place. The cursor
// is clamped so it always points at an existing day.
func (c *Chart) Update(s logbook.Series) {
	c.labels = c.labels[:0]
	c.labels = append(c.labels, s.Dates...)
	for i, vals := range [serCount][]float64{s.Calories, s.Protein, s.Carbs, s.Fat} {
		c.sets[i].values = c.sets[i].values[:0]
		c.sets[i].values = append(c.sets[i].values, vals...)
	}
	if c.cursor >= len(c.labels) {
		c.cursor = len(c.labels) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// Mode returns the active presentation mode.
func (c *Chart) Mode() Mode { return c.mode }

// ToggleMode switches between the calories view and the nutrients
// view by flipping dataset visibility. Data is untouched, so toggling
// twice restores the exact previous state.
func (c *Chart) ToggleMode() {
	if c.mode == ModeCalories {
		c.mode = ModeNutrients
	} else {
		c.mode = ModeCalories
	}
	cal := c.mode == ModeCalories
	c.sets[serCalories].visible = cal
	c.sets[serProtein].visible = !cal
	c.sets[serCarbs].visible = !cal
	c.sets[serFat].visible = !cal
}

// Visible reports the visibility flags in series order (calories,
// protein, carbs, fat).
func (c *Chart) Visible() [4]bool {
	return [4]bool{
		c.sets[serCalories].visible,
		c.sets[serProtein].visible,
		c.sets[serCarbs].visible,
		c.sets[serFat].visible,
	}
}

// SetPalette recolors the chart for a theme change. Data and
// visibility are untouched.
func (c *Chart) SetPalette(pal theme.Palette) { c.palette = pal }

// Len returns the number of charted days.
func (c *Chart) Len() int { return len(c.labels) }

// MoveCursor shifts the selected day by delta, clamped to the data.
func (c *Chart) MoveCursor(delta int) {
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(c.labels) {
		c.cursor = len(c.labels) - 1
	}
}

// CursorDate returns the date under the cursor, or "" when the chart
// has no data.
func (c *Chart) CursorDate() string {
	if c.cursor < 0 || c.cursor >= len(c.labels) {
		return ""
	}
	return c.labels[c.cursor]
}

// View renders the chart at the given width: one sparkline row per
// visible series with its label and the value under the cursor, then
// a footer marking the cursor position and date.
func (c *Chart) View(width int) string {
	if len(c.labels) == 0 {
		return lipgloss.NewStyle().Foreground(c.palette.Muted).Render("no history yet")
	}

	labelW := 0
	for _, l := range serLabels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}
	lineW := width - labelW - 10
	if lineW < 8 {
		lineW = 8
	}
	if lineW > len(c.labels) {
		lineW = len(c.labels)
	}

	colors := [serCount]lipgloss.Color{
		c.palette.Calories, c.palette.Protein, c.palette.Carbs, c.palette.Fat,
	}

	var b strings.Builder
	for i := 0; i < serCount; i++ {
		if !c.sets[i].visible {
			continue
		}
		style := lipgloss.NewStyle().Foreground(colors[i])
		label := fmt.Sprintf("%*s ", labelW, serLabels[i])
		val := ""
		if c.cursor < len(c.sets[i].values) {
			val = fmt.Sprintf(" %6.0f", c.sets[i].values[c.cursor])
		}
		b.WriteString(lipgloss.NewStyle().Foreground(c.palette.Muted).Render(label))
		b.WriteString(style.Render(sparkline(c.sets[i].values, lineW)))
		b.WriteString(style.Render(val))
		b.WriteByte('\n')
	}

	b.WriteString(c.footer(labelW, lineW))
	return b.String()
}

// footer renders the cursor marker aligned under the sparkline column
// and the selected date.
func (c *Chart) footer(labelW, lineW int) string {
	pos := 0
	if len(c.labels) > 1 {
		pos = c.cursor * (lineW - 1) / (len(c.labels) - 1)
	}
	marker := strings.Repeat(" ", labelW+1+pos) + "^"
	muted := lipgloss.NewStyle().Foreground(c.palette.Muted)
	accent := lipgloss.NewStyle().Foreground(c.palette.Accent)
	return muted.Render(marker) + "\n" +
		muted.Render(strings.Repeat(" ", labelW+1)) + accent.Render(c.labels[c.cursor])
}

// sparkline maps a series onto width block characters, sampling when
// the series is longer than the line and min/max scaling the heights.
func sparkline(series []float64, width int) string {
	chars := []rune("▁▂▃▄▅▆▇█")
	if len(series) == 0 {
		return strings.Repeat(" ", width)
	}

	sampled := make([]float64, 0, width)
	if len(series) <= width {
		sampled = append(sampled, series...)
	} else {
		step := float64(len(series)-1) / float64(width-1)
		for i := 0; i < width; i++ {
			idx := int(math.Round(float64(i) * step))
			if idx >= len(series) {
				idx = len(series) - 1
			}
			sampled = append(sampled, series[idx])
		}
	}

	minV, maxV := sampled[0], sampled[0]
	for _, v := range sampled[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		return strings.Repeat(string(chars[3]), len(sampled))
	}

	var b strings.Builder
	b.Grow(width)
	for _, v := range sampled {
		r := (v - minV) / (maxV - minV)
		pos := int(math.Round(r * float64(len(chars)-1)))
		if pos < 0 {
			pos = 0
		}
		if pos >= len(chars) {
			pos = len(chars) - 1
		}
		b.WriteRune(chars[pos])
	}
	return b.String()
}
