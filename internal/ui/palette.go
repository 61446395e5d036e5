package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/suryansh-23/redactkit/internal/types"
)

const (
	colorCyan   = "#22D3EE"
	colorSky    = "#38BDF8"
	colorBlue   = "#60A5FA"
	colorViolet = "#A78BFA"
	colorPink   = "#F472B6"
	colorRose   = "#FB7185"
	colorAmber  = "#FBBF24"
	colorGreen  = "#34D399"
	colorMuted  = "#94A3B8"
)

var (
	Primary   = lipgloss.Color(colorCyan)
	Secondary = lipgloss.Color(colorViolet)
	Accent    = lipgloss.Color(colorPink)
	Warning   = lipgloss.Color(colorAmber)
	Success   = lipgloss.Color(colorGreen)
	Muted     = lipgloss.Color(colorMuted)
	Palette   = []lipgloss.Color{Primary, lipgloss.Color(colorSky), lipgloss.Color(colorBlue), Secondary, Accent, lipgloss.Color(colorRose)}
)

// CategoryColor returns the badge color for a detection label. Composite
// labels produced by overlap merging use the accent color.
func CategoryColor(label string) lipgloss.Color {
	for i, c := range types.Categories() {
		if c.Label() == label {
			return Palette[i%len(Palette)]
		}
	}
	return Warning
}
