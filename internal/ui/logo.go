package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	`█▀█ █▀▀ █▀▄ ▄▀█ █▀▀ ▀█▀ █▄▀ █ ▀█▀`,
	`█▀▄ ██▄ █▄▀ █▀█ █▄▄  █  █ █ █  █ `,
}

// LogoFrame renders a single animated frame.
func LogoFrame(frame int) string {
	lines := make([]string, len(logoLines))
	for i, line := range logoLines {
		color := Palette[(frame+i)%len(Palette)]
		lines[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(lines, "\n")
}

// Logo renders the first frame.
func Logo() string {
	return LogoFrame(0)
}
