package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the form theme used by init and reset.
func Theme() *huh.Theme {
	t := huh.ThemeBase()
	title := lipgloss.NewStyle().Foreground(Primary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(Muted)

	t.Form.Base = t.Form.Base.PaddingLeft(1)
	t.Group.Title = title
	t.Group.Description = muted

	t.Focused.Title = title
	t.Focused.Description = muted
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(Accent)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(Primary).SetString("▸ ")
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(Primary).SetString("▸ ")
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(Secondary)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(Secondary).SetString("█ ")
	t.Focused.UnselectedPrefix = muted.SetString("░ ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Muted).Background(lipgloss.Color("0"))
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	t.Blurred.Title = muted
	t.Blurred.Description = muted
	return t
}

// Heading renders a section title.
func Heading(s string) string {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true).Render(s)
}

// Hint renders secondary text.
func Hint(s string) string {
	return lipgloss.NewStyle().Foreground(Muted).Render(s)
}
