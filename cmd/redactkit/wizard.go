package main

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/suryansh-23/redactkit/internal/ui"
)

type tickMsg struct{}

// wizardModel wraps a huh form with an animated logo and a live preview
// that is recomputed from the form's bound values on every render.
type wizardModel struct {
	form     *huh.Form
	preview  func() string
	idx      int
	interval time.Duration
}

func newWizardModel(form *huh.Form, preview func() string) wizardModel {
	return wizardModel{
		form:     form,
		preview:  preview,
		interval: 140 * time.Millisecond,
	}
}

func (m wizardModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), tick(m.interval))
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		m.idx = (m.idx + 1) % len(ui.Palette)
		return m, tick(m.interval)
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m wizardModel) View() string {
	view := ui.LogoFrame(m.idx) + "\n\n" + m.form.View()
	if m.preview != nil {
		view += "\n" + ui.Heading("Preview") + "\n" + m.preview()
	}
	return view
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func runAnimatedForm(form *huh.Form, preview func() string) error {
	if os.Getenv("TERM") == "dumb" {
		return form.Run()
	}

	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Interrupt

	p := tea.NewProgram(newWizardModel(form, preview), tea.WithOutput(os.Stderr), tea.WithInput(os.Stdin))
	m, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return huh.ErrUserAborted
		}
		return err
	}
	if wm, ok := m.(wizardModel); ok && wm.form.State == huh.StateAborted {
		return huh.ErrUserAborted
	}
	return nil
}
