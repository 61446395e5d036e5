package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/suryansh-23/redactkit/internal/redact"
	"github.com/suryansh-23/redactkit/internal/types"
)

// Stats summarizes one redaction for display.
type Stats struct {
	Total       int                `json:"total"`
	Counts      []redact.TypeCount `json:"counts"`
	InputChars  int                `json:"inputChars"`
	OutputChars int                `json:"outputChars"`
}

// Summarize counts detections per type. Built-in labels come first in
// detection order, followed by any other label in order of first appearance.
func Summarize(input string, res redact.Result) Stats {
	counts := res.CountByType()
	ordered := make([]redact.TypeCount, 0, len(counts))
	used := make([]bool, len(counts))
	for _, c := range types.Categories() {
		for i, tc := range counts {
			if !used[i] && tc.Type == c.Label() {
				ordered = append(ordered, tc)
				used[i] = true
			}
		}
	}
	for i, tc := range counts {
		if !used[i] {
			ordered = append(ordered, tc)
		}
	}
	return Stats{
		Total:       len(res.DetectedData),
		Counts:      ordered,
		InputChars:  utf8.RuneCountInString(input),
		OutputChars: utf8.RuneCountInString(res.RedactedText),
	}
}

// Headline returns the one-line detection count.
func (s Stats) Headline() string {
	switch s.Total {
	case 0:
		return "No sensitive data detected"
	case 1:
		return "1 sensitive item detected"
	default:
		return fmt.Sprintf("%d sensitive items detected", s.Total)
	}
}

// Plain renders the summary without styling.
func (s Stats) Plain() string {
	var b strings.Builder
	b.WriteString(s.Headline())
	b.WriteByte('\n')
	for _, tc := range s.Counts {
		fmt.Fprintf(&b, "  %s: %d\n", tc.Type, tc.Count)
	}
	fmt.Fprintf(&b, "Characters: %d in, %d out\n", s.InputChars, s.OutputChars)
	return b.String()
}

// Render draws the summary with colored badges per type.
func (s Stats) Render() string {
	title := lipgloss.NewStyle().Foreground(Warning).Bold(true)
	if s.Total == 0 {
		title = lipgloss.NewStyle().Foreground(Success).Bold(true)
	}
	lines := []string{title.Render(s.Headline())}
	if len(s.Counts) > 0 {
		badges := make([]string, 0, len(s.Counts))
		for _, tc := range s.Counts {
			badge := lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(CategoryColor(tc.Type)).
				Padding(0, 1).
				Render(fmt.Sprintf("%s: %d", tc.Type, tc.Count))
			badges = append(badges, badge)
		}
		lines = append(lines, strings.Join(badges, " "))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(Muted).Render(
		fmt.Sprintf("Characters: %d in, %d out", s.InputChars, s.OutputChars)))
	return strings.Join(lines, "\n")
}
