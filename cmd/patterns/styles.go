// cmd/patterns/styles.go
package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	blurbStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// transcriptPanel frames a finished demo's transcript.
func transcriptPanel(name string, lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	body := titleStyle.Render(name) + "\n\n" +
		strings.Join(lines, "\n") + "\n\n" +
		helpStyle.Render("esc back · s save · q quit")
	return border.Render(body)
}
