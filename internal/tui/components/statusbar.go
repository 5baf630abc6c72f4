package components

import (
	"strings"

	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the last run's status message on the right.
func RenderStatusBar(width int, status string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	msgColor := t.Paid
	if isErr {
		msgColor = t.Owed
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface)

	left := " [i]nputs  [e]xport  [w]rite csv  [r]eset  [?]help  [q]uit"
	right := ""
	if status != "" {
		right = msgStyle.Render(status + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// not enough room for both; the status wins
		return style.Render(" " + right)
	}

	fill := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", padding))
	return style.Render(left + fill + right)
}
