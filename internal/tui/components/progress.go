package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// PaydownBar shows how much of the starting balance a run retired:
// start-final over start, clamped to 0..1. A run that grew the balance
// renders empty.
func PaydownBar(start, final float64, width int) string {
	pct := 0.0
	if start > 0 {
		pct = (start - final) / start
	}
	return ProgressBar(pct, width)
}

// ProgressBar renders a bar and its percentage. pct is clamped to 0..1 and
// the bar turns the Paid color when full.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = max(0, min(1, pct))
	filled := min(width, int(pct*float64(width)))

	barColor := t.Accent
	if pct >= 1 {
		barColor = t.Paid
	}

	bg := lipgloss.NewStyle().Background(t.Surface)
	bar := bg.Foreground(barColor)
	empty := bg.Foreground(t.TextDim)

	return bar.Render(strings.Repeat("█", filled)) +
		empty.Render(strings.Repeat("░", width-filled)) +
		bg.Render(" ") +
		bar.Bold(true).Render(fmt.Sprintf("%.0f%%", pct*100))
}
