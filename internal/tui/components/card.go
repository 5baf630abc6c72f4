// Package components provides reusable TUI widgets for the creditsim dashboard.
package components

import (
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline number on the summary row.
type Metric struct {
	Label string
	Value string
	Note  string         // optional third line
	Tone  lipgloss.Color // value color; empty uses the theme text color
}

// LayoutRow splits total into n widths summing to total. Leading widths take
// the remainder.
func LayoutRow(total, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = total / n
		if i < total%n {
			widths[i]++
		}
	}
	return widths
}

func boxStyle(outerWidth int, border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(10, outerWidth-2)).
		Padding(0, 1)
}

// MetricCard renders m in a bordered box outerWidth wide.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active
	tone := m.Tone
	if tone == "" {
		tone = t.Text
	}

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(tone).Bold(true).Render(m.Value)
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}
	return boxStyle(outerWidth, t.Border).Render(content)
}

// MetricRow lays metrics side by side across exactly totalWidth columns.
// Cards without a note get a blank line so the row has one height.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	hasNote := false
	for _, m := range metrics {
		hasNote = hasNote || m.Note != ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		if hasNote && m.Note == "" {
			m.Note = " "
		}
		cards[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Panel renders body in a bordered box with an optional title line.
func Panel(title, body string, outerWidth int) string {
	t := theme.Active
	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n" + body
	}
	return boxStyle(outerWidth, t.Border).Render(content)
}

// PanelInnerWidth is the text width inside a Panel of the given outer width.
func PanelInnerWidth(outerWidth int) int {
	return max(10, outerWidth-4)
}
