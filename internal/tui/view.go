package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/tui/components"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

type binding struct{ keys, action string }

var helpSections = []struct {
	title    string
	bindings []binding
}{
	{"Navigation", []binding{
		{"s c b h", "Jump to tab"},
		{"← →  tab", "Previous / next tab"},
		{"j k", "Scroll schedule, move in grid"},
		{"g G", "Grid top / bottom"},
	}},
	{"Inputs", []binding{
		{"i", "Edit balance, APR, months, charges, bands"},
		{"a", "Toggle per-month charges"},
		{"enter", "Edit selected month (Charges)"},
		{"f", "Fill every month (Charges)"},
		{"x", "Clear per-month overrides"},
		{"r", "Reset to the example"},
	}},
	{"Files", []binding{
		{"e", "Export " + ConfigFileName},
		{"w", "Write " + CSVFileName},
	}},
	{"", []binding{
		{"?", "Toggle help"},
		{"q", "Quit"},
	}},
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  creditsim needs at least %d columns.\n",
		a.width, minTerminalWidth)
	return fitHeight(msg, max(5, a.height))
}

func (a App) viewHelp() string {
	t := theme.Active
	on := lipgloss.NewStyle().Background(t.Surface)
	title := on.Foreground(t.AccentBright).Bold(true)
	section := on.Foreground(t.Accent).Bold(true)
	key := on.Foreground(t.Key).Bold(true)
	action := on.Foreground(t.TextMuted)

	keyW := 0
	for _, sec := range helpSections {
		for _, bd := range sec.bindings {
			keyW = max(keyW, lipgloss.Width(bd.keys))
		}
	}

	lines := []string{title.Render("Keys"), ""}
	for i, sec := range helpSections {
		if i > 0 {
			lines = append(lines, "")
		}
		if sec.title != "" {
			lines = append(lines, section.Render(sec.title))
		}
		for _, bd := range sec.bindings {
			pad := strings.Repeat(" ", keyW-lipgloss.Width(bd.keys))
			lines = append(lines, on.Render("  ")+key.Render(bd.keys+pad)+on.Render("  ")+action.Render(bd.action))
		}
	}
	lines = append(lines, "", on.Foreground(t.TextDim).Render("any key closes"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Focus).
		Background(t.Surface).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// inputPill summarizes the current inputs under the tab bar.
func (a App) inputPill() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	val := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	mode := "flat charges"
	if a.advanced {
		mode = "per-month charges"
	}
	parts := []string{
		cli.FormatMoney(a.params.StartingBalance),
		cli.FormatPercent(a.params.APR) + " APR",
		cli.FormatMonths(a.params.Months),
		mode,
		fmt.Sprintf("%d band(s)", len(a.params.Bands)),
	}
	for i, p := range parts {
		parts[i] = val.Render(p)
	}
	pill := dim.Render(" ") + strings.Join(parts, dim.Render(" │ "))
	return lipgloss.NewStyle().Background(t.Surface).Width(a.width).Render(pill)
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()
	fill := lipgloss.WithWhitespaceBackground(t.Background)

	header := components.RenderTabBar(a.activeTab, a.width) + "\n" + a.inputPill()
	statusBar := components.RenderStatusBar(a.width, a.status, a.isError)
	contentH := max(minContentHeight, a.height-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	switch a.activeTab {
	case tabSchedule:
		content = a.renderScheduleTab(cw)
	case tabCharts:
		content = a.renderChartsTab(cw)
	case tabBands:
		content = a.renderBandsTab(cw)
	case tabCharges:
		content = a.renderChargesTab(cw, contentH)
	}
	content = fillWidth(fitHeight(content, contentH), cw, t.Background)
	content = lipgloss.Place(a.width, contentH, lipgloss.Center, lipgloss.Top, content, fill)

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar), fill)
}

// tabAtX maps a click column on the tab bar to a tab index, or -1. Tabs are
// laid out as RenderTabBar draws them: one separator column between each.
func (a App) tabAtX(x int) int {
	left := 0
	for i, tab := range components.Tabs {
		right := left + components.TabVisualWidth(tab, i == a.activeTab)
		if x >= left && x < right {
			return i
		}
		left = right + 1
	}
	return -1
}

// fitHeight cuts or pads s to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		return strings.Join(lines[:h], "\n")
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillWidth extends every line of s to w columns on bg.
func fillWidth(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, l, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
