package components

import (
	"strings"

	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one dashboard tab. KeyPos is the index of Key inside Name, or -1
// when the key is not a letter of the name.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int
}

// Tabs in display order.
var Tabs = []Tab{
	{Name: "Schedule", Key: 's', KeyPos: 0},
	{Name: "Charts", Key: 'c', KeyPos: 0},
	{Name: "Bands", Key: 'b', KeyPos: 0},
	{Name: "Charges", Key: 'h', KeyPos: 1},
}

// renderTab draws the active tab as a padded highlight and the others with
// their shortcut bracketed, so every label is len(Name)+2 wide.
func renderTab(tab Tab, active bool) string {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().
			Foreground(t.Accent).Background(t.Highlight).Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	plain := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	bracket := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyed := func(k string) string {
		return bracket.Render("[") + key.Render(k) + bracket.Render("]")
	}

	if tab.KeyPos < 0 || tab.KeyPos >= len(tab.Name) {
		return plain.Render(tab.Name) + keyed(string(tab.Key))
	}
	return plain.Render(tab.Name[:tab.KeyPos]) +
		keyed(tab.Name[tab.KeyPos:tab.KeyPos+1]) +
		plain.Render(tab.Name[tab.KeyPos+1:])
}

// TabVisualWidth is the rendered width of tab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar draws all tabs, one space apart, across width columns.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active
	labels := make([]string, len(Tabs))
	for i, tab := range Tabs {
		labels[i] = renderTab(tab, i == activeIdx)
	}
	gap := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(strings.Join(labels, gap))
}

// TabIdxByKey maps a shortcut rune to its tab index, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
