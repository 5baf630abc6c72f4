package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/creditsim/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow_SumsToTotal(t *testing.T) {
	widths := LayoutRow(101, 4)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 101 {
		t.Fatalf("sum = %d, want 101", sum)
	}
	if widths[0] != 26 || widths[3] != 25 {
		t.Fatalf("widths = %v, want first to absorb remainder", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow(10, 0) should be nil")
	}
}

func TestMetricRow_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")
	row := MetricRow([]Metric{
		{Label: "Final balance", Value: "$0.00", Note: "paid off in month 12", Tone: theme.Active.Paid},
		{Label: "Total paid", Value: "$1,234.56"},
	}, 60)

	if w := lipgloss.Width(row); w != 60 {
		t.Fatalf("row width = %d, want 60", w)
	}
	if !strings.Contains(row, "Total paid") {
		t.Fatal("card label missing")
	}
}

func TestMetricRow_EvenHeight(t *testing.T) {
	theme.SetActive("flexoki-dark")
	with := MetricCard(Metric{Label: "a", Value: "1", Note: "n"}, 20)
	row := MetricRow([]Metric{
		{Label: "a", Value: "1", Note: "n"},
		{Label: "b", Value: "2"},
	}, 40)

	if got, want := lipgloss.Height(row), lipgloss.Height(with); got != want {
		t.Fatalf("row height = %d, want %d", got, want)
	}
}

func TestPanel(t *testing.T) {
	theme.SetActive("flexoki-dark")
	p := Panel("Schedule", "body", 30)
	if w := lipgloss.Width(p); w != 30 {
		t.Fatalf("panel width = %d, want 30", w)
	}
	if !strings.Contains(p, "Schedule") || !strings.Contains(p, "body") {
		t.Fatal("panel title or body missing")
	}
	if lipgloss.Height(Panel("", "body", 30)) != 3 {
		t.Fatal("untitled panel should be border + one line")
	}
	if got := PanelInnerWidth(30); got != 26 {
		t.Fatalf("PanelInnerWidth(30) = %d, want 26", got)
	}
	if got := PanelInnerWidth(5); got != 10 {
		t.Fatalf("PanelInnerWidth(5) = %d, want 10", got)
	}
}
