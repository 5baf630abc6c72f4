package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/pipeline"
	"github.com/theirongolddev/creditsim/internal/tui/components"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// bandSamples is the number of balances sampled for the policy chart.
const bandSamples = 40

// bandCurve returns PctCurve in percent with money labels for each sample.
func bandCurve(bands []model.Band, peak float64, n int) ([]float64, []string) {
	pcts := pipeline.PctCurve(bands, peak, n)
	if pcts == nil {
		return nil, nil
	}
	if peak <= 0 {
		peak = bands[len(bands)-1].Lower
	}

	values := make([]float64, n)
	labels := make([]string, n)
	for i, p := range pcts {
		values[i] = p * 100
		labels[i] = cli.FormatMoneyShort(pipeline.CurveBalance(peak, i, n))
	}
	return values, labels
}

func (a App) renderBandsTab(cw int) string {
	t := theme.Active
	bands := pipeline.ValidateBands(a.params.Bands)

	text := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	head := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dropped := lipgloss.NewStyle().Foreground(t.Owed)

	var b strings.Builder
	b.WriteString(head.Render(fmt.Sprintf("%-4s %14s %9s %12s", "#", "From balance", "Pct", "Min payment")))
	b.WriteString("\n")
	if len(bands) == 0 {
		b.WriteString(dropped.Render("No bands. Press [i] to add at least one."))
	}
	for i, band := range bands {
		b.WriteString(muted.Render(fmt.Sprintf("%-4d ", i+1)))
		b.WriteString(text.Render(fmt.Sprintf("%14s %9s %12s",
			cli.FormatMoney(band.Lower), cli.FormatPercent(band.Pct), cli.FormatMoney(band.MinPayment))))
		if i < len(bands)-1 {
			b.WriteString("\n")
		}
	}
	if n := len(a.params.Bands) - len(bands); n > 0 {
		b.WriteString("\n")
		b.WriteString(dropped.Render(fmt.Sprintf("%d band(s) ignored: non-numeric fields", n)))
	}
	table := components.Panel("Bands (sorted by lower bound)", b.String(), cw)

	if len(bands) == 0 {
		return table
	}

	peak := a.params.StartingBalance
	if a.ran {
		peak = pipeline.MaxBalance(a.params.StartingBalance, a.result.Rows)
	}
	values, labels := bandCurve(bands, peak, bandSamples)

	chartH := a.contentHeight() - lipgloss.Height(table) - 4
	if chartH < 4 {
		chartH = 4
	}
	chart := components.ColumnChart(components.Series{
		Values: values,
		Labels: labels,
		Color:  t.Accent,
		Format: func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		Mark:   -1,
	}, components.PanelInnerWidth(cw), chartH)

	return table + "\n" + components.Panel("Payment % by balance", chart, cw)
}
