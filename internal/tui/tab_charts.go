package tui

import (
	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/pipeline"
	"github.com/theirongolddev/creditsim/internal/tui/components"
	"github.com/theirongolddev/creditsim/internal/tui/theme"
)

func (a App) renderChartsTab(cw int) string {
	if !a.ran {
		return a.renderNoResult(cw)
	}
	t := theme.Active
	rows := a.result.Rows
	labels := pipeline.MonthLabels(rows)
	s := a.result.Summary

	// two stacked charts share what is left after the summary cards and
	// the interest and paydown panels
	chartH := max(4, (a.contentHeight()-5-8)/2-3)
	innerW := components.PanelInnerWidth(cw)

	mark := a.result.PayoffMonth - 1
	balance := components.ColumnChart(components.Series{
		Values: pipeline.BalanceSeries(rows),
		Labels: labels,
		Color:  t.BalanceColor(a.params.StartingBalance, s.FinalBalance),
		Format: cli.FormatMoneyShort,
		Mark:   mark,
	}, innerW, chartH)
	payment := components.ColumnChart(components.Series{
		Values: pipeline.PaymentSeries(rows),
		Labels: labels,
		Color:  t.Payment,
		Format: cli.FormatMoneyShort,
		Mark:   mark,
	}, innerW, chartH)

	spark := components.Sparkline(pipeline.InterestSeries(rows), t.Interest)
	paydown := components.PaydownBar(a.params.StartingBalance, s.FinalBalance, max(10, innerW-6))

	return a.summaryCards(cw) + "\n" +
		components.Panel("End Balance", balance, cw) + "\n" +
		components.Panel("Payment", payment, cw) + "\n" +
		components.Panel("Interest  "+cli.FormatMoney(s.TotalInterest), spark, cw) + "\n" +
		components.Panel("Paid down", paydown, cw)
}
