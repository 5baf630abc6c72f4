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

// metric row (5) + card border and title (3) + column header (1)
const scheduleChrome = 9

var scheduleColumns = []struct {
	name  string
	width int
}{
	{"Month", 6},
	{"Start", 13},
	{"Interest", 11},
	{"Charges", 11},
	{"Payment", 12},
	{"End", 13},
	{"Pct", 7},
	{"Min", 9},
}

func (a *App) resizeSchedule() {
	a.schedule.Width = components.PanelInnerWidth(a.contentWidth())
	h := a.contentHeight() - scheduleChrome
	if h < 1 {
		h = 1
	}
	a.schedule.Height = h
}

// refreshSchedule re-renders the ledger into the viewport.
func (a *App) refreshSchedule() {
	lines := make([]string, len(a.result.Rows))
	for i, r := range a.result.Rows {
		lines[i] = scheduleLine(r, a.result.PayoffMonth)
	}
	a.schedule.SetContent(strings.Join(lines, "\n"))
	a.schedule.GotoTop()
}

func scheduleHeader() string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	var b strings.Builder
	for i, c := range scheduleColumns {
		if i == 0 {
			fmt.Fprintf(&b, "%-*s", c.width, c.name)
			continue
		}
		fmt.Fprintf(&b, "%*s", c.width, c.name)
	}
	return style.Render(b.String())
}

func scheduleLine(r model.Row, payoffMonth int) string {
	t := theme.Active
	text := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	end := text
	if r.Month == payoffMonth {
		end = lipgloss.NewStyle().Foreground(t.Paid).Bold(true)
	}

	cell := func(i int, s string) string {
		return fmt.Sprintf("%*s", scheduleColumns[i].width, s)
	}

	return muted.Render(fmt.Sprintf("%-*d", scheduleColumns[0].width, r.Month)) +
		text.Render(cell(1, cli.FormatMoney(r.StartBalance))) +
		text.Render(cell(2, cli.FormatMoney(r.Interest))) +
		text.Render(cell(3, cli.FormatMoney(r.Charges))) +
		text.Render(cell(4, cli.FormatMoney(r.Payment))) +
		end.Render(cell(5, cli.FormatMoney(r.EndBalance))) +
		muted.Render(cell(6, cli.FormatPercent(r.Pct))) +
		muted.Render(cell(7, cli.FormatMoney(r.MinPayment)))
}

func (a App) summaryCards(cw int) string {
	s := a.result.Summary

	payoff := "not within run"
	if a.result.PayoffMonth > 0 {
		payoff = fmt.Sprintf("month %d", a.result.PayoffMonth)
	}

	t := theme.Active
	return components.MetricRow([]components.Metric{
		{Label: "Final Balance", Value: cli.FormatMoney(s.FinalBalance),
			Note: cli.FormatDelta(s.FinalBalance, a.params.StartingBalance) + " vs start",
			Tone: t.BalanceColor(a.params.StartingBalance, s.FinalBalance)},
		{Label: "Total Paid", Value: cli.FormatMoney(s.TotalPaid), Note: "paid off " + payoff, Tone: t.Payment},
		{Label: "Total Interest", Value: cli.FormatMoney(s.TotalInterest), Note: cli.FormatPercent(a.params.APR) + " APR", Tone: t.Interest},
		{Label: "Total Charges", Value: cli.FormatMoney(s.TotalCharges), Note: cli.FormatMonths(len(a.result.Rows))},
	}, cw)
}

func (a App) renderScheduleTab(cw int) string {
	if !a.ran {
		return a.renderNoResult(cw)
	}

	body := scheduleHeader() + "\n" + a.schedule.View()
	title := fmt.Sprintf("Schedule  %d%%", int(a.schedule.ScrollPercent()*100))
	if pipeline.PaidOff(a.result.Summary) {
		title += "  paid off"
	}

	return a.summaryCards(cw) + "\n" + components.Panel(title, body, cw)
}

func (a App) renderNoResult(cw int) string {
	t := theme.Active
	msg := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("No simulation yet. Press [i] to enter inputs or [r] for the example.")
	return components.Panel("Schedule", msg, cw)
}
