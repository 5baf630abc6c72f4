package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal output uses the flexoki-dark palette regardless of the TUI theme.
var (
	colorRule   = lipgloss.Color("#575653")
	colorBorder = lipgloss.Color("#282726")
	colorLabel  = lipgloss.Color("#6F6E69")
	colorText   = lipgloss.Color("#FFFCF0")
	colorHead   = lipgloss.Color("#3AA99F")
	colorPaid   = lipgloss.Color("#879A39")
	colorOpen   = lipgloss.Color("#DA702C")
	colorFail   = lipgloss.Color("#D14D41")
)

var (
	ruleStyle  = lipgloss.NewStyle().Foreground(colorRule)
	headStyle  = lipgloss.NewStyle().Foreground(colorHead).Bold(true)
	cellStyle  = lipgloss.NewStyle().Foreground(colorText)
	labelStyle = lipgloss.NewStyle().Foreground(colorLabel)
	paidStyle  = lipgloss.NewStyle().Foreground(colorPaid)
	openStyle  = lipgloss.NewStyle().Foreground(colorOpen)
	failStyle  = lipgloss.NewStyle().Foreground(colorFail)
)

// Table is a boxed CLI table. The first column is left-aligned, the rest
// right-aligned. Footer rows print below a rule, e.g. totals or a
// "+N more" line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  [][]string
	Widths  []int // fixed column widths; computed from content when nil
}

func (t Table) columns() int {
	n := len(t.Headers)
	for _, rows := range [][][]string{t.Rows, t.Footer} {
		for _, r := range rows {
			n = max(n, len(r))
		}
	}
	return n
}

func (t Table) widths(n int) []int {
	w := make([]int, n)
	if t.Widths != nil {
		copy(w, t.Widths)
		return w
	}
	grow := func(cells []string) {
		for i, c := range cells {
			w[i] = max(w[i], lipgloss.Width(c))
		}
	}
	grow(t.Headers)
	for _, r := range t.Rows {
		grow(r)
	}
	for _, r := range t.Footer {
		grow(r)
	}
	return w
}

// rule draws a horizontal border like ├───┼───┤.
func rule(widths []int, left, mid, right string) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return ruleStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
}

func line(cells []string, widths []int, style lipgloss.Style) string {
	bar := ruleStyle.Render("│")
	var b strings.Builder
	b.WriteString(bar)
	for i, w := range widths {
		c := ""
		if i < len(cells) {
			c = cells[i]
		}
		pad := strings.Repeat(" ", max(0, w-lipgloss.Width(c)))
		if i == 0 {
			c += pad
		} else {
			c = pad + c
		}
		b.WriteString(style.Render(" " + c + " "))
		b.WriteString(bar)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderTable renders t, or "" when it has neither headers nor rows.
func RenderTable(t Table) string {
	n := t.columns()
	if n == 0 {
		return ""
	}
	widths := t.widths(n)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, widths, headStyle))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}
	for _, r := range t.Rows {
		b.WriteString(line(r, widths, cellStyle))
	}
	if len(t.Footer) > 0 {
		b.WriteString(rule(widths, "├", "┼", "┤"))
		for _, r := range t.Footer {
			b.WriteString(line(r, widths, labelStyle))
		}
	}
	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderBanner renders a heading in a rounded box.
func RenderBanner(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Foreground(colorText).
		Bold(true).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(title)
}

var eighths = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline maps values onto eight block heights, largest value = █.
func RenderSparkline(values []float64) string {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}
	out := make([]rune, len(values))
	for i, v := range values {
		idx := int(v / peak * 7)
		out[i] = eighths[max(0, min(7, idx))]
	}
	return string(out)
}

// RenderPaydown shows the share of start retired by final as a bar and a
// percentage. A start of zero renders nothing.
func RenderPaydown(start, final float64, width int) string {
	if start <= 0 || width <= 0 {
		return ""
	}
	pct := max(0, min(1, (start-final)/start))
	n := int(pct * float64(width))
	style := openStyle
	if pct >= 1 {
		style = paidStyle
	}
	return style.Render(strings.Repeat("█", n)) +
		ruleStyle.Render(strings.Repeat("░", width-n)) +
		" " + FormatPercent(pct)
}

// RenderPaymentBars draws one horizontal bar per row, scaled to the largest
// value. labels and values are parallel.
func RenderPaymentBars(labels []string, values []float64, width int) string {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	var b strings.Builder
	for i, v := range values {
		n := 0
		if peak > 0 {
			n = max(0, min(width, int(math.Round(v/peak*float64(width)))))
		}
		fmt.Fprintf(&b, "  %s %s\n", labels[i], paidStyle.Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// RenderStepChart stacks values as columns height rows tall. Any positive
// value gets at least one cell.
func RenderStepChart(values []float64, height int) string {
	if len(values) == 0 || height <= 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		cells := make([]rune, len(values))
		for i, v := range values {
			cells[i] = ' '
			if v > 0 && math.Ceil(v/peak*float64(height)) >= float64(row) {
				cells[i] = '█'
			}
		}
		b.WriteString("  " + string(cells) + "\n")
	}
	b.WriteString("  " + ruleStyle.Render(strings.Repeat("─", len(values))) + "\n")
	return b.String()
}

// RenderStatusLine is the one-line outcome of a run, orange while a balance
// remains.
func RenderStatusLine(months int, finalBalance, totalPaid, totalInterest float64) string {
	msg := fmt.Sprintf("Simulated %d month(s). Final balance: %s | Total paid: %s | Total interest: %s",
		months, FormatMoney(finalBalance), FormatMoney(totalPaid), FormatMoney(totalInterest))
	if finalBalance > 0 {
		return openStyle.Render(msg)
	}
	return paidStyle.Render(msg)
}

// RenderError is the generic input error plus the specific reason.
func RenderError(detail string) string {
	msg := "Error running simulation (check inputs)."
	if detail != "" {
		msg += " " + detail
	}
	return failStyle.Render(msg)
}
