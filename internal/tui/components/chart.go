package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// partial column tops, index 0 unused
var colBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as one line of block characters, scaled so the
// largest value is a full block. Negative values draw as the lowest block.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	top := len(sparkBlocks) - 1
	for _, v := range values {
		idx := int(v / peak * float64(top))
		buf.WriteRune(sparkBlocks[max(0, min(top, idx))])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// Series is the data for one ColumnChart.
type Series struct {
	Values []float64
	Labels []string             // x-axis labels, one per value; optional
	Color  lipgloss.Color       // column color
	Format func(float64) string // y-axis labels; nil uses a short number format
	Mark   int                  // index drawn in the Paid color, -1 for none
}

// ColumnChart draws s as vertical columns in a width x height box: the plot,
// an axis line and a label row. Boxes too small for that get a Sparkline.
// When there are more values than columns, values are bucketed and each
// bucket shows its largest value.
func ColumnChart(s Series, width, height int) string {
	if len(s.Values) == 0 {
		return ""
	}
	if width < 15 || height < 4 {
		return Sparkline(s.Values, s.Color)
	}
	t := theme.Active
	format := s.Format
	if format == nil {
		format = formatChartLabel
	}

	plotH := height - 2
	peak := 0.0
	for _, v := range s.Values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	labelW := max(len(format(peak)), len(format(0))) + 1
	plotW := max(1, width-labelW-1)

	values, labels, mark := bucket(s, plotW)
	n := len(values)

	step := max(1, min(5, plotW/n))
	colW := step
	if step >= 3 {
		colW = step - 1
	}
	axisLen := n * step

	bg := lipgloss.NewStyle().Background(t.Surface)
	axis := bg.Foreground(t.TextDim)
	col := bg.Foreground(s.Color)
	marked := bg.Foreground(t.Paid)

	var b strings.Builder
	for row := plotH; row >= 1; row-- {
		label := ""
		switch row {
		case plotH:
			label = format(peak)
		case (plotH + 1) / 2:
			if plotH >= 4 {
				label = format(peak * float64(row) / float64(plotH))
			}
		}
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", labelW, label)))

		for i, v := range values {
			level := math.Max(0, v) / peak * float64(plotH)
			cell := " "
			switch {
			case level >= float64(row):
				cell = "█"
			case level > float64(row-1):
				idx := int((level - float64(row-1)) * 8)
				cell = string(colBlocks[max(1, min(8, idx))])
			}
			style := col
			if i == mark {
				style = marked
			}
			b.WriteString(style.Render(strings.Repeat(cell, colW)))
			if step > colW {
				b.WriteString(bg.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render(fmt.Sprintf("%*s└", labelW, format(0)) + strings.Repeat("─", axisLen)))
	b.WriteString("\n")
	b.WriteString(bg.Render(strings.Repeat(" ", labelW+1)))
	b.WriteString(axis.Render(xLabels(labels, axisLen)))
	return b.String()
}

// bucket folds values into at most cols buckets. Labels and the mark follow
// the first value of their bucket.
func bucket(s Series, cols int) ([]float64, []string, int) {
	n := len(s.Values)
	if n <= cols {
		return s.Values, s.Labels, s.Mark
	}

	values := make([]float64, cols)
	var labels []string
	if len(s.Labels) == n {
		labels = make([]string, cols)
	}
	mark := -1
	for c := 0; c < cols; c++ {
		lo, hi := c*n/cols, (c+1)*n/cols
		values[c] = s.Values[lo]
		for _, v := range s.Values[lo:hi] {
			values[c] = math.Max(values[c], v)
		}
		if labels != nil {
			labels[c] = s.Labels[lo]
		}
		if s.Mark >= lo && s.Mark < hi {
			mark = c
		}
	}
	return values, labels, mark
}

// xLabels places the first, middle and last labels along an axis of width w.
func xLabels(labels []string, w int) string {
	if len(labels) == 0 || w <= 0 {
		return ""
	}
	buf := []rune(strings.Repeat(" ", w))
	place := func(lbl string, pos int) {
		r := []rune(lbl)
		pos = max(0, min(w-len(r), pos))
		for i, c := range r {
			if pos+i < w {
				buf[pos+i] = c
			}
		}
	}

	first, last := labels[0], labels[len(labels)-1]
	place(first, 0)
	if len(labels) > 1 && len(first)+len(last)+2 <= w {
		place(last, w-len(last))
	}
	if len(labels) > 2 {
		mid := labels[len(labels)/2]
		pos := w/2 - len(mid)/2
		if pos > len(first)+1 && pos+len(mid)+1 < w-len(last) {
			place(mid, pos)
		}
	}
	return strings.TrimRight(string(buf), " ")
}

// formatChartLabel shortens axis values: 2500 -> "2.5k", 3000000 -> "3M".
func formatChartLabel(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v >= 1e6:
		return trimZero(v/1e6, 1) + "M"
	case v >= 1e3:
		return trimZero(v/1e3, 1) + "k"
	case v >= 1:
		return trimZero(v, 1)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// trimZero formats v with up to prec decimals, dropping a zero fraction.
func trimZero(v float64, prec int) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.*f", prec, v)
}
