package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/tui/components"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// gridState is the per-month charges editor. cursor is a 0-based month index.
type gridState struct {
	cursor  int
	offset  int
	editing bool
	filling bool
	input   textinput.Model
}

func newGridState() gridState {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 20
	ti.Width = 16
	return gridState{input: ti}
}

// clamp keeps the cursor inside 0..months-1.
func (g *gridState) clamp(months int) {
	if g.cursor >= months {
		g.cursor = months - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	if g.offset > g.cursor {
		g.offset = g.cursor
	}
}

// scrollTo moves offset so the cursor stays within a window of h rows.
func (g *gridState) scrollTo(h int) {
	if h < 1 {
		h = 1
	}
	if g.cursor < g.offset {
		g.offset = g.cursor
	}
	if g.cursor >= g.offset+h {
		g.offset = g.cursor - h + 1
	}
}

func (a App) chargesRows() int {
	// card chrome (3) + column header (1) + hint line (1)
	return a.contentHeight() - 5
}

func (a App) updateGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	months := a.params.Months
	switch msg.String() {
	case "j", "down":
		a.grid.cursor++
	case "k", "up":
		a.grid.cursor--
	case "pgdown", "ctrl+d":
		a.grid.cursor += a.chargesRows()
	case "pgup", "ctrl+u":
		a.grid.cursor -= a.chargesRows()
	case "g", "home":
		a.grid.cursor = 0
	case "G", "end":
		a.grid.cursor = months - 1
	case "enter":
		a.grid.editing = true
		a.grid.filling = false
		v, ok := a.storage.Get(a.grid.cursor + 1)
		if !ok {
			v = a.params.MonthlyCharges
		}
		a.grid.input.SetValue(formatInput(v))
		a.grid.input.CursorEnd()
		return a, a.grid.input.Focus()
	case "f":
		a.grid.editing = true
		a.grid.filling = true
		a.grid.input.SetValue("")
		return a, a.grid.input.Focus()
	case "x":
		a.storage.Clear()
		a.simulate()
		return a, nil
	}
	a.grid.clamp(months)
	a.grid.scrollTo(a.chargesRows())
	return a, nil
}

func (a App) updateGridInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.grid.editing = false
		a.grid.input.Blur()
		return a, nil
	case "enter":
		raw := strings.TrimSpace(a.grid.input.Value())
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			a.isError = true
			a.status = fmt.Sprintf("Charges %q is not a number", raw)
			return a, nil
		}
		if a.grid.filling {
			a.storage.Fill(a.params.Months, v)
		} else {
			a.storage.Set(a.grid.cursor+1, v)
		}
		a.grid.editing = false
		a.grid.filling = false
		a.grid.input.Blur()
		// editing the grid only makes sense with per-month charges on
		a.advanced = true
		a.simulate()
		return a, nil
	}

	var cmd tea.Cmd
	a.grid.input, cmd = a.grid.input.Update(msg)
	return a, cmd
}

func (a App) renderChargesTab(cw, contentH int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	text := lipgloss.NewStyle().Foreground(t.Text)
	over := lipgloss.NewStyle().Foreground(t.Override).Bold(true)
	sel := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Highlight).Bold(true)
	head := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	visible := contentH - 5
	if visible < 1 {
		visible = 1
	}

	var b strings.Builder
	b.WriteString(head.Render(fmt.Sprintf("%-7s %14s %14s", "Month", "Charges", "Source")))
	b.WriteString("\n")

	end := a.grid.offset + visible
	if end > a.params.Months {
		end = a.params.Months
	}
	for i := a.grid.offset; i < end; i++ {
		v, ok := a.storage.Get(i + 1)
		source := "flat"
		style := text
		if ok {
			source = "override"
			style = over
		} else {
			v = a.params.MonthlyCharges
		}

		cell := fmt.Sprintf("%14s", cli.FormatMoney(v))
		if a.grid.editing && !a.grid.filling && i == a.grid.cursor {
			cell = a.grid.input.View()
		}
		line := fmt.Sprintf("%-7d ", i+1) + style.Render(cell) + muted.Render(fmt.Sprintf(" %14s", source))
		if i == a.grid.cursor {
			line = sel.Render("▸") + line
		} else {
			line = " " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch {
	case a.grid.editing && a.grid.filling:
		b.WriteString(text.Render("Fill all months: ") + a.grid.input.View())
	case a.grid.editing:
		b.WriteString(muted.Render("enter to save, esc to cancel"))
	default:
		b.WriteString(muted.Render("j/k move  enter edit  f fill all  x clear overrides  a toggle per-month"))
	}

	mode := "off, flat " + cli.FormatMoney(a.params.MonthlyCharges) + " used"
	if a.advanced {
		mode = fmt.Sprintf("on, %d override(s)", a.storage.Len())
	}
	return components.Panel("Per-month charges ("+mode+")", b.String(), cw)
}
