package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// inputValues mirrors the inputs form as text so half-typed numbers survive
// between keystrokes.
type inputValues struct {
	balance  string
	apr      string
	months   string
	charges  string
	bands    string
	advanced bool
}

func newInputValues(p model.Params, advanced bool) *inputValues {
	return &inputValues{
		balance:  formatInput(p.StartingBalance),
		apr:      formatInput(p.APR),
		months:   strconv.Itoa(p.Months),
		charges:  formatInput(p.MonthlyCharges),
		bands:    export.FormatBands(p.Bands),
		advanced: advanced,
	}
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validateBandText(s string) error {
	_, err := export.ParseBands(s)
	return err
}

func newInputsForm(v *inputValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Starting balance").
				Value(&v.balance).
				Validate(validateNumber),
			huh.NewInput().
				Title("APR").
				Description("Fractional, 0.24 = 24% per year").
				Value(&v.apr).
				Validate(validateNumber),
			huh.NewInput().
				Title("Months").
				Value(&v.months).
				Validate(validateMonths),
			huh.NewInput().
				Title("Monthly charges").
				Description("Used for every month without an override").
				Value(&v.charges).
				Validate(validateNumber),
			huh.NewConfirm().
				Title("Per-month charges").
				Description("Use the Charges tab grid").
				Affirmative("On").
				Negative("Off").
				Value(&v.advanced),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Bands").
				Description("One per line: lower:pct:min (pct is fractional)").
				Lines(8).
				Value(&v.bands).
				Validate(validateBandText),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func (a App) startInputs() (tea.Model, tea.Cmd) {
	a.inputVals = newInputValues(a.params, a.advanced)
	a.inputsForm = newInputsForm(a.inputVals).WithWidth(a.contentWidth())
	if a.height > 0 {
		a.inputsForm = a.inputsForm.WithHeight(a.contentHeight())
	}
	return a, a.inputsForm.Init()
}

func (a App) updateInputsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.inputsForm = nil
		a.inputVals = nil
		return a, nil
	}

	form, cmd := a.inputsForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.inputsForm = f
	}

	switch a.inputsForm.State {
	case huh.StateCompleted:
		a.applyInputs(a.inputVals)
		a.inputsForm = nil
		a.inputVals = nil
		return a, nil
	case huh.StateAborted:
		a.inputsForm = nil
		a.inputVals = nil
		return a, nil
	}
	return a, cmd
}

// applyInputs copies validated form text into the params and re-runs.
// Values that fail to parse leave the previous value in place.
func (a *App) applyInputs(v *inputValues) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.balance), 64); err == nil {
		a.params.StartingBalance = f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.apr), 64); err == nil {
		a.params.APR = f
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.months)); err == nil {
		a.params.Months = n
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.charges), 64); err == nil {
		a.params.MonthlyCharges = f
	}
	if bands, err := export.ParseBands(v.bands); err == nil {
		a.params.Bands = bands
	}
	a.advanced = v.advanced
	a.simulate()
}

func (a App) viewInputs() string {
	t := theme.Active
	h := a.height

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Background).
		Bold(true)
	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Background)

	title := titleStyle.Render(" ◈ Inputs") + dimStyle.Render("   enter to advance, esc to cancel")
	body := title + "\n\n" + a.inputsForm.View()
	body = fitHeight(body, h)
	return fillWidth(body, a.width, t.Background)
}
