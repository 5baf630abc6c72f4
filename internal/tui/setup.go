package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// setupValues holds the first-run wizard answers. Held by pointer so huh
// can write into it across Bubble Tea's value-copied models.
type setupValues struct {
	theme  string
	preset string
	months string
	save   bool
}

func newSetupValues() *setupValues {
	cfg := config.DefaultConfig()
	return &setupValues{
		theme:  theme.Active.Name,
		preset: cfg.Defaults.Preset,
		months: strconv.Itoa(cfg.Defaults.Months),
		save:   true,
	}
}

// newSetupForm builds the first-run wizard.
func newSetupForm(vals *setupValues, presets map[string][]model.Band) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	names := config.PresetNames(presets)
	presetOpts := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		bands, _ := config.LookupPreset(n, presets)
		presetOpts = append(presetOpts, huh.NewOption(fmt.Sprintf("%s (%d bands)", n, len(bands)), n))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to creditsim!").
				Description("Pick a theme and the payment bands to start from.\nEverything can be changed later with `creditsim setup`."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewSelect[string]().
				Title("Default band preset").
				Options(presetOpts...).
				Value(&vals.preset),
			huh.NewInput().
				Title("Default simulation length (months)").
				Value(&vals.months).
				Validate(validateMonths),
			huh.NewConfirm().
				Title("Save to "+config.ConfigPath()+"?").
				Affirmative("Save").
				Negative("This session only").
				Value(&vals.save),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateMonths(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of months")
	}
	if n <= 0 {
		return fmt.Errorf("months must be > 0")
	}
	return nil
}

func (a App) startSetup() (tea.Model, tea.Cmd) {
	a.setupVals = newSetupValues()
	a.setupForm = newSetupForm(a.setupVals, a.presets).WithWidth(a.width).WithHeight(a.height)
	return a, a.setupForm.Init()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.applySetup()
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	}
	return a, cmd
}

// applySetup applies the wizard answers to the session and, when asked,
// writes them to the config file.
func (a *App) applySetup() {
	v := a.setupVals
	theme.SetActive(v.theme)

	if bands, ok := config.LookupPreset(v.preset, a.presets); ok {
		a.params.Bands = append([]model.Band(nil), bands...)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.months)); err == nil && n > 0 {
		a.params.Months = n
	}
	a.simulate()

	if !v.save {
		return
	}
	cfg, _ := config.Load()
	cfg.Appearance.Theme = v.theme
	cfg.Defaults.Preset = config.NormalizePresetName(v.preset)
	cfg.Defaults.Bands = nil
	cfg.Defaults.Months = a.params.Months
	if err := config.Save(cfg); err != nil {
		a.isError = true
		a.status = "Could not save config: " + err.Error()
		a.logger.Warn("saving setup config failed", zap.Error(err))
	}
}
