package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()
	d := cfg.Defaults

	themeName := cfg.Appearance.Theme
	preset := config.NormalizePresetName(d.Preset)
	balance := strconv.FormatFloat(d.StartingBalance, 'f', -1, 64)
	apr := strconv.FormatFloat(d.APR, 'f', -1, 64)
	months := strconv.Itoa(d.Months)
	monthly := strconv.FormatFloat(d.MonthlyCharges, 'f', -1, 64)
	addr := cfg.Server.Addr

	themeOpts := huh.NewOptions(theme.Names()...)
	presetOpts := make([]huh.Option[string], 0)
	for _, name := range config.PresetNames(cfg.Presets) {
		presetOpts = append(presetOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to creditsim!").
				Description("These defaults seed `creditsim simulate` and the dashboard.\nSaved to "+config.ConfigPath()),
			huh.NewInput().Title("Starting balance").Value(&balance).Validate(numberField),
			huh.NewInput().Title("APR (fraction, 0.24 = 24%)").Value(&apr).Validate(numberField),
			huh.NewInput().Title("Months").Value(&months).Validate(monthsField),
			huh.NewInput().Title("Monthly charges").Value(&monthly).Validate(numberField),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Band preset").Options(presetOpts...).Value(&preset),
			huh.NewSelect[string]().Title("Color theme").Options(themeOpts...).Value(&themeName),
			huh.NewInput().Title("API listen address").Value(&addr),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.Defaults.StartingBalance, _ = strconv.ParseFloat(strings.TrimSpace(balance), 64)
	cfg.Defaults.APR, _ = strconv.ParseFloat(strings.TrimSpace(apr), 64)
	cfg.Defaults.Months, _ = strconv.Atoi(strings.TrimSpace(months))
	cfg.Defaults.MonthlyCharges, _ = strconv.ParseFloat(strings.TrimSpace(monthly), 64)
	cfg.Defaults.Preset = preset
	cfg.Defaults.Bands = nil
	cfg.Appearance.Theme = themeName
	if addr = strings.TrimSpace(addr); addr != "" {
		cfg.Server.Addr = addr
	}

	if err := config.Save(cfg); err != nil {
		fmt.Printf("\n  Error saving config: %v\n", err)
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `creditsim setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func numberField(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func monthsField(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a whole number of months > 0")
	}
	return nil
}
