package cmd

import (
	"fmt"

	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/tui"
	"github.com/theirongolddev/creditsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagExportDir string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	addInputFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&flagExportDir, "export-dir", ".", "Directory for exported JSON and CSV files")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(c *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	doc, err := buildDocument(c, cfg)
	if err != nil {
		return err
	}

	// the dashboard owns the terminal, so only errors reach the log
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	p := doc.Params()
	p.Bands = doc.Bands
	app := tui.NewApp(tui.Options{
		Params:    p,
		Advanced:  doc.AdvancedMode,
		Storage:   doc.MonthlyChargesStorage,
		Presets:   cfg.Presets,
		ExportDir: flagExportDir,
		NeedSetup: !config.Exists(),
		Logger:    logger,
	})
	prog := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
