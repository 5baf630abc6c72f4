// Package cmd implements the creditsim CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagDB != "" {
		cfg.Store.Path = flagDB
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	d := cfg.Defaults
	fmt.Println("  [Defaults]")
	fmt.Printf("    Starting balance: %s\n", cli.FormatMoney(d.StartingBalance))
	fmt.Printf("    APR:              %s\n", cli.FormatPercent(d.APR))
	fmt.Printf("    Months:           %d\n", d.Months)
	fmt.Printf("    Monthly charges:  %s\n", cli.FormatMoney(d.MonthlyCharges))
	if len(d.Bands) > 0 {
		fmt.Printf("    Bands:            %d explicit band(s)\n", len(d.Bands))
	} else {
		bands, ok := config.LookupPreset(d.Preset, cfg.Presets)
		if ok {
			fmt.Printf("    Bands:            preset %q (%d band(s))\n", d.Preset, len(bands))
		} else {
			fmt.Printf("    Bands:            unknown preset %q\n", d.Preset)
		}
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Path: %s\n", cfg.Store.Path)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:   %s\n", cfg.Server.Addr)
	fmt.Printf("    Log level: %s\n", cfg.Server.LogLevel)
	if len(cfg.Server.AllowedOrigins) > 0 {
		fmt.Printf("    Origins:   %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))
	}
	fmt.Println()

	if len(cfg.Presets) > 0 {
		fmt.Printf("  [Presets] %d user preset(s)\n\n", len(cfg.Presets))
	}

	fmt.Println("  Run `creditsim setup` to reconfigure.")
	return nil
}
