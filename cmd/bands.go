package cmd

import (
	"fmt"
	"math"

	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagBandsList bool

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Show the payment band table and its percentage step chart",
	RunE:  runBands,
}

func init() {
	addInputFlags(bandsCmd)
	bandsCmd.Flags().BoolVar(&flagBandsList, "list", false, "List the available band presets")
	rootCmd.AddCommand(bandsCmd)
}

func runBands(c *cobra.Command, _ []string) error {
	cfg := loadConfig()

	if flagBandsList {
		fmt.Print(cli.RenderTable(presetTable(cfg)))
		return nil
	}

	doc, err := buildDocument(c, cfg)
	if err != nil {
		return err
	}
	bands := pipeline.ValidateBands(doc.Bands)
	if len(bands) == 0 {
		fmt.Println("  " + cli.RenderError(pipeline.ErrNoBands.Error()))
		return errReported
	}

	fmt.Println()
	fmt.Println(cli.RenderBanner(fmt.Sprintf("PAYMENT BANDS  %d band(s)", len(bands))))
	fmt.Println()
	fmt.Print(cli.RenderTable(bandTable(bands)))
	if dropped := len(doc.Bands) - len(bands); dropped > 0 {
		fmt.Printf("  %d band(s) ignored: non-numeric fields\n", dropped)
	}

	peak := math.Max(doc.StartingBalance, bands[len(bands)-1].Lower*1.25)
	const samples = 48
	curve := pipeline.PctCurve(bands, peak, samples)

	fmt.Println()
	fmt.Printf("  Payment %% by balance, $0 to %s\n", cli.FormatMoney(peak))
	fmt.Print(cli.RenderStepChart(curve, 8))
	return nil
}

func bandTable(bands []model.Band) cli.Table {
	rows := make([][]string, len(bands))
	for i, b := range bands {
		upper := "and above"
		if i < len(bands)-1 {
			upper = "below " + cli.FormatMoney(bands[i+1].Lower)
		}
		rows[i] = []string{
			cli.FormatMoney(b.Lower),
			upper,
			cli.FormatPercent(b.Pct),
			cli.FormatMoney(b.MinPayment),
		}
	}
	return cli.Table{
		Headers: []string{"From", "Up to", "Pct", "Min Payment"},
		Rows:    rows,
	}
}

func presetTable(cfg config.Config) cli.Table {
	names := config.PresetNames(cfg.Presets)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		bands, _ := config.LookupPreset(name, cfg.Presets)
		source := "built-in"
		if _, ok := cfg.Presets[name]; ok {
			source = "config"
		}
		marker := ""
		if name == config.NormalizePresetName(cfg.Defaults.Preset) {
			marker = " *"
		}
		rows = append(rows, []string{name + marker, fmt.Sprintf("%d", len(bands)), source})
	}
	return cli.Table{
		Title:   "Band presets (* = default)",
		Headers: []string{"Preset", "Bands", "Source"},
		Rows:    rows,
	}
}
