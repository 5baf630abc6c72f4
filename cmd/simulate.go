package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/creditsim/internal/charges"
	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Input flags, shared by simulate and scenario save.
var (
	flagBalance         float64
	flagAPR             float64
	flagMonths          int
	flagCharges         float64
	flagChargesPerMonth string
	flagBands           []string
	flagFrom            string
	flagExample         bool
	flagPreset          string
)

// Output flags.
var (
	flagCSV    string
	flagExport string
	flagRows   int
	flagChart  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation and print the monthly ledger",
	Example: `  creditsim simulate --example
  creditsim simulate --balance 2500 --apr 0.199 --months 36 --band 0:0.03:25 --band 1000:0.025:40
  creditsim simulate --from credit_config.json --csv -`,
	RunE: runSimulate,
}

func init() {
	addSimulateFlags(simulateCmd)
	rootCmd.AddCommand(simulateCmd)
}

func addInputFlags(c *cobra.Command) {
	f := c.Flags()
	f.Float64Var(&flagBalance, "balance", 0, "Starting balance")
	f.Float64Var(&flagAPR, "apr", 0, "Annual rate as a fraction (0.24 = 24%)")
	f.IntVar(&flagMonths, "months", 0, "Number of months to simulate")
	f.Float64Var(&flagCharges, "charges", 0, "New charges added every month")
	f.StringVar(&flagChargesPerMonth, "charges-per-month", "", "Per-month charges, comma separated (month 1 first)")
	f.StringArrayVar(&flagBands, "band", nil, "Payment band lower:pct:min (repeatable)")
	f.StringVar(&flagFrom, "from", "", "Start from a JSON configuration document")
	f.BoolVar(&flagExample, "example", false, "Start from the example scenario")
	f.StringVar(&flagPreset, "preset", "", "Use a named band preset (see `creditsim bands --list`)")
}

func addSimulateFlags(c *cobra.Command) {
	addInputFlags(c)
	f := c.Flags()
	f.StringVar(&flagCSV, "csv", "", "Write the ledger as CSV to this path (- for stdout)")
	f.StringVar(&flagExport, "export", "", "Write the inputs as a JSON configuration document")
	f.IntVar(&flagRows, "rows", 0, "Print at most this many ledger rows (0 = all)")
	f.BoolVar(&flagChart, "chart", false, "Print balance and payment charts")
}

// buildDocument assembles the run's inputs: a base document (config
// defaults, --example or --from) with explicit flags applied on top.
func buildDocument(c *cobra.Command, cfg config.Config) (export.Document, error) {
	var doc export.Document
	switch {
	case flagFrom != "":
		d, err := export.ReadFile(flagFrom)
		if err != nil {
			return doc, err
		}
		doc = d
	case flagExample:
		doc = export.ExampleDocument()
	default:
		doc = export.NewDocument(cfg.Params(), false, nil)
	}

	if flagPreset != "" {
		bands, ok := config.LookupPreset(flagPreset, cfg.Presets)
		if !ok {
			return doc, fmt.Errorf("unknown preset %q (available: %s)",
				flagPreset, strings.Join(config.PresetNames(cfg.Presets), ", "))
		}
		doc.Bands = append([]model.Band(nil), bands...)
	}

	f := c.Flags()
	if f.Changed("balance") {
		doc.StartingBalance = flagBalance
	}
	if f.Changed("apr") {
		doc.APR = flagAPR
	}
	if f.Changed("months") {
		doc.Months = flagMonths
	}
	if f.Changed("charges") {
		doc.MonthlyCharges = flagCharges
	}
	if len(flagBands) > 0 {
		bands, err := export.ParseBands(strings.Join(flagBands, "\n"))
		if err != nil {
			return doc, err
		}
		doc.Bands = bands
	}
	if flagChargesPerMonth != "" {
		vals, err := export.ParseCharges(flagChargesPerMonth)
		if err != nil {
			return doc, err
		}
		doc.AdvancedMode = true
		doc.MonthlyChargesStorage = charges.New()
		for i, v := range vals {
			doc.MonthlyChargesStorage.Set(i+1, v)
		}
	}
	return doc, nil
}

// runDocument simulates doc, printing the input error the way every
// adapter does when the run is rejected.
func runDocument(doc export.Document, logger *zap.Logger) (model.Result, error) {
	res, err := pipeline.Run(doc.Params())
	if err != nil {
		detail := err.Error()
		if inner := errors.Unwrap(err); inner != nil {
			detail = inner.Error()
		}
		fmt.Fprintln(os.Stderr, "  "+cli.RenderError(detail))
		logger.Debug("simulation rejected", zap.Error(err))
		return res, errReported
	}
	logger.Debug("simulation complete",
		zap.Int("months", len(res.Rows)),
		zap.Float64("final_balance", res.Summary.FinalBalance))
	return res, nil
}

func runSimulate(c *cobra.Command, _ []string) error {
	cfg := loadConfig()
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	doc, err := buildDocument(c, cfg)
	if err != nil {
		return err
	}

	res, err := runDocument(doc, logger)
	if err != nil {
		return err
	}

	if flagExport != "" {
		if err := export.WriteFile(flagExport, doc); err != nil {
			return err
		}
		logger.Info("exported config", zap.String("path", flagExport))
	}

	if flagCSV == "-" {
		return writeCSVStdout(res)
	}
	if flagCSV != "" {
		if err := writeCSVFile(flagCSV, res.Rows); err != nil {
			return err
		}
	}

	printResult(os.Stdout, doc, res)
	if flagCSV != "" && !flagQuiet {
		fmt.Printf("  CSV written to %s\n", flagCSV)
	}
	if flagExport != "" && !flagQuiet {
		fmt.Printf("  Config written to %s\n", flagExport)
	}
	return nil
}

func writeCSVStdout(res model.Result) error {
	return export.WriteCSV(os.Stdout, res.Rows)
}

func writeCSVFile(path string, rows []model.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// printResult renders the run. With --quiet only the status line is shown.
func printResult(w io.Writer, doc export.Document, res model.Result) {
	status := cli.RenderStatusLine(len(res.Rows),
		res.Summary.FinalBalance, res.Summary.TotalPaid, res.Summary.TotalInterest)
	if flagQuiet {
		fmt.Fprintln(w, status)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderBanner(fmt.Sprintf("CREDIT SIMULATION  %s @ %s APR",
		cli.FormatMoney(doc.StartingBalance), cli.FormatPercent(doc.APR))))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(ledgerTable(res.Rows, flagRows)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(summaryTable(doc, res)))

	if flagChart {
		fmt.Fprintln(w)
		fmt.Fprint(w, renderCharts(res.Rows))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+status)
}

func ledgerTable(rows []model.Row, limit int) cli.Table {
	shown := rows
	if limit > 0 && limit < len(rows) {
		shown = rows[:limit]
	}

	out := make([][]string, 0, len(shown))
	for _, r := range shown {
		out = append(out, []string{
			fmt.Sprintf("%d", r.Month),
			cli.FormatMoney(r.StartBalance),
			cli.FormatMoney(r.Interest),
			cli.FormatMoney(r.Charges),
			cli.FormatMoney(r.Payment),
			cli.FormatMoney(r.EndBalance),
			cli.FormatPercent(r.Pct),
			cli.FormatMoney(r.MinPayment),
		})
	}
	tbl := cli.Table{
		Title:   "Schedule",
		Headers: []string{"Month", "Start", "Interest", "Charges", "Payment", "End", "Pct", "Min"},
		Rows:    out,
	}
	if len(shown) < len(rows) {
		tbl.Footer = [][]string{{fmt.Sprintf("+%d", len(rows)-len(shown)), "more months"}}
	}
	return tbl
}

func summaryTable(doc export.Document, res model.Result) cli.Table {
	payoff := "not within " + cli.FormatMonths(len(res.Rows))
	if res.PayoffMonth > 0 {
		payoff = fmt.Sprintf("month %d", res.PayoffMonth)
	}
	mode := "flat " + cli.FormatMoney(doc.MonthlyCharges)
	if doc.AdvancedMode {
		mode = fmt.Sprintf("per-month (%d override(s))", doc.MonthlyChargesStorage.Len())
	}

	return cli.Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Starting Balance", cli.FormatMoney(doc.StartingBalance)},
			{"APR", cli.FormatPercent(doc.APR)},
			{"Months", cli.FormatNumber(int64(doc.Months))},
			{"Charges", mode},
			{"Bands", cli.FormatNumber(int64(len(doc.Params().Bands)))},
		},
		Footer: [][]string{
			{"Final Balance", cli.FormatMoney(res.Summary.FinalBalance)},
			{"Change", cli.FormatDelta(res.Summary.FinalBalance, doc.StartingBalance)},
			{"Total Paid", cli.FormatMoney(res.Summary.TotalPaid)},
			{"Total Interest", cli.FormatMoney(res.Summary.TotalInterest)},
			{"Total Charges", cli.FormatMoney(res.Summary.TotalCharges)},
			{"Paid Off", payoff},
		},
	}
}

func renderCharts(rows []model.Row) string {
	var b strings.Builder
	balances := pipeline.BalanceSeries(rows)
	payments := pipeline.PaymentSeries(rows)

	b.WriteString("  End balance  ")
	b.WriteString(cli.RenderSparkline(balances))
	b.WriteString("\n")
	b.WriteString("  Payment      ")
	b.WriteString(cli.RenderSparkline(payments))
	b.WriteString("\n\n")

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = fmt.Sprintf("M%-3d %12s", r.Month, cli.FormatMoney(r.Payment))
	}
	b.WriteString(cli.RenderPaymentBars(labels, payments, 40))

	if len(rows) > 0 {
		b.WriteString("\n  Paid down  ")
		b.WriteString(cli.RenderPaydown(rows[0].StartBalance, rows[len(rows)-1].EndBalance, 30))
		b.WriteString("\n")
	}
	return b.String()
}
