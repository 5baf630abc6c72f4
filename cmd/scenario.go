package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:     "scenario",
	Aliases: []string{"scenarios"},
	Short:   "Manage the saved scenario library",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save inputs under a name (same input flags as simulate)",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a saved scenario as a JSON configuration document",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run NAME",
	Short: "Simulate a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioRun,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	addInputFlags(scenarioSaveCmd)

	scenarioRunCmd.Flags().StringVar(&flagCSV, "csv", "", "Write the ledger as CSV to this path (- for stdout)")
	scenarioRunCmd.Flags().IntVar(&flagRows, "rows", 0, "Print at most this many ledger rows (0 = all)")
	scenarioRunCmd.Flags().BoolVar(&flagChart, "chart", false, "Print balance and payment charts")

	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioRunCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

// withStore opens the scenario library for the duration of fn.
func withStore(fn func(ctx context.Context, st *store.Store) error) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return notFound(fn(ctx, st))
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return errors.New("no scenario with that name (see `creditsim scenario list`)")
	}
	return err
}

func runScenarioSave(c *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.Store) error {
		doc, err := buildDocument(c, loadConfig())
		if err != nil {
			return err
		}
		sc, err := st.Save(ctx, args[0], doc)
		if err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Saved %q (%s, %d band(s))\n", sc.Name, cli.FormatMonths(sc.Document.Months), len(sc.Document.Bands))
		}
		return nil
	})
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	return withStore(func(ctx context.Context, st *store.Store) error {
		list, err := st.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("\n  No saved scenarios yet. Try `creditsim scenario save NAME --example`.")
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, sc := range list {
			d := sc.Document
			rows = append(rows, []string{
				sc.Name,
				cli.FormatMoney(d.StartingBalance),
				cli.FormatPercent(d.APR),
				fmt.Sprintf("%d", d.Months),
				fmt.Sprintf("%d", len(d.Bands)),
				fmt.Sprintf("%v", d.AdvancedMode),
				sc.UpdatedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Scenarios (%d)", len(list)),
			Headers: []string{"Name", "Balance", "APR", "Months", "Bands", "Per-month", "Updated"},
			Rows:    rows,
		}))
		return nil
	})
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.Store) error {
		sc, err := st.Get(ctx, args[0])
		if err != nil {
			return err
		}
		return sc.Document.Encode(os.Stdout)
	})
}

func runScenarioRun(_ *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	return withStore(func(ctx context.Context, st *store.Store) error {
		sc, err := st.Get(ctx, args[0])
		if err != nil {
			return err
		}
		res, err := runDocument(sc.Document, logger)
		if err != nil {
			return err
		}

		if flagCSV == "-" {
			return writeCSVStdout(res)
		}
		if flagCSV != "" {
			if err := writeCSVFile(flagCSV, res.Rows); err != nil {
				return err
			}
		}
		printResult(os.Stdout, sc.Document, res)
		return nil
	})
}

func runScenarioDelete(_ *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.Store) error {
		if err := st.Delete(ctx, args[0]); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Deleted %q\n", args[0])
		}
		return nil
	})
}
