package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/observability"
	"github.com/theirongolddev/creditsim/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagQuiet   bool
	flagVerbose bool
	flagDB      string
)

// errReported marks an error that has already been shown to the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:           "creditsim",
	Short:         "Credit balance amortization simulator",
	Long:          "Simulate a revolving credit balance month by month under tiered payment bands.",
	RunE:          runSimulate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the status line")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Scenario database path (default from config)")

	addSimulateFlags(rootCmd)
}

// loadConfig reads the config file. A broken file is reported and the
// defaults are used instead.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
		cfg.Store.Path = config.DefaultStorePath()
	}
	if flagDB != "" {
		cfg.Store.Path = flagDB
	}
	return cfg
}

// newLogger returns the CLI logger. Commands stay quiet below warn unless
// --verbose is set.
func newLogger() *zap.Logger {
	switch {
	case flagVerbose:
		return observability.NewLogger("debug")
	case flagQuiet:
		return observability.NewLogger("error")
	default:
		return observability.NewLogger("warn")
	}
}

func openStore(cfg config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario library: %w", err)
	}
	return st, nil
}
