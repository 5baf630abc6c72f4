package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/theirongolddev/creditsim/internal/observability"
	"github.com/theirongolddev/creditsim/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagServeAddr         string
	flagServeNoStore      bool
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (simulate, scenarios, metrics, event stream)",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query a running API for its status",
	RunE:  runServeStatus,
}

func init() {
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().BoolVar(&flagServeNoStore, "no-store", false, "Disable the scenario routes")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 200, "Max in-memory events retained")

	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if flagServeAddr != "" {
		cfg.Server.Addr = flagServeAddr
	}
	level := cfg.Server.LogLevel
	if flagVerbose {
		level = "debug"
	}

	logger := observability.NewLogger(level)
	defer func() { _ = logger.Sync() }()

	var scenarios server.ScenarioStore
	if !flagServeNoStore {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()
		scenarios = st
		logger.Info("scenario library open", zap.String("path", cfg.Store.Path))
	}

	svc := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		EventsBuffer:   flagServeEventsBuffer,
	}, logger, observability.NewMetrics(), scenarios)

	if !flagQuiet {
		fmt.Printf("  creditsim API listening on http://%s\n", displayAddr(cfg.Server.Addr))
		fmt.Println("  Stop with Ctrl+C")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

func runServeStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	addr := cfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}
	base := "http://" + displayAddr(addr)
	fmt.Printf("  Address: %s\n", base)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(base + "/v1/status") //nolint:noctx // short status probe
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st server.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Started: %s (up %s)\n", st.StartedAt.Local().Format(time.RFC3339),
		time.Since(st.StartedAt).Round(time.Second))
	fmt.Printf("  Runs: %d\n", st.Runs)
	fmt.Printf("  Events buffered: %d\n", st.EventCount)
	fmt.Printf("  Stream subscribers: %d\n", st.SubscriberCount)
	if st.Scenarios {
		fmt.Println("  Scenario library: enabled")
	} else {
		fmt.Println("  Scenario library: disabled")
	}
	return nil
}
