package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/creditsim/internal/config"
	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"

	"github.com/spf13/cobra"
)

// inputCmd returns a command with fresh input flags parsed from args.
// Defining the flags resets the package-level flag variables.
func inputCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addInputFlags(c)
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return c
}

func TestBuildDocument_ConfigDefaults(t *testing.T) {
	doc, err := buildDocument(inputCmd(t), config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	if doc.StartingBalance != 5000 || doc.Months != 24 {
		t.Fatalf("doc = %+v, want config defaults", doc)
	}
	if len(doc.Bands) != len(export.ExampleBands()) {
		t.Fatalf("bands = %d, want example preset", len(doc.Bands))
	}
	if doc.AdvancedMode {
		t.Fatal("AdvancedMode = true, want false")
	}
}

func TestBuildDocument_FlagsOverride(t *testing.T) {
	c := inputCmd(t,
		"--balance", "1000",
		"--apr", "0",
		"--months", "6",
		"--charges", "15",
		"--band", "500:0.05:20",
		"--band", "0:0.1:10",
	)
	doc, err := buildDocument(c, config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	if doc.StartingBalance != 1000 || doc.APR != 0 || doc.Months != 6 || doc.MonthlyCharges != 15 {
		t.Fatalf("doc = %+v", doc)
	}
	want := []model.Band{{Lower: 500, Pct: 0.05, MinPayment: 20}, {Lower: 0, Pct: 0.1, MinPayment: 10}}
	if len(doc.Bands) != 2 || doc.Bands[0] != want[0] || doc.Bands[1] != want[1] {
		t.Fatalf("bands = %+v, want %+v", doc.Bands, want)
	}
}

func TestBuildDocument_UnchangedFlagsKeepBase(t *testing.T) {
	doc, err := buildDocument(inputCmd(t, "--example", "--months", "3"), config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	if doc.StartingBalance != 5000 || doc.APR != 0.24 {
		t.Fatalf("doc = %+v, want example balance and APR", doc)
	}
	if doc.Months != 3 {
		t.Fatalf("Months = %d, want 3", doc.Months)
	}
}

func TestBuildDocument_Preset(t *testing.T) {
	doc, err := buildDocument(inputCmd(t, "--preset", "Flat 2pct"), config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	if len(doc.Bands) != 1 || doc.Bands[0].Pct != 0.02 {
		t.Fatalf("bands = %+v, want flat-2pct", doc.Bands)
	}
}

func TestBuildDocument_UnknownPreset(t *testing.T) {
	_, err := buildDocument(inputCmd(t, "--preset", "nope"), config.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("err = %v, want unknown preset", err)
	}
}

func TestBuildDocument_ChargesPerMonth(t *testing.T) {
	doc, err := buildDocument(inputCmd(t, "--charges-per-month", "10,20, 30"), config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	if !doc.AdvancedMode {
		t.Fatal("AdvancedMode = false, want true")
	}
	if v, ok := doc.MonthlyChargesStorage.Get(3); !ok || v != 30 {
		t.Fatalf("storage[3] = %v, %v; want 30, true", v, ok)
	}
	p := doc.Params()
	if p.MonthlyChargesArray[0] != 10 || p.MonthlyChargesArray[3] != doc.MonthlyCharges {
		t.Fatalf("charges = %v", p.MonthlyChargesArray[:4])
	}
}

func TestBuildDocument_BadBand(t *testing.T) {
	if _, err := buildDocument(inputCmd(t, "--band", "0:x:1"), config.DefaultConfig()); err == nil {
		t.Fatal("expected error for non-numeric band")
	}
}

func TestBuildDocument_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	want := export.ExampleDocument()
	want.StartingBalance = 750
	if err := export.WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := buildDocument(inputCmd(t, "--from", path, "--apr", "0.1"), config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	if doc.StartingBalance != 750 {
		t.Fatalf("StartingBalance = %v, want 750", doc.StartingBalance)
	}
	if doc.APR != 0.1 {
		t.Fatalf("APR = %v, want flag value 0.1", doc.APR)
	}
}

func TestLedgerTable_Limit(t *testing.T) {
	rows := make([]model.Row, 10)
	for i := range rows {
		rows[i].Month = i + 1
	}

	tbl := ledgerTable(rows, 3)
	if got := len(tbl.Rows); got != 3 {
		t.Fatalf("rows = %d, want 3", got)
	}
	if len(tbl.Footer) != 1 || tbl.Footer[0][0] != "+7" {
		t.Fatalf("footer = %v, want +7 more months", tbl.Footer)
	}

	full := ledgerTable(rows, 0)
	if len(full.Rows) != 10 || full.Footer != nil {
		t.Fatalf("unlimited rows = %d footer = %v, want 10 and none", len(full.Rows), full.Footer)
	}
}

func TestDisplayAddr(t *testing.T) {
	if got := displayAddr(":8080"); got != "localhost:8080" {
		t.Fatalf("displayAddr(:8080) = %q", got)
	}
	if got := displayAddr("127.0.0.1:9000"); got != "127.0.0.1:9000" {
		t.Fatalf("displayAddr = %q", got)
	}
}
