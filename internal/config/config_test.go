package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/creditsim/internal/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("CREDITSIM_ADDR", "")
	t.Setenv("CREDITSIM_DB", "")
	t.Setenv("CREDITSIM_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Defaults.Months != 24 {
		t.Fatalf("Months = %d, want 24", cfg.Defaults.Months)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if want := filepath.Join("/data", "creditsim", "scenarios.db"); cfg.Store.Path != want {
		t.Fatalf("Store.Path = %q, want %q", cfg.Store.Path, want)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CREDITSIM_ADDR", "")
	t.Setenv("CREDITSIM_DB", "")
	t.Setenv("CREDITSIM_LOG_LEVEL", "")

	cfg := DefaultConfig()
	cfg.Defaults.StartingBalance = 1200
	cfg.Defaults.APR = 0.12
	cfg.Defaults.Bands = []model.Band{{Lower: 0, Pct: 0.1, MinPayment: 10}}
	cfg.Appearance.Theme = "catppuccin-mocha"
	cfg.Store.Path = "/tmp/s.db"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Defaults.StartingBalance != 1200 || got.Defaults.APR != 0.12 {
		t.Fatalf("Defaults = %+v", got.Defaults)
	}
	if len(got.Defaults.Bands) != 1 || got.Defaults.Bands[0].MinPayment != 10 {
		t.Fatalf("Bands = %+v", got.Defaults.Bands)
	}
	if got.Appearance.Theme != "catppuccin-mocha" {
		t.Fatalf("Theme = %q", got.Appearance.Theme)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("CREDITSIM_ADDR", "")
	t.Setenv("CREDITSIM_DB", "")
	t.Setenv("CREDITSIM_LOG_LEVEL", "")

	body := `
[defaults]
starting_balance = 800
apr = 0.18
months = 12

[[defaults.bands]]
lower = 0
pct = 0.05
min_payment = 20

[server]
addr = "127.0.0.1:9000"
`
	if err := os.MkdirAll(filepath.Join(dir, "creditsim"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "creditsim", "config.toml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	p := cfg.Params()
	if p.StartingBalance != 800 || p.Months != 12 {
		t.Fatalf("Params = %+v", p)
	}
	if len(p.Bands) != 1 || p.Bands[0].Pct != 0.05 || p.Bands[0].MinPayment != 20 {
		t.Fatalf("Bands = %+v", p.Bands)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q", cfg.Server.Addr)
	}
	// untouched sections keep their defaults
	if cfg.Server.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.Server.LogLevel)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	_ = os.MkdirAll(filepath.Join(dir, "creditsim"), 0o755)
	_ = os.WriteFile(filepath.Join(dir, "creditsim", "config.toml"), []byte("[defaults\n"), 0o600)

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CREDITSIM_ADDR", ":9999")
	t.Setenv("CREDITSIM_LOG_LEVEL", "debug")
	t.Setenv("CREDITSIM_DB", "/tmp/other.db")
	t.Setenv("CREDITSIM_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9999" || cfg.Server.LogLevel != "debug" {
		t.Fatalf("Server = %+v", cfg.Server)
	}
	if cfg.Store.Path != "/tmp/other.db" {
		t.Fatalf("Store.Path = %q", cfg.Store.Path)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestDefaultsParams_UsesPreset(t *testing.T) {
	p := DefaultConfig().Params()
	if len(p.Bands) != 5 {
		t.Fatalf("len(Bands) = %d, want 5", len(p.Bands))
	}
	if p.StartingBalance != 5000 || p.APR != 0.24 {
		t.Fatalf("Params = %+v", p)
	}
}
