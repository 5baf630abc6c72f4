package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/creditsim/internal/model"
)

// Config holds all creditsim configuration.
type Config struct {
	Defaults   DefaultsConfig          `toml:"defaults"`
	Appearance AppearanceConfig        `toml:"appearance"`
	Store      StoreConfig             `toml:"store"`
	Server     ServerConfig            `toml:"server"`
	Presets    map[string][]model.Band `toml:"presets,omitempty"`
}

// DefaultsConfig holds the inputs a new run starts from.
type DefaultsConfig struct {
	StartingBalance float64      `toml:"starting_balance"`
	APR             float64      `toml:"apr"`
	Months          int          `toml:"months"`
	MonthlyCharges  float64      `toml:"monthly_charges"`
	Preset          string       `toml:"preset,omitempty"`
	Bands           []model.Band `toml:"bands"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// StoreConfig locates the scenario database.
type StoreConfig struct {
	Path string `toml:"path,omitempty"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	LogLevel       string   `toml:"log_level"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			StartingBalance: 5000,
			APR:             0.24,
			Months:          24,
			Preset:          "example",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:     ":8080",
			LogLevel: "info",
		},
	}
}

// Params converts the defaults into engine parameters. Explicit bands win
// over the named preset.
func (d DefaultsConfig) Params(presets map[string][]model.Band) model.Params {
	bands := d.Bands
	if len(bands) == 0 {
		bands, _ = LookupPreset(d.Preset, presets)
	}
	return model.Params{
		StartingBalance: d.StartingBalance,
		APR:             d.APR,
		Months:          d.Months,
		MonthlyCharges:  d.MonthlyCharges,
		Bands:           append([]model.Band(nil), bands...),
	}
}

// Params returns engine parameters for the configured defaults.
func (c Config) Params() model.Params {
	return c.Defaults.Params(c.Presets)
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "creditsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "creditsim")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultStorePath is where scenarios live when [store] path is unset.
func DefaultStorePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "creditsim", "scenarios.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "creditsim", "scenarios.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory and CREDITSIM_* variables are
// applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath()
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CREDITSIM_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CREDITSIM_LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("CREDITSIM_DB"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("CREDITSIM_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
