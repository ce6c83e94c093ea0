// Package config loads and saves the tarifa TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/tarifa/internal/pricing"

	"github.com/BurntSushi/toml"
)

// Config holds all tarifa configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
	Clipboard  ClipboardConfig  `toml:"clipboard"`
	Logging    LoggingConfig    `toml:"logging"`
}

// DefaultsConfig pre-fills the calculator fields. Unset keys leave a field empty.
type DefaultsConfig struct {
	AnnualGoal          *float64 `toml:"annual_goal,omitempty"`
	BillableHoursPerDay *float64 `toml:"billable_hours_per_day,omitempty"`
	VacationDaysPerYear *float64 `toml:"vacation_days_per_year,omitempty"`
	MonthlyExpenses     *float64 `toml:"monthly_expenses,omitempty"`
	TaxRatePercent      *float64 `toml:"tax_rate_percent,omitempty"`
	ProjectHours        *float64 `toml:"project_hours,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ClipboardConfig selects how proposals reach the clipboard.
type ClipboardConfig struct {
	Mode string `toml:"mode"` // auto, system or osc52
}

// LoggingConfig controls the log file. The terminal is never used for logs.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Clipboard: ClipboardConfig{
			Mode: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Inputs converts the configured defaults into calculator inputs.
func (d DefaultsConfig) Inputs() pricing.Inputs {
	return pricing.Inputs{
		AnnualGoal:          copyFloat(d.AnnualGoal),
		BillableHoursPerDay: copyFloat(d.BillableHoursPerDay),
		VacationDaysPerYear: copyFloat(d.VacationDaysPerYear),
		MonthlyExpenses:     copyFloat(d.MonthlyExpenses),
		TaxRatePercent:      copyFloat(d.TaxRatePercent),
		ProjectHours:        copyFloat(d.ProjectHours),
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tarifa")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tarifa")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// GetTheme returns the theme from env var or config, in that order.
func GetTheme(cfg Config) string {
	if name := os.Getenv("TARIFA_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
