// Package config loads persistent CLI defaults from a TOML file, the way
// matzehuels-stacktower loads its game configuration with
// github.com/BurntSushi/toml. Flags take precedence over whatever the file
// set, and the file's defaults apply only where a flag was left unset.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults a dlxsolve invocation falls back to when a
// flag wasn't given explicitly.
type Config struct {
	LogLevel         string        `toml:"log_level"`
	OutputDir        string        `toml:"output_dir"`
	TimeBudget       time.Duration `toml:"-"`
	TimeBudgetString string        `toml:"time_budget"`
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() *Config {
	return &Config{
		LogLevel:         "info",
		OutputDir:        "./runs",
		TimeBudget:       30 * time.Second,
		TimeBudgetString: "30s",
	}
}

// Load reads a TOML config file, starting from Defaults for any field the
// file omits.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.TimeBudgetString != "" {
		d, err := time.ParseDuration(cfg.TimeBudgetString)
		if err != nil {
			return nil, err
		}
		cfg.TimeBudget = d
	}
	return cfg, nil
}
