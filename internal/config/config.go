// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"

	dataDirName    = ".planner"
	configFileName = "config.toml"
)

// Config holds the full configuration for planner.
type Config struct {
	DataDir  string `toml:"data_dir"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
}

// Overrides carries root-flag values; zero values mean "not set".
type Overrides struct {
	DataDir string
	Theme   string
	Verbose bool
}

// Load builds configuration in priority order:
// 1. Defaults
// 2. Config file (TOML)
// 3. Environment variables
// 4. Root flags
func Load(ov Overrides) (Config, error) {
	var cfg Config
	setDefaults(&cfg)

	if path := findConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(&cfg)
	applyOverrides(&cfg, ov)

	if err := finalize(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DataDir = "~/" + dataDirName
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
}

// findConfigFile looks in the working directory first, then the home dot-dir.
func findConfigFile() string {
	for _, name := range []string{"planner.toml", ".planner.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, dataDirName, configFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("PLANNER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PLANNER_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("PLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func applyOverrides(cfg *Config, ov Overrides) {
	if ov.DataDir != "" {
		cfg.DataDir = ov.DataDir
	}
	if ov.Theme != "" {
		cfg.Theme = ov.Theme
	}
	if ov.Verbose {
		cfg.LogLevel = "debug"
	}
}

// finalize expands the home prefix in DataDir.
func finalize(cfg *Config) error {
	expanded, err := expandPath(cfg.DataDir)
	if err != nil {
		return err
	}
	cfg.DataDir = expanded
	return nil
}

// expandPath expands a leading ~ to the user home directory.
func expandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~/")), nil
}
