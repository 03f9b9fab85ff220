// Package config tests configuration loading.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	setDefaults(&cfg)

	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if !strings.HasSuffix(cfg.DataDir, ".planner") {
		t.Errorf("DataDir: got %q, want a .planner dot-dir", cfg.DataDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PLANNER_DATA_DIR", "/tmp/planner-test")
	t.Setenv("PLANNER_THEME", "neon")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")

	var cfg Config
	setDefaults(&cfg)
	loadFromEnv(&cfg)

	if cfg.DataDir != "/tmp/planner-test" {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
	if cfg.Theme != "neon" {
		t.Errorf("Theme: got %q", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
}

func TestOverridesWinOverEnv(t *testing.T) {
	t.Setenv("PLANNER_THEME", "neon")
	t.Setenv("PLANNER_DATA_DIR", "/tmp/from-env")

	var cfg Config
	setDefaults(&cfg)
	loadFromEnv(&cfg)
	applyOverrides(&cfg, Overrides{DataDir: "/tmp/from-flag", Theme: "mono", Verbose: true})

	if cfg.DataDir != "/tmp/from-flag" {
		t.Errorf("DataDir: got %q, want flag value", cfg.DataDir)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.toml")
	body := "data_dir = \"/tmp/from-file\"\ntheme = \"mono\"\nlog_level = \"info\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Chdir(dir)

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/from-file" {
		t.Errorf("DataDir: got %q, want /tmp/from-file", cfg.DataDir)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
}

func TestConfigFileBadTOML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "planner.toml"), []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Chdir(dir)

	if _, err := Load(Overrides{}); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.planner", filepath.Join(home, ".planner")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		got, err := expandPath(tt.in)
		if err != nil {
			t.Fatalf("expandPath(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadHonorsEnvDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PLANNER_DATA_DIR", filepath.Join(dir, "data"))

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != filepath.Join(dir, "data") {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
}
