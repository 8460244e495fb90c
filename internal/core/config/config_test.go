package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uiscope.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MCP.RequestTimeout != 30*time.Second {
		t.Errorf("request timeout = %v", cfg.MCP.RequestTimeout)
	}
	if len(cfg.ClassHelpers) == 0 {
		t.Error("default class helpers missing")
	}
	if cfg.History.Enabled {
		t.Error("history should default off")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
version = 1
class_helpers = ["cn"]

[mcp]
request_timeout = "5s"

[watch]
debounce = "100ms"
exclude_dirs = ["vendor"]
max_per_second = 2.0

[history]
enabled = true
path = "/tmp/h.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MCP.RequestTimeout != 5*time.Second {
		t.Errorf("request timeout = %v", cfg.MCP.RequestTimeout)
	}
	if len(cfg.ClassHelpers) != 1 || cfg.ClassHelpers[0] != "cn" {
		t.Errorf("class helpers = %v", cfg.ClassHelpers)
	}
	if cfg.Watch.Debounce != 100*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Watch.Debounce)
	}
	if !cfg.History.Enabled || cfg.History.Path != "/tmp/h.db" {
		t.Errorf("history = %+v", cfg.History)
	}
	// Untouched sections keep their defaults.
	if cfg.MCP.MaxResponseItems != 200 {
		t.Errorf("max response items = %d", cfg.MCP.MaxResponseItems)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[mcp]
request_timout = "5s"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	path := writeConfig(t, `
[mcp]
request_timeout = "-1s"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestHistoryEnabledRequiresPath(t *testing.T) {
	path := writeConfig(t, `
[history]
enabled = true
path = ""
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for empty history path")
	}
}
