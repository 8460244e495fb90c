package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Version       int           `toml:"version"`
	ClassHelpers  []string      `toml:"class_helpers"`
	MCP           MCP           `toml:"mcp"`
	History       History       `toml:"history"`
	Watch         Watch         `toml:"watch"`
	Observability Observability `toml:"observability"`
}

type MCP struct {
	RequestTimeout   time.Duration `toml:"request_timeout"`
	MaxResponseItems int           `toml:"max_response_items"`
}

type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type Watch struct {
	Debounce     time.Duration `toml:"debounce"`
	ExcludeDirs  []string      `toml:"exclude_dirs"`
	ExcludeFiles []string      `toml:"exclude_files"`
	// MaxPerSecond bounds how often a churning file is re-analyzed.
	MaxPerSecond float64 `toml:"max_per_second"`
}

type Observability struct {
	Addr         string `toml:"addr"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

func Default() *Config {
	return &Config{
		Version:      1,
		ClassHelpers: []string{"cn", "clsx", "classnames", "classNames", "cx", "twMerge", "cva"},
		MCP: MCP{
			RequestTimeout:   30 * time.Second,
			MaxResponseItems: 200,
		},
		History: History{
			Enabled: false,
			Path:    defaultHistoryPath(),
		},
		Watch: Watch{
			Debounce:     300 * time.Millisecond,
			ExcludeDirs:  []string{"node_modules", ".git", "dist", "build", ".next"},
			MaxPerSecond: 4,
		},
	}
}

// Load reads a TOML config, layering it over built-in defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config %q: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %q has unknown keys: %v", path, undecoded)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MCP.RequestTimeout < 0 {
		return fmt.Errorf("mcp.request_timeout must not be negative")
	}
	if c.MCP.MaxResponseItems < 0 {
		return fmt.Errorf("mcp.max_response_items must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.Watch.MaxPerSecond < 0 {
		return fmt.Errorf("watch.max_per_second must not be negative")
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}
	return nil
}

func defaultHistoryPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "uiscope", "history.db")
	}
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "uiscope", "history.db")
	}
	return "uiscope-history.db"
}
