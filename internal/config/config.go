package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DBPath is the local sqlite file; empty means the default location.
	DBPath string `yaml:"db_path"`
	// RemoteURL points at a sync server; empty means local-only.
	RemoteURL string `yaml:"remote_url"`
	// UserID overrides the file-based identity when set.
	UserID string `yaml:"user_id"`

	TickIntervalMs int `yaml:"tick_interval_ms"`

	Log Log `yaml:"log"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func defaults() Config {
	return Config{
		TickIntervalMs: 1000,
		Log:            Log{Level: "info"},
	}
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".life-timer.yaml"), nil
}

// Load reads the config at path on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if cfg.TickIntervalMs <= 0 {
		cfg.TickIntervalMs = 1000
	}
	return cfg, nil
}
