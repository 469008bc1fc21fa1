package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickIntervalMs != 1000 {
		t.Fatalf("tick interval=%d, want 1000", cfg.TickIntervalMs)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level=%q, want info", cfg.Log.Level)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RemoteURL != "" {
		t.Fatalf("unexpected remote url %q", cfg.RemoteURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "remote_url: http://localhost:8321\nuser_id: alice\ntick_interval_ms: 250\nlog:\n  level: debug\n  json: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RemoteURL != "http://localhost:8321" || cfg.UserID != "alice" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TickIntervalMs != 250 || cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("remote_url: [oops"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
