package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// Helper to clear all config-related env vars
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"MAQUETTE_PORT",
		"MAQUETTE_READ_TIMEOUT",
		"MAQUETTE_WRITE_TIMEOUT",
		"MAQUETTE_SHUTDOWN_TIMEOUT",
		"MAQUETTE_DB_PATH",
		"MAQUETTE_SCRAPE_TIMEOUT",
		"MAQUETTE_SCRAPE_USER_AGENT",
		"MAQUETTE_IMPORT_CONCURRENCY",
		"MAQUETTE_JOB_RETENTION",
		"MAQUETTE_JANITOR_INTERVAL",
		"MAQUETTE_LOG_LEVEL",
		"MAQUETTE_LOG_FORMAT",
		"MAQUETTE_CONFIG_PATH",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// dur converts Duration to time.Duration for comparison
func dur(d Duration) time.Duration {
	return time.Duration(d)
}

// Test: Default values when no config file and no env vars
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Server defaults
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if dur(cfg.Server.ShutdownTimeout) != 15*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 15s", cfg.Server.ShutdownTimeout)
	}

	// Database defaults
	if cfg.Database.Path != "data/maquette.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "data/maquette.db")
	}

	// Scrape defaults
	if dur(cfg.Scrape.Timeout) != 15*time.Second {
		t.Errorf("Scrape.Timeout = %v, want 15s", cfg.Scrape.Timeout)
	}
	if cfg.Scrape.UserAgent == "" {
		t.Error("Scrape.UserAgent is empty, want a default")
	}

	// Import defaults
	if cfg.Import.Concurrency != 4 {
		t.Errorf("Import.Concurrency = %d, want 4", cfg.Import.Concurrency)
	}
	if dur(cfg.Import.JobRetention) != 1*time.Hour {
		t.Errorf("Import.JobRetention = %v, want 1h", cfg.Import.JobRetention)
	}

	// Log defaults
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
}

// Test: YAML file overrides defaults
func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "maquette.yaml")
	content := `
server:
  port: 9090
  read_timeout: 45s
database:
  path: /tmp/custom.db
import:
  concurrency: 8
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 45s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Database.Path = %q, want /tmp/custom.db", cfg.Database.Path)
	}
	if cfg.Import.Concurrency != 8 {
		t.Errorf("Import.Concurrency = %d, want 8", cfg.Import.Concurrency)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	// Untouched fields keep their defaults
	if dur(cfg.Server.WriteTimeout) != 30*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
}

// Test: Env vars override YAML values
func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "maquette.yaml")
	content := `
server:
  port: 9090
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("MAQUETTE_PORT", "7070")
	t.Setenv("MAQUETTE_DB_PATH", "/tmp/env.db")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 (env wins)", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("Database.Path = %q, want /tmp/env.db", cfg.Database.Path)
	}
}

// Test: Missing config file falls back to defaults
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAQUETTE_CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

// Test: Malformed YAML is an error
func TestLoadFromFile_MalformedYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile(malformed) = nil error, want parse error")
	}
}

// Test: Invalid values fail validation
func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAQUETTE_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Error("Load() with port 99999 = nil error, want validation error")
	}
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAQUETTE_IMPORT_CONCURRENCY", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() with concurrency 0 = nil error, want validation error")
	}
}

// Test: Duration round-trips through YAML as a string
func TestDuration_YAMLRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "1m30s") {
		t.Errorf("Marshal() = %q, want 1m30s", string(out))
	}

	var back Duration
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if dur(back) != 90*time.Second {
		t.Errorf("round-trip = %v, want 90s", back)
	}
}

func TestDuration_InvalidString(t *testing.T) {
	var d Duration
	if err := yaml.Unmarshal([]byte(`"not a duration"`), &d); err == nil {
		t.Error("Unmarshal(invalid) = nil error, want parse error")
	}
}
