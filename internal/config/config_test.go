// ABOUTME: Tests for lift configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "charm"}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetUnitDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetUnit(); got != models.UnitKg {
		t.Errorf("GetUnit() = %q, want kg", got)
	}
}

func TestGetUnitExplicit(t *testing.T) {
	cfg := &Config{Unit: "lb"}
	if got := cfg.GetUnit(); got != models.UnitLb {
		t.Errorf("GetUnit() = %q, want lb", got)
	}
}

func TestGetUnitInvalidFallsBack(t *testing.T) {
	cfg := &Config{Unit: "stone"}
	if got := cfg.GetUnit(); got != models.UnitKg {
		t.Errorf("GetUnit() = %q, want kg for invalid value", got)
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/lift-test"}
	if got := cfg.GetDataDir(); got != "/tmp/lift-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/lift-test")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/lift")
	want := filepath.Join(home, "data/lift")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/lift\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/lift"); got != "data/lift" {
		t.Errorf("ExpandPath(\"data/lift\") = %q, want %q", got, "data/lift")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should return defaults
	if cfg.Backend != "" {
		t.Errorf("Expected empty Backend, got %q", cfg.Backend)
	}
	if cfg.Unit != "" {
		t.Errorf("Expected empty Unit, got %q", cfg.Unit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{
		Backend: "sqlite",
		DataDir: "/tmp/lift-data",
		Unit:    "lb",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Backend != "sqlite" {
		t.Errorf("Backend mismatch: got %q, want %q", loaded.Backend, "sqlite")
	}
	if loaded.DataDir != "/tmp/lift-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/lift-data")
	}
	if loaded.Unit != "lb" {
		t.Errorf("Unit mismatch: got %q, want %q", loaded.Unit, "lb")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{Backend: "sqlite"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "lift")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	configDir := filepath.Join(tmpDir, "lift")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	_, err = Load()
	if err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "lift", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &Config{
		Backend: "sqlite",
		DataDir: tmpDir,
	}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() for sqlite failed: %v", err)
	}
	defer repo.Close()

	if repo == nil {
		t.Error("Expected non-nil repository")
	}

	dbPath := filepath.Join(tmpDir, "lift.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected lift.db to be created")
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	cfg := &Config{
		Backend: "invalid",
		DataDir: "/tmp",
	}

	_, err := cfg.OpenStorage()
	if err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	cfg := &Config{}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Empty config should result in "{}" since fields have omitempty
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}

func TestOpenStorageDefaultBackend(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lift-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Empty config should use sqlite backend by default
	cfg := &Config{
		DataDir: tmpDir,
	}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() with default backend failed: %v", err)
	}
	defer repo.Close()

	if repo == nil {
		t.Error("Expected non-nil repository")
	}
}
