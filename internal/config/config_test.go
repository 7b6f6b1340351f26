// ABOUTME: Tests for configuration defaults, path expansion, and overrides.
// ABOUTME: Uses t.Setenv to exercise file and environment precedence.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "csv" {
		t.Errorf("GetBackend() = %q, want csv", got)
	}

	cfg.Backend = "sqlite"
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want sqlite", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/fitness", filepath.Join(home, "fitness")},
		{"/var/data", "/var/data"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FITTRACK_BACKEND", "sqlite")
	t.Setenv("FITTRACK_DATA_DIR", "/tmp/fittest")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.DataDir != "/tmp/fittest" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FITTRACK_BACKEND", "")
	t.Setenv("FITTRACK_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetBackend() != "csv" {
		t.Errorf("GetBackend() = %q, want csv", cfg.GetBackend())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FITTRACK_BACKEND", "")
	t.Setenv("FITTRACK_DATA_DIR", "")

	cfg := &Config{Backend: "sqlite", DataDir: "/srv/fitness"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Backend != "sqlite" || got.DataDir != "/srv/fitness" {
		t.Errorf("got %+v", got)
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	cfg := &Config{Backend: "redis"}
	if _, err := cfg.OpenBackend(); err == nil {
		t.Error("unknown backend must fail")
	}
}

func TestOpenBackendCSV(t *testing.T) {
	cfg := &Config{Backend: "csv", DataDir: t.TempDir()}
	b, err := cfg.OpenBackend()
	if err != nil {
		t.Fatalf("OpenBackend: %v", err)
	}
	defer b.Close()
}
