package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labterial/labterial/internal/mechsim"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Units != "si" {
		t.Errorf("Units = %q, want si", cfg.Units)
	}
	if cfg.PointCount != mechsim.DefaultPointCount {
		t.Errorf("PointCount = %d, want %d", cfg.PointCount, mechsim.DefaultPointCount)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath empty")
	}
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "units: imperial\npoint_count: 500\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Units != "imperial" || cfg.PointCount != 500 {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.DatabasePath != Default().DatabasePath {
		t.Errorf("DatabasePath = %q, want default", cfg.DatabasePath)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("units: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML accepted")
	}
}
