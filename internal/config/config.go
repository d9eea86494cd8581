// Package config loads tool settings from ~/.labterial/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/labterial/labterial/internal/mechsim"
)

// Config holds the user-tunable defaults of the tool. Everything has a
// working zero-config default; the file only overrides.
type Config struct {
	// DatabasePath locates the material inventory database.
	DatabasePath string `yaml:"database_path"`

	// Units is the default display unit system: "si" or "imperial".
	Units string `yaml:"units"`

	// PointCount is the default curve resolution.
	PointCount int `yaml:"point_count"`
}

// DataDir returns the tool's per-user data directory (~/.labterial).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".labterial"), nil
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{Units: "si", PointCount: mechsim.DefaultPointCount}
	if dir, err := DataDir(); err == nil {
		cfg.DatabasePath = filepath.Join(dir, "materials.db")
	} else {
		cfg.DatabasePath = "materials.db"
	}
	return cfg
}

// Load reads the config file at path, falling back to defaults for
// anything unset. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.DatabasePath != "" {
		cfg.DatabasePath = file.DatabasePath
	}
	if file.Units != "" {
		cfg.Units = file.Units
	}
	if file.PointCount != 0 {
		cfg.PointCount = file.PointCount
	}
	return cfg, nil
}

// LoadDefault reads the config from the standard location.
func LoadDefault() (Config, error) {
	dir, err := DataDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(dir, "config.yaml"))
}
