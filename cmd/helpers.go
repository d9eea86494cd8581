package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/labterial/labterial/internal/config"
	"github.com/labterial/labterial/internal/store"
	"github.com/labterial/labterial/internal/units"
)

// openStore loads the user config and opens the material database it
// points at. The caller owns the returned store.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, cfg, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := store.Open(cfg.DatabasePath, log)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening material database: %w", err)
	}
	return s, cfg, nil
}

// resolveUnits picks the display system from the flag, falling back to
// the configured default.
func resolveUnits(flag string, cfg config.Config) (units.System, error) {
	if flag == "" {
		flag = cfg.Units
	}
	return units.ParseSystem(flag)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
