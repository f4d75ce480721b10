package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexander-akhmetov/paintourney/internal/config"
)

// loadConfig resolves the layered config with flags on top, validates it and
// makes the data dir absolute. Every command reading items goes through it.
func loadConfig(flags config.CLIFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyCLIFlags(flags)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	dir, err := resolveDataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dir
	return cfg, nil
}

// resolveDataDir returns dir as an absolute path, relative to the current
// working directory.
func resolveDataDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, dir), nil
}
