package config

import (
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	// DefaultBaseDir is where organized opinions are filed when the
	// organize.base_dir setting is absent.
	DefaultBaseDir = "database/cases"

	// DefaultMoveThreshold gates the organizer's file moves.
	DefaultMoveThreshold = 0.5

	// DefaultTieThreshold is the near-tie ratio that triggers disambiguation
	// during content scoring.
	DefaultTieThreshold = 0.8
)

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "gavel")
}
