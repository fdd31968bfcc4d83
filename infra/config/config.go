package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application-level configuration.
type Config struct {
	PrefsPath string // Path to the preferences file
	DebugLog  string // Path to the debug log file; empty disables logging
}

// Load reads configuration from environment variables.
//
//	CHUCKLECHAIN_PREFS — path to the preferences file (default: ~/.config/chucklechain/prefs.yaml)
//	CHUCKLECHAIN_DEBUG — path to a debug log file (default: disabled)
func Load() (Config, error) {
	prefsPath := os.Getenv("CHUCKLECHAIN_PREFS")
	if prefsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		prefsPath = filepath.Join(home, ".config", "chucklechain", "prefs.yaml")
	}

	return Config{
		PrefsPath: prefsPath,
		DebugLog:  os.Getenv("CHUCKLECHAIN_DEBUG"),
	}, nil
}
