// Package paths resolves the application-scoped directories trk persists
// into: configuration, named mapping presets, and the session history
// database. All storage lives under one config root so a single
// directory removal resets the tool.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the config root when set. Used by tests and
// by users who keep tool state out of their home directory.
const EnvConfigDir = "TRK_CONFIG_DIR"

// appDirName is the directory created under the user config dir
const appDirName = "trk"

// presetDirName holds one JSON file per saved mapping preset
const presetDirName = "presets"

// historyDBName is the session history SQLite database filename
const historyDBName = "history.db"

// ConfigDir returns the application config root, creating nothing
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureConfigDir returns the config root, creating it if absent
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	return dir, nil
}

// PresetDir returns the preset storage directory under the config root
func PresetDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, presetDirName), nil
}

// HistoryDBPath returns the session history database path
func HistoryDBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, historyDBName), nil
}

// KeywordTablePath returns the expected keyword table override location.
// The file is optional; callers fall back to the embedded table.
func KeywordTablePath(filename string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}
