package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDir is the directory name ringring uses under the platform
// config/data roots.
const appDir = "ringring"

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}

// ConfigDir returns the ringring configuration directory, honoring
// XDG_CONFIG_HOME with a platform fallback.
func ConfigDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appDir)
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir(), "Library", "Application Support", appDir)
	}
	return filepath.Join(homeDir(), ".config", appDir)
}

// DataDir returns the ringring data directory, honoring XDG_DATA_HOME
// with a platform fallback. Installed themes live under it.
func DataDir() string {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, appDir)
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir(), "Library", "Application Support", appDir)
	}
	return filepath.Join(homeDir(), ".local", "share", appDir)
}

// SoundsDir returns the directory holding theme bundles, config.json,
// and the legacy theme file. RINGRING_SOUNDS_DIR overrides it.
func SoundsDir() string {
	if dir := os.Getenv("RINGRING_SOUNDS_DIR"); dir != "" {
		return dir
	}
	return DataDir()
}
