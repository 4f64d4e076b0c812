// Package config provides configuration management for Neighborhood: the
// application settings file and the list of known consoles.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/openneighborhood/neighborhood/internal/constants"
)

// ConfigDirectory returns the directory holding config.csv and consoles.csv.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\Neighborhood
//   - Unix: ~/.config/neighborhood
func ConfigDirectory() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), constants.ConfigDirName)
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, constants.AppTitle)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), constants.ConfigDirName)
		}
		return filepath.Join(homeDir, ".config", constants.ConfigDirName)
	}
	return filepath.Join(configDir, constants.ConfigDirName)
}

// EnsureConfigDirectory creates the config directory with owner-only permissions.
func EnsureConfigDirectory() error {
	return os.MkdirAll(ConfigDirectory(), 0o700)
}

// LogDirectory returns where log files are written.
func LogDirectory() string {
	return filepath.Join(ConfigDirectory(), "logs")
}

// DefaultConfigPath returns the path of the settings file.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDirectory(), "config.csv")
}

// DefaultConsolesPath returns the path of the known-consoles file.
func DefaultConsolesPath() string {
	return filepath.Join(ConfigDirectory(), "consoles.csv")
}

// DefaultMirrorRoot is the directory served by the directory mirror when no
// mirror_root is configured.
func DefaultMirrorRoot() string {
	return filepath.Join(ConfigDirectory(), "mirror")
}
