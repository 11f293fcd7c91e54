// Package config resolves the config file location and parses it.
package config

import (
	"os"
	"path/filepath"
)

const appName = "shortcutmaster"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultLogPath is suggested in the config template; logging stays off
// unless a path is set.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appName, appName+".log")
}

// Path returns the config file to read: $SHORTCUTMASTER_CONFIG if set,
// otherwise the XDG default.
func Path() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return DefaultConfigPath()
}
