package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variables that override the config file.
const (
	EnvConfig = "SHORTCUTMASTER_CONFIG"
	EnvOS     = "SHORTCUTMASTER_OS"
	EnvLog    = "SHORTCUTMASTER_LOG"
)

// FileConfig represents the TOML configuration file. Unset values are nil so
// callers can tell them apart from zero values.
type FileConfig struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Log      LogConfig      `toml:"log"`
}

// DefaultsConfig maps the session defaults.
type DefaultsConfig struct {
	Mode     *string `toml:"mode"`
	OS       *string `toml:"os"`
	Category *string `toml:"category"`
	Count    *int    `toml:"count"`
	Seed     *int64  `toml:"seed"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Path *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides onto the file values, so the
// environment wins over the file and flags win over both.
func (c *FileConfig) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvOS); v != "" {
		c.Defaults.OS = &v
	}
	if v := getenv(EnvLog); v != "" {
		c.Log.Path = &v
	}
}

// Template returns the commented config written by the config command.
func Template() string {
	return fmt.Sprintf(`# shortcutmaster configuration
# Uncomment a value to enable it. Environment variables and CLI flags
# override config values.

[defaults]
# mode = "quiz"           # quiz or practical
# os = "windows"          # windows or mac ($%s)
# category = "all"        # all, General, Excel, Word, Browser
# count = 10              # Quiz length
# seed = 0                # Shuffle seed, 0 for random

[log]
# path = %q   # Log file ($%s)
`, EnvOS, DefaultLogPath(), EnvLog)
}
