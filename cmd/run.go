package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/shortcutmaster/internal/app"
	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/config"
	"github.com/abhisek/shortcutmaster/internal/session"
)

var errNotTerminal = errors.New("shortcutmaster needs an interactive terminal")

// envLookup reads overrides from the process environment.
var envLookup = os.Getenv

// addSessionFlags registers the flags that pick session settings.
func addSessionFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("mode", string(session.ModeQuiz), "Game mode: quiz or practical")
	f.String("os", "", "Keyboard layout: windows or mac (default: detected)")
	f.String("category", string(catalog.CategoryAll), "Quiz category, or all")
	f.Int("count", session.DefaultQuestionCount, "Number of quiz questions")
	f.Int64("seed", 0, "Shuffle seed for a repeatable quiz (0 for random)")
}

// runApp resolves settings, then launches the TUI. autoStart skips the
// home screen.
func runApp(cmd *cobra.Command, autoStart bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	cat, err := catalog.Builtin()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	fileCfg, err := loadFileConfig(cmd, envLookup)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, cat, fileCfg)
	if err != nil {
		return err
	}

	// play has no --no-splash flag; it never shows the splash.
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	return app.Run(app.Options{
		Catalog:   cat,
		Settings:  settings,
		AutoStart: autoStart,
		Splash:    !noSplash,
		LogPath:   resolveLogPath(cmd, fileCfg),
	})
}

// loadFileConfig reads the config file named by --config, the environment
// or the default XDG location, and overlays environment overrides.
func loadFileConfig(cmd *cobra.Command, getenv func(string) string) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(configPath(cmd))
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg.ApplyEnv(getenv)
	return fileCfg, nil
}

// configPath returns --config if given, else $SHORTCUTMASTER_CONFIG or the
// XDG default.
func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.Path()
}

// resolveSettings merges flags over env and file values. Flags win only
// when set explicitly.
func resolveSettings(cmd *cobra.Command, cat *catalog.Catalog, fileCfg config.FileConfig) (session.Settings, error) {
	flags := cmd.Flags()
	mode, _ := flags.GetString("mode")
	osName, _ := flags.GetString("os")
	category, _ := flags.GetString("category")
	count, _ := flags.GetInt("count")
	seed, _ := flags.GetInt64("seed")

	d := fileCfg.Defaults
	applyStringConfig(cmd, "mode", &mode, d.Mode)
	applyStringConfig(cmd, "os", &osName, d.OS)
	applyStringConfig(cmd, "category", &category, d.Category)
	applyIntConfig(cmd, "count", &count, d.Count)
	applyInt64Config(cmd, "seed", &seed, d.Seed)

	var s session.Settings
	var ok bool
	if s.Mode, ok = session.ParseMode(mode); !ok {
		return s, fmt.Errorf("%w: %q (want quiz or practical)", session.ErrInvalidMode, mode)
	}
	if osName == "" {
		s.OS = detectOS()
	} else if s.OS, ok = catalog.ParseOS(osName); !ok {
		return s, fmt.Errorf("%w: %q (want windows or mac)", session.ErrInvalidOS, osName)
	}
	if s.Category, ok = cat.ParseCategory(category); !ok {
		return s, fmt.Errorf("unknown category %q", category)
	}
	if count <= 0 {
		return s, fmt.Errorf("%w: got %d", session.ErrInvalidCount, count)
	}
	if seed < 0 {
		return s, fmt.Errorf("seed must not be negative: got %d", seed)
	}
	s.QuestionCount = count
	s.Seed = uint64(seed)
	return s, s.Validate()
}

func resolveLogPath(cmd *cobra.Command, fileCfg config.FileConfig) string {
	path, _ := cmd.Flags().GetString("log")
	applyStringConfig(cmd, "log", &path, fileCfg.Log.Path)
	return path
}

// detectOS picks the mac layout on macOS and the windows layout elsewhere.
func detectOS() catalog.OS {
	if runtime.GOOS == "darwin" {
		return catalog.OSMac
	}
	return catalog.OSWindows
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
