package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/config"
	"github.com/abhisek/shortcutmaster/internal/session"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	addSessionFlags(c)
	c.PersistentFlags().String("config", "", "")
	c.PersistentFlags().String("log", "", "")
	require.NoError(t, c.ParseFlags(args))
	return c
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func noEnv(string) string { return "" }

func builtin(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	return cat
}

func TestResolveSettingsDefaults(t *testing.T) {
	c := newTestCmd(t, "--config", filepath.Join(t.TempDir(), "none.toml"))
	fileCfg, err := loadFileConfig(c, noEnv)
	require.NoError(t, err)

	s, err := resolveSettings(c, builtin(t), fileCfg)
	require.NoError(t, err)
	assert.Equal(t, session.ModeQuiz, s.Mode)
	assert.Equal(t, detectOS(), s.OS)
	assert.Equal(t, catalog.CategoryAll, s.Category)
	assert.Equal(t, session.DefaultQuestionCount, s.QuestionCount)
	assert.Zero(t, s.Seed)
}

func TestResolveSettingsPrecedence(t *testing.T) {
	path := writeConfig(t, `
[defaults]
mode = "practical"
os = "windows"
category = "excel"
count = 20
seed = 9

[log]
path = "file.log"
`)
	env := map[string]string{config.EnvOS: "mac"}
	getenv := func(k string) string { return env[k] }

	t.Run("file and env", func(t *testing.T) {
		c := newTestCmd(t, "--config", path)
		fileCfg, err := loadFileConfig(c, getenv)
		require.NoError(t, err)
		s, err := resolveSettings(c, builtin(t), fileCfg)
		require.NoError(t, err)

		assert.Equal(t, session.ModePractical, s.Mode)
		assert.Equal(t, catalog.OSMac, s.OS, "env beats file")
		assert.Equal(t, catalog.CategoryExcel, s.Category)
		assert.Equal(t, 20, s.QuestionCount)
		assert.Equal(t, uint64(9), s.Seed)
		assert.Equal(t, "file.log", resolveLogPath(c, fileCfg))
	})

	t.Run("flags win", func(t *testing.T) {
		c := newTestCmd(t, "--config", path, "--mode", "quiz", "--os", "windows",
			"--count", "5", "--seed", "0", "--log", "flag.log")
		fileCfg, err := loadFileConfig(c, getenv)
		require.NoError(t, err)
		s, err := resolveSettings(c, builtin(t), fileCfg)
		require.NoError(t, err)

		assert.Equal(t, session.ModeQuiz, s.Mode)
		assert.Equal(t, catalog.OSWindows, s.OS)
		assert.Equal(t, catalog.CategoryExcel, s.Category, "unset flag keeps the file value")
		assert.Equal(t, 5, s.QuestionCount)
		assert.Zero(t, s.Seed)
		assert.Equal(t, "flag.log", resolveLogPath(c, fileCfg))
	})
}

func TestResolveSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{name: "mode", args: []string{"--mode", "arcade"}, is: session.ErrInvalidMode},
		{name: "os", args: []string{"--os", "beos"}, is: session.ErrInvalidOS},
		{name: "count", args: []string{"--count", "0"}, is: session.ErrInvalidCount},
		{name: "category", args: []string{"--category", "Photoshop"}, msg: "unknown category"},
		{name: "seed", args: []string{"--seed=-1"}, msg: "seed must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCmd(t, tt.args...)
			_, err := resolveSettings(c, builtin(t), config.FileConfig{})
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestLoadFileConfigRejectsUnknownKeys(t *testing.T) {
	c := newTestCmd(t, "--config", writeConfig(t, "[defaults]\nspeed = 3\n"))
	_, err := loadFileConfig(c, noEnv)
	assert.ErrorContains(t, err, "unknown config key")
}

func TestWriteTemplateKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, writeTemplate(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template(), string(data))

	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))
	require.NoError(t, writeTemplate(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))
}

func TestScoreCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"score", "--questions", "10", "--elapsed-ms", "15000", "--mistakes", "2"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Score:         7,500")
	assert.Contains(t, out.String(), "15.00s")
}

func TestPrintShortcuts(t *testing.T) {
	cat := builtin(t)
	var out bytes.Buffer
	printShortcuts(&out, cat.Filter(catalog.CategoryBrowser), catalog.OSMac)
	assert.Contains(t, out.String(), "b-reload")
	assert.Contains(t, out.String(), "⌘ + R")
	assert.NotContains(t, out.String(), "g-copy")
}

func TestPrintPractical(t *testing.T) {
	var out bytes.Buffer
	printPractical(&out, builtin(t), catalog.OSMac)
	assert.Contains(t, out.String(), "Cmd+C")
	assert.Contains(t, out.String(), "4 practical tasks")
}
