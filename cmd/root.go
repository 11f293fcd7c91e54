package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shortcutmaster",
	Short: "Keyboard shortcut trainer",
	Long: `Shortcut Master drills keyboard shortcuts in the terminal.

Quiz mode asks for one shortcut at a time and checks the exact keys you
hold. Practical mode has you copy, cut, delete and tab between fields
without touching the mouse.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addSessionFlags(rootCmd)
	rootCmd.Flags().Bool("no-splash", false, "Skip the intro animation")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides SHORTCUTMASTER_CONFIG env var)")
	rootCmd.PersistentFlags().String("log", "", "Write a session log to this file (overrides SHORTCUTMASTER_LOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
