package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session right away, skipping the home screen",
	Example: `  shortcutmaster play --mode quiz --category Excel --count 5
  shortcutmaster play --mode practical --os mac`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}
