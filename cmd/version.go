package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shortcutmaster/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Builtin()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "shortcutmaster %s (catalog %s)\n", version, cat.Version)
		return nil
	},
}
