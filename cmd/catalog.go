package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/shortcutmaster/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in shortcuts (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		practical, _ := cmd.Flags().GetBool("practical")
		out := cmd.OutOrStdout()
		if practical {
			printPractical(out, cat, settings.OS)
			return nil
		}
		printShortcuts(out, cat.Filter(settings.Category), settings.OS)
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("practical", false, "List practical tasks instead of quiz shortcuts")
}

func printShortcuts(w io.Writer, shortcuts []catalog.Shortcut, os catalog.OS) {
	fmt.Fprintf(w, "%-20s  %-8s  %-28s  %s\n", "ID", "Category", "Task", "Keys")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, s := range shortcuts {
		task := s.Task
		if len(task) > 28 {
			task = task[:25] + "..."
		}
		fmt.Fprintf(w, "%-20s  %-8s  %-28s  %s\n",
			s.ID, s.Category, task, strings.Join(s.Display(os), " + "))
	}
	fmt.Fprintf(w, "\n%d shortcuts (%s)\n", len(shortcuts), os)
}

func printPractical(w io.Writer, cat *catalog.Catalog, os catalog.OS) {
	for i, p := range cat.Practical {
		fmt.Fprintf(w, "%d. %s [%s]\n   %s\n", i+1, p.Title, p.Kind, p.Instruction(os))
	}
	fmt.Fprintf(w, "\n%d practical tasks (%s)\n", len(cat.Practical), os)
}
