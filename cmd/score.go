package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shortcutmaster/internal/score"
	"github.com/abhisek/shortcutmaster/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:     "score",
	Short:   "Compute the score for a finished session",
	Example: `  shortcutmaster score --questions 10 --elapsed-ms 15000 --mistakes 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, _ := cmd.Flags().GetInt("questions")
		elapsed, _ := cmd.Flags().GetInt64("elapsed-ms")
		mistakes, _ := cmd.Flags().GetInt("mistakes")
		if questions < 0 || elapsed < 0 || mistakes < 0 {
			return fmt.Errorf("values must not be negative")
		}

		b := score.Explain(session.GameResult{
			ElapsedMs:      elapsed,
			CorrectCount:   questions,
			MistakeCount:   mistakes,
			TotalQuestions: questions,
		})
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Base:       %8s\n", score.FormatPoints(b.Base))
		fmt.Fprintf(out, "Time:      -%8s  (%ss)\n", score.FormatPoints(b.TimePenalty), score.FormatElapsed(elapsed))
		fmt.Fprintf(out, "Mistakes:  -%8s  (%d)\n", score.FormatPoints(b.MistakePenalty), mistakes)
		fmt.Fprintf(out, "Score:      %8s\n", score.FormatPoints(b.Total))
		return nil
	},
}

func init() {
	scoreCmd.Flags().Int("questions", session.DefaultQuestionCount, "Number of questions in the session")
	scoreCmd.Flags().Int64("elapsed-ms", 0, "Total elapsed time in milliseconds")
	scoreCmd.Flags().Int("mistakes", 0, "Number of mistakes")
}
