package quiz

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/combo"
	"github.com/abhisek/shortcutmaster/internal/keys"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/components"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

var heldLabels = map[string]string{
	keys.Control: "Ctrl",
	keys.Shift:   "Shift",
	keys.Alt:     "Alt",
	keys.Meta:    "Meta",
}

func (s *QuizScreen) View(width, height int) string {
	ctrl := s.engine.Controller()
	task, ok := s.engine.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)

	badge := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(string(task.Category)))

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(task.Task)

	target := components.Keycaps(task.Display(s.os), ctrl.Feedback() == session.FeedbackSuccess)

	var feedback string
	switch ctrl.Feedback() {
	case session.FeedbackSuccess:
		feedback = theme.Correct.Render("✓ Correct!")
	case session.FeedbackError:
		feedback = theme.Incorrect.Render("✗ Not that one, try again")
	default:
		feedback = theme.Hint.Render("Press the shortcut")
		if s.driver.Verdict() == combo.VerdictPending && s.engine.Held().Len() > 0 {
			feedback = theme.Hint.Render("Keep going…")
		}
	}

	held := components.Keycaps(labelsFor(s.engine.Held()), false)
	if held == "" {
		held = theme.Hint.Render("no keys held")
	}

	progress := components.NewProgressBar(ctrl.Index(), ctrl.Total(), cw).View()

	gap := "\n\n"
	if layout.IsCompactHeight(height) {
		gap = "\n"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		badge, gap, title, gap, target, gap, feedback, "", held, gap, progress,
	)

	return components.Frame(body, width, height, accent(ctrl.Feedback()))
}

func accent(f session.Feedback) color.Color {
	switch f {
	case session.FeedbackSuccess:
		return theme.Success
	case session.FeedbackError:
		return theme.Error
	}
	return theme.Primary
}

// labelsFor renders a held set with readable modifier names.
func labelsFor(held keys.Set) []string {
	names := held.Sorted()
	out := make([]string, len(names))
	for i, n := range names {
		if l, ok := heldLabels[n]; ok {
			out[i] = l
		} else if len(n) == 1 {
			out[i] = strings.ToUpper(n)
		} else {
			out[i] = strings.ToUpper(n[:1]) + n[1:]
		}
	}
	return out
}
