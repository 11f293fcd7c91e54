package practical

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/components"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

func (s *PracticalScreen) View(width, height int) string {
	ctrl := s.engine.Controller()
	task, ok := s.engine.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)
	surface := s.engine.Surface()

	title := theme.Title.Width(cw).Render(task.Title)
	instruction := theme.Subtitle.Width(cw).Render(task.Instruction(s.engine.OS()))

	gap := "\n"
	if !layout.IsCompactHeight(height) {
		gap = "\n\n"
	}

	parts := []string{title, instruction, gap}
	for i, b := range surface.Fields {
		parts = append(parts, components.Field(surface.Labels[i], b, i == surface.Focus(), cw))
	}

	var status string
	switch {
	case ctrl.Warning():
		status = theme.Warning.Render("Mouse disabled: use the keyboard (+1 mistake)")
	case ctrl.Feedback() == session.FeedbackSuccess:
		status = theme.Correct.Render("✓ Task complete!")
	case surface.Clipboard() != "":
		status = theme.Hint.Render("Clipboard: " + clip(surface.Clipboard(), cw-12))
	default:
		status = theme.Hint.Render("Mouse is disabled for this task")
	}
	parts = append(parts, gap, status, gap,
		components.NewProgressBar(ctrl.Index(), ctrl.Total(), cw).View())

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return components.Frame(body, width, height, accent(ctrl))
}

func accent(c *session.Controller) color.Color {
	switch {
	case c.Warning():
		return theme.Accent
	case c.Feedback() == session.FeedbackSuccess:
		return theme.Success
	}
	return theme.Primary
}

// clip shortens s to at most n runes.
func clip(s string, n int) string {
	r := []rune(s)
	if n < 2 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
