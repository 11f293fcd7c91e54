package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

const mascotQuiz = `╭─────╮ ╭─────╮
│ Ctrl│+│  C  │
╰─────╯ ╰─────╯`

const mascotPractical = `╭──────────────╮
│ Hello world▌ │
╰──────────────╯`

// renderMascot shows a keycap pair for quizzes and a text field for
// practical tasks.
func renderMascot(quiz bool, cw int) string {
	art, fg := mascotPractical, theme.Secondary
	if quiz {
		art, fg = mascotQuiz, theme.Primary
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(fg).Render(art))
}
