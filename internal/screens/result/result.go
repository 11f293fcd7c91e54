// Package result shows the score of a finished session.
package result

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/score"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/components"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

var (
	retryKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Play again"))
	homeKey  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Home"))
)

// ResultScreen displays the score breakdown of one session.
type ResultScreen struct {
	settings session.Settings
	result   session.GameResult
	buttons  components.ButtonRow
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen. Retry replays with the same settings and a
// fresh shuffle.
func New(settings session.Settings, result session.GameResult) *ResultScreen {
	s := &ResultScreen{settings: settings, result: result}
	s.buttons = components.NewButtonRow(
		components.NewButton("Play again", true, s.retry),
		components.NewButton("Home", false, home),
	)
	return s
}

func (s *ResultScreen) retry() tea.Cmd {
	next := s.settings
	next.Seed = 0
	return func() tea.Msg { return screen.StartSessionMsg{Settings: next} }
}

func home() tea.Cmd {
	return func() tea.Msg { return screen.GoHomeMsg{} }
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return append([]layout.KeyHint{{Key: "←/→", Description: "Choose"}, {Key: "Enter", Description: "Select"}},
		layout.Hints(retryKey, homeKey)...)
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, retryKey):
			return s, s.retry()
		case key.Matches(kmsg, homeKey):
			return s, home()
		}
	}
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	b := score.Explain(s.result)
	cw := components.ContentWidth(width)

	heading := theme.Title.Width(cw).Render("Results")
	sub := theme.Subtitle.Width(cw).Render(fmt.Sprintf("%s · %s · %d tasks",
		s.settings.Mode, s.settings.OS, s.result.TotalQuestions))

	total := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(score.FormatPoints(b.Total))

	stat := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			theme.Hint.Render(label),
			theme.Body.Bold(true).Render(value))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Clear time", score.FormatElapsed(s.result.ElapsedMs)+"s"),
		"      ",
		stat("Mistakes", fmt.Sprintf("%d", s.result.MistakeCount)),
	)

	breakdown := theme.Hint.Render(fmt.Sprintf("%s base − %s time − %s mistakes",
		score.FormatPoints(b.Base), score.FormatPoints(b.TimePenalty), score.FormatPoints(b.MistakePenalty)))

	card := components.Card(lipgloss.JoinVertical(lipgloss.Center,
		theme.Hint.Render("TOTAL SCORE"), total, "", stats, "", breakdown), cw)

	body := lipgloss.JoinVertical(lipgloss.Center,
		heading, sub, "", card, "", s.buttons.View())
	return components.Frame(body, width, height, theme.Primary)
}
