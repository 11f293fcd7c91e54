// Package quiz is the play screen for shortcut quizzes.
package quiz

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/keys"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/screens/play"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/input"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
)

var bindings = play.Keys{
	Skip:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Skip (+1 mistake)")),
	Abandon: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
}

// QuizScreen asks for one shortcut at a time and judges the keys held.
type QuizScreen struct {
	engine *session.QuizEngine
	driver *play.Driver
	os     catalog.OS

	// releases is set once the terminal reports key releases. Without
	// them every press is treated as a complete chord.
	releases bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.KeyCapturer = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz over tasks. The session starts in Init.
func New(settings session.Settings, tasks []catalog.Shortcut, releases bool, clock session.Clock) *QuizScreen {
	engine := session.NewQuizEngine(tasks, settings.OS, clock)
	return &QuizScreen{
		engine:   engine,
		driver:   play.NewDriver(settings, engine, bindings),
		os:       settings.OS,
		releases: releases,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.driver.Start()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return s.driver.Status()
}

func (s *QuizScreen) CapturesKeys() bool {
	return s.driver.Running()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return s.driver.Hints()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyboardEnhancementsMsg:
		s.releases = msg.SupportsEventTypes()
		return s, nil

	case tea.KeyPressMsg:
		// Holding a key must not count twice.
		if msg.Key().IsRepeat {
			return s, nil
		}

	case tea.KeyReleaseMsg:
		return s, s.driver.KeyUp(input.FromKey(msg.Key(), true))
	}

	if cmd, handled := s.driver.Update(msg); handled {
		return s, cmd
	}
	if k, ok := msg.(tea.KeyPressMsg); ok {
		return s, s.press(k.Key())
	}
	return s, nil
}

func (s *QuizScreen) press(k tea.Key) tea.Cmd {
	ev := input.FromKey(k, false)
	if ev.Key == "" {
		return nil
	}
	cmd := s.driver.KeyDown(ev)
	if !s.releases && !ev.IsModifier() {
		s.driver.KeyUp(keys.Event{Key: ev.Key})
	}
	return cmd
}
