// Package practical is the play screen for keyboard-only editing tasks.
package practical

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/screens/play"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/input"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
)

// Plain tab moves focus on the surface, so skip needs a chord.
var bindings = play.Keys{
	Skip:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("Ctrl+N", "Skip (+1 mistake)")),
	Abandon: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
}

// PracticalScreen hosts the editable fields of one task at a time.
type PracticalScreen struct {
	engine *session.PracticalEngine
	driver *play.Driver
}

var _ screen.Screen = (*PracticalScreen)(nil)
var _ screen.KeyHintProvider = (*PracticalScreen)(nil)
var _ screen.KeyCapturer = (*PracticalScreen)(nil)
var _ screen.StatusProvider = (*PracticalScreen)(nil)

// New creates a practical session over tasks. The session starts in Init.
func New(settings session.Settings, tasks []catalog.PracticalTask, clock session.Clock) *PracticalScreen {
	engine := session.NewPracticalEngine(tasks, settings.OS, clock)
	return &PracticalScreen{
		engine: engine,
		driver: play.NewDriver(settings, engine, bindings),
	}
}

func (s *PracticalScreen) Init() tea.Cmd {
	return s.driver.Start()
}

func (s *PracticalScreen) Title() string {
	return "Practical"
}

func (s *PracticalScreen) Status() string {
	return s.driver.Status()
}

func (s *PracticalScreen) CapturesKeys() bool {
	return s.driver.Running()
}

func (s *PracticalScreen) KeyHints() []layout.KeyHint {
	return append(s.driver.Hints(), layout.KeyHint{Key: "Tab", Description: "Next field"})
}

func (s *PracticalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, handled := s.driver.Update(msg); handled {
		return s, cmd
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s, s.edit(func() tea.Cmd {
			return s.driver.KeyDown(input.FromKey(msg.Key(), false))
		})

	case tea.PasteMsg:
		return s, s.edit(func() tea.Cmd {
			return s.driver.Handle(s.engine.Paste(msg.Content))
		})

	// The app only forwards clicks that land on the task area.
	case tea.MouseClickMsg:
		return s, s.driver.Handle(s.engine.MouseDown())
	}
	return s, nil
}

// edit applies a surface change and mirrors a new clipboard value to the
// terminal.
func (s *PracticalScreen) edit(apply func() tea.Cmd) tea.Cmd {
	before := s.engine.Surface().Clipboard()
	cmd := apply()
	if after := s.engine.Surface().Clipboard(); after != before {
		cmd = tea.Batch(cmd, tea.SetClipboard(after))
	}
	return cmd
}
