package quiz

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/screens/play"
	"github.com/abhisek/shortcutmaster/internal/session"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var (
	copyTask = catalog.Shortcut{
		ID: "g-copy", Category: catalog.CategoryGeneral, Task: "Copy",
		WinKeys: []string{"control", "c"}, MacKeys: []string{"meta", "c"},
		WinDisplay: []string{"Ctrl", "C"}, MacDisplay: []string{"⌘", "C"},
	}
	reloadTask = catalog.Shortcut{
		ID: "b-reload", Category: catalog.CategoryBrowser, Task: "Reload page",
		WinKeys: []string{"f5"}, MacKeys: []string{"meta", "r"},
		WinDisplay: []string{"F5"}, MacDisplay: []string{"⌘", "R"},
	}
)

func newQuiz(t *testing.T, releases bool, tasks ...catalog.Shortcut) *QuizScreen {
	t.Helper()
	settings := session.Settings{Mode: session.ModeQuiz, OS: catalog.OSWindows, QuestionCount: len(tasks)}
	s := New(settings, tasks, releases, &fixedClock{t: time.Unix(100, 0)})
	require.NotNil(t, s.Init())
	return s
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r), Mod: tea.ModCtrl}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// fire delivers the armed timer of kind as if its delay had passed.
func fire(t *testing.T, s *QuizScreen, kind session.TimerKind) tea.Cmd {
	t.Helper()
	tm, ok := s.engine.Controller().Pending(kind)
	require.True(t, ok, "no %s timer armed", kind)
	_, next := s.Update(play.TimerMsg{Timer: tm})
	return next
}

func TestQuizScreen_Basics(t *testing.T) {
	s := newQuiz(t, false, copyTask)
	assert.Equal(t, "Quiz", s.Title())
	assert.True(t, s.CapturesKeys())
	assert.Equal(t, "1/1 · 0.00s · ✗ 0", s.Status())
	assert.Len(t, s.KeyHints(), 2)
}

func TestQuizScreen_MatchOnLegacyTerminal(t *testing.T) {
	s := newQuiz(t, false, copyTask, reloadTask)

	_, cmd := s.Update(ctrlKey('c'))
	assert.NotNil(t, cmd, "success timer scheduled")
	ctrl := s.engine.Controller()
	assert.Equal(t, session.FeedbackSuccess, ctrl.Feedback())

	next := fire(t, s, session.TimerSuccess)
	assert.Nil(t, next)
	assert.Equal(t, 1, ctrl.Index())
	assert.Equal(t, 0, ctrl.Mistakes())
}

func TestQuizScreen_FinishReportsResult(t *testing.T) {
	s := newQuiz(t, false, reloadTask)

	s.Update(specialKey(tea.KeyF5))
	next := fire(t, s, session.TimerSuccess)
	require.NotNil(t, next)

	fin, ok := next().(screen.SessionFinishedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, fin.Result.TotalQuestions)
	assert.Equal(t, session.ModeQuiz, fin.Settings.Mode)
	assert.False(t, s.CapturesKeys())
}

func TestQuizScreen_OverPressCostsMistake(t *testing.T) {
	s := newQuiz(t, false, copyTask)

	s.Update(ctrlKey('x'))
	ctrl := s.engine.Controller()
	assert.Equal(t, 1, ctrl.Mistakes())
	assert.Equal(t, session.FeedbackError, ctrl.Feedback())
	assert.Empty(t, s.engine.Held(), "legacy presses release immediately")

	fire(t, s, session.TimerCooldown)
	assert.Equal(t, session.FeedbackNone, ctrl.Feedback())
	assert.Equal(t, 0, ctrl.Index())
}

func TestQuizScreen_RepeatIgnored(t *testing.T) {
	s := newQuiz(t, false, copyTask)
	msg := ctrlKey('x')
	msg.IsRepeat = true

	_, cmd := s.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.engine.Controller().Mistakes())
}

func TestQuizScreen_ReleaseEvents(t *testing.T) {
	s := newQuiz(t, true, copyTask)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeftCtrl, Mod: tea.ModCtrl})
	assert.Equal(t, "control", s.engine.Held().String())

	s.Update(tea.KeyReleaseMsg{Code: tea.KeyLeftCtrl})
	assert.Empty(t, s.engine.Held())

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeftCtrl, Mod: tea.ModCtrl})
	s.Update(ctrlKey('c'))
	assert.Equal(t, session.FeedbackSuccess, s.engine.Controller().Feedback())
}

func TestQuizScreen_SkipWithTab(t *testing.T) {
	s := newQuiz(t, false, copyTask, reloadTask)

	s.Update(specialKey(tea.KeyTab))
	ctrl := s.engine.Controller()
	assert.Equal(t, 1, ctrl.Index())
	assert.Equal(t, 1, ctrl.Mistakes())
}

func TestQuizScreen_SkipIgnoredAfterMatch(t *testing.T) {
	s := newQuiz(t, false, copyTask, reloadTask)

	s.Update(ctrlKey('c'))
	s.Update(specialKey(tea.KeyTab))
	ctrl := s.engine.Controller()
	assert.Equal(t, 0, ctrl.Index())
	assert.Equal(t, 0, ctrl.Mistakes())
}

func TestQuizScreen_Abandon(t *testing.T) {
	s := newQuiz(t, false, copyTask)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, screen.GoHomeMsg{}, cmd())
	assert.False(t, s.CapturesKeys())

	_, tick := s.Update(play.TickMsg(time.Now()))
	assert.Nil(t, tick, "ticks stop once the session is over")
}

func TestQuizScreen_TickWhileRunning(t *testing.T) {
	s := newQuiz(t, false, copyTask)
	_, cmd := s.Update(play.TickMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestQuizScreen_PartialComboHint(t *testing.T) {
	s := newQuiz(t, true, copyTask)
	assert.Contains(t, s.View(80, 24), "Press the shortcut")

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeftCtrl, Mod: tea.ModCtrl})
	assert.Contains(t, s.View(80, 24), "Keep going")

	s.Update(tea.KeyReleaseMsg{Code: tea.KeyLeftCtrl})
	assert.Contains(t, s.View(80, 24), "Press the shortcut")
}

func TestQuizScreen_View(t *testing.T) {
	s := newQuiz(t, false, copyTask)
	view := s.View(80, 24)
	assert.Contains(t, view, "Copy")
	assert.Contains(t, view, "Ctrl")
	assert.Contains(t, view, "GENERAL")
}
