package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/screens/home"
	"github.com/abhisek/shortcutmaster/internal/screens/practical"
	"github.com/abhisek/shortcutmaster/internal/screens/quiz"
	"github.com/abhisek/shortcutmaster/internal/screens/result"
	"github.com/abhisek/shortcutmaster/internal/screens/welcome"
	"github.com/abhisek/shortcutmaster/internal/session"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func quizSettings() session.Settings {
	return session.Settings{
		Mode:          session.ModeQuiz,
		OS:            catalog.OSWindows,
		Category:      catalog.CategoryAll,
		QuestionCount: 5,
		Seed:          1,
	}
}

func newTestApp(t *testing.T, auto bool) AppModel {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	m := newAppModel(Options{
		Catalog:   cat,
		Settings:  quizSettings(),
		AutoStart: auto,
		Clock:     &fixedClock{t: time.Unix(0, 0)},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestInitAutoStart(t *testing.T) {
	assert.Nil(t, newTestApp(t, false).Init())

	cmd := newTestApp(t, true).Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(screen.StartSessionMsg)
	require.True(t, ok)
	assert.Equal(t, quizSettings(), msg.Settings)
}

func TestStartQuizPushesPlayScreen(t *testing.T) {
	m := newTestApp(t, false)
	require.IsType(t, &home.HomeScreen{}, m.router.Active())

	m, cmd := update(t, m, screen.StartSessionMsg{Settings: quizSettings()})
	assert.NotNil(t, cmd, "play screens start ticking")
	assert.Equal(t, 2, m.router.Depth())
	require.IsType(t, &quiz.QuizScreen{}, m.router.Active())
	assert.True(t, m.capturing())

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, view.MouseMode)
	assert.True(t, view.KeyboardEnhancements.ReportEventTypes)
	assert.Contains(t, m.render(), "1/5")
}

func TestStartPractical(t *testing.T) {
	m := newTestApp(t, false)
	s := quizSettings()
	s.Mode = session.ModePractical

	m, _ = update(t, m, screen.StartSessionMsg{Settings: s})
	assert.IsType(t, &practical.PracticalScreen{}, m.router.Active())
}

func TestInvalidSettingsStayHome(t *testing.T) {
	m := newTestApp(t, false)
	s := quizSettings()
	s.OS = "beos"

	m, cmd := update(t, m, screen.StartSessionMsg{Settings: s})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
	assert.ErrorIs(t, m.err, session.ErrInvalidOS)
	assert.Contains(t, m.render(), "invalid os")
}

func TestEscAbandonsToHome(t *testing.T) {
	m := newTestApp(t, false)
	m, _ = update(t, m, screen.StartSessionMsg{Settings: quizSettings()})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, screen.GoHomeMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, 1, m.router.Depth())
}

func TestFinishShowsResultThenRetry(t *testing.T) {
	m := newTestApp(t, false)
	m, _ = update(t, m, screen.StartSessionMsg{Settings: quizSettings()})

	res := session.GameResult{SessionID: "x", ElapsedMs: 2000, CorrectCount: 5, TotalQuestions: 5}
	m, _ = update(t, m, screen.SessionFinishedMsg{Settings: quizSettings(), Result: res})
	assert.Equal(t, 2, m.router.Depth())
	require.IsType(t, &result.ResultScreen{}, m.router.Active())
	assert.False(t, m.capturing())

	m, _ = update(t, m, screen.StartSessionMsg{Settings: quizSettings()})
	assert.Equal(t, 2, m.router.Depth(), "retry replaces the result screen")
	assert.IsType(t, &quiz.QuizScreen{}, m.router.Active())
}

func TestClicksOutsideContentAreIgnored(t *testing.T) {
	m := newTestApp(t, false)
	s := quizSettings()
	s.Mode = session.ModePractical
	m, _ = update(t, m, screen.StartSessionMsg{Settings: s})

	header, footer := m.chrome()
	top := lipgloss.Height(header)
	bottom := 32 - lipgloss.Height(footer)

	for _, y := range []int{0, top - 1, bottom, 31} {
		var cmd tea.Cmd
		m, cmd = update(t, m, tea.MouseClickMsg{X: 10, Y: y, Button: tea.MouseLeft})
		assert.Nil(t, cmd, "row %d", y)
	}
	m, cmd := update(t, m, tea.MouseClickMsg{X: 10, Y: top, Button: tea.MouseLeft})
	assert.NotNil(t, cmd, "a click on the task costs a mistake")
	assert.Contains(t, m.render(), "Mouse disabled")
}

func TestCtrlCQuitsOutsideSessions(t *testing.T) {
	m := newTestApp(t, false)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewTooSmall(t *testing.T) {
	m := newTestApp(t, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestSplashLeadsHome(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	m := newAppModel(Options{Catalog: cat, Settings: quizSettings(), Splash: true})
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	require.True(t, ok)
	assert.NotNil(t, m.Init(), "splash animates")

	m, cmd := update(t, m, tea.KeyPressMsg{Code: 'x'})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	_, ok = m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestSplashSkippedWithAutoStart(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	m := newAppModel(Options{Catalog: cat, Settings: quizSettings(), Splash: true, AutoStart: true})
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}
