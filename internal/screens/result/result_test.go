package result

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/session"
)

func testResult() (session.Settings, session.GameResult) {
	settings := session.Settings{
		Mode:          session.ModeQuiz,
		OS:            catalog.OSWindows,
		Category:      catalog.CategoryAll,
		QuestionCount: 10,
		Seed:          42,
	}
	res := session.GameResult{
		SessionID:      "s-1",
		ElapsedMs:      5000,
		CorrectCount:   10,
		MistakeCount:   2,
		TotalQuestions: 10,
	}
	return settings, res
}

func TestResultScreen_View(t *testing.T) {
	s := New(testResult())
	assert.Equal(t, "Results", s.Title())

	view := s.View(80, 30)
	assert.Contains(t, view, "8,500")
	assert.Contains(t, view, "5.00s")
	assert.Contains(t, view, "Play again")
}

func TestResultScreen_RetryKeepsSettings(t *testing.T) {
	s := New(testResult())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(screen.StartSessionMsg)
	require.True(t, ok)
	assert.Equal(t, session.ModeQuiz, msg.Settings.Mode)
	assert.Equal(t, 10, msg.Settings.QuestionCount)
	assert.Zero(t, msg.Settings.Seed, "retry reshuffles")
}

func TestResultScreen_RetryShortcut(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	assert.IsType(t, screen.StartSessionMsg{}, cmd())
}

func TestResultScreen_HomeButton(t *testing.T) {
	s := New(testResult())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, screen.GoHomeMsg{}, cmd())
}

func TestResultScreen_Esc(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, screen.GoHomeMsg{}, cmd())
}
