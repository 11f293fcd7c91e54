package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shortcutmaster/internal/screen"
)

type stubScreen struct {
	title string
	inits int
	msgs  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func titles(r *Router) []string {
	out := make([]string, 0, r.Depth())
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

// A full round: home, a quiz, its result, a retry, then home again.
func TestSessionRoundTrip(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	quiz := &stubScreen{title: "Quiz"}
	r.Push(quiz)
	assert.Equal(t, 1, quiz.inits)
	assert.Equal(t, []string{"Home", "Quiz"}, titles(r))

	r.Replace(&stubScreen{title: "Results"})
	assert.Equal(t, []string{"Home", "Results"}, titles(r))

	retry := &stubScreen{title: "Quiz"}
	r.Replace(retry)
	assert.Equal(t, 1, retry.inits)
	assert.Equal(t, 2, r.Depth())

	r.PopToRoot()
	assert.Same(t, home, r.Active())
	assert.Zero(t, home.inits, "root is not re-initialized")
}

func TestPopStopsAtRoot(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Practical"})

	r.Pop()
	r.Pop()
	assert.Equal(t, []string{"Home"}, titles(r))
	assert.Equal(t, "Home", r.View(80, 24))
}

func TestReplaceRoot(t *testing.T) {
	r := New(&stubScreen{title: "Splash"})
	r.Replace(&stubScreen{title: "Home"})
	assert.Equal(t, []string{"Home"}, titles(r))
}

func TestNavigationMessages(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "Quiz"}})
	require.Equal(t, 2, r.Depth())

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "Results"}})
	assert.Equal(t, []string{"Home", "Results"}, titles(r))

	r.Update(PopScreenMsg{})
	assert.Equal(t, []string{"Home"}, titles(r))
	assert.Empty(t, home.msgs, "navigation messages are not forwarded")
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)
	quiz := &stubScreen{title: "Quiz"}
	r.Push(quiz)

	msg := tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	r.Update(msg)
	assert.Equal(t, []tea.Msg{msg}, quiz.msgs)
	assert.Empty(t, home.msgs)
}
