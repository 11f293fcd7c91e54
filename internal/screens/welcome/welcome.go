package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/router"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1000 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// keyboardArt is drawn row by row during the first phase.
var keyboardArt = []string{
	"╭───┬───┬───┬───┬───┬───┬───╮",
	"│Esc│ Q │ W │ E │ R │ T │ ⌫ │",
	"├───┴┬──┴┬──┴┬──┴┬──┴┬──┴───┤",
	"│Ctrl│ A │ S │ D │ F │ Enter│",
	"├────┼───┼───┼───┼───┼──────┤",
	"│Shft│ Z │ X │ C │ V │  Alt │",
	"╰────┴───┴───┴───┴───┴──────╯",
}

// pressed cycles through the combos highlighted once the board is drawn.
var pressed = []string{"Ctrl+C", "Ctrl+V", "Ctrl+Z", "Alt+Tab"}

type tickMsg time.Time

// WelcomeScreen plays a short splash before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory's screen.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the splash.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// visibleRows is how much of the keyboard has been drawn so far.
func (w *WelcomeScreen) visibleRows() int {
	if w.elapsed >= phase1End {
		return len(keyboardArt)
	}
	n := int(w.elapsed*time.Duration(len(keyboardArt))/phase1End) + 1
	return min(n, len(keyboardArt))
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	board := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(strings.Join(keyboardArt[:w.visibleRows()], "\n"))
	sections = append(sections, board)

	if w.elapsed >= phase1End {
		combo := pressed[(w.tickCount/5)%len(pressed)]
		sections = append(sections, "", theme.KeycapHeld.Render(combo))
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline)

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
