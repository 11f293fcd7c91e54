package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/router"
	"github.com/abhisek/shortcutmaster/internal/score"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/screens/home"
	"github.com/abhisek/shortcutmaster/internal/screens/practical"
	"github.com/abhisek/shortcutmaster/internal/screens/quiz"
	"github.com/abhisek/shortcutmaster/internal/screens/result"
	"github.com/abhisek/shortcutmaster/internal/screens/welcome"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// Options configures a TUI run.
type Options struct {
	Catalog *catalog.Catalog

	// Settings preselect the home screen, and drive the first session when
	// AutoStart is set.
	Settings  session.Settings
	AutoStart bool

	// Splash plays the intro before the home screen. Ignored with AutoStart.
	Splash bool

	// LogPath receives the session log. Empty discards it.
	LogPath string

	// Clock times sessions. Nil uses the system clock.
	Clock session.Clock
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	catalog *catalog.Catalog
	clock   session.Clock

	autoStart session.Settings
	auto      bool

	// releases is set once the terminal reports key release events.
	releases bool

	// err is the last session start failure, shown in the footer.
	err error

	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the home screen, or the splash
// that leads to it.
func newAppModel(opts Options) AppModel {
	var root screen.Screen = home.New(opts.Catalog, opts.Settings)
	if opts.Splash && !opts.AutoStart {
		root = welcome.New(func() screen.Screen {
			return home.New(opts.Catalog, opts.Settings)
		})
	}
	return AppModel{
		router:    router.New(root),
		catalog:   opts.Catalog,
		clock:     opts.Clock,
		autoStart: opts.Settings,
		auto:      opts.AutoStart,
	}
}

func (m AppModel) Init() tea.Cmd {
	if !m.auto {
		return m.router.Active().Init()
	}
	settings := m.autoStart
	return func() tea.Msg { return screen.StartSessionMsg{Settings: settings} }
}

// capturing reports whether the active screen owns the keyboard.
func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.KeyCapturer)
	return ok && c.CapturesKeys()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyboardEnhancementsMsg:
		m.releases = msg.SupportsEventTypes()
		log.Printf("app: keyboard enhancements release_events=%t", m.releases)

	case screen.StartSessionMsg:
		return m.startSession(msg.Settings)

	case screen.SessionFinishedMsg:
		r := msg.Result
		log.Printf("app: result id=%s mode=%s elapsed_ms=%d mistakes=%d questions=%d score=%d",
			r.SessionID, msg.Settings.Mode, r.ElapsedMs, r.MistakeCount, r.TotalQuestions, score.Compute(r))
		return m, m.router.Replace(result.New(msg.Settings, r))

	case screen.GoHomeMsg:
		return m, m.router.PopToRoot()

	case tea.MouseClickMsg:
		click, ok := m.contentClick(msg)
		if !ok {
			return m, nil
		}
		return m, m.router.Update(click)

	case tea.KeyPressMsg:
		m.err = nil
		if !m.capturing() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				if m.router.Depth() > 1 {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// startSession builds the sequence for settings and shows its play screen.
// A session started from a result screen replaces it.
func (m AppModel) startSession(settings session.Settings) (tea.Model, tea.Cmd) {
	s, err := m.newPlayScreen(settings)
	if err != nil {
		log.Printf("app: start session: %v", err)
		m.err = err
		return m, nil
	}
	m.err = nil
	if m.router.Depth() > 1 {
		return m, m.router.Replace(s)
	}
	return m, m.router.Push(s)
}

func (m AppModel) newPlayScreen(settings session.Settings) (screen.Screen, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	switch settings.Mode {
	case session.ModePractical:
		tasks, err := session.PracticalSequence(m.catalog)
		if err != nil {
			return nil, err
		}
		return practical.New(settings, tasks, m.clock), nil
	default:
		tasks, err := session.BuildQuizSequence(m.catalog, settings, session.NewRand(settings.Seed))
		if err != nil {
			return nil, err
		}
		return quiz.New(settings, tasks, m.releases, m.clock), nil
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if !m.capturing() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return hints
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.KeyboardEnhancements.ReportEventTypes = true
	return v
}

// contentClick translates a click into content coordinates. Clicks on the
// header, the footer or the too-small notice are dropped.
func (m AppModel) contentClick(msg tea.MouseClickMsg) (tea.MouseClickMsg, bool) {
	if m.width == 0 || m.height == 0 || layout.IsTooSmall(m.width, m.height) {
		return msg, false
	}
	header, footer := m.chrome()
	top := lipgloss.Height(header)
	if msg.Y < top || msg.Y >= top+layout.ContentHeight(header, footer, m.height) {
		return msg, false
	}
	msg.Y -= top
	return msg, true
}

// chrome renders the header and footer around the active screen.
func (m AppModel) chrome() (header, footer string) {
	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if p, ok := active.(screen.StatusProvider); ok {
		status = p.Status()
	}
	if m.err != nil {
		status = lipgloss.NewStyle().Foreground(theme.Error).Render(m.err.Error())
	}

	return layout.RenderHeader(title, status, m.width), layout.RenderFooter(m.footerHints(), m.width)
}

// render composes header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header, footer := m.chrome()
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, "shortcutmaster")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
