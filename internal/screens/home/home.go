// Package home is the start screen where the player picks a mode and its
// settings.
package home

import (
	"slices"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/components"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
)

// Option rows, followed by the menu.
const (
	rowMode = iota
	rowOS
	rowCategory
	rowCount
	rowStart
	rowQuit
	rowTotal
)

var homeKeys = struct {
	Prev, Next, Start, Quit key.Binding
}{
	Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Change")),
	Next:  key.NewBinding(key.WithKeys("right", "l", "space")),
	Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Start")),
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	options []components.Option
	focus   int
	seed    uint64
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen preselecting defaults. The default seed is used
// for sessions started from here.
func New(cat *catalog.Catalog, defaults session.Settings) *HomeScreen {
	categories := []string{string(catalog.CategoryAll)}
	for _, c := range cat.Categories() {
		categories = append(categories, string(c))
	}

	category := string(defaults.Category)
	if category == "" {
		category = string(catalog.CategoryAll)
	}
	count := defaults.QuestionCount
	if count == 0 {
		count = session.DefaultQuestionCount
	}

	// A count chosen on the command line joins the offered lengths.
	lengths := slices.Clone(session.QuestionCountOptions)
	if !slices.Contains(lengths, count) {
		lengths = append(lengths, count)
		slices.Sort(lengths)
	}
	counts := make([]string, len(lengths))
	for i, n := range lengths {
		counts[i] = strconv.Itoa(n)
	}

	h := &HomeScreen{
		options: []components.Option{
			rowMode:     components.NewOption("Mode", []string{string(session.ModeQuiz), string(session.ModePractical)}, string(defaults.Mode)),
			rowOS:       components.NewOption("Keyboard", []string{string(catalog.OSWindows), string(catalog.OSMac)}, string(defaults.OS)),
			rowCategory: components.NewOption("Category", categories, category),
			rowCount:    components.NewOption("Questions", counts, strconv.Itoa(count)),
		},
		seed: defaults.Seed,
	}
	h.focus = rowStart
	return h
}

// Settings returns the session settings currently selected.
func (h *HomeScreen) Settings() session.Settings {
	count, _ := strconv.Atoi(h.options[rowCount].Value())
	return session.Settings{
		Mode:          session.Mode(h.options[rowMode].Value()),
		OS:            catalog.OS(h.options[rowOS].Value()),
		Category:      catalog.Category(h.options[rowCategory].Value()),
		QuestionCount: count,
		Seed:          h.seed,
	}
}

func (h *HomeScreen) quiz() bool {
	return session.Mode(h.options[rowMode].Value()) == session.ModeQuiz
}

// visible reports whether row is shown. Category and length only apply to
// quizzes.
func (h *HomeScreen) visible(row int) bool {
	if row == rowCategory || row == rowCount {
		return h.quiz()
	}
	return true
}

func (h *HomeScreen) move(delta int) {
	h.focus = components.StepFocus(h.focus, delta, rowTotal, h.visible)
}

func (h *HomeScreen) start() tea.Cmd {
	settings := h.Settings()
	// A fixed seed replays one sequence; later starts reshuffle.
	h.seed = 0
	return func() tea.Msg { return screen.StartSessionMsg{Settings: settings} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}
	switch {
	case key.Matches(kmsg, components.MenuKeys.Up):
		h.move(-1)
	case key.Matches(kmsg, components.MenuKeys.Down):
		h.move(1)
	case key.Matches(kmsg, homeKeys.Prev):
		if h.focus < len(h.options) {
			h.options[h.focus].Prev()
		}
	case key.Matches(kmsg, homeKeys.Next):
		if h.focus < len(h.options) {
			h.options[h.focus].Next()
		}
	case key.Matches(kmsg, homeKeys.Start):
		return h, h.start()
	case key.Matches(kmsg, homeKeys.Quit):
		return h, tea.Quit
	case key.Matches(kmsg, components.MenuKeys.Select):
		if h.focus == rowQuit {
			return h, tea.Quit
		}
		return h, h.start()
	}
	return h, nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return layout.Hints(components.MenuKeys.Up, homeKeys.Prev, components.MenuKeys.Select, homeKeys.Quit)
}
