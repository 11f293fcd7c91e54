// Package play holds the plumbing shared by the quiz and practical screens:
// a Driver that runs the session engine, the elapsed-time tick, and timer
// delivery.
package play

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shortcutmaster/internal/combo"
	"github.com/abhisek/shortcutmaster/internal/keys"
	"github.com/abhisek/shortcutmaster/internal/score"
	"github.com/abhisek/shortcutmaster/internal/screen"
	"github.com/abhisek/shortcutmaster/internal/session"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
)

// TickMsg refreshes the elapsed-time display.
type TickMsg time.Time

// TimerMsg delivers a session timer once its delay has passed.
type TimerMsg struct {
	Timer session.Timer
}

// Tick schedules the next display refresh.
func Tick() tea.Cmd {
	return tea.Tick(session.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Schedule turns the timers an outcome armed into commands. Timers are
// never cancelled here; the controller rejects stale ones when they fire.
func Schedule(timers []session.Timer) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return TimerMsg{Timer: t}
		}))
	}
	return tea.Batch(cmds...)
}

// Status renders "index/total · S.cc s · ✗ mistakes" for the header.
func Status(c *session.Controller) string {
	shown := min(c.Index()+1, c.Total())
	return fmt.Sprintf("%d/%d · %ss · ✗ %d",
		shown, c.Total(), score.FormatElapsed(c.Elapsed().Milliseconds()), c.Mistakes())
}

// Keys are the bindings every play screen reserves. Skip differs per mode:
// the practical surface needs plain tab for focus.
type Keys struct {
	Skip    key.Binding
	Abandon key.Binding
}

// Driver runs one session engine for a play screen. It owns the clock
// tick, timer delivery and the skip/abandon bindings; the screen feeds it
// the input events of its mode.
type Driver struct {
	settings session.Settings
	engine   session.Engine
	keys     Keys

	// verdict is the matcher's judgment of the latest outcome.
	verdict combo.Verdict
}

// NewDriver wraps engine. The session starts in Start.
func NewDriver(settings session.Settings, engine session.Engine, keys Keys) *Driver {
	return &Driver{settings: settings, engine: engine, keys: keys}
}

// Start begins the session and the elapsed-time tick.
func (d *Driver) Start() tea.Cmd {
	d.engine.Start()
	return Tick()
}

func (d *Driver) Running() bool {
	return d.engine.Controller().Phase() == session.PhaseRunning
}

func (d *Driver) Status() string {
	return Status(d.engine.Controller())
}

// Verdict is the matcher's judgment of the latest key press. It is always
// pending for engines that judge surface state instead of keys.
func (d *Driver) Verdict() combo.Verdict {
	return d.verdict
}

func (d *Driver) Hints() []layout.KeyHint {
	return layout.Hints(d.keys.Skip, d.keys.Abandon)
}

// Update handles the messages every play screen shares. handled is false
// for messages the screen routes itself.
func (d *Driver) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case TickMsg:
		if !d.Running() {
			return nil, true
		}
		d.engine.Controller().Tick()
		return Tick(), true

	case TimerMsg:
		return d.Handle(d.engine.Fire(msg.Timer)), true

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, d.keys.Abandon):
			return d.Abandon(), true
		case key.Matches(msg, d.keys.Skip):
			return d.Handle(d.engine.Skip()), true
		}
	}
	return nil, false
}

func (d *Driver) KeyDown(ev keys.Event) tea.Cmd {
	return d.Handle(d.engine.KeyDown(ev))
}

func (d *Driver) KeyUp(ev keys.Event) tea.Cmd {
	return d.Handle(d.engine.KeyUp(ev))
}

// Handle records an outcome's verdict, schedules its timers and, once the
// session is over, reports the result to the app.
func (d *Driver) Handle(out session.Outcome) tea.Cmd {
	d.verdict = out.Verdict
	cmd := Schedule(out.Timers)
	if out.Result == nil {
		return cmd
	}
	res := *out.Result
	settings := d.settings
	return tea.Batch(cmd, func() tea.Msg {
		return screen.SessionFinishedMsg{Settings: settings, Result: res}
	})
}

// Abandon discards the session and leaves the screen.
func (d *Driver) Abandon() tea.Cmd {
	d.engine.Controller().Abandon()
	return func() tea.Msg { return screen.GoHomeMsg{} }
}
