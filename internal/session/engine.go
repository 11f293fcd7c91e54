package session

import (
	"github.com/abhisek/shortcutmaster/internal/combo"
	"github.com/abhisek/shortcutmaster/internal/keys"
)

// Outcome reports what one input event or timer did to a session.
type Outcome struct {
	// Verdict is the quiz matcher's judgment of a key press.
	Verdict combo.Verdict

	// Timers were armed by the event. The caller delivers each back via
	// Fire after its Delay.
	Timers []Timer

	// Result is set once, when the final task advances.
	Result *GameResult
}

// Engine is what the shared play driver needs from the quiz and practical
// engines. Mode-specific input (paste, mouse) goes to the concrete engine.
type Engine interface {
	Controller() *Controller
	Start()
	KeyDown(ev keys.Event) Outcome
	KeyUp(ev keys.Event) Outcome
	Skip() Outcome
	Fire(t Timer) Outcome
}

// advance runs step against c and rearms the task when the index moved.
func advance(c *Controller, arm func(), step func() *GameResult) Outcome {
	before := c.Index()
	res := step()
	if c.Index() != before && c.Phase() == PhaseRunning {
		arm()
	}
	return Outcome{Result: res}
}
