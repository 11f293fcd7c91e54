package session

import (
	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/combo"
	"github.com/abhisek/shortcutmaster/internal/keys"
)

// QuizEngine runs a shortcut quiz: each task completes when the player
// holds exactly its key combination.
type QuizEngine struct {
	ctrl    *Controller
	os      catalog.OS
	tasks   []catalog.Shortcut
	tracker *combo.Tracker
}

// NewQuizEngine returns an idle engine over tasks.
func NewQuizEngine(tasks []catalog.Shortcut, os catalog.OS, clock Clock) *QuizEngine {
	return &QuizEngine{
		ctrl:    NewController(len(tasks), clock),
		os:      os,
		tasks:   tasks,
		tracker: combo.NewTracker(keys.Set{}),
	}
}

func (e *QuizEngine) Controller() *Controller { return e.ctrl }

// Tasks returns the frozen sequence.
func (e *QuizEngine) Tasks() []catalog.Shortcut { return e.tasks }

// Start begins the session and arms the first task.
func (e *QuizEngine) Start() {
	e.ctrl.Start()
	e.arm()
}

func (e *QuizEngine) arm() {
	if t, ok := e.Current(); ok {
		e.tracker = combo.NewTracker(t.Keys(e.os))
	}
}

// Current returns the live task.
func (e *QuizEngine) Current() (catalog.Shortcut, bool) {
	if e.ctrl.Phase() != PhaseRunning || e.ctrl.Index() >= len(e.tasks) {
		return catalog.Shortcut{}, false
	}
	return e.tasks[e.ctrl.Index()], true
}

// Held returns the keys currently held for the live task.
func (e *QuizEngine) Held() keys.Set {
	return e.tracker.Held()
}

// KeyDown evaluates a key press. Presses after success is latched are
// ignored until the next task is armed.
func (e *QuizEngine) KeyDown(ev keys.Event) Outcome {
	if e.ctrl.Phase() != PhaseRunning {
		return Outcome{}
	}
	if e.ctrl.Latched() {
		return Outcome{}
	}

	var out Outcome
	out.Verdict = e.tracker.Press(ev)
	switch out.Verdict {
	case combo.VerdictMatch:
		e.ctrl.Latch()
		out.Timers = append(out.Timers, e.ctrl.Schedule(TimerSuccess, QuizSuccessHold))
	case combo.VerdictOverPress:
		e.ctrl.RecordMistake("over-press " + e.tracker.Held().String())
		e.ctrl.SetError()
		out.Timers = append(out.Timers, e.ctrl.Schedule(TimerCooldown, ErrorCooldown))
	}
	return out
}

// KeyUp clears the attempt once every modifier is released. It never
// costs a mistake.
func (e *QuizEngine) KeyUp(ev keys.Event) Outcome {
	if e.ctrl.Phase() != PhaseRunning || e.ctrl.Latched() {
		return Outcome{}
	}
	e.tracker.Release(ev)
	return Outcome{}
}

// Skip abandons the live task for one mistake.
func (e *QuizEngine) Skip() Outcome {
	return advance(e.ctrl, e.arm, e.ctrl.Skip)
}

// Fire delivers a timer armed by an earlier outcome. Stale timers do nothing.
func (e *QuizEngine) Fire(t Timer) Outcome {
	if !e.ctrl.Fire(t) {
		return Outcome{}
	}
	switch t.Kind {
	case TimerSuccess:
		return advance(e.ctrl, e.arm, func() *GameResult { return e.ctrl.Advance(false) })
	case TimerCooldown:
		e.ctrl.ClearError()
		e.tracker.Reset()
	}
	return Outcome{}
}
