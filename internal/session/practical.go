package session

import (
	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/keys"
	"github.com/abhisek/shortcutmaster/internal/practical"
)

// PracticalEngine runs keyboard-only editing tasks. Completion is judged
// from the surface state after every change, never from the keys used.
type PracticalEngine struct {
	ctrl    *Controller
	os      catalog.OS
	tasks   []catalog.PracticalTask
	surface *practical.Surface
}

// NewPracticalEngine returns an idle engine over tasks.
func NewPracticalEngine(tasks []catalog.PracticalTask, os catalog.OS, clock Clock) *PracticalEngine {
	return &PracticalEngine{
		ctrl:    NewController(len(tasks), clock),
		os:      os,
		tasks:   tasks,
		surface: &practical.Surface{},
	}
}

func (e *PracticalEngine) Controller() *Controller { return e.ctrl }

// Tasks returns the task sequence.
func (e *PracticalEngine) Tasks() []catalog.PracticalTask { return e.tasks }

// OS returns the platform the instructions are rendered for.
func (e *PracticalEngine) OS() catalog.OS { return e.os }

// Surface returns the live task's fields.
func (e *PracticalEngine) Surface() *practical.Surface { return e.surface }

// Start begins the session and lays out the first task.
func (e *PracticalEngine) Start() {
	e.ctrl.Start()
	e.arm()
}

func (e *PracticalEngine) arm() {
	if t, ok := e.Current(); ok {
		e.surface = practical.NewSurface(t)
	}
}

// Current returns the live task.
func (e *PracticalEngine) Current() (catalog.PracticalTask, bool) {
	if e.ctrl.Phase() != PhaseRunning || e.ctrl.Index() >= len(e.tasks) {
		return catalog.PracticalTask{}, false
	}
	return e.tasks[e.ctrl.Index()], true
}

// KeyDown applies an editing or focus key to the surface. Every key is
// owned by the surface while a task is live.
func (e *PracticalEngine) KeyDown(ev keys.Event) Outcome {
	if e.ctrl.Phase() != PhaseRunning {
		return Outcome{}
	}
	cmd, ok := practical.CommandFor(ev, e.os)
	if !ok {
		return Outcome{}
	}
	return e.apply(func() practical.Change { return e.surface.Apply(cmd) })
}

// KeyUp has no effect on practical tasks.
func (e *PracticalEngine) KeyUp(keys.Event) Outcome {
	return Outcome{}
}

// Paste inserts text arriving from the terminal into the focused field.
func (e *PracticalEngine) Paste(text string) Outcome {
	if e.ctrl.Phase() != PhaseRunning {
		return Outcome{}
	}
	return e.apply(func() practical.Change {
		return e.surface.Apply(practical.Command{Op: practical.OpPaste, Text: text})
	})
}

// MouseDown rejects a pointer interaction on the task surface: one mistake
// plus a warning that clears itself.
func (e *PracticalEngine) MouseDown() Outcome {
	if e.ctrl.Phase() != PhaseRunning || e.ctrl.Latched() {
		return Outcome{}
	}
	e.ctrl.RecordMistake("mouse")
	e.ctrl.SetWarning(true)
	return Outcome{
		Timers: []Timer{e.ctrl.Schedule(TimerWarning, MouseWarningDuration)},
	}
}

// Skip abandons the live task for one mistake.
func (e *PracticalEngine) Skip() Outcome {
	return advance(e.ctrl, e.arm, e.ctrl.Skip)
}

// Fire delivers a timer armed by an earlier outcome. Stale timers do nothing.
func (e *PracticalEngine) Fire(t Timer) Outcome {
	if !e.ctrl.Fire(t) {
		return Outcome{}
	}
	switch t.Kind {
	case TimerSuccess:
		return advance(e.ctrl, e.arm, func() *GameResult { return e.ctrl.Advance(false) })
	case TimerWarning:
		e.ctrl.SetWarning(false)
	}
	return Outcome{}
}

// apply runs a surface change unless success is latched, then checks the
// completion predicate.
func (e *PracticalEngine) apply(change func() practical.Change) Outcome {
	var out Outcome
	if e.ctrl.Latched() || !change().Any() {
		return out
	}
	task, _ := e.Current()
	if practical.Complete(task, e.surface) && e.ctrl.Latch() {
		out.Timers = append(out.Timers, e.ctrl.Schedule(TimerSuccess, PracticalSuccessHold))
	}
	return out
}
