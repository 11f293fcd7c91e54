package session

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Controller sequences tasks, owns timing, counts mistakes and emits the
// terminal result. It knows nothing about how a task is judged; the quiz
// and practical engines drive it. It is not safe for concurrent use.
type Controller struct {
	id    string
	clock Clock
	total int

	phase    Phase
	index    int
	start    time.Time
	now      time.Time
	mistakes int
	feedback Feedback
	warning  bool

	seq     uint64
	pending map[TimerKind]Timer
	result  *GameResult
}

// NewController returns an idle controller for a sequence of total tasks.
// A nil clock uses the system clock.
func NewController(total int, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	return &Controller{
		clock:   clock,
		total:   total,
		pending: make(map[TimerKind]Timer),
	}
}

// Start begins the session at index 0. It is a no-op unless idle or when
// there are no tasks.
func (c *Controller) Start() {
	if c.phase != PhaseIdle || c.total == 0 {
		return
	}
	c.id = uuid.NewString()
	c.phase = PhaseRunning
	c.index = 0
	c.mistakes = 0
	c.start = c.clock.Now()
	c.now = c.start
	log.Printf("session: start id=%s tasks=%d", c.id, c.total)
}

// Advance moves past the current task. A skip costs one mistake. On the
// last task the result is produced and returned; it is returned only once.
func (c *Controller) Advance(wasSkip bool) *GameResult {
	if c.phase != PhaseRunning {
		return nil
	}
	if wasSkip {
		c.mistakes++
	}
	c.clearTransient()
	log.Printf("session: advance id=%s index=%d skip=%t", c.id, c.index, wasSkip)

	if c.index+1 < c.total {
		c.index++
		return nil
	}

	c.index = c.total
	c.now = c.clock.Now()
	c.phase = PhaseFinished
	c.result = &GameResult{
		SessionID:      c.id,
		ElapsedMs:      c.now.Sub(c.start).Milliseconds(),
		CorrectCount:   c.total,
		MistakeCount:   c.mistakes,
		TotalQuestions: c.total,
	}
	log.Printf("session: finish id=%s elapsed_ms=%d mistakes=%d",
		c.id, c.result.ElapsedMs, c.result.MistakeCount)
	return c.result
}

// Skip is a forced mistake plus an immediate advance. It is ignored while
// success is latched, so a task never advances twice.
func (c *Controller) Skip() *GameResult {
	if c.phase != PhaseRunning || c.feedback == FeedbackSuccess {
		return nil
	}
	return c.Advance(true)
}

// RecordMistake counts one mistake without advancing.
func (c *Controller) RecordMistake(reason string) {
	if c.phase != PhaseRunning {
		return
	}
	c.mistakes++
	log.Printf("session: mistake id=%s index=%d reason=%s", c.id, c.index, reason)
}

// Latch sets success feedback for the current task. It reports false when
// success was already latched.
func (c *Controller) Latch() bool {
	if c.phase != PhaseRunning || c.feedback == FeedbackSuccess {
		return false
	}
	c.feedback = FeedbackSuccess
	delete(c.pending, TimerCooldown)
	return true
}

// Latched reports whether the current task has completed.
func (c *Controller) Latched() bool {
	return c.feedback == FeedbackSuccess
}

// SetError raises error feedback unless success is latched.
func (c *Controller) SetError() {
	if c.phase == PhaseRunning && c.feedback != FeedbackSuccess {
		c.feedback = FeedbackError
	}
}

// ClearError drops error feedback.
func (c *Controller) ClearError() {
	if c.feedback == FeedbackError {
		c.feedback = FeedbackNone
	}
}

// SetWarning toggles the mouse warning banner.
func (c *Controller) SetWarning(on bool) {
	c.warning = on
}

// Schedule arms a timer of kind for the current task, superseding any
// pending timer of the same kind.
func (c *Controller) Schedule(kind TimerKind, delay time.Duration) Timer {
	c.seq++
	t := Timer{Session: c.id, Kind: kind, Index: c.index, Seq: c.seq, Delay: delay}
	c.pending[kind] = t
	return t
}

// Fire consumes t. It reports false for a stale handle: one superseded by a
// later Schedule, armed for another task, or outliving its session.
func (c *Controller) Fire(t Timer) bool {
	if c.phase != PhaseRunning || t.Session != c.id || t.Index != c.index {
		return false
	}
	p, ok := c.pending[t.Kind]
	if !ok || p != t {
		return false
	}
	delete(c.pending, t.Kind)
	return true
}

// Pending returns the armed timer of kind, if any.
func (c *Controller) Pending(kind TimerKind) (Timer, bool) {
	t, ok := c.pending[kind]
	return t, ok
}

// Tick samples the clock for the elapsed-time display.
func (c *Controller) Tick() {
	if c.phase == PhaseRunning {
		c.now = c.clock.Now()
	}
}

// Elapsed is the time shown to the player: the last sampled time while
// running, the final figure once finished.
func (c *Controller) Elapsed() time.Duration {
	switch c.phase {
	case PhaseRunning:
		return c.now.Sub(c.start)
	case PhaseFinished:
		return time.Duration(c.result.ElapsedMs) * time.Millisecond
	}
	return 0
}

// Abandon discards the session. No result is produced and every pending
// timer becomes stale.
func (c *Controller) Abandon() {
	if c.phase != PhaseRunning {
		return
	}
	c.phase = PhaseAbandoned
	c.clearTransient()
	log.Printf("session: abandon id=%s index=%d", c.id, c.index)
}

func (c *Controller) clearTransient() {
	c.feedback = FeedbackNone
	c.warning = false
	clear(c.pending)
}

func (c *Controller) SessionID() string  { return c.id }
func (c *Controller) Phase() Phase       { return c.phase }
func (c *Controller) Index() int         { return c.index }
func (c *Controller) Total() int         { return c.total }
func (c *Controller) Mistakes() int      { return c.mistakes }
func (c *Controller) Feedback() Feedback { return c.feedback }
func (c *Controller) Warning() bool      { return c.warning }
