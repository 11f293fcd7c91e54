package session

import "time"

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle      Phase = iota // Built but not started
	PhaseRunning                // Serving tasks
	PhaseFinished               // Sequence exhausted, result emitted
	PhaseAbandoned              // Discarded by the caller, no result
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	case PhaseAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Feedback is the transient per-task indicator.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackSuccess
	FeedbackError
)

// TimerKind names a timed transition.
type TimerKind int

const (
	TimerSuccess  TimerKind = iota // advance after the success hold
	TimerCooldown                  // clear error feedback and held keys
	TimerWarning                   // clear the mouse warning
)

func (k TimerKind) String() string {
	switch k {
	case TimerSuccess:
		return "success"
	case TimerCooldown:
		return "cooldown"
	case TimerWarning:
		return "warning"
	}
	return "unknown"
}

const (
	QuizSuccessHold      = 400 * time.Millisecond
	PracticalSuccessHold = 600 * time.Millisecond
	ErrorCooldown        = 500 * time.Millisecond
	MouseWarningDuration = 2 * time.Second

	// TickInterval refreshes the displayed elapsed time. It never drives
	// completion.
	TickInterval = 50 * time.Millisecond
)

// Timer is a handle for a scheduled transition. The caller delivers it back
// through Fire once Delay has passed; a handle superseded in the meantime
// is rejected.
type Timer struct {
	Session string // id of the session that armed it
	Kind    TimerKind
	Index   int    // task index the timer was armed for
	Seq     uint64 // unique per controller
	Delay   time.Duration
}

// GameResult is the terminal record of a finished session.
type GameResult struct {
	SessionID      string
	ElapsedMs      int64
	CorrectCount   int
	MistakeCount   int
	TotalQuestions int
}
