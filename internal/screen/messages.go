package screen

import "github.com/abhisek/shortcutmaster/internal/session"

// StartSessionMsg asks the app to build and show a play screen for Settings.
type StartSessionMsg struct {
	Settings session.Settings
}

// SessionFinishedMsg is sent by a play screen once its result is final.
type SessionFinishedMsg struct {
	Settings session.Settings
	Result   session.GameResult
}

// GoHomeMsg returns to the first screen on the stack.
type GoHomeMsg struct{}
