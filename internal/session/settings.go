package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/shortcutmaster/internal/catalog"
)

// Mode selects which engine runs a session.
type Mode string

const (
	ModeQuiz      Mode = "quiz"
	ModePractical Mode = "practical"
)

// ParseMode resolves a mode name case-insensitively.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeQuiz:
		return ModeQuiz, true
	case ModePractical:
		return ModePractical, true
	}
	return "", false
}

// DefaultQuestionCount is the quiz length used when none is requested.
const DefaultQuestionCount = 10

// QuestionCountOptions are the quiz lengths offered on the home screen.
var QuestionCountOptions = []int{5, 10, 20}

var (
	ErrInvalidMode  = errors.New("invalid mode")
	ErrInvalidOS    = errors.New("invalid os")
	ErrInvalidCount = errors.New("question count must be positive")
	ErrNoTasks      = errors.New("no tasks available")
)

// Settings configures one session.
type Settings struct {
	Mode Mode
	OS   catalog.OS

	// Category filters quiz shortcuts. Empty or CategoryAll means every category.
	Category catalog.Category

	// QuestionCount is the requested quiz length. It is clamped to the
	// number of shortcuts available in the category.
	QuestionCount int

	// Seed drives the quiz shuffle. Zero picks a random seed.
	Seed uint64
}

// Validate checks the settings are usable. It does not consult the catalog.
func (s Settings) Validate() error {
	if s.Mode != ModeQuiz && s.Mode != ModePractical {
		return fmt.Errorf("%w: %q", ErrInvalidMode, s.Mode)
	}
	if s.OS != catalog.OSWindows && s.OS != catalog.OSMac {
		return fmt.Errorf("%w: %q", ErrInvalidOS, s.OS)
	}
	if s.Mode == ModeQuiz && s.QuestionCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, s.QuestionCount)
	}
	return nil
}
