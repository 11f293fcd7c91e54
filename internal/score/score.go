// Package score turns a finished session into the number shown on the
// result screen.
package score

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/shortcutmaster/internal/session"
)

var printer = message.NewPrinter(language.English)

const (
	PointsPerQuestion = 1000
	PointsPerMistake  = 500
	// MsPerPoint is how many milliseconds of play cost one point.
	MsPerPoint = 10
)

// Compute returns max(0, questions*1000 - elapsedMs/10 - mistakes*500).
func Compute(r session.GameResult) int {
	base := int64(r.TotalQuestions) * PointsPerQuestion
	timePenalty := r.ElapsedMs / MsPerPoint
	mistakePenalty := int64(r.MistakeCount) * PointsPerMistake
	return int(max(0, base-timePenalty-mistakePenalty))
}

// Breakdown itemizes a score for display.
type Breakdown struct {
	Base           int
	TimePenalty    int
	MistakePenalty int
	Total          int
}

// Explain returns the parts Compute adds up.
func Explain(r session.GameResult) Breakdown {
	return Breakdown{
		Base:           r.TotalQuestions * PointsPerQuestion,
		TimePenalty:    int(r.ElapsedMs / MsPerPoint),
		MistakePenalty: r.MistakeCount * PointsPerMistake,
		Total:          Compute(r),
	}
}

// FormatElapsed renders milliseconds as seconds and hundredths, e.g. "12.07".
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d.%02d", ms/1000, (ms%1000)/10)
}

// FormatPoints renders a score with thousands separators, e.g. "8,500".
func FormatPoints(points int) string {
	return printer.Sprintf("%d", points)
}
