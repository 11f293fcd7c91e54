package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/shortcutmaster/internal/keys"
)

func TestEvaluate(t *testing.T) {
	target := keys.NewSet("control", "c")

	tests := []struct {
		name     string
		held     keys.Set
		modifier bool
		want     Verdict
	}{
		{"exact match", keys.NewSet("control", "c"), false, VerdictMatch},
		{"modifier only, building", keys.NewSet("control"), true, VerdictPending},
		{"wrong key same size", keys.NewSet("control", "v"), false, VerdictOverPress},
		{"two modifiers same size", keys.NewSet("control", "shift"), true, VerdictPending},
		{"too many keys", keys.NewSet("control", "shift", "c"), false, VerdictOverPress},
		{"too many modifiers", keys.NewSet("control", "shift", "alt"), true, VerdictPending},
		{"plain key shorter", keys.NewSet("c"), false, VerdictPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.held, target, tt.modifier))
		})
	}
}

func TestEvaluateSingleKeyTarget(t *testing.T) {
	target := keys.NewSet("f5")
	assert.Equal(t, VerdictMatch, Evaluate(keys.NewSet("f5"), target, false))
	assert.Equal(t, VerdictOverPress, Evaluate(keys.NewSet("f6"), target, false))
	assert.Equal(t, VerdictOverPress, Evaluate(keys.NewSet("control", "f5"), target, false))
}

func TestTrackerAnyOrder(t *testing.T) {
	tr := NewTracker(keys.NewSet("control", "shift", "t"))

	// Shift first, then control, then t.
	assert.Equal(t, VerdictPending, tr.Press(keys.Event{Key: keys.Shift, Shift: true}))
	assert.Equal(t, VerdictPending, tr.Press(keys.Event{Key: keys.Control, Shift: true, Ctrl: true}))
	assert.Equal(t, VerdictMatch, tr.Press(keys.Event{Key: "t", Shift: true, Ctrl: true}))
}

func TestTrackerReleaseAllModifiersResets(t *testing.T) {
	tr := NewTracker(keys.NewSet("control", "c"))
	tr.Press(keys.Event{Key: keys.Control, Ctrl: true})
	assert.Equal(t, 1, tr.Held().Len())

	tr.Release(keys.Event{Key: keys.Control})
	assert.Equal(t, 0, tr.Held().Len())
}

func TestTrackerReleasePlainKeyKeepsModifiers(t *testing.T) {
	tr := NewTracker(keys.NewSet("control", "shift", "c"))
	tr.Press(keys.Event{Key: "x", Ctrl: true, Shift: true})
	tr.Release(keys.Event{Key: "x", Ctrl: true, Shift: true})
	assert.Equal(t, 3, tr.Held().Len())
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "match", VerdictMatch.String())
	assert.Equal(t, "over-press", VerdictOverPress.String())
	assert.Equal(t, "pending", VerdictPending.String())
}
