// Package combo judges held key combinations against a target shortcut.
package combo

import "github.com/abhisek/shortcutmaster/internal/keys"

// Verdict is the outcome of evaluating one key press.
type Verdict int

const (
	// VerdictPending means the combination is still being built.
	VerdictPending Verdict = iota
	// VerdictMatch means the held set is exactly the target.
	VerdictMatch
	// VerdictOverPress means the held set can no longer become the target.
	VerdictOverPress
)

func (v Verdict) String() string {
	switch v {
	case VerdictMatch:
		return "match"
	case VerdictOverPress:
		return "over-press"
	}
	return "pending"
}

// Evaluate classifies held against target. pressedModifier tells whether the
// key that produced held was itself a modifier: a modifier press never counts
// as a wrong combination, since the player may still be building the combo.
func Evaluate(held, target keys.Set, pressedModifier bool) Verdict {
	switch {
	case held.Len() == target.Len():
		if held.ContainsAll(target) {
			return VerdictMatch
		}
		if !pressedModifier {
			return VerdictOverPress
		}
	case held.Len() > target.Len() && !pressedModifier:
		return VerdictOverPress
	}
	return VerdictPending
}
