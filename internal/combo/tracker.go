package combo

import "github.com/abhisek/shortcutmaster/internal/keys"

// Tracker keeps the currently held key set for one task and evaluates each
// press against the target. It is not safe for concurrent use.
type Tracker struct {
	target keys.Set
	held   keys.Set
}

// NewTracker returns a tracker armed for target.
func NewTracker(target keys.Set) *Tracker {
	return &Tracker{target: target, held: keys.Set{}}
}

// Held returns the keys currently considered held.
func (t *Tracker) Held() keys.Set {
	return t.held
}

// Press records a key-down and returns the verdict for the resulting set.
// The held set is rebuilt from the event's modifier flags plus its key, so a
// lost key-up can never leave a stale key behind.
func (t *Tracker) Press(ev keys.Event) Verdict {
	t.held = ev.Held()
	return Evaluate(t.held, t.target, ev.IsModifier())
}

// Release records a key-up. Once no modifier is held the attempt resets.
// Releasing a plain key while modifiers stay down leaves the set as is.
func (t *Tracker) Release(ev keys.Event) {
	if !ev.AnyModifier() {
		t.held = keys.Set{}
	}
}

// Reset clears the held set, e.g. after an error cool-down.
func (t *Tracker) Reset() {
	t.held = keys.Set{}
}
