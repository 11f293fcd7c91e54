package keys

// Event is a platform-normalized key event. Key is the canonical identifier
// of the physical key that changed; the flags describe which modifiers are
// held once the event has been applied.
type Event struct {
	Key   string
	Text  string // printable text produced by the key, if any
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// IsModifier reports whether the event key itself is a modifier.
func (e Event) IsModifier() bool {
	return IsModifier(e.Key)
}

// AnyModifier reports whether any modifier flag is set.
func (e Event) AnyModifier() bool {
	return e.Ctrl || e.Meta || e.Shift || e.Alt
}

// Held returns the key set the event represents: every held modifier plus
// the event key when it is not a modifier.
func (e Event) Held() Set {
	s := make(Set, 5)
	if e.Ctrl {
		s[Control] = struct{}{}
	}
	if e.Meta {
		s[Meta] = struct{}{}
	}
	if e.Shift {
		s[Shift] = struct{}{}
	}
	if e.Alt {
		s[Alt] = struct{}{}
	}
	if e.Key != "" && !e.IsModifier() {
		s[e.Key] = struct{}{}
	}
	return s
}
