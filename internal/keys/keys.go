// Package keys defines the normalized key vocabulary shared by the matchers.
//
// Every key is a lower-cased identifier. Modifiers use the canonical names
// "control", "meta", "shift" and "alt" regardless of which physical side was
// pressed. Other keys follow browser KeyboardEvent.key naming, lower-cased
// ("a", "f5", "enter", "arrowleft", "space").
package keys

import "strings"

// Canonical modifier names.
const (
	Control = "control"
	Meta    = "meta"
	Shift   = "shift"
	Alt     = "alt"
)

// Named non-modifier keys used by the trainer itself.
const (
	Tab       = "tab"
	Escape    = "escape"
	Enter     = "enter"
	Backspace = "backspace"
	Delete    = "delete"
	Space     = "space"
	Left      = "arrowleft"
	Right     = "arrowright"
	Up        = "arrowup"
	Down      = "arrowdown"
	Home      = "home"
	End       = "end"
	PageUp    = "pageup"
	PageDown  = "pagedown"
	Insert    = "insert"
)

var aliases = map[string]string{
	"ctrl":       Control,
	"ctl":        Control,
	"leftctrl":   Control,
	"rightctrl":  Control,
	"cmd":        Meta,
	"command":    Meta,
	"super":      Meta,
	"win":        Meta,
	"windows":    Meta,
	"os":         Meta,
	"leftmeta":   Meta,
	"rightmeta":  Meta,
	"leftsuper":  Meta,
	"rightsuper": Meta,
	"option":     Alt,
	"opt":        Alt,
	"leftalt":    Alt,
	"rightalt":   Alt,
	"leftshift":  Shift,
	"rightshift": Shift,
	"esc":        Escape,
	"del":        Delete,
	"return":     Enter,
	"left":       Left,
	"right":      Right,
	"up":         Up,
	"down":       Down,
	"pgup":       PageUp,
	"pgdown":     PageDown,
	"pgdn":       PageDown,
	" ":          Space,
	"spacebar":   Space,
}

// Normalize maps a key name or alias to its canonical identifier.
func Normalize(name string) string {
	if name == " " {
		return Space
	}
	k := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := aliases[k]; ok {
		return canon
	}
	return k
}

// IsModifier reports whether the canonical key is one of the four modifiers.
func IsModifier(key string) bool {
	switch key {
	case Control, Meta, Shift, Alt:
		return true
	}
	return false
}
