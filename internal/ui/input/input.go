// Package input converts Bubble Tea key messages into the platform-neutral
// events the matchers consume.
package input

import (
	"fmt"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shortcutmaster/internal/keys"
)

var named = map[rune]string{
	tea.KeyTab:       keys.Tab,
	tea.KeyEnter:     keys.Enter,
	tea.KeyKpEnter:   keys.Enter,
	tea.KeyEscape:    keys.Escape,
	tea.KeyBackspace: keys.Backspace,
	tea.KeyDelete:    keys.Delete,
	tea.KeyInsert:    keys.Insert,
	tea.KeySpace:     keys.Space,
	tea.KeyLeft:      keys.Left,
	tea.KeyRight:     keys.Right,
	tea.KeyUp:        keys.Up,
	tea.KeyDown:      keys.Down,
	tea.KeyHome:      keys.Home,
	tea.KeyEnd:       keys.End,
	tea.KeyPgUp:      keys.PageUp,
	tea.KeyPgDown:    keys.PageDown,

	tea.KeyLeftCtrl:   keys.Control,
	tea.KeyRightCtrl:  keys.Control,
	tea.KeyLeftShift:  keys.Shift,
	tea.KeyRightShift: keys.Shift,
	tea.KeyLeftAlt:    keys.Alt,
	tea.KeyRightAlt:   keys.Alt,
	tea.KeyLeftSuper:  keys.Meta,
	tea.KeyRightSuper: keys.Meta,
	tea.KeyLeftMeta:   keys.Meta,
	tea.KeyRightMeta:  keys.Meta,
}

// KeyName returns the canonical name of k's physical key, or "" for keys
// the trainer does not know.
func KeyName(k tea.Key) string {
	if name, ok := named[k.Code]; ok {
		return name
	}
	if k.Code >= tea.KeyF1 && k.Code <= tea.KeyF24 {
		return fmt.Sprintf("f%d", k.Code-tea.KeyF1+1)
	}
	if unicode.IsPrint(k.Code) {
		return strings.ToLower(string(k.Code))
	}
	return ""
}

// FromKey builds an event from k. Modifier flags describe the state after
// the event: a modifier's own flag is set on press and cleared on release,
// whatever the terminal reported.
func FromKey(k tea.Key, released bool) keys.Event {
	ev := keys.Event{
		Key:   KeyName(k),
		Ctrl:  k.Mod&tea.ModCtrl != 0,
		Meta:  k.Mod&(tea.ModMeta|tea.ModSuper) != 0,
		Shift: k.Mod&tea.ModShift != 0,
		Alt:   k.Mod&tea.ModAlt != 0,
	}
	if !released {
		ev.Text = k.Text
	}
	switch ev.Key {
	case keys.Control:
		ev.Ctrl = !released
	case keys.Meta:
		ev.Meta = !released
	case keys.Shift:
		ev.Shift = !released
	case keys.Alt:
		ev.Alt = !released
	}
	return ev
}
