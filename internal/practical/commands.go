package practical

import (
	"github.com/abhisek/shortcutmaster/internal/catalog"
	"github.com/abhisek/shortcutmaster/internal/keys"
)

// primaryHeld reports whether the OS editing modifier is held. Control is
// always accepted: most terminals swallow Cmd before the program sees it.
func primaryHeld(ev keys.Event, os catalog.OS) bool {
	if ev.Ctrl {
		return true
	}
	return os == catalog.OSMac && ev.Meta
}

// CommandFor maps a key press to a surface command. ok is false for keys
// the surface does not handle.
func CommandFor(ev keys.Event, os catalog.OS) (cmd Command, ok bool) {
	if primaryHeld(ev, os) && !ev.Alt {
		switch ev.Key {
		case "a":
			return Command{Op: OpSelectAll}, true
		case "c":
			return Command{Op: OpCopy}, true
		case "x":
			return Command{Op: OpCut}, true
		case "v":
			return Command{Op: OpPaste}, true
		}
		return Command{}, false
	}

	switch ev.Key {
	case keys.Tab:
		if ev.Shift {
			return Command{Op: OpFocusPrev}, true
		}
		return Command{Op: OpFocusNext}, true
	case keys.Backspace:
		return Command{Op: OpBackspace}, true
	case keys.Delete:
		return Command{Op: OpDelete}, true
	case keys.Left:
		return Command{Op: OpLeft, Extend: ev.Shift}, true
	case keys.Right:
		return Command{Op: OpRight, Extend: ev.Shift}, true
	case keys.Home:
		return Command{Op: OpHome, Extend: ev.Shift}, true
	case keys.End:
		return Command{Op: OpEnd, Extend: ev.Shift}, true
	}

	if ev.Text != "" && !ev.Ctrl && !ev.Meta && !ev.Alt {
		return Command{Op: OpInsert, Text: ev.Text}, true
	}
	return Command{}, false
}
