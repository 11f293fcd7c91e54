package components

import (
	"charm.land/bubbles/v2/key"
)

// MenuKeys are the bindings shared by vertical lists.
var MenuKeys = struct {
	Up, Down, Select key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
}

// StepFocus moves from focus by delta over n rows, skipping rows that are
// hidden. It stops at either end and returns focus unchanged when no shown
// row lies in that direction.
func StepFocus(focus, delta, n int, shown func(row int) bool) int {
	if delta == 0 {
		return focus
	}
	for i := focus + delta; i >= 0 && i < n; i += delta {
		if shown(i) {
			return i
		}
	}
	return focus
}
