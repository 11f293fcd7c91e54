package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update presses the button on enter while it is active.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow is a horizontal group of buttons with one active at a time.
type ButtonRow struct {
	Buttons []Button
	active  int
}

// NewButtonRow activates the first button.
func NewButtonRow(buttons ...Button) ButtonRow {
	r := ButtonRow{Buttons: buttons}
	r.setActive(0)
	return r
}

// Active returns the index of the active button.
func (r ButtonRow) Active() int { return r.active }

func (r *ButtonRow) setActive(i int) {
	if len(r.Buttons) == 0 {
		return
	}
	r.active = (i + len(r.Buttons)) % len(r.Buttons)
	for j := range r.Buttons {
		r.Buttons[j].Active = j == r.active
	}
}

// Update moves between buttons with left/right/tab and presses on enter.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		r.setActive(r.active - 1)
		return r, nil
	case "right", "l", "tab":
		r.setActive(r.active + 1)
		return r, nil
	}
	if len(r.Buttons) == 0 {
		return r, nil
	}
	var cmd tea.Cmd
	r.Buttons[r.active], cmd = r.Buttons[r.active].Update(msg)
	return r, cmd
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, 0, 2*len(r.Buttons))
	for i, b := range r.Buttons {
		if i > 0 {
			parts = append(parts, "   ")
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
