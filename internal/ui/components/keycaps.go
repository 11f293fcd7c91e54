package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// Keycaps renders labels as a row of keycaps joined by "+". held tints
// them as pressed.
func Keycaps(labels []string, held bool) string {
	if len(labels) == 0 {
		return ""
	}
	style := theme.Keycap
	if held {
		style = theme.KeycapHeld
	}
	plus := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render("+")

	parts := make([]string, 0, 2*len(labels))
	for i, l := range labels {
		if i > 0 {
			parts = append(parts, plus)
		}
		parts = append(parts, style.Render(l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
