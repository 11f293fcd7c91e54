package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked cards so
// they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// Frame centers content inside a double border filling width x height.
// accent tints the border, e.g. green while success feedback is shown.
func Frame(content string, width, height int, accent color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
