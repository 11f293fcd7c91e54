package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/components"
	"github.com/abhisek/shortcutmaster/internal/ui/layout"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

const titleFull = `┌─┐┬ ┬┌─┐┬─┐┌┬┐┌─┐┬ ┬┌┬┐  ┌┬┐┌─┐┌─┐┌┬┐┌─┐┬─┐
└─┐├─┤│ │├┬┘ │ │  │ │ │   │││├─┤└─┐ │ ├┤ ├┬┘
└─┘┴ ┴└─┘┴└─ ┴ └─┘└─┘ ┴   ┴ ┴┴ ┴└─┘ ┴ └─┘┴└─`

const titleCompact = "S H O R T C U T · M A S T E R"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascot(h.quiz(), cw))
	}
	sections = append(sections,
		h.renderOptions(cw),
		renderMenu([]string{"START", "QUIT"}, h.focus-rowStart, cw),
	)
	return components.Frame(strings.Join(sections, "\n\n"), width, height, theme.Primary)
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(art))
}

func (h *HomeScreen) renderOptions(cw int) string {
	var lines []string
	for row, o := range h.options {
		if !h.visible(row) {
			continue
		}
		lines = append(lines, o.View(row == h.focus, 12))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderMenu renders each item as a fixed-width button. selected may be
// out of range when an option row has focus.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			buttons[i] = selectedBtn.Render("▸ " + label)
		} else {
			buttons[i] = normalBtn.Render(label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))
}
