package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/shortcutmaster/internal/practical"
	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// Field renders a practical text buffer as a bordered input. The focused
// field shows its caret and selection.
func Field(label string, b *practical.Buffer, focused bool, width int) string {
	inner := max(width-4, 8)
	var body string
	if focused {
		body = renderBuffer(b, inner)
	} else {
		body = theme.Body.Render(runewidth.Truncate(b.Text(), inner, "…"))
	}
	if lipgloss.Width(body) < inner {
		body += strings.Repeat(" ", inner-lipgloss.Width(body))
	}

	style := theme.FieldBlurred
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = theme.FieldFocused
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(label) + "\n" + style.Width(width).Render(body)
}

// visible returns the rune range of text that fits in cols columns while
// keeping the caret, plus its trailing cell, in view.
func visible(b *practical.Buffer, text []rune, cols int) (from, to int) {
	to = len(text)
	if b.Width()+1 <= cols {
		return 0, to
	}
	skip := max(b.CaretColumn()+1-cols, 0)
	for w := 0; from < len(text) && w < skip; from++ {
		w += runewidth.RuneWidth(text[from])
	}
	to = from
	for w := 0; to < len(text); to++ {
		rw := runewidth.RuneWidth(text[to])
		if w+rw > cols {
			break
		}
		w += rw
	}
	return from, to
}

func renderBuffer(b *practical.Buffer, cols int) string {
	text := []rune(b.Text())
	caret := b.Caret()
	start, end, selected := b.Selection()
	from, to := visible(b, text, cols)

	styles := [...]lipgloss.Style{theme.Body, theme.Selection, theme.Caret}
	kind := func(i int) int {
		switch {
		case selected && i >= start && i < end:
			return 1
		case i == caret && !selected:
			return 2
		}
		return 0
	}

	// Render runs of equally styled runes together.
	var sb strings.Builder
	for i := from; i < to; {
		k := kind(i)
		j := i + 1
		for j < to && kind(j) == k {
			j++
		}
		sb.WriteString(styles[k].Render(string(text[i:j])))
		i = j
	}
	if caret == len(text) && !selected {
		sb.WriteString(theme.Caret.Render(" "))
	}
	return sb.String()
}
