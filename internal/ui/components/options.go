package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// Option is a labelled setting cycled through a fixed list of values.
type Option struct {
	Label  string
	Values []string
	Index  int
}

// NewOption selects current if it is one of values, else the first value.
func NewOption(label string, values []string, current string) Option {
	o := Option{Label: label, Values: values}
	for i, v := range values {
		if v == current {
			o.Index = i
		}
	}
	return o
}

// Value returns the selected value.
func (o Option) Value() string {
	if len(o.Values) == 0 {
		return ""
	}
	return o.Values[o.Index]
}

// Next selects the following value, wrapping.
func (o *Option) Next() {
	if len(o.Values) > 0 {
		o.Index = (o.Index + 1) % len(o.Values)
	}
}

// Prev selects the preceding value, wrapping.
func (o *Option) Prev() {
	if len(o.Values) > 0 {
		o.Index = (o.Index - 1 + len(o.Values)) % len(o.Values)
	}
}

// View renders "Label  ◂ value ▸" with labelWidth padding.
func (o Option) View(focused bool, labelWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim).Render(o.Label)
	if !focused {
		return "    " + label + theme.Unselected.Render("  "+o.Value()+"  ")
	}
	return theme.Selected.Render("  ▸ ") + label + theme.Selected.Render("◂ "+o.Value()+" ▸")
}
