package theme

import (
	"charm.land/lipgloss/v2"
)

// Indigo and slate on a dark background, rose for mistakes.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo-500
	Secondary = lipgloss.Color("#818CF8") // indigo-400
	Accent    = lipgloss.Color("#FBBF24") // amber-400
	Success   = lipgloss.Color("#34D399") // emerald-400
	Error     = lipgloss.Color("#F43F5E") // rose-500
	Text      = lipgloss.Color("#F1F5F9") // slate-100
	TextDim   = lipgloss.Color("#94A3B8") // slate-400
	BgDark    = lipgloss.Color("#0F172A") // slate-900
	BgCard    = lipgloss.Color("#1E293B") // slate-800
	Border    = lipgloss.Color("#475569") // slate-600
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	// Subtitle carries the task prompt and category badge.
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Focus on the home options and result buttons.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Task feedback.
var (
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Warning is the mouse banner in practical mode.
	Warning = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Accent).
		Bold(true).
		Padding(0, 1)
)

// Keycaps draw combos; a held cap lights up.
var (
	Keycap = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	KeycapHeld = Keycap.
			BorderForeground(Secondary).
			Foreground(Secondary).
			Bold(true)
)

// Practical text fields.
var (
	FieldBlurred = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	FieldFocused = FieldBlurred.BorderForeground(Primary)

	Selection = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(BgDark)

	Caret = lipgloss.NewStyle().Reverse(true)
)
