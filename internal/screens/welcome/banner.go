package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shortcutmaster/internal/ui/theme"
)

// Tagline is shown under the banner.
const Tagline = "Hands on the keyboard. Mouse in the drawer."

const bannerWide = "S H O R T C U T   M A S T E R"

const bannerCompact = "SHORTCUT MASTER"

// RenderBanner returns the banner styled in the accent color, with a compact
// fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < len(bannerWide)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerWide)
}
