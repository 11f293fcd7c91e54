package layout

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestHintsSkipsBindingsWithoutHelp(t *testing.T) {
	hints := Hints(
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Skip")),
		key.NewBinding(key.WithKeys("down")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Off"), key.WithDisabled()),
	)
	assert.Equal(t, []KeyHint{{Key: "Tab", Description: "Skip"}}, hints)
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Quiz", "3/10", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.Contains(t, header, "Shortcut Master")
	assert.Contains(t, header, "3/10")
	assert.Contains(t, footer, "Esc")
}

func TestContentHeight(t *testing.T) {
	header := RenderHeader("Quiz", "", 80)
	footer := RenderFooter(nil, 80)
	assert.Equal(t, 30-lipgloss.Height(header)-lipgloss.Height(footer), ContentHeight(header, footer, 30))
	assert.Zero(t, ContentHeight(header, footer, 2))
}

func TestMinSizeMessageNamesSizes(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	assert.Contains(t, msg, "40 x 10")
	assert.Contains(t, msg, "60 x 20")
}
