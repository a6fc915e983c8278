package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veretenov/smtree/pkg/model"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel    = lipgloss.NewStyle().Foreground(colorGray)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleWarning  = lipgloss.NewStyle().Foreground(colorYellow)
)

// glyph returns the tree-line marker for an item kind.
func glyph(k model.Kind) string {
	switch k {
	case model.KindMachine:
		return "◇"
	case model.KindStates:
		return "▤"
	case model.KindTransitions:
		return "⇄"
	case model.KindState:
		return "▢"
	case model.KindInitial:
		return "◉"
	case model.KindComment:
		return "✎"
	case model.KindTransition:
		return "→"
	case model.KindAction:
		return "·"
	default:
		return " "
	}
}
