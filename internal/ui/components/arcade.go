package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all arcade sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 74 {
		w = 74
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a styled fixed-width button.
func ArcadeButton(label string, selected, disabled bool, width int) string {
	base := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case disabled:
		return base.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	case selected:
		return base.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	default:
		return base.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}
