package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/ui/theme"
)

const bannerArt = `
  ██████╗  █████╗ ██╗   ██╗███╗   ██╗████████╗██╗     ███████╗████████╗
 ██╔════╝ ██╔══██╗██║   ██║████╗  ██║╚══██╔══╝██║     ██╔════╝╚══██╔══╝
 ██║  ███╗███████║██║   ██║██╔██╗ ██║   ██║   ██║     █████╗     ██║
 ██║   ██║██╔══██║██║   ██║██║╚██╗██║   ██║   ██║     ██╔══╝     ██║
 ╚██████╔╝██║  ██║╚██████╔╝██║ ╚████║   ██║   ███████╗███████╗   ██║
  ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "G A U N T L E T"

// RenderBanner returns the GAUNTLET banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
