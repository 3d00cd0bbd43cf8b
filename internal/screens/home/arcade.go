package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██████╗  █████╗ ██╗   ██╗███╗   ██╗████████╗██╗     ███████╗████████╗
██╔════╝ ██╔══██╗██║   ██║████╗  ██║╚══██╔══╝██║     ██╔════╝╚══██╔══╝
██║  ███╗███████║██║   ██║██╔██╗ ██║   ██║   ██║     █████╗     ██║
██║   ██║██╔══██║██║   ██║██║╚██╗██║   ██║   ██║     ██╔══╝     ██║
╚██████╔╝██║  ██║╚██████╔╝██║ ╚████║   ██║   ███████╗███████╗   ██║
 ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚══════╝   ╚═╝`

const arcadeTitleCompact = "G · A · U · N · T · L · E · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(score, correct, pending int, bossUnlocked bool, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	correctStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	gateStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			scoreStyle.Render(fmt.Sprintf("★%d", score)),
			correctStyle.Render(fmt.Sprintf("✓%d", correct)),
			gateText(pending, bossUnlocked, true, gateStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("★ %d SCORE", score)),
			correctStyle.Render(fmt.Sprintf("✓ %d CORRECT", correct)),
			gateText(pending, bossUnlocked, false, gateStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func gateText(pending int, unlocked, compact bool, active, dim lipgloss.Style) string {
	if unlocked {
		if compact {
			return active.Render("⚔OPEN")
		}
		return active.Render("⚔ GATE OPEN")
	}
	if compact {
		return dim.Render(fmt.Sprintf("⚔%d", pending))
	}
	return dim.Render(fmt.Sprintf("⚔ %d TO GATE", pending))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons,
			components.ArcadeButton(label, i == selected, disabled[i], buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
