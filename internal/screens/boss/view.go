package boss

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/theme"
)

const bossArt = `  ▄▄▄▄▄▄▄▄▄
 ▐ ◣     ◢ ▌
 ▐  ▼   ▼  ▌
 ▐    ▄    ▌
  ▀▀▀▀▀▀▀▀▀`

func (b *BossScreen) View(width, height int) string {
	switch {
	case b.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", b.errMsg))
	case b.phase == phaseGate:
		return b.renderGate(width)
	case b.phase == phaseItem:
		return b.renderItem(width)
	case b.phase == phaseFeedback:
		return b.renderFeedback(width)
	case b.phase == phaseDone:
		return b.renderDone(width)
	default:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Approaching the gate...")
	}
}

// renderGate renders the locked gate with eligibility progress.
func (b *BossScreen) renderGate(width int) string {
	var s strings.Builder
	s.WriteString("\n")

	s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Render(bossArt)))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("THE GATE IS SHUT"))
	s.WriteString("\n\n")

	el := b.eligibility
	if el != nil {
		cw := min(width-8, 50)
		percent := float64(el.Correct) / float64(el.Threshold)
		bar := components.NewProgressBar("", percent, false, min(cw-8, 40))
		tally := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d / %d correct  (main %d, wildcard %d)",
				el.Correct, el.Threshold, el.CorrectMain, el.CorrectRandom))
		card := components.ArcadeCard(bar.View()+"\n"+tally, cw)
		s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		s.WriteString("\n\n")

		if el.Eligible {
			s.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.ArcadeYellow).
				Bold(true).
				Render("You are worthy. Press Enter to break the seal."))
		} else {
			s.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Defeat %d more mentor challenges to qualify.", el.Pending)))
		}
	}

	if b.notice != "" {
		s.WriteString("\n\n")
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(b.notice))
	}

	return s.String()
}

// renderItem renders the current boss item.
func (b *BossScreen) renderItem(width int) string {
	var s strings.Builder

	stage := b.item.Index - genset.BossRangeStart + 1
	total := genset.TotalItems - genset.BossRangeStart + 1
	s.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("BOSS STAGE %d/%d", stage, total)))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	s.WriteString("\n\n")

	choice := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(b.choice.View())
	s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choice))

	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter"))

	return s.String()
}

// renderFeedback renders the judgment for the last boss answer.
func (b *BossScreen) renderFeedback(width int) string {
	var s strings.Builder
	s.WriteString("\n\n")

	if b.result.Correct {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("The boss shrugs it off"))
	}

	s.WriteString("\n\n")

	choice := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(b.choice.View())
	s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choice))
	s.WriteString("\n")

	if b.result.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(b.result.Explanation)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return s.String()
}

// renderDone renders the post-boss state.
func (b *BossScreen) renderDone(width int) string {
	var s strings.Builder
	s.WriteString("\n\n\n")

	if b.completed {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render("THE GAUNTLET FALLS"))
		s.WriteString("\n\n")
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Every stage is behind you."))
	} else {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("No boss stages remain."))
	}

	s.WriteString("\n\n")
	s.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return s.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
