package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/ui/theme"
)

func (c *ChallengeScreen) View(width, height int) string {
	switch {
	case c.errMsg != "":
		return renderError(width, c.errMsg)
	case c.finished:
		return c.renderFinished(width)
	case c.loading || c.item == nil:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n  Facing %s...", c.displayName))
	case c.showingFeedback:
		return c.renderFeedback(width)
	default:
		return c.renderQuestion(width)
	}
}

// renderQuestion renders the served item with the choice selector.
func (c *ChallengeScreen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Mentor: %s", c.displayName))

	kind := c.item.Kind
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  Q %d  %s %d",
			kind,
			c.answeredCount+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			c.correctCount,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	choice := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(c.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choice))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter"))

	return b.String()
}

// renderFeedback renders the judgment for the last answer.
func (c *ChallengeScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if c.result.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}

	b.WriteString("\n\n")

	choice := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(c.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choice))
	b.WriteString("\n")

	// The explanation is only revealed on a correct answer.
	if c.result.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(c.result.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderFinished renders the mentor-complete screen.
func (c *ChallengeScreen) renderFinished(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%s has nothing left for you", c.displayName)))
	b.WriteString("\n\n")

	if c.answeredCount > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("This run: %d of %d correct", c.correctCount, c.answeredCount)))
		b.WriteString("\n")
	}

	if c.randomSkipped {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("The final wildcard was waved off. Lucky you."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back."))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
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
