package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/store"
	"github.com/abhisek/gauntlet/internal/ui/layout"
	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// summaryMsg carries the loaded set summary.
type summaryMsg struct {
	Summary *game.SetSummary
	Err     error
}

// SummaryScreen displays the final tally for a set.
type SummaryScreen struct {
	svc    *game.Service
	setID  uuid.UUID
	userID string

	summary *game.SetSummary
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the given set.
func New(svc *game.Service, setID uuid.UUID, userID string) *SummaryScreen {
	return &SummaryScreen{svc: svc, setID: setID, userID: userID}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sum, err := s.svc.SetSummary(context.Background(), s.setID, s.userID)
		return summaryMsg{Summary: sum, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Run Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summary = msg.Summary
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	sum := s.summary
	if sum == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Tallying the run...")
	}

	var b strings.Builder

	completed := sum.Status == string(store.StatusCompleted)
	title := "Run in progress"
	if completed {
		title = "Gauntlet complete!"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	accuracy := "—"
	if sum.Attempted > 0 {
		accuracy = fmt.Sprintf("%.0f%%", float64(sum.Correct)/float64(sum.Attempted)*100)
	}
	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %s",
		sum.Attempted, sum.Correct, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("★ SCORE %d", sum.Score)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Stages")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, row := range []struct {
		label   string
		correct int
	}{
		{"Mentor challenges", sum.CorrectMain},
		{"Wildcards", sum.CorrectRandom},
		{"Boss stages", sum.CorrectBoss},
	} {
		line := fmt.Sprintf("  %-20s %d correct", row.label, row.correct)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if sum.BossUnlocked && !completed {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeCyan).
			Render("The boss gate stands open."))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
