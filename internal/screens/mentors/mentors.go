package mentors

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/screens/challenge"
	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/layout"
	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// startedMsg is sent when the tier's set has been resolved or generated.
type startedMsg struct {
	Result *game.StartResult
	Err    error
}

// progressMsg carries refreshed per-mentor progress.
type progressMsg struct {
	Progress []game.MentorStatus
	Err      error
}

// MentorsScreen lists the tier's mentors and opens a challenge run for
// the selected one.
type MentorsScreen struct {
	svc    *game.Service
	userID string
	tier   genset.Tier

	setID    uuid.UUID
	started  bool
	progress []game.MentorStatus
	cursor   int
	errMsg   string
	spin     spinner.Model
}

var _ screen.Screen = (*MentorsScreen)(nil)
var _ screen.KeyHintProvider = (*MentorsScreen)(nil)

// New creates a new MentorsScreen.
func New(svc *game.Service, userID string, tier genset.Tier) *MentorsScreen {
	return &MentorsScreen{
		svc:    svc,
		userID: userID,
		tier:   tier,
		spin:   components.NewSpinner(),
	}
}

func (m *MentorsScreen) Init() tea.Cmd {
	return tea.Batch(m.start(), m.spin.Tick)
}

func (m *MentorsScreen) Title() string {
	return "The Gauntlet"
}

func (m *MentorsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Face mentor"},
		{Key: "Esc", Description: "Back"},
	}
}

// start resumes or generates the set for this tier.
func (m *MentorsScreen) start() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.StartTier(context.Background(), m.userID, m.tier)
		return startedMsg{Result: res, Err: err}
	}
}

// loadProgress refreshes the per-mentor tallies.
func (m *MentorsScreen) loadProgress() tea.Cmd {
	setID := m.setID
	return func() tea.Msg {
		progress, err := m.svc.MentorProgress(context.Background(), setID, m.userID)
		return progressMsg{Progress: progress, Err: err}
	}
}

func (m *MentorsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.setID = msg.Result.SetID
		m.started = true
		return m, m.loadProgress()

	case progressMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.progress = msg.Progress
		return m, nil

	case spinner.TickMsg:
		if m.started || m.errMsg != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.errMsg != "" {
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if !m.started {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.progress)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.selectMentor()
		default:
			// Returning from a challenge run; tallies may be stale.
			return m, m.loadProgress()
		}
	}
	return m, nil
}

// selectMentor opens the challenge run for the mentor under the cursor.
func (m *MentorsScreen) selectMentor() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.progress) {
		return nil
	}
	ms := m.progress[m.cursor]
	svc, setID, userID := m.svc, m.setID, m.userID
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: challenge.New(svc, setID, userID, ms.Name, displayName(ms)),
		}
	}
}

func displayName(ms game.MentorStatus) string {
	if ms.DisplayName != "" {
		return ms.DisplayName
	}
	return ms.Name
}

func (m *MentorsScreen) View(width, height int) string {
	if m.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", m.errMsg))
	}
	if !m.started {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  " + m.spin.View() + " Summoning the gauntlet...")
	}

	var lines []string
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Padding(1, 0, 1, 2).
		Render("CHOOSE YOUR MENTOR")
	lines = append(lines, header)

	for i, ms := range m.progress {
		lines = append(lines, m.renderMentorRow(ms, i == m.cursor, width))
	}

	return strings.Join(lines, "\n")
}

// renderMentorRow renders one mentor with progress tallies.
func (m *MentorsScreen) renderMentorRow(ms game.MentorStatus, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	done := ms.Total > 0 && ms.Answered >= ms.Total
	icon := "◇"
	if done {
		icon = "◆"
	}

	progress := fmt.Sprintf("%d/%d", ms.Answered, ms.Total)
	correct := fmt.Sprintf("✓%d", ms.Correct)

	var nameStyle, tallyStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		tallyStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case done:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		tallyStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		tallyStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	name := fmt.Sprintf("%-20s", displayName(ms))
	row := fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(name),
		tallyStyle.Render(progress),
		tallyStyle.Render(correct),
	)
	if ms.Flavor != "" && selected {
		row += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Padding(0, 0, 0, 7).
			Render(ms.Flavor)
	}
	return row
}
