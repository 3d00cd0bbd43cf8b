package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector component. The correct
// option is not known up front; call Resolve once the answer has been
// judged to color the chosen option.
type MultiChoice struct {
	Question    string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int

	resolved bool
	correct  bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:    question,
		Options:     options,
		Selected:    0,
		Submitted:   false,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(m.Options) {
			m.Selected = idx
			m.Submitted = true
			m.ChosenIndex = idx
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Resolve records the judgment for the chosen option.
func (m *MultiChoice) Resolve(correct bool) {
	m.resolved = true
	m.correct = correct
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i]
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.resolved {
			switch {
			case i == m.ChosenIndex && m.correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == m.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else if i == m.Selected && !m.Submitted {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports the resolved judgment.
func (m MultiChoice) IsCorrect() bool {
	return m.resolved && m.correct
}
