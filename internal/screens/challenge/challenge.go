package challenge

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/layout"
)

// ChallengeScreen runs one mentor's challenges until the mentor is
// finished, serving items the sequencer picks and recording answers.
type ChallengeScreen struct {
	svc         *game.Service
	setID       uuid.UUID
	userID      string
	mentorName  string
	displayName string

	item            *game.ItemView
	choice          components.MultiChoice
	result          *game.AnswerResult
	showingFeedback bool
	finished        bool
	randomSkipped   bool
	answeredCount   int
	correctCount    int
	loading         bool
	errMsg          string
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates a ChallengeScreen for one mentor of a set.
func New(svc *game.Service, setID uuid.UUID, userID, mentorName, displayName string) *ChallengeScreen {
	return &ChallengeScreen{
		svc:         svc,
		setID:       setID,
		userID:      userID,
		mentorName:  mentorName,
		displayName: displayName,
		loading:     true,
	}
}

func (c *ChallengeScreen) Init() tea.Cmd {
	return c.fetchNext()
}

func (c *ChallengeScreen) Title() string {
	return c.displayName
}

func (c *ChallengeScreen) KeyHints() []layout.KeyHint {
	switch {
	case c.finished:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case c.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	default:
		return []layout.KeyHint{
			{Key: "1-4 / Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// fetchNext asks the sequencer for the mentor's next item.
func (c *ChallengeScreen) fetchNext() tea.Cmd {
	return func() tea.Msg {
		next, err := c.svc.NextForMentor(context.Background(), c.setID, c.mentorName, c.userID)
		return nextItemMsg{Next: next, Err: err}
	}
}

// submit records the chosen option. Index 0 lets the service re-resolve
// the same item the sequencer just served; an explicit index would be
// refused as out of order whenever the fallback reached behind the
// cursor.
func (c *ChallengeScreen) submit(answer int) tea.Cmd {
	return func() tea.Msg {
		res, err := c.svc.AnswerMentorItem(
			context.Background(), c.setID, c.mentorName, c.userID, 0, answer)
		return answeredMsg{Result: res, Err: err}
	}
}

func (c *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nextItemMsg:
		c.loading = false
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		if msg.Next.Finished {
			c.finished = true
			// Finishing while the last answer said items remained means
			// the trailing random challenge was skipped, not served.
			c.randomSkipped = c.result != nil && !c.result.MentorFinished
			return c, nil
		}
		c.item = msg.Next.Item
		c.choice = components.NewMultiChoice(msg.Next.Item.Question, msg.Next.Item.Options)
		c.result = nil
		c.showingFeedback = false
		return c, nil

	case answeredMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, game.ErrAlreadyAnswered) {
				// Another path already recorded this item; just move on.
				return c, c.fetchNext()
			}
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.result = msg.Result
		c.answeredCount++
		if msg.Result.Correct {
			c.correctCount++
		}
		c.choice.Resolve(msg.Result.Correct)
		c.showingFeedback = true
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}
	return c, nil
}

func (c *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.errMsg != "" || c.finished {
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if c.loading || c.item == nil {
		return c, nil
	}
	if c.showingFeedback {
		c.showingFeedback = false
		c.loading = true
		if c.result != nil && c.result.MentorFinished {
			c.finished = true
			c.loading = false
			return c, nil
		}
		return c, c.fetchNext()
	}

	var cmd tea.Cmd
	c.choice, cmd = c.choice.Update(msg)
	if c.choice.Submitted && c.result == nil {
		// Options are 0-based in the component, 1-based on the wire.
		return c, c.submit(c.choice.ChosenIndex + 1)
	}
	return c, cmd
}
