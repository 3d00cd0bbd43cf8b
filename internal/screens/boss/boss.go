package boss

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/screens/summary"
	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/layout"
)

// phase tracks which part of the boss flow is on screen.
type phase int

const (
	phaseLoading phase = iota
	phaseGate          // locked: eligibility + unlock prompt
	phaseItem          // unlocked: answering boss items
	phaseFeedback
	phaseDone // all boss items answered
)

// BossScreen drives the boss gate: it shows eligibility while the gate
// is shut, performs the unlock, and then runs the five boss items.
type BossScreen struct {
	svc    *game.Service
	userID string
	tier   genset.Tier

	setID       uuid.UUID
	phase       phase
	eligibility *game.Eligibility
	item        *game.ItemView
	choice      components.MultiChoice
	result      *game.AnswerResult
	completed   bool
	notice      string
	errMsg      string
}

var _ screen.Screen = (*BossScreen)(nil)
var _ screen.KeyHintProvider = (*BossScreen)(nil)

// New creates a BossScreen for the user's open set of the tier.
func New(svc *game.Service, userID string, tier genset.Tier) *BossScreen {
	return &BossScreen{
		svc:    svc,
		userID: userID,
		tier:   tier,
		phase:  phaseLoading,
	}
}

func (b *BossScreen) Init() tea.Cmd {
	return b.loadSet()
}

func (b *BossScreen) Title() string {
	return "Boss Gate"
}

func (b *BossScreen) KeyHints() []layout.KeyHint {
	switch b.phase {
	case phaseGate:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseItem:
		return []layout.KeyHint{
			{Key: "1-4 / Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
}

func (b *BossScreen) loadSet() tea.Cmd {
	return func() tea.Msg {
		res, err := b.svc.CurrentSet(context.Background(), b.userID, b.tier)
		return setMsg{Result: res, Err: err}
	}
}

func (b *BossScreen) loadEligibility() tea.Cmd {
	setID := b.setID
	return func() tea.Msg {
		el, err := b.svc.BossEligibility(context.Background(), setID)
		return eligibilityMsg{Eligibility: el, Err: err}
	}
}

func (b *BossScreen) unlock() tea.Cmd {
	setID := b.setID
	return func() tea.Msg {
		res, err := b.svc.UnlockBoss(context.Background(), setID, b.userID)
		return unlockMsg{Result: res, Err: err}
	}
}

// loadItem resolves the next unanswered boss index and serves it.
func (b *BossScreen) loadItem() tea.Cmd {
	setID := b.setID
	return func() tea.Msg {
		index, done, err := b.svc.NextBossIndex(context.Background(), setID, b.userID)
		if err != nil {
			return itemMsg{Err: err}
		}
		if done {
			return itemMsg{Done: true}
		}
		item, err := b.svc.BossItem(context.Background(), setID, b.userID, index)
		return itemMsg{Item: item, Err: err}
	}
}

func (b *BossScreen) submit(index, answer int) tea.Cmd {
	setID := b.setID
	return func() tea.Msg {
		res, err := b.svc.AnswerBossItem(context.Background(), setID, b.userID, index, answer)
		return answeredMsg{Result: res, Err: err}
	}
}

func (b *BossScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setMsg:
		if errors.Is(msg.Err, game.ErrSetNotFound) {
			b.errMsg = "No open set. Enter the gauntlet first."
			return b, nil
		}
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.setID = msg.Result.SetID
		if msg.Result.BossUnlocked {
			return b, b.loadItem()
		}
		return b, b.loadEligibility()

	case eligibilityMsg:
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.eligibility = msg.Eligibility
		b.phase = phaseGate
		return b, nil

	case unlockMsg:
		var notEligible *game.ErrNotEligible
		if errors.As(msg.Err, &notEligible) {
			b.notice = notEligible.Error()
			return b, b.loadEligibility()
		}
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.notice = ""
		b.phase = phaseLoading
		return b, b.loadItem()

	case itemMsg:
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		if msg.Done {
			b.phase = phaseDone
			return b, nil
		}
		b.item = msg.Item
		b.choice = components.NewMultiChoice(msg.Item.Question, msg.Item.Options)
		b.result = nil
		b.phase = phaseItem
		return b, nil

	case answeredMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, game.ErrAlreadyAnswered) {
				return b, b.loadItem()
			}
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.result = msg.Result
		b.completed = b.completed || msg.Result.Completed
		b.choice.Resolve(msg.Result.Correct)
		b.phase = phaseFeedback
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *BossScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if b.errMsg != "" {
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch b.phase {
	case phaseLoading:
		return b, nil

	case phaseGate:
		if msg.String() == "enter" {
			return b, b.unlock()
		}
		return b, nil

	case phaseItem:
		var cmd tea.Cmd
		b.choice, cmd = b.choice.Update(msg)
		if b.choice.Submitted && b.result == nil {
			return b, b.submit(b.item.Index, b.choice.ChosenIndex+1)
		}
		return b, cmd

	case phaseFeedback:
		b.phase = phaseLoading
		return b, b.loadItem()

	case phaseDone:
		if b.completed {
			svc, setID, userID := b.svc, b.setID, b.userID
			return b, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(svc, setID, userID)}
			}
		}
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return b, nil
}
