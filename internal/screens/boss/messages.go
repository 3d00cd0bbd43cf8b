package boss

import "github.com/abhisek/gauntlet/internal/game"

// setMsg carries the resolved open set.
type setMsg struct {
	Result *game.StartResult
	Err    error
}

// eligibilityMsg carries gate progress while the boss is locked.
type eligibilityMsg struct {
	Eligibility *game.Eligibility
	Err         error
}

// unlockMsg reports the outcome of an unlock attempt.
type unlockMsg struct {
	Result *game.UnlockResult
	Err    error
}

// itemMsg carries the next boss item, or Done when none remain.
type itemMsg struct {
	Item *game.ItemView
	Done bool
	Err  error
}

// answeredMsg reports a recorded boss answer.
type answeredMsg struct {
	Result *game.AnswerResult
	Err    error
}
