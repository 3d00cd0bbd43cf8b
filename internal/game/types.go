package game

import "github.com/google/uuid"

// StartResult describes the set a tier start resolved to.
type StartResult struct {
	SetID        uuid.UUID
	Tier         string
	Status       string
	NextIndex    int
	BossUnlocked bool
	Reused       bool
}

// ItemView is the player-facing item DTO. It never carries the answer
// key or the explanation.
type ItemView struct {
	Index    int
	Kind     string
	Mentor   string
	Question string
	Options  []string
}

// NextItem is the result of asking for a mentor's next item.
type NextItem struct {
	// Finished is true when the mentor has no item left to serve,
	// either because all were answered or the trailing random item
	// was skipped.
	Finished bool

	// Item is set when Finished is false.
	Item *ItemView
}

// AnswerResult reports the outcome of recording one answer.
type AnswerResult struct {
	Correct bool

	// Explanation is only revealed on a correct answer.
	Explanation string

	NextIndex int
	Completed bool

	// MentorFinished reports whether the answered item's mentor has no
	// unanswered items left. Always false for boss answers.
	MentorFinished bool
}

// Eligibility reports progress toward the boss gate.
type Eligibility struct {
	CorrectMain   int
	CorrectRandom int
	Correct       int
	Threshold     int
	Pending       int
	Eligible      bool
	Rule          string
}

// UnlockResult reports a boss unlock.
type UnlockResult struct {
	Unlocked bool

	// Already is true when the gate was open before this call.
	Already bool

	Correct int
}

// MentorStatus is a mentor's per-set progress line.
type MentorStatus struct {
	Name        string
	DisplayName string
	Flavor      string
	Total       int
	Answered    int
	Correct     int
}

// SetSummary is the full progress picture for one set.
type SetSummary struct {
	SetID         uuid.UUID
	Tier          string
	Status        string
	NextIndex     int
	BossUnlocked  bool
	Score         int
	Attempted     int
	Correct       int
	CorrectMain   int
	CorrectRandom int
	CorrectBoss   int
}
