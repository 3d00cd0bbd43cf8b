package game

import (
	"errors"
	"fmt"
)

var (
	// ErrSetNotFound indicates the requested set does not exist.
	ErrSetNotFound = errors.New("set not found")

	// ErrSetNotOpen indicates the set is completed or invalid.
	ErrSetNotOpen = errors.New("set is not open")

	// ErrOwnershipMismatch indicates the caller does not own the set.
	ErrOwnershipMismatch = errors.New("set belongs to another user")

	// ErrMentorNotFound indicates the mentor is not part of the tier.
	ErrMentorNotFound = errors.New("mentor not found")

	// ErrItemNotFound indicates no item exists at the requested index.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotBossItem indicates the index is outside the boss range.
	ErrNotBossItem = errors.New("not a boss item")

	// ErrBossLocked indicates the boss stage has not been unlocked.
	ErrBossLocked = errors.New("boss stage is locked")

	// ErrAlreadyAnswered indicates an attempt already exists for the
	// item; answers are write-once.
	ErrAlreadyAnswered = errors.New("item already answered")
)

// ErrOutOfOrderIndex indicates an explicitly requested item index behind
// the set's cursor. Explicit answers follow global order; only the
// sequencer's own resolution may reach back past the cursor.
type ErrOutOfOrderIndex struct {
	Index    int
	Expected int
}

func (e *ErrOutOfOrderIndex) Error() string {
	return fmt.Sprintf("item %d is behind the cursor, next expected index is %d", e.Index, e.Expected)
}

// ErrNotEligible indicates a boss unlock was requested before reaching
// the correct-answer threshold.
type ErrNotEligible struct {
	Correct   int
	Threshold int
}

func (e *ErrNotEligible) Error() string {
	return fmt.Sprintf("boss not unlockable: %d correct, %s", e.Correct, BossUnlockRule())
}

// ErrRateLimited indicates the caller exceeded the request budget for
// the current window.
type ErrRateLimited struct {
	Key string
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s", e.Key)
}
