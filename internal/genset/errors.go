package genset

import "fmt"

// ErrInvalidBatch indicates the generator output could not be parsed into
// a valid candidate batch, or an element failed validation. Position is
// the 1-based element position, or 0 for batch-level failures.
type ErrInvalidBatch struct {
	Position int
	Reason   string
	Err      error
}

func (e *ErrInvalidBatch) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("candidate %d: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("invalid candidate batch: %s", e.Reason)
}

func (e *ErrInvalidBatch) Unwrap() error { return e.Err }

// ErrInsufficientBoss indicates the batch had fewer boss candidates than
// the primary tier requires.
type ErrInsufficientBoss struct {
	Have int
}

func (e *ErrInsufficientBoss) Error() string {
	return fmt.Sprintf("expected %d boss candidates, got %d", BossCount, e.Have)
}

// ErrInsufficientMentorItems indicates a mentor did not have enough main
// or random candidates to fill its quota.
type ErrInsufficientMentorItems struct {
	Mentor  string
	Mains   int
	Randoms int
}

func (e *ErrInsufficientMentorItems) Error() string {
	return fmt.Sprintf("mentor %s needs at least %d main + %d random candidates, got main=%d random=%d",
		e.Mentor, MainsPerMentor, RandomsPerMentor, e.Mains, e.Randoms)
}

// ErrRedistribution indicates the post-composition recheck found a count
// mismatch. Unreachable when selection is correct; treated as fatal so a
// malformed set is never persisted.
type ErrRedistribution struct {
	Detail string
}

func (e *ErrRedistribution) Error() string {
	return fmt.Sprintf("inconsistent set after composition: %s", e.Detail)
}
