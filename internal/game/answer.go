package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/gauntlet/internal/store"
	"github.com/google/uuid"
)

// AnswerItem records one answer for an item of a set. Answers are
// write-once; correctness bumps the player's tier score; the cursor
// advances one past the answered index, capped at the terminal value,
// and the set completes when the cursor reaches it. The explanation is
// only returned when the answer is correct.
func (s *Service) AnswerItem(ctx context.Context, setID uuid.UUID, userID string, itemIndex, answer int) (*AnswerResult, error) {
	set, err := s.sets.Get(ctx, setID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, err
	}
	if set.Status != store.StatusOpen {
		return nil, ErrSetNotOpen
	}
	if set.UserID != userID {
		return nil, ErrOwnershipMismatch
	}

	item, err := s.sets.ItemByIndex(ctx, setID, itemIndex)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if item.Kind == store.KindBoss && !set.BossUnlocked {
		return nil, ErrBossLocked
	}

	correct := answer == item.AnswerIndex

	// The unique index on (set, user, item_index) closes the window
	// between any earlier duplicate check and this insert.
	err = s.attempts.Create(ctx, store.Attempt{
		SetID:       setID,
		UserID:      userID,
		ItemIndex:   itemIndex,
		AnswerGiven: answer,
		IsCorrect:   correct,
	})
	if errors.Is(err, store.ErrDuplicateAttempt) {
		return nil, ErrAlreadyAnswered
	}
	if err != nil {
		return nil, err
	}

	if correct {
		if err := s.players.AddScore(ctx, userID, set.Tier, 1); err != nil {
			return nil, fmt.Errorf("update score: %w", err)
		}
	}

	next := itemIndex + 1
	if next > TerminalIndex {
		next = TerminalIndex
	}
	// The repo reports the persisted cursor: answering behind it (the
	// sequencer's fallback does this) must not make the cursor appear to
	// rewind.
	cursor, err := s.sets.AdvanceCursor(ctx, setID, next, next == TerminalIndex)
	if err != nil {
		return nil, err
	}
	completed := cursor == TerminalIndex

	res := &AnswerResult{
		Correct:   correct,
		NextIndex: cursor,
		Completed: completed,
	}
	if correct {
		res.Explanation = item.Explanation
	}
	return res, nil
}

// AnswerMentorItem answers one of a mentor's items. When itemIndex is 0
// the target is resolved with the same preference the sequencer uses,
// including its fallback past the cursor. An explicit itemIndex behind
// the cursor is rejected with ErrOutOfOrderIndex. The result
// additionally reports whether the mentor has unanswered items left.
func (s *Service) AnswerMentorItem(ctx context.Context, setID uuid.UUID, mentorName, userID string, itemIndex, answer int) (*AnswerResult, error) {
	set, err := s.sets.Get(ctx, setID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, err
	}
	if set.Status != store.StatusOpen {
		return nil, ErrSetNotOpen
	}
	if set.UserID != userID {
		return nil, ErrOwnershipMismatch
	}

	items, err := s.mentorItems(ctx, setID, mentorName)
	if err != nil {
		return nil, err
	}

	if itemIndex == 0 {
		answered, err := s.answeredIndexes(ctx, setID, userID)
		if err != nil {
			return nil, err
		}
		var remaining []store.Item
		for _, it := range items {
			if !answered[it.ItemIndex] {
				remaining = append(remaining, it)
			}
		}
		if len(remaining) == 0 {
			return &AnswerResult{MentorFinished: true}, nil
		}
		itemIndex = pickNext(remaining, set.NextIndex).ItemIndex
	} else {
		found := false
		for _, it := range items {
			if it.ItemIndex == itemIndex {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrItemNotFound
		}
		if itemIndex < set.NextIndex {
			return nil, &ErrOutOfOrderIndex{Index: itemIndex, Expected: set.NextIndex}
		}
	}

	res, err := s.AnswerItem(ctx, setID, userID, itemIndex, answer)
	if err != nil {
		return nil, err
	}

	answered, err := s.answeredIndexes(ctx, setID, userID)
	if err != nil {
		return nil, err
	}
	res.MentorFinished = true
	for _, it := range items {
		if !answered[it.ItemIndex] {
			res.MentorFinished = false
			break
		}
	}
	return res, nil
}
