package game

import (
	"context"
	"errors"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
	"github.com/google/uuid"
)

// BossEligibility counts correct attempts among the set's main and
// random items and reports progress toward the unlock threshold.
func (s *Service) BossEligibility(ctx context.Context, setID uuid.UUID) (*Eligibility, error) {
	set, err := s.sets.Get(ctx, setID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, err
	}

	correctMain, correctRandom, err := s.correctNonBoss(ctx, setID, set.UserID)
	if err != nil {
		return nil, err
	}

	correct := correctMain + correctRandom
	pending := BossUnlockThreshold - correct
	if pending < 0 {
		pending = 0
	}
	return &Eligibility{
		CorrectMain:   correctMain,
		CorrectRandom: correctRandom,
		Correct:       correct,
		Threshold:     BossUnlockThreshold,
		Pending:       pending,
		Eligible:      correct >= BossUnlockThreshold,
		Rule:          BossUnlockRule(),
	}, nil
}

// correctNonBoss tallies the user's correct attempts on main and random
// items of the set.
func (s *Service) correctNonBoss(ctx context.Context, setID uuid.UUID, userID string) (int, int, error) {
	items, err := s.sets.Items(ctx, setID)
	if err != nil {
		return 0, 0, err
	}
	kindByIndex := make(map[int]store.ItemKind, len(items))
	for _, it := range items {
		if it.Kind != store.KindBoss {
			kindByIndex[it.ItemIndex] = it.Kind
		}
	}

	attempts, err := s.attempts.ListBySetUser(ctx, setID, userID)
	if err != nil {
		return 0, 0, err
	}

	var correctMain, correctRandom int
	for _, a := range attempts {
		if !a.IsCorrect {
			continue
		}
		switch kindByIndex[a.ItemIndex] {
		case store.KindMain:
			correctMain++
		case store.KindRandom:
			correctRandom++
		}
	}
	return correctMain, correctRandom, nil
}

// UnlockBoss performs the one-way boss gate transition.
//
// Unlocking an already-unlocked set reports success without re-checking
// eligibility; the gate never re-locks. An open set below the threshold
// fails with ErrNotEligible.
func (s *Service) UnlockBoss(ctx context.Context, setID uuid.UUID, userID string) (*UnlockResult, error) {
	set, err := s.sets.Get(ctx, setID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, err
	}
	if set.UserID != userID {
		return nil, ErrOwnershipMismatch
	}
	if set.Status != store.StatusOpen {
		return nil, ErrSetNotOpen
	}
	if set.BossUnlocked {
		return &UnlockResult{Unlocked: true, Already: true}, nil
	}

	correctMain, correctRandom, err := s.correctNonBoss(ctx, setID, userID)
	if err != nil {
		return nil, err
	}
	correct := correctMain + correctRandom
	if correct < BossUnlockThreshold {
		return nil, &ErrNotEligible{Correct: correct, Threshold: BossUnlockThreshold}
	}

	if err := s.sets.UnlockBoss(ctx, setID); err != nil {
		return nil, err
	}
	return &UnlockResult{Unlocked: true, Correct: correct}, nil
}

// BossItem serves a boss-stage item DTO. The index must lie in the boss
// range and the gate must be open.
func (s *Service) BossItem(ctx context.Context, setID uuid.UUID, userID string, index int) (*ItemView, error) {
	if index < genset.BossRangeStart || index > genset.TotalItems {
		return nil, ErrNotBossItem
	}

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
	if !set.BossUnlocked {
		return nil, ErrBossLocked
	}

	item, err := s.sets.ItemByIndex(ctx, setID, index)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if item.Kind != store.KindBoss {
		return nil, ErrNotBossItem
	}
	return itemView(item), nil
}

// NextBossIndex returns the smallest unanswered boss index, or done=true
// when every boss item has an attempt. The gate must be open.
func (s *Service) NextBossIndex(ctx context.Context, setID uuid.UUID, userID string) (int, bool, error) {
	set, err := s.sets.Get(ctx, setID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, false, ErrSetNotFound
	}
	if err != nil {
		return 0, false, err
	}
	if set.UserID != userID {
		return 0, false, ErrOwnershipMismatch
	}
	if !set.BossUnlocked {
		return 0, false, ErrBossLocked
	}

	answered, err := s.answeredIndexes(ctx, setID, userID)
	if err != nil {
		return 0, false, err
	}
	for i := genset.BossRangeStart; i <= genset.TotalItems; i++ {
		if !answered[i] {
			return i, false, nil
		}
	}
	return 0, true, nil
}

// AnswerBossItem records an answer for a boss item. Same contract as
// AnswerItem restricted to the boss range.
func (s *Service) AnswerBossItem(ctx context.Context, setID uuid.UUID, userID string, index, answer int) (*AnswerResult, error) {
	if index < genset.BossRangeStart || index > genset.TotalItems {
		return nil, ErrNotBossItem
	}
	return s.AnswerItem(ctx, setID, userID, index, answer)
}
