package game

import (
	"context"
	"errors"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
	"github.com/google/uuid"
)

// ResetAttempts deletes the user's attempts for item indexes in
// [from, to] and returns how many were removed. It touches nothing else:
// the cursor and score are left as they are.
func (s *Service) ResetAttempts(ctx context.Context, setID uuid.UUID, userID string, from, to int) (int, error) {
	set, err := s.sets.Get(ctx, setID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrSetNotFound
	}
	if err != nil {
		return 0, err
	}
	if set.UserID != userID {
		return 0, ErrOwnershipMismatch
	}

	return s.attempts.DeleteRange(ctx, setID, userID, from, to)
}

// ResetBossAttempts clears the boss-stage attempts so the boss sub-flow
// can be retried.
func (s *Service) ResetBossAttempts(ctx context.Context, setID uuid.UUID, userID string) (int, error) {
	return s.ResetAttempts(ctx, setID, userID, genset.BossRangeStart, genset.TotalItems)
}
