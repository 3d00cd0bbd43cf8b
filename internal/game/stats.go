package game

import (
	"context"
	"errors"

	"github.com/abhisek/gauntlet/internal/store"
	"github.com/google/uuid"
)

// SetSummary tallies a set's attempts by item kind, together with the
// player's tier score and the set's lifecycle state.
func (s *Service) SetSummary(ctx context.Context, setID uuid.UUID, userID string) (*SetSummary, error) {
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

	items, err := s.sets.Items(ctx, setID)
	if err != nil {
		return nil, err
	}
	kindByIndex := make(map[int]store.ItemKind, len(items))
	for _, it := range items {
		kindByIndex[it.ItemIndex] = it.Kind
	}

	attempts, err := s.attempts.ListBySetUser(ctx, setID, userID)
	if err != nil {
		return nil, err
	}

	sum := &SetSummary{
		SetID:        set.ID,
		Tier:         set.Tier,
		Status:       string(set.Status),
		NextIndex:    set.NextIndex,
		BossUnlocked: set.BossUnlocked,
		Attempted:    len(attempts),
	}
	for _, a := range attempts {
		if !a.IsCorrect {
			continue
		}
		sum.Correct++
		switch kindByIndex[a.ItemIndex] {
		case store.KindMain:
			sum.CorrectMain++
		case store.KindRandom:
			sum.CorrectRandom++
		case store.KindBoss:
			sum.CorrectBoss++
		}
	}

	player, err := s.players.Get(ctx, userID, set.Tier)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// No correct answer recorded yet.
	case err != nil:
		return nil, err
	default:
		sum.Score = player.Score
	}
	return sum, nil
}
