package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/playerstate"
)

// playerRepo implements PlayerRepo backed by ent.
type playerRepo struct {
	client *ent.Client
}

func (r *playerRepo) Get(ctx context.Context, userID, tier string) (*Player, error) {
	row, err := r.client.PlayerState.Query().
		Where(playerstate.UserID(userID), playerstate.Tier(tier)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player state: %w", err)
	}
	return &Player{
		UserID:       row.UserID,
		Tier:         row.Tier,
		Score:        row.Score,
		CurrentSetID: row.CurrentSetID,
	}, nil
}

func (r *playerRepo) AddScore(ctx context.Context, userID, tier string, delta int) error {
	n, err := r.client.PlayerState.Update().
		Where(playerstate.UserID(userID), playerstate.Tier(tier)).
		AddScore(delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add score: %w", err)
	}
	if n == 0 {
		_, err := r.client.PlayerState.Create().
			SetUserID(userID).
			SetTier(tier).
			SetScore(delta).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create player state: %w", err)
		}
	}
	return nil
}
