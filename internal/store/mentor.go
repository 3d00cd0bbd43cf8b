package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/mentor"
)

// mentorRepo implements MentorRepo backed by ent.
type mentorRepo struct {
	client *ent.Client
}

func (r *mentorRepo) ListByTier(ctx context.Context, tier string) ([]Mentor, error) {
	rows, err := r.client.Mentor.Query().
		Where(mentor.Tier(tier)).
		Order(ent.Asc(mentor.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mentors: %w", err)
	}
	out := make([]Mentor, len(rows))
	for i, row := range rows {
		out[i] = Mentor{
			Name:        row.Name,
			Tier:        row.Tier,
			DisplayName: row.DisplayName,
			Position:    row.Position,
			Flavor:      row.Flavor,
		}
	}
	return out, nil
}

func (r *mentorRepo) Upsert(ctx context.Context, m Mentor) error {
	existing, err := r.client.Mentor.Query().
		Where(mentor.Name(m.Name)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err := r.client.Mentor.Create().
			SetName(m.Name).
			SetTier(m.Tier).
			SetDisplayName(m.DisplayName).
			SetPosition(m.Position).
			SetFlavor(m.Flavor).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mentor: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query mentor: %w", err)
	}

	_, err = existing.Update().
		SetTier(m.Tier).
		SetDisplayName(m.DisplayName).
		SetPosition(m.Position).
		SetFlavor(m.Flavor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mentor: %w", err)
	}
	return nil
}
