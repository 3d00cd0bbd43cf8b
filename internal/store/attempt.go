package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/attempt"
	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo backed by ent.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Create(ctx context.Context, a Attempt) error {
	_, err := r.client.Attempt.Create().
		SetSetID(a.SetID).
		SetUserID(a.UserID).
		SetItemIndex(a.ItemIndex).
		SetAnswerGiven(a.AnswerGiven).
		SetIsCorrect(a.IsCorrect).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return ErrDuplicateAttempt
	}
	if err != nil {
		return fmt.Errorf("create attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListBySetUser(ctx context.Context, setID uuid.UUID, userID string) ([]Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.SetID(setID), attempt.UserID(userID)).
		Order(ent.Asc(attempt.FieldItemIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	out := make([]Attempt, len(rows))
	for i, row := range rows {
		out[i] = Attempt{
			SetID:       row.SetID,
			UserID:      row.UserID,
			ItemIndex:   row.ItemIndex,
			AnswerGiven: row.AnswerGiven,
			IsCorrect:   row.IsCorrect,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

func (r *attemptRepo) DeleteRange(ctx context.Context, setID uuid.UUID, userID string, from, to int) (int, error) {
	n, err := r.client.Attempt.Delete().
		Where(
			attempt.SetID(setID),
			attempt.UserID(userID),
			attempt.ItemIndexGTE(from),
			attempt.ItemIndexLTE(to),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete attempts: %w", err)
	}
	return n, nil
}
