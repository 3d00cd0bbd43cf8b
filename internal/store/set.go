package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/abhisek/gauntlet/ent/playerstate"
	"github.com/google/uuid"
)

// setRepo implements SetRepo backed by ent.
type setRepo struct {
	client *ent.Client
}

func (r *setRepo) CreateWithItems(ctx context.Context, userID, tier string, items []NewItem) (*Set, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	set, err := r.createWithItemsTx(ctx, tx, userID, tier, items)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return set, nil
}

func (r *setRepo) createWithItemsTx(ctx context.Context, tx *ent.Tx, userID, tier string, items []NewItem) (*Set, error) {
	row, err := tx.GeneratedSet.Create().
		SetUserID(userID).
		SetTier(tier).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create set: %w", err)
	}

	builders := make([]*ent.GeneratedItemCreate, len(items))
	for i, it := range items {
		b := tx.GeneratedItem.Create().
			SetSetID(row.ID).
			SetItemIndex(it.ItemIndex).
			SetKind(generateditem.Kind(it.Kind)).
			SetQuestion(it.Question).
			SetOptions(it.Options).
			SetAnswerIndex(it.AnswerIndex).
			SetExplanation(it.Explanation)
		if it.Mentor != "" {
			b = b.SetMentor(it.Mentor)
		}
		builders[i] = b
	}
	if _, err := tx.GeneratedItem.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, fmt.Errorf("create items: %w", err)
	}

	// Point the owner's player state at the new set, creating it on
	// first play of this tier.
	ps, err := tx.PlayerState.Query().
		Where(playerstate.UserID(userID), playerstate.Tier(tier)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.PlayerState.Create().
			SetUserID(userID).
			SetTier(tier).
			SetCurrentSetID(row.ID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create player state: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("query player state: %w", err)
	default:
		if _, err := ps.Update().SetCurrentSetID(row.ID).Save(ctx); err != nil {
			return nil, fmt.Errorf("update player state: %w", err)
		}
	}

	return setFromEnt(row), nil
}

func (r *setRepo) Get(ctx context.Context, id uuid.UUID) (*Set, error) {
	row, err := r.client.GeneratedSet.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	return setFromEnt(row), nil
}

func (r *setRepo) FindOpen(ctx context.Context, userID, tier string) (*Set, error) {
	row, err := r.client.GeneratedSet.Query().
		Where(
			generatedset.UserID(userID),
			generatedset.TierEQ(tier),
			generatedset.StatusEQ(generatedset.StatusOpen),
		).
		Order(ent.Desc(generatedset.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find open set: %w", err)
	}
	return setFromEnt(row), nil
}

func (r *setRepo) CountItems(ctx context.Context, setID uuid.UUID) (int, error) {
	n, err := r.client.GeneratedItem.Query().
		Where(generateditem.SetID(setID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *setRepo) Items(ctx context.Context, setID uuid.UUID) ([]Item, error) {
	rows, err := r.client.GeneratedItem.Query().
		Where(generateditem.SetID(setID)).
		Order(ent.Asc(generateditem.FieldItemIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = *itemFromEnt(row)
	}
	return items, nil
}

func (r *setRepo) ItemByIndex(ctx context.Context, setID uuid.UUID, index int) (*Item, error) {
	row, err := r.client.GeneratedItem.Query().
		Where(generateditem.SetID(setID), generateditem.ItemIndex(index)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return itemFromEnt(row), nil
}

func (r *setRepo) MarkInvalid(ctx context.Context, id uuid.UUID) error {
	err := r.client.GeneratedSet.UpdateOneID(id).
		SetStatus(generatedset.StatusInvalid).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("mark invalid: %w", err)
	}
	return nil
}

func (r *setRepo) AdvanceCursor(ctx context.Context, id uuid.UUID, to int, complete bool) (int, error) {
	// The next_index < to guard keeps the cursor monotone even if two
	// requests race on the same set.
	upd := r.client.GeneratedSet.Update().
		Where(generatedset.ID(id), generatedset.NextIndexLT(to)).
		SetNextIndex(to)
	if complete {
		upd = upd.SetStatus(generatedset.StatusCompleted)
	}
	if _, err := upd.Save(ctx); err != nil {
		return 0, fmt.Errorf("advance cursor: %w", err)
	}

	row, err := r.client.GeneratedSet.Get(ctx, id)
	if ent.IsNotFound(err) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("advance cursor: %w", err)
	}
	return row.NextIndex, nil
}

func (r *setRepo) UnlockBoss(ctx context.Context, id uuid.UUID) error {
	err := r.client.GeneratedSet.UpdateOneID(id).
		SetBossUnlocked(true).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("unlock boss: %w", err)
	}
	return nil
}

func setFromEnt(row *ent.GeneratedSet) *Set {
	return &Set{
		ID:           row.ID,
		UserID:       row.UserID,
		Tier:         row.Tier,
		Status:       SetStatus(row.Status),
		NextIndex:    row.NextIndex,
		BossUnlocked: row.BossUnlocked,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func itemFromEnt(row *ent.GeneratedItem) *Item {
	return &Item{
		ID:          row.ID,
		SetID:       row.SetID,
		ItemIndex:   row.ItemIndex,
		Kind:        ItemKind(row.Kind),
		Mentor:      row.Mentor,
		Question:    row.Question,
		Options:     row.Options,
		AnswerIndex: row.AnswerIndex,
		Explanation: row.Explanation,
	}
}
