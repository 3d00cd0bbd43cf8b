package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/ratebucket"
)

// rateBucketRepo implements RateBucketRepo with a fixed-window counter
// persisted in the store, so limits hold across processes sharing a
// database file.
type rateBucketRepo struct {
	client *ent.Client
}

func (r *rateBucketRepo) Take(ctx context.Context, key string, window time.Duration, max int) (bool, error) {
	now := time.Now()

	row, err := r.client.RateBucket.Query().
		Where(ratebucket.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err := r.client.RateBucket.Create().
			SetKey(key).
			SetWindowStart(now).
			SetCount(1).
			Save(ctx)
		if ent.IsConstraintError(err) {
			// Lost a race with another writer; count their insert.
			return r.Take(ctx, key, window, max)
		}
		if err != nil {
			return false, fmt.Errorf("create rate bucket: %w", err)
		}
		return max >= 1, nil
	case err != nil:
		return false, fmt.Errorf("query rate bucket: %w", err)
	}

	if now.Sub(row.WindowStart) >= window {
		if _, err := row.Update().SetWindowStart(now).SetCount(1).Save(ctx); err != nil {
			return false, fmt.Errorf("reset rate bucket: %w", err)
		}
		return max >= 1, nil
	}

	updated, err := row.Update().AddCount(1).Save(ctx)
	if err != nil {
		return false, fmt.Errorf("bump rate bucket: %w", err)
	}
	return updated.Count <= max, nil
}
