package game

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

// templateKey returns the stored prompt template key for a tier.
func templateKey(tier genset.Tier) string {
	return "set-gen/" + string(tier)
}

// CurrentSet returns the player's open set for a tier without generating
// anything. ErrSetNotFound when no open set exists.
func (s *Service) CurrentSet(ctx context.Context, userID string, tier genset.Tier) (*StartResult, error) {
	set, err := s.sets.FindOpen(ctx, userID, string(tier))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find open set: %w", err)
	}
	return &StartResult{
		SetID:        set.ID,
		Tier:         set.Tier,
		Status:       string(set.Status),
		NextIndex:    set.NextIndex,
		BossUnlocked: set.BossUnlocked,
		Reused:       true,
	}, nil
}

// StartTier resumes or creates the player's set for a tier.
//
// An existing open set is reused only when it holds exactly the full 20
// items; anything else is demoted to invalid and replaced by a freshly
// generated set. The new set, its items, and the player-state pointer are
// persisted as one transaction.
func (s *Service) StartTier(ctx context.Context, userID string, tier genset.Tier) (*StartResult, error) {
	ok, err := s.buckets.Take(ctx, userID, s.limit.Window, s.limit.Max)
	if err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}
	if !ok {
		return nil, &ErrRateLimited{Key: userID}
	}

	existing, err := s.sets.FindOpen(ctx, userID, string(tier))
	switch {
	case err == nil:
		count, err := s.sets.CountItems(ctx, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("count items: %w", err)
		}
		if count == genset.TotalItems {
			return &StartResult{
				SetID:        existing.ID,
				Tier:         existing.Tier,
				Status:       string(existing.Status),
				NextIndex:    existing.NextIndex,
				BossUnlocked: existing.BossUnlocked,
				Reused:       true,
			}, nil
		}
		// Damaged set: wrong item count. Abandon it rather than serve
		// a partial run.
		fmt.Fprintf(os.Stderr, "warning: open set %s has %d items, marking invalid\n", existing.ID, count)
		if err := s.sets.MarkInvalid(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("invalidate set: %w", err)
		}
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("find open set: %w", err)
	}

	mentorRows, err := s.mentors.ListByTier(ctx, string(tier))
	if err != nil {
		return nil, fmt.Errorf("load mentors: %w", err)
	}
	mentorNames := make([]string, len(mentorRows))
	for i, m := range mentorRows {
		mentorNames[i] = m.Name
	}

	template, err := s.templates.Get(ctx, templateKey(tier))
	if errors.Is(err, store.ErrNotFound) {
		template = ""
	} else if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}

	cands, err := s.gen.GenerateSet(ctx, genset.GenerateInput{
		Tier:     tier,
		Mentors:  mentorNames,
		Template: template,
	})
	if err != nil {
		return nil, err
	}

	items := make([]store.NewItem, len(cands))
	for i, c := range cands {
		items[i] = store.NewItem{
			ItemIndex:   i + 1,
			Kind:        store.ItemKind(c.Kind),
			Mentor:      c.Mentor,
			Question:    c.Question,
			Options:     c.Options,
			AnswerIndex: c.AnswerIndex,
			Explanation: c.Explanation,
		}
	}

	created, err := s.sets.CreateWithItems(ctx, userID, string(tier), items)
	if err != nil {
		return nil, fmt.Errorf("persist set: %w", err)
	}

	return &StartResult{
		SetID:        created.ID,
		Tier:         created.Tier,
		Status:       string(created.Status),
		NextIndex:    created.NextIndex,
		BossUnlocked: created.BossUnlocked,
	}, nil
}
