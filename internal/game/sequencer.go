package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/gauntlet/internal/store"
	"github.com/google/uuid"
)

// mentorItems returns a mentor's main/random items in a set, ordered by
// item_index.
func (s *Service) mentorItems(ctx context.Context, setID uuid.UUID, mentorName string) ([]store.Item, error) {
	all, err := s.sets.Items(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	var mine []store.Item
	for _, it := range all {
		if it.Mentor == mentorName && it.Kind != store.KindBoss {
			mine = append(mine, it)
		}
	}
	if len(mine) == 0 {
		return nil, ErrMentorNotFound
	}
	return mine, nil
}

// answeredIndexes returns the set of item indexes the user has attempted.
func (s *Service) answeredIndexes(ctx context.Context, setID uuid.UUID, userID string) (map[int]bool, error) {
	attempts, err := s.attempts.ListBySetUser(ctx, setID, userID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	answered := make(map[int]bool, len(attempts))
	for _, a := range attempts {
		answered[a.ItemIndex] = true
	}
	return answered, nil
}

// NextForMentor resolves the next item to serve for a mentor.
//
// When the mentor's only unanswered item is its random challenge, a
// uniform draw decides: with probability RandomSkipProbability the mentor
// finishes without the item ever being served. Otherwise the smallest
// unanswered index at or past the set's cursor is served, falling back to
// the smallest unanswered index when the cursor has moved beyond this
// mentor's items.
func (s *Service) NextForMentor(ctx context.Context, setID uuid.UUID, mentorName, userID string) (*NextItem, error) {
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
		return &NextItem{Finished: true}, nil
	}

	if len(remaining) == 1 && remaining[0].Kind == store.KindRandom {
		if s.rng() >= RandomSkipProbability {
			// The trailing random challenge is skipped, not failed.
			return &NextItem{Finished: true}, nil
		}
	}

	next := pickNext(remaining, set.NextIndex)
	return &NextItem{Item: itemView(next)}, nil
}

// pickNext prefers the smallest unanswered index at or past the global
// cursor, then the smallest unanswered index overall.
func pickNext(remaining []store.Item, cursor int) *store.Item {
	for i := range remaining {
		if remaining[i].ItemIndex >= cursor {
			return &remaining[i]
		}
	}
	return &remaining[0]
}

// MentorProgress reports each mentor's per-set progress in roster order.
func (s *Service) MentorProgress(ctx context.Context, setID uuid.UUID, userID string) ([]MentorStatus, error) {
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

	roster, err := s.mentors.ListByTier(ctx, set.Tier)
	if err != nil {
		return nil, fmt.Errorf("load mentors: %w", err)
	}
	items, err := s.sets.Items(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	attempts, err := s.attempts.ListBySetUser(ctx, setID, userID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	mentorByIndex := make(map[int]string, len(items))
	totals := make(map[string]int)
	for _, it := range items {
		if it.Kind == store.KindBoss {
			continue
		}
		mentorByIndex[it.ItemIndex] = it.Mentor
		totals[it.Mentor]++
	}

	answered := make(map[string]int)
	correct := make(map[string]int)
	for _, a := range attempts {
		mentor, ok := mentorByIndex[a.ItemIndex]
		if !ok {
			continue
		}
		answered[mentor]++
		if a.IsCorrect {
			correct[mentor]++
		}
	}

	out := make([]MentorStatus, len(roster))
	for i, m := range roster {
		out[i] = MentorStatus{
			Name:        m.Name,
			DisplayName: m.DisplayName,
			Flavor:      m.Flavor,
			Total:       totals[m.Name],
			Answered:    answered[m.Name],
			Correct:     correct[m.Name],
		}
	}
	return out, nil
}

func itemView(it *store.Item) *ItemView {
	return &ItemView{
		Index:    it.ItemIndex,
		Kind:     string(it.Kind),
		Mentor:   it.Mentor,
		Question: it.Question,
		Options:  it.Options,
	}
}
