package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

func TestStartTier_CreatesFullSet(t *testing.T) {
	svc, st, gen := newTestService(t)
	ctx := context.Background()

	res := startJunior(t, svc, "ada")
	if res.Reused {
		t.Error("fresh set reported as reused")
	}
	if res.Status != string(store.StatusOpen) {
		t.Errorf("status = %s, want open", res.Status)
	}
	if res.NextIndex != 1 {
		t.Errorf("next index = %d, want 1", res.NextIndex)
	}
	if res.BossUnlocked {
		t.Error("boss unlocked on a fresh set")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}

	count, err := st.SetRepo().CountItems(ctx, res.SetID)
	if err != nil {
		t.Fatalf("CountItems: %v", err)
	}
	if count != genset.TotalItems {
		t.Errorf("persisted %d items, want %d", count, genset.TotalItems)
	}

	items, err := st.SetRepo().Items(ctx, res.SetID)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	for i, it := range items {
		if it.ItemIndex != i+1 {
			t.Errorf("items[%d].ItemIndex = %d, want %d", i, it.ItemIndex, i+1)
		}
	}
	for _, it := range items[genset.BossRangeStart-1:] {
		if it.Kind != store.KindBoss {
			t.Errorf("index %d kind = %s, want boss", it.ItemIndex, it.Kind)
		}
	}
}

func TestStartTier_ReusesOpenSet(t *testing.T) {
	svc, _, gen := newTestService(t)

	first := startJunior(t, svc, "ada")
	second := startJunior(t, svc, "ada")

	if !second.Reused {
		t.Error("second start should reuse the open set")
	}
	if second.SetID != first.SetID {
		t.Errorf("set id changed: %s then %s", first.SetID, second.SetID)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestStartTier_InvalidatesDamagedSet(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	// A set persisted with a short item list must never be resumed.
	short := make([]store.NewItem, 19)
	for i := range short {
		short[i] = store.NewItem{
			ItemIndex:   i + 1,
			Kind:        store.KindMain,
			Mentor:      gameMentors[0],
			Question:    "q",
			Options:     []string{"A", "B", "C", "D"},
			AnswerIndex: 1,
			Explanation: "e",
		}
	}
	damaged, err := st.SetRepo().CreateWithItems(ctx, "ada", string(genset.TierJunior), short)
	if err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}

	res := startJunior(t, svc, "ada")
	if res.Reused {
		t.Error("damaged set was reused")
	}
	if res.SetID == damaged.ID {
		t.Error("damaged set id returned for the fresh start")
	}

	old, err := st.SetRepo().Get(ctx, damaged.ID)
	if err != nil {
		t.Fatalf("Get damaged: %v", err)
	}
	if old.Status != store.StatusInvalid {
		t.Errorf("damaged set status = %s, want invalid", old.Status)
	}
}

func TestStartTier_RateLimited(t *testing.T) {
	svc, _, _ := newTestService(t, WithRateLimit(RateLimit{Window: time.Minute, Max: 1}))

	startJunior(t, svc, "ada")

	_, err := svc.StartTier(context.Background(), "ada", genset.TierJunior)
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	var limited *ErrRateLimited
	if !errors.As(err, &limited) {
		t.Fatalf("expected *ErrRateLimited, got %T: %v", err, err)
	}
	if limited.Key != "ada" {
		t.Errorf("key = %q, want ada", limited.Key)
	}
}

func TestStartTier_GeneratorFailureSurfaced(t *testing.T) {
	svc, _, gen := newTestService(t)
	gen.err = errors.New("generation exhausted")

	_, err := svc.StartTier(context.Background(), "ada", genset.TierJunior)
	wantErrIs(t, err, gen.err)
}
