package store

import (
	"context"
	"testing"
)

func appendTestEvent(t *testing.T, repo EventRepo, purpose, model string, in, out int) {
	t.Helper()
	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "mock",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    100,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
}

func TestLLMEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "set-gen", "m1", 100, 50)
	appendTestEvent(t, repo, "set-gen", "m1", 200, 80)
	appendTestEvent(t, repo, "preview", "m2", 10, 5)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Purpose != "preview" {
		t.Errorf("first event purpose = %q, want preview", events[0].Purpose)
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Sequence <= events[i].Sequence {
			t.Errorf("events not newest-first at %d", i)
		}
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[2].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("after len = %d, want 2", len(after))
	}
}

func TestLLMEventGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "set-gen", "m1", 100, 50)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "set-gen" {
		t.Errorf("got = %+v, want the stored event", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "set-gen", "m1", 100, 50)
	appendTestEvent(t, repo, "set-gen", "m2", 200, 80)
	appendTestEvent(t, repo, "preview", "m1", 10, 5)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	found := false
	for _, u := range byPurpose {
		if u.Purpose != "set-gen" {
			continue
		}
		found = true
		if u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 130 {
			t.Errorf("set-gen usage = %+v", u)
		}
	}
	if !found {
		t.Error("set-gen missing from purpose aggregate")
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	for _, u := range byModel {
		if u.Model == "m1" && (u.Calls != 2 || u.InputTokens != 110) {
			t.Errorf("m1 usage = %+v", u)
		}
	}
}
