package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItems(n int) []NewItem {
	items := make([]NewItem, n)
	for i := range items {
		kind := KindMain
		mentor := "Nyra"
		if i >= 15 {
			kind = KindBoss
			mentor = ""
		}
		items[i] = NewItem{
			ItemIndex:   i + 1,
			Kind:        kind,
			Mentor:      mentor,
			Question:    "q",
			Options:     []string{"A", "B", "C", "D"},
			AnswerIndex: 1,
			Explanation: "e",
		}
	}
	return items
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='generated_sets'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "generated_sets" {
		t.Errorf("table name = %q, want 'generated_sets'", name)
	}
}

func TestSetCreateAndFindOpen(t *testing.T) {
	s := openTestStore(t)
	repo := s.SetRepo()
	ctx := context.Background()

	created, err := repo.CreateWithItems(ctx, "ada", "junior", testItems(20))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != StatusOpen {
		t.Errorf("status = %s, want open", created.Status)
	}
	if created.NextIndex != 1 {
		t.Errorf("next index = %d, want 1", created.NextIndex)
	}

	found, err := repo.FindOpen(ctx, "ada", "junior")
	if err != nil {
		t.Fatalf("find open: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("found %s, want %s", found.ID, created.ID)
	}

	count, err := repo.CountItems(ctx, created.ID)
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 20 {
		t.Errorf("count = %d, want 20", count)
	}

	items, err := repo.Items(ctx, created.ID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	for i, it := range items {
		if it.ItemIndex != i+1 {
			t.Errorf("items[%d].ItemIndex = %d, want %d", i, it.ItemIndex, i+1)
		}
	}

	item, err := repo.ItemByIndex(ctx, created.ID, 16)
	if err != nil {
		t.Fatalf("item by index: %v", err)
	}
	if item.Kind != KindBoss {
		t.Errorf("kind = %s, want boss", item.Kind)
	}
	if len(item.Options) != 4 {
		t.Errorf("options = %d, want 4", len(item.Options))
	}

	if _, err := repo.ItemByIndex(ctx, created.ID, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("item 42: err = %v, want ErrNotFound", err)
	}

	// The player-state pointer is part of the same transaction.
	player, err := s.PlayerRepo().Get(ctx, "ada", "junior")
	if err != nil {
		t.Fatalf("player get: %v", err)
	}
	if player.CurrentSetID != created.ID {
		t.Errorf("current set = %s, want %s", player.CurrentSetID, created.ID)
	}
}

func TestSetFindOpenMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SetRepo().FindOpen(context.Background(), "nobody", "junior")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSetAdvanceCursorMonotone(t *testing.T) {
	s := openTestStore(t)
	repo := s.SetRepo()
	ctx := context.Background()

	created, err := repo.CreateWithItems(ctx, "ada", "junior", testItems(20))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cursor, err := repo.AdvanceCursor(ctx, created.ID, 6, false)
	if err != nil {
		t.Fatalf("advance to 6: %v", err)
	}
	if cursor != 6 {
		t.Errorf("cursor = %d, want 6", cursor)
	}
	// A smaller target is a silent no-op that reports the kept value.
	cursor, err = repo.AdvanceCursor(ctx, created.ID, 3, false)
	if err != nil {
		t.Fatalf("advance to 3: %v", err)
	}
	if cursor != 6 {
		t.Errorf("cursor = %d after no-op, want 6", cursor)
	}

	set, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if set.NextIndex != 6 {
		t.Errorf("next index = %d, want 6", set.NextIndex)
	}

	if _, err := repo.AdvanceCursor(ctx, created.ID, 21, true); err != nil {
		t.Fatalf("advance to 21: %v", err)
	}
	set, err = repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if set.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", set.Status)
	}
	if set.NextIndex != 21 {
		t.Errorf("next index = %d, want 21", set.NextIndex)
	}
}

func TestSetMarkInvalidAndUnlock(t *testing.T) {
	s := openTestStore(t)
	repo := s.SetRepo()
	ctx := context.Background()

	created, err := repo.CreateWithItems(ctx, "ada", "junior", testItems(20))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UnlockBoss(ctx, created.ID); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	set, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !set.BossUnlocked {
		t.Error("boss still locked after unlock")
	}

	if err := repo.MarkInvalid(ctx, created.ID); err != nil {
		t.Fatalf("mark invalid: %v", err)
	}
	if _, err := repo.FindOpen(ctx, "ada", "junior"); !errors.Is(err, ErrNotFound) {
		t.Errorf("invalid set still found as open: %v", err)
	}
}

func TestAttemptWriteOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	set, err := s.SetRepo().CreateWithItems(ctx, "ada", "junior", testItems(20))
	if err != nil {
		t.Fatalf("create set: %v", err)
	}

	repo := s.AttemptRepo()
	a := Attempt{SetID: set.ID, UserID: "ada", ItemIndex: 1, AnswerGiven: 2, IsCorrect: true}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	if err := repo.Create(ctx, a); !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("duplicate err = %v, want ErrDuplicateAttempt", err)
	}

	// A different user can answer the same item.
	b := a
	b.UserID = "bob"
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("create attempt for second user: %v", err)
	}
}

func TestAttemptListAndDeleteRange(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	set, err := s.SetRepo().CreateWithItems(ctx, "ada", "junior", testItems(20))
	if err != nil {
		t.Fatalf("create set: %v", err)
	}

	repo := s.AttemptRepo()
	for _, idx := range []int{17, 3, 16, 1} {
		err := repo.Create(ctx, Attempt{SetID: set.ID, UserID: "ada", ItemIndex: idx, AnswerGiven: 1, IsCorrect: idx%2 == 1})
		if err != nil {
			t.Fatalf("create attempt %d: %v", idx, err)
		}
	}

	attempts, err := repo.ListBySetUser(ctx, set.ID, "ada")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 4 {
		t.Fatalf("len = %d, want 4", len(attempts))
	}
	for i := 1; i < len(attempts); i++ {
		if attempts[i-1].ItemIndex > attempts[i].ItemIndex {
			t.Errorf("attempts not ordered by item index: %d then %d",
				attempts[i-1].ItemIndex, attempts[i].ItemIndex)
		}
	}

	n, err := repo.DeleteRange(ctx, set.ID, "ada", 16, 20)
	if err != nil {
		t.Fatalf("delete range: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	attempts, err = repo.ListBySetUser(ctx, set.ID, "ada")
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("len = %d, want 2", len(attempts))
	}
}

func TestPlayerAddScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	// First increment creates the row.
	if err := repo.AddScore(ctx, "ada", "junior", 1); err != nil {
		t.Fatalf("add score: %v", err)
	}
	if err := repo.AddScore(ctx, "ada", "junior", 2); err != nil {
		t.Fatalf("add score: %v", err)
	}

	player, err := repo.Get(ctx, "ada", "junior")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if player.Score != 3 {
		t.Errorf("score = %d, want 3", player.Score)
	}

	// Tiers keep separate scores.
	if _, err := repo.Get(ctx, "ada", "senior"); !errors.Is(err, ErrNotFound) {
		t.Errorf("senior row err = %v, want ErrNotFound", err)
	}
}

func TestMentorUpsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.MentorRepo()
	ctx := context.Background()

	mentors := []Mentor{
		{Name: "Kael", Tier: "junior", DisplayName: "Kael", Position: 2},
		{Name: "Nyra", Tier: "junior", DisplayName: "Nyra", Position: 1},
	}
	for _, m := range mentors {
		if err := repo.Upsert(ctx, m); err != nil {
			t.Fatalf("upsert %s: %v", m.Name, err)
		}
	}

	// Re-upserting updates in place.
	if err := repo.Upsert(ctx, Mentor{Name: "Nyra", Tier: "junior", DisplayName: "Nyra the Swift", Position: 1}); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	got, err := repo.ListByTier(ctx, "junior")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Nyra" || got[1].Name != "Kael" {
		t.Errorf("order = %s, %s; want position order Nyra, Kael", got[0].Name, got[1].Name)
	}
	if got[0].DisplayName != "Nyra the Swift" {
		t.Errorf("display name = %q, not updated", got[0].DisplayName)
	}
}

func TestTemplateUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.TemplateRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "set-gen/junior"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing template err = %v, want ErrNotFound", err)
	}

	if err := repo.Upsert(ctx, "set-gen/junior", "first"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "set-gen/junior", "second"); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	body, err := repo.Get(ctx, "set-gen/junior")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if body != "second" {
		t.Errorf("body = %q, want 'second'", body)
	}
}

func TestRateBucketTake(t *testing.T) {
	s := openTestStore(t)
	repo := s.RateBucketRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := repo.Take(ctx, "ada", time.Minute, 2)
		if err != nil {
			t.Fatalf("take %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("take %d denied within limit", i)
		}
	}

	ok, err := repo.Take(ctx, "ada", time.Minute, 2)
	if err != nil {
		t.Fatalf("take over limit: %v", err)
	}
	if ok {
		t.Error("third take allowed with limit 2")
	}

	// Separate keys have separate budgets.
	ok, err = repo.Take(ctx, "bob", time.Minute, 2)
	if err != nil {
		t.Fatalf("take for second key: %v", err)
	}
	if !ok {
		t.Error("fresh key denied")
	}
}

func TestRateBucketWindowResets(t *testing.T) {
	s := openTestStore(t)
	repo := s.RateBucketRepo()
	ctx := context.Background()

	window := 10 * time.Millisecond
	for i := 0; i < 2; i++ {
		if _, err := repo.Take(ctx, "ada", window, 1); err != nil {
			t.Fatalf("take %d: %v", i, err)
		}
	}

	time.Sleep(2 * window)

	ok, err := repo.Take(ctx, "ada", window, 1)
	if err != nil {
		t.Fatalf("take after window: %v", err)
	}
	if !ok {
		t.Error("expired window did not reset the budget")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
