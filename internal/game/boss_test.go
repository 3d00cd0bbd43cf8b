package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

func TestBossEligibility_Progress(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	// 1..4 covers one mentor's three items plus the next main.
	for i := 1; i <= 4; i++ {
		answerCorrect(t, svc, res, "ada", i)
	}
	// A wrong answer never counts toward the threshold.
	if _, err := svc.AnswerItem(ctx, res.SetID, "ada", 5, correctAnswer+1); err != nil {
		t.Fatalf("AnswerItem: %v", err)
	}

	el, err := svc.BossEligibility(ctx, res.SetID)
	if err != nil {
		t.Fatalf("BossEligibility: %v", err)
	}
	if el.CorrectMain != 3 || el.CorrectRandom != 1 {
		t.Errorf("main/random = %d/%d, want 3/1", el.CorrectMain, el.CorrectRandom)
	}
	if el.Correct != 4 || el.Pending != BossUnlockThreshold-4 {
		t.Errorf("correct=%d pending=%d, want 4/%d", el.Correct, el.Pending, BossUnlockThreshold-4)
	}
	if el.Eligible {
		t.Error("eligible below the threshold")
	}
	if !strings.Contains(el.Rule, ">=10") {
		t.Errorf("rule %q should state the threshold", el.Rule)
	}
}

func TestUnlockBoss_BelowThreshold(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	for i := 1; i < BossUnlockThreshold; i++ {
		answerCorrect(t, svc, res, "ada", i)
	}

	_, err := svc.UnlockBoss(ctx, res.SetID, "ada")
	if err == nil {
		t.Fatal("expected eligibility error one short of the threshold")
	}
	var notEligible *ErrNotEligible
	if !errors.As(err, &notEligible) {
		t.Fatalf("expected *ErrNotEligible, got %T: %v", err, err)
	}
	if notEligible.Correct != BossUnlockThreshold-1 {
		t.Errorf("correct = %d, want %d", notEligible.Correct, BossUnlockThreshold-1)
	}
}

func TestUnlockBoss_AtThreshold(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	for i := 1; i <= BossUnlockThreshold; i++ {
		answerCorrect(t, svc, res, "ada", i)
	}

	out, err := svc.UnlockBoss(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("UnlockBoss: %v", err)
	}
	if !out.Unlocked || out.Already {
		t.Errorf("out = %+v, want fresh unlock", out)
	}
	if out.Correct != BossUnlockThreshold {
		t.Errorf("correct = %d, want %d", out.Correct, BossUnlockThreshold)
	}

	set, err := st.SetRepo().Get(ctx, res.SetID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !set.BossUnlocked {
		t.Error("unlock not persisted")
	}
}

func TestUnlockBoss_Idempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")
	unlockAfterThreshold(t, svc, res, "ada")

	out, err := svc.UnlockBoss(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("repeat UnlockBoss: %v", err)
	}
	if !out.Unlocked || !out.Already {
		t.Errorf("out = %+v, want already-unlocked success", out)
	}
}

func TestUnlockBoss_ClosedSet(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	if err := st.SetRepo().MarkInvalid(ctx, res.SetID); err != nil {
		t.Fatalf("MarkInvalid: %v", err)
	}

	_, err := svc.UnlockBoss(ctx, res.SetID, "ada")
	wantErrIs(t, err, ErrSetNotOpen)
}

func TestBossItem_RangeAndGate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	if _, err := svc.BossItem(ctx, res.SetID, "ada", 3); !errors.Is(err, ErrNotBossItem) {
		t.Errorf("index 3: err = %v, want ErrNotBossItem", err)
	}
	if _, err := svc.BossItem(ctx, res.SetID, "ada", genset.BossRangeStart); !errors.Is(err, ErrBossLocked) {
		t.Errorf("locked gate: err = %v, want ErrBossLocked", err)
	}

	unlockAfterThreshold(t, svc, res, "ada")

	view, err := svc.BossItem(ctx, res.SetID, "ada", genset.BossRangeStart)
	if err != nil {
		t.Fatalf("BossItem: %v", err)
	}
	if view.Kind != string(store.KindBoss) {
		t.Errorf("kind = %s, want boss", view.Kind)
	}
	if view.Index != genset.BossRangeStart {
		t.Errorf("index = %d, want %d", view.Index, genset.BossRangeStart)
	}
}

func TestAnswerBossItem_CompletesTheSet(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")
	unlockAfterThreshold(t, svc, res, "ada")

	var last *AnswerResult
	for i := genset.BossRangeStart; i <= genset.TotalItems; i++ {
		out, err := svc.AnswerBossItem(ctx, res.SetID, "ada", i, correctAnswer)
		if err != nil {
			t.Fatalf("AnswerBossItem %d: %v", i, err)
		}
		last = out
	}

	if !last.Completed {
		t.Error("final boss answer should complete the set")
	}
	if last.NextIndex != TerminalIndex {
		t.Errorf("next index = %d, want %d", last.NextIndex, TerminalIndex)
	}

	set, err := st.SetRepo().Get(ctx, res.SetID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.Status != store.StatusCompleted {
		t.Errorf("status = %s, want completed", set.Status)
	}

	// Completed sets accept no further answers.
	_, err = svc.AnswerItem(ctx, res.SetID, "ada", 11, correctAnswer)
	wantErrIs(t, err, ErrSetNotOpen)
}

func TestAnswerBossItem_RejectsMentorIndex(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")
	unlockAfterThreshold(t, svc, res, "ada")

	_, err := svc.AnswerBossItem(context.Background(), res.SetID, "ada", 2, correctAnswer)
	wantErrIs(t, err, ErrNotBossItem)
}
