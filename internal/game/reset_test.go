package game

import (
	"context"
	"testing"

	"github.com/abhisek/gauntlet/internal/genset"
)

func TestResetBossAttempts(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")
	unlockAfterThreshold(t, svc, res, "ada")

	answerCorrect(t, svc, res, "ada", 16)
	answerCorrect(t, svc, res, "ada", 17)

	n, err := svc.ResetBossAttempts(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("ResetBossAttempts: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	// Boss items answer again; mentor attempts survive.
	if _, err := svc.AnswerBossItem(ctx, res.SetID, "ada", 16, correctAnswer); err != nil {
		t.Fatalf("re-answer after reset: %v", err)
	}
	attempts, err := st.AttemptRepo().ListBySetUser(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("ListBySetUser: %v", err)
	}
	if len(attempts) != BossUnlockThreshold+1 {
		t.Fatalf("attempts = %d, want %d mentor answers plus one boss retry",
			len(attempts), BossUnlockThreshold+1)
	}
	for _, a := range attempts {
		if a.ItemIndex >= genset.BossRangeStart && a.ItemIndex != 16 {
			t.Errorf("stale boss attempt at %d survived the reset", a.ItemIndex)
		}
	}
}

func TestResetAttempts_LeavesScoreAndCursor(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	answerCorrect(t, svc, res, "ada", 1)
	answerCorrect(t, svc, res, "ada", 2)

	n, err := svc.ResetAttempts(ctx, res.SetID, "ada", 1, 2)
	if err != nil {
		t.Fatalf("ResetAttempts: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	set, err := st.SetRepo().Get(ctx, res.SetID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.NextIndex != 3 {
		t.Errorf("cursor = %d, reset must not rewind it", set.NextIndex)
	}
	player, err := st.PlayerRepo().Get(ctx, "ada", string(genset.TierJunior))
	if err != nil {
		t.Fatalf("PlayerRepo.Get: %v", err)
	}
	if player.Score != 2 {
		t.Errorf("score = %d, reset must not touch it", player.Score)
	}
}

func TestResetAttempts_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	_, err := svc.ResetAttempts(context.Background(), res.SetID, "mallory", 1, 20)
	wantErrIs(t, err, ErrOwnershipMismatch)
}
