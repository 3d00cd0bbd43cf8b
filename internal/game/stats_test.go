package game

import (
	"context"
	"testing"

	"github.com/abhisek/gauntlet/internal/genset"
)

func TestCurrentSet(t *testing.T) {
	svc, _, gen := newTestService(t)
	ctx := context.Background()

	_, err := svc.CurrentSet(ctx, "ada", genset.TierJunior)
	wantErrIs(t, err, ErrSetNotFound)

	res := startJunior(t, svc, "ada")

	cur, err := svc.CurrentSet(ctx, "ada", genset.TierJunior)
	if err != nil {
		t.Fatalf("CurrentSet: %v", err)
	}
	if cur.SetID != res.SetID {
		t.Errorf("set id = %s, want %s", cur.SetID, res.SetID)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, lookup must not generate", gen.calls)
	}
}

func TestMentorProgress(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	answerCorrect(t, svc, res, "ada", 1)
	if _, err := svc.AnswerItem(ctx, res.SetID, "ada", 2, correctAnswer+1); err != nil {
		t.Fatalf("AnswerItem: %v", err)
	}

	progress, err := svc.MentorProgress(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("MentorProgress: %v", err)
	}
	if len(progress) != len(gameMentors) {
		t.Fatalf("len = %d, want %d", len(progress), len(gameMentors))
	}
	first := progress[0]
	if first.Name != gameMentors[0] {
		t.Errorf("first mentor = %s, want roster order", first.Name)
	}
	if first.Total != 3 || first.Answered != 2 || first.Correct != 1 {
		t.Errorf("first = %+v, want total 3 answered 2 correct 1", first)
	}
	for _, m := range progress[1:] {
		if m.Answered != 0 {
			t.Errorf("mentor %s answered = %d, want 0", m.Name, m.Answered)
		}
	}
}

func TestNextBossIndex(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	if _, _, err := svc.NextBossIndex(ctx, res.SetID, "ada"); err != ErrBossLocked {
		t.Fatalf("locked gate err = %v, want ErrBossLocked", err)
	}

	unlockAfterThreshold(t, svc, res, "ada")

	idx, done, err := svc.NextBossIndex(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("NextBossIndex: %v", err)
	}
	if done || idx != genset.BossRangeStart {
		t.Fatalf("idx=%d done=%v, want first boss index", idx, done)
	}

	answerCorrect(t, svc, res, "ada", idx)

	idx, done, err = svc.NextBossIndex(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("NextBossIndex: %v", err)
	}
	if done || idx != genset.BossRangeStart+1 {
		t.Fatalf("idx=%d done=%v, want second boss index", idx, done)
	}

	for i := idx; i <= genset.TotalItems; i++ {
		answerCorrect(t, svc, res, "ada", i)
	}
	_, done, err = svc.NextBossIndex(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("NextBossIndex after finish: %v", err)
	}
	if !done {
		t.Error("expected done after all boss items answered")
	}
}

func TestSetSummary(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	for i := 1; i <= 3; i++ {
		answerCorrect(t, svc, res, "ada", i)
	}
	if _, err := svc.AnswerItem(ctx, res.SetID, "ada", 4, correctAnswer+1); err != nil {
		t.Fatalf("AnswerItem: %v", err)
	}

	sum, err := svc.SetSummary(ctx, res.SetID, "ada")
	if err != nil {
		t.Fatalf("SetSummary: %v", err)
	}
	if sum.Attempted != 4 || sum.Correct != 3 {
		t.Errorf("attempted/correct = %d/%d, want 4/3", sum.Attempted, sum.Correct)
	}
	if sum.CorrectMain != 2 || sum.CorrectRandom != 1 || sum.CorrectBoss != 0 {
		t.Errorf("main/random/boss = %d/%d/%d, want 2/1/0",
			sum.CorrectMain, sum.CorrectRandom, sum.CorrectBoss)
	}
	if sum.Score != 3 {
		t.Errorf("score = %d, want 3", sum.Score)
	}
	if sum.BossUnlocked {
		t.Error("boss unlocked in summary before the gate opened")
	}
}
