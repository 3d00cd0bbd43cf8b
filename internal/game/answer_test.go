package game

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

func TestAnswerItem_CorrectScoresAndExplains(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	out := answerCorrect(t, svc, res, "ada", 1)
	if out.Explanation == "" {
		t.Error("correct answer should carry the explanation")
	}
	if out.NextIndex != 2 {
		t.Errorf("next index = %d, want 2", out.NextIndex)
	}
	if out.Completed {
		t.Error("set completed after one answer")
	}

	player, err := st.PlayerRepo().Get(ctx, "ada", string(genset.TierJunior))
	if err != nil {
		t.Fatalf("PlayerRepo.Get: %v", err)
	}
	if player.Score != 1 {
		t.Errorf("score = %d, want 1", player.Score)
	}
}

func TestAnswerItem_IncorrectWithholdsExplanation(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	out, err := svc.AnswerItem(ctx, res.SetID, "ada", 1, correctAnswer+1)
	if err != nil {
		t.Fatalf("AnswerItem: %v", err)
	}
	if out.Correct {
		t.Error("wrong option judged correct")
	}
	if out.Explanation != "" {
		t.Errorf("explanation %q leaked on a wrong answer", out.Explanation)
	}
	if out.NextIndex != 2 {
		t.Errorf("next index = %d, cursor must advance on wrong answers too", out.NextIndex)
	}

	if _, err := st.PlayerRepo().Get(ctx, "ada", string(genset.TierJunior)); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("score row exists after a wrong answer only: %v", err)
	}
}

func TestAnswerItem_WriteOnce(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	answerCorrect(t, svc, res, "ada", 1)

	_, err := svc.AnswerItem(ctx, res.SetID, "ada", 1, correctAnswer)
	wantErrIs(t, err, ErrAlreadyAnswered)

	// The duplicate must not double-count the score.
	player, err := st.PlayerRepo().Get(ctx, "ada", string(genset.TierJunior))
	if err != nil {
		t.Fatalf("PlayerRepo.Get: %v", err)
	}
	if player.Score != 1 {
		t.Errorf("score = %d, want 1", player.Score)
	}
}

func TestAnswerItem_CursorNeverMovesBack(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	answerCorrect(t, svc, res, "ada", 5)
	out := answerCorrect(t, svc, res, "ada", 2)
	if out.NextIndex != 6 {
		t.Errorf("result next index = %d, want the persisted cursor 6", out.NextIndex)
	}

	set, err := st.SetRepo().Get(ctx, res.SetID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.NextIndex != 6 {
		t.Errorf("next index = %d, want 6 after answering 5 then 2", set.NextIndex)
	}
}

func TestAnswerItem_BossLockedBeforeUnlock(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	_, err := svc.AnswerItem(context.Background(), res.SetID, "ada", genset.BossRangeStart, correctAnswer)
	wantErrIs(t, err, ErrBossLocked)
}

func TestAnswerItem_UnknownIndex(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	_, err := svc.AnswerItem(context.Background(), res.SetID, "ada", 42, correctAnswer)
	wantErrIs(t, err, ErrItemNotFound)
}

func TestAnswerMentorItem_ResolvesNextItem(t *testing.T) {
	svc, _, _ := newTestService(t, WithRand(func() float64 { return 0.0 }))
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	// Index 0 means "whatever the sequencer would serve".
	out, err := svc.AnswerMentorItem(ctx, res.SetID, "Nyra", "ada", 0, correctAnswer)
	if err != nil {
		t.Fatalf("AnswerMentorItem: %v", err)
	}
	if !out.Correct {
		t.Error("expected the resolved item to accept the known answer")
	}
	if out.MentorFinished {
		t.Error("mentor finished after one of three items")
	}
	if out.NextIndex != 2 {
		t.Errorf("next index = %d, want 2", out.NextIndex)
	}
}

func TestAnswerMentorItem_ReportsMentorFinished(t *testing.T) {
	svc, _, _ := newTestService(t, WithRand(func() float64 { return 0.0 }))
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	answerCorrect(t, svc, res, "ada", 1)
	answerCorrect(t, svc, res, "ada", 2)

	out, err := svc.AnswerMentorItem(ctx, res.SetID, "Nyra", "ada", 3, correctAnswer)
	if err != nil {
		t.Fatalf("AnswerMentorItem: %v", err)
	}
	if !out.MentorFinished {
		t.Error("mentor should be finished after the last item")
	}

	// Every item answered: resolving again reports finished, no error.
	out, err = svc.AnswerMentorItem(ctx, res.SetID, "Nyra", "ada", 0, correctAnswer)
	if err != nil {
		t.Fatalf("AnswerMentorItem on finished mentor: %v", err)
	}
	if !out.MentorFinished {
		t.Error("finished mentor not reported as finished")
	}
}

func TestAnswerMentorItem_ExplicitIndexBehindCursorConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	// Skip index 5 while marching the cursor to 11.
	for _, i := range []int{1, 2, 3, 4, 6, 7, 8, 9, 10} {
		answerCorrect(t, svc, res, "ada", i)
	}

	_, err := svc.AnswerMentorItem(ctx, res.SetID, "Kael", "ada", 5, correctAnswer)
	var ooo *ErrOutOfOrderIndex
	if !errors.As(err, &ooo) {
		t.Fatalf("err = %v, want ErrOutOfOrderIndex", err)
	}
	if ooo.Index != 5 || ooo.Expected != 11 {
		t.Errorf("conflict reports index %d expected %d, want 5 and 11", ooo.Index, ooo.Expected)
	}
}

func TestAnswerMentorItem_FallbackReportsPersistedCursor(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	for _, i := range []int{1, 2, 3, 4, 6, 7, 8, 9, 10} {
		answerCorrect(t, svc, res, "ada", i)
	}

	// The sequencer's own resolution may reach back to the skipped item,
	// and the result must not pretend the cursor rewound to 6.
	out, err := svc.AnswerMentorItem(ctx, res.SetID, "Kael", "ada", 0, correctAnswer)
	if err != nil {
		t.Fatalf("AnswerMentorItem: %v", err)
	}
	if !out.Correct {
		t.Error("expected the resolved item to accept the known answer")
	}
	if !out.MentorFinished {
		t.Error("mentor should be finished after its last item")
	}
	if out.NextIndex != 11 {
		t.Errorf("next index = %d, want the persisted cursor 11", out.NextIndex)
	}
}

func TestAnswerMentorItem_RejectsForeignIndex(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	// Index 4 belongs to the second mentor.
	_, err := svc.AnswerMentorItem(context.Background(), res.SetID, "Nyra", "ada", 4, correctAnswer)
	wantErrIs(t, err, ErrItemNotFound)
}

func TestAnswerItem_ClosedSetRejected(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	if err := st.SetRepo().MarkInvalid(ctx, res.SetID); err != nil {
		t.Fatalf("MarkInvalid: %v", err)
	}

	_, err := svc.AnswerItem(ctx, res.SetID, "ada", 1, correctAnswer)
	wantErrIs(t, err, ErrSetNotOpen)
}
