package game

import (
	"context"
	"testing"
)

func TestNextForMentor_ServesInOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	next, err := svc.NextForMentor(ctx, res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if next.Finished || next.Item == nil {
		t.Fatal("expected an item for an untouched mentor")
	}
	if next.Item.Index != 1 {
		t.Errorf("index = %d, want 1", next.Item.Index)
	}
	if next.Item.Mentor != "Nyra" {
		t.Errorf("mentor = %q, want Nyra", next.Item.Mentor)
	}

	answerCorrect(t, svc, res, "ada", 1)

	next, err = svc.NextForMentor(ctx, res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if next.Item == nil || next.Item.Index != 2 {
		t.Fatalf("next = %+v, want index 2", next)
	}
}

func TestNextForMentor_LastRandomSkipped(t *testing.T) {
	svc, _, _ := newTestService(t, WithRand(func() float64 { return 0.9 }))
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	// Clear Nyra's two mains so only the random item remains.
	answerCorrect(t, svc, res, "ada", 1)
	answerCorrect(t, svc, res, "ada", 2)

	next, err := svc.NextForMentor(ctx, res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if !next.Finished {
		t.Error("high roll should finish the mentor without the random item")
	}
	if next.Item != nil {
		t.Errorf("skipped roll still served item %+v", next.Item)
	}
}

func TestNextForMentor_LastRandomServed(t *testing.T) {
	svc, _, _ := newTestService(t, WithRand(func() float64 { return 0.1 }))
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	answerCorrect(t, svc, res, "ada", 1)
	answerCorrect(t, svc, res, "ada", 2)

	next, err := svc.NextForMentor(ctx, res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if next.Finished || next.Item == nil {
		t.Fatal("low roll should serve the random item")
	}
	if next.Item.Index != 3 {
		t.Errorf("index = %d, want 3", next.Item.Index)
	}
}

func TestNextForMentor_FinishedAfterAllAnswered(t *testing.T) {
	svc, _, _ := newTestService(t, WithRand(func() float64 { return 0.0 }))
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	for i := 1; i <= 3; i++ {
		answerCorrect(t, svc, res, "ada", i)
	}

	next, err := svc.NextForMentor(ctx, res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if !next.Finished {
		t.Error("mentor with no remaining items must report finished")
	}
}

func TestNextForMentor_FallsBackBehindCursor(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := startJunior(t, svc, "ada")

	// Push the cursor past Nyra's items by answering Kael's first main.
	answerCorrect(t, svc, res, "ada", 4)

	next, err := svc.NextForMentor(ctx, res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if next.Item == nil || next.Item.Index != 1 {
		t.Fatalf("next = %+v, want fallback to index 1", next)
	}
}

func TestNextForMentor_UnknownMentor(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	_, err := svc.NextForMentor(context.Background(), res.SetID, "Zed", "ada")
	wantErrIs(t, err, ErrMentorNotFound)
}

func TestNextForMentor_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	_, err := svc.NextForMentor(context.Background(), res.SetID, "Nyra", "mallory")
	wantErrIs(t, err, ErrOwnershipMismatch)
}

func TestNextForMentor_NeverLeaksAnswer(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := startJunior(t, svc, "ada")

	next, err := svc.NextForMentor(context.Background(), res.SetID, "Nyra", "ada")
	if err != nil {
		t.Fatalf("NextForMentor: %v", err)
	}
	if len(next.Item.Options) != 4 {
		t.Errorf("options = %d, want 4", len(next.Item.Options))
	}
	if next.Item.Question == "" {
		t.Error("question missing from served item")
	}
}
