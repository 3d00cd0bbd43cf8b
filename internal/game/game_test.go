package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

var gameMentors = []string{"Nyra", "Kael", "Thorne", "Iris", "Voss"}

// correctAnswer is the answer index every stub-generated item accepts.
const correctAnswer = 2

// stubGenerator returns a fixed composed sequence and counts calls.
type stubGenerator struct {
	calls int
	err   error
}

func (g *stubGenerator) GenerateSet(_ context.Context, input genset.GenerateInput) ([]genset.Candidate, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return stubCandidates(), nil
}

// stubCandidates builds the canonical 20-item sequence: per mentor two
// mains then one random on 1..15, bosses on 16..20.
func stubCandidates() []genset.Candidate {
	var out []genset.Candidate
	pos := 0
	add := func(kind genset.Kind, mentor string) {
		pos++
		out = append(out, genset.Candidate{
			Pos:         pos,
			Kind:        kind,
			Mentor:      mentor,
			Question:    fmt.Sprintf("Challenge %d?", pos),
			Options:     []string{"A", "B", "C", "D"},
			AnswerIndex: correctAnswer,
			Explanation: fmt.Sprintf("Because of reason %d.", pos),
		})
	}
	for _, m := range gameMentors {
		add(genset.KindMain, m)
		add(genset.KindMain, m)
		add(genset.KindRandom, m)
	}
	for i := 0; i < genset.BossCount; i++ {
		add(genset.KindBoss, "")
	}
	return out
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestService wires a Service over an in-memory store with the stub
// generator and a seeded junior mentor roster.
func newTestService(t *testing.T, opts ...Option) (*Service, *store.Store, *stubGenerator) {
	t.Helper()
	st := openTestStore(t)
	ctx := context.Background()
	for i, name := range gameMentors {
		err := st.MentorRepo().Upsert(ctx, store.Mentor{
			Name:        name,
			Tier:        string(genset.TierJunior),
			DisplayName: name,
			Position:    i + 1,
		})
		if err != nil {
			t.Fatalf("seed mentor %s: %v", name, err)
		}
	}
	gen := &stubGenerator{}
	return New(st, gen, opts...), st, gen
}

func startJunior(t *testing.T, svc *Service, userID string) *StartResult {
	t.Helper()
	res, err := svc.StartTier(context.Background(), userID, genset.TierJunior)
	if err != nil {
		t.Fatalf("StartTier: %v", err)
	}
	return res
}

// answerCorrect answers one item with the stub's known correct option.
func answerCorrect(t *testing.T, svc *Service, res *StartResult, userID string, index int) *AnswerResult {
	t.Helper()
	out, err := svc.AnswerItem(context.Background(), res.SetID, userID, index, correctAnswer)
	if err != nil {
		t.Fatalf("AnswerItem %d: %v", index, err)
	}
	if !out.Correct {
		t.Fatalf("AnswerItem %d: expected correct", index)
	}
	return out
}

// unlockAfterThreshold answers enough mentor items correctly and opens
// the boss gate.
func unlockAfterThreshold(t *testing.T, svc *Service, res *StartResult, userID string) {
	t.Helper()
	for i := 1; i <= BossUnlockThreshold; i++ {
		answerCorrect(t, svc, res, userID, i)
	}
	if _, err := svc.UnlockBoss(context.Background(), res.SetID, userID); err != nil {
		t.Fatalf("UnlockBoss: %v", err)
	}
}

func wantErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("err = %v, want %v", err, target)
	}
}
