package genset

import (
	"errors"
	"strings"
	"testing"
)

func TestCompose_ExactQuotas(t *testing.T) {
	cands := mustValidate(t, validBatch())

	final, err := Compose(TierJunior, cands, testMentors)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(final) != TotalItems {
		t.Fatalf("len = %d, want %d", len(final), TotalItems)
	}

	// Boss items occupy the fixed tail range.
	for i := BossRangeStart - 1; i < TotalItems; i++ {
		if final[i].Kind != KindBoss {
			t.Errorf("index %d kind = %s, want boss", i+1, final[i].Kind)
		}
		if final[i].Mentor != "" {
			t.Errorf("index %d has mentor %q, boss must have none", i+1, final[i].Mentor)
		}
	}

	// Mentor items keep generation order on 1..15.
	for i := 1; i < BossRangeStart-1; i++ {
		if final[i-1].Pos >= final[i].Pos {
			t.Errorf("mentor items out of generation order at %d: %d then %d",
				i, final[i-1].Pos, final[i].Pos)
		}
	}

	// Per-mentor quotas hold.
	for _, mentor := range testMentors {
		var mains, randoms int
		for _, c := range final {
			if c.Mentor != mentor {
				continue
			}
			switch c.Kind {
			case KindMain:
				mains++
			case KindRandom:
				randoms++
			}
		}
		if mains != MainsPerMentor || randoms != RandomsPerMentor {
			t.Errorf("mentor %s: main=%d random=%d, want %d+%d",
				mentor, mains, randoms, MainsPerMentor, RandomsPerMentor)
		}
	}
}

func TestCompose_InsufficientBoss(t *testing.T) {
	items := validBatch()
	// Demote one boss to a spare main so only 4 remain; batch stays at 20.
	items[0] = elem("main", "Nyra", 1)

	cands := mustValidate(t, items)
	_, err := Compose(TierJunior, cands, testMentors)
	if err == nil {
		t.Fatal("expected error with 4 boss candidates")
	}
	var bossErr *ErrInsufficientBoss
	if !errors.As(err, &bossErr) {
		t.Fatalf("expected *ErrInsufficientBoss, got %T: %v", err, err)
	}
	if bossErr.Have != 4 {
		t.Errorf("have = %d, want 4", bossErr.Have)
	}
}

func TestCompose_InsufficientMentorItems(t *testing.T) {
	items := validBatch()
	// Kael loses its random challenge to an extra main.
	for i := range items {
		if items[i].MentorName == "Kael" && items[i].Kind == "random" {
			items[i].Kind = "main"
		}
	}

	cands := mustValidate(t, items)
	_, err := Compose(TierJunior, cands, testMentors)
	if err == nil {
		t.Fatal("expected error for missing random item")
	}
	var mentorErr *ErrInsufficientMentorItems
	if !errors.As(err, &mentorErr) {
		t.Fatalf("expected *ErrInsufficientMentorItems, got %T: %v", err, err)
	}
	if mentorErr.Mentor != "Kael" {
		t.Errorf("mentor = %q, want Kael", mentorErr.Mentor)
	}
	if !strings.Contains(err.Error(), "Kael") {
		t.Errorf("error %q should name the mentor", err)
	}
}

func TestCompose_PrefersEarliestCandidates(t *testing.T) {
	// Extra candidates after a complete batch must never displace
	// earlier ones.
	items := validBatch()
	items = append(items,
		elem("boss", "", 21),
		elem("main", "Nyra", 22),
		elem("random", "Voss", 23),
	)

	cands := mustValidate(t, items)
	final, err := Compose(TierJunior, cands, testMentors)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	for _, c := range final {
		if c.Pos > 20 {
			t.Errorf("candidate at pos %d selected over an earlier one", c.Pos)
		}
	}
}

func TestCompose_SeniorTruncates(t *testing.T) {
	items := validBatch()
	items = append(items, elem("main", "Nyra", 21), elem("main", "Kael", 22))

	cands := mustValidate(t, items)
	final, err := Compose(TierSenior, cands, testMentors)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(final) != TotalItems {
		t.Fatalf("len = %d, want %d", len(final), TotalItems)
	}
	for i, c := range final {
		if c.Pos != i+1 {
			t.Errorf("senior composition reordered: final[%d].Pos = %d", i, c.Pos)
		}
	}
}

func TestCompose_WrongMentorCount(t *testing.T) {
	cands := mustValidate(t, validBatch())
	_, err := Compose(TierJunior, cands, testMentors[:3])
	if err == nil {
		t.Fatal("expected error for short mentor roster")
	}
}
