package genset

import (
	"fmt"
	"os"
	"sort"
)

// Compose reduces a validated candidate pool to the canonical ordered set
// of exactly TotalItems items. The returned slice's position (1-based)
// becomes the persisted item_index.
//
// Primary tiers use the quota composition: 5 boss candidates plus, for
// each mentor, the first 2 main and first 1 random. Mentor items keep
// their relative generation order and fill indices 1..15; boss items
// always occupy the fixed tail range 16..20 so the boss stage is a
// contiguous, gateable range. Other tiers simply truncate to the first 20.
//
// Ties always resolve toward the candidate appearing earliest in the
// generator output; nothing is re-randomized.
func Compose(tier Tier, cands []Candidate, mentors []string) ([]Candidate, error) {
	if !tier.Primary() {
		if len(cands) > TotalItems {
			fmt.Fprintf(os.Stderr, "warning: discarding %d excess candidates for tier %s\n",
				len(cands)-TotalItems, tier)
		}
		return cands[:TotalItems], nil
	}

	if len(mentors) != MentorCount {
		return nil, fmt.Errorf("tier %s requires %d mentors, roster has %d", tier, MentorCount, len(mentors))
	}

	// 1) Boss quota: first 5 in generation order.
	var bosses []Candidate
	for _, c := range cands {
		if c.Kind == KindBoss {
			bosses = append(bosses, c)
		}
	}
	if len(bosses) < BossCount {
		return nil, &ErrInsufficientBoss{Have: len(bosses)}
	}
	bosses = bosses[:BossCount]

	// 2) Per-mentor quotas, mentors considered in roster order.
	var mentorPicks []Candidate
	for _, mentor := range mentors {
		var mains, randoms []Candidate
		for _, c := range cands {
			if c.Mentor != mentor {
				continue
			}
			switch c.Kind {
			case KindMain:
				mains = append(mains, c)
			case KindRandom:
				randoms = append(randoms, c)
			}
		}
		if len(mains) < MainsPerMentor || len(randoms) < RandomsPerMentor {
			return nil, &ErrInsufficientMentorItems{
				Mentor:  mentor,
				Mains:   len(mains),
				Randoms: len(randoms),
			}
		}
		mentorPicks = append(mentorPicks, mains[:MainsPerMentor]...)
		mentorPicks = append(mentorPicks, randoms[:RandomsPerMentor]...)
	}

	// 3) Mentor items in generation order, then the boss tail.
	sort.Slice(mentorPicks, func(i, j int) bool {
		return mentorPicks[i].Pos < mentorPicks[j].Pos
	})
	final := make([]Candidate, 0, TotalItems)
	final = append(final, mentorPicks...)
	final = append(final, bosses...)

	if err := verifyComposition(final, mentors); err != nil {
		return nil, err
	}
	return final, nil
}

// verifyComposition is the post-hoc recheck of every count the selection
// above should have guaranteed. A failure here means a bug in Compose, so
// it aborts generation rather than letting a malformed set persist.
func verifyComposition(items []Candidate, mentors []string) error {
	if len(items) != TotalItems {
		return &ErrRedistribution{Detail: fmt.Sprintf("got %d items, want %d", len(items), TotalItems)}
	}

	var nMain, nRandom, nBoss int
	for _, it := range items {
		switch it.Kind {
		case KindMain:
			nMain++
		case KindRandom:
			nRandom++
		case KindBoss:
			nBoss++
		}
	}
	if nMain != MainCount || nRandom != RandomCount || nBoss != BossCount {
		return &ErrRedistribution{
			Detail: fmt.Sprintf("category counts main=%d random=%d boss=%d, want %d/%d/%d",
				nMain, nRandom, nBoss, MainCount, RandomCount, BossCount),
		}
	}

	for i := BossRangeStart - 1; i < TotalItems; i++ {
		if items[i].Kind != KindBoss {
			return &ErrRedistribution{
				Detail: fmt.Sprintf("index %d holds %s, boss stage must span %d..%d",
					i+1, items[i].Kind, BossRangeStart, TotalItems),
			}
		}
	}

	for _, mentor := range mentors {
		var mains, randoms int
		for _, it := range items {
			if it.Mentor != mentor {
				continue
			}
			switch it.Kind {
			case KindMain:
				mains++
			case KindRandom:
				randoms++
			}
		}
		if mains != MainsPerMentor || randoms != RandomsPerMentor {
			return &ErrRedistribution{
				Detail: fmt.Sprintf("mentor %s has main=%d random=%d, want %d+%d",
					mentor, mains, randoms, MainsPerMentor, RandomsPerMentor),
			}
		}
	}

	return nil
}
