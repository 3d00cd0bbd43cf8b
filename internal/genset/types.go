package genset

// Tier is a progression level of the game.
type Tier string

const (
	// TierJunior is the primary tier with strict composition quotas.
	TierJunior Tier = "junior"

	// TierSenior uses plain truncation composition.
	TierSenior Tier = "senior"
)

// Primary reports whether the tier uses the quota-based composition
// (5 boss + per-mentor 2 main / 1 random).
func (t Tier) Primary() bool {
	return t == TierJunior
}

// Kind is the category of a candidate item.
type Kind string

const (
	KindMain   Kind = "main"
	KindRandom Kind = "random"
	KindBoss   Kind = "boss"
)

// Composition constants for a canonical set.
const (
	// TotalItems is the size of every composed set.
	TotalItems = 20

	// BossCount is the number of boss items in a primary-tier set.
	BossCount = 5

	// MentorCount is the number of mentors in a primary tier.
	MentorCount = 5

	// MainsPerMentor and RandomsPerMentor are the per-mentor quotas.
	MainsPerMentor   = 2
	RandomsPerMentor = 1

	// MainCount and RandomCount are the resulting category totals.
	MainCount   = MentorCount * MainsPerMentor
	RandomCount = MentorCount * RandomsPerMentor

	// BossRangeStart is the first item index of the boss stage. Composition
	// places boss items on the fixed tail range BossRangeStart..TotalItems.
	BossRangeStart = TotalItems - BossCount + 1
)

// Candidate is a validated generator item. Pos is its 1-based position in
// the original generator output and drives every deterministic tie-break.
type Candidate struct {
	Pos         int
	Kind        Kind
	Mentor      string // empty for boss
	Question    string
	Options     []string
	AnswerIndex int
	Explanation string
}

// GenerateInput holds everything needed to generate one set.
type GenerateInput struct {
	// Tier selects the composition rules and prompt hints.
	Tier Tier

	// Mentors is the tier's roster in store order. Mentor references in
	// candidates must match one of these names.
	Mentors []string

	// Template is the instruction template body. When empty, the built-in
	// default is used.
	Template string
}
