package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

const (
	// BossUnlockThreshold is the number of correct non-boss answers
	// required to unlock the boss stage. Every user-facing description
	// of the rule is rendered from this constant.
	BossUnlockThreshold = 10

	// TerminalIndex is the cursor value meaning "past the last item".
	TerminalIndex = genset.TotalItems + 1

	// RandomSkipProbability is the chance the last remaining random item
	// of a mentor is skipped instead of served.
	RandomSkipProbability = 0.5
)

// BossUnlockRule renders the unlock rule for user-facing messages.
func BossUnlockRule() string {
	return fmt.Sprintf("need >=%d correct among main+random items (1..%d)",
		BossUnlockThreshold, genset.BossRangeStart-1)
}

// RateLimit is a fixed-window request budget.
type RateLimit struct {
	Window time.Duration
	Max    int
}

// DefaultRateLimit mirrors a modest per-user budget for the expensive
// start/generate path.
var DefaultRateLimit = RateLimit{Window: time.Minute, Max: 60}

// Service implements the player-facing game operations over the store
// and the set generator.
type Service struct {
	sets      store.SetRepo
	attempts  store.AttemptRepo
	players   store.PlayerRepo
	mentors   store.MentorRepo
	templates store.TemplateRepo
	buckets   store.RateBucketRepo
	gen       genset.Generator

	// rng draws a uniform value in [0, 1) for the random-skip roll.
	// Injectable so both branches are testable.
	rng func() float64

	limit RateLimit
}

// Option configures a Service.
type Option func(*Service)

// WithRand overrides the uniform random source.
func WithRand(f func() float64) Option {
	return func(s *Service) { s.rng = f }
}

// WithRateLimit overrides the start-operation rate limit.
func WithRateLimit(rl RateLimit) Option {
	return func(s *Service) { s.limit = rl }
}

// New creates a Service over the given store and generator.
func New(st *store.Store, gen genset.Generator, opts ...Option) *Service {
	s := &Service{
		sets:      st.SetRepo(),
		attempts:  st.AttemptRepo(),
		players:   st.PlayerRepo(),
		mentors:   st.MentorRepo(),
		templates: st.TemplateRepo(),
		buckets:   st.RateBucketRepo(),
		gen:       gen,
		rng:       rand.Float64,
		limit:     DefaultRateLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
