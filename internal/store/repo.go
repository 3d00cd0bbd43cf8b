package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateAttempt is returned when an attempt already exists for the
// same (set, user, item_index). Backed by the unique index, so it holds
// even when two writers race past the application-level check.
var ErrDuplicateAttempt = errors.New("attempt already recorded")

// SetStatus is the lifecycle state of a generated set.
type SetStatus string

const (
	StatusOpen      SetStatus = "open"
	StatusCompleted SetStatus = "completed"
	StatusInvalid   SetStatus = "invalid"
)

// ItemKind is the category of a generated item.
type ItemKind string

const (
	KindMain   ItemKind = "main"
	KindRandom ItemKind = "random"
	KindBoss   ItemKind = "boss"
)

// Set is one player's run through one tier.
type Set struct {
	ID           uuid.UUID
	UserID       string
	Tier         string
	Status       SetStatus
	NextIndex    int
	BossUnlocked bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Item is one question within a set.
type Item struct {
	ID          uuid.UUID
	SetID       uuid.UUID
	ItemIndex   int
	Kind        ItemKind
	Mentor      string
	Question    string
	Options     []string
	AnswerIndex int
	Explanation string
}

// NewItem is an item pending persistence; ItemIndex is assigned from its
// position in the composed sequence.
type NewItem struct {
	ItemIndex   int
	Kind        ItemKind
	Mentor      string
	Question    string
	Options     []string
	AnswerIndex int
	Explanation string
}

// Attempt is a recorded answer.
type Attempt struct {
	SetID       uuid.UUID
	UserID      string
	ItemIndex   int
	AnswerGiven int
	IsCorrect   bool
	CreatedAt   time.Time
}

// Player is the per-(user, tier) progress summary.
type Player struct {
	UserID       string
	Tier         string
	Score        int
	CurrentSetID uuid.UUID
}

// Mentor is a seeded in-game character.
type Mentor struct {
	Name        string
	Tier        string
	DisplayName string
	Position    int
	Flavor      string
}

// SetRepo manages generated sets and their items.
type SetRepo interface {
	// CreateWithItems persists a new open set, its items, and the owner's
	// player-state pointer in a single transaction.
	CreateWithItems(ctx context.Context, userID, tier string, items []NewItem) (*Set, error)

	// Get returns a set by ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Set, error)

	// FindOpen returns the open set for (user, tier), or ErrNotFound.
	FindOpen(ctx context.Context, userID, tier string) (*Set, error)

	// CountItems returns the number of items persisted for a set.
	CountItems(ctx context.Context, setID uuid.UUID) (int, error)

	// Items returns a set's items ordered by item_index.
	Items(ctx context.Context, setID uuid.UUID) ([]Item, error)

	// ItemByIndex returns a single item, or ErrNotFound.
	ItemByIndex(ctx context.Context, setID uuid.UUID, index int) (*Item, error)

	// MarkInvalid demotes a set to invalid.
	MarkInvalid(ctx context.Context, id uuid.UUID) error

	// AdvanceCursor moves next_index forward, never backward, and marks
	// the set completed when the cursor reaches the terminal value. It
	// returns the persisted cursor, which can sit past `to` when the
	// monotone guard left a higher value in place.
	AdvanceCursor(ctx context.Context, id uuid.UUID, to int, complete bool) (int, error)

	// UnlockBoss flips boss_unlocked to true.
	UnlockBoss(ctx context.Context, id uuid.UUID) error
}

// AttemptRepo manages write-once answer records.
type AttemptRepo interface {
	// Create inserts an attempt; returns ErrDuplicateAttempt if one
	// already exists for the same (set, user, item_index).
	Create(ctx context.Context, a Attempt) error

	// ListBySetUser returns all attempts for (set, user), ordered by
	// item_index.
	ListBySetUser(ctx context.Context, setID uuid.UUID, userID string) ([]Attempt, error)

	// DeleteRange removes attempts with from <= item_index <= to and
	// returns the number deleted.
	DeleteRange(ctx context.Context, setID uuid.UUID, userID string, from, to int) (int, error)
}

// PlayerRepo manages per-(user, tier) progress summaries.
type PlayerRepo interface {
	// Get returns the player state, or ErrNotFound.
	Get(ctx context.Context, userID, tier string) (*Player, error)

	// AddScore increments the score by delta, creating the row if needed.
	AddScore(ctx context.Context, userID, tier string, delta int) error
}

// MentorRepo manages the seeded mentor roster.
type MentorRepo interface {
	// ListByTier returns a tier's mentors ordered by position.
	ListByTier(ctx context.Context, tier string) ([]Mentor, error)

	// Upsert inserts or updates a mentor by name.
	Upsert(ctx context.Context, m Mentor) error
}

// TemplateRepo manages stored prompt templates.
type TemplateRepo interface {
	// Get returns the template body for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Upsert inserts or updates a template by key.
	Upsert(ctx context.Context, key, body string) error
}

// RateBucketRepo is a store-backed fixed-window rate limiter.
type RateBucketRepo interface {
	// Take records one request for key and reports whether it is within
	// the limit of max requests per window.
	Take(ctx context.Context, key string, window time.Duration, max int) (bool, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
