package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GeneratedSet is one player's run through one tier: 20 items, a progress
// cursor, and the boss gate.
type GeneratedSet struct {
	ent.Schema
}

func (GeneratedSet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Opaque owner identifier"),
		field.String("tier").
			NotEmpty().
			Immutable().
			Comment("Tier key: junior, senior"),
		field.Enum("status").
			Values("open", "completed", "invalid").
			Default("open").
			Comment("open -> completed | invalid; both terminal"),
		field.Int("next_index").
			Default(1).
			Min(1).
			Max(21).
			Comment("Cursor: next item the player is expected to answer, 21 = done"),
		field.Bool("boss_unlocked").
			Default(false).
			Comment("One-way gate; flips false -> true at most once"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (GeneratedSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "tier", "status"),
	}
}
