package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PlayerState is the denormalized per-(user, tier) progress summary:
// running score and a pointer to the current set.
type PlayerState struct {
	ent.Schema
}

func (PlayerState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("tier").
			NotEmpty().
			Immutable(),
		field.Int("score").
			Default(0).
			Min(0),
		field.UUID("current_set_id", uuid.UUID{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PlayerState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "tier").
			Unique(),
	}
}
