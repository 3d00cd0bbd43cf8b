package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt is a write-once answer record. The unique (set_id, user_id,
// item_index) index is what makes duplicate-answer detection safe under
// concurrent writers; the application-level check alone has a race window.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("set_id", uuid.UUID{}).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("item_index").
			Min(1).
			Max(20).
			Immutable(),
		field.Int("answer_given").
			Min(1).
			Max(4).
			Immutable(),
		field.Bool("is_correct").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("set_id", "user_id", "item_index").
			Unique(),
		index.Fields("set_id", "user_id"),
	}
}
