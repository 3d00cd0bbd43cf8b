package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GeneratedItem is one question in a composed set. Items are written once
// alongside their set and never mutated.
type GeneratedItem struct {
	ent.Schema
}

func (GeneratedItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("set_id", uuid.UUID{}).
			Immutable(),
		field.Int("item_index").
			Min(1).
			Max(20).
			Immutable().
			Comment("Position within the set, 1-based"),
		field.Enum("kind").
			Values("main", "random", "boss").
			Immutable(),
		field.String("mentor").
			Optional().
			Immutable().
			Comment("Mentor name for main/random; empty for boss"),
		field.Text("question").
			NotEmpty().
			Immutable(),
		field.JSON("options", []string{}).
			Immutable().
			Comment("Exactly 4 answer options"),
		field.Int("answer_index").
			Min(1).
			Max(4).
			Immutable().
			Comment("1-based index into options"),
		field.Text("explanation").
			NotEmpty().
			Immutable(),
	}
}

func (GeneratedItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("set_id", "item_index").
			Unique(),
		index.Fields("set_id", "mentor"),
	}
}
