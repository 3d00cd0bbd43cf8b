package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RateBucket is a fixed-window request counter keyed by client identity.
// Keeping it in the store (rather than process memory) means every process
// pointed at the same database shares the same limits.
type RateBucket struct {
	ent.Schema
}

func (RateBucket) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Client identity, e.g. user ID"),
		field.Time("window_start").
			Default(time.Now),
		field.Int("count").
			Default(0).
			Min(0),
	}
}
