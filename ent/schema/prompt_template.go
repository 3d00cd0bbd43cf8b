package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PromptTemplate stores generation instructions as data so they can be
// tuned without a rebuild. Looked up by key, e.g. "set-gen/junior".
type PromptTemplate struct {
	ent.Schema
}

func (PromptTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique(),
		field.Text("body").
			NotEmpty(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
