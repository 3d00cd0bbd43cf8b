package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mentor is an in-game character owning a themed slice of a tier's
// questions. The roster is seeded data; position fixes the order mentors
// are considered during set composition.
type Mentor struct {
	ent.Schema
}

func (Mentor) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Stable identifier used in generated items"),
		field.String("tier").
			NotEmpty(),
		field.String("display_name").
			NotEmpty(),
		field.Int("position").
			Min(0).
			Comment("Composition and display order within the tier"),
		field.Text("flavor").
			Default("").
			Comment("Short character blurb shown in the UI"),
	}
}

func (Mentor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier", "position"),
	}
}
