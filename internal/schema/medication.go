package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Medication struct {
	ent.Schema
}

func (Medication) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Medication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (owner)"),

		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.String("dose").
			Optional().
			MaxLen(100),

		field.Enum("time").
			Values(
				"before_breakfast", "after_breakfast",
				"before_lunch", "after_lunch",
				"before_dinner", "after_dinner",
				"bedtime",
			).
			Comment("Meal-relative slot the dose belongs to"),

		field.String("note").
			Optional().
			MaxLen(500),
	}
}

func (Medication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
