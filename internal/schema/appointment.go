package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (owner)"),

		field.String("date").
			MaxLen(10).
			Comment("Visit day, YYYY-MM-DD"),

		field.String("time").
			Optional().
			MaxLen(10).
			Comment("Visit time, HH:MM"),

		field.String("location").
			Optional().
			MaxLen(200),

		field.String("department").
			Optional().
			MaxLen(100),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "date"),
	}
}
