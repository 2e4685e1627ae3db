package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HealthLog is an append-only measurement entry. Exactly one measurement
// group is populated per row, matching the type discriminator.
type HealthLog struct {
	ent.Schema
}

func (HealthLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (HealthLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (owner)"),

		field.Enum("type").
			Values("bp", "sugar", "weight", "lab"),

		field.String("date").
			MaxLen(20).
			Comment("Display date as entered by the patient"),

		field.Float("sys").Optional().Nillable(),
		field.Float("dia").Optional().Nillable(),

		field.Float("sugar").Optional().Nillable(),

		field.Float("weight").Optional().Nillable(),

		field.Float("hba1c").Optional().Nillable(),
		field.Float("lipid").Optional().Nillable(),
		field.Float("egfr").Optional().Nillable(),
	}
}

func (HealthLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
	}
}
