package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AdherenceLog is one patient-day of medication intake. taken_meds holds
// the IDs of medications marked taken; taken_count is kept equal to
// len(taken_meds) in the same write so readers never see them disagree.
type AdherenceLog struct {
	ent.Schema
}

func (AdherenceLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AdherenceLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (owner)"),

		field.String("date").
			MaxLen(10).
			Comment("Calendar day, YYYY-MM-DD"),

		field.JSON("taken_meds", []string{}).
			Default([]string{}),

		field.Int("taken_count").
			Default(0).
			NonNegative(),
	}
}

func (AdherenceLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "date").
			Unique(),
	}
}
