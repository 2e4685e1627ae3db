package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Profile is a patient's health profile. Exactly one per patient user;
// created lazily the first time the patient's data is read.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (owner)"),

		field.String("name").
			Optional().
			MaxLen(100),

		field.String("smart_id").
			MaxLen(12).
			Comment("Shareable numeric code; mirrored in smart_id_entries"),

		field.Int("age").
			Optional().
			Nillable().
			NonNegative(),

		field.JSON("diseases", []string{}).
			Optional().
			Default([]string{}),

		field.JSON("allergies", []string{}).
			Optional().
			Default([]string{}),

		field.String("blood_type").
			Optional().
			MaxLen(5),

		field.String("citizen_id").
			Optional().
			Sensitive().
			Comment("AES-256-GCM encrypted, base64"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("smart_id"),
	}
}
