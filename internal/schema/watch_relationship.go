package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WatchRelationship links a caregiver to a patient they follow. The
// patient's display name is denormalized at link time so the caregiver's
// watch list renders without touching patient profiles.
type WatchRelationship struct {
	ent.Schema
}

func (WatchRelationship) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (WatchRelationship) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("caregiver_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("patient_name").
			MaxLen(100).
			Comment("Denormalized at link time"),

		field.String("smart_id").
			MaxLen(12).
			Comment("Code the caregiver linked with"),
	}
}

func (WatchRelationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("caregiver_id", "patient_id").
			Unique(),
		index.Fields("patient_id"),
	}
}
