package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// SmartIDEntry is the public lookup index mapping a shareable code to a
// patient. Readable by any authenticated user so caregivers can resolve
// codes; rows are written only by the owning patient's flows.
type SmartIDEntry struct {
	ent.Schema
}

func (SmartIDEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (SmartIDEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("smart_id").
			Unique().
			MaxLen(12),

		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),
	}
}
