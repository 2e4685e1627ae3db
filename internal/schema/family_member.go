package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type FamilyMember struct {
	ent.Schema
}

func (FamilyMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (FamilyMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (owner)"),

		field.String("name").
			NotEmpty().
			MaxLen(100),

		field.String("phone").
			Optional().
			MaxLen(20),

		field.Enum("relation").
			Values("child", "grandchild", "caregiver"),
	}
}

func (FamilyMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
