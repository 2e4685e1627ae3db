package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.String("name").
			Optional().
			Nillable().
			MaxLen(100),

		// A fresh account has no role until the user picks one; the
		// role decides which surfaces (patient records vs. watch list)
		// the account can reach.
		field.Enum("role").
			Values("patient", "caregiver").
			Optional().
			Nillable(),

		field.Bool("email_verified").Default(false),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
