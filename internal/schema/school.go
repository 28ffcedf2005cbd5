package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type School struct {
	ent.Schema
}

func (School) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (School) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200).
			NotEmpty().
			Unique(),

		field.String("code").
			MaxLen(20).
			NotEmpty().
			Unique(),

		field.String("description").
			Optional().
			Nillable(),
	}
}

func (School) Edges() []ent.Edge {
	return []ent.Edge{
		// A school cannot be removed while anything still hangs off it.
		edge.To("departments", Department.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
		edge.To("professors", Professor.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}
