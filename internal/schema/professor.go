package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Professor struct {
	ent.Schema
}

func (Professor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Professor) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			MaxLen(200).
			NotEmpty(),

		field.UUID("school_id", uuid.UUID{}).
			Comment("FK → schools.id"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Used for rating digests"),
	}
}

func (Professor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("school_id"),
		index.Fields("full_name"),
	}
}

func (Professor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("school", School.Type).
			Ref("professors").
			Unique().
			Required().
			Field("school_id"),
		edge.To("assignments", GroupProfessor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("surveys", Survey.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
