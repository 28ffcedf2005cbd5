package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Department struct {
	ent.Schema
}

func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("school_id", uuid.UUID{}).
			Comment("FK → schools.id"),

		field.String("name").
			MaxLen(200).
			NotEmpty(),

		field.String("code").
			MaxLen(20).
			NotEmpty(),

		field.String("description").
			Optional().
			Nillable(),
	}
}

func (Department) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("school_id", "name").Unique(),
		index.Fields("school_id", "code").Unique(),
	}
}

func (Department) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("school", School.Type).
			Ref("departments").
			Unique().
			Required().
			Field("school_id"),
		edge.To("groups", Group.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}
