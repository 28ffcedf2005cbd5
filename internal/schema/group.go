package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Group: an academic cohort that evaluates its professors
// ---------------------------------------------------------------------------

type Group struct {
	ent.Schema
}

func (Group) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(50).
			NotEmpty().
			Unique(),

		field.UUID("department_id", uuid.UUID{}).
			Comment("FK → departments.id"),

		field.Int("semester").
			Range(1, 8).
			Default(1),

		field.Int("total_students").
			NonNegative().
			Default(0),

		field.Int("participated_students").
			NonNegative().
			Default(0).
			Comment("Incremented once per completed evaluation pass"),
	}
}

func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("department_id"),
	}
}

func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("department", Department.Type).
			Ref("groups").
			Unique().
			Required().
			Field("department_id"),
		edge.To("assignments", GroupProfessor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("surveys", Survey.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("internship_surveys", InternshipSurvey.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// ---------------------------------------------------------------------------
// GroupProfessor: join table group ↔ professor, ordered by creation
// ---------------------------------------------------------------------------

type GroupProfessor struct {
	ent.Schema
}

func (GroupProfessor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (GroupProfessor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("group_id", uuid.UUID{}).
			Comment("FK → groups.id"),

		field.UUID("professor_id", uuid.UUID{}).
			Comment("FK → professors.id"),
	}
}

func (GroupProfessor) Indexes() []ent.Index {
	return []ent.Index{
		// A professor is assigned to a group at most once
		index.Fields("group_id", "professor_id").Unique(),
		index.Fields("professor_id"),
	}
}

func (GroupProfessor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("group_id"),
		edge.From("professor", Professor.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("professor_id"),
	}
}
