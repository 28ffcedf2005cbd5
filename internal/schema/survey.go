package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"

	"github.com/google/uuid"
)

// AnswerMixin holds the value columns shared by both answer tables. Rating
// questions fill rating_value only, text questions fill text_value only.
type AnswerMixin struct {
	mixin.Schema
}

func (AnswerMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("survey_id", uuid.UUID{}),
		field.UUID("question_id", uuid.UUID{}),

		field.Int("rating_value").
			Optional().
			Nillable().
			Range(1, 6).
			Comment("1 strongly agree … 5 strongly disagree, 6 not applicable"),

		field.Text("text_value").
			Optional().
			Nillable(),
	}
}

func (AnswerMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("survey_id", "question_id").Unique(),
		index.Fields("question_id"),
	}
}

// ---------------------------------------------------------------------------
// Survey: one submitted evaluation of one professor by one group member
// ---------------------------------------------------------------------------

type Survey struct {
	ent.Schema
}

func (Survey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Survey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("group_id", uuid.UUID{}).
			Immutable().
			Comment("FK → groups.id"),

		field.UUID("professor_id", uuid.UUID{}).
			Immutable().
			Comment("FK → professors.id"),
	}
}

func (Survey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("professor_id", "group_id"),
		index.Fields("created_at"),
	}
}

func (Survey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("surveys").
			Unique().
			Required().
			Immutable().
			Field("group_id"),
		edge.From("professor", Professor.Type).
			Ref("surveys").
			Unique().
			Required().
			Immutable().
			Field("professor_id"),
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

type Answer struct {
	ent.Schema
}

func (Answer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		AnswerMixin{},
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("survey", Survey.Type).
			Ref("answers").
			Unique().
			Required().
			Field("survey_id"),
		edge.From("question", Question.Type).
			Ref("answers").
			Unique().
			Required().
			Field("question_id"),
	}
}

// ---------------------------------------------------------------------------
// InternshipSurvey: the optional last step of a pass
// ---------------------------------------------------------------------------

type InternshipSurvey struct {
	ent.Schema
}

func (InternshipSurvey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (InternshipSurvey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("group_id", uuid.UUID{}).
			Immutable().
			Comment("FK → groups.id"),
	}
}

func (InternshipSurvey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
		index.Fields("created_at"),
	}
}

func (InternshipSurvey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("internship_surveys").
			Unique().
			Required().
			Immutable().
			Field("group_id"),
		edge.To("answers", InternshipAnswer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

type InternshipAnswer struct {
	ent.Schema
}

func (InternshipAnswer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		AnswerMixin{},
	}
}

func (InternshipAnswer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("survey", InternshipSurvey.Type).
			Ref("answers").
			Unique().
			Required().
			Field("survey_id"),
		edge.From("question", InternshipQuestion.Type).
			Ref("answers").
			Unique().
			Required().
			Field("question_id"),
	}
}
