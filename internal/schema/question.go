package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// QuestionMixin holds the columns shared by both question catalogs.
type QuestionMixin struct {
	mixin.Schema
}

func (QuestionMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text_en").
			NotEmpty(),
		field.Text("text_uz").
			NotEmpty(),
		field.Text("text_ru").
			NotEmpty(),

		field.Enum("question_type").
			Values("rating", "text").
			Default("rating"),

		field.Int("sort_order").
			NonNegative().
			Default(0),

		field.Bool("is_active").Default(true),
	}
}

func (QuestionMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active", "sort_order"),
	}
}

// ---------------------------------------------------------------------------
// Question: asked once per evaluated professor
// ---------------------------------------------------------------------------

type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		QuestionMixin{},
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// ---------------------------------------------------------------------------
// InternshipQuestion: asked once per pass for groups past semester 1
// ---------------------------------------------------------------------------

type InternshipQuestion struct {
	ent.Schema
}

func (InternshipQuestion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		QuestionMixin{},
	}
}

func (InternshipQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("answers", InternshipAnswer.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}
