// Code generated by ent, DO NOT EDIT.

package answer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// SurveyID applies equality check predicate on the "survey_id" field. It's identical to SurveyIDEQ.
func SurveyID(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSurveyID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// RatingValue applies equality check predicate on the "rating_value" field. It's identical to RatingValueEQ.
func RatingValue(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRatingValue, v))
}

// TextValue applies equality check predicate on the "text_value" field. It's identical to TextValueEQ.
func TextValue(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTextValue, v))
}

// SurveyIDEQ applies the EQ predicate on the "survey_id" field.
func SurveyIDEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSurveyID, v))
}

// SurveyIDNEQ applies the NEQ predicate on the "survey_id" field.
func SurveyIDNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSurveyID, v))
}

// SurveyIDIn applies the In predicate on the "survey_id" field.
func SurveyIDIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSurveyID, vs...))
}

// SurveyIDNotIn applies the NotIn predicate on the "survey_id" field.
func SurveyIDNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSurveyID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// RatingValueEQ applies the EQ predicate on the "rating_value" field.
func RatingValueEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRatingValue, v))
}

// RatingValueNEQ applies the NEQ predicate on the "rating_value" field.
func RatingValueNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldRatingValue, v))
}

// RatingValueIn applies the In predicate on the "rating_value" field.
func RatingValueIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldRatingValue, vs...))
}

// RatingValueNotIn applies the NotIn predicate on the "rating_value" field.
func RatingValueNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldRatingValue, vs...))
}

// RatingValueGT applies the GT predicate on the "rating_value" field.
func RatingValueGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldRatingValue, v))
}

// RatingValueGTE applies the GTE predicate on the "rating_value" field.
func RatingValueGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldRatingValue, v))
}

// RatingValueLT applies the LT predicate on the "rating_value" field.
func RatingValueLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldRatingValue, v))
}

// RatingValueLTE applies the LTE predicate on the "rating_value" field.
func RatingValueLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldRatingValue, v))
}

// RatingValueIsNil applies the IsNil predicate on the "rating_value" field.
func RatingValueIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldRatingValue))
}

// RatingValueNotNil applies the NotNil predicate on the "rating_value" field.
func RatingValueNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldRatingValue))
}

// TextValueEQ applies the EQ predicate on the "text_value" field.
func TextValueEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTextValue, v))
}

// TextValueNEQ applies the NEQ predicate on the "text_value" field.
func TextValueNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTextValue, v))
}

// TextValueIn applies the In predicate on the "text_value" field.
func TextValueIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTextValue, vs...))
}

// TextValueNotIn applies the NotIn predicate on the "text_value" field.
func TextValueNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTextValue, vs...))
}

// TextValueGT applies the GT predicate on the "text_value" field.
func TextValueGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTextValue, v))
}

// TextValueGTE applies the GTE predicate on the "text_value" field.
func TextValueGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTextValue, v))
}

// TextValueLT applies the LT predicate on the "text_value" field.
func TextValueLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTextValue, v))
}

// TextValueLTE applies the LTE predicate on the "text_value" field.
func TextValueLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTextValue, v))
}

// TextValueContains applies the Contains predicate on the "text_value" field.
func TextValueContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldTextValue, v))
}

// TextValueHasPrefix applies the HasPrefix predicate on the "text_value" field.
func TextValueHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldTextValue, v))
}

// TextValueHasSuffix applies the HasSuffix predicate on the "text_value" field.
func TextValueHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldTextValue, v))
}

// TextValueIsNil applies the IsNil predicate on the "text_value" field.
func TextValueIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldTextValue))
}

// TextValueNotNil applies the NotNil predicate on the "text_value" field.
func TextValueNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldTextValue))
}

// TextValueEqualFold applies the EqualFold predicate on the "text_value" field.
func TextValueEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldTextValue, v))
}

// TextValueContainsFold applies the ContainsFold predicate on the "text_value" field.
func TextValueContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldTextValue, v))
}

// HasSurvey applies the HasEdge predicate on the "survey" edge.
func HasSurvey() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SurveyTable, SurveyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSurveyWith applies the HasEdge predicate on the "survey" edge with a given conditions (other predicates).
func HasSurveyWith(preds ...predicate.Survey) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newSurveyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
