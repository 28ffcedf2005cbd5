// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// TextEn applies equality check predicate on the "text_en" field. It's identical to TextEnEQ.
func TextEn(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTextEn, v))
}

// TextUz applies equality check predicate on the "text_uz" field. It's identical to TextUzEQ.
func TextUz(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTextUz, v))
}

// TextRu applies equality check predicate on the "text_ru" field. It's identical to TextRuEQ.
func TextRu(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTextRu, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSortOrder, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// TextEnEQ applies the EQ predicate on the "text_en" field.
func TextEnEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTextEn, v))
}

// TextEnNEQ applies the NEQ predicate on the "text_en" field.
func TextEnNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTextEn, v))
}

// TextEnIn applies the In predicate on the "text_en" field.
func TextEnIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTextEn, vs...))
}

// TextEnNotIn applies the NotIn predicate on the "text_en" field.
func TextEnNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTextEn, vs...))
}

// TextEnGT applies the GT predicate on the "text_en" field.
func TextEnGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTextEn, v))
}

// TextEnGTE applies the GTE predicate on the "text_en" field.
func TextEnGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTextEn, v))
}

// TextEnLT applies the LT predicate on the "text_en" field.
func TextEnLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTextEn, v))
}

// TextEnLTE applies the LTE predicate on the "text_en" field.
func TextEnLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTextEn, v))
}

// TextEnContains applies the Contains predicate on the "text_en" field.
func TextEnContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTextEn, v))
}

// TextEnHasPrefix applies the HasPrefix predicate on the "text_en" field.
func TextEnHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTextEn, v))
}

// TextEnHasSuffix applies the HasSuffix predicate on the "text_en" field.
func TextEnHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTextEn, v))
}

// TextEnEqualFold applies the EqualFold predicate on the "text_en" field.
func TextEnEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTextEn, v))
}

// TextEnContainsFold applies the ContainsFold predicate on the "text_en" field.
func TextEnContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTextEn, v))
}

// TextUzEQ applies the EQ predicate on the "text_uz" field.
func TextUzEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTextUz, v))
}

// TextUzNEQ applies the NEQ predicate on the "text_uz" field.
func TextUzNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTextUz, v))
}

// TextUzIn applies the In predicate on the "text_uz" field.
func TextUzIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTextUz, vs...))
}

// TextUzNotIn applies the NotIn predicate on the "text_uz" field.
func TextUzNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTextUz, vs...))
}

// TextUzGT applies the GT predicate on the "text_uz" field.
func TextUzGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTextUz, v))
}

// TextUzGTE applies the GTE predicate on the "text_uz" field.
func TextUzGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTextUz, v))
}

// TextUzLT applies the LT predicate on the "text_uz" field.
func TextUzLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTextUz, v))
}

// TextUzLTE applies the LTE predicate on the "text_uz" field.
func TextUzLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTextUz, v))
}

// TextUzContains applies the Contains predicate on the "text_uz" field.
func TextUzContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTextUz, v))
}

// TextUzHasPrefix applies the HasPrefix predicate on the "text_uz" field.
func TextUzHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTextUz, v))
}

// TextUzHasSuffix applies the HasSuffix predicate on the "text_uz" field.
func TextUzHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTextUz, v))
}

// TextUzEqualFold applies the EqualFold predicate on the "text_uz" field.
func TextUzEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTextUz, v))
}

// TextUzContainsFold applies the ContainsFold predicate on the "text_uz" field.
func TextUzContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTextUz, v))
}

// TextRuEQ applies the EQ predicate on the "text_ru" field.
func TextRuEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTextRu, v))
}

// TextRuNEQ applies the NEQ predicate on the "text_ru" field.
func TextRuNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTextRu, v))
}

// TextRuIn applies the In predicate on the "text_ru" field.
func TextRuIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTextRu, vs...))
}

// TextRuNotIn applies the NotIn predicate on the "text_ru" field.
func TextRuNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTextRu, vs...))
}

// TextRuGT applies the GT predicate on the "text_ru" field.
func TextRuGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTextRu, v))
}

// TextRuGTE applies the GTE predicate on the "text_ru" field.
func TextRuGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTextRu, v))
}

// TextRuLT applies the LT predicate on the "text_ru" field.
func TextRuLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTextRu, v))
}

// TextRuLTE applies the LTE predicate on the "text_ru" field.
func TextRuLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTextRu, v))
}

// TextRuContains applies the Contains predicate on the "text_ru" field.
func TextRuContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTextRu, v))
}

// TextRuHasPrefix applies the HasPrefix predicate on the "text_ru" field.
func TextRuHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTextRu, v))
}

// TextRuHasSuffix applies the HasSuffix predicate on the "text_ru" field.
func TextRuHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTextRu, v))
}

// TextRuEqualFold applies the EqualFold predicate on the "text_ru" field.
func TextRuEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTextRu, v))
}

// TextRuContainsFold applies the ContainsFold predicate on the "text_ru" field.
func TextRuContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTextRu, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v QuestionType) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v QuestionType) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...QuestionType) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...QuestionType) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionType, vs...))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSortOrder, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsActive, v))
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
