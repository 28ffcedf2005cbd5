// Code generated by ent, DO NOT EDIT.

package internshipquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// TextEn applies equality check predicate on the "text_en" field. It's identical to TextEnEQ.
func TextEn(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldTextEn, v))
}

// TextUz applies equality check predicate on the "text_uz" field. It's identical to TextUzEQ.
func TextUz(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldTextUz, v))
}

// TextRu applies equality check predicate on the "text_ru" field. It's identical to TextRuEQ.
func TextRu(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldTextRu, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldSortOrder, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// TextEnEQ applies the EQ predicate on the "text_en" field.
func TextEnEQ(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldTextEn, v))
}

// TextEnNEQ applies the NEQ predicate on the "text_en" field.
func TextEnNEQ(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldTextEn, v))
}

// TextEnIn applies the In predicate on the "text_en" field.
func TextEnIn(vs ...string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldTextEn, vs...))
}

// TextEnNotIn applies the NotIn predicate on the "text_en" field.
func TextEnNotIn(vs ...string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldTextEn, vs...))
}

// TextEnGT applies the GT predicate on the "text_en" field.
func TextEnGT(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldTextEn, v))
}

// TextEnGTE applies the GTE predicate on the "text_en" field.
func TextEnGTE(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldTextEn, v))
}

// TextEnLT applies the LT predicate on the "text_en" field.
func TextEnLT(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldTextEn, v))
}

// TextEnLTE applies the LTE predicate on the "text_en" field.
func TextEnLTE(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldTextEn, v))
}

// TextEnContains applies the Contains predicate on the "text_en" field.
func TextEnContains(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldContains(FieldTextEn, v))
}

// TextEnHasPrefix applies the HasPrefix predicate on the "text_en" field.
func TextEnHasPrefix(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldHasPrefix(FieldTextEn, v))
}

// TextEnHasSuffix applies the HasSuffix predicate on the "text_en" field.
func TextEnHasSuffix(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldHasSuffix(FieldTextEn, v))
}

// TextEnEqualFold applies the EqualFold predicate on the "text_en" field.
func TextEnEqualFold(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEqualFold(FieldTextEn, v))
}

// TextEnContainsFold applies the ContainsFold predicate on the "text_en" field.
func TextEnContainsFold(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldContainsFold(FieldTextEn, v))
}

// TextUzEQ applies the EQ predicate on the "text_uz" field.
func TextUzEQ(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldTextUz, v))
}

// TextUzNEQ applies the NEQ predicate on the "text_uz" field.
func TextUzNEQ(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldTextUz, v))
}

// TextUzIn applies the In predicate on the "text_uz" field.
func TextUzIn(vs ...string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldTextUz, vs...))
}

// TextUzNotIn applies the NotIn predicate on the "text_uz" field.
func TextUzNotIn(vs ...string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldTextUz, vs...))
}

// TextUzGT applies the GT predicate on the "text_uz" field.
func TextUzGT(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldTextUz, v))
}

// TextUzGTE applies the GTE predicate on the "text_uz" field.
func TextUzGTE(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldTextUz, v))
}

// TextUzLT applies the LT predicate on the "text_uz" field.
func TextUzLT(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldTextUz, v))
}

// TextUzLTE applies the LTE predicate on the "text_uz" field.
func TextUzLTE(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldTextUz, v))
}

// TextUzContains applies the Contains predicate on the "text_uz" field.
func TextUzContains(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldContains(FieldTextUz, v))
}

// TextUzHasPrefix applies the HasPrefix predicate on the "text_uz" field.
func TextUzHasPrefix(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldHasPrefix(FieldTextUz, v))
}

// TextUzHasSuffix applies the HasSuffix predicate on the "text_uz" field.
func TextUzHasSuffix(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldHasSuffix(FieldTextUz, v))
}

// TextUzEqualFold applies the EqualFold predicate on the "text_uz" field.
func TextUzEqualFold(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEqualFold(FieldTextUz, v))
}

// TextUzContainsFold applies the ContainsFold predicate on the "text_uz" field.
func TextUzContainsFold(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldContainsFold(FieldTextUz, v))
}

// TextRuEQ applies the EQ predicate on the "text_ru" field.
func TextRuEQ(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldTextRu, v))
}

// TextRuNEQ applies the NEQ predicate on the "text_ru" field.
func TextRuNEQ(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldTextRu, v))
}

// TextRuIn applies the In predicate on the "text_ru" field.
func TextRuIn(vs ...string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldTextRu, vs...))
}

// TextRuNotIn applies the NotIn predicate on the "text_ru" field.
func TextRuNotIn(vs ...string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldTextRu, vs...))
}

// TextRuGT applies the GT predicate on the "text_ru" field.
func TextRuGT(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldTextRu, v))
}

// TextRuGTE applies the GTE predicate on the "text_ru" field.
func TextRuGTE(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldTextRu, v))
}

// TextRuLT applies the LT predicate on the "text_ru" field.
func TextRuLT(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldTextRu, v))
}

// TextRuLTE applies the LTE predicate on the "text_ru" field.
func TextRuLTE(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldTextRu, v))
}

// TextRuContains applies the Contains predicate on the "text_ru" field.
func TextRuContains(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldContains(FieldTextRu, v))
}

// TextRuHasPrefix applies the HasPrefix predicate on the "text_ru" field.
func TextRuHasPrefix(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldHasPrefix(FieldTextRu, v))
}

// TextRuHasSuffix applies the HasSuffix predicate on the "text_ru" field.
func TextRuHasSuffix(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldHasSuffix(FieldTextRu, v))
}

// TextRuEqualFold applies the EqualFold predicate on the "text_ru" field.
func TextRuEqualFold(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEqualFold(FieldTextRu, v))
}

// TextRuContainsFold applies the ContainsFold predicate on the "text_ru" field.
func TextRuContainsFold(v string) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldContainsFold(FieldTextRu, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v QuestionType) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v QuestionType) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...QuestionType) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...QuestionType) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldQuestionType, vs...))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldLTE(FieldSortOrder, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.FieldNEQ(FieldIsActive, v))
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.InternshipQuestion {
	return predicate.InternshipQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.InternshipAnswer) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InternshipQuestion) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InternshipQuestion) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InternshipQuestion) predicate.InternshipQuestion {
	return predicate.InternshipQuestion(sql.NotPredicates(p))
}
