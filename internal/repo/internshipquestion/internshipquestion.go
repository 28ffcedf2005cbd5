// Code generated by ent, DO NOT EDIT.

package internshipquestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the internshipquestion type in the database.
	Label = "internship_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTextEn holds the string denoting the text_en field in the database.
	FieldTextEn = "text_en"
	// FieldTextUz holds the string denoting the text_uz field in the database.
	FieldTextUz = "text_uz"
	// FieldTextRu holds the string denoting the text_ru field in the database.
	FieldTextRu = "text_ru"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the internshipquestion in the database.
	Table = "internship_questions"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "internship_answers"
	// AnswersInverseTable is the table name for the InternshipAnswer entity.
	// It exists in this package in order to avoid circular dependency with the "internshipanswer" package.
	AnswersInverseTable = "internship_answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "question_id"
)

// Columns holds all SQL columns for internshipquestion fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTextEn,
	FieldTextUz,
	FieldTextRu,
	FieldQuestionType,
	FieldSortOrder,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TextEnValidator is a validator for the "text_en" field. It is called by the builders before save.
	TextEnValidator func(string) error
	// TextUzValidator is a validator for the "text_uz" field. It is called by the builders before save.
	TextUzValidator func(string) error
	// TextRuValidator is a validator for the "text_ru" field. It is called by the builders before save.
	TextRuValidator func(string) error
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	SortOrderValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// QuestionType defines the type for the "question_type" enum field.
type QuestionType string

// QuestionTypeRating is the default value of the QuestionType enum.
const DefaultQuestionType = QuestionTypeRating

// QuestionType values.
const (
	QuestionTypeRating QuestionType = "rating"
	QuestionTypeText   QuestionType = "text"
)

func (qt QuestionType) String() string {
	return string(qt)
}

// QuestionTypeValidator is a validator for the "question_type" field enum values. It is called by the builders before save.
func QuestionTypeValidator(qt QuestionType) error {
	switch qt {
	case QuestionTypeRating, QuestionTypeText:
		return nil
	default:
		return fmt.Errorf("internshipquestion: invalid enum value for question_type field: %q", qt)
	}
}

// OrderOption defines the ordering options for the InternshipQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTextEn orders the results by the text_en field.
func ByTextEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextEn, opts...).ToFunc()
}

// ByTextUz orders the results by the text_uz field.
func ByTextUz(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextUz, opts...).ToFunc()
}

// ByTextRu orders the results by the text_ru field.
func ByTextRu(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextRu, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
