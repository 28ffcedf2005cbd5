// Code generated by ent, DO NOT EDIT.

package internshipanswer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the internshipanswer type in the database.
	Label = "internship_answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSurveyID holds the string denoting the survey_id field in the database.
	FieldSurveyID = "survey_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldRatingValue holds the string denoting the rating_value field in the database.
	FieldRatingValue = "rating_value"
	// FieldTextValue holds the string denoting the text_value field in the database.
	FieldTextValue = "text_value"
	// EdgeSurvey holds the string denoting the survey edge name in mutations.
	EdgeSurvey = "survey"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// Table holds the table name of the internshipanswer in the database.
	Table = "internship_answers"
	// SurveyTable is the table that holds the survey relation/edge.
	SurveyTable = "internship_answers"
	// SurveyInverseTable is the table name for the InternshipSurvey entity.
	// It exists in this package in order to avoid circular dependency with the "internshipsurvey" package.
	SurveyInverseTable = "internship_surveys"
	// SurveyColumn is the table column denoting the survey relation/edge.
	SurveyColumn = "survey_id"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "internship_answers"
	// QuestionInverseTable is the table name for the InternshipQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "internshipquestion" package.
	QuestionInverseTable = "internship_questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
)

// Columns holds all SQL columns for internshipanswer fields.
var Columns = []string{
	FieldID,
	FieldSurveyID,
	FieldQuestionID,
	FieldRatingValue,
	FieldTextValue,
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
	// RatingValueValidator is a validator for the "rating_value" field. It is called by the builders before save.
	RatingValueValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InternshipAnswer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySurveyID orders the results by the survey_id field.
func BySurveyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurveyID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByRatingValue orders the results by the rating_value field.
func ByRatingValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingValue, opts...).ToFunc()
}

// ByTextValue orders the results by the text_value field.
func ByTextValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextValue, opts...).ToFunc()
}

// BySurveyField orders the results by survey field.
func BySurveyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSurveyStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}
func newSurveyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SurveyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SurveyTable, SurveyColumn),
	)
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
