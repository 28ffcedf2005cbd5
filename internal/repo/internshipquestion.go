// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
)

// InternshipQuestion is the model entity for the InternshipQuestion schema.
type InternshipQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TextEn holds the value of the "text_en" field.
	TextEn string `json:"text_en,omitempty"`
	// TextUz holds the value of the "text_uz" field.
	TextUz string `json:"text_uz,omitempty"`
	// TextRu holds the value of the "text_ru" field.
	TextRu string `json:"text_ru,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType internshipquestion.QuestionType `json:"question_type,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InternshipQuestionQuery when eager-loading is set.
	Edges        InternshipQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InternshipQuestionEdges holds the relations/edges for other nodes in the graph.
type InternshipQuestionEdges struct {
	// Answers holds the value of the answers edge.
	Answers []*InternshipAnswer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e InternshipQuestionEdges) AnswersOrErr() ([]*InternshipAnswer, error) {
	if e.loadedTypes[0] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InternshipQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case internshipquestion.FieldIsActive:
			values[i] = new(sql.NullBool)
		case internshipquestion.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case internshipquestion.FieldTextEn, internshipquestion.FieldTextUz, internshipquestion.FieldTextRu, internshipquestion.FieldQuestionType:
			values[i] = new(sql.NullString)
		case internshipquestion.FieldCreatedAt, internshipquestion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case internshipquestion.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InternshipQuestion fields.
func (_m *InternshipQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case internshipquestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case internshipquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case internshipquestion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case internshipquestion.FieldTextEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_en", values[i])
			} else if value.Valid {
				_m.TextEn = value.String
			}
		case internshipquestion.FieldTextUz:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_uz", values[i])
			} else if value.Valid {
				_m.TextUz = value.String
			}
		case internshipquestion.FieldTextRu:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_ru", values[i])
			} else if value.Valid {
				_m.TextRu = value.String
			}
		case internshipquestion.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = internshipquestion.QuestionType(value.String)
			}
		case internshipquestion.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case internshipquestion.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InternshipQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *InternshipQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnswers queries the "answers" edge of the InternshipQuestion entity.
func (_m *InternshipQuestion) QueryAnswers() *InternshipAnswerQuery {
	return NewInternshipQuestionClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this InternshipQuestion.
// Note that you need to call InternshipQuestion.Unwrap() before calling this method if this InternshipQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InternshipQuestion) Update() *InternshipQuestionUpdateOne {
	return NewInternshipQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InternshipQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InternshipQuestion) Unwrap() *InternshipQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InternshipQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InternshipQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("InternshipQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("text_en=")
	builder.WriteString(_m.TextEn)
	builder.WriteString(", ")
	builder.WriteString("text_uz=")
	builder.WriteString(_m.TextUz)
	builder.WriteString(", ")
	builder.WriteString("text_ru=")
	builder.WriteString(_m.TextRu)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionType))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// InternshipQuestions is a parsable slice of InternshipQuestion.
type InternshipQuestions []*InternshipQuestion
