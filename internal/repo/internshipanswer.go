// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
)

// InternshipAnswer is the model entity for the InternshipAnswer schema.
type InternshipAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SurveyID holds the value of the "survey_id" field.
	SurveyID uuid.UUID `json:"survey_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID uuid.UUID `json:"question_id,omitempty"`
	// 1 strongly agree … 5 strongly disagree, 6 not applicable
	RatingValue *int `json:"rating_value,omitempty"`
	// TextValue holds the value of the "text_value" field.
	TextValue *string `json:"text_value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InternshipAnswerQuery when eager-loading is set.
	Edges        InternshipAnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InternshipAnswerEdges holds the relations/edges for other nodes in the graph.
type InternshipAnswerEdges struct {
	// Survey holds the value of the survey edge.
	Survey *InternshipSurvey `json:"survey,omitempty"`
	// Question holds the value of the question edge.
	Question *InternshipQuestion `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SurveyOrErr returns the Survey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InternshipAnswerEdges) SurveyOrErr() (*InternshipSurvey, error) {
	if e.Survey != nil {
		return e.Survey, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: internshipsurvey.Label}
	}
	return nil, &NotLoadedError{edge: "survey"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InternshipAnswerEdges) QuestionOrErr() (*InternshipQuestion, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: internshipquestion.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InternshipAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case internshipanswer.FieldRatingValue:
			values[i] = new(sql.NullInt64)
		case internshipanswer.FieldTextValue:
			values[i] = new(sql.NullString)
		case internshipanswer.FieldID, internshipanswer.FieldSurveyID, internshipanswer.FieldQuestionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InternshipAnswer fields.
func (_m *InternshipAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case internshipanswer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case internshipanswer.FieldSurveyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field survey_id", values[i])
			} else if value != nil {
				_m.SurveyID = *value
			}
		case internshipanswer.FieldQuestionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value != nil {
				_m.QuestionID = *value
			}
		case internshipanswer.FieldRatingValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_value", values[i])
			} else if value.Valid {
				_m.RatingValue = new(int)
				*_m.RatingValue = int(value.Int64)
			}
		case internshipanswer.FieldTextValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_value", values[i])
			} else if value.Valid {
				_m.TextValue = new(string)
				*_m.TextValue = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InternshipAnswer.
// This includes values selected through modifiers, order, etc.
func (_m *InternshipAnswer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySurvey queries the "survey" edge of the InternshipAnswer entity.
func (_m *InternshipAnswer) QuerySurvey() *InternshipSurveyQuery {
	return NewInternshipAnswerClient(_m.config).QuerySurvey(_m)
}

// QueryQuestion queries the "question" edge of the InternshipAnswer entity.
func (_m *InternshipAnswer) QueryQuestion() *InternshipQuestionQuery {
	return NewInternshipAnswerClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this InternshipAnswer.
// Note that you need to call InternshipAnswer.Unwrap() before calling this method if this InternshipAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InternshipAnswer) Update() *InternshipAnswerUpdateOne {
	return NewInternshipAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InternshipAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InternshipAnswer) Unwrap() *InternshipAnswer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InternshipAnswer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InternshipAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("InternshipAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("survey_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SurveyID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	if v := _m.RatingValue; v != nil {
		builder.WriteString("rating_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TextValue; v != nil {
		builder.WriteString("text_value=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// InternshipAnswers is a parsable slice of InternshipAnswer.
type InternshipAnswers []*InternshipAnswer
