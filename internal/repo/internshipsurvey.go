// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
)

// InternshipSurvey is the model entity for the InternshipSurvey schema.
type InternshipSurvey struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → groups.id
	GroupID uuid.UUID `json:"group_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InternshipSurveyQuery when eager-loading is set.
	Edges        InternshipSurveyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InternshipSurveyEdges holds the relations/edges for other nodes in the graph.
type InternshipSurveyEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*InternshipAnswer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InternshipSurveyEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e InternshipSurveyEdges) AnswersOrErr() ([]*InternshipAnswer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InternshipSurvey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case internshipsurvey.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case internshipsurvey.FieldID, internshipsurvey.FieldGroupID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InternshipSurvey fields.
func (_m *InternshipSurvey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case internshipsurvey.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case internshipsurvey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case internshipsurvey.FieldGroupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value != nil {
				_m.GroupID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InternshipSurvey.
// This includes values selected through modifiers, order, etc.
func (_m *InternshipSurvey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the InternshipSurvey entity.
func (_m *InternshipSurvey) QueryGroup() *GroupQuery {
	return NewInternshipSurveyClient(_m.config).QueryGroup(_m)
}

// QueryAnswers queries the "answers" edge of the InternshipSurvey entity.
func (_m *InternshipSurvey) QueryAnswers() *InternshipAnswerQuery {
	return NewInternshipSurveyClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this InternshipSurvey.
// Note that you need to call InternshipSurvey.Unwrap() before calling this method if this InternshipSurvey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InternshipSurvey) Update() *InternshipSurveyUpdateOne {
	return NewInternshipSurveyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InternshipSurvey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InternshipSurvey) Unwrap() *InternshipSurvey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InternshipSurvey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InternshipSurvey) String() string {
	var builder strings.Builder
	builder.WriteString("InternshipSurvey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupID))
	builder.WriteByte(')')
	return builder.String()
}

// InternshipSurveys is a parsable slice of InternshipSurvey.
type InternshipSurveys []*InternshipSurvey
