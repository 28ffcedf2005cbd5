// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/professor"
	"github.com/yalgashev/survey/internal/repo/school"
)

// Professor is the model entity for the Professor schema.
type Professor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// FK → schools.id
	SchoolID uuid.UUID `json:"school_id,omitempty"`
	// Used for rating digests
	Email *string `json:"email,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProfessorQuery when eager-loading is set.
	Edges        ProfessorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProfessorEdges holds the relations/edges for other nodes in the graph.
type ProfessorEdges struct {
	// School holds the value of the school edge.
	School *School `json:"school,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*GroupProfessor `json:"assignments,omitempty"`
	// Surveys holds the value of the surveys edge.
	Surveys []*Survey `json:"surveys,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SchoolOrErr returns the School value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProfessorEdges) SchoolOrErr() (*School, error) {
	if e.School != nil {
		return e.School, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: school.Label}
	}
	return nil, &NotLoadedError{edge: "school"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e ProfessorEdges) AssignmentsOrErr() ([]*GroupProfessor, error) {
	if e.loadedTypes[1] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// SurveysOrErr returns the Surveys value or an error if the edge
// was not loaded in eager-loading.
func (e ProfessorEdges) SurveysOrErr() ([]*Survey, error) {
	if e.loadedTypes[2] {
		return e.Surveys, nil
	}
	return nil, &NotLoadedError{edge: "surveys"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Professor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case professor.FieldFullName, professor.FieldEmail:
			values[i] = new(sql.NullString)
		case professor.FieldCreatedAt, professor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case professor.FieldID, professor.FieldSchoolID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Professor fields.
func (_m *Professor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case professor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case professor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case professor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case professor.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case professor.FieldSchoolID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field school_id", values[i])
			} else if value != nil {
				_m.SchoolID = *value
			}
		case professor.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Professor.
// This includes values selected through modifiers, order, etc.
func (_m *Professor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySchool queries the "school" edge of the Professor entity.
func (_m *Professor) QuerySchool() *SchoolQuery {
	return NewProfessorClient(_m.config).QuerySchool(_m)
}

// QueryAssignments queries the "assignments" edge of the Professor entity.
func (_m *Professor) QueryAssignments() *GroupProfessorQuery {
	return NewProfessorClient(_m.config).QueryAssignments(_m)
}

// QuerySurveys queries the "surveys" edge of the Professor entity.
func (_m *Professor) QuerySurveys() *SurveyQuery {
	return NewProfessorClient(_m.config).QuerySurveys(_m)
}

// Update returns a builder for updating this Professor.
// Note that you need to call Professor.Unwrap() before calling this method if this Professor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Professor) Update() *ProfessorUpdateOne {
	return NewProfessorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Professor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Professor) Unwrap() *Professor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Professor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Professor) String() string {
	var builder strings.Builder
	builder.WriteString("Professor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("school_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchoolID))
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Professors is a parsable slice of Professor.
type Professors []*Professor
