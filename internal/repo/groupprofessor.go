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
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/professor"
)

// GroupProfessor is the model entity for the GroupProfessor schema.
type GroupProfessor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → groups.id
	GroupID uuid.UUID `json:"group_id,omitempty"`
	// FK → professors.id
	ProfessorID uuid.UUID `json:"professor_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GroupProfessorQuery when eager-loading is set.
	Edges        GroupProfessorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GroupProfessorEdges holds the relations/edges for other nodes in the graph.
type GroupProfessorEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// Professor holds the value of the professor edge.
	Professor *Professor `json:"professor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupProfessorEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// ProfessorOrErr returns the Professor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupProfessorEdges) ProfessorOrErr() (*Professor, error) {
	if e.Professor != nil {
		return e.Professor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: professor.Label}
	}
	return nil, &NotLoadedError{edge: "professor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupProfessor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupprofessor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case groupprofessor.FieldID, groupprofessor.FieldGroupID, groupprofessor.FieldProfessorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupProfessor fields.
func (_m *GroupProfessor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupprofessor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case groupprofessor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case groupprofessor.FieldGroupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value != nil {
				_m.GroupID = *value
			}
		case groupprofessor.FieldProfessorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field professor_id", values[i])
			} else if value != nil {
				_m.ProfessorID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GroupProfessor.
// This includes values selected through modifiers, order, etc.
func (_m *GroupProfessor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the GroupProfessor entity.
func (_m *GroupProfessor) QueryGroup() *GroupQuery {
	return NewGroupProfessorClient(_m.config).QueryGroup(_m)
}

// QueryProfessor queries the "professor" edge of the GroupProfessor entity.
func (_m *GroupProfessor) QueryProfessor() *ProfessorQuery {
	return NewGroupProfessorClient(_m.config).QueryProfessor(_m)
}

// Update returns a builder for updating this GroupProfessor.
// Note that you need to call GroupProfessor.Unwrap() before calling this method if this GroupProfessor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GroupProfessor) Update() *GroupProfessorUpdateOne {
	return NewGroupProfessorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GroupProfessor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GroupProfessor) Unwrap() *GroupProfessor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: GroupProfessor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GroupProfessor) String() string {
	var builder strings.Builder
	builder.WriteString("GroupProfessor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupID))
	builder.WriteString(", ")
	builder.WriteString("professor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfessorID))
	builder.WriteByte(')')
	return builder.String()
}

// GroupProfessors is a parsable slice of GroupProfessor.
type GroupProfessors []*GroupProfessor
