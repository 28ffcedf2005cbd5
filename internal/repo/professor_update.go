// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/predicate"
	"github.com/yalgashev/survey/internal/repo/professor"
	"github.com/yalgashev/survey/internal/repo/school"
	"github.com/yalgashev/survey/internal/repo/survey"
)

// ProfessorUpdate is the builder for updating Professor entities.
type ProfessorUpdate struct {
	config
	hooks    []Hook
	mutation *ProfessorMutation
}

// Where appends a list predicates to the ProfessorUpdate builder.
func (_u *ProfessorUpdate) Where(ps ...predicate.Professor) *ProfessorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfessorUpdate) SetUpdatedAt(v time.Time) *ProfessorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfessorUpdate) SetFullName(v string) *ProfessorUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfessorUpdate) SetNillableFullName(v *string) *ProfessorUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *ProfessorUpdate) SetSchoolID(v uuid.UUID) *ProfessorUpdate {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *ProfessorUpdate) SetNillableSchoolID(v *uuid.UUID) *ProfessorUpdate {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfessorUpdate) SetEmail(v string) *ProfessorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfessorUpdate) SetNillableEmail(v *string) *ProfessorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfessorUpdate) ClearEmail() *ProfessorUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *ProfessorUpdate) SetSchool(v *School) *ProfessorUpdate {
	return _u.SetSchoolID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by IDs.
func (_u *ProfessorUpdate) AddAssignmentIDs(ids ...uuid.UUID) *ProfessorUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the GroupProfessor entity.
func (_u *ProfessorUpdate) AddAssignments(v ...*GroupProfessor) *ProfessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_u *ProfessorUpdate) AddSurveyIDs(ids ...uuid.UUID) *ProfessorUpdate {
	_u.mutation.AddSurveyIDs(ids...)
	return _u
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_u *ProfessorUpdate) AddSurveys(v ...*Survey) *ProfessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyIDs(ids...)
}

// Mutation returns the ProfessorMutation object of the builder.
func (_u *ProfessorUpdate) Mutation() *ProfessorMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *ProfessorUpdate) ClearSchool() *ProfessorUpdate {
	_u.mutation.ClearSchool()
	return _u
}

// ClearAssignments clears all "assignments" edges to the GroupProfessor entity.
func (_u *ProfessorUpdate) ClearAssignments() *ProfessorUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to GroupProfessor entities by IDs.
func (_u *ProfessorUpdate) RemoveAssignmentIDs(ids ...uuid.UUID) *ProfessorUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to GroupProfessor entities.
func (_u *ProfessorUpdate) RemoveAssignments(v ...*GroupProfessor) *ProfessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearSurveys clears all "surveys" edges to the Survey entity.
func (_u *ProfessorUpdate) ClearSurveys() *ProfessorUpdate {
	_u.mutation.ClearSurveys()
	return _u
}

// RemoveSurveyIDs removes the "surveys" edge to Survey entities by IDs.
func (_u *ProfessorUpdate) RemoveSurveyIDs(ids ...uuid.UUID) *ProfessorUpdate {
	_u.mutation.RemoveSurveyIDs(ids...)
	return _u
}

// RemoveSurveys removes "surveys" edges to Survey entities.
func (_u *ProfessorUpdate) RemoveSurveys(v ...*Survey) *ProfessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfessorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfessorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfessorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfessorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfessorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := professor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfessorUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := professor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Professor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := professor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Professor.email": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Professor.school"`)
	}
	return nil
}

func (_u *ProfessorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(professor.Table, professor.Columns, sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(professor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(professor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(professor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(professor.FieldEmail, field.TypeString)
	}
	if _u.mutation.SchoolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   professor.SchoolTable,
			Columns: []string{professor.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   professor.SchoolTable,
			Columns: []string{professor.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.AssignmentsTable,
			Columns: []string{professor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.AssignmentsTable,
			Columns: []string{professor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.AssignmentsTable,
			Columns: []string{professor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.SurveysTable,
			Columns: []string{professor.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSurveysIDs(); len(nodes) > 0 && !_u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.SurveysTable,
			Columns: []string{professor.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.SurveysTable,
			Columns: []string{professor.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{professor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfessorUpdateOne is the builder for updating a single Professor entity.
type ProfessorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfessorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfessorUpdateOne) SetUpdatedAt(v time.Time) *ProfessorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfessorUpdateOne) SetFullName(v string) *ProfessorUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfessorUpdateOne) SetNillableFullName(v *string) *ProfessorUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *ProfessorUpdateOne) SetSchoolID(v uuid.UUID) *ProfessorUpdateOne {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *ProfessorUpdateOne) SetNillableSchoolID(v *uuid.UUID) *ProfessorUpdateOne {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfessorUpdateOne) SetEmail(v string) *ProfessorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfessorUpdateOne) SetNillableEmail(v *string) *ProfessorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfessorUpdateOne) ClearEmail() *ProfessorUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *ProfessorUpdateOne) SetSchool(v *School) *ProfessorUpdateOne {
	return _u.SetSchoolID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by IDs.
func (_u *ProfessorUpdateOne) AddAssignmentIDs(ids ...uuid.UUID) *ProfessorUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the GroupProfessor entity.
func (_u *ProfessorUpdateOne) AddAssignments(v ...*GroupProfessor) *ProfessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_u *ProfessorUpdateOne) AddSurveyIDs(ids ...uuid.UUID) *ProfessorUpdateOne {
	_u.mutation.AddSurveyIDs(ids...)
	return _u
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_u *ProfessorUpdateOne) AddSurveys(v ...*Survey) *ProfessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyIDs(ids...)
}

// Mutation returns the ProfessorMutation object of the builder.
func (_u *ProfessorUpdateOne) Mutation() *ProfessorMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *ProfessorUpdateOne) ClearSchool() *ProfessorUpdateOne {
	_u.mutation.ClearSchool()
	return _u
}

// ClearAssignments clears all "assignments" edges to the GroupProfessor entity.
func (_u *ProfessorUpdateOne) ClearAssignments() *ProfessorUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to GroupProfessor entities by IDs.
func (_u *ProfessorUpdateOne) RemoveAssignmentIDs(ids ...uuid.UUID) *ProfessorUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to GroupProfessor entities.
func (_u *ProfessorUpdateOne) RemoveAssignments(v ...*GroupProfessor) *ProfessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearSurveys clears all "surveys" edges to the Survey entity.
func (_u *ProfessorUpdateOne) ClearSurveys() *ProfessorUpdateOne {
	_u.mutation.ClearSurveys()
	return _u
}

// RemoveSurveyIDs removes the "surveys" edge to Survey entities by IDs.
func (_u *ProfessorUpdateOne) RemoveSurveyIDs(ids ...uuid.UUID) *ProfessorUpdateOne {
	_u.mutation.RemoveSurveyIDs(ids...)
	return _u
}

// RemoveSurveys removes "surveys" edges to Survey entities.
func (_u *ProfessorUpdateOne) RemoveSurveys(v ...*Survey) *ProfessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyIDs(ids...)
}

// Where appends a list predicates to the ProfessorUpdate builder.
func (_u *ProfessorUpdateOne) Where(ps ...predicate.Professor) *ProfessorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfessorUpdateOne) Select(field string, fields ...string) *ProfessorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Professor entity.
func (_u *ProfessorUpdateOne) Save(ctx context.Context) (*Professor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfessorUpdateOne) SaveX(ctx context.Context) *Professor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfessorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfessorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfessorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := professor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfessorUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := professor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Professor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := professor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Professor.email": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Professor.school"`)
	}
	return nil
}

func (_u *ProfessorUpdateOne) sqlSave(ctx context.Context) (_node *Professor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(professor.Table, professor.Columns, sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Professor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, professor.FieldID)
		for _, f := range fields {
			if !professor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != professor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(professor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(professor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(professor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(professor.FieldEmail, field.TypeString)
	}
	if _u.mutation.SchoolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   professor.SchoolTable,
			Columns: []string{professor.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   professor.SchoolTable,
			Columns: []string{professor.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.AssignmentsTable,
			Columns: []string{professor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.AssignmentsTable,
			Columns: []string{professor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.AssignmentsTable,
			Columns: []string{professor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.SurveysTable,
			Columns: []string{professor.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSurveysIDs(); len(nodes) > 0 && !_u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.SurveysTable,
			Columns: []string{professor.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   professor.SurveysTable,
			Columns: []string{professor.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Professor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{professor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
