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
	"github.com/yalgashev/survey/internal/repo/department"
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/predicate"
	"github.com/yalgashev/survey/internal/repo/survey"
)

// GroupUpdate is the builder for updating Group entities.
type GroupUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdate) Where(ps ...predicate.Group) *GroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupUpdate) SetUpdatedAt(v time.Time) *GroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *GroupUpdate) SetName(v string) *GroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableName(v *string) *GroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *GroupUpdate) SetDepartmentID(v uuid.UUID) *GroupUpdate {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableDepartmentID(v *uuid.UUID) *GroupUpdate {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *GroupUpdate) SetSemester(v int) *GroupUpdate {
	_u.mutation.ResetSemester()
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableSemester(v *int) *GroupUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// AddSemester adds value to the "semester" field.
func (_u *GroupUpdate) AddSemester(v int) *GroupUpdate {
	_u.mutation.AddSemester(v)
	return _u
}

// SetTotalStudents sets the "total_students" field.
func (_u *GroupUpdate) SetTotalStudents(v int) *GroupUpdate {
	_u.mutation.ResetTotalStudents()
	_u.mutation.SetTotalStudents(v)
	return _u
}

// SetNillableTotalStudents sets the "total_students" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableTotalStudents(v *int) *GroupUpdate {
	if v != nil {
		_u.SetTotalStudents(*v)
	}
	return _u
}

// AddTotalStudents adds value to the "total_students" field.
func (_u *GroupUpdate) AddTotalStudents(v int) *GroupUpdate {
	_u.mutation.AddTotalStudents(v)
	return _u
}

// SetParticipatedStudents sets the "participated_students" field.
func (_u *GroupUpdate) SetParticipatedStudents(v int) *GroupUpdate {
	_u.mutation.ResetParticipatedStudents()
	_u.mutation.SetParticipatedStudents(v)
	return _u
}

// SetNillableParticipatedStudents sets the "participated_students" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableParticipatedStudents(v *int) *GroupUpdate {
	if v != nil {
		_u.SetParticipatedStudents(*v)
	}
	return _u
}

// AddParticipatedStudents adds value to the "participated_students" field.
func (_u *GroupUpdate) AddParticipatedStudents(v int) *GroupUpdate {
	_u.mutation.AddParticipatedStudents(v)
	return _u
}

// SetDepartment sets the "department" edge to the Department entity.
func (_u *GroupUpdate) SetDepartment(v *Department) *GroupUpdate {
	return _u.SetDepartmentID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by IDs.
func (_u *GroupUpdate) AddAssignmentIDs(ids ...uuid.UUID) *GroupUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the GroupProfessor entity.
func (_u *GroupUpdate) AddAssignments(v ...*GroupProfessor) *GroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_u *GroupUpdate) AddSurveyIDs(ids ...uuid.UUID) *GroupUpdate {
	_u.mutation.AddSurveyIDs(ids...)
	return _u
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_u *GroupUpdate) AddSurveys(v ...*Survey) *GroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyIDs(ids...)
}

// AddInternshipSurveyIDs adds the "internship_surveys" edge to the InternshipSurvey entity by IDs.
func (_u *GroupUpdate) AddInternshipSurveyIDs(ids ...uuid.UUID) *GroupUpdate {
	_u.mutation.AddInternshipSurveyIDs(ids...)
	return _u
}

// AddInternshipSurveys adds the "internship_surveys" edges to the InternshipSurvey entity.
func (_u *GroupUpdate) AddInternshipSurveys(v ...*InternshipSurvey) *GroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInternshipSurveyIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdate) Mutation() *GroupMutation {
	return _u.mutation
}

// ClearDepartment clears the "department" edge to the Department entity.
func (_u *GroupUpdate) ClearDepartment() *GroupUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// ClearAssignments clears all "assignments" edges to the GroupProfessor entity.
func (_u *GroupUpdate) ClearAssignments() *GroupUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to GroupProfessor entities by IDs.
func (_u *GroupUpdate) RemoveAssignmentIDs(ids ...uuid.UUID) *GroupUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to GroupProfessor entities.
func (_u *GroupUpdate) RemoveAssignments(v ...*GroupProfessor) *GroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearSurveys clears all "surveys" edges to the Survey entity.
func (_u *GroupUpdate) ClearSurveys() *GroupUpdate {
	_u.mutation.ClearSurveys()
	return _u
}

// RemoveSurveyIDs removes the "surveys" edge to Survey entities by IDs.
func (_u *GroupUpdate) RemoveSurveyIDs(ids ...uuid.UUID) *GroupUpdate {
	_u.mutation.RemoveSurveyIDs(ids...)
	return _u
}

// RemoveSurveys removes "surveys" edges to Survey entities.
func (_u *GroupUpdate) RemoveSurveys(v ...*Survey) *GroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyIDs(ids...)
}

// ClearInternshipSurveys clears all "internship_surveys" edges to the InternshipSurvey entity.
func (_u *GroupUpdate) ClearInternshipSurveys() *GroupUpdate {
	_u.mutation.ClearInternshipSurveys()
	return _u
}

// RemoveInternshipSurveyIDs removes the "internship_surveys" edge to InternshipSurvey entities by IDs.
func (_u *GroupUpdate) RemoveInternshipSurveyIDs(ids ...uuid.UUID) *GroupUpdate {
	_u.mutation.RemoveInternshipSurveyIDs(ids...)
	return _u
}

// RemoveInternshipSurveys removes "internship_surveys" edges to InternshipSurvey entities.
func (_u *GroupUpdate) RemoveInternshipSurveys(v ...*InternshipSurvey) *GroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInternshipSurveyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := group.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := group.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Group.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Semester(); ok {
		if err := group.SemesterValidator(v); err != nil {
			return &ValidationError{Name: "semester", err: fmt.Errorf(`repo: validator failed for field "Group.semester": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalStudents(); ok {
		if err := group.TotalStudentsValidator(v); err != nil {
			return &ValidationError{Name: "total_students", err: fmt.Errorf(`repo: validator failed for field "Group.total_students": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParticipatedStudents(); ok {
		if err := group.ParticipatedStudentsValidator(v); err != nil {
			return &ValidationError{Name: "participated_students", err: fmt.Errorf(`repo: validator failed for field "Group.participated_students": %w`, err)}
		}
	}
	if _u.mutation.DepartmentCleared() && len(_u.mutation.DepartmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Group.department"`)
	}
	return nil
}

func (_u *GroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(group.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(group.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSemester(); ok {
		_spec.AddField(group.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStudents(); ok {
		_spec.SetField(group.FieldTotalStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudents(); ok {
		_spec.AddField(group.FieldTotalStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParticipatedStudents(); ok {
		_spec.SetField(group.FieldParticipatedStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParticipatedStudents(); ok {
		_spec.AddField(group.FieldParticipatedStudents, field.TypeInt, value)
	}
	if _u.mutation.DepartmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   group.DepartmentTable,
			Columns: []string{group.DepartmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DepartmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   group.DepartmentTable,
			Columns: []string{group.DepartmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
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
			Table:   group.AssignmentsTable,
			Columns: []string{group.AssignmentsColumn},
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
			Table:   group.AssignmentsTable,
			Columns: []string{group.AssignmentsColumn},
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
			Table:   group.AssignmentsTable,
			Columns: []string{group.AssignmentsColumn},
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
			Table:   group.SurveysTable,
			Columns: []string{group.SurveysColumn},
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
			Table:   group.SurveysTable,
			Columns: []string{group.SurveysColumn},
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
			Table:   group.SurveysTable,
			Columns: []string{group.SurveysColumn},
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
	if _u.mutation.InternshipSurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.InternshipSurveysTable,
			Columns: []string{group.InternshipSurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInternshipSurveysIDs(); len(nodes) > 0 && !_u.mutation.InternshipSurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.InternshipSurveysTable,
			Columns: []string{group.InternshipSurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InternshipSurveysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.InternshipSurveysTable,
			Columns: []string{group.InternshipSurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupUpdateOne is the builder for updating a single Group entity.
type GroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupUpdateOne) SetUpdatedAt(v time.Time) *GroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *GroupUpdateOne) SetName(v string) *GroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableName(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *GroupUpdateOne) SetDepartmentID(v uuid.UUID) *GroupUpdateOne {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableDepartmentID(v *uuid.UUID) *GroupUpdateOne {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *GroupUpdateOne) SetSemester(v int) *GroupUpdateOne {
	_u.mutation.ResetSemester()
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableSemester(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// AddSemester adds value to the "semester" field.
func (_u *GroupUpdateOne) AddSemester(v int) *GroupUpdateOne {
	_u.mutation.AddSemester(v)
	return _u
}

// SetTotalStudents sets the "total_students" field.
func (_u *GroupUpdateOne) SetTotalStudents(v int) *GroupUpdateOne {
	_u.mutation.ResetTotalStudents()
	_u.mutation.SetTotalStudents(v)
	return _u
}

// SetNillableTotalStudents sets the "total_students" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableTotalStudents(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetTotalStudents(*v)
	}
	return _u
}

// AddTotalStudents adds value to the "total_students" field.
func (_u *GroupUpdateOne) AddTotalStudents(v int) *GroupUpdateOne {
	_u.mutation.AddTotalStudents(v)
	return _u
}

// SetParticipatedStudents sets the "participated_students" field.
func (_u *GroupUpdateOne) SetParticipatedStudents(v int) *GroupUpdateOne {
	_u.mutation.ResetParticipatedStudents()
	_u.mutation.SetParticipatedStudents(v)
	return _u
}

// SetNillableParticipatedStudents sets the "participated_students" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableParticipatedStudents(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetParticipatedStudents(*v)
	}
	return _u
}

// AddParticipatedStudents adds value to the "participated_students" field.
func (_u *GroupUpdateOne) AddParticipatedStudents(v int) *GroupUpdateOne {
	_u.mutation.AddParticipatedStudents(v)
	return _u
}

// SetDepartment sets the "department" edge to the Department entity.
func (_u *GroupUpdateOne) SetDepartment(v *Department) *GroupUpdateOne {
	return _u.SetDepartmentID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by IDs.
func (_u *GroupUpdateOne) AddAssignmentIDs(ids ...uuid.UUID) *GroupUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the GroupProfessor entity.
func (_u *GroupUpdateOne) AddAssignments(v ...*GroupProfessor) *GroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_u *GroupUpdateOne) AddSurveyIDs(ids ...uuid.UUID) *GroupUpdateOne {
	_u.mutation.AddSurveyIDs(ids...)
	return _u
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_u *GroupUpdateOne) AddSurveys(v ...*Survey) *GroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyIDs(ids...)
}

// AddInternshipSurveyIDs adds the "internship_surveys" edge to the InternshipSurvey entity by IDs.
func (_u *GroupUpdateOne) AddInternshipSurveyIDs(ids ...uuid.UUID) *GroupUpdateOne {
	_u.mutation.AddInternshipSurveyIDs(ids...)
	return _u
}

// AddInternshipSurveys adds the "internship_surveys" edges to the InternshipSurvey entity.
func (_u *GroupUpdateOne) AddInternshipSurveys(v ...*InternshipSurvey) *GroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInternshipSurveyIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdateOne) Mutation() *GroupMutation {
	return _u.mutation
}

// ClearDepartment clears the "department" edge to the Department entity.
func (_u *GroupUpdateOne) ClearDepartment() *GroupUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// ClearAssignments clears all "assignments" edges to the GroupProfessor entity.
func (_u *GroupUpdateOne) ClearAssignments() *GroupUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to GroupProfessor entities by IDs.
func (_u *GroupUpdateOne) RemoveAssignmentIDs(ids ...uuid.UUID) *GroupUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to GroupProfessor entities.
func (_u *GroupUpdateOne) RemoveAssignments(v ...*GroupProfessor) *GroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearSurveys clears all "surveys" edges to the Survey entity.
func (_u *GroupUpdateOne) ClearSurveys() *GroupUpdateOne {
	_u.mutation.ClearSurveys()
	return _u
}

// RemoveSurveyIDs removes the "surveys" edge to Survey entities by IDs.
func (_u *GroupUpdateOne) RemoveSurveyIDs(ids ...uuid.UUID) *GroupUpdateOne {
	_u.mutation.RemoveSurveyIDs(ids...)
	return _u
}

// RemoveSurveys removes "surveys" edges to Survey entities.
func (_u *GroupUpdateOne) RemoveSurveys(v ...*Survey) *GroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyIDs(ids...)
}

// ClearInternshipSurveys clears all "internship_surveys" edges to the InternshipSurvey entity.
func (_u *GroupUpdateOne) ClearInternshipSurveys() *GroupUpdateOne {
	_u.mutation.ClearInternshipSurveys()
	return _u
}

// RemoveInternshipSurveyIDs removes the "internship_surveys" edge to InternshipSurvey entities by IDs.
func (_u *GroupUpdateOne) RemoveInternshipSurveyIDs(ids ...uuid.UUID) *GroupUpdateOne {
	_u.mutation.RemoveInternshipSurveyIDs(ids...)
	return _u
}

// RemoveInternshipSurveys removes "internship_surveys" edges to InternshipSurvey entities.
func (_u *GroupUpdateOne) RemoveInternshipSurveys(v ...*InternshipSurvey) *GroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInternshipSurveyIDs(ids...)
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdateOne) Where(ps ...predicate.Group) *GroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupUpdateOne) Select(field string, fields ...string) *GroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Group entity.
func (_u *GroupUpdateOne) Save(ctx context.Context) (*Group, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdateOne) SaveX(ctx context.Context) *Group {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := group.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := group.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Group.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Semester(); ok {
		if err := group.SemesterValidator(v); err != nil {
			return &ValidationError{Name: "semester", err: fmt.Errorf(`repo: validator failed for field "Group.semester": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalStudents(); ok {
		if err := group.TotalStudentsValidator(v); err != nil {
			return &ValidationError{Name: "total_students", err: fmt.Errorf(`repo: validator failed for field "Group.total_students": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParticipatedStudents(); ok {
		if err := group.ParticipatedStudentsValidator(v); err != nil {
			return &ValidationError{Name: "participated_students", err: fmt.Errorf(`repo: validator failed for field "Group.participated_students": %w`, err)}
		}
	}
	if _u.mutation.DepartmentCleared() && len(_u.mutation.DepartmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Group.department"`)
	}
	return nil
}

func (_u *GroupUpdateOne) sqlSave(ctx context.Context) (_node *Group, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Group.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, group.FieldID)
		for _, f := range fields {
			if !group.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != group.FieldID {
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
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(group.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(group.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSemester(); ok {
		_spec.AddField(group.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStudents(); ok {
		_spec.SetField(group.FieldTotalStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudents(); ok {
		_spec.AddField(group.FieldTotalStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParticipatedStudents(); ok {
		_spec.SetField(group.FieldParticipatedStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParticipatedStudents(); ok {
		_spec.AddField(group.FieldParticipatedStudents, field.TypeInt, value)
	}
	if _u.mutation.DepartmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   group.DepartmentTable,
			Columns: []string{group.DepartmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DepartmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   group.DepartmentTable,
			Columns: []string{group.DepartmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
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
			Table:   group.AssignmentsTable,
			Columns: []string{group.AssignmentsColumn},
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
			Table:   group.AssignmentsTable,
			Columns: []string{group.AssignmentsColumn},
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
			Table:   group.AssignmentsTable,
			Columns: []string{group.AssignmentsColumn},
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
			Table:   group.SurveysTable,
			Columns: []string{group.SurveysColumn},
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
			Table:   group.SurveysTable,
			Columns: []string{group.SurveysColumn},
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
			Table:   group.SurveysTable,
			Columns: []string{group.SurveysColumn},
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
	if _u.mutation.InternshipSurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.InternshipSurveysTable,
			Columns: []string{group.InternshipSurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInternshipSurveysIDs(); len(nodes) > 0 && !_u.mutation.InternshipSurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.InternshipSurveysTable,
			Columns: []string{group.InternshipSurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InternshipSurveysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.InternshipSurveysTable,
			Columns: []string{group.InternshipSurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Group{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
