// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/department"
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/survey"
)

// GroupCreate is the builder for creating a Group entity.
type GroupCreate struct {
	config
	mutation *GroupMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupCreate) SetCreatedAt(v time.Time) *GroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableCreatedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GroupCreate) SetUpdatedAt(v time.Time) *GroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableUpdatedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *GroupCreate) SetName(v string) *GroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDepartmentID sets the "department_id" field.
func (_c *GroupCreate) SetDepartmentID(v uuid.UUID) *GroupCreate {
	_c.mutation.SetDepartmentID(v)
	return _c
}

// SetSemester sets the "semester" field.
func (_c *GroupCreate) SetSemester(v int) *GroupCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_c *GroupCreate) SetNillableSemester(v *int) *GroupCreate {
	if v != nil {
		_c.SetSemester(*v)
	}
	return _c
}

// SetTotalStudents sets the "total_students" field.
func (_c *GroupCreate) SetTotalStudents(v int) *GroupCreate {
	_c.mutation.SetTotalStudents(v)
	return _c
}

// SetNillableTotalStudents sets the "total_students" field if the given value is not nil.
func (_c *GroupCreate) SetNillableTotalStudents(v *int) *GroupCreate {
	if v != nil {
		_c.SetTotalStudents(*v)
	}
	return _c
}

// SetParticipatedStudents sets the "participated_students" field.
func (_c *GroupCreate) SetParticipatedStudents(v int) *GroupCreate {
	_c.mutation.SetParticipatedStudents(v)
	return _c
}

// SetNillableParticipatedStudents sets the "participated_students" field if the given value is not nil.
func (_c *GroupCreate) SetNillableParticipatedStudents(v *int) *GroupCreate {
	if v != nil {
		_c.SetParticipatedStudents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GroupCreate) SetID(v uuid.UUID) *GroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GroupCreate) SetNillableID(v *uuid.UUID) *GroupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDepartment sets the "department" edge to the Department entity.
func (_c *GroupCreate) SetDepartment(v *Department) *GroupCreate {
	return _c.SetDepartmentID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by IDs.
func (_c *GroupCreate) AddAssignmentIDs(ids ...uuid.UUID) *GroupCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the GroupProfessor entity.
func (_c *GroupCreate) AddAssignments(v ...*GroupProfessor) *GroupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_c *GroupCreate) AddSurveyIDs(ids ...uuid.UUID) *GroupCreate {
	_c.mutation.AddSurveyIDs(ids...)
	return _c
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_c *GroupCreate) AddSurveys(v ...*Survey) *GroupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSurveyIDs(ids...)
}

// AddInternshipSurveyIDs adds the "internship_surveys" edge to the InternshipSurvey entity by IDs.
func (_c *GroupCreate) AddInternshipSurveyIDs(ids ...uuid.UUID) *GroupCreate {
	_c.mutation.AddInternshipSurveyIDs(ids...)
	return _c
}

// AddInternshipSurveys adds the "internship_surveys" edges to the InternshipSurvey entity.
func (_c *GroupCreate) AddInternshipSurveys(v ...*InternshipSurvey) *GroupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInternshipSurveyIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_c *GroupCreate) Mutation() *GroupMutation {
	return _c.mutation
}

// Save creates the Group in the database.
func (_c *GroupCreate) Save(ctx context.Context) (*Group, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupCreate) SaveX(ctx context.Context) *Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := group.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := group.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Semester(); !ok {
		v := group.DefaultSemester
		_c.mutation.SetSemester(v)
	}
	if _, ok := _c.mutation.TotalStudents(); !ok {
		v := group.DefaultTotalStudents
		_c.mutation.SetTotalStudents(v)
	}
	if _, ok := _c.mutation.ParticipatedStudents(); !ok {
		v := group.DefaultParticipatedStudents
		_c.mutation.SetParticipatedStudents(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := group.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Group.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Group.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Group.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := group.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Group.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DepartmentID(); !ok {
		return &ValidationError{Name: "department_id", err: errors.New(`repo: missing required field "Group.department_id"`)}
	}
	if _, ok := _c.mutation.Semester(); !ok {
		return &ValidationError{Name: "semester", err: errors.New(`repo: missing required field "Group.semester"`)}
	}
	if v, ok := _c.mutation.Semester(); ok {
		if err := group.SemesterValidator(v); err != nil {
			return &ValidationError{Name: "semester", err: fmt.Errorf(`repo: validator failed for field "Group.semester": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalStudents(); !ok {
		return &ValidationError{Name: "total_students", err: errors.New(`repo: missing required field "Group.total_students"`)}
	}
	if v, ok := _c.mutation.TotalStudents(); ok {
		if err := group.TotalStudentsValidator(v); err != nil {
			return &ValidationError{Name: "total_students", err: fmt.Errorf(`repo: validator failed for field "Group.total_students": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParticipatedStudents(); !ok {
		return &ValidationError{Name: "participated_students", err: errors.New(`repo: missing required field "Group.participated_students"`)}
	}
	if v, ok := _c.mutation.ParticipatedStudents(); ok {
		if err := group.ParticipatedStudentsValidator(v); err != nil {
			return &ValidationError{Name: "participated_students", err: fmt.Errorf(`repo: validator failed for field "Group.participated_students": %w`, err)}
		}
	}
	if len(_c.mutation.DepartmentIDs()) == 0 {
		return &ValidationError{Name: "department", err: errors.New(`repo: missing required edge "Group.department"`)}
	}
	return nil
}

func (_c *GroupCreate) sqlSave(ctx context.Context) (*Group, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupCreate) createSpec() (*Group, *sqlgraph.CreateSpec) {
	var (
		_node = &Group{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(group.Table, sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(group.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(group.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(group.FieldSemester, field.TypeInt, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.TotalStudents(); ok {
		_spec.SetField(group.FieldTotalStudents, field.TypeInt, value)
		_node.TotalStudents = value
	}
	if value, ok := _c.mutation.ParticipatedStudents(); ok {
		_spec.SetField(group.FieldParticipatedStudents, field.TypeInt, value)
		_node.ParticipatedStudents = value
	}
	if nodes := _c.mutation.DepartmentIDs(); len(nodes) > 0 {
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
		_node.DepartmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SurveysIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InternshipSurveysIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GroupCreateBulk is the builder for creating many Group entities in bulk.
type GroupCreateBulk struct {
	config
	err      error
	builders []*GroupCreate
}

// Save creates the Group entities in the database.
func (_c *GroupCreateBulk) Save(ctx context.Context) ([]*Group, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Group, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GroupCreateBulk) SaveX(ctx context.Context) []*Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
