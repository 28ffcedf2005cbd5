// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/predicate"
	"github.com/yalgashev/survey/internal/repo/professor"
)

// GroupProfessorUpdate is the builder for updating GroupProfessor entities.
type GroupProfessorUpdate struct {
	config
	hooks    []Hook
	mutation *GroupProfessorMutation
}

// Where appends a list predicates to the GroupProfessorUpdate builder.
func (_u *GroupProfessorUpdate) Where(ps ...predicate.GroupProfessor) *GroupProfessorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *GroupProfessorUpdate) SetGroupID(v uuid.UUID) *GroupProfessorUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupProfessorUpdate) SetNillableGroupID(v *uuid.UUID) *GroupProfessorUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetProfessorID sets the "professor_id" field.
func (_u *GroupProfessorUpdate) SetProfessorID(v uuid.UUID) *GroupProfessorUpdate {
	_u.mutation.SetProfessorID(v)
	return _u
}

// SetNillableProfessorID sets the "professor_id" field if the given value is not nil.
func (_u *GroupProfessorUpdate) SetNillableProfessorID(v *uuid.UUID) *GroupProfessorUpdate {
	if v != nil {
		_u.SetProfessorID(*v)
	}
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *GroupProfessorUpdate) SetGroup(v *Group) *GroupProfessorUpdate {
	return _u.SetGroupID(v.ID)
}

// SetProfessor sets the "professor" edge to the Professor entity.
func (_u *GroupProfessorUpdate) SetProfessor(v *Professor) *GroupProfessorUpdate {
	return _u.SetProfessorID(v.ID)
}

// Mutation returns the GroupProfessorMutation object of the builder.
func (_u *GroupProfessorUpdate) Mutation() *GroupProfessorMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *GroupProfessorUpdate) ClearGroup() *GroupProfessorUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// ClearProfessor clears the "professor" edge to the Professor entity.
func (_u *GroupProfessorUpdate) ClearProfessor() *GroupProfessorUpdate {
	_u.mutation.ClearProfessor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupProfessorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupProfessorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupProfessorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupProfessorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupProfessorUpdate) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "GroupProfessor.group"`)
	}
	if _u.mutation.ProfessorCleared() && len(_u.mutation.ProfessorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "GroupProfessor.professor"`)
	}
	return nil
}

func (_u *GroupProfessorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupprofessor.Table, groupprofessor.Columns, sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.GroupTable,
			Columns: []string{groupprofessor.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.GroupTable,
			Columns: []string{groupprofessor.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfessorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.ProfessorTable,
			Columns: []string{groupprofessor.ProfessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.ProfessorTable,
			Columns: []string{groupprofessor.ProfessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupprofessor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupProfessorUpdateOne is the builder for updating a single GroupProfessor entity.
type GroupProfessorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupProfessorMutation
}

// SetGroupID sets the "group_id" field.
func (_u *GroupProfessorUpdateOne) SetGroupID(v uuid.UUID) *GroupProfessorUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupProfessorUpdateOne) SetNillableGroupID(v *uuid.UUID) *GroupProfessorUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetProfessorID sets the "professor_id" field.
func (_u *GroupProfessorUpdateOne) SetProfessorID(v uuid.UUID) *GroupProfessorUpdateOne {
	_u.mutation.SetProfessorID(v)
	return _u
}

// SetNillableProfessorID sets the "professor_id" field if the given value is not nil.
func (_u *GroupProfessorUpdateOne) SetNillableProfessorID(v *uuid.UUID) *GroupProfessorUpdateOne {
	if v != nil {
		_u.SetProfessorID(*v)
	}
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *GroupProfessorUpdateOne) SetGroup(v *Group) *GroupProfessorUpdateOne {
	return _u.SetGroupID(v.ID)
}

// SetProfessor sets the "professor" edge to the Professor entity.
func (_u *GroupProfessorUpdateOne) SetProfessor(v *Professor) *GroupProfessorUpdateOne {
	return _u.SetProfessorID(v.ID)
}

// Mutation returns the GroupProfessorMutation object of the builder.
func (_u *GroupProfessorUpdateOne) Mutation() *GroupProfessorMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *GroupProfessorUpdateOne) ClearGroup() *GroupProfessorUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// ClearProfessor clears the "professor" edge to the Professor entity.
func (_u *GroupProfessorUpdateOne) ClearProfessor() *GroupProfessorUpdateOne {
	_u.mutation.ClearProfessor()
	return _u
}

// Where appends a list predicates to the GroupProfessorUpdate builder.
func (_u *GroupProfessorUpdateOne) Where(ps ...predicate.GroupProfessor) *GroupProfessorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupProfessorUpdateOne) Select(field string, fields ...string) *GroupProfessorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupProfessor entity.
func (_u *GroupProfessorUpdateOne) Save(ctx context.Context) (*GroupProfessor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupProfessorUpdateOne) SaveX(ctx context.Context) *GroupProfessor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupProfessorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupProfessorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupProfessorUpdateOne) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "GroupProfessor.group"`)
	}
	if _u.mutation.ProfessorCleared() && len(_u.mutation.ProfessorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "GroupProfessor.professor"`)
	}
	return nil
}

func (_u *GroupProfessorUpdateOne) sqlSave(ctx context.Context) (_node *GroupProfessor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupprofessor.Table, groupprofessor.Columns, sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "GroupProfessor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupprofessor.FieldID)
		for _, f := range fields {
			if !groupprofessor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != groupprofessor.FieldID {
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
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.GroupTable,
			Columns: []string{groupprofessor.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.GroupTable,
			Columns: []string{groupprofessor.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfessorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.ProfessorTable,
			Columns: []string{groupprofessor.ProfessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupprofessor.ProfessorTable,
			Columns: []string{groupprofessor.ProfessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GroupProfessor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupprofessor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
