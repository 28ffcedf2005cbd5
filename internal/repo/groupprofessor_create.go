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
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/professor"
)

// GroupProfessorCreate is the builder for creating a GroupProfessor entity.
type GroupProfessorCreate struct {
	config
	mutation *GroupProfessorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupProfessorCreate) SetCreatedAt(v time.Time) *GroupProfessorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupProfessorCreate) SetNillableCreatedAt(v *time.Time) *GroupProfessorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *GroupProfessorCreate) SetGroupID(v uuid.UUID) *GroupProfessorCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetProfessorID sets the "professor_id" field.
func (_c *GroupProfessorCreate) SetProfessorID(v uuid.UUID) *GroupProfessorCreate {
	_c.mutation.SetProfessorID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GroupProfessorCreate) SetID(v uuid.UUID) *GroupProfessorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GroupProfessorCreate) SetNillableID(v *uuid.UUID) *GroupProfessorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *GroupProfessorCreate) SetGroup(v *Group) *GroupProfessorCreate {
	return _c.SetGroupID(v.ID)
}

// SetProfessor sets the "professor" edge to the Professor entity.
func (_c *GroupProfessorCreate) SetProfessor(v *Professor) *GroupProfessorCreate {
	return _c.SetProfessorID(v.ID)
}

// Mutation returns the GroupProfessorMutation object of the builder.
func (_c *GroupProfessorCreate) Mutation() *GroupProfessorMutation {
	return _c.mutation
}

// Save creates the GroupProfessor in the database.
func (_c *GroupProfessorCreate) Save(ctx context.Context) (*GroupProfessor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupProfessorCreate) SaveX(ctx context.Context) *GroupProfessor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupProfessorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupProfessorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupProfessorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := groupprofessor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := groupprofessor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupProfessorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "GroupProfessor.created_at"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`repo: missing required field "GroupProfessor.group_id"`)}
	}
	if _, ok := _c.mutation.ProfessorID(); !ok {
		return &ValidationError{Name: "professor_id", err: errors.New(`repo: missing required field "GroupProfessor.professor_id"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`repo: missing required edge "GroupProfessor.group"`)}
	}
	if len(_c.mutation.ProfessorIDs()) == 0 {
		return &ValidationError{Name: "professor", err: errors.New(`repo: missing required edge "GroupProfessor.professor"`)}
	}
	return nil
}

func (_c *GroupProfessorCreate) sqlSave(ctx context.Context) (*GroupProfessor, error) {
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

func (_c *GroupProfessorCreate) createSpec() (*GroupProfessor, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupProfessor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(groupprofessor.Table, sqlgraph.NewFieldSpec(groupprofessor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(groupprofessor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProfessorIDs(); len(nodes) > 0 {
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
		_node.ProfessorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GroupProfessorCreateBulk is the builder for creating many GroupProfessor entities in bulk.
type GroupProfessorCreateBulk struct {
	config
	err      error
	builders []*GroupProfessorCreate
}

// Save creates the GroupProfessor entities in the database.
func (_c *GroupProfessorCreateBulk) Save(ctx context.Context) ([]*GroupProfessor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GroupProfessor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupProfessorMutation)
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
func (_c *GroupProfessorCreateBulk) SaveX(ctx context.Context) []*GroupProfessor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupProfessorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupProfessorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
