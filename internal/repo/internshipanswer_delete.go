// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// InternshipAnswerDelete is the builder for deleting a InternshipAnswer entity.
type InternshipAnswerDelete struct {
	config
	hooks    []Hook
	mutation *InternshipAnswerMutation
}

// Where appends a list predicates to the InternshipAnswerDelete builder.
func (_d *InternshipAnswerDelete) Where(ps ...predicate.InternshipAnswer) *InternshipAnswerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InternshipAnswerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InternshipAnswerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InternshipAnswerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(internshipanswer.Table, sqlgraph.NewFieldSpec(internshipanswer.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InternshipAnswerDeleteOne is the builder for deleting a single InternshipAnswer entity.
type InternshipAnswerDeleteOne struct {
	_d *InternshipAnswerDelete
}

// Where appends a list predicates to the InternshipAnswerDelete builder.
func (_d *InternshipAnswerDeleteOne) Where(ps ...predicate.InternshipAnswer) *InternshipAnswerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InternshipAnswerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{internshipanswer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InternshipAnswerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
