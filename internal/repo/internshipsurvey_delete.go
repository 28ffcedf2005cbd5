// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// InternshipSurveyDelete is the builder for deleting a InternshipSurvey entity.
type InternshipSurveyDelete struct {
	config
	hooks    []Hook
	mutation *InternshipSurveyMutation
}

// Where appends a list predicates to the InternshipSurveyDelete builder.
func (_d *InternshipSurveyDelete) Where(ps ...predicate.InternshipSurvey) *InternshipSurveyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InternshipSurveyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InternshipSurveyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InternshipSurveyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(internshipsurvey.Table, sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID))
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

// InternshipSurveyDeleteOne is the builder for deleting a single InternshipSurvey entity.
type InternshipSurveyDeleteOne struct {
	_d *InternshipSurveyDelete
}

// Where appends a list predicates to the InternshipSurveyDelete builder.
func (_d *InternshipSurveyDeleteOne) Where(ps ...predicate.InternshipSurvey) *InternshipSurveyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InternshipSurveyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{internshipsurvey.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InternshipSurveyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
