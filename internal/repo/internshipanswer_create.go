// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
)

// InternshipAnswerCreate is the builder for creating a InternshipAnswer entity.
type InternshipAnswerCreate struct {
	config
	mutation *InternshipAnswerMutation
	hooks    []Hook
}

// SetSurveyID sets the "survey_id" field.
func (_c *InternshipAnswerCreate) SetSurveyID(v uuid.UUID) *InternshipAnswerCreate {
	_c.mutation.SetSurveyID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *InternshipAnswerCreate) SetQuestionID(v uuid.UUID) *InternshipAnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetRatingValue sets the "rating_value" field.
func (_c *InternshipAnswerCreate) SetRatingValue(v int) *InternshipAnswerCreate {
	_c.mutation.SetRatingValue(v)
	return _c
}

// SetNillableRatingValue sets the "rating_value" field if the given value is not nil.
func (_c *InternshipAnswerCreate) SetNillableRatingValue(v *int) *InternshipAnswerCreate {
	if v != nil {
		_c.SetRatingValue(*v)
	}
	return _c
}

// SetTextValue sets the "text_value" field.
func (_c *InternshipAnswerCreate) SetTextValue(v string) *InternshipAnswerCreate {
	_c.mutation.SetTextValue(v)
	return _c
}

// SetNillableTextValue sets the "text_value" field if the given value is not nil.
func (_c *InternshipAnswerCreate) SetNillableTextValue(v *string) *InternshipAnswerCreate {
	if v != nil {
		_c.SetTextValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InternshipAnswerCreate) SetID(v uuid.UUID) *InternshipAnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InternshipAnswerCreate) SetNillableID(v *uuid.UUID) *InternshipAnswerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSurvey sets the "survey" edge to the InternshipSurvey entity.
func (_c *InternshipAnswerCreate) SetSurvey(v *InternshipSurvey) *InternshipAnswerCreate {
	return _c.SetSurveyID(v.ID)
}

// SetQuestion sets the "question" edge to the InternshipQuestion entity.
func (_c *InternshipAnswerCreate) SetQuestion(v *InternshipQuestion) *InternshipAnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the InternshipAnswerMutation object of the builder.
func (_c *InternshipAnswerCreate) Mutation() *InternshipAnswerMutation {
	return _c.mutation
}

// Save creates the InternshipAnswer in the database.
func (_c *InternshipAnswerCreate) Save(ctx context.Context) (*InternshipAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InternshipAnswerCreate) SaveX(ctx context.Context) *InternshipAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternshipAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternshipAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InternshipAnswerCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := internshipanswer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InternshipAnswerCreate) check() error {
	if _, ok := _c.mutation.SurveyID(); !ok {
		return &ValidationError{Name: "survey_id", err: errors.New(`repo: missing required field "InternshipAnswer.survey_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`repo: missing required field "InternshipAnswer.question_id"`)}
	}
	if v, ok := _c.mutation.RatingValue(); ok {
		if err := internshipanswer.RatingValueValidator(v); err != nil {
			return &ValidationError{Name: "rating_value", err: fmt.Errorf(`repo: validator failed for field "InternshipAnswer.rating_value": %w`, err)}
		}
	}
	if len(_c.mutation.SurveyIDs()) == 0 {
		return &ValidationError{Name: "survey", err: errors.New(`repo: missing required edge "InternshipAnswer.survey"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`repo: missing required edge "InternshipAnswer.question"`)}
	}
	return nil
}

func (_c *InternshipAnswerCreate) sqlSave(ctx context.Context) (*InternshipAnswer, error) {
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

func (_c *InternshipAnswerCreate) createSpec() (*InternshipAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &InternshipAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(internshipanswer.Table, sqlgraph.NewFieldSpec(internshipanswer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RatingValue(); ok {
		_spec.SetField(internshipanswer.FieldRatingValue, field.TypeInt, value)
		_node.RatingValue = &value
	}
	if value, ok := _c.mutation.TextValue(); ok {
		_spec.SetField(internshipanswer.FieldTextValue, field.TypeString, value)
		_node.TextValue = &value
	}
	if nodes := _c.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   internshipanswer.SurveyTable,
			Columns: []string{internshipanswer.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipsurvey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SurveyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   internshipanswer.QuestionTable,
			Columns: []string{internshipanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipquestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InternshipAnswerCreateBulk is the builder for creating many InternshipAnswer entities in bulk.
type InternshipAnswerCreateBulk struct {
	config
	err      error
	builders []*InternshipAnswerCreate
}

// Save creates the InternshipAnswer entities in the database.
func (_c *InternshipAnswerCreateBulk) Save(ctx context.Context) ([]*InternshipAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InternshipAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InternshipAnswerMutation)
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
func (_c *InternshipAnswerCreateBulk) SaveX(ctx context.Context) []*InternshipAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternshipAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternshipAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
