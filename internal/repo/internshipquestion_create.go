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
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
)

// InternshipQuestionCreate is the builder for creating a InternshipQuestion entity.
type InternshipQuestionCreate struct {
	config
	mutation *InternshipQuestionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InternshipQuestionCreate) SetCreatedAt(v time.Time) *InternshipQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InternshipQuestionCreate) SetNillableCreatedAt(v *time.Time) *InternshipQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InternshipQuestionCreate) SetUpdatedAt(v time.Time) *InternshipQuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InternshipQuestionCreate) SetNillableUpdatedAt(v *time.Time) *InternshipQuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTextEn sets the "text_en" field.
func (_c *InternshipQuestionCreate) SetTextEn(v string) *InternshipQuestionCreate {
	_c.mutation.SetTextEn(v)
	return _c
}

// SetTextUz sets the "text_uz" field.
func (_c *InternshipQuestionCreate) SetTextUz(v string) *InternshipQuestionCreate {
	_c.mutation.SetTextUz(v)
	return _c
}

// SetTextRu sets the "text_ru" field.
func (_c *InternshipQuestionCreate) SetTextRu(v string) *InternshipQuestionCreate {
	_c.mutation.SetTextRu(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *InternshipQuestionCreate) SetQuestionType(v internshipquestion.QuestionType) *InternshipQuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *InternshipQuestionCreate) SetNillableQuestionType(v *internshipquestion.QuestionType) *InternshipQuestionCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *InternshipQuestionCreate) SetSortOrder(v int) *InternshipQuestionCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *InternshipQuestionCreate) SetNillableSortOrder(v *int) *InternshipQuestionCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *InternshipQuestionCreate) SetIsActive(v bool) *InternshipQuestionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *InternshipQuestionCreate) SetNillableIsActive(v *bool) *InternshipQuestionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InternshipQuestionCreate) SetID(v uuid.UUID) *InternshipQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InternshipQuestionCreate) SetNillableID(v *uuid.UUID) *InternshipQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAnswerIDs adds the "answers" edge to the InternshipAnswer entity by IDs.
func (_c *InternshipQuestionCreate) AddAnswerIDs(ids ...uuid.UUID) *InternshipQuestionCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the InternshipAnswer entity.
func (_c *InternshipQuestionCreate) AddAnswers(v ...*InternshipAnswer) *InternshipQuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the InternshipQuestionMutation object of the builder.
func (_c *InternshipQuestionCreate) Mutation() *InternshipQuestionMutation {
	return _c.mutation
}

// Save creates the InternshipQuestion in the database.
func (_c *InternshipQuestionCreate) Save(ctx context.Context) (*InternshipQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InternshipQuestionCreate) SaveX(ctx context.Context) *InternshipQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternshipQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternshipQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InternshipQuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := internshipquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := internshipquestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := internshipquestion.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := internshipquestion.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := internshipquestion.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := internshipquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InternshipQuestionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InternshipQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InternshipQuestion.updated_at"`)}
	}
	if _, ok := _c.mutation.TextEn(); !ok {
		return &ValidationError{Name: "text_en", err: errors.New(`repo: missing required field "InternshipQuestion.text_en"`)}
	}
	if v, ok := _c.mutation.TextEn(); ok {
		if err := internshipquestion.TextEnValidator(v); err != nil {
			return &ValidationError{Name: "text_en", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextUz(); !ok {
		return &ValidationError{Name: "text_uz", err: errors.New(`repo: missing required field "InternshipQuestion.text_uz"`)}
	}
	if v, ok := _c.mutation.TextUz(); ok {
		if err := internshipquestion.TextUzValidator(v); err != nil {
			return &ValidationError{Name: "text_uz", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_uz": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextRu(); !ok {
		return &ValidationError{Name: "text_ru", err: errors.New(`repo: missing required field "InternshipQuestion.text_ru"`)}
	}
	if v, ok := _c.mutation.TextRu(); ok {
		if err := internshipquestion.TextRuValidator(v); err != nil {
			return &ValidationError{Name: "text_ru", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_ru": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`repo: missing required field "InternshipQuestion.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := internshipquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`repo: missing required field "InternshipQuestion.sort_order"`)}
	}
	if v, ok := _c.mutation.SortOrder(); ok {
		if err := internshipquestion.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.sort_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "InternshipQuestion.is_active"`)}
	}
	return nil
}

func (_c *InternshipQuestionCreate) sqlSave(ctx context.Context) (*InternshipQuestion, error) {
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

func (_c *InternshipQuestionCreate) createSpec() (*InternshipQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &InternshipQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(internshipquestion.Table, sqlgraph.NewFieldSpec(internshipquestion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(internshipquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(internshipquestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TextEn(); ok {
		_spec.SetField(internshipquestion.FieldTextEn, field.TypeString, value)
		_node.TextEn = value
	}
	if value, ok := _c.mutation.TextUz(); ok {
		_spec.SetField(internshipquestion.FieldTextUz, field.TypeString, value)
		_node.TextUz = value
	}
	if value, ok := _c.mutation.TextRu(); ok {
		_spec.SetField(internshipquestion.FieldTextRu, field.TypeString, value)
		_node.TextRu = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(internshipquestion.FieldQuestionType, field.TypeEnum, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(internshipquestion.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(internshipquestion.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   internshipquestion.AnswersTable,
			Columns: []string{internshipquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internshipanswer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InternshipQuestionCreateBulk is the builder for creating many InternshipQuestion entities in bulk.
type InternshipQuestionCreateBulk struct {
	config
	err      error
	builders []*InternshipQuestionCreate
}

// Save creates the InternshipQuestion entities in the database.
func (_c *InternshipQuestionCreateBulk) Save(ctx context.Context) ([]*InternshipQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InternshipQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InternshipQuestionMutation)
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
func (_c *InternshipQuestionCreateBulk) SaveX(ctx context.Context) []*InternshipQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternshipQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternshipQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
