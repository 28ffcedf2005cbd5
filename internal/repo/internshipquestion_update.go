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
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// InternshipQuestionUpdate is the builder for updating InternshipQuestion entities.
type InternshipQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *InternshipQuestionMutation
}

// Where appends a list predicates to the InternshipQuestionUpdate builder.
func (_u *InternshipQuestionUpdate) Where(ps ...predicate.InternshipQuestion) *InternshipQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InternshipQuestionUpdate) SetUpdatedAt(v time.Time) *InternshipQuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTextEn sets the "text_en" field.
func (_u *InternshipQuestionUpdate) SetTextEn(v string) *InternshipQuestionUpdate {
	_u.mutation.SetTextEn(v)
	return _u
}

// SetNillableTextEn sets the "text_en" field if the given value is not nil.
func (_u *InternshipQuestionUpdate) SetNillableTextEn(v *string) *InternshipQuestionUpdate {
	if v != nil {
		_u.SetTextEn(*v)
	}
	return _u
}

// SetTextUz sets the "text_uz" field.
func (_u *InternshipQuestionUpdate) SetTextUz(v string) *InternshipQuestionUpdate {
	_u.mutation.SetTextUz(v)
	return _u
}

// SetNillableTextUz sets the "text_uz" field if the given value is not nil.
func (_u *InternshipQuestionUpdate) SetNillableTextUz(v *string) *InternshipQuestionUpdate {
	if v != nil {
		_u.SetTextUz(*v)
	}
	return _u
}

// SetTextRu sets the "text_ru" field.
func (_u *InternshipQuestionUpdate) SetTextRu(v string) *InternshipQuestionUpdate {
	_u.mutation.SetTextRu(v)
	return _u
}

// SetNillableTextRu sets the "text_ru" field if the given value is not nil.
func (_u *InternshipQuestionUpdate) SetNillableTextRu(v *string) *InternshipQuestionUpdate {
	if v != nil {
		_u.SetTextRu(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *InternshipQuestionUpdate) SetQuestionType(v internshipquestion.QuestionType) *InternshipQuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *InternshipQuestionUpdate) SetNillableQuestionType(v *internshipquestion.QuestionType) *InternshipQuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *InternshipQuestionUpdate) SetSortOrder(v int) *InternshipQuestionUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *InternshipQuestionUpdate) SetNillableSortOrder(v *int) *InternshipQuestionUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *InternshipQuestionUpdate) AddSortOrder(v int) *InternshipQuestionUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *InternshipQuestionUpdate) SetIsActive(v bool) *InternshipQuestionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *InternshipQuestionUpdate) SetNillableIsActive(v *bool) *InternshipQuestionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddAnswerIDs adds the "answers" edge to the InternshipAnswer entity by IDs.
func (_u *InternshipQuestionUpdate) AddAnswerIDs(ids ...uuid.UUID) *InternshipQuestionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the InternshipAnswer entity.
func (_u *InternshipQuestionUpdate) AddAnswers(v ...*InternshipAnswer) *InternshipQuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the InternshipQuestionMutation object of the builder.
func (_u *InternshipQuestionUpdate) Mutation() *InternshipQuestionMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the InternshipAnswer entity.
func (_u *InternshipQuestionUpdate) ClearAnswers() *InternshipQuestionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to InternshipAnswer entities by IDs.
func (_u *InternshipQuestionUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *InternshipQuestionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to InternshipAnswer entities.
func (_u *InternshipQuestionUpdate) RemoveAnswers(v ...*InternshipAnswer) *InternshipQuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InternshipQuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternshipQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InternshipQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternshipQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InternshipQuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := internshipquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternshipQuestionUpdate) check() error {
	if v, ok := _u.mutation.TextEn(); ok {
		if err := internshipquestion.TextEnValidator(v); err != nil {
			return &ValidationError{Name: "text_en", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextUz(); ok {
		if err := internshipquestion.TextUzValidator(v); err != nil {
			return &ValidationError{Name: "text_uz", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_uz": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextRu(); ok {
		if err := internshipquestion.TextRuValidator(v); err != nil {
			return &ValidationError{Name: "text_ru", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_ru": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := internshipquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SortOrder(); ok {
		if err := internshipquestion.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.sort_order": %w`, err)}
		}
	}
	return nil
}

func (_u *InternshipQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internshipquestion.Table, internshipquestion.Columns, sqlgraph.NewFieldSpec(internshipquestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(internshipquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TextEn(); ok {
		_spec.SetField(internshipquestion.FieldTextEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextUz(); ok {
		_spec.SetField(internshipquestion.FieldTextUz, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextRu(); ok {
		_spec.SetField(internshipquestion.FieldTextRu, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(internshipquestion.FieldQuestionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(internshipquestion.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(internshipquestion.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(internshipquestion.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internshipquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InternshipQuestionUpdateOne is the builder for updating a single InternshipQuestion entity.
type InternshipQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InternshipQuestionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InternshipQuestionUpdateOne) SetUpdatedAt(v time.Time) *InternshipQuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTextEn sets the "text_en" field.
func (_u *InternshipQuestionUpdateOne) SetTextEn(v string) *InternshipQuestionUpdateOne {
	_u.mutation.SetTextEn(v)
	return _u
}

// SetNillableTextEn sets the "text_en" field if the given value is not nil.
func (_u *InternshipQuestionUpdateOne) SetNillableTextEn(v *string) *InternshipQuestionUpdateOne {
	if v != nil {
		_u.SetTextEn(*v)
	}
	return _u
}

// SetTextUz sets the "text_uz" field.
func (_u *InternshipQuestionUpdateOne) SetTextUz(v string) *InternshipQuestionUpdateOne {
	_u.mutation.SetTextUz(v)
	return _u
}

// SetNillableTextUz sets the "text_uz" field if the given value is not nil.
func (_u *InternshipQuestionUpdateOne) SetNillableTextUz(v *string) *InternshipQuestionUpdateOne {
	if v != nil {
		_u.SetTextUz(*v)
	}
	return _u
}

// SetTextRu sets the "text_ru" field.
func (_u *InternshipQuestionUpdateOne) SetTextRu(v string) *InternshipQuestionUpdateOne {
	_u.mutation.SetTextRu(v)
	return _u
}

// SetNillableTextRu sets the "text_ru" field if the given value is not nil.
func (_u *InternshipQuestionUpdateOne) SetNillableTextRu(v *string) *InternshipQuestionUpdateOne {
	if v != nil {
		_u.SetTextRu(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *InternshipQuestionUpdateOne) SetQuestionType(v internshipquestion.QuestionType) *InternshipQuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *InternshipQuestionUpdateOne) SetNillableQuestionType(v *internshipquestion.QuestionType) *InternshipQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *InternshipQuestionUpdateOne) SetSortOrder(v int) *InternshipQuestionUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *InternshipQuestionUpdateOne) SetNillableSortOrder(v *int) *InternshipQuestionUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *InternshipQuestionUpdateOne) AddSortOrder(v int) *InternshipQuestionUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *InternshipQuestionUpdateOne) SetIsActive(v bool) *InternshipQuestionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *InternshipQuestionUpdateOne) SetNillableIsActive(v *bool) *InternshipQuestionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddAnswerIDs adds the "answers" edge to the InternshipAnswer entity by IDs.
func (_u *InternshipQuestionUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *InternshipQuestionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the InternshipAnswer entity.
func (_u *InternshipQuestionUpdateOne) AddAnswers(v ...*InternshipAnswer) *InternshipQuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the InternshipQuestionMutation object of the builder.
func (_u *InternshipQuestionUpdateOne) Mutation() *InternshipQuestionMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the InternshipAnswer entity.
func (_u *InternshipQuestionUpdateOne) ClearAnswers() *InternshipQuestionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to InternshipAnswer entities by IDs.
func (_u *InternshipQuestionUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *InternshipQuestionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to InternshipAnswer entities.
func (_u *InternshipQuestionUpdateOne) RemoveAnswers(v ...*InternshipAnswer) *InternshipQuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the InternshipQuestionUpdate builder.
func (_u *InternshipQuestionUpdateOne) Where(ps ...predicate.InternshipQuestion) *InternshipQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InternshipQuestionUpdateOne) Select(field string, fields ...string) *InternshipQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InternshipQuestion entity.
func (_u *InternshipQuestionUpdateOne) Save(ctx context.Context) (*InternshipQuestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternshipQuestionUpdateOne) SaveX(ctx context.Context) *InternshipQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InternshipQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternshipQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InternshipQuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := internshipquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternshipQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.TextEn(); ok {
		if err := internshipquestion.TextEnValidator(v); err != nil {
			return &ValidationError{Name: "text_en", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextUz(); ok {
		if err := internshipquestion.TextUzValidator(v); err != nil {
			return &ValidationError{Name: "text_uz", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_uz": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextRu(); ok {
		if err := internshipquestion.TextRuValidator(v); err != nil {
			return &ValidationError{Name: "text_ru", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.text_ru": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := internshipquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SortOrder(); ok {
		if err := internshipquestion.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`repo: validator failed for field "InternshipQuestion.sort_order": %w`, err)}
		}
	}
	return nil
}

func (_u *InternshipQuestionUpdateOne) sqlSave(ctx context.Context) (_node *InternshipQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internshipquestion.Table, internshipquestion.Columns, sqlgraph.NewFieldSpec(internshipquestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InternshipQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, internshipquestion.FieldID)
		for _, f := range fields {
			if !internshipquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != internshipquestion.FieldID {
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
		_spec.SetField(internshipquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TextEn(); ok {
		_spec.SetField(internshipquestion.FieldTextEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextUz(); ok {
		_spec.SetField(internshipquestion.FieldTextUz, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextRu(); ok {
		_spec.SetField(internshipquestion.FieldTextRu, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(internshipquestion.FieldQuestionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(internshipquestion.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(internshipquestion.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(internshipquestion.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InternshipQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internshipquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
