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
	"github.com/yalgashev/survey/internal/repo/answer"
	"github.com/yalgashev/survey/internal/repo/predicate"
	"github.com/yalgashev/survey/internal/repo/question"
	"github.com/yalgashev/survey/internal/repo/survey"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSurveyID sets the "survey_id" field.
func (_u *AnswerUpdate) SetSurveyID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSurveyID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdate) SetQuestionID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRatingValue sets the "rating_value" field.
func (_u *AnswerUpdate) SetRatingValue(v int) *AnswerUpdate {
	_u.mutation.ResetRatingValue()
	_u.mutation.SetRatingValue(v)
	return _u
}

// SetNillableRatingValue sets the "rating_value" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableRatingValue(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetRatingValue(*v)
	}
	return _u
}

// AddRatingValue adds value to the "rating_value" field.
func (_u *AnswerUpdate) AddRatingValue(v int) *AnswerUpdate {
	_u.mutation.AddRatingValue(v)
	return _u
}

// ClearRatingValue clears the value of the "rating_value" field.
func (_u *AnswerUpdate) ClearRatingValue() *AnswerUpdate {
	_u.mutation.ClearRatingValue()
	return _u
}

// SetTextValue sets the "text_value" field.
func (_u *AnswerUpdate) SetTextValue(v string) *AnswerUpdate {
	_u.mutation.SetTextValue(v)
	return _u
}

// SetNillableTextValue sets the "text_value" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableTextValue(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetTextValue(*v)
	}
	return _u
}

// ClearTextValue clears the value of the "text_value" field.
func (_u *AnswerUpdate) ClearTextValue() *AnswerUpdate {
	_u.mutation.ClearTextValue()
	return _u
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_u *AnswerUpdate) SetSurvey(v *Survey) *AnswerUpdate {
	return _u.SetSurveyID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdate) SetQuestion(v *Question) *AnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (_u *AnswerUpdate) ClearSurvey() *AnswerUpdate {
	_u.mutation.ClearSurvey()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdate) ClearQuestion() *AnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.RatingValue(); ok {
		if err := answer.RatingValueValidator(v); err != nil {
			return &ValidationError{Name: "rating_value", err: fmt.Errorf(`repo: validator failed for field "Answer.rating_value": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.survey"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RatingValue(); ok {
		_spec.SetField(answer.FieldRatingValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingValue(); ok {
		_spec.AddField(answer.FieldRatingValue, field.TypeInt, value)
	}
	if _u.mutation.RatingValueCleared() {
		_spec.ClearField(answer.FieldRatingValue, field.TypeInt)
	}
	if value, ok := _u.mutation.TextValue(); ok {
		_spec.SetField(answer.FieldTextValue, field.TypeString, value)
	}
	if _u.mutation.TextValueCleared() {
		_spec.ClearField(answer.FieldTextValue, field.TypeString)
	}
	if _u.mutation.SurveyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SurveyTable,
			Columns: []string{answer.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SurveyTable,
			Columns: []string{answer.SurveyColumn},
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
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetSurveyID sets the "survey_id" field.
func (_u *AnswerUpdateOne) SetSurveyID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSurveyID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdateOne) SetQuestionID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRatingValue sets the "rating_value" field.
func (_u *AnswerUpdateOne) SetRatingValue(v int) *AnswerUpdateOne {
	_u.mutation.ResetRatingValue()
	_u.mutation.SetRatingValue(v)
	return _u
}

// SetNillableRatingValue sets the "rating_value" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableRatingValue(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetRatingValue(*v)
	}
	return _u
}

// AddRatingValue adds value to the "rating_value" field.
func (_u *AnswerUpdateOne) AddRatingValue(v int) *AnswerUpdateOne {
	_u.mutation.AddRatingValue(v)
	return _u
}

// ClearRatingValue clears the value of the "rating_value" field.
func (_u *AnswerUpdateOne) ClearRatingValue() *AnswerUpdateOne {
	_u.mutation.ClearRatingValue()
	return _u
}

// SetTextValue sets the "text_value" field.
func (_u *AnswerUpdateOne) SetTextValue(v string) *AnswerUpdateOne {
	_u.mutation.SetTextValue(v)
	return _u
}

// SetNillableTextValue sets the "text_value" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableTextValue(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetTextValue(*v)
	}
	return _u
}

// ClearTextValue clears the value of the "text_value" field.
func (_u *AnswerUpdateOne) ClearTextValue() *AnswerUpdateOne {
	_u.mutation.ClearTextValue()
	return _u
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_u *AnswerUpdateOne) SetSurvey(v *Survey) *AnswerUpdateOne {
	return _u.SetSurveyID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) SetQuestion(v *Question) *AnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (_u *AnswerUpdateOne) ClearSurvey() *AnswerUpdateOne {
	_u.mutation.ClearSurvey()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) ClearQuestion() *AnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.RatingValue(); ok {
		if err := answer.RatingValueValidator(v); err != nil {
			return &ValidationError{Name: "rating_value", err: fmt.Errorf(`repo: validator failed for field "Answer.rating_value": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.survey"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.RatingValue(); ok {
		_spec.SetField(answer.FieldRatingValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingValue(); ok {
		_spec.AddField(answer.FieldRatingValue, field.TypeInt, value)
	}
	if _u.mutation.RatingValueCleared() {
		_spec.ClearField(answer.FieldRatingValue, field.TypeInt)
	}
	if value, ok := _u.mutation.TextValue(); ok {
		_spec.SetField(answer.FieldTextValue, field.TypeString, value)
	}
	if _u.mutation.TextValueCleared() {
		_spec.ClearField(answer.FieldTextValue, field.TypeString)
	}
	if _u.mutation.SurveyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SurveyTable,
			Columns: []string{answer.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SurveyTable,
			Columns: []string{answer.SurveyColumn},
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
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
