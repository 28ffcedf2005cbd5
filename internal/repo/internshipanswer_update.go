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
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// InternshipAnswerUpdate is the builder for updating InternshipAnswer entities.
type InternshipAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *InternshipAnswerMutation
}

// Where appends a list predicates to the InternshipAnswerUpdate builder.
func (_u *InternshipAnswerUpdate) Where(ps ...predicate.InternshipAnswer) *InternshipAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSurveyID sets the "survey_id" field.
func (_u *InternshipAnswerUpdate) SetSurveyID(v uuid.UUID) *InternshipAnswerUpdate {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *InternshipAnswerUpdate) SetNillableSurveyID(v *uuid.UUID) *InternshipAnswerUpdate {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *InternshipAnswerUpdate) SetQuestionID(v uuid.UUID) *InternshipAnswerUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *InternshipAnswerUpdate) SetNillableQuestionID(v *uuid.UUID) *InternshipAnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRatingValue sets the "rating_value" field.
func (_u *InternshipAnswerUpdate) SetRatingValue(v int) *InternshipAnswerUpdate {
	_u.mutation.ResetRatingValue()
	_u.mutation.SetRatingValue(v)
	return _u
}

// SetNillableRatingValue sets the "rating_value" field if the given value is not nil.
func (_u *InternshipAnswerUpdate) SetNillableRatingValue(v *int) *InternshipAnswerUpdate {
	if v != nil {
		_u.SetRatingValue(*v)
	}
	return _u
}

// AddRatingValue adds value to the "rating_value" field.
func (_u *InternshipAnswerUpdate) AddRatingValue(v int) *InternshipAnswerUpdate {
	_u.mutation.AddRatingValue(v)
	return _u
}

// ClearRatingValue clears the value of the "rating_value" field.
func (_u *InternshipAnswerUpdate) ClearRatingValue() *InternshipAnswerUpdate {
	_u.mutation.ClearRatingValue()
	return _u
}

// SetTextValue sets the "text_value" field.
func (_u *InternshipAnswerUpdate) SetTextValue(v string) *InternshipAnswerUpdate {
	_u.mutation.SetTextValue(v)
	return _u
}

// SetNillableTextValue sets the "text_value" field if the given value is not nil.
func (_u *InternshipAnswerUpdate) SetNillableTextValue(v *string) *InternshipAnswerUpdate {
	if v != nil {
		_u.SetTextValue(*v)
	}
	return _u
}

// ClearTextValue clears the value of the "text_value" field.
func (_u *InternshipAnswerUpdate) ClearTextValue() *InternshipAnswerUpdate {
	_u.mutation.ClearTextValue()
	return _u
}

// SetSurvey sets the "survey" edge to the InternshipSurvey entity.
func (_u *InternshipAnswerUpdate) SetSurvey(v *InternshipSurvey) *InternshipAnswerUpdate {
	return _u.SetSurveyID(v.ID)
}

// SetQuestion sets the "question" edge to the InternshipQuestion entity.
func (_u *InternshipAnswerUpdate) SetQuestion(v *InternshipQuestion) *InternshipAnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the InternshipAnswerMutation object of the builder.
func (_u *InternshipAnswerUpdate) Mutation() *InternshipAnswerMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the InternshipSurvey entity.
func (_u *InternshipAnswerUpdate) ClearSurvey() *InternshipAnswerUpdate {
	_u.mutation.ClearSurvey()
	return _u
}

// ClearQuestion clears the "question" edge to the InternshipQuestion entity.
func (_u *InternshipAnswerUpdate) ClearQuestion() *InternshipAnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InternshipAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternshipAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InternshipAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternshipAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternshipAnswerUpdate) check() error {
	if v, ok := _u.mutation.RatingValue(); ok {
		if err := internshipanswer.RatingValueValidator(v); err != nil {
			return &ValidationError{Name: "rating_value", err: fmt.Errorf(`repo: validator failed for field "InternshipAnswer.rating_value": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InternshipAnswer.survey"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InternshipAnswer.question"`)
	}
	return nil
}

func (_u *InternshipAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internshipanswer.Table, internshipanswer.Columns, sqlgraph.NewFieldSpec(internshipanswer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RatingValue(); ok {
		_spec.SetField(internshipanswer.FieldRatingValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingValue(); ok {
		_spec.AddField(internshipanswer.FieldRatingValue, field.TypeInt, value)
	}
	if _u.mutation.RatingValueCleared() {
		_spec.ClearField(internshipanswer.FieldRatingValue, field.TypeInt)
	}
	if value, ok := _u.mutation.TextValue(); ok {
		_spec.SetField(internshipanswer.FieldTextValue, field.TypeString, value)
	}
	if _u.mutation.TextValueCleared() {
		_spec.ClearField(internshipanswer.FieldTextValue, field.TypeString)
	}
	if _u.mutation.SurveyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internshipanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InternshipAnswerUpdateOne is the builder for updating a single InternshipAnswer entity.
type InternshipAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InternshipAnswerMutation
}

// SetSurveyID sets the "survey_id" field.
func (_u *InternshipAnswerUpdateOne) SetSurveyID(v uuid.UUID) *InternshipAnswerUpdateOne {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *InternshipAnswerUpdateOne) SetNillableSurveyID(v *uuid.UUID) *InternshipAnswerUpdateOne {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *InternshipAnswerUpdateOne) SetQuestionID(v uuid.UUID) *InternshipAnswerUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *InternshipAnswerUpdateOne) SetNillableQuestionID(v *uuid.UUID) *InternshipAnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRatingValue sets the "rating_value" field.
func (_u *InternshipAnswerUpdateOne) SetRatingValue(v int) *InternshipAnswerUpdateOne {
	_u.mutation.ResetRatingValue()
	_u.mutation.SetRatingValue(v)
	return _u
}

// SetNillableRatingValue sets the "rating_value" field if the given value is not nil.
func (_u *InternshipAnswerUpdateOne) SetNillableRatingValue(v *int) *InternshipAnswerUpdateOne {
	if v != nil {
		_u.SetRatingValue(*v)
	}
	return _u
}

// AddRatingValue adds value to the "rating_value" field.
func (_u *InternshipAnswerUpdateOne) AddRatingValue(v int) *InternshipAnswerUpdateOne {
	_u.mutation.AddRatingValue(v)
	return _u
}

// ClearRatingValue clears the value of the "rating_value" field.
func (_u *InternshipAnswerUpdateOne) ClearRatingValue() *InternshipAnswerUpdateOne {
	_u.mutation.ClearRatingValue()
	return _u
}

// SetTextValue sets the "text_value" field.
func (_u *InternshipAnswerUpdateOne) SetTextValue(v string) *InternshipAnswerUpdateOne {
	_u.mutation.SetTextValue(v)
	return _u
}

// SetNillableTextValue sets the "text_value" field if the given value is not nil.
func (_u *InternshipAnswerUpdateOne) SetNillableTextValue(v *string) *InternshipAnswerUpdateOne {
	if v != nil {
		_u.SetTextValue(*v)
	}
	return _u
}

// ClearTextValue clears the value of the "text_value" field.
func (_u *InternshipAnswerUpdateOne) ClearTextValue() *InternshipAnswerUpdateOne {
	_u.mutation.ClearTextValue()
	return _u
}

// SetSurvey sets the "survey" edge to the InternshipSurvey entity.
func (_u *InternshipAnswerUpdateOne) SetSurvey(v *InternshipSurvey) *InternshipAnswerUpdateOne {
	return _u.SetSurveyID(v.ID)
}

// SetQuestion sets the "question" edge to the InternshipQuestion entity.
func (_u *InternshipAnswerUpdateOne) SetQuestion(v *InternshipQuestion) *InternshipAnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the InternshipAnswerMutation object of the builder.
func (_u *InternshipAnswerUpdateOne) Mutation() *InternshipAnswerMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the InternshipSurvey entity.
func (_u *InternshipAnswerUpdateOne) ClearSurvey() *InternshipAnswerUpdateOne {
	_u.mutation.ClearSurvey()
	return _u
}

// ClearQuestion clears the "question" edge to the InternshipQuestion entity.
func (_u *InternshipAnswerUpdateOne) ClearQuestion() *InternshipAnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the InternshipAnswerUpdate builder.
func (_u *InternshipAnswerUpdateOne) Where(ps ...predicate.InternshipAnswer) *InternshipAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InternshipAnswerUpdateOne) Select(field string, fields ...string) *InternshipAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InternshipAnswer entity.
func (_u *InternshipAnswerUpdateOne) Save(ctx context.Context) (*InternshipAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternshipAnswerUpdateOne) SaveX(ctx context.Context) *InternshipAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InternshipAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternshipAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternshipAnswerUpdateOne) check() error {
	if v, ok := _u.mutation.RatingValue(); ok {
		if err := internshipanswer.RatingValueValidator(v); err != nil {
			return &ValidationError{Name: "rating_value", err: fmt.Errorf(`repo: validator failed for field "InternshipAnswer.rating_value": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InternshipAnswer.survey"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InternshipAnswer.question"`)
	}
	return nil
}

func (_u *InternshipAnswerUpdateOne) sqlSave(ctx context.Context) (_node *InternshipAnswer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internshipanswer.Table, internshipanswer.Columns, sqlgraph.NewFieldSpec(internshipanswer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InternshipAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, internshipanswer.FieldID)
		for _, f := range fields {
			if !internshipanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != internshipanswer.FieldID {
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
		_spec.SetField(internshipanswer.FieldRatingValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingValue(); ok {
		_spec.AddField(internshipanswer.FieldRatingValue, field.TypeInt, value)
	}
	if _u.mutation.RatingValueCleared() {
		_spec.ClearField(internshipanswer.FieldRatingValue, field.TypeInt)
	}
	if value, ok := _u.mutation.TextValue(); ok {
		_spec.SetField(internshipanswer.FieldTextValue, field.TypeString, value)
	}
	if _u.mutation.TextValueCleared() {
		_spec.ClearField(internshipanswer.FieldTextValue, field.TypeString)
	}
	if _u.mutation.SurveyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InternshipAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internshipanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
