// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/answer"
	"github.com/yalgashev/survey/internal/repo/department"
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/predicate"
	"github.com/yalgashev/survey/internal/repo/professor"
	"github.com/yalgashev/survey/internal/repo/question"
	"github.com/yalgashev/survey/internal/repo/school"
	"github.com/yalgashev/survey/internal/repo/survey"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer             = "Answer"
	TypeDepartment         = "Department"
	TypeGroup              = "Group"
	TypeGroupProfessor     = "GroupProfessor"
	TypeInternshipAnswer   = "InternshipAnswer"
	TypeInternshipQuestion = "InternshipQuestion"
	TypeInternshipSurvey   = "InternshipSurvey"
	TypeProfessor          = "Professor"
	TypeQuestion           = "Question"
	TypeSchool             = "School"
	TypeSurvey             = "Survey"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	rating_value    *int
	addrating_value *int
	text_value      *string
	clearedFields   map[string]struct{}
	survey          *uuid.UUID
	clearedsurvey   bool
	question        *uuid.UUID
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*Answer, error)
	predicates      []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id uuid.UUID) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Answer entities.
func (m *AnswerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSurveyID sets the "survey_id" field.
func (m *AnswerMutation) SetSurveyID(u uuid.UUID) {
	m.survey = &u
}

// SurveyID returns the value of the "survey_id" field in the mutation.
func (m *AnswerMutation) SurveyID() (r uuid.UUID, exists bool) {
	v := m.survey
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyID returns the old "survey_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSurveyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyID: %w", err)
	}
	return oldValue.SurveyID, nil
}

// ResetSurveyID resets all changes to the "survey_id" field.
func (m *AnswerMutation) ResetSurveyID() {
	m.survey = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerMutation) ResetQuestionID() {
	m.question = nil
}

// SetRatingValue sets the "rating_value" field.
func (m *AnswerMutation) SetRatingValue(i int) {
	m.rating_value = &i
	m.addrating_value = nil
}

// RatingValue returns the value of the "rating_value" field in the mutation.
func (m *AnswerMutation) RatingValue() (r int, exists bool) {
	v := m.rating_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingValue returns the old "rating_value" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldRatingValue(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingValue: %w", err)
	}
	return oldValue.RatingValue, nil
}

// AddRatingValue adds i to the "rating_value" field.
func (m *AnswerMutation) AddRatingValue(i int) {
	if m.addrating_value != nil {
		*m.addrating_value += i
	} else {
		m.addrating_value = &i
	}
}

// AddedRatingValue returns the value that was added to the "rating_value" field in this mutation.
func (m *AnswerMutation) AddedRatingValue() (r int, exists bool) {
	v := m.addrating_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearRatingValue clears the value of the "rating_value" field.
func (m *AnswerMutation) ClearRatingValue() {
	m.rating_value = nil
	m.addrating_value = nil
	m.clearedFields[answer.FieldRatingValue] = struct{}{}
}

// RatingValueCleared returns if the "rating_value" field was cleared in this mutation.
func (m *AnswerMutation) RatingValueCleared() bool {
	_, ok := m.clearedFields[answer.FieldRatingValue]
	return ok
}

// ResetRatingValue resets all changes to the "rating_value" field.
func (m *AnswerMutation) ResetRatingValue() {
	m.rating_value = nil
	m.addrating_value = nil
	delete(m.clearedFields, answer.FieldRatingValue)
}

// SetTextValue sets the "text_value" field.
func (m *AnswerMutation) SetTextValue(s string) {
	m.text_value = &s
}

// TextValue returns the value of the "text_value" field in the mutation.
func (m *AnswerMutation) TextValue() (r string, exists bool) {
	v := m.text_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTextValue returns the old "text_value" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldTextValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextValue: %w", err)
	}
	return oldValue.TextValue, nil
}

// ClearTextValue clears the value of the "text_value" field.
func (m *AnswerMutation) ClearTextValue() {
	m.text_value = nil
	m.clearedFields[answer.FieldTextValue] = struct{}{}
}

// TextValueCleared returns if the "text_value" field was cleared in this mutation.
func (m *AnswerMutation) TextValueCleared() bool {
	_, ok := m.clearedFields[answer.FieldTextValue]
	return ok
}

// ResetTextValue resets all changes to the "text_value" field.
func (m *AnswerMutation) ResetTextValue() {
	m.text_value = nil
	delete(m.clearedFields, answer.FieldTextValue)
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (m *AnswerMutation) ClearSurvey() {
	m.clearedsurvey = true
	m.clearedFields[answer.FieldSurveyID] = struct{}{}
}

// SurveyCleared reports if the "survey" edge to the Survey entity was cleared.
func (m *AnswerMutation) SurveyCleared() bool {
	return m.clearedsurvey
}

// SurveyIDs returns the "survey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurveyID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) SurveyIDs() (ids []uuid.UUID) {
	if id := m.survey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvey resets all changes to the "survey" edge.
func (m *AnswerMutation) ResetSurvey() {
	m.survey = nil
	m.clearedsurvey = false
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AnswerMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[answer.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AnswerMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.survey != nil {
		fields = append(fields, answer.FieldSurveyID)
	}
	if m.question != nil {
		fields = append(fields, answer.FieldQuestionID)
	}
	if m.rating_value != nil {
		fields = append(fields, answer.FieldRatingValue)
	}
	if m.text_value != nil {
		fields = append(fields, answer.FieldTextValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldSurveyID:
		return m.SurveyID()
	case answer.FieldQuestionID:
		return m.QuestionID()
	case answer.FieldRatingValue:
		return m.RatingValue()
	case answer.FieldTextValue:
		return m.TextValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldSurveyID:
		return m.OldSurveyID(ctx)
	case answer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answer.FieldRatingValue:
		return m.OldRatingValue(ctx)
	case answer.FieldTextValue:
		return m.OldTextValue(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldSurveyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyID(v)
		return nil
	case answer.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answer.FieldRatingValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingValue(v)
		return nil
	case answer.FieldTextValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextValue(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addrating_value != nil {
		fields = append(fields, answer.FieldRatingValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldRatingValue:
		return m.AddedRatingValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldRatingValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingValue(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answer.FieldRatingValue) {
		fields = append(fields, answer.FieldRatingValue)
	}
	if m.FieldCleared(answer.FieldTextValue) {
		fields = append(fields, answer.FieldTextValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	switch name {
	case answer.FieldRatingValue:
		m.ClearRatingValue()
		return nil
	case answer.FieldTextValue:
		m.ClearTextValue()
		return nil
	}
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldSurveyID:
		m.ResetSurveyID()
		return nil
	case answer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answer.FieldRatingValue:
		m.ResetRatingValue()
		return nil
	case answer.FieldTextValue:
		m.ResetTextValue()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.survey != nil {
		edges = append(edges, answer.EdgeSurvey)
	}
	if m.question != nil {
		edges = append(edges, answer.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeSurvey:
		if id := m.survey; id != nil {
			return []ent.Value{*id}
		}
	case answer.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsurvey {
		edges = append(edges, answer.EdgeSurvey)
	}
	if m.clearedquestion {
		edges = append(edges, answer.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeSurvey:
		return m.clearedsurvey
	case answer.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeSurvey:
		m.ClearSurvey()
		return nil
	case answer.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeSurvey:
		m.ResetSurvey()
		return nil
	case answer.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// DepartmentMutation represents an operation that mutates the Department nodes in the graph.
type DepartmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	code          *string
	description   *string
	clearedFields map[string]struct{}
	school        *uuid.UUID
	clearedschool bool
	groups        map[uuid.UUID]struct{}
	removedgroups map[uuid.UUID]struct{}
	clearedgroups bool
	done          bool
	oldValue      func(context.Context) (*Department, error)
	predicates    []predicate.Department
}

var _ ent.Mutation = (*DepartmentMutation)(nil)

// departmentOption allows management of the mutation configuration using functional options.
type departmentOption func(*DepartmentMutation)

// newDepartmentMutation creates new mutation for the Department entity.
func newDepartmentMutation(c config, op Op, opts ...departmentOption) *DepartmentMutation {
	m := &DepartmentMutation{
		config:        c,
		op:            op,
		typ:           TypeDepartment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDepartmentID sets the ID field of the mutation.
func withDepartmentID(id uuid.UUID) departmentOption {
	return func(m *DepartmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Department
		)
		m.oldValue = func(ctx context.Context) (*Department, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Department.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDepartment sets the old Department of the mutation.
func withDepartment(node *Department) departmentOption {
	return func(m *DepartmentMutation) {
		m.oldValue = func(context.Context) (*Department, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DepartmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DepartmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Department entities.
func (m *DepartmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DepartmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DepartmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Department.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DepartmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DepartmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DepartmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DepartmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DepartmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DepartmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSchoolID sets the "school_id" field.
func (m *DepartmentMutation) SetSchoolID(u uuid.UUID) {
	m.school = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *DepartmentMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *DepartmentMutation) ResetSchoolID() {
	m.school = nil
}

// SetName sets the "name" field.
func (m *DepartmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DepartmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DepartmentMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *DepartmentMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *DepartmentMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *DepartmentMutation) ResetCode() {
	m.code = nil
}

// SetDescription sets the "description" field.
func (m *DepartmentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DepartmentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DepartmentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[department.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DepartmentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[department.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DepartmentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, department.FieldDescription)
}

// ClearSchool clears the "school" edge to the School entity.
func (m *DepartmentMutation) ClearSchool() {
	m.clearedschool = true
	m.clearedFields[department.FieldSchoolID] = struct{}{}
}

// SchoolCleared reports if the "school" edge to the School entity was cleared.
func (m *DepartmentMutation) SchoolCleared() bool {
	return m.clearedschool
}

// SchoolIDs returns the "school" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SchoolID instead. It exists only for internal usage by the builders.
func (m *DepartmentMutation) SchoolIDs() (ids []uuid.UUID) {
	if id := m.school; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchool resets all changes to the "school" edge.
func (m *DepartmentMutation) ResetSchool() {
	m.school = nil
	m.clearedschool = false
}

// AddGroupIDs adds the "groups" edge to the Group entity by ids.
func (m *DepartmentMutation) AddGroupIDs(ids ...uuid.UUID) {
	if m.groups == nil {
		m.groups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the Group entity.
func (m *DepartmentMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the Group entity was cleared.
func (m *DepartmentMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the Group entity by IDs.
func (m *DepartmentMutation) RemoveGroupIDs(ids ...uuid.UUID) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the Group entity.
func (m *DepartmentMutation) RemovedGroupsIDs() (ids []uuid.UUID) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *DepartmentMutation) GroupsIDs() (ids []uuid.UUID) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *DepartmentMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// Where appends a list predicates to the DepartmentMutation builder.
func (m *DepartmentMutation) Where(ps ...predicate.Department) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DepartmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DepartmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Department, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DepartmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DepartmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Department).
func (m *DepartmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DepartmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, department.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, department.FieldUpdatedAt)
	}
	if m.school != nil {
		fields = append(fields, department.FieldSchoolID)
	}
	if m.name != nil {
		fields = append(fields, department.FieldName)
	}
	if m.code != nil {
		fields = append(fields, department.FieldCode)
	}
	if m.description != nil {
		fields = append(fields, department.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DepartmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case department.FieldCreatedAt:
		return m.CreatedAt()
	case department.FieldUpdatedAt:
		return m.UpdatedAt()
	case department.FieldSchoolID:
		return m.SchoolID()
	case department.FieldName:
		return m.Name()
	case department.FieldCode:
		return m.Code()
	case department.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DepartmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case department.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case department.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case department.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case department.FieldName:
		return m.OldName(ctx)
	case department.FieldCode:
		return m.OldCode(ctx)
	case department.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Department field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case department.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case department.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case department.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case department.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case department.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case department.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DepartmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DepartmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Department numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DepartmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(department.FieldDescription) {
		fields = append(fields, department.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DepartmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DepartmentMutation) ClearField(name string) error {
	switch name {
	case department.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Department nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DepartmentMutation) ResetField(name string) error {
	switch name {
	case department.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case department.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case department.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case department.FieldName:
		m.ResetName()
		return nil
	case department.FieldCode:
		m.ResetCode()
		return nil
	case department.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DepartmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.school != nil {
		edges = append(edges, department.EdgeSchool)
	}
	if m.groups != nil {
		edges = append(edges, department.EdgeGroups)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DepartmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case department.EdgeSchool:
		if id := m.school; id != nil {
			return []ent.Value{*id}
		}
	case department.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DepartmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedgroups != nil {
		edges = append(edges, department.EdgeGroups)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DepartmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case department.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DepartmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedschool {
		edges = append(edges, department.EdgeSchool)
	}
	if m.clearedgroups {
		edges = append(edges, department.EdgeGroups)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DepartmentMutation) EdgeCleared(name string) bool {
	switch name {
	case department.EdgeSchool:
		return m.clearedschool
	case department.EdgeGroups:
		return m.clearedgroups
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DepartmentMutation) ClearEdge(name string) error {
	switch name {
	case department.EdgeSchool:
		m.ClearSchool()
		return nil
	}
	return fmt.Errorf("unknown Department unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DepartmentMutation) ResetEdge(name string) error {
	switch name {
	case department.EdgeSchool:
		m.ResetSchool()
		return nil
	case department.EdgeGroups:
		m.ResetGroups()
		return nil
	}
	return fmt.Errorf("unknown Department edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	updated_at                *time.Time
	name                      *string
	semester                  *int
	addsemester               *int
	total_students            *int
	addtotal_students         *int
	participated_students     *int
	addparticipated_students  *int
	clearedFields             map[string]struct{}
	department                *uuid.UUID
	cleareddepartment         bool
	assignments               map[uuid.UUID]struct{}
	removedassignments        map[uuid.UUID]struct{}
	clearedassignments        bool
	surveys                   map[uuid.UUID]struct{}
	removedsurveys            map[uuid.UUID]struct{}
	clearedsurveys            bool
	internship_surveys        map[uuid.UUID]struct{}
	removedinternship_surveys map[uuid.UUID]struct{}
	clearedinternship_surveys bool
	done                      bool
	oldValue                  func(context.Context) (*Group, error)
	predicates                []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id uuid.UUID) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// SetDepartmentID sets the "department_id" field.
func (m *GroupMutation) SetDepartmentID(u uuid.UUID) {
	m.department = &u
}

// DepartmentID returns the value of the "department_id" field in the mutation.
func (m *GroupMutation) DepartmentID() (r uuid.UUID, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartmentID returns the old "department_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldDepartmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartmentID: %w", err)
	}
	return oldValue.DepartmentID, nil
}

// ResetDepartmentID resets all changes to the "department_id" field.
func (m *GroupMutation) ResetDepartmentID() {
	m.department = nil
}

// SetSemester sets the "semester" field.
func (m *GroupMutation) SetSemester(i int) {
	m.semester = &i
	m.addsemester = nil
}

// Semester returns the value of the "semester" field in the mutation.
func (m *GroupMutation) Semester() (r int, exists bool) {
	v := m.semester
	if v == nil {
		return
	}
	return *v, true
}

// OldSemester returns the old "semester" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldSemester(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemester: %w", err)
	}
	return oldValue.Semester, nil
}

// AddSemester adds i to the "semester" field.
func (m *GroupMutation) AddSemester(i int) {
	if m.addsemester != nil {
		*m.addsemester += i
	} else {
		m.addsemester = &i
	}
}

// AddedSemester returns the value that was added to the "semester" field in this mutation.
func (m *GroupMutation) AddedSemester() (r int, exists bool) {
	v := m.addsemester
	if v == nil {
		return
	}
	return *v, true
}

// ResetSemester resets all changes to the "semester" field.
func (m *GroupMutation) ResetSemester() {
	m.semester = nil
	m.addsemester = nil
}

// SetTotalStudents sets the "total_students" field.
func (m *GroupMutation) SetTotalStudents(i int) {
	m.total_students = &i
	m.addtotal_students = nil
}

// TotalStudents returns the value of the "total_students" field in the mutation.
func (m *GroupMutation) TotalStudents() (r int, exists bool) {
	v := m.total_students
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalStudents returns the old "total_students" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldTotalStudents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalStudents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalStudents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalStudents: %w", err)
	}
	return oldValue.TotalStudents, nil
}

// AddTotalStudents adds i to the "total_students" field.
func (m *GroupMutation) AddTotalStudents(i int) {
	if m.addtotal_students != nil {
		*m.addtotal_students += i
	} else {
		m.addtotal_students = &i
	}
}

// AddedTotalStudents returns the value that was added to the "total_students" field in this mutation.
func (m *GroupMutation) AddedTotalStudents() (r int, exists bool) {
	v := m.addtotal_students
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalStudents resets all changes to the "total_students" field.
func (m *GroupMutation) ResetTotalStudents() {
	m.total_students = nil
	m.addtotal_students = nil
}

// SetParticipatedStudents sets the "participated_students" field.
func (m *GroupMutation) SetParticipatedStudents(i int) {
	m.participated_students = &i
	m.addparticipated_students = nil
}

// ParticipatedStudents returns the value of the "participated_students" field in the mutation.
func (m *GroupMutation) ParticipatedStudents() (r int, exists bool) {
	v := m.participated_students
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipatedStudents returns the old "participated_students" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldParticipatedStudents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipatedStudents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipatedStudents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipatedStudents: %w", err)
	}
	return oldValue.ParticipatedStudents, nil
}

// AddParticipatedStudents adds i to the "participated_students" field.
func (m *GroupMutation) AddParticipatedStudents(i int) {
	if m.addparticipated_students != nil {
		*m.addparticipated_students += i
	} else {
		m.addparticipated_students = &i
	}
}

// AddedParticipatedStudents returns the value that was added to the "participated_students" field in this mutation.
func (m *GroupMutation) AddedParticipatedStudents() (r int, exists bool) {
	v := m.addparticipated_students
	if v == nil {
		return
	}
	return *v, true
}

// ResetParticipatedStudents resets all changes to the "participated_students" field.
func (m *GroupMutation) ResetParticipatedStudents() {
	m.participated_students = nil
	m.addparticipated_students = nil
}

// ClearDepartment clears the "department" edge to the Department entity.
func (m *GroupMutation) ClearDepartment() {
	m.cleareddepartment = true
	m.clearedFields[group.FieldDepartmentID] = struct{}{}
}

// DepartmentCleared reports if the "department" edge to the Department entity was cleared.
func (m *GroupMutation) DepartmentCleared() bool {
	return m.cleareddepartment
}

// DepartmentIDs returns the "department" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DepartmentID instead. It exists only for internal usage by the builders.
func (m *GroupMutation) DepartmentIDs() (ids []uuid.UUID) {
	if id := m.department; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDepartment resets all changes to the "department" edge.
func (m *GroupMutation) ResetDepartment() {
	m.department = nil
	m.cleareddepartment = false
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by ids.
func (m *GroupMutation) AddAssignmentIDs(ids ...uuid.UUID) {
	if m.assignments == nil {
		m.assignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the GroupProfessor entity.
func (m *GroupMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the GroupProfessor entity was cleared.
func (m *GroupMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the GroupProfessor entity by IDs.
func (m *GroupMutation) RemoveAssignmentIDs(ids ...uuid.UUID) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the GroupProfessor entity.
func (m *GroupMutation) RemovedAssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *GroupMutation) AssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *GroupMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by ids.
func (m *GroupMutation) AddSurveyIDs(ids ...uuid.UUID) {
	if m.surveys == nil {
		m.surveys = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.surveys[ids[i]] = struct{}{}
	}
}

// ClearSurveys clears the "surveys" edge to the Survey entity.
func (m *GroupMutation) ClearSurveys() {
	m.clearedsurveys = true
}

// SurveysCleared reports if the "surveys" edge to the Survey entity was cleared.
func (m *GroupMutation) SurveysCleared() bool {
	return m.clearedsurveys
}

// RemoveSurveyIDs removes the "surveys" edge to the Survey entity by IDs.
func (m *GroupMutation) RemoveSurveyIDs(ids ...uuid.UUID) {
	if m.removedsurveys == nil {
		m.removedsurveys = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.surveys, ids[i])
		m.removedsurveys[ids[i]] = struct{}{}
	}
}

// RemovedSurveys returns the removed IDs of the "surveys" edge to the Survey entity.
func (m *GroupMutation) RemovedSurveysIDs() (ids []uuid.UUID) {
	for id := range m.removedsurveys {
		ids = append(ids, id)
	}
	return
}

// SurveysIDs returns the "surveys" edge IDs in the mutation.
func (m *GroupMutation) SurveysIDs() (ids []uuid.UUID) {
	for id := range m.surveys {
		ids = append(ids, id)
	}
	return
}

// ResetSurveys resets all changes to the "surveys" edge.
func (m *GroupMutation) ResetSurveys() {
	m.surveys = nil
	m.clearedsurveys = false
	m.removedsurveys = nil
}

// AddInternshipSurveyIDs adds the "internship_surveys" edge to the InternshipSurvey entity by ids.
func (m *GroupMutation) AddInternshipSurveyIDs(ids ...uuid.UUID) {
	if m.internship_surveys == nil {
		m.internship_surveys = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.internship_surveys[ids[i]] = struct{}{}
	}
}

// ClearInternshipSurveys clears the "internship_surveys" edge to the InternshipSurvey entity.
func (m *GroupMutation) ClearInternshipSurveys() {
	m.clearedinternship_surveys = true
}

// InternshipSurveysCleared reports if the "internship_surveys" edge to the InternshipSurvey entity was cleared.
func (m *GroupMutation) InternshipSurveysCleared() bool {
	return m.clearedinternship_surveys
}

// RemoveInternshipSurveyIDs removes the "internship_surveys" edge to the InternshipSurvey entity by IDs.
func (m *GroupMutation) RemoveInternshipSurveyIDs(ids ...uuid.UUID) {
	if m.removedinternship_surveys == nil {
		m.removedinternship_surveys = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.internship_surveys, ids[i])
		m.removedinternship_surveys[ids[i]] = struct{}{}
	}
}

// RemovedInternshipSurveys returns the removed IDs of the "internship_surveys" edge to the InternshipSurvey entity.
func (m *GroupMutation) RemovedInternshipSurveysIDs() (ids []uuid.UUID) {
	for id := range m.removedinternship_surveys {
		ids = append(ids, id)
	}
	return
}

// InternshipSurveysIDs returns the "internship_surveys" edge IDs in the mutation.
func (m *GroupMutation) InternshipSurveysIDs() (ids []uuid.UUID) {
	for id := range m.internship_surveys {
		ids = append(ids, id)
	}
	return
}

// ResetInternshipSurveys resets all changes to the "internship_surveys" edge.
func (m *GroupMutation) ResetInternshipSurveys() {
	m.internship_surveys = nil
	m.clearedinternship_surveys = false
	m.removedinternship_surveys = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, group.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	if m.department != nil {
		fields = append(fields, group.FieldDepartmentID)
	}
	if m.semester != nil {
		fields = append(fields, group.FieldSemester)
	}
	if m.total_students != nil {
		fields = append(fields, group.FieldTotalStudents)
	}
	if m.participated_students != nil {
		fields = append(fields, group.FieldParticipatedStudents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldCreatedAt:
		return m.CreatedAt()
	case group.FieldUpdatedAt:
		return m.UpdatedAt()
	case group.FieldName:
		return m.Name()
	case group.FieldDepartmentID:
		return m.DepartmentID()
	case group.FieldSemester:
		return m.Semester()
	case group.FieldTotalStudents:
		return m.TotalStudents()
	case group.FieldParticipatedStudents:
		return m.ParticipatedStudents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case group.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case group.FieldName:
		return m.OldName(ctx)
	case group.FieldDepartmentID:
		return m.OldDepartmentID(ctx)
	case group.FieldSemester:
		return m.OldSemester(ctx)
	case group.FieldTotalStudents:
		return m.OldTotalStudents(ctx)
	case group.FieldParticipatedStudents:
		return m.OldParticipatedStudents(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case group.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case group.FieldDepartmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartmentID(v)
		return nil
	case group.FieldSemester:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemester(v)
		return nil
	case group.FieldTotalStudents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalStudents(v)
		return nil
	case group.FieldParticipatedStudents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipatedStudents(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	var fields []string
	if m.addsemester != nil {
		fields = append(fields, group.FieldSemester)
	}
	if m.addtotal_students != nil {
		fields = append(fields, group.FieldTotalStudents)
	}
	if m.addparticipated_students != nil {
		fields = append(fields, group.FieldParticipatedStudents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case group.FieldSemester:
		return m.AddedSemester()
	case group.FieldTotalStudents:
		return m.AddedTotalStudents()
	case group.FieldParticipatedStudents:
		return m.AddedParticipatedStudents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case group.FieldSemester:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSemester(v)
		return nil
	case group.FieldTotalStudents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalStudents(v)
		return nil
	case group.FieldParticipatedStudents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParticipatedStudents(v)
		return nil
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case group.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case group.FieldName:
		m.ResetName()
		return nil
	case group.FieldDepartmentID:
		m.ResetDepartmentID()
		return nil
	case group.FieldSemester:
		m.ResetSemester()
		return nil
	case group.FieldTotalStudents:
		m.ResetTotalStudents()
		return nil
	case group.FieldParticipatedStudents:
		m.ResetParticipatedStudents()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.department != nil {
		edges = append(edges, group.EdgeDepartment)
	}
	if m.assignments != nil {
		edges = append(edges, group.EdgeAssignments)
	}
	if m.surveys != nil {
		edges = append(edges, group.EdgeSurveys)
	}
	if m.internship_surveys != nil {
		edges = append(edges, group.EdgeInternshipSurveys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeDepartment:
		if id := m.department; id != nil {
			return []ent.Value{*id}
		}
	case group.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeSurveys:
		ids := make([]ent.Value, 0, len(m.surveys))
		for id := range m.surveys {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeInternshipSurveys:
		ids := make([]ent.Value, 0, len(m.internship_surveys))
		for id := range m.internship_surveys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedassignments != nil {
		edges = append(edges, group.EdgeAssignments)
	}
	if m.removedsurveys != nil {
		edges = append(edges, group.EdgeSurveys)
	}
	if m.removedinternship_surveys != nil {
		edges = append(edges, group.EdgeInternshipSurveys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeSurveys:
		ids := make([]ent.Value, 0, len(m.removedsurveys))
		for id := range m.removedsurveys {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeInternshipSurveys:
		ids := make([]ent.Value, 0, len(m.removedinternship_surveys))
		for id := range m.removedinternship_surveys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareddepartment {
		edges = append(edges, group.EdgeDepartment)
	}
	if m.clearedassignments {
		edges = append(edges, group.EdgeAssignments)
	}
	if m.clearedsurveys {
		edges = append(edges, group.EdgeSurveys)
	}
	if m.clearedinternship_surveys {
		edges = append(edges, group.EdgeInternshipSurveys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeDepartment:
		return m.cleareddepartment
	case group.EdgeAssignments:
		return m.clearedassignments
	case group.EdgeSurveys:
		return m.clearedsurveys
	case group.EdgeInternshipSurveys:
		return m.clearedinternship_surveys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	case group.EdgeDepartment:
		m.ClearDepartment()
		return nil
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeDepartment:
		m.ResetDepartment()
		return nil
	case group.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case group.EdgeSurveys:
		m.ResetSurveys()
		return nil
	case group.EdgeInternshipSurveys:
		m.ResetInternshipSurveys()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// GroupProfessorMutation represents an operation that mutates the GroupProfessor nodes in the graph.
type GroupProfessorMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	clearedFields    map[string]struct{}
	group            *uuid.UUID
	clearedgroup     bool
	professor        *uuid.UUID
	clearedprofessor bool
	done             bool
	oldValue         func(context.Context) (*GroupProfessor, error)
	predicates       []predicate.GroupProfessor
}

var _ ent.Mutation = (*GroupProfessorMutation)(nil)

// groupprofessorOption allows management of the mutation configuration using functional options.
type groupprofessorOption func(*GroupProfessorMutation)

// newGroupProfessorMutation creates new mutation for the GroupProfessor entity.
func newGroupProfessorMutation(c config, op Op, opts ...groupprofessorOption) *GroupProfessorMutation {
	m := &GroupProfessorMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupProfessor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupProfessorID sets the ID field of the mutation.
func withGroupProfessorID(id uuid.UUID) groupprofessorOption {
	return func(m *GroupProfessorMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupProfessor
		)
		m.oldValue = func(ctx context.Context) (*GroupProfessor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupProfessor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupProfessor sets the old GroupProfessor of the mutation.
func withGroupProfessor(node *GroupProfessor) groupprofessorOption {
	return func(m *GroupProfessorMutation) {
		m.oldValue = func(context.Context) (*GroupProfessor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupProfessorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupProfessorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GroupProfessor entities.
func (m *GroupProfessorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupProfessorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupProfessorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupProfessor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupProfessorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupProfessorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GroupProfessor entity.
// If the GroupProfessor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupProfessorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupProfessorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGroupID sets the "group_id" field.
func (m *GroupProfessorMutation) SetGroupID(u uuid.UUID) {
	m.group = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupProfessorMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupProfessor entity.
// If the GroupProfessor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupProfessorMutation) OldGroupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupProfessorMutation) ResetGroupID() {
	m.group = nil
}

// SetProfessorID sets the "professor_id" field.
func (m *GroupProfessorMutation) SetProfessorID(u uuid.UUID) {
	m.professor = &u
}

// ProfessorID returns the value of the "professor_id" field in the mutation.
func (m *GroupProfessorMutation) ProfessorID() (r uuid.UUID, exists bool) {
	v := m.professor
	if v == nil {
		return
	}
	return *v, true
}

// OldProfessorID returns the old "professor_id" field's value of the GroupProfessor entity.
// If the GroupProfessor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupProfessorMutation) OldProfessorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfessorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfessorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfessorID: %w", err)
	}
	return oldValue.ProfessorID, nil
}

// ResetProfessorID resets all changes to the "professor_id" field.
func (m *GroupProfessorMutation) ResetProfessorID() {
	m.professor = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *GroupProfessorMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[groupprofessor.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *GroupProfessorMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *GroupProfessorMutation) GroupIDs() (ids []uuid.UUID) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *GroupProfessorMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// ClearProfessor clears the "professor" edge to the Professor entity.
func (m *GroupProfessorMutation) ClearProfessor() {
	m.clearedprofessor = true
	m.clearedFields[groupprofessor.FieldProfessorID] = struct{}{}
}

// ProfessorCleared reports if the "professor" edge to the Professor entity was cleared.
func (m *GroupProfessorMutation) ProfessorCleared() bool {
	return m.clearedprofessor
}

// ProfessorIDs returns the "professor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfessorID instead. It exists only for internal usage by the builders.
func (m *GroupProfessorMutation) ProfessorIDs() (ids []uuid.UUID) {
	if id := m.professor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfessor resets all changes to the "professor" edge.
func (m *GroupProfessorMutation) ResetProfessor() {
	m.professor = nil
	m.clearedprofessor = false
}

// Where appends a list predicates to the GroupProfessorMutation builder.
func (m *GroupProfessorMutation) Where(ps ...predicate.GroupProfessor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupProfessorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupProfessorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupProfessor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupProfessorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupProfessorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupProfessor).
func (m *GroupProfessorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupProfessorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, groupprofessor.FieldCreatedAt)
	}
	if m.group != nil {
		fields = append(fields, groupprofessor.FieldGroupID)
	}
	if m.professor != nil {
		fields = append(fields, groupprofessor.FieldProfessorID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupProfessorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupprofessor.FieldCreatedAt:
		return m.CreatedAt()
	case groupprofessor.FieldGroupID:
		return m.GroupID()
	case groupprofessor.FieldProfessorID:
		return m.ProfessorID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupProfessorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupprofessor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case groupprofessor.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupprofessor.FieldProfessorID:
		return m.OldProfessorID(ctx)
	}
	return nil, fmt.Errorf("unknown GroupProfessor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupProfessorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupprofessor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case groupprofessor.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupprofessor.FieldProfessorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfessorID(v)
		return nil
	}
	return fmt.Errorf("unknown GroupProfessor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupProfessorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupProfessorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupProfessorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupProfessor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupProfessorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupProfessorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupProfessorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupProfessor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupProfessorMutation) ResetField(name string) error {
	switch name {
	case groupprofessor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case groupprofessor.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupprofessor.FieldProfessorID:
		m.ResetProfessorID()
		return nil
	}
	return fmt.Errorf("unknown GroupProfessor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupProfessorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.group != nil {
		edges = append(edges, groupprofessor.EdgeGroup)
	}
	if m.professor != nil {
		edges = append(edges, groupprofessor.EdgeProfessor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupProfessorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case groupprofessor.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case groupprofessor.EdgeProfessor:
		if id := m.professor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupProfessorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupProfessorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupProfessorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgroup {
		edges = append(edges, groupprofessor.EdgeGroup)
	}
	if m.clearedprofessor {
		edges = append(edges, groupprofessor.EdgeProfessor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupProfessorMutation) EdgeCleared(name string) bool {
	switch name {
	case groupprofessor.EdgeGroup:
		return m.clearedgroup
	case groupprofessor.EdgeProfessor:
		return m.clearedprofessor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupProfessorMutation) ClearEdge(name string) error {
	switch name {
	case groupprofessor.EdgeGroup:
		m.ClearGroup()
		return nil
	case groupprofessor.EdgeProfessor:
		m.ClearProfessor()
		return nil
	}
	return fmt.Errorf("unknown GroupProfessor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupProfessorMutation) ResetEdge(name string) error {
	switch name {
	case groupprofessor.EdgeGroup:
		m.ResetGroup()
		return nil
	case groupprofessor.EdgeProfessor:
		m.ResetProfessor()
		return nil
	}
	return fmt.Errorf("unknown GroupProfessor edge %s", name)
}

// InternshipAnswerMutation represents an operation that mutates the InternshipAnswer nodes in the graph.
type InternshipAnswerMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	rating_value    *int
	addrating_value *int
	text_value      *string
	clearedFields   map[string]struct{}
	survey          *uuid.UUID
	clearedsurvey   bool
	question        *uuid.UUID
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*InternshipAnswer, error)
	predicates      []predicate.InternshipAnswer
}

var _ ent.Mutation = (*InternshipAnswerMutation)(nil)

// internshipanswerOption allows management of the mutation configuration using functional options.
type internshipanswerOption func(*InternshipAnswerMutation)

// newInternshipAnswerMutation creates new mutation for the InternshipAnswer entity.
func newInternshipAnswerMutation(c config, op Op, opts ...internshipanswerOption) *InternshipAnswerMutation {
	m := &InternshipAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeInternshipAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInternshipAnswerID sets the ID field of the mutation.
func withInternshipAnswerID(id uuid.UUID) internshipanswerOption {
	return func(m *InternshipAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *InternshipAnswer
		)
		m.oldValue = func(ctx context.Context) (*InternshipAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InternshipAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInternshipAnswer sets the old InternshipAnswer of the mutation.
func withInternshipAnswer(node *InternshipAnswer) internshipanswerOption {
	return func(m *InternshipAnswerMutation) {
		m.oldValue = func(context.Context) (*InternshipAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InternshipAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InternshipAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InternshipAnswer entities.
func (m *InternshipAnswerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InternshipAnswerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InternshipAnswerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InternshipAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSurveyID sets the "survey_id" field.
func (m *InternshipAnswerMutation) SetSurveyID(u uuid.UUID) {
	m.survey = &u
}

// SurveyID returns the value of the "survey_id" field in the mutation.
func (m *InternshipAnswerMutation) SurveyID() (r uuid.UUID, exists bool) {
	v := m.survey
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyID returns the old "survey_id" field's value of the InternshipAnswer entity.
// If the InternshipAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipAnswerMutation) OldSurveyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyID: %w", err)
	}
	return oldValue.SurveyID, nil
}

// ResetSurveyID resets all changes to the "survey_id" field.
func (m *InternshipAnswerMutation) ResetSurveyID() {
	m.survey = nil
}

// SetQuestionID sets the "question_id" field.
func (m *InternshipAnswerMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *InternshipAnswerMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the InternshipAnswer entity.
// If the InternshipAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipAnswerMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *InternshipAnswerMutation) ResetQuestionID() {
	m.question = nil
}

// SetRatingValue sets the "rating_value" field.
func (m *InternshipAnswerMutation) SetRatingValue(i int) {
	m.rating_value = &i
	m.addrating_value = nil
}

// RatingValue returns the value of the "rating_value" field in the mutation.
func (m *InternshipAnswerMutation) RatingValue() (r int, exists bool) {
	v := m.rating_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingValue returns the old "rating_value" field's value of the InternshipAnswer entity.
// If the InternshipAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipAnswerMutation) OldRatingValue(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingValue: %w", err)
	}
	return oldValue.RatingValue, nil
}

// AddRatingValue adds i to the "rating_value" field.
func (m *InternshipAnswerMutation) AddRatingValue(i int) {
	if m.addrating_value != nil {
		*m.addrating_value += i
	} else {
		m.addrating_value = &i
	}
}

// AddedRatingValue returns the value that was added to the "rating_value" field in this mutation.
func (m *InternshipAnswerMutation) AddedRatingValue() (r int, exists bool) {
	v := m.addrating_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearRatingValue clears the value of the "rating_value" field.
func (m *InternshipAnswerMutation) ClearRatingValue() {
	m.rating_value = nil
	m.addrating_value = nil
	m.clearedFields[internshipanswer.FieldRatingValue] = struct{}{}
}

// RatingValueCleared returns if the "rating_value" field was cleared in this mutation.
func (m *InternshipAnswerMutation) RatingValueCleared() bool {
	_, ok := m.clearedFields[internshipanswer.FieldRatingValue]
	return ok
}

// ResetRatingValue resets all changes to the "rating_value" field.
func (m *InternshipAnswerMutation) ResetRatingValue() {
	m.rating_value = nil
	m.addrating_value = nil
	delete(m.clearedFields, internshipanswer.FieldRatingValue)
}

// SetTextValue sets the "text_value" field.
func (m *InternshipAnswerMutation) SetTextValue(s string) {
	m.text_value = &s
}

// TextValue returns the value of the "text_value" field in the mutation.
func (m *InternshipAnswerMutation) TextValue() (r string, exists bool) {
	v := m.text_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTextValue returns the old "text_value" field's value of the InternshipAnswer entity.
// If the InternshipAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipAnswerMutation) OldTextValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextValue: %w", err)
	}
	return oldValue.TextValue, nil
}

// ClearTextValue clears the value of the "text_value" field.
func (m *InternshipAnswerMutation) ClearTextValue() {
	m.text_value = nil
	m.clearedFields[internshipanswer.FieldTextValue] = struct{}{}
}

// TextValueCleared returns if the "text_value" field was cleared in this mutation.
func (m *InternshipAnswerMutation) TextValueCleared() bool {
	_, ok := m.clearedFields[internshipanswer.FieldTextValue]
	return ok
}

// ResetTextValue resets all changes to the "text_value" field.
func (m *InternshipAnswerMutation) ResetTextValue() {
	m.text_value = nil
	delete(m.clearedFields, internshipanswer.FieldTextValue)
}

// ClearSurvey clears the "survey" edge to the InternshipSurvey entity.
func (m *InternshipAnswerMutation) ClearSurvey() {
	m.clearedsurvey = true
	m.clearedFields[internshipanswer.FieldSurveyID] = struct{}{}
}

// SurveyCleared reports if the "survey" edge to the InternshipSurvey entity was cleared.
func (m *InternshipAnswerMutation) SurveyCleared() bool {
	return m.clearedsurvey
}

// SurveyIDs returns the "survey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurveyID instead. It exists only for internal usage by the builders.
func (m *InternshipAnswerMutation) SurveyIDs() (ids []uuid.UUID) {
	if id := m.survey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvey resets all changes to the "survey" edge.
func (m *InternshipAnswerMutation) ResetSurvey() {
	m.survey = nil
	m.clearedsurvey = false
}

// ClearQuestion clears the "question" edge to the InternshipQuestion entity.
func (m *InternshipAnswerMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[internshipanswer.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the InternshipQuestion entity was cleared.
func (m *InternshipAnswerMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *InternshipAnswerMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *InternshipAnswerMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the InternshipAnswerMutation builder.
func (m *InternshipAnswerMutation) Where(ps ...predicate.InternshipAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InternshipAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InternshipAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InternshipAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InternshipAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InternshipAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InternshipAnswer).
func (m *InternshipAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InternshipAnswerMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.survey != nil {
		fields = append(fields, internshipanswer.FieldSurveyID)
	}
	if m.question != nil {
		fields = append(fields, internshipanswer.FieldQuestionID)
	}
	if m.rating_value != nil {
		fields = append(fields, internshipanswer.FieldRatingValue)
	}
	if m.text_value != nil {
		fields = append(fields, internshipanswer.FieldTextValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InternshipAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case internshipanswer.FieldSurveyID:
		return m.SurveyID()
	case internshipanswer.FieldQuestionID:
		return m.QuestionID()
	case internshipanswer.FieldRatingValue:
		return m.RatingValue()
	case internshipanswer.FieldTextValue:
		return m.TextValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InternshipAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case internshipanswer.FieldSurveyID:
		return m.OldSurveyID(ctx)
	case internshipanswer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case internshipanswer.FieldRatingValue:
		return m.OldRatingValue(ctx)
	case internshipanswer.FieldTextValue:
		return m.OldTextValue(ctx)
	}
	return nil, fmt.Errorf("unknown InternshipAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternshipAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case internshipanswer.FieldSurveyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyID(v)
		return nil
	case internshipanswer.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case internshipanswer.FieldRatingValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingValue(v)
		return nil
	case internshipanswer.FieldTextValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextValue(v)
		return nil
	}
	return fmt.Errorf("unknown InternshipAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InternshipAnswerMutation) AddedFields() []string {
	var fields []string
	if m.addrating_value != nil {
		fields = append(fields, internshipanswer.FieldRatingValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InternshipAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case internshipanswer.FieldRatingValue:
		return m.AddedRatingValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternshipAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case internshipanswer.FieldRatingValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingValue(v)
		return nil
	}
	return fmt.Errorf("unknown InternshipAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InternshipAnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(internshipanswer.FieldRatingValue) {
		fields = append(fields, internshipanswer.FieldRatingValue)
	}
	if m.FieldCleared(internshipanswer.FieldTextValue) {
		fields = append(fields, internshipanswer.FieldTextValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InternshipAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InternshipAnswerMutation) ClearField(name string) error {
	switch name {
	case internshipanswer.FieldRatingValue:
		m.ClearRatingValue()
		return nil
	case internshipanswer.FieldTextValue:
		m.ClearTextValue()
		return nil
	}
	return fmt.Errorf("unknown InternshipAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InternshipAnswerMutation) ResetField(name string) error {
	switch name {
	case internshipanswer.FieldSurveyID:
		m.ResetSurveyID()
		return nil
	case internshipanswer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case internshipanswer.FieldRatingValue:
		m.ResetRatingValue()
		return nil
	case internshipanswer.FieldTextValue:
		m.ResetTextValue()
		return nil
	}
	return fmt.Errorf("unknown InternshipAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InternshipAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.survey != nil {
		edges = append(edges, internshipanswer.EdgeSurvey)
	}
	if m.question != nil {
		edges = append(edges, internshipanswer.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InternshipAnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case internshipanswer.EdgeSurvey:
		if id := m.survey; id != nil {
			return []ent.Value{*id}
		}
	case internshipanswer.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InternshipAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InternshipAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InternshipAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsurvey {
		edges = append(edges, internshipanswer.EdgeSurvey)
	}
	if m.clearedquestion {
		edges = append(edges, internshipanswer.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InternshipAnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case internshipanswer.EdgeSurvey:
		return m.clearedsurvey
	case internshipanswer.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InternshipAnswerMutation) ClearEdge(name string) error {
	switch name {
	case internshipanswer.EdgeSurvey:
		m.ClearSurvey()
		return nil
	case internshipanswer.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown InternshipAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InternshipAnswerMutation) ResetEdge(name string) error {
	switch name {
	case internshipanswer.EdgeSurvey:
		m.ResetSurvey()
		return nil
	case internshipanswer.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown InternshipAnswer edge %s", name)
}

// InternshipQuestionMutation represents an operation that mutates the InternshipQuestion nodes in the graph.
type InternshipQuestionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	text_en        *string
	text_uz        *string
	text_ru        *string
	question_type  *internshipquestion.QuestionType
	sort_order     *int
	addsort_order  *int
	is_active      *bool
	clearedFields  map[string]struct{}
	answers        map[uuid.UUID]struct{}
	removedanswers map[uuid.UUID]struct{}
	clearedanswers bool
	done           bool
	oldValue       func(context.Context) (*InternshipQuestion, error)
	predicates     []predicate.InternshipQuestion
}

var _ ent.Mutation = (*InternshipQuestionMutation)(nil)

// internshipquestionOption allows management of the mutation configuration using functional options.
type internshipquestionOption func(*InternshipQuestionMutation)

// newInternshipQuestionMutation creates new mutation for the InternshipQuestion entity.
func newInternshipQuestionMutation(c config, op Op, opts ...internshipquestionOption) *InternshipQuestionMutation {
	m := &InternshipQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeInternshipQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInternshipQuestionID sets the ID field of the mutation.
func withInternshipQuestionID(id uuid.UUID) internshipquestionOption {
	return func(m *InternshipQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *InternshipQuestion
		)
		m.oldValue = func(ctx context.Context) (*InternshipQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InternshipQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInternshipQuestion sets the old InternshipQuestion of the mutation.
func withInternshipQuestion(node *InternshipQuestion) internshipquestionOption {
	return func(m *InternshipQuestionMutation) {
		m.oldValue = func(context.Context) (*InternshipQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InternshipQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InternshipQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InternshipQuestion entities.
func (m *InternshipQuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InternshipQuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InternshipQuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InternshipQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InternshipQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InternshipQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InternshipQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InternshipQuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InternshipQuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InternshipQuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTextEn sets the "text_en" field.
func (m *InternshipQuestionMutation) SetTextEn(s string) {
	m.text_en = &s
}

// TextEn returns the value of the "text_en" field in the mutation.
func (m *InternshipQuestionMutation) TextEn() (r string, exists bool) {
	v := m.text_en
	if v == nil {
		return
	}
	return *v, true
}

// OldTextEn returns the old "text_en" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldTextEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextEn: %w", err)
	}
	return oldValue.TextEn, nil
}

// ResetTextEn resets all changes to the "text_en" field.
func (m *InternshipQuestionMutation) ResetTextEn() {
	m.text_en = nil
}

// SetTextUz sets the "text_uz" field.
func (m *InternshipQuestionMutation) SetTextUz(s string) {
	m.text_uz = &s
}

// TextUz returns the value of the "text_uz" field in the mutation.
func (m *InternshipQuestionMutation) TextUz() (r string, exists bool) {
	v := m.text_uz
	if v == nil {
		return
	}
	return *v, true
}

// OldTextUz returns the old "text_uz" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldTextUz(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextUz is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextUz requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextUz: %w", err)
	}
	return oldValue.TextUz, nil
}

// ResetTextUz resets all changes to the "text_uz" field.
func (m *InternshipQuestionMutation) ResetTextUz() {
	m.text_uz = nil
}

// SetTextRu sets the "text_ru" field.
func (m *InternshipQuestionMutation) SetTextRu(s string) {
	m.text_ru = &s
}

// TextRu returns the value of the "text_ru" field in the mutation.
func (m *InternshipQuestionMutation) TextRu() (r string, exists bool) {
	v := m.text_ru
	if v == nil {
		return
	}
	return *v, true
}

// OldTextRu returns the old "text_ru" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldTextRu(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextRu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextRu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextRu: %w", err)
	}
	return oldValue.TextRu, nil
}

// ResetTextRu resets all changes to the "text_ru" field.
func (m *InternshipQuestionMutation) ResetTextRu() {
	m.text_ru = nil
}

// SetQuestionType sets the "question_type" field.
func (m *InternshipQuestionMutation) SetQuestionType(it internshipquestion.QuestionType) {
	m.question_type = &it
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *InternshipQuestionMutation) QuestionType() (r internshipquestion.QuestionType, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldQuestionType(ctx context.Context) (v internshipquestion.QuestionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *InternshipQuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *InternshipQuestionMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *InternshipQuestionMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *InternshipQuestionMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *InternshipQuestionMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *InternshipQuestionMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetIsActive sets the "is_active" field.
func (m *InternshipQuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *InternshipQuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the InternshipQuestion entity.
// If the InternshipQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipQuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *InternshipQuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// AddAnswerIDs adds the "answers" edge to the InternshipAnswer entity by ids.
func (m *InternshipQuestionMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the InternshipAnswer entity.
func (m *InternshipQuestionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the InternshipAnswer entity was cleared.
func (m *InternshipQuestionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the InternshipAnswer entity by IDs.
func (m *InternshipQuestionMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the InternshipAnswer entity.
func (m *InternshipQuestionMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *InternshipQuestionMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *InternshipQuestionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the InternshipQuestionMutation builder.
func (m *InternshipQuestionMutation) Where(ps ...predicate.InternshipQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InternshipQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InternshipQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InternshipQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InternshipQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InternshipQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InternshipQuestion).
func (m *InternshipQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InternshipQuestionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, internshipquestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, internshipquestion.FieldUpdatedAt)
	}
	if m.text_en != nil {
		fields = append(fields, internshipquestion.FieldTextEn)
	}
	if m.text_uz != nil {
		fields = append(fields, internshipquestion.FieldTextUz)
	}
	if m.text_ru != nil {
		fields = append(fields, internshipquestion.FieldTextRu)
	}
	if m.question_type != nil {
		fields = append(fields, internshipquestion.FieldQuestionType)
	}
	if m.sort_order != nil {
		fields = append(fields, internshipquestion.FieldSortOrder)
	}
	if m.is_active != nil {
		fields = append(fields, internshipquestion.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InternshipQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case internshipquestion.FieldCreatedAt:
		return m.CreatedAt()
	case internshipquestion.FieldUpdatedAt:
		return m.UpdatedAt()
	case internshipquestion.FieldTextEn:
		return m.TextEn()
	case internshipquestion.FieldTextUz:
		return m.TextUz()
	case internshipquestion.FieldTextRu:
		return m.TextRu()
	case internshipquestion.FieldQuestionType:
		return m.QuestionType()
	case internshipquestion.FieldSortOrder:
		return m.SortOrder()
	case internshipquestion.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InternshipQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case internshipquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case internshipquestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case internshipquestion.FieldTextEn:
		return m.OldTextEn(ctx)
	case internshipquestion.FieldTextUz:
		return m.OldTextUz(ctx)
	case internshipquestion.FieldTextRu:
		return m.OldTextRu(ctx)
	case internshipquestion.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case internshipquestion.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case internshipquestion.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown InternshipQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternshipQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case internshipquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case internshipquestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case internshipquestion.FieldTextEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextEn(v)
		return nil
	case internshipquestion.FieldTextUz:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextUz(v)
		return nil
	case internshipquestion.FieldTextRu:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextRu(v)
		return nil
	case internshipquestion.FieldQuestionType:
		v, ok := value.(internshipquestion.QuestionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case internshipquestion.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case internshipquestion.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown InternshipQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InternshipQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, internshipquestion.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InternshipQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case internshipquestion.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternshipQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case internshipquestion.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown InternshipQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InternshipQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InternshipQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InternshipQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InternshipQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InternshipQuestionMutation) ResetField(name string) error {
	switch name {
	case internshipquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case internshipquestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case internshipquestion.FieldTextEn:
		m.ResetTextEn()
		return nil
	case internshipquestion.FieldTextUz:
		m.ResetTextUz()
		return nil
	case internshipquestion.FieldTextRu:
		m.ResetTextRu()
		return nil
	case internshipquestion.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case internshipquestion.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case internshipquestion.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown InternshipQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InternshipQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.answers != nil {
		edges = append(edges, internshipquestion.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InternshipQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case internshipquestion.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InternshipQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedanswers != nil {
		edges = append(edges, internshipquestion.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InternshipQuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case internshipquestion.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InternshipQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanswers {
		edges = append(edges, internshipquestion.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InternshipQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case internshipquestion.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InternshipQuestionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown InternshipQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InternshipQuestionMutation) ResetEdge(name string) error {
	switch name {
	case internshipquestion.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown InternshipQuestion edge %s", name)
}

// InternshipSurveyMutation represents an operation that mutates the InternshipSurvey nodes in the graph.
type InternshipSurveyMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	clearedFields  map[string]struct{}
	group          *uuid.UUID
	clearedgroup   bool
	answers        map[uuid.UUID]struct{}
	removedanswers map[uuid.UUID]struct{}
	clearedanswers bool
	done           bool
	oldValue       func(context.Context) (*InternshipSurvey, error)
	predicates     []predicate.InternshipSurvey
}

var _ ent.Mutation = (*InternshipSurveyMutation)(nil)

// internshipsurveyOption allows management of the mutation configuration using functional options.
type internshipsurveyOption func(*InternshipSurveyMutation)

// newInternshipSurveyMutation creates new mutation for the InternshipSurvey entity.
func newInternshipSurveyMutation(c config, op Op, opts ...internshipsurveyOption) *InternshipSurveyMutation {
	m := &InternshipSurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeInternshipSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInternshipSurveyID sets the ID field of the mutation.
func withInternshipSurveyID(id uuid.UUID) internshipsurveyOption {
	return func(m *InternshipSurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *InternshipSurvey
		)
		m.oldValue = func(ctx context.Context) (*InternshipSurvey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InternshipSurvey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInternshipSurvey sets the old InternshipSurvey of the mutation.
func withInternshipSurvey(node *InternshipSurvey) internshipsurveyOption {
	return func(m *InternshipSurveyMutation) {
		m.oldValue = func(context.Context) (*InternshipSurvey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InternshipSurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InternshipSurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InternshipSurvey entities.
func (m *InternshipSurveyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InternshipSurveyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InternshipSurveyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InternshipSurvey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InternshipSurveyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InternshipSurveyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InternshipSurvey entity.
// If the InternshipSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipSurveyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InternshipSurveyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGroupID sets the "group_id" field.
func (m *InternshipSurveyMutation) SetGroupID(u uuid.UUID) {
	m.group = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *InternshipSurveyMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the InternshipSurvey entity.
// If the InternshipSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternshipSurveyMutation) OldGroupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *InternshipSurveyMutation) ResetGroupID() {
	m.group = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *InternshipSurveyMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[internshipsurvey.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *InternshipSurveyMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *InternshipSurveyMutation) GroupIDs() (ids []uuid.UUID) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *InternshipSurveyMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// AddAnswerIDs adds the "answers" edge to the InternshipAnswer entity by ids.
func (m *InternshipSurveyMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the InternshipAnswer entity.
func (m *InternshipSurveyMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the InternshipAnswer entity was cleared.
func (m *InternshipSurveyMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the InternshipAnswer entity by IDs.
func (m *InternshipSurveyMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the InternshipAnswer entity.
func (m *InternshipSurveyMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *InternshipSurveyMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *InternshipSurveyMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the InternshipSurveyMutation builder.
func (m *InternshipSurveyMutation) Where(ps ...predicate.InternshipSurvey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InternshipSurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InternshipSurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InternshipSurvey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InternshipSurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InternshipSurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InternshipSurvey).
func (m *InternshipSurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InternshipSurveyMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.created_at != nil {
		fields = append(fields, internshipsurvey.FieldCreatedAt)
	}
	if m.group != nil {
		fields = append(fields, internshipsurvey.FieldGroupID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InternshipSurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case internshipsurvey.FieldCreatedAt:
		return m.CreatedAt()
	case internshipsurvey.FieldGroupID:
		return m.GroupID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InternshipSurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case internshipsurvey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case internshipsurvey.FieldGroupID:
		return m.OldGroupID(ctx)
	}
	return nil, fmt.Errorf("unknown InternshipSurvey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternshipSurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case internshipsurvey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case internshipsurvey.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	}
	return fmt.Errorf("unknown InternshipSurvey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InternshipSurveyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InternshipSurveyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternshipSurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InternshipSurvey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InternshipSurveyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InternshipSurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InternshipSurveyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InternshipSurvey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InternshipSurveyMutation) ResetField(name string) error {
	switch name {
	case internshipsurvey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case internshipsurvey.FieldGroupID:
		m.ResetGroupID()
		return nil
	}
	return fmt.Errorf("unknown InternshipSurvey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InternshipSurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.group != nil {
		edges = append(edges, internshipsurvey.EdgeGroup)
	}
	if m.answers != nil {
		edges = append(edges, internshipsurvey.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InternshipSurveyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case internshipsurvey.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case internshipsurvey.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InternshipSurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanswers != nil {
		edges = append(edges, internshipsurvey.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InternshipSurveyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case internshipsurvey.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InternshipSurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgroup {
		edges = append(edges, internshipsurvey.EdgeGroup)
	}
	if m.clearedanswers {
		edges = append(edges, internshipsurvey.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InternshipSurveyMutation) EdgeCleared(name string) bool {
	switch name {
	case internshipsurvey.EdgeGroup:
		return m.clearedgroup
	case internshipsurvey.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InternshipSurveyMutation) ClearEdge(name string) error {
	switch name {
	case internshipsurvey.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown InternshipSurvey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InternshipSurveyMutation) ResetEdge(name string) error {
	switch name {
	case internshipsurvey.EdgeGroup:
		m.ResetGroup()
		return nil
	case internshipsurvey.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown InternshipSurvey edge %s", name)
}

// ProfessorMutation represents an operation that mutates the Professor nodes in the graph.
type ProfessorMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	full_name          *string
	email              *string
	clearedFields      map[string]struct{}
	school             *uuid.UUID
	clearedschool      bool
	assignments        map[uuid.UUID]struct{}
	removedassignments map[uuid.UUID]struct{}
	clearedassignments bool
	surveys            map[uuid.UUID]struct{}
	removedsurveys     map[uuid.UUID]struct{}
	clearedsurveys     bool
	done               bool
	oldValue           func(context.Context) (*Professor, error)
	predicates         []predicate.Professor
}

var _ ent.Mutation = (*ProfessorMutation)(nil)

// professorOption allows management of the mutation configuration using functional options.
type professorOption func(*ProfessorMutation)

// newProfessorMutation creates new mutation for the Professor entity.
func newProfessorMutation(c config, op Op, opts ...professorOption) *ProfessorMutation {
	m := &ProfessorMutation{
		config:        c,
		op:            op,
		typ:           TypeProfessor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfessorID sets the ID field of the mutation.
func withProfessorID(id uuid.UUID) professorOption {
	return func(m *ProfessorMutation) {
		var (
			err   error
			once  sync.Once
			value *Professor
		)
		m.oldValue = func(ctx context.Context) (*Professor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Professor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfessor sets the old Professor of the mutation.
func withProfessor(node *Professor) professorOption {
	return func(m *ProfessorMutation) {
		m.oldValue = func(context.Context) (*Professor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfessorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfessorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Professor entities.
func (m *ProfessorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfessorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfessorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Professor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfessorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfessorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Professor entity.
// If the Professor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfessorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfessorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfessorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfessorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Professor entity.
// If the Professor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfessorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfessorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFullName sets the "full_name" field.
func (m *ProfessorMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ProfessorMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Professor entity.
// If the Professor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfessorMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ProfessorMutation) ResetFullName() {
	m.full_name = nil
}

// SetSchoolID sets the "school_id" field.
func (m *ProfessorMutation) SetSchoolID(u uuid.UUID) {
	m.school = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *ProfessorMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the Professor entity.
// If the Professor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfessorMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *ProfessorMutation) ResetSchoolID() {
	m.school = nil
}

// SetEmail sets the "email" field.
func (m *ProfessorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfessorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Professor entity.
// If the Professor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfessorMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProfessorMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[professor.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProfessorMutation) EmailCleared() bool {
	_, ok := m.clearedFields[professor.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfessorMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, professor.FieldEmail)
}

// ClearSchool clears the "school" edge to the School entity.
func (m *ProfessorMutation) ClearSchool() {
	m.clearedschool = true
	m.clearedFields[professor.FieldSchoolID] = struct{}{}
}

// SchoolCleared reports if the "school" edge to the School entity was cleared.
func (m *ProfessorMutation) SchoolCleared() bool {
	return m.clearedschool
}

// SchoolIDs returns the "school" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SchoolID instead. It exists only for internal usage by the builders.
func (m *ProfessorMutation) SchoolIDs() (ids []uuid.UUID) {
	if id := m.school; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchool resets all changes to the "school" edge.
func (m *ProfessorMutation) ResetSchool() {
	m.school = nil
	m.clearedschool = false
}

// AddAssignmentIDs adds the "assignments" edge to the GroupProfessor entity by ids.
func (m *ProfessorMutation) AddAssignmentIDs(ids ...uuid.UUID) {
	if m.assignments == nil {
		m.assignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the GroupProfessor entity.
func (m *ProfessorMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the GroupProfessor entity was cleared.
func (m *ProfessorMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the GroupProfessor entity by IDs.
func (m *ProfessorMutation) RemoveAssignmentIDs(ids ...uuid.UUID) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the GroupProfessor entity.
func (m *ProfessorMutation) RemovedAssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ProfessorMutation) AssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ProfessorMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by ids.
func (m *ProfessorMutation) AddSurveyIDs(ids ...uuid.UUID) {
	if m.surveys == nil {
		m.surveys = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.surveys[ids[i]] = struct{}{}
	}
}

// ClearSurveys clears the "surveys" edge to the Survey entity.
func (m *ProfessorMutation) ClearSurveys() {
	m.clearedsurveys = true
}

// SurveysCleared reports if the "surveys" edge to the Survey entity was cleared.
func (m *ProfessorMutation) SurveysCleared() bool {
	return m.clearedsurveys
}

// RemoveSurveyIDs removes the "surveys" edge to the Survey entity by IDs.
func (m *ProfessorMutation) RemoveSurveyIDs(ids ...uuid.UUID) {
	if m.removedsurveys == nil {
		m.removedsurveys = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.surveys, ids[i])
		m.removedsurveys[ids[i]] = struct{}{}
	}
}

// RemovedSurveys returns the removed IDs of the "surveys" edge to the Survey entity.
func (m *ProfessorMutation) RemovedSurveysIDs() (ids []uuid.UUID) {
	for id := range m.removedsurveys {
		ids = append(ids, id)
	}
	return
}

// SurveysIDs returns the "surveys" edge IDs in the mutation.
func (m *ProfessorMutation) SurveysIDs() (ids []uuid.UUID) {
	for id := range m.surveys {
		ids = append(ids, id)
	}
	return
}

// ResetSurveys resets all changes to the "surveys" edge.
func (m *ProfessorMutation) ResetSurveys() {
	m.surveys = nil
	m.clearedsurveys = false
	m.removedsurveys = nil
}

// Where appends a list predicates to the ProfessorMutation builder.
func (m *ProfessorMutation) Where(ps ...predicate.Professor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfessorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfessorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Professor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfessorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfessorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Professor).
func (m *ProfessorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfessorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, professor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, professor.FieldUpdatedAt)
	}
	if m.full_name != nil {
		fields = append(fields, professor.FieldFullName)
	}
	if m.school != nil {
		fields = append(fields, professor.FieldSchoolID)
	}
	if m.email != nil {
		fields = append(fields, professor.FieldEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfessorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case professor.FieldCreatedAt:
		return m.CreatedAt()
	case professor.FieldUpdatedAt:
		return m.UpdatedAt()
	case professor.FieldFullName:
		return m.FullName()
	case professor.FieldSchoolID:
		return m.SchoolID()
	case professor.FieldEmail:
		return m.Email()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfessorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case professor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case professor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case professor.FieldFullName:
		return m.OldFullName(ctx)
	case professor.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case professor.FieldEmail:
		return m.OldEmail(ctx)
	}
	return nil, fmt.Errorf("unknown Professor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfessorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case professor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case professor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case professor.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case professor.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case professor.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	}
	return fmt.Errorf("unknown Professor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfessorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfessorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfessorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Professor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfessorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(professor.FieldEmail) {
		fields = append(fields, professor.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfessorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfessorMutation) ClearField(name string) error {
	switch name {
	case professor.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Professor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfessorMutation) ResetField(name string) error {
	switch name {
	case professor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case professor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case professor.FieldFullName:
		m.ResetFullName()
		return nil
	case professor.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case professor.FieldEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown Professor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfessorMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.school != nil {
		edges = append(edges, professor.EdgeSchool)
	}
	if m.assignments != nil {
		edges = append(edges, professor.EdgeAssignments)
	}
	if m.surveys != nil {
		edges = append(edges, professor.EdgeSurveys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfessorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case professor.EdgeSchool:
		if id := m.school; id != nil {
			return []ent.Value{*id}
		}
	case professor.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case professor.EdgeSurveys:
		ids := make([]ent.Value, 0, len(m.surveys))
		for id := range m.surveys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfessorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedassignments != nil {
		edges = append(edges, professor.EdgeAssignments)
	}
	if m.removedsurveys != nil {
		edges = append(edges, professor.EdgeSurveys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfessorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case professor.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case professor.EdgeSurveys:
		ids := make([]ent.Value, 0, len(m.removedsurveys))
		for id := range m.removedsurveys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfessorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedschool {
		edges = append(edges, professor.EdgeSchool)
	}
	if m.clearedassignments {
		edges = append(edges, professor.EdgeAssignments)
	}
	if m.clearedsurveys {
		edges = append(edges, professor.EdgeSurveys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfessorMutation) EdgeCleared(name string) bool {
	switch name {
	case professor.EdgeSchool:
		return m.clearedschool
	case professor.EdgeAssignments:
		return m.clearedassignments
	case professor.EdgeSurveys:
		return m.clearedsurveys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfessorMutation) ClearEdge(name string) error {
	switch name {
	case professor.EdgeSchool:
		m.ClearSchool()
		return nil
	}
	return fmt.Errorf("unknown Professor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfessorMutation) ResetEdge(name string) error {
	switch name {
	case professor.EdgeSchool:
		m.ResetSchool()
		return nil
	case professor.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case professor.EdgeSurveys:
		m.ResetSurveys()
		return nil
	}
	return fmt.Errorf("unknown Professor edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	text_en        *string
	text_uz        *string
	text_ru        *string
	question_type  *question.QuestionType
	sort_order     *int
	addsort_order  *int
	is_active      *bool
	clearedFields  map[string]struct{}
	answers        map[uuid.UUID]struct{}
	removedanswers map[uuid.UUID]struct{}
	clearedanswers bool
	done           bool
	oldValue       func(context.Context) (*Question, error)
	predicates     []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTextEn sets the "text_en" field.
func (m *QuestionMutation) SetTextEn(s string) {
	m.text_en = &s
}

// TextEn returns the value of the "text_en" field in the mutation.
func (m *QuestionMutation) TextEn() (r string, exists bool) {
	v := m.text_en
	if v == nil {
		return
	}
	return *v, true
}

// OldTextEn returns the old "text_en" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTextEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextEn: %w", err)
	}
	return oldValue.TextEn, nil
}

// ResetTextEn resets all changes to the "text_en" field.
func (m *QuestionMutation) ResetTextEn() {
	m.text_en = nil
}

// SetTextUz sets the "text_uz" field.
func (m *QuestionMutation) SetTextUz(s string) {
	m.text_uz = &s
}

// TextUz returns the value of the "text_uz" field in the mutation.
func (m *QuestionMutation) TextUz() (r string, exists bool) {
	v := m.text_uz
	if v == nil {
		return
	}
	return *v, true
}

// OldTextUz returns the old "text_uz" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTextUz(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextUz is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextUz requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextUz: %w", err)
	}
	return oldValue.TextUz, nil
}

// ResetTextUz resets all changes to the "text_uz" field.
func (m *QuestionMutation) ResetTextUz() {
	m.text_uz = nil
}

// SetTextRu sets the "text_ru" field.
func (m *QuestionMutation) SetTextRu(s string) {
	m.text_ru = &s
}

// TextRu returns the value of the "text_ru" field in the mutation.
func (m *QuestionMutation) TextRu() (r string, exists bool) {
	v := m.text_ru
	if v == nil {
		return
	}
	return *v, true
}

// OldTextRu returns the old "text_ru" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTextRu(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextRu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextRu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextRu: %w", err)
	}
	return oldValue.TextRu, nil
}

// ResetTextRu resets all changes to the "text_ru" field.
func (m *QuestionMutation) ResetTextRu() {
	m.text_ru = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(qt question.QuestionType) {
	m.question_type = &qt
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r question.QuestionType, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v question.QuestionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *QuestionMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *QuestionMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *QuestionMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *QuestionMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *QuestionMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetIsActive sets the "is_active" field.
func (m *QuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *QuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *QuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *QuestionMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *QuestionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *QuestionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *QuestionMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *QuestionMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *QuestionMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *QuestionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	if m.text_en != nil {
		fields = append(fields, question.FieldTextEn)
	}
	if m.text_uz != nil {
		fields = append(fields, question.FieldTextUz)
	}
	if m.text_ru != nil {
		fields = append(fields, question.FieldTextRu)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.sort_order != nil {
		fields = append(fields, question.FieldSortOrder)
	}
	if m.is_active != nil {
		fields = append(fields, question.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	case question.FieldTextEn:
		return m.TextEn()
	case question.FieldTextUz:
		return m.TextUz()
	case question.FieldTextRu:
		return m.TextRu()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldSortOrder:
		return m.SortOrder()
	case question.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case question.FieldTextEn:
		return m.OldTextEn(ctx)
	case question.FieldTextUz:
		return m.OldTextUz(ctx)
	case question.FieldTextRu:
		return m.OldTextRu(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case question.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case question.FieldTextEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextEn(v)
		return nil
	case question.FieldTextUz:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextUz(v)
		return nil
	case question.FieldTextRu:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextRu(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(question.QuestionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case question.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, question.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case question.FieldTextEn:
		m.ResetTextEn()
		return nil
	case question.FieldTextUz:
		m.ResetTextUz()
		return nil
	case question.FieldTextRu:
		m.ResetTextRu()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case question.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.answers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedanswers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanswers {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// SchoolMutation represents an operation that mutates the School nodes in the graph.
type SchoolMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	code               *string
	description        *string
	clearedFields      map[string]struct{}
	departments        map[uuid.UUID]struct{}
	removeddepartments map[uuid.UUID]struct{}
	cleareddepartments bool
	professors         map[uuid.UUID]struct{}
	removedprofessors  map[uuid.UUID]struct{}
	clearedprofessors  bool
	done               bool
	oldValue           func(context.Context) (*School, error)
	predicates         []predicate.School
}

var _ ent.Mutation = (*SchoolMutation)(nil)

// schoolOption allows management of the mutation configuration using functional options.
type schoolOption func(*SchoolMutation)

// newSchoolMutation creates new mutation for the School entity.
func newSchoolMutation(c config, op Op, opts ...schoolOption) *SchoolMutation {
	m := &SchoolMutation{
		config:        c,
		op:            op,
		typ:           TypeSchool,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchoolID sets the ID field of the mutation.
func withSchoolID(id uuid.UUID) schoolOption {
	return func(m *SchoolMutation) {
		var (
			err   error
			once  sync.Once
			value *School
		)
		m.oldValue = func(ctx context.Context) (*School, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().School.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchool sets the old School of the mutation.
func withSchool(node *School) schoolOption {
	return func(m *SchoolMutation) {
		m.oldValue = func(context.Context) (*School, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchoolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchoolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of School entities.
func (m *SchoolMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchoolMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchoolMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().School.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SchoolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchoolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SchoolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SchoolMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SchoolMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SchoolMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SchoolMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchoolMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchoolMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *SchoolMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *SchoolMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *SchoolMutation) ResetCode() {
	m.code = nil
}

// SetDescription sets the "description" field.
func (m *SchoolMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SchoolMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SchoolMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[school.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SchoolMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[school.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SchoolMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, school.FieldDescription)
}

// AddDepartmentIDs adds the "departments" edge to the Department entity by ids.
func (m *SchoolMutation) AddDepartmentIDs(ids ...uuid.UUID) {
	if m.departments == nil {
		m.departments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.departments[ids[i]] = struct{}{}
	}
}

// ClearDepartments clears the "departments" edge to the Department entity.
func (m *SchoolMutation) ClearDepartments() {
	m.cleareddepartments = true
}

// DepartmentsCleared reports if the "departments" edge to the Department entity was cleared.
func (m *SchoolMutation) DepartmentsCleared() bool {
	return m.cleareddepartments
}

// RemoveDepartmentIDs removes the "departments" edge to the Department entity by IDs.
func (m *SchoolMutation) RemoveDepartmentIDs(ids ...uuid.UUID) {
	if m.removeddepartments == nil {
		m.removeddepartments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.departments, ids[i])
		m.removeddepartments[ids[i]] = struct{}{}
	}
}

// RemovedDepartments returns the removed IDs of the "departments" edge to the Department entity.
func (m *SchoolMutation) RemovedDepartmentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddepartments {
		ids = append(ids, id)
	}
	return
}

// DepartmentsIDs returns the "departments" edge IDs in the mutation.
func (m *SchoolMutation) DepartmentsIDs() (ids []uuid.UUID) {
	for id := range m.departments {
		ids = append(ids, id)
	}
	return
}

// ResetDepartments resets all changes to the "departments" edge.
func (m *SchoolMutation) ResetDepartments() {
	m.departments = nil
	m.cleareddepartments = false
	m.removeddepartments = nil
}

// AddProfessorIDs adds the "professors" edge to the Professor entity by ids.
func (m *SchoolMutation) AddProfessorIDs(ids ...uuid.UUID) {
	if m.professors == nil {
		m.professors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.professors[ids[i]] = struct{}{}
	}
}

// ClearProfessors clears the "professors" edge to the Professor entity.
func (m *SchoolMutation) ClearProfessors() {
	m.clearedprofessors = true
}

// ProfessorsCleared reports if the "professors" edge to the Professor entity was cleared.
func (m *SchoolMutation) ProfessorsCleared() bool {
	return m.clearedprofessors
}

// RemoveProfessorIDs removes the "professors" edge to the Professor entity by IDs.
func (m *SchoolMutation) RemoveProfessorIDs(ids ...uuid.UUID) {
	if m.removedprofessors == nil {
		m.removedprofessors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.professors, ids[i])
		m.removedprofessors[ids[i]] = struct{}{}
	}
}

// RemovedProfessors returns the removed IDs of the "professors" edge to the Professor entity.
func (m *SchoolMutation) RemovedProfessorsIDs() (ids []uuid.UUID) {
	for id := range m.removedprofessors {
		ids = append(ids, id)
	}
	return
}

// ProfessorsIDs returns the "professors" edge IDs in the mutation.
func (m *SchoolMutation) ProfessorsIDs() (ids []uuid.UUID) {
	for id := range m.professors {
		ids = append(ids, id)
	}
	return
}

// ResetProfessors resets all changes to the "professors" edge.
func (m *SchoolMutation) ResetProfessors() {
	m.professors = nil
	m.clearedprofessors = false
	m.removedprofessors = nil
}

// Where appends a list predicates to the SchoolMutation builder.
func (m *SchoolMutation) Where(ps ...predicate.School) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchoolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchoolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.School, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchoolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchoolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (School).
func (m *SchoolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchoolMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, school.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, school.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, school.FieldName)
	}
	if m.code != nil {
		fields = append(fields, school.FieldCode)
	}
	if m.description != nil {
		fields = append(fields, school.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchoolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case school.FieldCreatedAt:
		return m.CreatedAt()
	case school.FieldUpdatedAt:
		return m.UpdatedAt()
	case school.FieldName:
		return m.Name()
	case school.FieldCode:
		return m.Code()
	case school.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchoolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case school.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case school.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case school.FieldName:
		return m.OldName(ctx)
	case school.FieldCode:
		return m.OldCode(ctx)
	case school.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown School field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchoolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case school.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case school.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case school.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case school.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case school.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown School field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchoolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchoolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchoolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown School numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchoolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(school.FieldDescription) {
		fields = append(fields, school.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchoolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchoolMutation) ClearField(name string) error {
	switch name {
	case school.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown School nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchoolMutation) ResetField(name string) error {
	switch name {
	case school.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case school.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case school.FieldName:
		m.ResetName()
		return nil
	case school.FieldCode:
		m.ResetCode()
		return nil
	case school.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown School field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchoolMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.departments != nil {
		edges = append(edges, school.EdgeDepartments)
	}
	if m.professors != nil {
		edges = append(edges, school.EdgeProfessors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchoolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case school.EdgeDepartments:
		ids := make([]ent.Value, 0, len(m.departments))
		for id := range m.departments {
			ids = append(ids, id)
		}
		return ids
	case school.EdgeProfessors:
		ids := make([]ent.Value, 0, len(m.professors))
		for id := range m.professors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchoolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddepartments != nil {
		edges = append(edges, school.EdgeDepartments)
	}
	if m.removedprofessors != nil {
		edges = append(edges, school.EdgeProfessors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchoolMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case school.EdgeDepartments:
		ids := make([]ent.Value, 0, len(m.removeddepartments))
		for id := range m.removeddepartments {
			ids = append(ids, id)
		}
		return ids
	case school.EdgeProfessors:
		ids := make([]ent.Value, 0, len(m.removedprofessors))
		for id := range m.removedprofessors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchoolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddepartments {
		edges = append(edges, school.EdgeDepartments)
	}
	if m.clearedprofessors {
		edges = append(edges, school.EdgeProfessors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchoolMutation) EdgeCleared(name string) bool {
	switch name {
	case school.EdgeDepartments:
		return m.cleareddepartments
	case school.EdgeProfessors:
		return m.clearedprofessors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchoolMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown School unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchoolMutation) ResetEdge(name string) error {
	switch name {
	case school.EdgeDepartments:
		m.ResetDepartments()
		return nil
	case school.EdgeProfessors:
		m.ResetProfessors()
		return nil
	}
	return fmt.Errorf("unknown School edge %s", name)
}

// SurveyMutation represents an operation that mutates the Survey nodes in the graph.
type SurveyMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	clearedFields    map[string]struct{}
	group            *uuid.UUID
	clearedgroup     bool
	professor        *uuid.UUID
	clearedprofessor bool
	answers          map[uuid.UUID]struct{}
	removedanswers   map[uuid.UUID]struct{}
	clearedanswers   bool
	done             bool
	oldValue         func(context.Context) (*Survey, error)
	predicates       []predicate.Survey
}

var _ ent.Mutation = (*SurveyMutation)(nil)

// surveyOption allows management of the mutation configuration using functional options.
type surveyOption func(*SurveyMutation)

// newSurveyMutation creates new mutation for the Survey entity.
func newSurveyMutation(c config, op Op, opts ...surveyOption) *SurveyMutation {
	m := &SurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurveyID sets the ID field of the mutation.
func withSurveyID(id uuid.UUID) surveyOption {
	return func(m *SurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *Survey
		)
		m.oldValue = func(ctx context.Context) (*Survey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Survey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurvey sets the old Survey of the mutation.
func withSurvey(node *Survey) surveyOption {
	return func(m *SurveyMutation) {
		m.oldValue = func(context.Context) (*Survey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Survey entities.
func (m *SurveyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurveyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurveyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Survey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SurveyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SurveyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SurveyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGroupID sets the "group_id" field.
func (m *SurveyMutation) SetGroupID(u uuid.UUID) {
	m.group = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *SurveyMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldGroupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *SurveyMutation) ResetGroupID() {
	m.group = nil
}

// SetProfessorID sets the "professor_id" field.
func (m *SurveyMutation) SetProfessorID(u uuid.UUID) {
	m.professor = &u
}

// ProfessorID returns the value of the "professor_id" field in the mutation.
func (m *SurveyMutation) ProfessorID() (r uuid.UUID, exists bool) {
	v := m.professor
	if v == nil {
		return
	}
	return *v, true
}

// OldProfessorID returns the old "professor_id" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldProfessorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfessorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfessorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfessorID: %w", err)
	}
	return oldValue.ProfessorID, nil
}

// ResetProfessorID resets all changes to the "professor_id" field.
func (m *SurveyMutation) ResetProfessorID() {
	m.professor = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *SurveyMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[survey.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *SurveyMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *SurveyMutation) GroupIDs() (ids []uuid.UUID) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *SurveyMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// ClearProfessor clears the "professor" edge to the Professor entity.
func (m *SurveyMutation) ClearProfessor() {
	m.clearedprofessor = true
	m.clearedFields[survey.FieldProfessorID] = struct{}{}
}

// ProfessorCleared reports if the "professor" edge to the Professor entity was cleared.
func (m *SurveyMutation) ProfessorCleared() bool {
	return m.clearedprofessor
}

// ProfessorIDs returns the "professor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfessorID instead. It exists only for internal usage by the builders.
func (m *SurveyMutation) ProfessorIDs() (ids []uuid.UUID) {
	if id := m.professor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfessor resets all changes to the "professor" edge.
func (m *SurveyMutation) ResetProfessor() {
	m.professor = nil
	m.clearedprofessor = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *SurveyMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *SurveyMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *SurveyMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *SurveyMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *SurveyMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *SurveyMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *SurveyMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the SurveyMutation builder.
func (m *SurveyMutation) Where(ps ...predicate.Survey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Survey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Survey).
func (m *SurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurveyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, survey.FieldCreatedAt)
	}
	if m.group != nil {
		fields = append(fields, survey.FieldGroupID)
	}
	if m.professor != nil {
		fields = append(fields, survey.FieldProfessorID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case survey.FieldCreatedAt:
		return m.CreatedAt()
	case survey.FieldGroupID:
		return m.GroupID()
	case survey.FieldProfessorID:
		return m.ProfessorID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case survey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case survey.FieldGroupID:
		return m.OldGroupID(ctx)
	case survey.FieldProfessorID:
		return m.OldProfessorID(ctx)
	}
	return nil, fmt.Errorf("unknown Survey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case survey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case survey.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case survey.FieldProfessorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfessorID(v)
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurveyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurveyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Survey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurveyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurveyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Survey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurveyMutation) ResetField(name string) error {
	switch name {
	case survey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case survey.FieldGroupID:
		m.ResetGroupID()
		return nil
	case survey.FieldProfessorID:
		m.ResetProfessorID()
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.group != nil {
		edges = append(edges, survey.EdgeGroup)
	}
	if m.professor != nil {
		edges = append(edges, survey.EdgeProfessor)
	}
	if m.answers != nil {
		edges = append(edges, survey.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurveyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case survey.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case survey.EdgeProfessor:
		if id := m.professor; id != nil {
			return []ent.Value{*id}
		}
	case survey.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedanswers != nil {
		edges = append(edges, survey.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurveyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case survey.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgroup {
		edges = append(edges, survey.EdgeGroup)
	}
	if m.clearedprofessor {
		edges = append(edges, survey.EdgeProfessor)
	}
	if m.clearedanswers {
		edges = append(edges, survey.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurveyMutation) EdgeCleared(name string) bool {
	switch name {
	case survey.EdgeGroup:
		return m.clearedgroup
	case survey.EdgeProfessor:
		return m.clearedprofessor
	case survey.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurveyMutation) ClearEdge(name string) error {
	switch name {
	case survey.EdgeGroup:
		m.ClearGroup()
		return nil
	case survey.EdgeProfessor:
		m.ClearProfessor()
		return nil
	}
	return fmt.Errorf("unknown Survey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurveyMutation) ResetEdge(name string) error {
	switch name {
	case survey.EdgeGroup:
		m.ResetGroup()
		return nil
	case survey.EdgeProfessor:
		m.ResetProfessor()
		return nil
	case survey.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Survey edge %s", name)
}
