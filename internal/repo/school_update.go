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
	"github.com/yalgashev/survey/internal/repo/department"
	"github.com/yalgashev/survey/internal/repo/predicate"
	"github.com/yalgashev/survey/internal/repo/professor"
	"github.com/yalgashev/survey/internal/repo/school"
)

// SchoolUpdate is the builder for updating School entities.
type SchoolUpdate struct {
	config
	hooks    []Hook
	mutation *SchoolMutation
}

// Where appends a list predicates to the SchoolUpdate builder.
func (_u *SchoolUpdate) Where(ps ...predicate.School) *SchoolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchoolUpdate) SetUpdatedAt(v time.Time) *SchoolUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SchoolUpdate) SetName(v string) *SchoolUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableName(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SchoolUpdate) SetCode(v string) *SchoolUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableCode(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SchoolUpdate) SetDescription(v string) *SchoolUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableDescription(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SchoolUpdate) ClearDescription() *SchoolUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// AddDepartmentIDs adds the "departments" edge to the Department entity by IDs.
func (_u *SchoolUpdate) AddDepartmentIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.AddDepartmentIDs(ids...)
	return _u
}

// AddDepartments adds the "departments" edges to the Department entity.
func (_u *SchoolUpdate) AddDepartments(v ...*Department) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDepartmentIDs(ids...)
}

// AddProfessorIDs adds the "professors" edge to the Professor entity by IDs.
func (_u *SchoolUpdate) AddProfessorIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.AddProfessorIDs(ids...)
	return _u
}

// AddProfessors adds the "professors" edges to the Professor entity.
func (_u *SchoolUpdate) AddProfessors(v ...*Professor) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProfessorIDs(ids...)
}

// Mutation returns the SchoolMutation object of the builder.
func (_u *SchoolUpdate) Mutation() *SchoolMutation {
	return _u.mutation
}

// ClearDepartments clears all "departments" edges to the Department entity.
func (_u *SchoolUpdate) ClearDepartments() *SchoolUpdate {
	_u.mutation.ClearDepartments()
	return _u
}

// RemoveDepartmentIDs removes the "departments" edge to Department entities by IDs.
func (_u *SchoolUpdate) RemoveDepartmentIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.RemoveDepartmentIDs(ids...)
	return _u
}

// RemoveDepartments removes "departments" edges to Department entities.
func (_u *SchoolUpdate) RemoveDepartments(v ...*Department) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDepartmentIDs(ids...)
}

// ClearProfessors clears all "professors" edges to the Professor entity.
func (_u *SchoolUpdate) ClearProfessors() *SchoolUpdate {
	_u.mutation.ClearProfessors()
	return _u
}

// RemoveProfessorIDs removes the "professors" edge to Professor entities by IDs.
func (_u *SchoolUpdate) RemoveProfessorIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.RemoveProfessorIDs(ids...)
	return _u
}

// RemoveProfessors removes "professors" edges to Professor entities.
func (_u *SchoolUpdate) RemoveProfessors(v ...*Professor) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProfessorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchoolUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchoolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchoolUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := school.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := school.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "School.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := school.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "School.code": %w`, err)}
		}
	}
	return nil
}

func (_u *SchoolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(school.Table, school.Columns, sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(school.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(school.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(school.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(school.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(school.FieldDescription, field.TypeString)
	}
	if _u.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.DepartmentsTable,
			Columns: []string{school.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDepartmentsIDs(); len(nodes) > 0 && !_u.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.DepartmentsTable,
			Columns: []string{school.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DepartmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.DepartmentsTable,
			Columns: []string{school.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.ProfessorsTable,
			Columns: []string{school.ProfessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProfessorsIDs(); len(nodes) > 0 && !_u.mutation.ProfessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.ProfessorsTable,
			Columns: []string{school.ProfessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfessorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.ProfessorsTable,
			Columns: []string{school.ProfessorsColumn},
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
			err = &NotFoundError{school.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchoolUpdateOne is the builder for updating a single School entity.
type SchoolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchoolMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchoolUpdateOne) SetUpdatedAt(v time.Time) *SchoolUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SchoolUpdateOne) SetName(v string) *SchoolUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableName(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SchoolUpdateOne) SetCode(v string) *SchoolUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableCode(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SchoolUpdateOne) SetDescription(v string) *SchoolUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableDescription(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SchoolUpdateOne) ClearDescription() *SchoolUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// AddDepartmentIDs adds the "departments" edge to the Department entity by IDs.
func (_u *SchoolUpdateOne) AddDepartmentIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.AddDepartmentIDs(ids...)
	return _u
}

// AddDepartments adds the "departments" edges to the Department entity.
func (_u *SchoolUpdateOne) AddDepartments(v ...*Department) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDepartmentIDs(ids...)
}

// AddProfessorIDs adds the "professors" edge to the Professor entity by IDs.
func (_u *SchoolUpdateOne) AddProfessorIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.AddProfessorIDs(ids...)
	return _u
}

// AddProfessors adds the "professors" edges to the Professor entity.
func (_u *SchoolUpdateOne) AddProfessors(v ...*Professor) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProfessorIDs(ids...)
}

// Mutation returns the SchoolMutation object of the builder.
func (_u *SchoolUpdateOne) Mutation() *SchoolMutation {
	return _u.mutation
}

// ClearDepartments clears all "departments" edges to the Department entity.
func (_u *SchoolUpdateOne) ClearDepartments() *SchoolUpdateOne {
	_u.mutation.ClearDepartments()
	return _u
}

// RemoveDepartmentIDs removes the "departments" edge to Department entities by IDs.
func (_u *SchoolUpdateOne) RemoveDepartmentIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.RemoveDepartmentIDs(ids...)
	return _u
}

// RemoveDepartments removes "departments" edges to Department entities.
func (_u *SchoolUpdateOne) RemoveDepartments(v ...*Department) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDepartmentIDs(ids...)
}

// ClearProfessors clears all "professors" edges to the Professor entity.
func (_u *SchoolUpdateOne) ClearProfessors() *SchoolUpdateOne {
	_u.mutation.ClearProfessors()
	return _u
}

// RemoveProfessorIDs removes the "professors" edge to Professor entities by IDs.
func (_u *SchoolUpdateOne) RemoveProfessorIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.RemoveProfessorIDs(ids...)
	return _u
}

// RemoveProfessors removes "professors" edges to Professor entities.
func (_u *SchoolUpdateOne) RemoveProfessors(v ...*Professor) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProfessorIDs(ids...)
}

// Where appends a list predicates to the SchoolUpdate builder.
func (_u *SchoolUpdateOne) Where(ps ...predicate.School) *SchoolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchoolUpdateOne) Select(field string, fields ...string) *SchoolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated School entity.
func (_u *SchoolUpdateOne) Save(ctx context.Context) (*School, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolUpdateOne) SaveX(ctx context.Context) *School {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchoolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchoolUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := school.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := school.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "School.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := school.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "School.code": %w`, err)}
		}
	}
	return nil
}

func (_u *SchoolUpdateOne) sqlSave(ctx context.Context) (_node *School, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(school.Table, school.Columns, sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "School.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, school.FieldID)
		for _, f := range fields {
			if !school.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != school.FieldID {
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
		_spec.SetField(school.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(school.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(school.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(school.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(school.FieldDescription, field.TypeString)
	}
	if _u.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.DepartmentsTable,
			Columns: []string{school.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDepartmentsIDs(); len(nodes) > 0 && !_u.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.DepartmentsTable,
			Columns: []string{school.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DepartmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.DepartmentsTable,
			Columns: []string{school.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.ProfessorsTable,
			Columns: []string{school.ProfessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProfessorsIDs(); len(nodes) > 0 && !_u.mutation.ProfessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.ProfessorsTable,
			Columns: []string{school.ProfessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(professor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfessorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.ProfessorsTable,
			Columns: []string{school.ProfessorsColumn},
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
	_node = &School{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{school.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
