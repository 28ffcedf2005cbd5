// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// InternshipAnswerQuery is the builder for querying InternshipAnswer entities.
type InternshipAnswerQuery struct {
	config
	ctx          *QueryContext
	order        []internshipanswer.OrderOption
	inters       []Interceptor
	predicates   []predicate.InternshipAnswer
	withSurvey   *InternshipSurveyQuery
	withQuestion *InternshipQuestionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InternshipAnswerQuery builder.
func (_q *InternshipAnswerQuery) Where(ps ...predicate.InternshipAnswer) *InternshipAnswerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InternshipAnswerQuery) Limit(limit int) *InternshipAnswerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InternshipAnswerQuery) Offset(offset int) *InternshipAnswerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InternshipAnswerQuery) Unique(unique bool) *InternshipAnswerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InternshipAnswerQuery) Order(o ...internshipanswer.OrderOption) *InternshipAnswerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySurvey chains the current query on the "survey" edge.
func (_q *InternshipAnswerQuery) QuerySurvey() *InternshipSurveyQuery {
	query := (&InternshipSurveyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(internshipanswer.Table, internshipanswer.FieldID, selector),
			sqlgraph.To(internshipsurvey.Table, internshipsurvey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, internshipanswer.SurveyTable, internshipanswer.SurveyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestion chains the current query on the "question" edge.
func (_q *InternshipAnswerQuery) QueryQuestion() *InternshipQuestionQuery {
	query := (&InternshipQuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(internshipanswer.Table, internshipanswer.FieldID, selector),
			sqlgraph.To(internshipquestion.Table, internshipquestion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, internshipanswer.QuestionTable, internshipanswer.QuestionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InternshipAnswer entity from the query.
// Returns a *NotFoundError when no InternshipAnswer was found.
func (_q *InternshipAnswerQuery) First(ctx context.Context) (*InternshipAnswer, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{internshipanswer.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InternshipAnswerQuery) FirstX(ctx context.Context) *InternshipAnswer {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InternshipAnswer ID from the query.
// Returns a *NotFoundError when no InternshipAnswer ID was found.
func (_q *InternshipAnswerQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{internshipanswer.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InternshipAnswerQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InternshipAnswer entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InternshipAnswer entity is found.
// Returns a *NotFoundError when no InternshipAnswer entities are found.
func (_q *InternshipAnswerQuery) Only(ctx context.Context) (*InternshipAnswer, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{internshipanswer.Label}
	default:
		return nil, &NotSingularError{internshipanswer.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InternshipAnswerQuery) OnlyX(ctx context.Context) *InternshipAnswer {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InternshipAnswer ID in the query.
// Returns a *NotSingularError when more than one InternshipAnswer ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InternshipAnswerQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{internshipanswer.Label}
	default:
		err = &NotSingularError{internshipanswer.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InternshipAnswerQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InternshipAnswers.
func (_q *InternshipAnswerQuery) All(ctx context.Context) ([]*InternshipAnswer, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InternshipAnswer, *InternshipAnswerQuery]()
	return withInterceptors[[]*InternshipAnswer](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InternshipAnswerQuery) AllX(ctx context.Context) []*InternshipAnswer {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InternshipAnswer IDs.
func (_q *InternshipAnswerQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(internshipanswer.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InternshipAnswerQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InternshipAnswerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InternshipAnswerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InternshipAnswerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InternshipAnswerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InternshipAnswerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InternshipAnswerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InternshipAnswerQuery) Clone() *InternshipAnswerQuery {
	if _q == nil {
		return nil
	}
	return &InternshipAnswerQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]internshipanswer.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.InternshipAnswer{}, _q.predicates...),
		withSurvey:   _q.withSurvey.Clone(),
		withQuestion: _q.withQuestion.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSurvey tells the query-builder to eager-load the nodes that are connected to
// the "survey" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InternshipAnswerQuery) WithSurvey(opts ...func(*InternshipSurveyQuery)) *InternshipAnswerQuery {
	query := (&InternshipSurveyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSurvey = query
	return _q
}

// WithQuestion tells the query-builder to eager-load the nodes that are connected to
// the "question" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InternshipAnswerQuery) WithQuestion(opts ...func(*InternshipQuestionQuery)) *InternshipAnswerQuery {
	query := (&InternshipQuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestion = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SurveyID uuid.UUID `json:"survey_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InternshipAnswer.Query().
//		GroupBy(internshipanswer.FieldSurveyID).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *InternshipAnswerQuery) GroupBy(field string, fields ...string) *InternshipAnswerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InternshipAnswerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = internshipanswer.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SurveyID uuid.UUID `json:"survey_id,omitempty"`
//	}
//
//	client.InternshipAnswer.Query().
//		Select(internshipanswer.FieldSurveyID).
//		Scan(ctx, &v)
func (_q *InternshipAnswerQuery) Select(fields ...string) *InternshipAnswerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InternshipAnswerSelect{InternshipAnswerQuery: _q}
	sbuild.label = internshipanswer.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InternshipAnswerSelect configured with the given aggregations.
func (_q *InternshipAnswerQuery) Aggregate(fns ...AggregateFunc) *InternshipAnswerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InternshipAnswerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !internshipanswer.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InternshipAnswerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InternshipAnswer, error) {
	var (
		nodes       = []*InternshipAnswer{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSurvey != nil,
			_q.withQuestion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InternshipAnswer).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InternshipAnswer{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSurvey; query != nil {
		if err := _q.loadSurvey(ctx, query, nodes, nil,
			func(n *InternshipAnswer, e *InternshipSurvey) { n.Edges.Survey = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestion; query != nil {
		if err := _q.loadQuestion(ctx, query, nodes, nil,
			func(n *InternshipAnswer, e *InternshipQuestion) { n.Edges.Question = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InternshipAnswerQuery) loadSurvey(ctx context.Context, query *InternshipSurveyQuery, nodes []*InternshipAnswer, init func(*InternshipAnswer), assign func(*InternshipAnswer, *InternshipSurvey)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*InternshipAnswer)
	for i := range nodes {
		fk := nodes[i].SurveyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(internshipsurvey.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "survey_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InternshipAnswerQuery) loadQuestion(ctx context.Context, query *InternshipQuestionQuery, nodes []*InternshipAnswer, init func(*InternshipAnswer), assign func(*InternshipAnswer, *InternshipQuestion)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*InternshipAnswer)
	for i := range nodes {
		fk := nodes[i].QuestionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(internshipquestion.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "question_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *InternshipAnswerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InternshipAnswerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(internshipanswer.Table, internshipanswer.Columns, sqlgraph.NewFieldSpec(internshipanswer.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, internshipanswer.FieldID)
		for i := range fields {
			if fields[i] != internshipanswer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSurvey != nil {
			_spec.Node.AddColumnOnce(internshipanswer.FieldSurveyID)
		}
		if _q.withQuestion != nil {
			_spec.Node.AddColumnOnce(internshipanswer.FieldQuestionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InternshipAnswerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(internshipanswer.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = internshipanswer.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InternshipAnswerGroupBy is the group-by builder for InternshipAnswer entities.
type InternshipAnswerGroupBy struct {
	selector
	build *InternshipAnswerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InternshipAnswerGroupBy) Aggregate(fns ...AggregateFunc) *InternshipAnswerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InternshipAnswerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InternshipAnswerQuery, *InternshipAnswerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InternshipAnswerGroupBy) sqlScan(ctx context.Context, root *InternshipAnswerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InternshipAnswerSelect is the builder for selecting fields of InternshipAnswer entities.
type InternshipAnswerSelect struct {
	*InternshipAnswerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InternshipAnswerSelect) Aggregate(fns ...AggregateFunc) *InternshipAnswerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InternshipAnswerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InternshipAnswerQuery, *InternshipAnswerSelect](ctx, _s.InternshipAnswerQuery, _s, _s.inters, v)
}

func (_s *InternshipAnswerSelect) sqlScan(ctx context.Context, root *InternshipAnswerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
