// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/predicate"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// PathSessionQuery is the builder for querying PathSession entities.
type PathSessionQuery struct {
	config
	ctx          *QueryContext
	order        []pathsession.OrderOption
	inters       []Interceptor
	predicates   []predicate.PathSession
	withRun      *PathRunQuery
	withText     *TextQuery
	withVocab    *VocabQuery
	withAttempts *AttemptQuery
	withFKs      bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PathSessionQuery builder.
func (_q *PathSessionQuery) Where(ps ...predicate.PathSession) *PathSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PathSessionQuery) Limit(limit int) *PathSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PathSessionQuery) Offset(offset int) *PathSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PathSessionQuery) Unique(unique bool) *PathSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PathSessionQuery) Order(o ...pathsession.OrderOption) *PathSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRun chains the current query on the "run" edge.
func (_q *PathSessionQuery) QueryRun() *PathRunQuery {
	query := (&PathRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, selector),
			sqlgraph.To(pathrun.Table, pathrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pathsession.RunTable, pathsession.RunColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryText chains the current query on the "text" edge.
func (_q *PathSessionQuery) QueryText() *TextQuery {
	query := (&TextClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, selector),
			sqlgraph.To(text.Table, text.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, pathsession.TextTable, pathsession.TextColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVocab chains the current query on the "vocab" edge.
func (_q *PathSessionQuery) QueryVocab() *VocabQuery {
	query := (&VocabClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, selector),
			sqlgraph.To(vocab.Table, vocab.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, pathsession.VocabTable, pathsession.VocabPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAttempts chains the current query on the "attempts" edge.
func (_q *PathSessionQuery) QueryAttempts() *AttemptQuery {
	query := (&AttemptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, selector),
			sqlgraph.To(attempt.Table, attempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pathsession.AttemptsTable, pathsession.AttemptsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PathSession entity from the query.
// Returns a *NotFoundError when no PathSession was found.
func (_q *PathSessionQuery) First(ctx context.Context) (*PathSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pathsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PathSessionQuery) FirstX(ctx context.Context) *PathSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PathSession ID from the query.
// Returns a *NotFoundError when no PathSession ID was found.
func (_q *PathSessionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pathsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PathSessionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PathSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PathSession entity is found.
// Returns a *NotFoundError when no PathSession entities are found.
func (_q *PathSessionQuery) Only(ctx context.Context) (*PathSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pathsession.Label}
	default:
		return nil, &NotSingularError{pathsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PathSessionQuery) OnlyX(ctx context.Context) *PathSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PathSession ID in the query.
// Returns a *NotSingularError when more than one PathSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PathSessionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pathsession.Label}
	default:
		err = &NotSingularError{pathsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PathSessionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PathSessions.
func (_q *PathSessionQuery) All(ctx context.Context) ([]*PathSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PathSession, *PathSessionQuery]()
	return withInterceptors[[]*PathSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PathSessionQuery) AllX(ctx context.Context) []*PathSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PathSession IDs.
func (_q *PathSessionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pathsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PathSessionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PathSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PathSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PathSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PathSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PathSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PathSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PathSessionQuery) Clone() *PathSessionQuery {
	if _q == nil {
		return nil
	}
	return &PathSessionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]pathsession.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.PathSession{}, _q.predicates...),
		withRun:      _q.withRun.Clone(),
		withText:     _q.withText.Clone(),
		withVocab:    _q.withVocab.Clone(),
		withAttempts: _q.withAttempts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRun tells the query-builder to eager-load the nodes that are connected to
// the "run" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PathSessionQuery) WithRun(opts ...func(*PathRunQuery)) *PathSessionQuery {
	query := (&PathRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRun = query
	return _q
}

// WithText tells the query-builder to eager-load the nodes that are connected to
// the "text" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PathSessionQuery) WithText(opts ...func(*TextQuery)) *PathSessionQuery {
	query := (&TextClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withText = query
	return _q
}

// WithVocab tells the query-builder to eager-load the nodes that are connected to
// the "vocab" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PathSessionQuery) WithVocab(opts ...func(*VocabQuery)) *PathSessionQuery {
	query := (&VocabClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVocab = query
	return _q
}

// WithAttempts tells the query-builder to eager-load the nodes that are connected to
// the "attempts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PathSessionQuery) WithAttempts(opts ...func(*AttemptQuery)) *PathSessionQuery {
	query := (&AttemptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttempts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StepOrder int `json:"step_order,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PathSession.Query().
//		GroupBy(pathsession.FieldStepOrder).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PathSessionQuery) GroupBy(field string, fields ...string) *PathSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PathSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pathsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StepOrder int `json:"step_order,omitempty"`
//	}
//
//	client.PathSession.Query().
//		Select(pathsession.FieldStepOrder).
//		Scan(ctx, &v)
func (_q *PathSessionQuery) Select(fields ...string) *PathSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PathSessionSelect{PathSessionQuery: _q}
	sbuild.label = pathsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PathSessionSelect configured with the given aggregations.
func (_q *PathSessionQuery) Aggregate(fns ...AggregateFunc) *PathSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PathSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !pathsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *PathSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PathSession, error) {
	var (
		nodes       = []*PathSession{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withRun != nil,
			_q.withText != nil,
			_q.withVocab != nil,
			_q.withAttempts != nil,
		}
	)
	if _q.withRun != nil || _q.withText != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, pathsession.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PathSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PathSession{config: _q.config}
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
	if query := _q.withRun; query != nil {
		if err := _q.loadRun(ctx, query, nodes, nil,
			func(n *PathSession, e *PathRun) { n.Edges.Run = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withText; query != nil {
		if err := _q.loadText(ctx, query, nodes, nil,
			func(n *PathSession, e *Text) { n.Edges.Text = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVocab; query != nil {
		if err := _q.loadVocab(ctx, query, nodes,
			func(n *PathSession) { n.Edges.Vocab = []*Vocab{} },
			func(n *PathSession, e *Vocab) { n.Edges.Vocab = append(n.Edges.Vocab, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAttempts; query != nil {
		if err := _q.loadAttempts(ctx, query, nodes,
			func(n *PathSession) { n.Edges.Attempts = []*Attempt{} },
			func(n *PathSession, e *Attempt) { n.Edges.Attempts = append(n.Edges.Attempts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PathSessionQuery) loadRun(ctx context.Context, query *PathRunQuery, nodes []*PathSession, init func(*PathSession), assign func(*PathSession, *PathRun)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PathSession)
	for i := range nodes {
		if nodes[i].path_run_sessions == nil {
			continue
		}
		fk := *nodes[i].path_run_sessions
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(pathrun.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "path_run_sessions" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PathSessionQuery) loadText(ctx context.Context, query *TextQuery, nodes []*PathSession, init func(*PathSession), assign func(*PathSession, *Text)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PathSession)
	for i := range nodes {
		if nodes[i].path_session_text == nil {
			continue
		}
		fk := *nodes[i].path_session_text
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(text.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "path_session_text" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PathSessionQuery) loadVocab(ctx context.Context, query *VocabQuery, nodes []*PathSession, init func(*PathSession), assign func(*PathSession, *Vocab)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[int]*PathSession)
	nids := make(map[int]map[*PathSession]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(pathsession.VocabTable)
		s.Join(joinT).On(s.C(vocab.FieldID), joinT.C(pathsession.VocabPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(pathsession.VocabPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(pathsession.VocabPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullInt64)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := int(values[0].(*sql.NullInt64).Int64)
				inValue := int(values[1].(*sql.NullInt64).Int64)
				if nids[inValue] == nil {
					nids[inValue] = map[*PathSession]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Vocab](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "vocab" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *PathSessionQuery) loadAttempts(ctx context.Context, query *AttemptQuery, nodes []*PathSession, init func(*PathSession), assign func(*PathSession, *Attempt)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*PathSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Attempt(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pathsession.AttemptsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.path_session_attempts
		if fk == nil {
			return fmt.Errorf(`foreign-key "path_session_attempts" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "path_session_attempts" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PathSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PathSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pathsession.Table, pathsession.Columns, sqlgraph.NewFieldSpec(pathsession.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathsession.FieldID)
		for i := range fields {
			if fields[i] != pathsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *PathSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pathsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pathsession.Columns
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

// PathSessionGroupBy is the group-by builder for PathSession entities.
type PathSessionGroupBy struct {
	selector
	build *PathSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PathSessionGroupBy) Aggregate(fns ...AggregateFunc) *PathSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PathSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PathSessionQuery, *PathSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PathSessionGroupBy) sqlScan(ctx context.Context, root *PathSessionQuery, v any) error {
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

// PathSessionSelect is the builder for selecting fields of PathSession entities.
type PathSessionSelect struct {
	*PathSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PathSessionSelect) Aggregate(fns ...AggregateFunc) *PathSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PathSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PathSessionQuery, *PathSessionSelect](ctx, _s.PathSessionQuery, _s, _s.inters, v)
}

func (_s *PathSessionSelect) sqlScan(ctx context.Context, root *PathSessionQuery, v any) error {
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
