// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mkoehler/sprechzeit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// PathRun is the client for interacting with the PathRun builders.
	PathRun *PathRunClient
	// PathSession is the client for interacting with the PathSession builders.
	PathSession *PathSessionClient
	// PathStep is the client for interacting with the PathStep builders.
	PathStep *PathStepClient
	// PathTemplate is the client for interacting with the PathTemplate builders.
	PathTemplate *PathTemplateClient
	// Text is the client for interacting with the Text builders.
	Text *TextClient
	// Vocab is the client for interacting with the Vocab builders.
	Vocab *VocabClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.PathRun = NewPathRunClient(c.config)
	c.PathSession = NewPathSessionClient(c.config)
	c.PathStep = NewPathStepClient(c.config)
	c.PathTemplate = NewPathTemplateClient(c.config)
	c.Text = NewTextClient(c.config)
	c.Vocab = NewVocabClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Attempt:      NewAttemptClient(cfg),
		PathRun:      NewPathRunClient(cfg),
		PathSession:  NewPathSessionClient(cfg),
		PathStep:     NewPathStepClient(cfg),
		PathTemplate: NewPathTemplateClient(cfg),
		Text:         NewTextClient(cfg),
		Vocab:        NewVocabClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Attempt:      NewAttemptClient(cfg),
		PathRun:      NewPathRunClient(cfg),
		PathSession:  NewPathSessionClient(cfg),
		PathStep:     NewPathStepClient(cfg),
		PathTemplate: NewPathTemplateClient(cfg),
		Text:         NewTextClient(cfg),
		Vocab:        NewVocabClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Attempt, c.PathRun, c.PathSession, c.PathStep, c.PathTemplate, c.Text,
		c.Vocab,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.PathRun, c.PathSession, c.PathStep, c.PathTemplate, c.Text,
		c.Vocab,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *PathRunMutation:
		return c.PathRun.mutate(ctx, m)
	case *PathSessionMutation:
		return c.PathSession.mutate(ctx, m)
	case *PathStepMutation:
		return c.PathStep.mutate(ctx, m)
	case *PathTemplateMutation:
		return c.PathTemplate.mutate(ctx, m)
	case *TextMutation:
		return c.Text.mutate(ctx, m)
	case *VocabMutation:
		return c.Vocab.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id int) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id int) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id int) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id int) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Attempt.
func (c *AttemptClient) QuerySession(_m *Attempt) *PathSessionQuery {
	query := (&PathSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attempt.Table, attempt.FieldID, id),
			sqlgraph.To(pathsession.Table, pathsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attempt.SessionTable, attempt.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// PathRunClient is a client for the PathRun schema.
type PathRunClient struct {
	config
}

// NewPathRunClient returns a client for the PathRun from the given config.
func NewPathRunClient(c config) *PathRunClient {
	return &PathRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathrun.Hooks(f(g(h())))`.
func (c *PathRunClient) Use(hooks ...Hook) {
	c.hooks.PathRun = append(c.hooks.PathRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathrun.Intercept(f(g(h())))`.
func (c *PathRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathRun = append(c.inters.PathRun, interceptors...)
}

// Create returns a builder for creating a PathRun entity.
func (c *PathRunClient) Create() *PathRunCreate {
	mutation := newPathRunMutation(c.config, OpCreate)
	return &PathRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathRun entities.
func (c *PathRunClient) CreateBulk(builders ...*PathRunCreate) *PathRunCreateBulk {
	return &PathRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathRunClient) MapCreateBulk(slice any, setFunc func(*PathRunCreate, int)) *PathRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathRunCreateBulk{err: fmt.Errorf("calling to PathRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathRun.
func (c *PathRunClient) Update() *PathRunUpdate {
	mutation := newPathRunMutation(c.config, OpUpdate)
	return &PathRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathRunClient) UpdateOne(_m *PathRun) *PathRunUpdateOne {
	mutation := newPathRunMutation(c.config, OpUpdateOne, withPathRun(_m))
	return &PathRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathRunClient) UpdateOneID(id int) *PathRunUpdateOne {
	mutation := newPathRunMutation(c.config, OpUpdateOne, withPathRunID(id))
	return &PathRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathRun.
func (c *PathRunClient) Delete() *PathRunDelete {
	mutation := newPathRunMutation(c.config, OpDelete)
	return &PathRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathRunClient) DeleteOne(_m *PathRun) *PathRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathRunClient) DeleteOneID(id int) *PathRunDeleteOne {
	builder := c.Delete().Where(pathrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathRunDeleteOne{builder}
}

// Query returns a query builder for PathRun.
func (c *PathRunClient) Query() *PathRunQuery {
	return &PathRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PathRun entity by its id.
func (c *PathRunClient) Get(ctx context.Context, id int) (*PathRun, error) {
	return c.Query().Where(pathrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathRunClient) GetX(ctx context.Context, id int) *PathRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a PathRun.
func (c *PathRunClient) QueryTemplate(_m *PathRun) *PathTemplateQuery {
	query := (&PathTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathrun.Table, pathrun.FieldID, id),
			sqlgraph.To(pathtemplate.Table, pathtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pathrun.TemplateTable, pathrun.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a PathRun.
func (c *PathRunClient) QuerySessions(_m *PathRun) *PathSessionQuery {
	query := (&PathSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathrun.Table, pathrun.FieldID, id),
			sqlgraph.To(pathsession.Table, pathsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pathrun.SessionsTable, pathrun.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PathRunClient) Hooks() []Hook {
	return c.hooks.PathRun
}

// Interceptors returns the client interceptors.
func (c *PathRunClient) Interceptors() []Interceptor {
	return c.inters.PathRun
}

func (c *PathRunClient) mutate(ctx context.Context, m *PathRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathRun mutation op: %q", m.Op())
	}
}

// PathSessionClient is a client for the PathSession schema.
type PathSessionClient struct {
	config
}

// NewPathSessionClient returns a client for the PathSession from the given config.
func NewPathSessionClient(c config) *PathSessionClient {
	return &PathSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathsession.Hooks(f(g(h())))`.
func (c *PathSessionClient) Use(hooks ...Hook) {
	c.hooks.PathSession = append(c.hooks.PathSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathsession.Intercept(f(g(h())))`.
func (c *PathSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathSession = append(c.inters.PathSession, interceptors...)
}

// Create returns a builder for creating a PathSession entity.
func (c *PathSessionClient) Create() *PathSessionCreate {
	mutation := newPathSessionMutation(c.config, OpCreate)
	return &PathSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathSession entities.
func (c *PathSessionClient) CreateBulk(builders ...*PathSessionCreate) *PathSessionCreateBulk {
	return &PathSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathSessionClient) MapCreateBulk(slice any, setFunc func(*PathSessionCreate, int)) *PathSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathSessionCreateBulk{err: fmt.Errorf("calling to PathSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathSession.
func (c *PathSessionClient) Update() *PathSessionUpdate {
	mutation := newPathSessionMutation(c.config, OpUpdate)
	return &PathSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathSessionClient) UpdateOne(_m *PathSession) *PathSessionUpdateOne {
	mutation := newPathSessionMutation(c.config, OpUpdateOne, withPathSession(_m))
	return &PathSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathSessionClient) UpdateOneID(id int) *PathSessionUpdateOne {
	mutation := newPathSessionMutation(c.config, OpUpdateOne, withPathSessionID(id))
	return &PathSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathSession.
func (c *PathSessionClient) Delete() *PathSessionDelete {
	mutation := newPathSessionMutation(c.config, OpDelete)
	return &PathSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathSessionClient) DeleteOne(_m *PathSession) *PathSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathSessionClient) DeleteOneID(id int) *PathSessionDeleteOne {
	builder := c.Delete().Where(pathsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathSessionDeleteOne{builder}
}

// Query returns a query builder for PathSession.
func (c *PathSessionClient) Query() *PathSessionQuery {
	return &PathSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PathSession entity by its id.
func (c *PathSessionClient) Get(ctx context.Context, id int) (*PathSession, error) {
	return c.Query().Where(pathsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathSessionClient) GetX(ctx context.Context, id int) *PathSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a PathSession.
func (c *PathSessionClient) QueryRun(_m *PathSession) *PathRunQuery {
	query := (&PathRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, id),
			sqlgraph.To(pathrun.Table, pathrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pathsession.RunTable, pathsession.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryText queries the text edge of a PathSession.
func (c *PathSessionClient) QueryText(_m *PathSession) *TextQuery {
	query := (&TextClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, id),
			sqlgraph.To(text.Table, text.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, pathsession.TextTable, pathsession.TextColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVocab queries the vocab edge of a PathSession.
func (c *PathSessionClient) QueryVocab(_m *PathSession) *VocabQuery {
	query := (&VocabClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, id),
			sqlgraph.To(vocab.Table, vocab.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, pathsession.VocabTable, pathsession.VocabPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttempts queries the attempts edge of a PathSession.
func (c *PathSessionClient) QueryAttempts(_m *PathSession) *AttemptQuery {
	query := (&AttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathsession.Table, pathsession.FieldID, id),
			sqlgraph.To(attempt.Table, attempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pathsession.AttemptsTable, pathsession.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PathSessionClient) Hooks() []Hook {
	return c.hooks.PathSession
}

// Interceptors returns the client interceptors.
func (c *PathSessionClient) Interceptors() []Interceptor {
	return c.inters.PathSession
}

func (c *PathSessionClient) mutate(ctx context.Context, m *PathSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathSession mutation op: %q", m.Op())
	}
}

// PathStepClient is a client for the PathStep schema.
type PathStepClient struct {
	config
}

// NewPathStepClient returns a client for the PathStep from the given config.
func NewPathStepClient(c config) *PathStepClient {
	return &PathStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathstep.Hooks(f(g(h())))`.
func (c *PathStepClient) Use(hooks ...Hook) {
	c.hooks.PathStep = append(c.hooks.PathStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathstep.Intercept(f(g(h())))`.
func (c *PathStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathStep = append(c.inters.PathStep, interceptors...)
}

// Create returns a builder for creating a PathStep entity.
func (c *PathStepClient) Create() *PathStepCreate {
	mutation := newPathStepMutation(c.config, OpCreate)
	return &PathStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathStep entities.
func (c *PathStepClient) CreateBulk(builders ...*PathStepCreate) *PathStepCreateBulk {
	return &PathStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathStepClient) MapCreateBulk(slice any, setFunc func(*PathStepCreate, int)) *PathStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathStepCreateBulk{err: fmt.Errorf("calling to PathStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathStep.
func (c *PathStepClient) Update() *PathStepUpdate {
	mutation := newPathStepMutation(c.config, OpUpdate)
	return &PathStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathStepClient) UpdateOne(_m *PathStep) *PathStepUpdateOne {
	mutation := newPathStepMutation(c.config, OpUpdateOne, withPathStep(_m))
	return &PathStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathStepClient) UpdateOneID(id int) *PathStepUpdateOne {
	mutation := newPathStepMutation(c.config, OpUpdateOne, withPathStepID(id))
	return &PathStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathStep.
func (c *PathStepClient) Delete() *PathStepDelete {
	mutation := newPathStepMutation(c.config, OpDelete)
	return &PathStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathStepClient) DeleteOne(_m *PathStep) *PathStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathStepClient) DeleteOneID(id int) *PathStepDeleteOne {
	builder := c.Delete().Where(pathstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathStepDeleteOne{builder}
}

// Query returns a query builder for PathStep.
func (c *PathStepClient) Query() *PathStepQuery {
	return &PathStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathStep},
		inters: c.Interceptors(),
	}
}

// Get returns a PathStep entity by its id.
func (c *PathStepClient) Get(ctx context.Context, id int) (*PathStep, error) {
	return c.Query().Where(pathstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathStepClient) GetX(ctx context.Context, id int) *PathStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a PathStep.
func (c *PathStepClient) QueryTemplate(_m *PathStep) *PathTemplateQuery {
	query := (&PathTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathstep.Table, pathstep.FieldID, id),
			sqlgraph.To(pathtemplate.Table, pathtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pathstep.TemplateTable, pathstep.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PathStepClient) Hooks() []Hook {
	return c.hooks.PathStep
}

// Interceptors returns the client interceptors.
func (c *PathStepClient) Interceptors() []Interceptor {
	return c.inters.PathStep
}

func (c *PathStepClient) mutate(ctx context.Context, m *PathStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathStep mutation op: %q", m.Op())
	}
}

// PathTemplateClient is a client for the PathTemplate schema.
type PathTemplateClient struct {
	config
}

// NewPathTemplateClient returns a client for the PathTemplate from the given config.
func NewPathTemplateClient(c config) *PathTemplateClient {
	return &PathTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathtemplate.Hooks(f(g(h())))`.
func (c *PathTemplateClient) Use(hooks ...Hook) {
	c.hooks.PathTemplate = append(c.hooks.PathTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathtemplate.Intercept(f(g(h())))`.
func (c *PathTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathTemplate = append(c.inters.PathTemplate, interceptors...)
}

// Create returns a builder for creating a PathTemplate entity.
func (c *PathTemplateClient) Create() *PathTemplateCreate {
	mutation := newPathTemplateMutation(c.config, OpCreate)
	return &PathTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathTemplate entities.
func (c *PathTemplateClient) CreateBulk(builders ...*PathTemplateCreate) *PathTemplateCreateBulk {
	return &PathTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathTemplateClient) MapCreateBulk(slice any, setFunc func(*PathTemplateCreate, int)) *PathTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathTemplateCreateBulk{err: fmt.Errorf("calling to PathTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathTemplate.
func (c *PathTemplateClient) Update() *PathTemplateUpdate {
	mutation := newPathTemplateMutation(c.config, OpUpdate)
	return &PathTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathTemplateClient) UpdateOne(_m *PathTemplate) *PathTemplateUpdateOne {
	mutation := newPathTemplateMutation(c.config, OpUpdateOne, withPathTemplate(_m))
	return &PathTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathTemplateClient) UpdateOneID(id int) *PathTemplateUpdateOne {
	mutation := newPathTemplateMutation(c.config, OpUpdateOne, withPathTemplateID(id))
	return &PathTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathTemplate.
func (c *PathTemplateClient) Delete() *PathTemplateDelete {
	mutation := newPathTemplateMutation(c.config, OpDelete)
	return &PathTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathTemplateClient) DeleteOne(_m *PathTemplate) *PathTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathTemplateClient) DeleteOneID(id int) *PathTemplateDeleteOne {
	builder := c.Delete().Where(pathtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathTemplateDeleteOne{builder}
}

// Query returns a query builder for PathTemplate.
func (c *PathTemplateClient) Query() *PathTemplateQuery {
	return &PathTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PathTemplate entity by its id.
func (c *PathTemplateClient) Get(ctx context.Context, id int) (*PathTemplate, error) {
	return c.Query().Where(pathtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathTemplateClient) GetX(ctx context.Context, id int) *PathTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a PathTemplate.
func (c *PathTemplateClient) QuerySteps(_m *PathTemplate) *PathStepQuery {
	query := (&PathStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathtemplate.Table, pathtemplate.FieldID, id),
			sqlgraph.To(pathstep.Table, pathstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pathtemplate.StepsTable, pathtemplate.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a PathTemplate.
func (c *PathTemplateClient) QueryRuns(_m *PathTemplate) *PathRunQuery {
	query := (&PathRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pathtemplate.Table, pathtemplate.FieldID, id),
			sqlgraph.To(pathrun.Table, pathrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pathtemplate.RunsTable, pathtemplate.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PathTemplateClient) Hooks() []Hook {
	return c.hooks.PathTemplate
}

// Interceptors returns the client interceptors.
func (c *PathTemplateClient) Interceptors() []Interceptor {
	return c.inters.PathTemplate
}

func (c *PathTemplateClient) mutate(ctx context.Context, m *PathTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathTemplate mutation op: %q", m.Op())
	}
}

// TextClient is a client for the Text schema.
type TextClient struct {
	config
}

// NewTextClient returns a client for the Text from the given config.
func NewTextClient(c config) *TextClient {
	return &TextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `text.Hooks(f(g(h())))`.
func (c *TextClient) Use(hooks ...Hook) {
	c.hooks.Text = append(c.hooks.Text, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `text.Intercept(f(g(h())))`.
func (c *TextClient) Intercept(interceptors ...Interceptor) {
	c.inters.Text = append(c.inters.Text, interceptors...)
}

// Create returns a builder for creating a Text entity.
func (c *TextClient) Create() *TextCreate {
	mutation := newTextMutation(c.config, OpCreate)
	return &TextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Text entities.
func (c *TextClient) CreateBulk(builders ...*TextCreate) *TextCreateBulk {
	return &TextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TextClient) MapCreateBulk(slice any, setFunc func(*TextCreate, int)) *TextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TextCreateBulk{err: fmt.Errorf("calling to TextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Text.
func (c *TextClient) Update() *TextUpdate {
	mutation := newTextMutation(c.config, OpUpdate)
	return &TextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TextClient) UpdateOne(_m *Text) *TextUpdateOne {
	mutation := newTextMutation(c.config, OpUpdateOne, withText(_m))
	return &TextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TextClient) UpdateOneID(id int) *TextUpdateOne {
	mutation := newTextMutation(c.config, OpUpdateOne, withTextID(id))
	return &TextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Text.
func (c *TextClient) Delete() *TextDelete {
	mutation := newTextMutation(c.config, OpDelete)
	return &TextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TextClient) DeleteOne(_m *Text) *TextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TextClient) DeleteOneID(id int) *TextDeleteOne {
	builder := c.Delete().Where(text.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TextDeleteOne{builder}
}

// Query returns a query builder for Text.
func (c *TextClient) Query() *TextQuery {
	return &TextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeText},
		inters: c.Interceptors(),
	}
}

// Get returns a Text entity by its id.
func (c *TextClient) Get(ctx context.Context, id int) (*Text, error) {
	return c.Query().Where(text.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TextClient) GetX(ctx context.Context, id int) *Text {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Text.
func (c *TextClient) QuerySessions(_m *Text) *PathSessionQuery {
	query := (&PathSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(text.Table, text.FieldID, id),
			sqlgraph.To(pathsession.Table, pathsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, text.SessionsTable, text.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TextClient) Hooks() []Hook {
	return c.hooks.Text
}

// Interceptors returns the client interceptors.
func (c *TextClient) Interceptors() []Interceptor {
	return c.inters.Text
}

func (c *TextClient) mutate(ctx context.Context, m *TextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Text mutation op: %q", m.Op())
	}
}

// VocabClient is a client for the Vocab schema.
type VocabClient struct {
	config
}

// NewVocabClient returns a client for the Vocab from the given config.
func NewVocabClient(c config) *VocabClient {
	return &VocabClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocab.Hooks(f(g(h())))`.
func (c *VocabClient) Use(hooks ...Hook) {
	c.hooks.Vocab = append(c.hooks.Vocab, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocab.Intercept(f(g(h())))`.
func (c *VocabClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vocab = append(c.inters.Vocab, interceptors...)
}

// Create returns a builder for creating a Vocab entity.
func (c *VocabClient) Create() *VocabCreate {
	mutation := newVocabMutation(c.config, OpCreate)
	return &VocabCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vocab entities.
func (c *VocabClient) CreateBulk(builders ...*VocabCreate) *VocabCreateBulk {
	return &VocabCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabClient) MapCreateBulk(slice any, setFunc func(*VocabCreate, int)) *VocabCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabCreateBulk{err: fmt.Errorf("calling to VocabClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vocab.
func (c *VocabClient) Update() *VocabUpdate {
	mutation := newVocabMutation(c.config, OpUpdate)
	return &VocabUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabClient) UpdateOne(_m *Vocab) *VocabUpdateOne {
	mutation := newVocabMutation(c.config, OpUpdateOne, withVocab(_m))
	return &VocabUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabClient) UpdateOneID(id int) *VocabUpdateOne {
	mutation := newVocabMutation(c.config, OpUpdateOne, withVocabID(id))
	return &VocabUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vocab.
func (c *VocabClient) Delete() *VocabDelete {
	mutation := newVocabMutation(c.config, OpDelete)
	return &VocabDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabClient) DeleteOne(_m *Vocab) *VocabDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabClient) DeleteOneID(id int) *VocabDeleteOne {
	builder := c.Delete().Where(vocab.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabDeleteOne{builder}
}

// Query returns a query builder for Vocab.
func (c *VocabClient) Query() *VocabQuery {
	return &VocabQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocab},
		inters: c.Interceptors(),
	}
}

// Get returns a Vocab entity by its id.
func (c *VocabClient) Get(ctx context.Context, id int) (*Vocab, error) {
	return c.Query().Where(vocab.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabClient) GetX(ctx context.Context, id int) *Vocab {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Vocab.
func (c *VocabClient) QuerySessions(_m *Vocab) *PathSessionQuery {
	query := (&PathSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vocab.Table, vocab.FieldID, id),
			sqlgraph.To(pathsession.Table, pathsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, vocab.SessionsTable, vocab.SessionsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VocabClient) Hooks() []Hook {
	return c.hooks.Vocab
}

// Interceptors returns the client interceptors.
func (c *VocabClient) Interceptors() []Interceptor {
	return c.inters.Vocab
}

func (c *VocabClient) mutate(ctx context.Context, m *VocabMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vocab mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, PathRun, PathSession, PathStep, PathTemplate, Text, Vocab []ent.Hook
	}
	inters struct {
		Attempt, PathRun, PathSession, PathStep, PathTemplate, Text,
		Vocab []ent.Interceptor
	}
)
