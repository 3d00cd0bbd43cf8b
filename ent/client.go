// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/gauntlet/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/attempt"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/abhisek/gauntlet/ent/llmrequestevent"
	"github.com/abhisek/gauntlet/ent/mentor"
	"github.com/abhisek/gauntlet/ent/playerstate"
	"github.com/abhisek/gauntlet/ent/prompttemplate"
	"github.com/abhisek/gauntlet/ent/ratebucket"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// GeneratedItem is the client for interacting with the GeneratedItem builders.
	GeneratedItem *GeneratedItemClient
	// GeneratedSet is the client for interacting with the GeneratedSet builders.
	GeneratedSet *GeneratedSetClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Mentor is the client for interacting with the Mentor builders.
	Mentor *MentorClient
	// PlayerState is the client for interacting with the PlayerState builders.
	PlayerState *PlayerStateClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// RateBucket is the client for interacting with the RateBucket builders.
	RateBucket *RateBucketClient
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
	c.GeneratedItem = NewGeneratedItemClient(c.config)
	c.GeneratedSet = NewGeneratedSetClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Mentor = NewMentorClient(c.config)
	c.PlayerState = NewPlayerStateClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.RateBucket = NewRateBucketClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		GeneratedItem:   NewGeneratedItemClient(cfg),
		GeneratedSet:    NewGeneratedSetClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Mentor:          NewMentorClient(cfg),
		PlayerState:     NewPlayerStateClient(cfg),
		PromptTemplate:  NewPromptTemplateClient(cfg),
		RateBucket:      NewRateBucketClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		GeneratedItem:   NewGeneratedItemClient(cfg),
		GeneratedSet:    NewGeneratedSetClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Mentor:          NewMentorClient(cfg),
		PlayerState:     NewPlayerStateClient(cfg),
		PromptTemplate:  NewPromptTemplateClient(cfg),
		RateBucket:      NewRateBucketClient(cfg),
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
		c.Attempt, c.GeneratedItem, c.GeneratedSet, c.LLMRequestEvent, c.Mentor,
		c.PlayerState, c.PromptTemplate, c.RateBucket,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.GeneratedItem, c.GeneratedSet, c.LLMRequestEvent, c.Mentor,
		c.PlayerState, c.PromptTemplate, c.RateBucket,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *GeneratedItemMutation:
		return c.GeneratedItem.mutate(ctx, m)
	case *GeneratedSetMutation:
		return c.GeneratedSet.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MentorMutation:
		return c.Mentor.mutate(ctx, m)
	case *PlayerStateMutation:
		return c.PlayerState.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *RateBucketMutation:
		return c.RateBucket.mutate(ctx, m)
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
func (c *AttemptClient) UpdateOneID(id uuid.UUID) *AttemptUpdateOne {
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
func (c *AttemptClient) DeleteOneID(id uuid.UUID) *AttemptDeleteOne {
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
func (c *AttemptClient) Get(ctx context.Context, id uuid.UUID) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id uuid.UUID) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
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

// GeneratedItemClient is a client for the GeneratedItem schema.
type GeneratedItemClient struct {
	config
}

// NewGeneratedItemClient returns a client for the GeneratedItem from the given config.
func NewGeneratedItemClient(c config) *GeneratedItemClient {
	return &GeneratedItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generateditem.Hooks(f(g(h())))`.
func (c *GeneratedItemClient) Use(hooks ...Hook) {
	c.hooks.GeneratedItem = append(c.hooks.GeneratedItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generateditem.Intercept(f(g(h())))`.
func (c *GeneratedItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedItem = append(c.inters.GeneratedItem, interceptors...)
}

// Create returns a builder for creating a GeneratedItem entity.
func (c *GeneratedItemClient) Create() *GeneratedItemCreate {
	mutation := newGeneratedItemMutation(c.config, OpCreate)
	return &GeneratedItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedItem entities.
func (c *GeneratedItemClient) CreateBulk(builders ...*GeneratedItemCreate) *GeneratedItemCreateBulk {
	return &GeneratedItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedItemClient) MapCreateBulk(slice any, setFunc func(*GeneratedItemCreate, int)) *GeneratedItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedItemCreateBulk{err: fmt.Errorf("calling to GeneratedItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedItem.
func (c *GeneratedItemClient) Update() *GeneratedItemUpdate {
	mutation := newGeneratedItemMutation(c.config, OpUpdate)
	return &GeneratedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedItemClient) UpdateOne(_m *GeneratedItem) *GeneratedItemUpdateOne {
	mutation := newGeneratedItemMutation(c.config, OpUpdateOne, withGeneratedItem(_m))
	return &GeneratedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedItemClient) UpdateOneID(id uuid.UUID) *GeneratedItemUpdateOne {
	mutation := newGeneratedItemMutation(c.config, OpUpdateOne, withGeneratedItemID(id))
	return &GeneratedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedItem.
func (c *GeneratedItemClient) Delete() *GeneratedItemDelete {
	mutation := newGeneratedItemMutation(c.config, OpDelete)
	return &GeneratedItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedItemClient) DeleteOne(_m *GeneratedItem) *GeneratedItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedItemClient) DeleteOneID(id uuid.UUID) *GeneratedItemDeleteOne {
	builder := c.Delete().Where(generateditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedItemDeleteOne{builder}
}

// Query returns a query builder for GeneratedItem.
func (c *GeneratedItemClient) Query() *GeneratedItemQuery {
	return &GeneratedItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedItem},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedItem entity by its id.
func (c *GeneratedItemClient) Get(ctx context.Context, id uuid.UUID) (*GeneratedItem, error) {
	return c.Query().Where(generateditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedItemClient) GetX(ctx context.Context, id uuid.UUID) *GeneratedItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GeneratedItemClient) Hooks() []Hook {
	return c.hooks.GeneratedItem
}

// Interceptors returns the client interceptors.
func (c *GeneratedItemClient) Interceptors() []Interceptor {
	return c.inters.GeneratedItem
}

func (c *GeneratedItemClient) mutate(ctx context.Context, m *GeneratedItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedItem mutation op: %q", m.Op())
	}
}

// GeneratedSetClient is a client for the GeneratedSet schema.
type GeneratedSetClient struct {
	config
}

// NewGeneratedSetClient returns a client for the GeneratedSet from the given config.
func NewGeneratedSetClient(c config) *GeneratedSetClient {
	return &GeneratedSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedset.Hooks(f(g(h())))`.
func (c *GeneratedSetClient) Use(hooks ...Hook) {
	c.hooks.GeneratedSet = append(c.hooks.GeneratedSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedset.Intercept(f(g(h())))`.
func (c *GeneratedSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedSet = append(c.inters.GeneratedSet, interceptors...)
}

// Create returns a builder for creating a GeneratedSet entity.
func (c *GeneratedSetClient) Create() *GeneratedSetCreate {
	mutation := newGeneratedSetMutation(c.config, OpCreate)
	return &GeneratedSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedSet entities.
func (c *GeneratedSetClient) CreateBulk(builders ...*GeneratedSetCreate) *GeneratedSetCreateBulk {
	return &GeneratedSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedSetClient) MapCreateBulk(slice any, setFunc func(*GeneratedSetCreate, int)) *GeneratedSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedSetCreateBulk{err: fmt.Errorf("calling to GeneratedSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedSet.
func (c *GeneratedSetClient) Update() *GeneratedSetUpdate {
	mutation := newGeneratedSetMutation(c.config, OpUpdate)
	return &GeneratedSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedSetClient) UpdateOne(_m *GeneratedSet) *GeneratedSetUpdateOne {
	mutation := newGeneratedSetMutation(c.config, OpUpdateOne, withGeneratedSet(_m))
	return &GeneratedSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedSetClient) UpdateOneID(id uuid.UUID) *GeneratedSetUpdateOne {
	mutation := newGeneratedSetMutation(c.config, OpUpdateOne, withGeneratedSetID(id))
	return &GeneratedSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedSet.
func (c *GeneratedSetClient) Delete() *GeneratedSetDelete {
	mutation := newGeneratedSetMutation(c.config, OpDelete)
	return &GeneratedSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedSetClient) DeleteOne(_m *GeneratedSet) *GeneratedSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedSetClient) DeleteOneID(id uuid.UUID) *GeneratedSetDeleteOne {
	builder := c.Delete().Where(generatedset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedSetDeleteOne{builder}
}

// Query returns a query builder for GeneratedSet.
func (c *GeneratedSetClient) Query() *GeneratedSetQuery {
	return &GeneratedSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedSet},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedSet entity by its id.
func (c *GeneratedSetClient) Get(ctx context.Context, id uuid.UUID) (*GeneratedSet, error) {
	return c.Query().Where(generatedset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedSetClient) GetX(ctx context.Context, id uuid.UUID) *GeneratedSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GeneratedSetClient) Hooks() []Hook {
	return c.hooks.GeneratedSet
}

// Interceptors returns the client interceptors.
func (c *GeneratedSetClient) Interceptors() []Interceptor {
	return c.inters.GeneratedSet
}

func (c *GeneratedSetClient) mutate(ctx context.Context, m *GeneratedSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedSet mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MentorClient is a client for the Mentor schema.
type MentorClient struct {
	config
}

// NewMentorClient returns a client for the Mentor from the given config.
func NewMentorClient(c config) *MentorClient {
	return &MentorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentor.Hooks(f(g(h())))`.
func (c *MentorClient) Use(hooks ...Hook) {
	c.hooks.Mentor = append(c.hooks.Mentor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentor.Intercept(f(g(h())))`.
func (c *MentorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mentor = append(c.inters.Mentor, interceptors...)
}

// Create returns a builder for creating a Mentor entity.
func (c *MentorClient) Create() *MentorCreate {
	mutation := newMentorMutation(c.config, OpCreate)
	return &MentorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mentor entities.
func (c *MentorClient) CreateBulk(builders ...*MentorCreate) *MentorCreateBulk {
	return &MentorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentorClient) MapCreateBulk(slice any, setFunc func(*MentorCreate, int)) *MentorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentorCreateBulk{err: fmt.Errorf("calling to MentorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mentor.
func (c *MentorClient) Update() *MentorUpdate {
	mutation := newMentorMutation(c.config, OpUpdate)
	return &MentorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentorClient) UpdateOne(_m *Mentor) *MentorUpdateOne {
	mutation := newMentorMutation(c.config, OpUpdateOne, withMentor(_m))
	return &MentorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentorClient) UpdateOneID(id int) *MentorUpdateOne {
	mutation := newMentorMutation(c.config, OpUpdateOne, withMentorID(id))
	return &MentorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mentor.
func (c *MentorClient) Delete() *MentorDelete {
	mutation := newMentorMutation(c.config, OpDelete)
	return &MentorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentorClient) DeleteOne(_m *Mentor) *MentorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentorClient) DeleteOneID(id int) *MentorDeleteOne {
	builder := c.Delete().Where(mentor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentorDeleteOne{builder}
}

// Query returns a query builder for Mentor.
func (c *MentorClient) Query() *MentorQuery {
	return &MentorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentor},
		inters: c.Interceptors(),
	}
}

// Get returns a Mentor entity by its id.
func (c *MentorClient) Get(ctx context.Context, id int) (*Mentor, error) {
	return c.Query().Where(mentor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentorClient) GetX(ctx context.Context, id int) *Mentor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MentorClient) Hooks() []Hook {
	return c.hooks.Mentor
}

// Interceptors returns the client interceptors.
func (c *MentorClient) Interceptors() []Interceptor {
	return c.inters.Mentor
}

func (c *MentorClient) mutate(ctx context.Context, m *MentorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mentor mutation op: %q", m.Op())
	}
}

// PlayerStateClient is a client for the PlayerState schema.
type PlayerStateClient struct {
	config
}

// NewPlayerStateClient returns a client for the PlayerState from the given config.
func NewPlayerStateClient(c config) *PlayerStateClient {
	return &PlayerStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playerstate.Hooks(f(g(h())))`.
func (c *PlayerStateClient) Use(hooks ...Hook) {
	c.hooks.PlayerState = append(c.hooks.PlayerState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playerstate.Intercept(f(g(h())))`.
func (c *PlayerStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlayerState = append(c.inters.PlayerState, interceptors...)
}

// Create returns a builder for creating a PlayerState entity.
func (c *PlayerStateClient) Create() *PlayerStateCreate {
	mutation := newPlayerStateMutation(c.config, OpCreate)
	return &PlayerStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlayerState entities.
func (c *PlayerStateClient) CreateBulk(builders ...*PlayerStateCreate) *PlayerStateCreateBulk {
	return &PlayerStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlayerStateClient) MapCreateBulk(slice any, setFunc func(*PlayerStateCreate, int)) *PlayerStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlayerStateCreateBulk{err: fmt.Errorf("calling to PlayerStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlayerStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlayerStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlayerState.
func (c *PlayerStateClient) Update() *PlayerStateUpdate {
	mutation := newPlayerStateMutation(c.config, OpUpdate)
	return &PlayerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlayerStateClient) UpdateOne(_m *PlayerState) *PlayerStateUpdateOne {
	mutation := newPlayerStateMutation(c.config, OpUpdateOne, withPlayerState(_m))
	return &PlayerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlayerStateClient) UpdateOneID(id int) *PlayerStateUpdateOne {
	mutation := newPlayerStateMutation(c.config, OpUpdateOne, withPlayerStateID(id))
	return &PlayerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlayerState.
func (c *PlayerStateClient) Delete() *PlayerStateDelete {
	mutation := newPlayerStateMutation(c.config, OpDelete)
	return &PlayerStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlayerStateClient) DeleteOne(_m *PlayerState) *PlayerStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlayerStateClient) DeleteOneID(id int) *PlayerStateDeleteOne {
	builder := c.Delete().Where(playerstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlayerStateDeleteOne{builder}
}

// Query returns a query builder for PlayerState.
func (c *PlayerStateClient) Query() *PlayerStateQuery {
	return &PlayerStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlayerState},
		inters: c.Interceptors(),
	}
}

// Get returns a PlayerState entity by its id.
func (c *PlayerStateClient) Get(ctx context.Context, id int) (*PlayerState, error) {
	return c.Query().Where(playerstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlayerStateClient) GetX(ctx context.Context, id int) *PlayerState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlayerStateClient) Hooks() []Hook {
	return c.hooks.PlayerState
}

// Interceptors returns the client interceptors.
func (c *PlayerStateClient) Interceptors() []Interceptor {
	return c.inters.PlayerState
}

func (c *PlayerStateClient) mutate(ctx context.Context, m *PlayerStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlayerStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlayerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlayerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlayerStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlayerState mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id int) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id int) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id int) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id int) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// RateBucketClient is a client for the RateBucket schema.
type RateBucketClient struct {
	config
}

// NewRateBucketClient returns a client for the RateBucket from the given config.
func NewRateBucketClient(c config) *RateBucketClient {
	return &RateBucketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ratebucket.Hooks(f(g(h())))`.
func (c *RateBucketClient) Use(hooks ...Hook) {
	c.hooks.RateBucket = append(c.hooks.RateBucket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ratebucket.Intercept(f(g(h())))`.
func (c *RateBucketClient) Intercept(interceptors ...Interceptor) {
	c.inters.RateBucket = append(c.inters.RateBucket, interceptors...)
}

// Create returns a builder for creating a RateBucket entity.
func (c *RateBucketClient) Create() *RateBucketCreate {
	mutation := newRateBucketMutation(c.config, OpCreate)
	return &RateBucketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RateBucket entities.
func (c *RateBucketClient) CreateBulk(builders ...*RateBucketCreate) *RateBucketCreateBulk {
	return &RateBucketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RateBucketClient) MapCreateBulk(slice any, setFunc func(*RateBucketCreate, int)) *RateBucketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RateBucketCreateBulk{err: fmt.Errorf("calling to RateBucketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RateBucketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RateBucketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RateBucket.
func (c *RateBucketClient) Update() *RateBucketUpdate {
	mutation := newRateBucketMutation(c.config, OpUpdate)
	return &RateBucketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RateBucketClient) UpdateOne(_m *RateBucket) *RateBucketUpdateOne {
	mutation := newRateBucketMutation(c.config, OpUpdateOne, withRateBucket(_m))
	return &RateBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RateBucketClient) UpdateOneID(id int) *RateBucketUpdateOne {
	mutation := newRateBucketMutation(c.config, OpUpdateOne, withRateBucketID(id))
	return &RateBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RateBucket.
func (c *RateBucketClient) Delete() *RateBucketDelete {
	mutation := newRateBucketMutation(c.config, OpDelete)
	return &RateBucketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RateBucketClient) DeleteOne(_m *RateBucket) *RateBucketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RateBucketClient) DeleteOneID(id int) *RateBucketDeleteOne {
	builder := c.Delete().Where(ratebucket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RateBucketDeleteOne{builder}
}

// Query returns a query builder for RateBucket.
func (c *RateBucketClient) Query() *RateBucketQuery {
	return &RateBucketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRateBucket},
		inters: c.Interceptors(),
	}
}

// Get returns a RateBucket entity by its id.
func (c *RateBucketClient) Get(ctx context.Context, id int) (*RateBucket, error) {
	return c.Query().Where(ratebucket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RateBucketClient) GetX(ctx context.Context, id int) *RateBucket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RateBucketClient) Hooks() []Hook {
	return c.hooks.RateBucket
}

// Interceptors returns the client interceptors.
func (c *RateBucketClient) Interceptors() []Interceptor {
	return c.inters.RateBucket
}

func (c *RateBucketClient) mutate(ctx context.Context, m *RateBucketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RateBucketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RateBucketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RateBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RateBucketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RateBucket mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, GeneratedItem, GeneratedSet, LLMRequestEvent, Mentor, PlayerState,
		PromptTemplate, RateBucket []ent.Hook
	}
	inters struct {
		Attempt, GeneratedItem, GeneratedSet, LLMRequestEvent, Mentor, PlayerState,
		PromptTemplate, RateBucket []ent.Interceptor
	}
)
