// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/intakehq/intake/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/intakehq/intake/ent/agentdef"
	"github.com/intakehq/intake/ent/domainconfig"
	"github.com/intakehq/intake/ent/job"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentDef is the client for interacting with the AgentDef builders.
	AgentDef *AgentDefClient
	// DomainConfig is the client for interacting with the DomainConfig builders.
	DomainConfig *DomainConfigClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentDef = NewAgentDefClient(c.config)
	c.DomainConfig = NewDomainConfigClient(c.config)
	c.Job = NewJobClient(c.config)
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
		AgentDef:     NewAgentDefClient(cfg),
		DomainConfig: NewDomainConfigClient(cfg),
		Job:          NewJobClient(cfg),
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
		AgentDef:     NewAgentDefClient(cfg),
		DomainConfig: NewDomainConfigClient(cfg),
		Job:          NewJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentDef.
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
	c.AgentDef.Use(hooks...)
	c.DomainConfig.Use(hooks...)
	c.Job.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentDef.Intercept(interceptors...)
	c.DomainConfig.Intercept(interceptors...)
	c.Job.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentDefMutation:
		return c.AgentDef.mutate(ctx, m)
	case *DomainConfigMutation:
		return c.DomainConfig.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentDefClient is a client for the AgentDef schema.
type AgentDefClient struct {
	config
}

// NewAgentDefClient returns a client for the AgentDef from the given config.
func NewAgentDefClient(c config) *AgentDefClient {
	return &AgentDefClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentdef.Hooks(f(g(h())))`.
func (c *AgentDefClient) Use(hooks ...Hook) {
	c.hooks.AgentDef = append(c.hooks.AgentDef, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentdef.Intercept(f(g(h())))`.
func (c *AgentDefClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentDef = append(c.inters.AgentDef, interceptors...)
}

// Create returns a builder for creating a AgentDef entity.
func (c *AgentDefClient) Create() *AgentDefCreate {
	mutation := newAgentDefMutation(c.config, OpCreate)
	return &AgentDefCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentDef entities.
func (c *AgentDefClient) CreateBulk(builders ...*AgentDefCreate) *AgentDefCreateBulk {
	return &AgentDefCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentDefClient) MapCreateBulk(slice any, setFunc func(*AgentDefCreate, int)) *AgentDefCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentDefCreateBulk{err: fmt.Errorf("calling to AgentDefClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentDefCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentDefCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentDef.
func (c *AgentDefClient) Update() *AgentDefUpdate {
	mutation := newAgentDefMutation(c.config, OpUpdate)
	return &AgentDefUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentDefClient) UpdateOne(_m *AgentDef) *AgentDefUpdateOne {
	mutation := newAgentDefMutation(c.config, OpUpdateOne, withAgentDef(_m))
	return &AgentDefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentDefClient) UpdateOneID(id int) *AgentDefUpdateOne {
	mutation := newAgentDefMutation(c.config, OpUpdateOne, withAgentDefID(id))
	return &AgentDefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentDef.
func (c *AgentDefClient) Delete() *AgentDefDelete {
	mutation := newAgentDefMutation(c.config, OpDelete)
	return &AgentDefDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentDefClient) DeleteOne(_m *AgentDef) *AgentDefDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentDefClient) DeleteOneID(id int) *AgentDefDeleteOne {
	builder := c.Delete().Where(agentdef.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDefDeleteOne{builder}
}

// Query returns a query builder for AgentDef.
func (c *AgentDefClient) Query() *AgentDefQuery {
	return &AgentDefQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentDef},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentDef entity by its id.
func (c *AgentDefClient) Get(ctx context.Context, id int) (*AgentDef, error) {
	return c.Query().Where(agentdef.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentDefClient) GetX(ctx context.Context, id int) *AgentDef {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentDefClient) Hooks() []Hook {
	return c.hooks.AgentDef
}

// Interceptors returns the client interceptors.
func (c *AgentDefClient) Interceptors() []Interceptor {
	return c.inters.AgentDef
}

func (c *AgentDefClient) mutate(ctx context.Context, m *AgentDefMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentDefCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentDefUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentDefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDefDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentDef mutation op: %q", m.Op())
	}
}

// DomainConfigClient is a client for the DomainConfig schema.
type DomainConfigClient struct {
	config
}

// NewDomainConfigClient returns a client for the DomainConfig from the given config.
func NewDomainConfigClient(c config) *DomainConfigClient {
	return &DomainConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `domainconfig.Hooks(f(g(h())))`.
func (c *DomainConfigClient) Use(hooks ...Hook) {
	c.hooks.DomainConfig = append(c.hooks.DomainConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `domainconfig.Intercept(f(g(h())))`.
func (c *DomainConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.DomainConfig = append(c.inters.DomainConfig, interceptors...)
}

// Create returns a builder for creating a DomainConfig entity.
func (c *DomainConfigClient) Create() *DomainConfigCreate {
	mutation := newDomainConfigMutation(c.config, OpCreate)
	return &DomainConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DomainConfig entities.
func (c *DomainConfigClient) CreateBulk(builders ...*DomainConfigCreate) *DomainConfigCreateBulk {
	return &DomainConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DomainConfigClient) MapCreateBulk(slice any, setFunc func(*DomainConfigCreate, int)) *DomainConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DomainConfigCreateBulk{err: fmt.Errorf("calling to DomainConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DomainConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DomainConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DomainConfig.
func (c *DomainConfigClient) Update() *DomainConfigUpdate {
	mutation := newDomainConfigMutation(c.config, OpUpdate)
	return &DomainConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DomainConfigClient) UpdateOne(_m *DomainConfig) *DomainConfigUpdateOne {
	mutation := newDomainConfigMutation(c.config, OpUpdateOne, withDomainConfig(_m))
	return &DomainConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DomainConfigClient) UpdateOneID(id int) *DomainConfigUpdateOne {
	mutation := newDomainConfigMutation(c.config, OpUpdateOne, withDomainConfigID(id))
	return &DomainConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DomainConfig.
func (c *DomainConfigClient) Delete() *DomainConfigDelete {
	mutation := newDomainConfigMutation(c.config, OpDelete)
	return &DomainConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DomainConfigClient) DeleteOne(_m *DomainConfig) *DomainConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DomainConfigClient) DeleteOneID(id int) *DomainConfigDeleteOne {
	builder := c.Delete().Where(domainconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DomainConfigDeleteOne{builder}
}

// Query returns a query builder for DomainConfig.
func (c *DomainConfigClient) Query() *DomainConfigQuery {
	return &DomainConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDomainConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a DomainConfig entity by its id.
func (c *DomainConfigClient) Get(ctx context.Context, id int) (*DomainConfig, error) {
	return c.Query().Where(domainconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DomainConfigClient) GetX(ctx context.Context, id int) *DomainConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DomainConfigClient) Hooks() []Hook {
	return c.hooks.DomainConfig
}

// Interceptors returns the client interceptors.
func (c *DomainConfigClient) Interceptors() []Interceptor {
	return c.inters.DomainConfig
}

func (c *DomainConfigClient) mutate(ctx context.Context, m *DomainConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DomainConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DomainConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DomainConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DomainConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DomainConfig mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentDef, DomainConfig, Job []ent.Hook
	}
	inters struct {
		AgentDef, DomainConfig, Job []ent.Interceptor
	}
)
