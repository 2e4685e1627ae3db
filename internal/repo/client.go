// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Warinthorn/carelink_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/Warinthorn/carelink_backend/internal/repo/appointment"
	"github.com/Warinthorn/carelink_backend/internal/repo/familymember"
	"github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/repo/medication"
	"github.com/Warinthorn/carelink_backend/internal/repo/profile"
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/Warinthorn/carelink_backend/internal/repo/user"
	"github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdherenceLog is the client for interacting with the AdherenceLog builders.
	AdherenceLog *AdherenceLogClient
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// FamilyMember is the client for interacting with the FamilyMember builders.
	FamilyMember *FamilyMemberClient
	// HealthLog is the client for interacting with the HealthLog builders.
	HealthLog *HealthLogClient
	// Medication is the client for interacting with the Medication builders.
	Medication *MedicationClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// SmartIDEntry is the client for interacting with the SmartIDEntry builders.
	SmartIDEntry *SmartIDEntryClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WatchRelationship is the client for interacting with the WatchRelationship builders.
	WatchRelationship *WatchRelationshipClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdherenceLog = NewAdherenceLogClient(c.config)
	c.Appointment = NewAppointmentClient(c.config)
	c.FamilyMember = NewFamilyMemberClient(c.config)
	c.HealthLog = NewHealthLogClient(c.config)
	c.Medication = NewMedicationClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.SmartIDEntry = NewSmartIDEntryClient(c.config)
	c.User = NewUserClient(c.config)
	c.WatchRelationship = NewWatchRelationshipClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AdherenceLog:      NewAdherenceLogClient(cfg),
		Appointment:       NewAppointmentClient(cfg),
		FamilyMember:      NewFamilyMemberClient(cfg),
		HealthLog:         NewHealthLogClient(cfg),
		Medication:        NewMedicationClient(cfg),
		Profile:           NewProfileClient(cfg),
		SmartIDEntry:      NewSmartIDEntryClient(cfg),
		User:              NewUserClient(cfg),
		WatchRelationship: NewWatchRelationshipClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AdherenceLog:      NewAdherenceLogClient(cfg),
		Appointment:       NewAppointmentClient(cfg),
		FamilyMember:      NewFamilyMemberClient(cfg),
		HealthLog:         NewHealthLogClient(cfg),
		Medication:        NewMedicationClient(cfg),
		Profile:           NewProfileClient(cfg),
		SmartIDEntry:      NewSmartIDEntryClient(cfg),
		User:              NewUserClient(cfg),
		WatchRelationship: NewWatchRelationshipClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdherenceLog.
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
		c.AdherenceLog, c.Appointment, c.FamilyMember, c.HealthLog, c.Medication,
		c.Profile, c.SmartIDEntry, c.User, c.WatchRelationship,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdherenceLog, c.Appointment, c.FamilyMember, c.HealthLog, c.Medication,
		c.Profile, c.SmartIDEntry, c.User, c.WatchRelationship,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdherenceLogMutation:
		return c.AdherenceLog.mutate(ctx, m)
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *FamilyMemberMutation:
		return c.FamilyMember.mutate(ctx, m)
	case *HealthLogMutation:
		return c.HealthLog.mutate(ctx, m)
	case *MedicationMutation:
		return c.Medication.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *SmartIDEntryMutation:
		return c.SmartIDEntry.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WatchRelationshipMutation:
		return c.WatchRelationship.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AdherenceLogClient is a client for the AdherenceLog schema.
type AdherenceLogClient struct {
	config
}

// NewAdherenceLogClient returns a client for the AdherenceLog from the given config.
func NewAdherenceLogClient(c config) *AdherenceLogClient {
	return &AdherenceLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adherencelog.Hooks(f(g(h())))`.
func (c *AdherenceLogClient) Use(hooks ...Hook) {
	c.hooks.AdherenceLog = append(c.hooks.AdherenceLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adherencelog.Intercept(f(g(h())))`.
func (c *AdherenceLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdherenceLog = append(c.inters.AdherenceLog, interceptors...)
}

// Create returns a builder for creating a AdherenceLog entity.
func (c *AdherenceLogClient) Create() *AdherenceLogCreate {
	mutation := newAdherenceLogMutation(c.config, OpCreate)
	return &AdherenceLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdherenceLog entities.
func (c *AdherenceLogClient) CreateBulk(builders ...*AdherenceLogCreate) *AdherenceLogCreateBulk {
	return &AdherenceLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdherenceLogClient) MapCreateBulk(slice any, setFunc func(*AdherenceLogCreate, int)) *AdherenceLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdherenceLogCreateBulk{err: fmt.Errorf("calling to AdherenceLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdherenceLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdherenceLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdherenceLog.
func (c *AdherenceLogClient) Update() *AdherenceLogUpdate {
	mutation := newAdherenceLogMutation(c.config, OpUpdate)
	return &AdherenceLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdherenceLogClient) UpdateOne(_m *AdherenceLog) *AdherenceLogUpdateOne {
	mutation := newAdherenceLogMutation(c.config, OpUpdateOne, withAdherenceLog(_m))
	return &AdherenceLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdherenceLogClient) UpdateOneID(id uuid.UUID) *AdherenceLogUpdateOne {
	mutation := newAdherenceLogMutation(c.config, OpUpdateOne, withAdherenceLogID(id))
	return &AdherenceLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdherenceLog.
func (c *AdherenceLogClient) Delete() *AdherenceLogDelete {
	mutation := newAdherenceLogMutation(c.config, OpDelete)
	return &AdherenceLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdherenceLogClient) DeleteOne(_m *AdherenceLog) *AdherenceLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdherenceLogClient) DeleteOneID(id uuid.UUID) *AdherenceLogDeleteOne {
	builder := c.Delete().Where(adherencelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdherenceLogDeleteOne{builder}
}

// Query returns a query builder for AdherenceLog.
func (c *AdherenceLogClient) Query() *AdherenceLogQuery {
	return &AdherenceLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdherenceLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AdherenceLog entity by its id.
func (c *AdherenceLogClient) Get(ctx context.Context, id uuid.UUID) (*AdherenceLog, error) {
	return c.Query().Where(adherencelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdherenceLogClient) GetX(ctx context.Context, id uuid.UUID) *AdherenceLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdherenceLogClient) Hooks() []Hook {
	return c.hooks.AdherenceLog
}

// Interceptors returns the client interceptors.
func (c *AdherenceLogClient) Interceptors() []Interceptor {
	return c.inters.AdherenceLog
}

func (c *AdherenceLogClient) mutate(ctx context.Context, m *AdherenceLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdherenceLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdherenceLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdherenceLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdherenceLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AdherenceLog mutation op: %q", m.Op())
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// FamilyMemberClient is a client for the FamilyMember schema.
type FamilyMemberClient struct {
	config
}

// NewFamilyMemberClient returns a client for the FamilyMember from the given config.
func NewFamilyMemberClient(c config) *FamilyMemberClient {
	return &FamilyMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `familymember.Hooks(f(g(h())))`.
func (c *FamilyMemberClient) Use(hooks ...Hook) {
	c.hooks.FamilyMember = append(c.hooks.FamilyMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `familymember.Intercept(f(g(h())))`.
func (c *FamilyMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.FamilyMember = append(c.inters.FamilyMember, interceptors...)
}

// Create returns a builder for creating a FamilyMember entity.
func (c *FamilyMemberClient) Create() *FamilyMemberCreate {
	mutation := newFamilyMemberMutation(c.config, OpCreate)
	return &FamilyMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FamilyMember entities.
func (c *FamilyMemberClient) CreateBulk(builders ...*FamilyMemberCreate) *FamilyMemberCreateBulk {
	return &FamilyMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FamilyMemberClient) MapCreateBulk(slice any, setFunc func(*FamilyMemberCreate, int)) *FamilyMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FamilyMemberCreateBulk{err: fmt.Errorf("calling to FamilyMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FamilyMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FamilyMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FamilyMember.
func (c *FamilyMemberClient) Update() *FamilyMemberUpdate {
	mutation := newFamilyMemberMutation(c.config, OpUpdate)
	return &FamilyMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FamilyMemberClient) UpdateOne(_m *FamilyMember) *FamilyMemberUpdateOne {
	mutation := newFamilyMemberMutation(c.config, OpUpdateOne, withFamilyMember(_m))
	return &FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FamilyMemberClient) UpdateOneID(id uuid.UUID) *FamilyMemberUpdateOne {
	mutation := newFamilyMemberMutation(c.config, OpUpdateOne, withFamilyMemberID(id))
	return &FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FamilyMember.
func (c *FamilyMemberClient) Delete() *FamilyMemberDelete {
	mutation := newFamilyMemberMutation(c.config, OpDelete)
	return &FamilyMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FamilyMemberClient) DeleteOne(_m *FamilyMember) *FamilyMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FamilyMemberClient) DeleteOneID(id uuid.UUID) *FamilyMemberDeleteOne {
	builder := c.Delete().Where(familymember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FamilyMemberDeleteOne{builder}
}

// Query returns a query builder for FamilyMember.
func (c *FamilyMemberClient) Query() *FamilyMemberQuery {
	return &FamilyMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFamilyMember},
		inters: c.Interceptors(),
	}
}

// Get returns a FamilyMember entity by its id.
func (c *FamilyMemberClient) Get(ctx context.Context, id uuid.UUID) (*FamilyMember, error) {
	return c.Query().Where(familymember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FamilyMemberClient) GetX(ctx context.Context, id uuid.UUID) *FamilyMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FamilyMemberClient) Hooks() []Hook {
	return c.hooks.FamilyMember
}

// Interceptors returns the client interceptors.
func (c *FamilyMemberClient) Interceptors() []Interceptor {
	return c.inters.FamilyMember
}

func (c *FamilyMemberClient) mutate(ctx context.Context, m *FamilyMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FamilyMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FamilyMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FamilyMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown FamilyMember mutation op: %q", m.Op())
	}
}

// HealthLogClient is a client for the HealthLog schema.
type HealthLogClient struct {
	config
}

// NewHealthLogClient returns a client for the HealthLog from the given config.
func NewHealthLogClient(c config) *HealthLogClient {
	return &HealthLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `healthlog.Hooks(f(g(h())))`.
func (c *HealthLogClient) Use(hooks ...Hook) {
	c.hooks.HealthLog = append(c.hooks.HealthLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `healthlog.Intercept(f(g(h())))`.
func (c *HealthLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.HealthLog = append(c.inters.HealthLog, interceptors...)
}

// Create returns a builder for creating a HealthLog entity.
func (c *HealthLogClient) Create() *HealthLogCreate {
	mutation := newHealthLogMutation(c.config, OpCreate)
	return &HealthLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HealthLog entities.
func (c *HealthLogClient) CreateBulk(builders ...*HealthLogCreate) *HealthLogCreateBulk {
	return &HealthLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HealthLogClient) MapCreateBulk(slice any, setFunc func(*HealthLogCreate, int)) *HealthLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HealthLogCreateBulk{err: fmt.Errorf("calling to HealthLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HealthLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HealthLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HealthLog.
func (c *HealthLogClient) Update() *HealthLogUpdate {
	mutation := newHealthLogMutation(c.config, OpUpdate)
	return &HealthLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HealthLogClient) UpdateOne(_m *HealthLog) *HealthLogUpdateOne {
	mutation := newHealthLogMutation(c.config, OpUpdateOne, withHealthLog(_m))
	return &HealthLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HealthLogClient) UpdateOneID(id uuid.UUID) *HealthLogUpdateOne {
	mutation := newHealthLogMutation(c.config, OpUpdateOne, withHealthLogID(id))
	return &HealthLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HealthLog.
func (c *HealthLogClient) Delete() *HealthLogDelete {
	mutation := newHealthLogMutation(c.config, OpDelete)
	return &HealthLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HealthLogClient) DeleteOne(_m *HealthLog) *HealthLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HealthLogClient) DeleteOneID(id uuid.UUID) *HealthLogDeleteOne {
	builder := c.Delete().Where(healthlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HealthLogDeleteOne{builder}
}

// Query returns a query builder for HealthLog.
func (c *HealthLogClient) Query() *HealthLogQuery {
	return &HealthLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHealthLog},
		inters: c.Interceptors(),
	}
}

// Get returns a HealthLog entity by its id.
func (c *HealthLogClient) Get(ctx context.Context, id uuid.UUID) (*HealthLog, error) {
	return c.Query().Where(healthlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HealthLogClient) GetX(ctx context.Context, id uuid.UUID) *HealthLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HealthLogClient) Hooks() []Hook {
	return c.hooks.HealthLog
}

// Interceptors returns the client interceptors.
func (c *HealthLogClient) Interceptors() []Interceptor {
	return c.inters.HealthLog
}

func (c *HealthLogClient) mutate(ctx context.Context, m *HealthLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HealthLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HealthLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HealthLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HealthLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown HealthLog mutation op: %q", m.Op())
	}
}

// MedicationClient is a client for the Medication schema.
type MedicationClient struct {
	config
}

// NewMedicationClient returns a client for the Medication from the given config.
func NewMedicationClient(c config) *MedicationClient {
	return &MedicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medication.Hooks(f(g(h())))`.
func (c *MedicationClient) Use(hooks ...Hook) {
	c.hooks.Medication = append(c.hooks.Medication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medication.Intercept(f(g(h())))`.
func (c *MedicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Medication = append(c.inters.Medication, interceptors...)
}

// Create returns a builder for creating a Medication entity.
func (c *MedicationClient) Create() *MedicationCreate {
	mutation := newMedicationMutation(c.config, OpCreate)
	return &MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Medication entities.
func (c *MedicationClient) CreateBulk(builders ...*MedicationCreate) *MedicationCreateBulk {
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicationClient) MapCreateBulk(slice any, setFunc func(*MedicationCreate, int)) *MedicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicationCreateBulk{err: fmt.Errorf("calling to MedicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Medication.
func (c *MedicationClient) Update() *MedicationUpdate {
	mutation := newMedicationMutation(c.config, OpUpdate)
	return &MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicationClient) UpdateOne(_m *Medication) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedication(_m))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicationClient) UpdateOneID(id uuid.UUID) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedicationID(id))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Medication.
func (c *MedicationClient) Delete() *MedicationDelete {
	mutation := newMedicationMutation(c.config, OpDelete)
	return &MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicationClient) DeleteOne(_m *Medication) *MedicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicationClient) DeleteOneID(id uuid.UUID) *MedicationDeleteOne {
	builder := c.Delete().Where(medication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicationDeleteOne{builder}
}

// Query returns a query builder for Medication.
func (c *MedicationClient) Query() *MedicationQuery {
	return &MedicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedication},
		inters: c.Interceptors(),
	}
}

// Get returns a Medication entity by its id.
func (c *MedicationClient) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return c.Query().Where(medication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicationClient) GetX(ctx context.Context, id uuid.UUID) *Medication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicationClient) Hooks() []Hook {
	return c.hooks.Medication
}

// Interceptors returns the client interceptors.
func (c *MedicationClient) Interceptors() []Interceptor {
	return c.inters.Medication
}

func (c *MedicationClient) mutate(ctx context.Context, m *MedicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Medication mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Profile mutation op: %q", m.Op())
	}
}

// SmartIDEntryClient is a client for the SmartIDEntry schema.
type SmartIDEntryClient struct {
	config
}

// NewSmartIDEntryClient returns a client for the SmartIDEntry from the given config.
func NewSmartIDEntryClient(c config) *SmartIDEntryClient {
	return &SmartIDEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `smartidentry.Hooks(f(g(h())))`.
func (c *SmartIDEntryClient) Use(hooks ...Hook) {
	c.hooks.SmartIDEntry = append(c.hooks.SmartIDEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `smartidentry.Intercept(f(g(h())))`.
func (c *SmartIDEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SmartIDEntry = append(c.inters.SmartIDEntry, interceptors...)
}

// Create returns a builder for creating a SmartIDEntry entity.
func (c *SmartIDEntryClient) Create() *SmartIDEntryCreate {
	mutation := newSmartIDEntryMutation(c.config, OpCreate)
	return &SmartIDEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SmartIDEntry entities.
func (c *SmartIDEntryClient) CreateBulk(builders ...*SmartIDEntryCreate) *SmartIDEntryCreateBulk {
	return &SmartIDEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SmartIDEntryClient) MapCreateBulk(slice any, setFunc func(*SmartIDEntryCreate, int)) *SmartIDEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SmartIDEntryCreateBulk{err: fmt.Errorf("calling to SmartIDEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SmartIDEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SmartIDEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SmartIDEntry.
func (c *SmartIDEntryClient) Update() *SmartIDEntryUpdate {
	mutation := newSmartIDEntryMutation(c.config, OpUpdate)
	return &SmartIDEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SmartIDEntryClient) UpdateOne(_m *SmartIDEntry) *SmartIDEntryUpdateOne {
	mutation := newSmartIDEntryMutation(c.config, OpUpdateOne, withSmartIDEntry(_m))
	return &SmartIDEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SmartIDEntryClient) UpdateOneID(id uuid.UUID) *SmartIDEntryUpdateOne {
	mutation := newSmartIDEntryMutation(c.config, OpUpdateOne, withSmartIDEntryID(id))
	return &SmartIDEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SmartIDEntry.
func (c *SmartIDEntryClient) Delete() *SmartIDEntryDelete {
	mutation := newSmartIDEntryMutation(c.config, OpDelete)
	return &SmartIDEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SmartIDEntryClient) DeleteOne(_m *SmartIDEntry) *SmartIDEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SmartIDEntryClient) DeleteOneID(id uuid.UUID) *SmartIDEntryDeleteOne {
	builder := c.Delete().Where(smartidentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SmartIDEntryDeleteOne{builder}
}

// Query returns a query builder for SmartIDEntry.
func (c *SmartIDEntryClient) Query() *SmartIDEntryQuery {
	return &SmartIDEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSmartIDEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SmartIDEntry entity by its id.
func (c *SmartIDEntryClient) Get(ctx context.Context, id uuid.UUID) (*SmartIDEntry, error) {
	return c.Query().Where(smartidentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SmartIDEntryClient) GetX(ctx context.Context, id uuid.UUID) *SmartIDEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SmartIDEntryClient) Hooks() []Hook {
	return c.hooks.SmartIDEntry
}

// Interceptors returns the client interceptors.
func (c *SmartIDEntryClient) Interceptors() []Interceptor {
	return c.inters.SmartIDEntry
}

func (c *SmartIDEntryClient) mutate(ctx context.Context, m *SmartIDEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SmartIDEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SmartIDEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SmartIDEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SmartIDEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SmartIDEntry mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// WatchRelationshipClient is a client for the WatchRelationship schema.
type WatchRelationshipClient struct {
	config
}

// NewWatchRelationshipClient returns a client for the WatchRelationship from the given config.
func NewWatchRelationshipClient(c config) *WatchRelationshipClient {
	return &WatchRelationshipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `watchrelationship.Hooks(f(g(h())))`.
func (c *WatchRelationshipClient) Use(hooks ...Hook) {
	c.hooks.WatchRelationship = append(c.hooks.WatchRelationship, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `watchrelationship.Intercept(f(g(h())))`.
func (c *WatchRelationshipClient) Intercept(interceptors ...Interceptor) {
	c.inters.WatchRelationship = append(c.inters.WatchRelationship, interceptors...)
}

// Create returns a builder for creating a WatchRelationship entity.
func (c *WatchRelationshipClient) Create() *WatchRelationshipCreate {
	mutation := newWatchRelationshipMutation(c.config, OpCreate)
	return &WatchRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WatchRelationship entities.
func (c *WatchRelationshipClient) CreateBulk(builders ...*WatchRelationshipCreate) *WatchRelationshipCreateBulk {
	return &WatchRelationshipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WatchRelationshipClient) MapCreateBulk(slice any, setFunc func(*WatchRelationshipCreate, int)) *WatchRelationshipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WatchRelationshipCreateBulk{err: fmt.Errorf("calling to WatchRelationshipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WatchRelationshipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WatchRelationshipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WatchRelationship.
func (c *WatchRelationshipClient) Update() *WatchRelationshipUpdate {
	mutation := newWatchRelationshipMutation(c.config, OpUpdate)
	return &WatchRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WatchRelationshipClient) UpdateOne(_m *WatchRelationship) *WatchRelationshipUpdateOne {
	mutation := newWatchRelationshipMutation(c.config, OpUpdateOne, withWatchRelationship(_m))
	return &WatchRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WatchRelationshipClient) UpdateOneID(id uuid.UUID) *WatchRelationshipUpdateOne {
	mutation := newWatchRelationshipMutation(c.config, OpUpdateOne, withWatchRelationshipID(id))
	return &WatchRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WatchRelationship.
func (c *WatchRelationshipClient) Delete() *WatchRelationshipDelete {
	mutation := newWatchRelationshipMutation(c.config, OpDelete)
	return &WatchRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WatchRelationshipClient) DeleteOne(_m *WatchRelationship) *WatchRelationshipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WatchRelationshipClient) DeleteOneID(id uuid.UUID) *WatchRelationshipDeleteOne {
	builder := c.Delete().Where(watchrelationship.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WatchRelationshipDeleteOne{builder}
}

// Query returns a query builder for WatchRelationship.
func (c *WatchRelationshipClient) Query() *WatchRelationshipQuery {
	return &WatchRelationshipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWatchRelationship},
		inters: c.Interceptors(),
	}
}

// Get returns a WatchRelationship entity by its id.
func (c *WatchRelationshipClient) Get(ctx context.Context, id uuid.UUID) (*WatchRelationship, error) {
	return c.Query().Where(watchrelationship.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WatchRelationshipClient) GetX(ctx context.Context, id uuid.UUID) *WatchRelationship {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WatchRelationshipClient) Hooks() []Hook {
	return c.hooks.WatchRelationship
}

// Interceptors returns the client interceptors.
func (c *WatchRelationshipClient) Interceptors() []Interceptor {
	return c.inters.WatchRelationship
}

func (c *WatchRelationshipClient) mutate(ctx context.Context, m *WatchRelationshipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WatchRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WatchRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WatchRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WatchRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WatchRelationship mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdherenceLog, Appointment, FamilyMember, HealthLog, Medication, Profile,
		SmartIDEntry, User, WatchRelationship []ent.Hook
	}
	inters struct {
		AdherenceLog, Appointment, FamilyMember, HealthLog, Medication, Profile,
		SmartIDEntry, User, WatchRelationship []ent.Interceptor
	}
)
