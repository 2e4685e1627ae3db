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
	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/Warinthorn/carelink_backend/internal/repo/appointment"
	"github.com/Warinthorn/carelink_backend/internal/repo/familymember"
	"github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/repo/medication"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/Warinthorn/carelink_backend/internal/repo/profile"
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/Warinthorn/carelink_backend/internal/repo/user"
	"github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdherenceLog      = "AdherenceLog"
	TypeAppointment       = "Appointment"
	TypeFamilyMember      = "FamilyMember"
	TypeHealthLog         = "HealthLog"
	TypeMedication        = "Medication"
	TypeProfile           = "Profile"
	TypeSmartIDEntry      = "SmartIDEntry"
	TypeUser              = "User"
	TypeWatchRelationship = "WatchRelationship"
)

// AdherenceLogMutation represents an operation that mutates the AdherenceLog nodes in the graph.
type AdherenceLogMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	patient_id       *uuid.UUID
	date             *string
	taken_meds       *[]string
	appendtaken_meds []string
	taken_count      *int
	addtaken_count   *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AdherenceLog, error)
	predicates       []predicate.AdherenceLog
}

var _ ent.Mutation = (*AdherenceLogMutation)(nil)

// adherencelogOption allows management of the mutation configuration using functional options.
type adherencelogOption func(*AdherenceLogMutation)

// newAdherenceLogMutation creates new mutation for the AdherenceLog entity.
func newAdherenceLogMutation(c config, op Op, opts ...adherencelogOption) *AdherenceLogMutation {
	m := &AdherenceLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAdherenceLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdherenceLogID sets the ID field of the mutation.
func withAdherenceLogID(id uuid.UUID) adherencelogOption {
	return func(m *AdherenceLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AdherenceLog
		)
		m.oldValue = func(ctx context.Context) (*AdherenceLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdherenceLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdherenceLog sets the old AdherenceLog of the mutation.
func withAdherenceLog(node *AdherenceLog) adherencelogOption {
	return func(m *AdherenceLogMutation) {
		m.oldValue = func(context.Context) (*AdherenceLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdherenceLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdherenceLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdherenceLog entities.
func (m *AdherenceLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdherenceLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdherenceLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdherenceLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AdherenceLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdherenceLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdherenceLog entity.
// If the AdherenceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AdherenceLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdherenceLogMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdherenceLogMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdherenceLog entity.
// If the AdherenceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceLogMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AdherenceLogMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AdherenceLogMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AdherenceLogMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the AdherenceLog entity.
// If the AdherenceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceLogMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AdherenceLogMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDate sets the "date" field.
func (m *AdherenceLogMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *AdherenceLogMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the AdherenceLog entity.
// If the AdherenceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceLogMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *AdherenceLogMutation) ResetDate() {
	m.date = nil
}

// SetTakenMeds sets the "taken_meds" field.
func (m *AdherenceLogMutation) SetTakenMeds(s []string) {
	m.taken_meds = &s
	m.appendtaken_meds = nil
}

// TakenMeds returns the value of the "taken_meds" field in the mutation.
func (m *AdherenceLogMutation) TakenMeds() (r []string, exists bool) {
	v := m.taken_meds
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenMeds returns the old "taken_meds" field's value of the AdherenceLog entity.
// If the AdherenceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceLogMutation) OldTakenMeds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenMeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenMeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenMeds: %w", err)
	}
	return oldValue.TakenMeds, nil
}

// AppendTakenMeds adds s to the "taken_meds" field.
func (m *AdherenceLogMutation) AppendTakenMeds(s []string) {
	m.appendtaken_meds = append(m.appendtaken_meds, s...)
}

// AppendedTakenMeds returns the list of values that were appended to the "taken_meds" field in this mutation.
func (m *AdherenceLogMutation) AppendedTakenMeds() ([]string, bool) {
	if len(m.appendtaken_meds) == 0 {
		return nil, false
	}
	return m.appendtaken_meds, true
}

// ResetTakenMeds resets all changes to the "taken_meds" field.
func (m *AdherenceLogMutation) ResetTakenMeds() {
	m.taken_meds = nil
	m.appendtaken_meds = nil
}

// SetTakenCount sets the "taken_count" field.
func (m *AdherenceLogMutation) SetTakenCount(i int) {
	m.taken_count = &i
	m.addtaken_count = nil
}

// TakenCount returns the value of the "taken_count" field in the mutation.
func (m *AdherenceLogMutation) TakenCount() (r int, exists bool) {
	v := m.taken_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenCount returns the old "taken_count" field's value of the AdherenceLog entity.
// If the AdherenceLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceLogMutation) OldTakenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenCount: %w", err)
	}
	return oldValue.TakenCount, nil
}

// AddTakenCount adds i to the "taken_count" field.
func (m *AdherenceLogMutation) AddTakenCount(i int) {
	if m.addtaken_count != nil {
		*m.addtaken_count += i
	} else {
		m.addtaken_count = &i
	}
}

// AddedTakenCount returns the value that was added to the "taken_count" field in this mutation.
func (m *AdherenceLogMutation) AddedTakenCount() (r int, exists bool) {
	v := m.addtaken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTakenCount resets all changes to the "taken_count" field.
func (m *AdherenceLogMutation) ResetTakenCount() {
	m.taken_count = nil
	m.addtaken_count = nil
}

// Where appends a list predicates to the AdherenceLogMutation builder.
func (m *AdherenceLogMutation) Where(ps ...predicate.AdherenceLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdherenceLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdherenceLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdherenceLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdherenceLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdherenceLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdherenceLog).
func (m *AdherenceLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdherenceLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, adherencelog.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, adherencelog.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, adherencelog.FieldPatientID)
	}
	if m.date != nil {
		fields = append(fields, adherencelog.FieldDate)
	}
	if m.taken_meds != nil {
		fields = append(fields, adherencelog.FieldTakenMeds)
	}
	if m.taken_count != nil {
		fields = append(fields, adherencelog.FieldTakenCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdherenceLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adherencelog.FieldCreatedAt:
		return m.CreatedAt()
	case adherencelog.FieldUpdatedAt:
		return m.UpdatedAt()
	case adherencelog.FieldPatientID:
		return m.PatientID()
	case adherencelog.FieldDate:
		return m.Date()
	case adherencelog.FieldTakenMeds:
		return m.TakenMeds()
	case adherencelog.FieldTakenCount:
		return m.TakenCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdherenceLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adherencelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adherencelog.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case adherencelog.FieldPatientID:
		return m.OldPatientID(ctx)
	case adherencelog.FieldDate:
		return m.OldDate(ctx)
	case adherencelog.FieldTakenMeds:
		return m.OldTakenMeds(ctx)
	case adherencelog.FieldTakenCount:
		return m.OldTakenCount(ctx)
	}
	return nil, fmt.Errorf("unknown AdherenceLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdherenceLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adherencelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adherencelog.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case adherencelog.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case adherencelog.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case adherencelog.FieldTakenMeds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenMeds(v)
		return nil
	case adherencelog.FieldTakenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenCount(v)
		return nil
	}
	return fmt.Errorf("unknown AdherenceLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdherenceLogMutation) AddedFields() []string {
	var fields []string
	if m.addtaken_count != nil {
		fields = append(fields, adherencelog.FieldTakenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdherenceLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adherencelog.FieldTakenCount:
		return m.AddedTakenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdherenceLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adherencelog.FieldTakenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTakenCount(v)
		return nil
	}
	return fmt.Errorf("unknown AdherenceLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdherenceLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdherenceLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdherenceLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdherenceLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdherenceLogMutation) ResetField(name string) error {
	switch name {
	case adherencelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adherencelog.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case adherencelog.FieldPatientID:
		m.ResetPatientID()
		return nil
	case adherencelog.FieldDate:
		m.ResetDate()
		return nil
	case adherencelog.FieldTakenMeds:
		m.ResetTakenMeds()
		return nil
	case adherencelog.FieldTakenCount:
		m.ResetTakenCount()
		return nil
	}
	return fmt.Errorf("unknown AdherenceLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdherenceLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdherenceLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdherenceLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdherenceLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdherenceLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdherenceLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdherenceLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdherenceLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdherenceLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdherenceLog edge %s", name)
}

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	patient_id    *uuid.UUID
	date          *string
	time          *string
	location      *string
	department    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Appointment, error)
	predicates    []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AppointmentMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AppointmentMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AppointmentMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDate sets the "date" field.
func (m *AppointmentMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *AppointmentMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *AppointmentMutation) ResetDate() {
	m.date = nil
}

// SetTime sets the "time" field.
func (m *AppointmentMutation) SetTime(s string) {
	m.time = &s
}

// Time returns the value of the "time" field in the mutation.
func (m *AppointmentMutation) Time() (r string, exists bool) {
	v := m.time
	if v == nil {
		return
	}
	return *v, true
}

// OldTime returns the old "time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTime: %w", err)
	}
	return oldValue.Time, nil
}

// ClearTime clears the value of the "time" field.
func (m *AppointmentMutation) ClearTime() {
	m.time = nil
	m.clearedFields[appointment.FieldTime] = struct{}{}
}

// TimeCleared returns if the "time" field was cleared in this mutation.
func (m *AppointmentMutation) TimeCleared() bool {
	_, ok := m.clearedFields[appointment.FieldTime]
	return ok
}

// ResetTime resets all changes to the "time" field.
func (m *AppointmentMutation) ResetTime() {
	m.time = nil
	delete(m.clearedFields, appointment.FieldTime)
}

// SetLocation sets the "location" field.
func (m *AppointmentMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *AppointmentMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *AppointmentMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[appointment.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *AppointmentMutation) LocationCleared() bool {
	_, ok := m.clearedFields[appointment.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *AppointmentMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, appointment.FieldLocation)
}

// SetDepartment sets the "department" field.
func (m *AppointmentMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *AppointmentMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *AppointmentMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[appointment.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *AppointmentMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[appointment.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *AppointmentMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, appointment.FieldDepartment)
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, appointment.FieldPatientID)
	}
	if m.date != nil {
		fields = append(fields, appointment.FieldDate)
	}
	if m.time != nil {
		fields = append(fields, appointment.FieldTime)
	}
	if m.location != nil {
		fields = append(fields, appointment.FieldLocation)
	}
	if m.department != nil {
		fields = append(fields, appointment.FieldDepartment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldPatientID:
		return m.PatientID()
	case appointment.FieldDate:
		return m.Date()
	case appointment.FieldTime:
		return m.Time()
	case appointment.FieldLocation:
		return m.Location()
	case appointment.FieldDepartment:
		return m.Department()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldPatientID:
		return m.OldPatientID(ctx)
	case appointment.FieldDate:
		return m.OldDate(ctx)
	case appointment.FieldTime:
		return m.OldTime(ctx)
	case appointment.FieldLocation:
		return m.OldLocation(ctx)
	case appointment.FieldDepartment:
		return m.OldDepartment(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case appointment.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case appointment.FieldTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTime(v)
		return nil
	case appointment.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case appointment.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldTime) {
		fields = append(fields, appointment.FieldTime)
	}
	if m.FieldCleared(appointment.FieldLocation) {
		fields = append(fields, appointment.FieldLocation)
	}
	if m.FieldCleared(appointment.FieldDepartment) {
		fields = append(fields, appointment.FieldDepartment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldTime:
		m.ClearTime()
		return nil
	case appointment.FieldLocation:
		m.ClearLocation()
		return nil
	case appointment.FieldDepartment:
		m.ClearDepartment()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldPatientID:
		m.ResetPatientID()
		return nil
	case appointment.FieldDate:
		m.ResetDate()
		return nil
	case appointment.FieldTime:
		m.ResetTime()
		return nil
	case appointment.FieldLocation:
		m.ResetLocation()
		return nil
	case appointment.FieldDepartment:
		m.ResetDepartment()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// FamilyMemberMutation represents an operation that mutates the FamilyMember nodes in the graph.
type FamilyMemberMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	patient_id    *uuid.UUID
	name          *string
	phone         *string
	relation      *familymember.Relation
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FamilyMember, error)
	predicates    []predicate.FamilyMember
}

var _ ent.Mutation = (*FamilyMemberMutation)(nil)

// familymemberOption allows management of the mutation configuration using functional options.
type familymemberOption func(*FamilyMemberMutation)

// newFamilyMemberMutation creates new mutation for the FamilyMember entity.
func newFamilyMemberMutation(c config, op Op, opts ...familymemberOption) *FamilyMemberMutation {
	m := &FamilyMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeFamilyMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFamilyMemberID sets the ID field of the mutation.
func withFamilyMemberID(id uuid.UUID) familymemberOption {
	return func(m *FamilyMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *FamilyMember
		)
		m.oldValue = func(ctx context.Context) (*FamilyMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FamilyMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFamilyMember sets the old FamilyMember of the mutation.
func withFamilyMember(node *FamilyMember) familymemberOption {
	return func(m *FamilyMemberMutation) {
		m.oldValue = func(context.Context) (*FamilyMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FamilyMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FamilyMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FamilyMember entities.
func (m *FamilyMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FamilyMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FamilyMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FamilyMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FamilyMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FamilyMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FamilyMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FamilyMemberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FamilyMemberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FamilyMemberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *FamilyMemberMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *FamilyMemberMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *FamilyMemberMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetName sets the "name" field.
func (m *FamilyMemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FamilyMemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *FamilyMemberMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *FamilyMemberMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *FamilyMemberMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *FamilyMemberMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[familymember.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *FamilyMemberMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[familymember.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *FamilyMemberMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, familymember.FieldPhone)
}

// SetRelation sets the "relation" field.
func (m *FamilyMemberMutation) SetRelation(f familymember.Relation) {
	m.relation = &f
}

// Relation returns the value of the "relation" field in the mutation.
func (m *FamilyMemberMutation) Relation() (r familymember.Relation, exists bool) {
	v := m.relation
	if v == nil {
		return
	}
	return *v, true
}

// OldRelation returns the old "relation" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldRelation(ctx context.Context) (v familymember.Relation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelation: %w", err)
	}
	return oldValue.Relation, nil
}

// ResetRelation resets all changes to the "relation" field.
func (m *FamilyMemberMutation) ResetRelation() {
	m.relation = nil
}

// Where appends a list predicates to the FamilyMemberMutation builder.
func (m *FamilyMemberMutation) Where(ps ...predicate.FamilyMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FamilyMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FamilyMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FamilyMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FamilyMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FamilyMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FamilyMember).
func (m *FamilyMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FamilyMemberMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, familymember.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, familymember.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, familymember.FieldPatientID)
	}
	if m.name != nil {
		fields = append(fields, familymember.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, familymember.FieldPhone)
	}
	if m.relation != nil {
		fields = append(fields, familymember.FieldRelation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FamilyMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case familymember.FieldCreatedAt:
		return m.CreatedAt()
	case familymember.FieldUpdatedAt:
		return m.UpdatedAt()
	case familymember.FieldPatientID:
		return m.PatientID()
	case familymember.FieldName:
		return m.Name()
	case familymember.FieldPhone:
		return m.Phone()
	case familymember.FieldRelation:
		return m.Relation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FamilyMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case familymember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case familymember.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case familymember.FieldPatientID:
		return m.OldPatientID(ctx)
	case familymember.FieldName:
		return m.OldName(ctx)
	case familymember.FieldPhone:
		return m.OldPhone(ctx)
	case familymember.FieldRelation:
		return m.OldRelation(ctx)
	}
	return nil, fmt.Errorf("unknown FamilyMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case familymember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case familymember.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case familymember.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case familymember.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case familymember.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case familymember.FieldRelation:
		v, ok := value.(familymember.Relation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelation(v)
		return nil
	}
	return fmt.Errorf("unknown FamilyMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FamilyMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FamilyMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FamilyMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FamilyMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(familymember.FieldPhone) {
		fields = append(fields, familymember.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FamilyMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FamilyMemberMutation) ClearField(name string) error {
	switch name {
	case familymember.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FamilyMemberMutation) ResetField(name string) error {
	switch name {
	case familymember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case familymember.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case familymember.FieldPatientID:
		m.ResetPatientID()
		return nil
	case familymember.FieldName:
		m.ResetName()
		return nil
	case familymember.FieldPhone:
		m.ResetPhone()
		return nil
	case familymember.FieldRelation:
		m.ResetRelation()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FamilyMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FamilyMemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FamilyMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FamilyMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FamilyMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FamilyMemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FamilyMemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FamilyMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FamilyMemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FamilyMember edge %s", name)
}

// HealthLogMutation represents an operation that mutates the HealthLog nodes in the graph.
type HealthLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	patient_id    *uuid.UUID
	_type         *healthlog.Type
	date          *string
	sys           *float64
	addsys        *float64
	dia           *float64
	adddia        *float64
	sugar         *float64
	addsugar      *float64
	weight        *float64
	addweight     *float64
	hba1c         *float64
	addhba1c      *float64
	lipid         *float64
	addlipid      *float64
	egfr          *float64
	addegfr       *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*HealthLog, error)
	predicates    []predicate.HealthLog
}

var _ ent.Mutation = (*HealthLogMutation)(nil)

// healthlogOption allows management of the mutation configuration using functional options.
type healthlogOption func(*HealthLogMutation)

// newHealthLogMutation creates new mutation for the HealthLog entity.
func newHealthLogMutation(c config, op Op, opts ...healthlogOption) *HealthLogMutation {
	m := &HealthLogMutation{
		config:        c,
		op:            op,
		typ:           TypeHealthLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHealthLogID sets the ID field of the mutation.
func withHealthLogID(id uuid.UUID) healthlogOption {
	return func(m *HealthLogMutation) {
		var (
			err   error
			once  sync.Once
			value *HealthLog
		)
		m.oldValue = func(ctx context.Context) (*HealthLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HealthLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHealthLog sets the old HealthLog of the mutation.
func withHealthLog(node *HealthLog) healthlogOption {
	return func(m *HealthLogMutation) {
		m.oldValue = func(context.Context) (*HealthLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HealthLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HealthLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HealthLog entities.
func (m *HealthLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HealthLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HealthLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HealthLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HealthLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HealthLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *HealthLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *HealthLogMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *HealthLogMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *HealthLogMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetType sets the "type" field.
func (m *HealthLogMutation) SetType(h healthlog.Type) {
	m._type = &h
}

// GetType returns the value of the "type" field in the mutation.
func (m *HealthLogMutation) GetType() (r healthlog.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldType(ctx context.Context) (v healthlog.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *HealthLogMutation) ResetType() {
	m._type = nil
}

// SetDate sets the "date" field.
func (m *HealthLogMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *HealthLogMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *HealthLogMutation) ResetDate() {
	m.date = nil
}

// SetSys sets the "sys" field.
func (m *HealthLogMutation) SetSys(f float64) {
	m.sys = &f
	m.addsys = nil
}

// Sys returns the value of the "sys" field in the mutation.
func (m *HealthLogMutation) Sys() (r float64, exists bool) {
	v := m.sys
	if v == nil {
		return
	}
	return *v, true
}

// OldSys returns the old "sys" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldSys(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSys: %w", err)
	}
	return oldValue.Sys, nil
}

// AddSys adds f to the "sys" field.
func (m *HealthLogMutation) AddSys(f float64) {
	if m.addsys != nil {
		*m.addsys += f
	} else {
		m.addsys = &f
	}
}

// AddedSys returns the value that was added to the "sys" field in this mutation.
func (m *HealthLogMutation) AddedSys() (r float64, exists bool) {
	v := m.addsys
	if v == nil {
		return
	}
	return *v, true
}

// ClearSys clears the value of the "sys" field.
func (m *HealthLogMutation) ClearSys() {
	m.sys = nil
	m.addsys = nil
	m.clearedFields[healthlog.FieldSys] = struct{}{}
}

// SysCleared returns if the "sys" field was cleared in this mutation.
func (m *HealthLogMutation) SysCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldSys]
	return ok
}

// ResetSys resets all changes to the "sys" field.
func (m *HealthLogMutation) ResetSys() {
	m.sys = nil
	m.addsys = nil
	delete(m.clearedFields, healthlog.FieldSys)
}

// SetDia sets the "dia" field.
func (m *HealthLogMutation) SetDia(f float64) {
	m.dia = &f
	m.adddia = nil
}

// Dia returns the value of the "dia" field in the mutation.
func (m *HealthLogMutation) Dia() (r float64, exists bool) {
	v := m.dia
	if v == nil {
		return
	}
	return *v, true
}

// OldDia returns the old "dia" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldDia(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDia: %w", err)
	}
	return oldValue.Dia, nil
}

// AddDia adds f to the "dia" field.
func (m *HealthLogMutation) AddDia(f float64) {
	if m.adddia != nil {
		*m.adddia += f
	} else {
		m.adddia = &f
	}
}

// AddedDia returns the value that was added to the "dia" field in this mutation.
func (m *HealthLogMutation) AddedDia() (r float64, exists bool) {
	v := m.adddia
	if v == nil {
		return
	}
	return *v, true
}

// ClearDia clears the value of the "dia" field.
func (m *HealthLogMutation) ClearDia() {
	m.dia = nil
	m.adddia = nil
	m.clearedFields[healthlog.FieldDia] = struct{}{}
}

// DiaCleared returns if the "dia" field was cleared in this mutation.
func (m *HealthLogMutation) DiaCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldDia]
	return ok
}

// ResetDia resets all changes to the "dia" field.
func (m *HealthLogMutation) ResetDia() {
	m.dia = nil
	m.adddia = nil
	delete(m.clearedFields, healthlog.FieldDia)
}

// SetSugar sets the "sugar" field.
func (m *HealthLogMutation) SetSugar(f float64) {
	m.sugar = &f
	m.addsugar = nil
}

// Sugar returns the value of the "sugar" field in the mutation.
func (m *HealthLogMutation) Sugar() (r float64, exists bool) {
	v := m.sugar
	if v == nil {
		return
	}
	return *v, true
}

// OldSugar returns the old "sugar" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldSugar(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSugar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSugar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSugar: %w", err)
	}
	return oldValue.Sugar, nil
}

// AddSugar adds f to the "sugar" field.
func (m *HealthLogMutation) AddSugar(f float64) {
	if m.addsugar != nil {
		*m.addsugar += f
	} else {
		m.addsugar = &f
	}
}

// AddedSugar returns the value that was added to the "sugar" field in this mutation.
func (m *HealthLogMutation) AddedSugar() (r float64, exists bool) {
	v := m.addsugar
	if v == nil {
		return
	}
	return *v, true
}

// ClearSugar clears the value of the "sugar" field.
func (m *HealthLogMutation) ClearSugar() {
	m.sugar = nil
	m.addsugar = nil
	m.clearedFields[healthlog.FieldSugar] = struct{}{}
}

// SugarCleared returns if the "sugar" field was cleared in this mutation.
func (m *HealthLogMutation) SugarCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldSugar]
	return ok
}

// ResetSugar resets all changes to the "sugar" field.
func (m *HealthLogMutation) ResetSugar() {
	m.sugar = nil
	m.addsugar = nil
	delete(m.clearedFields, healthlog.FieldSugar)
}

// SetWeight sets the "weight" field.
func (m *HealthLogMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *HealthLogMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldWeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *HealthLogMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *HealthLogMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ClearWeight clears the value of the "weight" field.
func (m *HealthLogMutation) ClearWeight() {
	m.weight = nil
	m.addweight = nil
	m.clearedFields[healthlog.FieldWeight] = struct{}{}
}

// WeightCleared returns if the "weight" field was cleared in this mutation.
func (m *HealthLogMutation) WeightCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldWeight]
	return ok
}

// ResetWeight resets all changes to the "weight" field.
func (m *HealthLogMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
	delete(m.clearedFields, healthlog.FieldWeight)
}

// SetHba1c sets the "hba1c" field.
func (m *HealthLogMutation) SetHba1c(f float64) {
	m.hba1c = &f
	m.addhba1c = nil
}

// Hba1c returns the value of the "hba1c" field in the mutation.
func (m *HealthLogMutation) Hba1c() (r float64, exists bool) {
	v := m.hba1c
	if v == nil {
		return
	}
	return *v, true
}

// OldHba1c returns the old "hba1c" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldHba1c(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHba1c is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHba1c requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHba1c: %w", err)
	}
	return oldValue.Hba1c, nil
}

// AddHba1c adds f to the "hba1c" field.
func (m *HealthLogMutation) AddHba1c(f float64) {
	if m.addhba1c != nil {
		*m.addhba1c += f
	} else {
		m.addhba1c = &f
	}
}

// AddedHba1c returns the value that was added to the "hba1c" field in this mutation.
func (m *HealthLogMutation) AddedHba1c() (r float64, exists bool) {
	v := m.addhba1c
	if v == nil {
		return
	}
	return *v, true
}

// ClearHba1c clears the value of the "hba1c" field.
func (m *HealthLogMutation) ClearHba1c() {
	m.hba1c = nil
	m.addhba1c = nil
	m.clearedFields[healthlog.FieldHba1c] = struct{}{}
}

// Hba1cCleared returns if the "hba1c" field was cleared in this mutation.
func (m *HealthLogMutation) Hba1cCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldHba1c]
	return ok
}

// ResetHba1c resets all changes to the "hba1c" field.
func (m *HealthLogMutation) ResetHba1c() {
	m.hba1c = nil
	m.addhba1c = nil
	delete(m.clearedFields, healthlog.FieldHba1c)
}

// SetLipid sets the "lipid" field.
func (m *HealthLogMutation) SetLipid(f float64) {
	m.lipid = &f
	m.addlipid = nil
}

// Lipid returns the value of the "lipid" field in the mutation.
func (m *HealthLogMutation) Lipid() (r float64, exists bool) {
	v := m.lipid
	if v == nil {
		return
	}
	return *v, true
}

// OldLipid returns the old "lipid" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldLipid(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLipid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLipid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLipid: %w", err)
	}
	return oldValue.Lipid, nil
}

// AddLipid adds f to the "lipid" field.
func (m *HealthLogMutation) AddLipid(f float64) {
	if m.addlipid != nil {
		*m.addlipid += f
	} else {
		m.addlipid = &f
	}
}

// AddedLipid returns the value that was added to the "lipid" field in this mutation.
func (m *HealthLogMutation) AddedLipid() (r float64, exists bool) {
	v := m.addlipid
	if v == nil {
		return
	}
	return *v, true
}

// ClearLipid clears the value of the "lipid" field.
func (m *HealthLogMutation) ClearLipid() {
	m.lipid = nil
	m.addlipid = nil
	m.clearedFields[healthlog.FieldLipid] = struct{}{}
}

// LipidCleared returns if the "lipid" field was cleared in this mutation.
func (m *HealthLogMutation) LipidCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldLipid]
	return ok
}

// ResetLipid resets all changes to the "lipid" field.
func (m *HealthLogMutation) ResetLipid() {
	m.lipid = nil
	m.addlipid = nil
	delete(m.clearedFields, healthlog.FieldLipid)
}

// SetEgfr sets the "egfr" field.
func (m *HealthLogMutation) SetEgfr(f float64) {
	m.egfr = &f
	m.addegfr = nil
}

// Egfr returns the value of the "egfr" field in the mutation.
func (m *HealthLogMutation) Egfr() (r float64, exists bool) {
	v := m.egfr
	if v == nil {
		return
	}
	return *v, true
}

// OldEgfr returns the old "egfr" field's value of the HealthLog entity.
// If the HealthLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthLogMutation) OldEgfr(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEgfr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEgfr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEgfr: %w", err)
	}
	return oldValue.Egfr, nil
}

// AddEgfr adds f to the "egfr" field.
func (m *HealthLogMutation) AddEgfr(f float64) {
	if m.addegfr != nil {
		*m.addegfr += f
	} else {
		m.addegfr = &f
	}
}

// AddedEgfr returns the value that was added to the "egfr" field in this mutation.
func (m *HealthLogMutation) AddedEgfr() (r float64, exists bool) {
	v := m.addegfr
	if v == nil {
		return
	}
	return *v, true
}

// ClearEgfr clears the value of the "egfr" field.
func (m *HealthLogMutation) ClearEgfr() {
	m.egfr = nil
	m.addegfr = nil
	m.clearedFields[healthlog.FieldEgfr] = struct{}{}
}

// EgfrCleared returns if the "egfr" field was cleared in this mutation.
func (m *HealthLogMutation) EgfrCleared() bool {
	_, ok := m.clearedFields[healthlog.FieldEgfr]
	return ok
}

// ResetEgfr resets all changes to the "egfr" field.
func (m *HealthLogMutation) ResetEgfr() {
	m.egfr = nil
	m.addegfr = nil
	delete(m.clearedFields, healthlog.FieldEgfr)
}

// Where appends a list predicates to the HealthLogMutation builder.
func (m *HealthLogMutation) Where(ps ...predicate.HealthLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HealthLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HealthLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HealthLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HealthLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HealthLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HealthLog).
func (m *HealthLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HealthLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, healthlog.FieldCreatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, healthlog.FieldPatientID)
	}
	if m._type != nil {
		fields = append(fields, healthlog.FieldType)
	}
	if m.date != nil {
		fields = append(fields, healthlog.FieldDate)
	}
	if m.sys != nil {
		fields = append(fields, healthlog.FieldSys)
	}
	if m.dia != nil {
		fields = append(fields, healthlog.FieldDia)
	}
	if m.sugar != nil {
		fields = append(fields, healthlog.FieldSugar)
	}
	if m.weight != nil {
		fields = append(fields, healthlog.FieldWeight)
	}
	if m.hba1c != nil {
		fields = append(fields, healthlog.FieldHba1c)
	}
	if m.lipid != nil {
		fields = append(fields, healthlog.FieldLipid)
	}
	if m.egfr != nil {
		fields = append(fields, healthlog.FieldEgfr)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HealthLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case healthlog.FieldCreatedAt:
		return m.CreatedAt()
	case healthlog.FieldPatientID:
		return m.PatientID()
	case healthlog.FieldType:
		return m.GetType()
	case healthlog.FieldDate:
		return m.Date()
	case healthlog.FieldSys:
		return m.Sys()
	case healthlog.FieldDia:
		return m.Dia()
	case healthlog.FieldSugar:
		return m.Sugar()
	case healthlog.FieldWeight:
		return m.Weight()
	case healthlog.FieldHba1c:
		return m.Hba1c()
	case healthlog.FieldLipid:
		return m.Lipid()
	case healthlog.FieldEgfr:
		return m.Egfr()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HealthLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case healthlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case healthlog.FieldPatientID:
		return m.OldPatientID(ctx)
	case healthlog.FieldType:
		return m.OldType(ctx)
	case healthlog.FieldDate:
		return m.OldDate(ctx)
	case healthlog.FieldSys:
		return m.OldSys(ctx)
	case healthlog.FieldDia:
		return m.OldDia(ctx)
	case healthlog.FieldSugar:
		return m.OldSugar(ctx)
	case healthlog.FieldWeight:
		return m.OldWeight(ctx)
	case healthlog.FieldHba1c:
		return m.OldHba1c(ctx)
	case healthlog.FieldLipid:
		return m.OldLipid(ctx)
	case healthlog.FieldEgfr:
		return m.OldEgfr(ctx)
	}
	return nil, fmt.Errorf("unknown HealthLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case healthlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case healthlog.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case healthlog.FieldType:
		v, ok := value.(healthlog.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case healthlog.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case healthlog.FieldSys:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSys(v)
		return nil
	case healthlog.FieldDia:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDia(v)
		return nil
	case healthlog.FieldSugar:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSugar(v)
		return nil
	case healthlog.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case healthlog.FieldHba1c:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHba1c(v)
		return nil
	case healthlog.FieldLipid:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLipid(v)
		return nil
	case healthlog.FieldEgfr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEgfr(v)
		return nil
	}
	return fmt.Errorf("unknown HealthLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HealthLogMutation) AddedFields() []string {
	var fields []string
	if m.addsys != nil {
		fields = append(fields, healthlog.FieldSys)
	}
	if m.adddia != nil {
		fields = append(fields, healthlog.FieldDia)
	}
	if m.addsugar != nil {
		fields = append(fields, healthlog.FieldSugar)
	}
	if m.addweight != nil {
		fields = append(fields, healthlog.FieldWeight)
	}
	if m.addhba1c != nil {
		fields = append(fields, healthlog.FieldHba1c)
	}
	if m.addlipid != nil {
		fields = append(fields, healthlog.FieldLipid)
	}
	if m.addegfr != nil {
		fields = append(fields, healthlog.FieldEgfr)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HealthLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case healthlog.FieldSys:
		return m.AddedSys()
	case healthlog.FieldDia:
		return m.AddedDia()
	case healthlog.FieldSugar:
		return m.AddedSugar()
	case healthlog.FieldWeight:
		return m.AddedWeight()
	case healthlog.FieldHba1c:
		return m.AddedHba1c()
	case healthlog.FieldLipid:
		return m.AddedLipid()
	case healthlog.FieldEgfr:
		return m.AddedEgfr()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case healthlog.FieldSys:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSys(v)
		return nil
	case healthlog.FieldDia:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDia(v)
		return nil
	case healthlog.FieldSugar:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSugar(v)
		return nil
	case healthlog.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case healthlog.FieldHba1c:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHba1c(v)
		return nil
	case healthlog.FieldLipid:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLipid(v)
		return nil
	case healthlog.FieldEgfr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEgfr(v)
		return nil
	}
	return fmt.Errorf("unknown HealthLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HealthLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(healthlog.FieldSys) {
		fields = append(fields, healthlog.FieldSys)
	}
	if m.FieldCleared(healthlog.FieldDia) {
		fields = append(fields, healthlog.FieldDia)
	}
	if m.FieldCleared(healthlog.FieldSugar) {
		fields = append(fields, healthlog.FieldSugar)
	}
	if m.FieldCleared(healthlog.FieldWeight) {
		fields = append(fields, healthlog.FieldWeight)
	}
	if m.FieldCleared(healthlog.FieldHba1c) {
		fields = append(fields, healthlog.FieldHba1c)
	}
	if m.FieldCleared(healthlog.FieldLipid) {
		fields = append(fields, healthlog.FieldLipid)
	}
	if m.FieldCleared(healthlog.FieldEgfr) {
		fields = append(fields, healthlog.FieldEgfr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HealthLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HealthLogMutation) ClearField(name string) error {
	switch name {
	case healthlog.FieldSys:
		m.ClearSys()
		return nil
	case healthlog.FieldDia:
		m.ClearDia()
		return nil
	case healthlog.FieldSugar:
		m.ClearSugar()
		return nil
	case healthlog.FieldWeight:
		m.ClearWeight()
		return nil
	case healthlog.FieldHba1c:
		m.ClearHba1c()
		return nil
	case healthlog.FieldLipid:
		m.ClearLipid()
		return nil
	case healthlog.FieldEgfr:
		m.ClearEgfr()
		return nil
	}
	return fmt.Errorf("unknown HealthLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HealthLogMutation) ResetField(name string) error {
	switch name {
	case healthlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case healthlog.FieldPatientID:
		m.ResetPatientID()
		return nil
	case healthlog.FieldType:
		m.ResetType()
		return nil
	case healthlog.FieldDate:
		m.ResetDate()
		return nil
	case healthlog.FieldSys:
		m.ResetSys()
		return nil
	case healthlog.FieldDia:
		m.ResetDia()
		return nil
	case healthlog.FieldSugar:
		m.ResetSugar()
		return nil
	case healthlog.FieldWeight:
		m.ResetWeight()
		return nil
	case healthlog.FieldHba1c:
		m.ResetHba1c()
		return nil
	case healthlog.FieldLipid:
		m.ResetLipid()
		return nil
	case healthlog.FieldEgfr:
		m.ResetEgfr()
		return nil
	}
	return fmt.Errorf("unknown HealthLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HealthLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HealthLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HealthLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HealthLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HealthLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HealthLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HealthLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HealthLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HealthLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HealthLog edge %s", name)
}

// MedicationMutation represents an operation that mutates the Medication nodes in the graph.
type MedicationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	patient_id    *uuid.UUID
	name          *string
	dose          *string
	time          *medication.Time
	note          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Medication, error)
	predicates    []predicate.Medication
}

var _ ent.Mutation = (*MedicationMutation)(nil)

// medicationOption allows management of the mutation configuration using functional options.
type medicationOption func(*MedicationMutation)

// newMedicationMutation creates new mutation for the Medication entity.
func newMedicationMutation(c config, op Op, opts ...medicationOption) *MedicationMutation {
	m := &MedicationMutation{
		config:        c,
		op:            op,
		typ:           TypeMedication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicationID sets the ID field of the mutation.
func withMedicationID(id uuid.UUID) medicationOption {
	return func(m *MedicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Medication
		)
		m.oldValue = func(ctx context.Context) (*Medication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Medication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedication sets the old Medication of the mutation.
func withMedication(node *Medication) medicationOption {
	return func(m *MedicationMutation) {
		m.oldValue = func(context.Context) (*Medication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Medication entities.
func (m *MedicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Medication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MedicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MedicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MedicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MedicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *MedicationMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *MedicationMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *MedicationMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetName sets the "name" field.
func (m *MedicationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MedicationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *MedicationMutation) ResetName() {
	m.name = nil
}

// SetDose sets the "dose" field.
func (m *MedicationMutation) SetDose(s string) {
	m.dose = &s
}

// Dose returns the value of the "dose" field in the mutation.
func (m *MedicationMutation) Dose() (r string, exists bool) {
	v := m.dose
	if v == nil {
		return
	}
	return *v, true
}

// OldDose returns the old "dose" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldDose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDose: %w", err)
	}
	return oldValue.Dose, nil
}

// ClearDose clears the value of the "dose" field.
func (m *MedicationMutation) ClearDose() {
	m.dose = nil
	m.clearedFields[medication.FieldDose] = struct{}{}
}

// DoseCleared returns if the "dose" field was cleared in this mutation.
func (m *MedicationMutation) DoseCleared() bool {
	_, ok := m.clearedFields[medication.FieldDose]
	return ok
}

// ResetDose resets all changes to the "dose" field.
func (m *MedicationMutation) ResetDose() {
	m.dose = nil
	delete(m.clearedFields, medication.FieldDose)
}

// SetTime sets the "time" field.
func (m *MedicationMutation) SetTime(value medication.Time) {
	m.time = &value
}

// Time returns the value of the "time" field in the mutation.
func (m *MedicationMutation) Time() (r medication.Time, exists bool) {
	v := m.time
	if v == nil {
		return
	}
	return *v, true
}

// OldTime returns the old "time" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldTime(ctx context.Context) (v medication.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTime: %w", err)
	}
	return oldValue.Time, nil
}

// ResetTime resets all changes to the "time" field.
func (m *MedicationMutation) ResetTime() {
	m.time = nil
}

// SetNote sets the "note" field.
func (m *MedicationMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *MedicationMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *MedicationMutation) ClearNote() {
	m.note = nil
	m.clearedFields[medication.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *MedicationMutation) NoteCleared() bool {
	_, ok := m.clearedFields[medication.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *MedicationMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, medication.FieldNote)
}

// Where appends a list predicates to the MedicationMutation builder.
func (m *MedicationMutation) Where(ps ...predicate.Medication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Medication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Medication).
func (m *MedicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, medication.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, medication.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, medication.FieldPatientID)
	}
	if m.name != nil {
		fields = append(fields, medication.FieldName)
	}
	if m.dose != nil {
		fields = append(fields, medication.FieldDose)
	}
	if m.time != nil {
		fields = append(fields, medication.FieldTime)
	}
	if m.note != nil {
		fields = append(fields, medication.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medication.FieldCreatedAt:
		return m.CreatedAt()
	case medication.FieldUpdatedAt:
		return m.UpdatedAt()
	case medication.FieldPatientID:
		return m.PatientID()
	case medication.FieldName:
		return m.Name()
	case medication.FieldDose:
		return m.Dose()
	case medication.FieldTime:
		return m.Time()
	case medication.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medication.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medication.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case medication.FieldPatientID:
		return m.OldPatientID(ctx)
	case medication.FieldName:
		return m.OldName(ctx)
	case medication.FieldDose:
		return m.OldDose(ctx)
	case medication.FieldTime:
		return m.OldTime(ctx)
	case medication.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown Medication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medication.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medication.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case medication.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case medication.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case medication.FieldDose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDose(v)
		return nil
	case medication.FieldTime:
		v, ok := value.(medication.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTime(v)
		return nil
	case medication.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown Medication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Medication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medication.FieldDose) {
		fields = append(fields, medication.FieldDose)
	}
	if m.FieldCleared(medication.FieldNote) {
		fields = append(fields, medication.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicationMutation) ClearField(name string) error {
	switch name {
	case medication.FieldDose:
		m.ClearDose()
		return nil
	case medication.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Medication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicationMutation) ResetField(name string) error {
	switch name {
	case medication.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medication.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case medication.FieldPatientID:
		m.ResetPatientID()
		return nil
	case medication.FieldName:
		m.ResetName()
		return nil
	case medication.FieldDose:
		m.ResetDose()
		return nil
	case medication.FieldTime:
		m.ResetTime()
		return nil
	case medication.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown Medication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Medication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Medication edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	patient_id      *uuid.UUID
	name            *string
	smart_id        *string
	age             *int
	addage          *int
	diseases        *[]string
	appenddiseases  []string
	allergies       *[]string
	appendallergies []string
	blood_type      *string
	citizen_id      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Profile, error)
	predicates      []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ProfileMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ProfileMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ProfileMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
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

// ClearName clears the value of the "name" field.
func (m *ProfileMutation) ClearName() {
	m.name = nil
	m.clearedFields[profile.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ProfileMutation) NameCleared() bool {
	_, ok := m.clearedFields[profile.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, profile.FieldName)
}

// SetSmartID sets the "smart_id" field.
func (m *ProfileMutation) SetSmartID(s string) {
	m.smart_id = &s
}

// SmartID returns the value of the "smart_id" field in the mutation.
func (m *ProfileMutation) SmartID() (r string, exists bool) {
	v := m.smart_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSmartID returns the old "smart_id" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldSmartID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSmartID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSmartID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSmartID: %w", err)
	}
	return oldValue.SmartID, nil
}

// ResetSmartID resets all changes to the "smart_id" field.
func (m *ProfileMutation) ResetSmartID() {
	m.smart_id = nil
}

// SetAge sets the "age" field.
func (m *ProfileMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *ProfileMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *ProfileMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *ProfileMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *ProfileMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[profile.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *ProfileMutation) AgeCleared() bool {
	_, ok := m.clearedFields[profile.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *ProfileMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, profile.FieldAge)
}

// SetDiseases sets the "diseases" field.
func (m *ProfileMutation) SetDiseases(s []string) {
	m.diseases = &s
	m.appenddiseases = nil
}

// Diseases returns the value of the "diseases" field in the mutation.
func (m *ProfileMutation) Diseases() (r []string, exists bool) {
	v := m.diseases
	if v == nil {
		return
	}
	return *v, true
}

// OldDiseases returns the old "diseases" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDiseases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiseases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiseases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiseases: %w", err)
	}
	return oldValue.Diseases, nil
}

// AppendDiseases adds s to the "diseases" field.
func (m *ProfileMutation) AppendDiseases(s []string) {
	m.appenddiseases = append(m.appenddiseases, s...)
}

// AppendedDiseases returns the list of values that were appended to the "diseases" field in this mutation.
func (m *ProfileMutation) AppendedDiseases() ([]string, bool) {
	if len(m.appenddiseases) == 0 {
		return nil, false
	}
	return m.appenddiseases, true
}

// ClearDiseases clears the value of the "diseases" field.
func (m *ProfileMutation) ClearDiseases() {
	m.diseases = nil
	m.appenddiseases = nil
	m.clearedFields[profile.FieldDiseases] = struct{}{}
}

// DiseasesCleared returns if the "diseases" field was cleared in this mutation.
func (m *ProfileMutation) DiseasesCleared() bool {
	_, ok := m.clearedFields[profile.FieldDiseases]
	return ok
}

// ResetDiseases resets all changes to the "diseases" field.
func (m *ProfileMutation) ResetDiseases() {
	m.diseases = nil
	m.appenddiseases = nil
	delete(m.clearedFields, profile.FieldDiseases)
}

// SetAllergies sets the "allergies" field.
func (m *ProfileMutation) SetAllergies(s []string) {
	m.allergies = &s
	m.appendallergies = nil
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *ProfileMutation) Allergies() (r []string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldAllergies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// AppendAllergies adds s to the "allergies" field.
func (m *ProfileMutation) AppendAllergies(s []string) {
	m.appendallergies = append(m.appendallergies, s...)
}

// AppendedAllergies returns the list of values that were appended to the "allergies" field in this mutation.
func (m *ProfileMutation) AppendedAllergies() ([]string, bool) {
	if len(m.appendallergies) == 0 {
		return nil, false
	}
	return m.appendallergies, true
}

// ClearAllergies clears the value of the "allergies" field.
func (m *ProfileMutation) ClearAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	m.clearedFields[profile.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *ProfileMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[profile.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *ProfileMutation) ResetAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	delete(m.clearedFields, profile.FieldAllergies)
}

// SetBloodType sets the "blood_type" field.
func (m *ProfileMutation) SetBloodType(s string) {
	m.blood_type = &s
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *ProfileMutation) BloodType() (r string, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldBloodType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ClearBloodType clears the value of the "blood_type" field.
func (m *ProfileMutation) ClearBloodType() {
	m.blood_type = nil
	m.clearedFields[profile.FieldBloodType] = struct{}{}
}

// BloodTypeCleared returns if the "blood_type" field was cleared in this mutation.
func (m *ProfileMutation) BloodTypeCleared() bool {
	_, ok := m.clearedFields[profile.FieldBloodType]
	return ok
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *ProfileMutation) ResetBloodType() {
	m.blood_type = nil
	delete(m.clearedFields, profile.FieldBloodType)
}

// SetCitizenID sets the "citizen_id" field.
func (m *ProfileMutation) SetCitizenID(s string) {
	m.citizen_id = &s
}

// CitizenID returns the value of the "citizen_id" field in the mutation.
func (m *ProfileMutation) CitizenID() (r string, exists bool) {
	v := m.citizen_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCitizenID returns the old "citizen_id" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCitizenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitizenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitizenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitizenID: %w", err)
	}
	return oldValue.CitizenID, nil
}

// ClearCitizenID clears the value of the "citizen_id" field.
func (m *ProfileMutation) ClearCitizenID() {
	m.citizen_id = nil
	m.clearedFields[profile.FieldCitizenID] = struct{}{}
}

// CitizenIDCleared returns if the "citizen_id" field was cleared in this mutation.
func (m *ProfileMutation) CitizenIDCleared() bool {
	_, ok := m.clearedFields[profile.FieldCitizenID]
	return ok
}

// ResetCitizenID resets all changes to the "citizen_id" field.
func (m *ProfileMutation) ResetCitizenID() {
	m.citizen_id = nil
	delete(m.clearedFields, profile.FieldCitizenID)
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, profile.FieldPatientID)
	}
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.smart_id != nil {
		fields = append(fields, profile.FieldSmartID)
	}
	if m.age != nil {
		fields = append(fields, profile.FieldAge)
	}
	if m.diseases != nil {
		fields = append(fields, profile.FieldDiseases)
	}
	if m.allergies != nil {
		fields = append(fields, profile.FieldAllergies)
	}
	if m.blood_type != nil {
		fields = append(fields, profile.FieldBloodType)
	}
	if m.citizen_id != nil {
		fields = append(fields, profile.FieldCitizenID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	case profile.FieldPatientID:
		return m.PatientID()
	case profile.FieldName:
		return m.Name()
	case profile.FieldSmartID:
		return m.SmartID()
	case profile.FieldAge:
		return m.Age()
	case profile.FieldDiseases:
		return m.Diseases()
	case profile.FieldAllergies:
		return m.Allergies()
	case profile.FieldBloodType:
		return m.BloodType()
	case profile.FieldCitizenID:
		return m.CitizenID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case profile.FieldPatientID:
		return m.OldPatientID(ctx)
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldSmartID:
		return m.OldSmartID(ctx)
	case profile.FieldAge:
		return m.OldAge(ctx)
	case profile.FieldDiseases:
		return m.OldDiseases(ctx)
	case profile.FieldAllergies:
		return m.OldAllergies(ctx)
	case profile.FieldBloodType:
		return m.OldBloodType(ctx)
	case profile.FieldCitizenID:
		return m.OldCitizenID(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case profile.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldSmartID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSmartID(v)
		return nil
	case profile.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case profile.FieldDiseases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiseases(v)
		return nil
	case profile.FieldAllergies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case profile.FieldBloodType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case profile.FieldCitizenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitizenID(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, profile.FieldAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldAge:
		return m.AddedAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldName) {
		fields = append(fields, profile.FieldName)
	}
	if m.FieldCleared(profile.FieldAge) {
		fields = append(fields, profile.FieldAge)
	}
	if m.FieldCleared(profile.FieldDiseases) {
		fields = append(fields, profile.FieldDiseases)
	}
	if m.FieldCleared(profile.FieldAllergies) {
		fields = append(fields, profile.FieldAllergies)
	}
	if m.FieldCleared(profile.FieldBloodType) {
		fields = append(fields, profile.FieldBloodType)
	}
	if m.FieldCleared(profile.FieldCitizenID) {
		fields = append(fields, profile.FieldCitizenID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldName:
		m.ClearName()
		return nil
	case profile.FieldAge:
		m.ClearAge()
		return nil
	case profile.FieldDiseases:
		m.ClearDiseases()
		return nil
	case profile.FieldAllergies:
		m.ClearAllergies()
		return nil
	case profile.FieldBloodType:
		m.ClearBloodType()
		return nil
	case profile.FieldCitizenID:
		m.ClearCitizenID()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case profile.FieldPatientID:
		m.ResetPatientID()
		return nil
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldSmartID:
		m.ResetSmartID()
		return nil
	case profile.FieldAge:
		m.ResetAge()
		return nil
	case profile.FieldDiseases:
		m.ResetDiseases()
		return nil
	case profile.FieldAllergies:
		m.ResetAllergies()
		return nil
	case profile.FieldBloodType:
		m.ResetBloodType()
		return nil
	case profile.FieldCitizenID:
		m.ResetCitizenID()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}

// SmartIDEntryMutation represents an operation that mutates the SmartIDEntry nodes in the graph.
type SmartIDEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	smart_id      *string
	patient_id    *uuid.UUID
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SmartIDEntry, error)
	predicates    []predicate.SmartIDEntry
}

var _ ent.Mutation = (*SmartIDEntryMutation)(nil)

// smartidentryOption allows management of the mutation configuration using functional options.
type smartidentryOption func(*SmartIDEntryMutation)

// newSmartIDEntryMutation creates new mutation for the SmartIDEntry entity.
func newSmartIDEntryMutation(c config, op Op, opts ...smartidentryOption) *SmartIDEntryMutation {
	m := &SmartIDEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeSmartIDEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSmartIDEntryID sets the ID field of the mutation.
func withSmartIDEntryID(id uuid.UUID) smartidentryOption {
	return func(m *SmartIDEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *SmartIDEntry
		)
		m.oldValue = func(ctx context.Context) (*SmartIDEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SmartIDEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSmartIDEntry sets the old SmartIDEntry of the mutation.
func withSmartIDEntry(node *SmartIDEntry) smartidentryOption {
	return func(m *SmartIDEntryMutation) {
		m.oldValue = func(context.Context) (*SmartIDEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SmartIDEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SmartIDEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SmartIDEntry entities.
func (m *SmartIDEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SmartIDEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SmartIDEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SmartIDEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SmartIDEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SmartIDEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SmartIDEntry entity.
// If the SmartIDEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartIDEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SmartIDEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSmartID sets the "smart_id" field.
func (m *SmartIDEntryMutation) SetSmartID(s string) {
	m.smart_id = &s
}

// SmartID returns the value of the "smart_id" field in the mutation.
func (m *SmartIDEntryMutation) SmartID() (r string, exists bool) {
	v := m.smart_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSmartID returns the old "smart_id" field's value of the SmartIDEntry entity.
// If the SmartIDEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartIDEntryMutation) OldSmartID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSmartID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSmartID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSmartID: %w", err)
	}
	return oldValue.SmartID, nil
}

// ResetSmartID resets all changes to the "smart_id" field.
func (m *SmartIDEntryMutation) ResetSmartID() {
	m.smart_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *SmartIDEntryMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *SmartIDEntryMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the SmartIDEntry entity.
// If the SmartIDEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartIDEntryMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *SmartIDEntryMutation) ResetPatientID() {
	m.patient_id = nil
}

// Where appends a list predicates to the SmartIDEntryMutation builder.
func (m *SmartIDEntryMutation) Where(ps ...predicate.SmartIDEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SmartIDEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SmartIDEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SmartIDEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SmartIDEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SmartIDEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SmartIDEntry).
func (m *SmartIDEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SmartIDEntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, smartidentry.FieldCreatedAt)
	}
	if m.smart_id != nil {
		fields = append(fields, smartidentry.FieldSmartID)
	}
	if m.patient_id != nil {
		fields = append(fields, smartidentry.FieldPatientID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SmartIDEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case smartidentry.FieldCreatedAt:
		return m.CreatedAt()
	case smartidentry.FieldSmartID:
		return m.SmartID()
	case smartidentry.FieldPatientID:
		return m.PatientID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SmartIDEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case smartidentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case smartidentry.FieldSmartID:
		return m.OldSmartID(ctx)
	case smartidentry.FieldPatientID:
		return m.OldPatientID(ctx)
	}
	return nil, fmt.Errorf("unknown SmartIDEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SmartIDEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case smartidentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case smartidentry.FieldSmartID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSmartID(v)
		return nil
	case smartidentry.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	}
	return fmt.Errorf("unknown SmartIDEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SmartIDEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SmartIDEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SmartIDEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SmartIDEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SmartIDEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SmartIDEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SmartIDEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SmartIDEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SmartIDEntryMutation) ResetField(name string) error {
	switch name {
	case smartidentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case smartidentry.FieldSmartID:
		m.ResetSmartID()
		return nil
	case smartidentry.FieldPatientID:
		m.ResetPatientID()
		return nil
	}
	return fmt.Errorf("unknown SmartIDEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SmartIDEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SmartIDEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SmartIDEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SmartIDEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SmartIDEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SmartIDEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SmartIDEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SmartIDEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SmartIDEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SmartIDEntry edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	deleted_at     *time.Time
	email          *string
	password_hash  *string
	name           *string
	role           *user.Role
	email_verified *bool
	last_login_at  *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*User, error)
	predicates     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
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

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v *string, err error) {
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

// ClearName clears the value of the "name" field.
func (m *UserMutation) ClearName() {
	m.name = nil
	m.clearedFields[user.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *UserMutation) NameCleared() bool {
	_, ok := m.clearedFields[user.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, user.FieldName)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v *user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *UserMutation) ClearRole() {
	m.role = nil
	m.clearedFields[user.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *UserMutation) RoleCleared() bool {
	_, ok := m.clearedFields[user.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, user.FieldRole)
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldName:
		return m.Name()
	case user.FieldRole:
		return m.Role()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldName) {
		fields = append(fields, user.FieldName)
	}
	if m.FieldCleared(user.FieldRole) {
		fields = append(fields, user.FieldRole)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldName:
		m.ClearName()
		return nil
	case user.FieldRole:
		m.ClearRole()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// WatchRelationshipMutation represents an operation that mutates the WatchRelationship nodes in the graph.
type WatchRelationshipMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	caregiver_id  *uuid.UUID
	patient_id    *uuid.UUID
	patient_name  *string
	smart_id      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WatchRelationship, error)
	predicates    []predicate.WatchRelationship
}

var _ ent.Mutation = (*WatchRelationshipMutation)(nil)

// watchrelationshipOption allows management of the mutation configuration using functional options.
type watchrelationshipOption func(*WatchRelationshipMutation)

// newWatchRelationshipMutation creates new mutation for the WatchRelationship entity.
func newWatchRelationshipMutation(c config, op Op, opts ...watchrelationshipOption) *WatchRelationshipMutation {
	m := &WatchRelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeWatchRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWatchRelationshipID sets the ID field of the mutation.
func withWatchRelationshipID(id uuid.UUID) watchrelationshipOption {
	return func(m *WatchRelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *WatchRelationship
		)
		m.oldValue = func(ctx context.Context) (*WatchRelationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WatchRelationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWatchRelationship sets the old WatchRelationship of the mutation.
func withWatchRelationship(node *WatchRelationship) watchrelationshipOption {
	return func(m *WatchRelationshipMutation) {
		m.oldValue = func(context.Context) (*WatchRelationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WatchRelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WatchRelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WatchRelationship entities.
func (m *WatchRelationshipMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WatchRelationshipMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WatchRelationshipMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WatchRelationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WatchRelationshipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WatchRelationshipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WatchRelationship entity.
// If the WatchRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchRelationshipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WatchRelationshipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCaregiverID sets the "caregiver_id" field.
func (m *WatchRelationshipMutation) SetCaregiverID(u uuid.UUID) {
	m.caregiver_id = &u
}

// CaregiverID returns the value of the "caregiver_id" field in the mutation.
func (m *WatchRelationshipMutation) CaregiverID() (r uuid.UUID, exists bool) {
	v := m.caregiver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaregiverID returns the old "caregiver_id" field's value of the WatchRelationship entity.
// If the WatchRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchRelationshipMutation) OldCaregiverID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaregiverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaregiverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaregiverID: %w", err)
	}
	return oldValue.CaregiverID, nil
}

// ResetCaregiverID resets all changes to the "caregiver_id" field.
func (m *WatchRelationshipMutation) ResetCaregiverID() {
	m.caregiver_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *WatchRelationshipMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *WatchRelationshipMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the WatchRelationship entity.
// If the WatchRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchRelationshipMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *WatchRelationshipMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetPatientName sets the "patient_name" field.
func (m *WatchRelationshipMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *WatchRelationshipMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the WatchRelationship entity.
// If the WatchRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchRelationshipMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *WatchRelationshipMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetSmartID sets the "smart_id" field.
func (m *WatchRelationshipMutation) SetSmartID(s string) {
	m.smart_id = &s
}

// SmartID returns the value of the "smart_id" field in the mutation.
func (m *WatchRelationshipMutation) SmartID() (r string, exists bool) {
	v := m.smart_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSmartID returns the old "smart_id" field's value of the WatchRelationship entity.
// If the WatchRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchRelationshipMutation) OldSmartID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSmartID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSmartID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSmartID: %w", err)
	}
	return oldValue.SmartID, nil
}

// ResetSmartID resets all changes to the "smart_id" field.
func (m *WatchRelationshipMutation) ResetSmartID() {
	m.smart_id = nil
}

// Where appends a list predicates to the WatchRelationshipMutation builder.
func (m *WatchRelationshipMutation) Where(ps ...predicate.WatchRelationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WatchRelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WatchRelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WatchRelationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WatchRelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WatchRelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WatchRelationship).
func (m *WatchRelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WatchRelationshipMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, watchrelationship.FieldCreatedAt)
	}
	if m.caregiver_id != nil {
		fields = append(fields, watchrelationship.FieldCaregiverID)
	}
	if m.patient_id != nil {
		fields = append(fields, watchrelationship.FieldPatientID)
	}
	if m.patient_name != nil {
		fields = append(fields, watchrelationship.FieldPatientName)
	}
	if m.smart_id != nil {
		fields = append(fields, watchrelationship.FieldSmartID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WatchRelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case watchrelationship.FieldCreatedAt:
		return m.CreatedAt()
	case watchrelationship.FieldCaregiverID:
		return m.CaregiverID()
	case watchrelationship.FieldPatientID:
		return m.PatientID()
	case watchrelationship.FieldPatientName:
		return m.PatientName()
	case watchrelationship.FieldSmartID:
		return m.SmartID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WatchRelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case watchrelationship.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case watchrelationship.FieldCaregiverID:
		return m.OldCaregiverID(ctx)
	case watchrelationship.FieldPatientID:
		return m.OldPatientID(ctx)
	case watchrelationship.FieldPatientName:
		return m.OldPatientName(ctx)
	case watchrelationship.FieldSmartID:
		return m.OldSmartID(ctx)
	}
	return nil, fmt.Errorf("unknown WatchRelationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WatchRelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case watchrelationship.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case watchrelationship.FieldCaregiverID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaregiverID(v)
		return nil
	case watchrelationship.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case watchrelationship.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case watchrelationship.FieldSmartID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSmartID(v)
		return nil
	}
	return fmt.Errorf("unknown WatchRelationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WatchRelationshipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WatchRelationshipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WatchRelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WatchRelationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WatchRelationshipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WatchRelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WatchRelationshipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WatchRelationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WatchRelationshipMutation) ResetField(name string) error {
	switch name {
	case watchrelationship.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case watchrelationship.FieldCaregiverID:
		m.ResetCaregiverID()
		return nil
	case watchrelationship.FieldPatientID:
		m.ResetPatientID()
		return nil
	case watchrelationship.FieldPatientName:
		m.ResetPatientName()
		return nil
	case watchrelationship.FieldSmartID:
		m.ResetSmartID()
		return nil
	}
	return fmt.Errorf("unknown WatchRelationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WatchRelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WatchRelationshipMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WatchRelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WatchRelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WatchRelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WatchRelationshipMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WatchRelationshipMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WatchRelationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WatchRelationshipMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WatchRelationship edge %s", name)
}
