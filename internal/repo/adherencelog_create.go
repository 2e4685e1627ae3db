// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/google/uuid"
)

// AdherenceLogCreate is the builder for creating a AdherenceLog entity.
type AdherenceLogCreate struct {
	config
	mutation *AdherenceLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdherenceLogCreate) SetCreatedAt(v time.Time) *AdherenceLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdherenceLogCreate) SetNillableCreatedAt(v *time.Time) *AdherenceLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdherenceLogCreate) SetUpdatedAt(v time.Time) *AdherenceLogCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdherenceLogCreate) SetNillableUpdatedAt(v *time.Time) *AdherenceLogCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AdherenceLogCreate) SetPatientID(v uuid.UUID) *AdherenceLogCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *AdherenceLogCreate) SetDate(v string) *AdherenceLogCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTakenMeds sets the "taken_meds" field.
func (_c *AdherenceLogCreate) SetTakenMeds(v []string) *AdherenceLogCreate {
	_c.mutation.SetTakenMeds(v)
	return _c
}

// SetTakenCount sets the "taken_count" field.
func (_c *AdherenceLogCreate) SetTakenCount(v int) *AdherenceLogCreate {
	_c.mutation.SetTakenCount(v)
	return _c
}

// SetNillableTakenCount sets the "taken_count" field if the given value is not nil.
func (_c *AdherenceLogCreate) SetNillableTakenCount(v *int) *AdherenceLogCreate {
	if v != nil {
		_c.SetTakenCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdherenceLogCreate) SetID(v uuid.UUID) *AdherenceLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdherenceLogCreate) SetNillableID(v *uuid.UUID) *AdherenceLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AdherenceLogMutation object of the builder.
func (_c *AdherenceLogCreate) Mutation() *AdherenceLogMutation {
	return _c.mutation
}

// Save creates the AdherenceLog in the database.
func (_c *AdherenceLogCreate) Save(ctx context.Context) (*AdherenceLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdherenceLogCreate) SaveX(ctx context.Context) *AdherenceLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdherenceLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdherenceLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdherenceLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adherencelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adherencelog.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TakenMeds(); !ok {
		v := adherencelog.DefaultTakenMeds
		_c.mutation.SetTakenMeds(v)
	}
	if _, ok := _c.mutation.TakenCount(); !ok {
		v := adherencelog.DefaultTakenCount
		_c.mutation.SetTakenCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := adherencelog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdherenceLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AdherenceLog.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AdherenceLog.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "AdherenceLog.patient_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "AdherenceLog.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := adherencelog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "AdherenceLog.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenMeds(); !ok {
		return &ValidationError{Name: "taken_meds", err: errors.New(`repo: missing required field "AdherenceLog.taken_meds"`)}
	}
	if _, ok := _c.mutation.TakenCount(); !ok {
		return &ValidationError{Name: "taken_count", err: errors.New(`repo: missing required field "AdherenceLog.taken_count"`)}
	}
	if v, ok := _c.mutation.TakenCount(); ok {
		if err := adherencelog.TakenCountValidator(v); err != nil {
			return &ValidationError{Name: "taken_count", err: fmt.Errorf(`repo: validator failed for field "AdherenceLog.taken_count": %w`, err)}
		}
	}
	return nil
}

func (_c *AdherenceLogCreate) sqlSave(ctx context.Context) (*AdherenceLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdherenceLogCreate) createSpec() (*AdherenceLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AdherenceLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adherencelog.Table, sqlgraph.NewFieldSpec(adherencelog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adherencelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adherencelog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(adherencelog.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(adherencelog.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.TakenMeds(); ok {
		_spec.SetField(adherencelog.FieldTakenMeds, field.TypeJSON, value)
		_node.TakenMeds = value
	}
	if value, ok := _c.mutation.TakenCount(); ok {
		_spec.SetField(adherencelog.FieldTakenCount, field.TypeInt, value)
		_node.TakenCount = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdherenceLog.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdherenceLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AdherenceLogCreate) OnConflict(opts ...sql.ConflictOption) *AdherenceLogUpsertOne {
	_c.conflict = opts
	return &AdherenceLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdherenceLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdherenceLogCreate) OnConflictColumns(columns ...string) *AdherenceLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdherenceLogUpsertOne{
		create: _c,
	}
}

type (
	// AdherenceLogUpsertOne is the builder for "upsert"-ing
	//  one AdherenceLog node.
	AdherenceLogUpsertOne struct {
		create *AdherenceLogCreate
	}

	// AdherenceLogUpsert is the "OnConflict" setter.
	AdherenceLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AdherenceLogUpsert) SetUpdatedAt(v time.Time) *AdherenceLogUpsert {
	u.Set(adherencelog.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdherenceLogUpsert) UpdateUpdatedAt() *AdherenceLogUpsert {
	u.SetExcluded(adherencelog.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *AdherenceLogUpsert) SetPatientID(v uuid.UUID) *AdherenceLogUpsert {
	u.Set(adherencelog.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AdherenceLogUpsert) UpdatePatientID() *AdherenceLogUpsert {
	u.SetExcluded(adherencelog.FieldPatientID)
	return u
}

// SetDate sets the "date" field.
func (u *AdherenceLogUpsert) SetDate(v string) *AdherenceLogUpsert {
	u.Set(adherencelog.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AdherenceLogUpsert) UpdateDate() *AdherenceLogUpsert {
	u.SetExcluded(adherencelog.FieldDate)
	return u
}

// SetTakenMeds sets the "taken_meds" field.
func (u *AdherenceLogUpsert) SetTakenMeds(v []string) *AdherenceLogUpsert {
	u.Set(adherencelog.FieldTakenMeds, v)
	return u
}

// UpdateTakenMeds sets the "taken_meds" field to the value that was provided on create.
func (u *AdherenceLogUpsert) UpdateTakenMeds() *AdherenceLogUpsert {
	u.SetExcluded(adherencelog.FieldTakenMeds)
	return u
}

// SetTakenCount sets the "taken_count" field.
func (u *AdherenceLogUpsert) SetTakenCount(v int) *AdherenceLogUpsert {
	u.Set(adherencelog.FieldTakenCount, v)
	return u
}

// UpdateTakenCount sets the "taken_count" field to the value that was provided on create.
func (u *AdherenceLogUpsert) UpdateTakenCount() *AdherenceLogUpsert {
	u.SetExcluded(adherencelog.FieldTakenCount)
	return u
}

// AddTakenCount adds v to the "taken_count" field.
func (u *AdherenceLogUpsert) AddTakenCount(v int) *AdherenceLogUpsert {
	u.Add(adherencelog.FieldTakenCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AdherenceLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adherencelog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdherenceLogUpsertOne) UpdateNewValues() *AdherenceLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(adherencelog.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(adherencelog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdherenceLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdherenceLogUpsertOne) Ignore() *AdherenceLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdherenceLogUpsertOne) DoNothing() *AdherenceLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdherenceLogCreate.OnConflict
// documentation for more info.
func (u *AdherenceLogUpsertOne) Update(set func(*AdherenceLogUpsert)) *AdherenceLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdherenceLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdherenceLogUpsertOne) SetUpdatedAt(v time.Time) *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdherenceLogUpsertOne) UpdateUpdatedAt() *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AdherenceLogUpsertOne) SetPatientID(v uuid.UUID) *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AdherenceLogUpsertOne) UpdatePatientID() *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdatePatientID()
	})
}

// SetDate sets the "date" field.
func (u *AdherenceLogUpsertOne) SetDate(v string) *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AdherenceLogUpsertOne) UpdateDate() *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateDate()
	})
}

// SetTakenMeds sets the "taken_meds" field.
func (u *AdherenceLogUpsertOne) SetTakenMeds(v []string) *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetTakenMeds(v)
	})
}

// UpdateTakenMeds sets the "taken_meds" field to the value that was provided on create.
func (u *AdherenceLogUpsertOne) UpdateTakenMeds() *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateTakenMeds()
	})
}

// SetTakenCount sets the "taken_count" field.
func (u *AdherenceLogUpsertOne) SetTakenCount(v int) *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetTakenCount(v)
	})
}

// AddTakenCount adds v to the "taken_count" field.
func (u *AdherenceLogUpsertOne) AddTakenCount(v int) *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.AddTakenCount(v)
	})
}

// UpdateTakenCount sets the "taken_count" field to the value that was provided on create.
func (u *AdherenceLogUpsertOne) UpdateTakenCount() *AdherenceLogUpsertOne {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateTakenCount()
	})
}

// Exec executes the query.
func (u *AdherenceLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AdherenceLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdherenceLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdherenceLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AdherenceLogUpsertOne.ID is not supported by MySQL driver. Use AdherenceLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdherenceLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdherenceLogCreateBulk is the builder for creating many AdherenceLog entities in bulk.
type AdherenceLogCreateBulk struct {
	config
	err      error
	builders []*AdherenceLogCreate
	conflict []sql.ConflictOption
}

// Save creates the AdherenceLog entities in the database.
func (_c *AdherenceLogCreateBulk) Save(ctx context.Context) ([]*AdherenceLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdherenceLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdherenceLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdherenceLogCreateBulk) SaveX(ctx context.Context) []*AdherenceLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdherenceLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdherenceLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdherenceLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdherenceLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AdherenceLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdherenceLogUpsertBulk {
	_c.conflict = opts
	return &AdherenceLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdherenceLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdherenceLogCreateBulk) OnConflictColumns(columns ...string) *AdherenceLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdherenceLogUpsertBulk{
		create: _c,
	}
}

// AdherenceLogUpsertBulk is the builder for "upsert"-ing
// a bulk of AdherenceLog nodes.
type AdherenceLogUpsertBulk struct {
	create *AdherenceLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdherenceLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adherencelog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdherenceLogUpsertBulk) UpdateNewValues() *AdherenceLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(adherencelog.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(adherencelog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdherenceLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdherenceLogUpsertBulk) Ignore() *AdherenceLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdherenceLogUpsertBulk) DoNothing() *AdherenceLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdherenceLogCreateBulk.OnConflict
// documentation for more info.
func (u *AdherenceLogUpsertBulk) Update(set func(*AdherenceLogUpsert)) *AdherenceLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdherenceLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdherenceLogUpsertBulk) SetUpdatedAt(v time.Time) *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdherenceLogUpsertBulk) UpdateUpdatedAt() *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AdherenceLogUpsertBulk) SetPatientID(v uuid.UUID) *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AdherenceLogUpsertBulk) UpdatePatientID() *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdatePatientID()
	})
}

// SetDate sets the "date" field.
func (u *AdherenceLogUpsertBulk) SetDate(v string) *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AdherenceLogUpsertBulk) UpdateDate() *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateDate()
	})
}

// SetTakenMeds sets the "taken_meds" field.
func (u *AdherenceLogUpsertBulk) SetTakenMeds(v []string) *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetTakenMeds(v)
	})
}

// UpdateTakenMeds sets the "taken_meds" field to the value that was provided on create.
func (u *AdherenceLogUpsertBulk) UpdateTakenMeds() *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateTakenMeds()
	})
}

// SetTakenCount sets the "taken_count" field.
func (u *AdherenceLogUpsertBulk) SetTakenCount(v int) *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.SetTakenCount(v)
	})
}

// AddTakenCount adds v to the "taken_count" field.
func (u *AdherenceLogUpsertBulk) AddTakenCount(v int) *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.AddTakenCount(v)
	})
}

// UpdateTakenCount sets the "taken_count" field to the value that was provided on create.
func (u *AdherenceLogUpsertBulk) UpdateTakenCount() *AdherenceLogUpsertBulk {
	return u.Update(func(s *AdherenceLogUpsert) {
		s.UpdateTakenCount()
	})
}

// Exec executes the query.
func (u *AdherenceLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AdherenceLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AdherenceLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdherenceLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
