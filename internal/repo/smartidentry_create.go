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
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/google/uuid"
)

// SmartIDEntryCreate is the builder for creating a SmartIDEntry entity.
type SmartIDEntryCreate struct {
	config
	mutation *SmartIDEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SmartIDEntryCreate) SetCreatedAt(v time.Time) *SmartIDEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SmartIDEntryCreate) SetNillableCreatedAt(v *time.Time) *SmartIDEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSmartID sets the "smart_id" field.
func (_c *SmartIDEntryCreate) SetSmartID(v string) *SmartIDEntryCreate {
	_c.mutation.SetSmartID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *SmartIDEntryCreate) SetPatientID(v uuid.UUID) *SmartIDEntryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SmartIDEntryCreate) SetID(v uuid.UUID) *SmartIDEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SmartIDEntryCreate) SetNillableID(v *uuid.UUID) *SmartIDEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SmartIDEntryMutation object of the builder.
func (_c *SmartIDEntryCreate) Mutation() *SmartIDEntryMutation {
	return _c.mutation
}

// Save creates the SmartIDEntry in the database.
func (_c *SmartIDEntryCreate) Save(ctx context.Context) (*SmartIDEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SmartIDEntryCreate) SaveX(ctx context.Context) *SmartIDEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SmartIDEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SmartIDEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SmartIDEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := smartidentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := smartidentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SmartIDEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SmartIDEntry.created_at"`)}
	}
	if _, ok := _c.mutation.SmartID(); !ok {
		return &ValidationError{Name: "smart_id", err: errors.New(`repo: missing required field "SmartIDEntry.smart_id"`)}
	}
	if v, ok := _c.mutation.SmartID(); ok {
		if err := smartidentry.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "SmartIDEntry.smart_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "SmartIDEntry.patient_id"`)}
	}
	return nil
}

func (_c *SmartIDEntryCreate) sqlSave(ctx context.Context) (*SmartIDEntry, error) {
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

func (_c *SmartIDEntryCreate) createSpec() (*SmartIDEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &SmartIDEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(smartidentry.Table, sqlgraph.NewFieldSpec(smartidentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(smartidentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SmartID(); ok {
		_spec.SetField(smartidentry.FieldSmartID, field.TypeString, value)
		_node.SmartID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(smartidentry.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SmartIDEntry.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SmartIDEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SmartIDEntryCreate) OnConflict(opts ...sql.ConflictOption) *SmartIDEntryUpsertOne {
	_c.conflict = opts
	return &SmartIDEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SmartIDEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SmartIDEntryCreate) OnConflictColumns(columns ...string) *SmartIDEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SmartIDEntryUpsertOne{
		create: _c,
	}
}

type (
	// SmartIDEntryUpsertOne is the builder for "upsert"-ing
	//  one SmartIDEntry node.
	SmartIDEntryUpsertOne struct {
		create *SmartIDEntryCreate
	}

	// SmartIDEntryUpsert is the "OnConflict" setter.
	SmartIDEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetSmartID sets the "smart_id" field.
func (u *SmartIDEntryUpsert) SetSmartID(v string) *SmartIDEntryUpsert {
	u.Set(smartidentry.FieldSmartID, v)
	return u
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *SmartIDEntryUpsert) UpdateSmartID() *SmartIDEntryUpsert {
	u.SetExcluded(smartidentry.FieldSmartID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *SmartIDEntryUpsert) SetPatientID(v uuid.UUID) *SmartIDEntryUpsert {
	u.Set(smartidentry.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SmartIDEntryUpsert) UpdatePatientID() *SmartIDEntryUpsert {
	u.SetExcluded(smartidentry.FieldPatientID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SmartIDEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smartidentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SmartIDEntryUpsertOne) UpdateNewValues() *SmartIDEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(smartidentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(smartidentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SmartIDEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SmartIDEntryUpsertOne) Ignore() *SmartIDEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SmartIDEntryUpsertOne) DoNothing() *SmartIDEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SmartIDEntryCreate.OnConflict
// documentation for more info.
func (u *SmartIDEntryUpsertOne) Update(set func(*SmartIDEntryUpsert)) *SmartIDEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SmartIDEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSmartID sets the "smart_id" field.
func (u *SmartIDEntryUpsertOne) SetSmartID(v string) *SmartIDEntryUpsertOne {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.SetSmartID(v)
	})
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *SmartIDEntryUpsertOne) UpdateSmartID() *SmartIDEntryUpsertOne {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.UpdateSmartID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *SmartIDEntryUpsertOne) SetPatientID(v uuid.UUID) *SmartIDEntryUpsertOne {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SmartIDEntryUpsertOne) UpdatePatientID() *SmartIDEntryUpsertOne {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.UpdatePatientID()
	})
}

// Exec executes the query.
func (u *SmartIDEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SmartIDEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SmartIDEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SmartIDEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SmartIDEntryUpsertOne.ID is not supported by MySQL driver. Use SmartIDEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SmartIDEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SmartIDEntryCreateBulk is the builder for creating many SmartIDEntry entities in bulk.
type SmartIDEntryCreateBulk struct {
	config
	err      error
	builders []*SmartIDEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the SmartIDEntry entities in the database.
func (_c *SmartIDEntryCreateBulk) Save(ctx context.Context) ([]*SmartIDEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SmartIDEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SmartIDEntryMutation)
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
func (_c *SmartIDEntryCreateBulk) SaveX(ctx context.Context) []*SmartIDEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SmartIDEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SmartIDEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SmartIDEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SmartIDEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SmartIDEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SmartIDEntryUpsertBulk {
	_c.conflict = opts
	return &SmartIDEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SmartIDEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SmartIDEntryCreateBulk) OnConflictColumns(columns ...string) *SmartIDEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SmartIDEntryUpsertBulk{
		create: _c,
	}
}

// SmartIDEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of SmartIDEntry nodes.
type SmartIDEntryUpsertBulk struct {
	create *SmartIDEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SmartIDEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smartidentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SmartIDEntryUpsertBulk) UpdateNewValues() *SmartIDEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(smartidentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(smartidentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SmartIDEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SmartIDEntryUpsertBulk) Ignore() *SmartIDEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SmartIDEntryUpsertBulk) DoNothing() *SmartIDEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SmartIDEntryCreateBulk.OnConflict
// documentation for more info.
func (u *SmartIDEntryUpsertBulk) Update(set func(*SmartIDEntryUpsert)) *SmartIDEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SmartIDEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSmartID sets the "smart_id" field.
func (u *SmartIDEntryUpsertBulk) SetSmartID(v string) *SmartIDEntryUpsertBulk {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.SetSmartID(v)
	})
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *SmartIDEntryUpsertBulk) UpdateSmartID() *SmartIDEntryUpsertBulk {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.UpdateSmartID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *SmartIDEntryUpsertBulk) SetPatientID(v uuid.UUID) *SmartIDEntryUpsertBulk {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SmartIDEntryUpsertBulk) UpdatePatientID() *SmartIDEntryUpsertBulk {
	return u.Update(func(s *SmartIDEntryUpsert) {
		s.UpdatePatientID()
	})
}

// Exec executes the query.
func (u *SmartIDEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SmartIDEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SmartIDEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SmartIDEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
