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
	"github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
	"github.com/google/uuid"
)

// WatchRelationshipCreate is the builder for creating a WatchRelationship entity.
type WatchRelationshipCreate struct {
	config
	mutation *WatchRelationshipMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *WatchRelationshipCreate) SetCreatedAt(v time.Time) *WatchRelationshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WatchRelationshipCreate) SetNillableCreatedAt(v *time.Time) *WatchRelationshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCaregiverID sets the "caregiver_id" field.
func (_c *WatchRelationshipCreate) SetCaregiverID(v uuid.UUID) *WatchRelationshipCreate {
	_c.mutation.SetCaregiverID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *WatchRelationshipCreate) SetPatientID(v uuid.UUID) *WatchRelationshipCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *WatchRelationshipCreate) SetPatientName(v string) *WatchRelationshipCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetSmartID sets the "smart_id" field.
func (_c *WatchRelationshipCreate) SetSmartID(v string) *WatchRelationshipCreate {
	_c.mutation.SetSmartID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WatchRelationshipCreate) SetID(v uuid.UUID) *WatchRelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WatchRelationshipCreate) SetNillableID(v *uuid.UUID) *WatchRelationshipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WatchRelationshipMutation object of the builder.
func (_c *WatchRelationshipCreate) Mutation() *WatchRelationshipMutation {
	return _c.mutation
}

// Save creates the WatchRelationship in the database.
func (_c *WatchRelationshipCreate) Save(ctx context.Context) (*WatchRelationship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WatchRelationshipCreate) SaveX(ctx context.Context) *WatchRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatchRelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatchRelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WatchRelationshipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := watchrelationship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := watchrelationship.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WatchRelationshipCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WatchRelationship.created_at"`)}
	}
	if _, ok := _c.mutation.CaregiverID(); !ok {
		return &ValidationError{Name: "caregiver_id", err: errors.New(`repo: missing required field "WatchRelationship.caregiver_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "WatchRelationship.patient_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "WatchRelationship.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := watchrelationship.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "WatchRelationship.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SmartID(); !ok {
		return &ValidationError{Name: "smart_id", err: errors.New(`repo: missing required field "WatchRelationship.smart_id"`)}
	}
	if v, ok := _c.mutation.SmartID(); ok {
		if err := watchrelationship.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "WatchRelationship.smart_id": %w`, err)}
		}
	}
	return nil
}

func (_c *WatchRelationshipCreate) sqlSave(ctx context.Context) (*WatchRelationship, error) {
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

func (_c *WatchRelationshipCreate) createSpec() (*WatchRelationship, *sqlgraph.CreateSpec) {
	var (
		_node = &WatchRelationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(watchrelationship.Table, sqlgraph.NewFieldSpec(watchrelationship.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(watchrelationship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CaregiverID(); ok {
		_spec.SetField(watchrelationship.FieldCaregiverID, field.TypeUUID, value)
		_node.CaregiverID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(watchrelationship.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(watchrelationship.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.SmartID(); ok {
		_spec.SetField(watchrelationship.FieldSmartID, field.TypeString, value)
		_node.SmartID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WatchRelationship.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WatchRelationshipUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WatchRelationshipCreate) OnConflict(opts ...sql.ConflictOption) *WatchRelationshipUpsertOne {
	_c.conflict = opts
	return &WatchRelationshipUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WatchRelationship.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WatchRelationshipCreate) OnConflictColumns(columns ...string) *WatchRelationshipUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WatchRelationshipUpsertOne{
		create: _c,
	}
}

type (
	// WatchRelationshipUpsertOne is the builder for "upsert"-ing
	//  one WatchRelationship node.
	WatchRelationshipUpsertOne struct {
		create *WatchRelationshipCreate
	}

	// WatchRelationshipUpsert is the "OnConflict" setter.
	WatchRelationshipUpsert struct {
		*sql.UpdateSet
	}
)

// SetCaregiverID sets the "caregiver_id" field.
func (u *WatchRelationshipUpsert) SetCaregiverID(v uuid.UUID) *WatchRelationshipUpsert {
	u.Set(watchrelationship.FieldCaregiverID, v)
	return u
}

// UpdateCaregiverID sets the "caregiver_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsert) UpdateCaregiverID() *WatchRelationshipUpsert {
	u.SetExcluded(watchrelationship.FieldCaregiverID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *WatchRelationshipUpsert) SetPatientID(v uuid.UUID) *WatchRelationshipUpsert {
	u.Set(watchrelationship.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsert) UpdatePatientID() *WatchRelationshipUpsert {
	u.SetExcluded(watchrelationship.FieldPatientID)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *WatchRelationshipUpsert) SetPatientName(v string) *WatchRelationshipUpsert {
	u.Set(watchrelationship.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *WatchRelationshipUpsert) UpdatePatientName() *WatchRelationshipUpsert {
	u.SetExcluded(watchrelationship.FieldPatientName)
	return u
}

// SetSmartID sets the "smart_id" field.
func (u *WatchRelationshipUpsert) SetSmartID(v string) *WatchRelationshipUpsert {
	u.Set(watchrelationship.FieldSmartID, v)
	return u
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsert) UpdateSmartID() *WatchRelationshipUpsert {
	u.SetExcluded(watchrelationship.FieldSmartID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WatchRelationship.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(watchrelationship.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WatchRelationshipUpsertOne) UpdateNewValues() *WatchRelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(watchrelationship.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(watchrelationship.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WatchRelationship.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WatchRelationshipUpsertOne) Ignore() *WatchRelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WatchRelationshipUpsertOne) DoNothing() *WatchRelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WatchRelationshipCreate.OnConflict
// documentation for more info.
func (u *WatchRelationshipUpsertOne) Update(set func(*WatchRelationshipUpsert)) *WatchRelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WatchRelationshipUpsert{UpdateSet: update})
	}))
	return u
}

// SetCaregiverID sets the "caregiver_id" field.
func (u *WatchRelationshipUpsertOne) SetCaregiverID(v uuid.UUID) *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetCaregiverID(v)
	})
}

// UpdateCaregiverID sets the "caregiver_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsertOne) UpdateCaregiverID() *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdateCaregiverID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *WatchRelationshipUpsertOne) SetPatientID(v uuid.UUID) *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsertOne) UpdatePatientID() *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdatePatientID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *WatchRelationshipUpsertOne) SetPatientName(v string) *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *WatchRelationshipUpsertOne) UpdatePatientName() *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdatePatientName()
	})
}

// SetSmartID sets the "smart_id" field.
func (u *WatchRelationshipUpsertOne) SetSmartID(v string) *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetSmartID(v)
	})
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsertOne) UpdateSmartID() *WatchRelationshipUpsertOne {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdateSmartID()
	})
}

// Exec executes the query.
func (u *WatchRelationshipUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for WatchRelationshipCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WatchRelationshipUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WatchRelationshipUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: WatchRelationshipUpsertOne.ID is not supported by MySQL driver. Use WatchRelationshipUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WatchRelationshipUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WatchRelationshipCreateBulk is the builder for creating many WatchRelationship entities in bulk.
type WatchRelationshipCreateBulk struct {
	config
	err      error
	builders []*WatchRelationshipCreate
	conflict []sql.ConflictOption
}

// Save creates the WatchRelationship entities in the database.
func (_c *WatchRelationshipCreateBulk) Save(ctx context.Context) ([]*WatchRelationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WatchRelationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WatchRelationshipMutation)
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
func (_c *WatchRelationshipCreateBulk) SaveX(ctx context.Context) []*WatchRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatchRelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatchRelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WatchRelationship.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WatchRelationshipUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WatchRelationshipCreateBulk) OnConflict(opts ...sql.ConflictOption) *WatchRelationshipUpsertBulk {
	_c.conflict = opts
	return &WatchRelationshipUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WatchRelationship.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WatchRelationshipCreateBulk) OnConflictColumns(columns ...string) *WatchRelationshipUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WatchRelationshipUpsertBulk{
		create: _c,
	}
}

// WatchRelationshipUpsertBulk is the builder for "upsert"-ing
// a bulk of WatchRelationship nodes.
type WatchRelationshipUpsertBulk struct {
	create *WatchRelationshipCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WatchRelationship.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(watchrelationship.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WatchRelationshipUpsertBulk) UpdateNewValues() *WatchRelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(watchrelationship.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(watchrelationship.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WatchRelationship.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WatchRelationshipUpsertBulk) Ignore() *WatchRelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WatchRelationshipUpsertBulk) DoNothing() *WatchRelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WatchRelationshipCreateBulk.OnConflict
// documentation for more info.
func (u *WatchRelationshipUpsertBulk) Update(set func(*WatchRelationshipUpsert)) *WatchRelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WatchRelationshipUpsert{UpdateSet: update})
	}))
	return u
}

// SetCaregiverID sets the "caregiver_id" field.
func (u *WatchRelationshipUpsertBulk) SetCaregiverID(v uuid.UUID) *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetCaregiverID(v)
	})
}

// UpdateCaregiverID sets the "caregiver_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsertBulk) UpdateCaregiverID() *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdateCaregiverID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *WatchRelationshipUpsertBulk) SetPatientID(v uuid.UUID) *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsertBulk) UpdatePatientID() *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdatePatientID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *WatchRelationshipUpsertBulk) SetPatientName(v string) *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *WatchRelationshipUpsertBulk) UpdatePatientName() *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdatePatientName()
	})
}

// SetSmartID sets the "smart_id" field.
func (u *WatchRelationshipUpsertBulk) SetSmartID(v string) *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.SetSmartID(v)
	})
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *WatchRelationshipUpsertBulk) UpdateSmartID() *WatchRelationshipUpsertBulk {
	return u.Update(func(s *WatchRelationshipUpsert) {
		s.UpdateSmartID()
	})
}

// Exec executes the query.
func (u *WatchRelationshipUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the WatchRelationshipCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for WatchRelationshipCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WatchRelationshipUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
