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
	"github.com/Warinthorn/carelink_backend/internal/repo/familymember"
	"github.com/google/uuid"
)

// FamilyMemberCreate is the builder for creating a FamilyMember entity.
type FamilyMemberCreate struct {
	config
	mutation *FamilyMemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FamilyMemberCreate) SetCreatedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableCreatedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FamilyMemberCreate) SetUpdatedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableUpdatedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *FamilyMemberCreate) SetPatientID(v uuid.UUID) *FamilyMemberCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FamilyMemberCreate) SetName(v string) *FamilyMemberCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *FamilyMemberCreate) SetPhone(v string) *FamilyMemberCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillablePhone(v *string) *FamilyMemberCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetRelation sets the "relation" field.
func (_c *FamilyMemberCreate) SetRelation(v familymember.Relation) *FamilyMemberCreate {
	_c.mutation.SetRelation(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FamilyMemberCreate) SetID(v uuid.UUID) *FamilyMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableID(v *uuid.UUID) *FamilyMemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_c *FamilyMemberCreate) Mutation() *FamilyMemberMutation {
	return _c.mutation
}

// Save creates the FamilyMember in the database.
func (_c *FamilyMemberCreate) Save(ctx context.Context) (*FamilyMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FamilyMemberCreate) SaveX(ctx context.Context) *FamilyMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FamilyMemberCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := familymember.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := familymember.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := familymember.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FamilyMemberCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "FamilyMember.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "FamilyMember.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "FamilyMember.patient_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "FamilyMember.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := familymember.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := familymember.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Relation(); !ok {
		return &ValidationError{Name: "relation", err: errors.New(`repo: missing required field "FamilyMember.relation"`)}
	}
	if v, ok := _c.mutation.Relation(); ok {
		if err := familymember.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.relation": %w`, err)}
		}
	}
	return nil
}

func (_c *FamilyMemberCreate) sqlSave(ctx context.Context) (*FamilyMember, error) {
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

func (_c *FamilyMemberCreate) createSpec() (*FamilyMember, *sqlgraph.CreateSpec) {
	var (
		_node = &FamilyMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(familymember.Table, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(familymember.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(familymember.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(familymember.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(familymember.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(familymember.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Relation(); ok {
		_spec.SetField(familymember.FieldRelation, field.TypeEnum, value)
		_node.Relation = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FamilyMember.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FamilyMemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FamilyMemberCreate) OnConflict(opts ...sql.ConflictOption) *FamilyMemberUpsertOne {
	_c.conflict = opts
	return &FamilyMemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FamilyMemberCreate) OnConflictColumns(columns ...string) *FamilyMemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FamilyMemberUpsertOne{
		create: _c,
	}
}

type (
	// FamilyMemberUpsertOne is the builder for "upsert"-ing
	//  one FamilyMember node.
	FamilyMemberUpsertOne struct {
		create *FamilyMemberCreate
	}

	// FamilyMemberUpsert is the "OnConflict" setter.
	FamilyMemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *FamilyMemberUpsert) SetUpdatedAt(v time.Time) *FamilyMemberUpsert {
	u.Set(familymember.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateUpdatedAt() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *FamilyMemberUpsert) SetPatientID(v uuid.UUID) *FamilyMemberUpsert {
	u.Set(familymember.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdatePatientID() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldPatientID)
	return u
}

// SetName sets the "name" field.
func (u *FamilyMemberUpsert) SetName(v string) *FamilyMemberUpsert {
	u.Set(familymember.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateName() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldName)
	return u
}

// SetPhone sets the "phone" field.
func (u *FamilyMemberUpsert) SetPhone(v string) *FamilyMemberUpsert {
	u.Set(familymember.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdatePhone() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *FamilyMemberUpsert) ClearPhone() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldPhone)
	return u
}

// SetRelation sets the "relation" field.
func (u *FamilyMemberUpsert) SetRelation(v familymember.Relation) *FamilyMemberUpsert {
	u.Set(familymember.FieldRelation, v)
	return u
}

// UpdateRelation sets the "relation" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateRelation() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldRelation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(familymember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FamilyMemberUpsertOne) UpdateNewValues() *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(familymember.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(familymember.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FamilyMemberUpsertOne) Ignore() *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FamilyMemberUpsertOne) DoNothing() *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FamilyMemberCreate.OnConflict
// documentation for more info.
func (u *FamilyMemberUpsertOne) Update(set func(*FamilyMemberUpsert)) *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FamilyMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FamilyMemberUpsertOne) SetUpdatedAt(v time.Time) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateUpdatedAt() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *FamilyMemberUpsertOne) SetPatientID(v uuid.UUID) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdatePatientID() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *FamilyMemberUpsertOne) SetName(v string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateName() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *FamilyMemberUpsertOne) SetPhone(v string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdatePhone() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *FamilyMemberUpsertOne) ClearPhone() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearPhone()
	})
}

// SetRelation sets the "relation" field.
func (u *FamilyMemberUpsertOne) SetRelation(v familymember.Relation) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetRelation(v)
	})
}

// UpdateRelation sets the "relation" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateRelation() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateRelation()
	})
}

// Exec executes the query.
func (u *FamilyMemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FamilyMemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FamilyMemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FamilyMemberUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FamilyMemberUpsertOne.ID is not supported by MySQL driver. Use FamilyMemberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FamilyMemberUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FamilyMemberCreateBulk is the builder for creating many FamilyMember entities in bulk.
type FamilyMemberCreateBulk struct {
	config
	err      error
	builders []*FamilyMemberCreate
	conflict []sql.ConflictOption
}

// Save creates the FamilyMember entities in the database.
func (_c *FamilyMemberCreateBulk) Save(ctx context.Context) ([]*FamilyMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FamilyMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FamilyMemberMutation)
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
func (_c *FamilyMemberCreateBulk) SaveX(ctx context.Context) []*FamilyMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FamilyMember.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FamilyMemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FamilyMemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *FamilyMemberUpsertBulk {
	_c.conflict = opts
	return &FamilyMemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FamilyMemberCreateBulk) OnConflictColumns(columns ...string) *FamilyMemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FamilyMemberUpsertBulk{
		create: _c,
	}
}

// FamilyMemberUpsertBulk is the builder for "upsert"-ing
// a bulk of FamilyMember nodes.
type FamilyMemberUpsertBulk struct {
	create *FamilyMemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(familymember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FamilyMemberUpsertBulk) UpdateNewValues() *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(familymember.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(familymember.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FamilyMemberUpsertBulk) Ignore() *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FamilyMemberUpsertBulk) DoNothing() *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FamilyMemberCreateBulk.OnConflict
// documentation for more info.
func (u *FamilyMemberUpsertBulk) Update(set func(*FamilyMemberUpsert)) *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FamilyMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FamilyMemberUpsertBulk) SetUpdatedAt(v time.Time) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateUpdatedAt() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *FamilyMemberUpsertBulk) SetPatientID(v uuid.UUID) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdatePatientID() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *FamilyMemberUpsertBulk) SetName(v string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateName() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *FamilyMemberUpsertBulk) SetPhone(v string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdatePhone() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *FamilyMemberUpsertBulk) ClearPhone() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearPhone()
	})
}

// SetRelation sets the "relation" field.
func (u *FamilyMemberUpsertBulk) SetRelation(v familymember.Relation) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetRelation(v)
	})
}

// UpdateRelation sets the "relation" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateRelation() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateRelation()
	})
}

// Exec executes the query.
func (u *FamilyMemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FamilyMemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FamilyMemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FamilyMemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
