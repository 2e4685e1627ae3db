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
	"github.com/Warinthorn/carelink_backend/internal/repo/profile"
	"github.com/google/uuid"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProfileCreate) SetCreatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ProfileCreate) SetPatientID(v uuid.UUID) *ProfileCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProfileCreate) SetName(v string) *ProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetSmartID sets the "smart_id" field.
func (_c *ProfileCreate) SetSmartID(v string) *ProfileCreate {
	_c.mutation.SetSmartID(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *ProfileCreate) SetAge(v int) *ProfileCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAge(v *int) *ProfileCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetDiseases sets the "diseases" field.
func (_c *ProfileCreate) SetDiseases(v []string) *ProfileCreate {
	_c.mutation.SetDiseases(v)
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *ProfileCreate) SetAllergies(v []string) *ProfileCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *ProfileCreate) SetBloodType(v string) *ProfileCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableBloodType(v *string) *ProfileCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetCitizenID sets the "citizen_id" field.
func (_c *ProfileCreate) SetCitizenID(v string) *ProfileCreate {
	_c.mutation.SetCitizenID(v)
	return _c
}

// SetNillableCitizenID sets the "citizen_id" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCitizenID(v *string) *ProfileCreate {
	if v != nil {
		_c.SetCitizenID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v uuid.UUID) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableID(v *uuid.UUID) *ProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Diseases(); !ok {
		v := profile.DefaultDiseases
		_c.mutation.SetDiseases(v)
	}
	if _, ok := _c.mutation.Allergies(); !ok {
		v := profile.DefaultAllergies
		_c.mutation.SetAllergies(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := profile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Profile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Profile.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Profile.patient_id"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SmartID(); !ok {
		return &ValidationError{Name: "smart_id", err: errors.New(`repo: missing required field "Profile.smart_id"`)}
	}
	if v, ok := _c.mutation.SmartID(); ok {
		if err := profile.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "Profile.smart_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Age(); ok {
		if err := profile.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`repo: validator failed for field "Profile.age": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := profile.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Profile.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(profile.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SmartID(); ok {
		_spec.SetField(profile.FieldSmartID, field.TypeString, value)
		_node.SmartID = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(profile.FieldAge, field.TypeInt, value)
		_node.Age = &value
	}
	if value, ok := _c.mutation.Diseases(); ok {
		_spec.SetField(profile.FieldDiseases, field.TypeJSON, value)
		_node.Diseases = value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(profile.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(profile.FieldBloodType, field.TypeString, value)
		_node.BloodType = value
	}
	if value, ok := _c.mutation.CitizenID(); ok {
		_spec.SetField(profile.FieldCitizenID, field.TypeString, value)
		_node.CitizenID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	_c.conflict = opts
	return &ProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: _c,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsert) SetUpdatedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateUpdatedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ProfileUpsert) SetPatientID(v uuid.UUID) *ProfileUpsert {
	u.Set(profile.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePatientID() *ProfileUpsert {
	u.SetExcluded(profile.FieldPatientID)
	return u
}

// SetName sets the "name" field.
func (u *ProfileUpsert) SetName(v string) *ProfileUpsert {
	u.Set(profile.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateName() *ProfileUpsert {
	u.SetExcluded(profile.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *ProfileUpsert) ClearName() *ProfileUpsert {
	u.SetNull(profile.FieldName)
	return u
}

// SetSmartID sets the "smart_id" field.
func (u *ProfileUpsert) SetSmartID(v string) *ProfileUpsert {
	u.Set(profile.FieldSmartID, v)
	return u
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateSmartID() *ProfileUpsert {
	u.SetExcluded(profile.FieldSmartID)
	return u
}

// SetAge sets the "age" field.
func (u *ProfileUpsert) SetAge(v int) *ProfileUpsert {
	u.Set(profile.FieldAge, v)
	return u
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateAge() *ProfileUpsert {
	u.SetExcluded(profile.FieldAge)
	return u
}

// AddAge adds v to the "age" field.
func (u *ProfileUpsert) AddAge(v int) *ProfileUpsert {
	u.Add(profile.FieldAge, v)
	return u
}

// ClearAge clears the value of the "age" field.
func (u *ProfileUpsert) ClearAge() *ProfileUpsert {
	u.SetNull(profile.FieldAge)
	return u
}

// SetDiseases sets the "diseases" field.
func (u *ProfileUpsert) SetDiseases(v []string) *ProfileUpsert {
	u.Set(profile.FieldDiseases, v)
	return u
}

// UpdateDiseases sets the "diseases" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateDiseases() *ProfileUpsert {
	u.SetExcluded(profile.FieldDiseases)
	return u
}

// ClearDiseases clears the value of the "diseases" field.
func (u *ProfileUpsert) ClearDiseases() *ProfileUpsert {
	u.SetNull(profile.FieldDiseases)
	return u
}

// SetAllergies sets the "allergies" field.
func (u *ProfileUpsert) SetAllergies(v []string) *ProfileUpsert {
	u.Set(profile.FieldAllergies, v)
	return u
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateAllergies() *ProfileUpsert {
	u.SetExcluded(profile.FieldAllergies)
	return u
}

// ClearAllergies clears the value of the "allergies" field.
func (u *ProfileUpsert) ClearAllergies() *ProfileUpsert {
	u.SetNull(profile.FieldAllergies)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *ProfileUpsert) SetBloodType(v string) *ProfileUpsert {
	u.Set(profile.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateBloodType() *ProfileUpsert {
	u.SetExcluded(profile.FieldBloodType)
	return u
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *ProfileUpsert) ClearBloodType() *ProfileUpsert {
	u.SetNull(profile.FieldBloodType)
	return u
}

// SetCitizenID sets the "citizen_id" field.
func (u *ProfileUpsert) SetCitizenID(v string) *ProfileUpsert {
	u.Set(profile.FieldCitizenID, v)
	return u
}

// UpdateCitizenID sets the "citizen_id" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateCitizenID() *ProfileUpsert {
	u.SetExcluded(profile.FieldCitizenID)
	return u
}

// ClearCitizenID clears the value of the "citizen_id" field.
func (u *ProfileUpsert) ClearCitizenID() *ProfileUpsert {
	u.SetNull(profile.FieldCitizenID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(profile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertOne) SetUpdatedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateUpdatedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *ProfileUpsertOne) SetPatientID(v uuid.UUID) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePatientID() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *ProfileUpsertOne) SetName(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateName() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *ProfileUpsertOne) ClearName() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearName()
	})
}

// SetSmartID sets the "smart_id" field.
func (u *ProfileUpsertOne) SetSmartID(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetSmartID(v)
	})
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateSmartID() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateSmartID()
	})
}

// SetAge sets the "age" field.
func (u *ProfileUpsertOne) SetAge(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *ProfileUpsertOne) AddAge(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateAge() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAge()
	})
}

// ClearAge clears the value of the "age" field.
func (u *ProfileUpsertOne) ClearAge() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAge()
	})
}

// SetDiseases sets the "diseases" field.
func (u *ProfileUpsertOne) SetDiseases(v []string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetDiseases(v)
	})
}

// UpdateDiseases sets the "diseases" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateDiseases() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateDiseases()
	})
}

// ClearDiseases clears the value of the "diseases" field.
func (u *ProfileUpsertOne) ClearDiseases() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearDiseases()
	})
}

// SetAllergies sets the "allergies" field.
func (u *ProfileUpsertOne) SetAllergies(v []string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateAllergies() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *ProfileUpsertOne) ClearAllergies() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAllergies()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *ProfileUpsertOne) SetBloodType(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateBloodType() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *ProfileUpsertOne) ClearBloodType() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearBloodType()
	})
}

// SetCitizenID sets the "citizen_id" field.
func (u *ProfileUpsertOne) SetCitizenID(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCitizenID(v)
	})
}

// UpdateCitizenID sets the "citizen_id" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateCitizenID() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCitizenID()
	})
}

// ClearCitizenID clears the value of the "citizen_id" field.
func (u *ProfileUpsertOne) ClearCitizenID() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearCitizenID()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ProfileUpsertOne.ID is not supported by MySQL driver. Use ProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	_c.conflict = opts
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(profile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertBulk) SetUpdatedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateUpdatedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *ProfileUpsertBulk) SetPatientID(v uuid.UUID) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePatientID() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *ProfileUpsertBulk) SetName(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateName() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *ProfileUpsertBulk) ClearName() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearName()
	})
}

// SetSmartID sets the "smart_id" field.
func (u *ProfileUpsertBulk) SetSmartID(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetSmartID(v)
	})
}

// UpdateSmartID sets the "smart_id" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateSmartID() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateSmartID()
	})
}

// SetAge sets the "age" field.
func (u *ProfileUpsertBulk) SetAge(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *ProfileUpsertBulk) AddAge(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateAge() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAge()
	})
}

// ClearAge clears the value of the "age" field.
func (u *ProfileUpsertBulk) ClearAge() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAge()
	})
}

// SetDiseases sets the "diseases" field.
func (u *ProfileUpsertBulk) SetDiseases(v []string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetDiseases(v)
	})
}

// UpdateDiseases sets the "diseases" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateDiseases() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateDiseases()
	})
}

// ClearDiseases clears the value of the "diseases" field.
func (u *ProfileUpsertBulk) ClearDiseases() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearDiseases()
	})
}

// SetAllergies sets the "allergies" field.
func (u *ProfileUpsertBulk) SetAllergies(v []string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateAllergies() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *ProfileUpsertBulk) ClearAllergies() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAllergies()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *ProfileUpsertBulk) SetBloodType(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateBloodType() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *ProfileUpsertBulk) ClearBloodType() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearBloodType()
	})
}

// SetCitizenID sets the "citizen_id" field.
func (u *ProfileUpsertBulk) SetCitizenID(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCitizenID(v)
	})
}

// UpdateCitizenID sets the "citizen_id" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateCitizenID() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCitizenID()
	})
}

// ClearCitizenID clears the value of the "citizen_id" field.
func (u *ProfileUpsertBulk) ClearCitizenID() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearCitizenID()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
