// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/Warinthorn/carelink_backend/internal/repo/profile"
	"github.com/google/uuid"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ProfileUpdate) SetPatientID(v uuid.UUID) *ProfileUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePatientID(v *uuid.UUID) *ProfileUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ProfileUpdate) ClearName() *ProfileUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetSmartID sets the "smart_id" field.
func (_u *ProfileUpdate) SetSmartID(v string) *ProfileUpdate {
	_u.mutation.SetSmartID(v)
	return _u
}

// SetNillableSmartID sets the "smart_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSmartID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSmartID(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *ProfileUpdate) SetAge(v int) *ProfileUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAge(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *ProfileUpdate) AddAge(v int) *ProfileUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *ProfileUpdate) ClearAge() *ProfileUpdate {
	_u.mutation.ClearAge()
	return _u
}

// SetDiseases sets the "diseases" field.
func (_u *ProfileUpdate) SetDiseases(v []string) *ProfileUpdate {
	_u.mutation.SetDiseases(v)
	return _u
}

// AppendDiseases appends value to the "diseases" field.
func (_u *ProfileUpdate) AppendDiseases(v []string) *ProfileUpdate {
	_u.mutation.AppendDiseases(v)
	return _u
}

// ClearDiseases clears the value of the "diseases" field.
func (_u *ProfileUpdate) ClearDiseases() *ProfileUpdate {
	_u.mutation.ClearDiseases()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *ProfileUpdate) SetAllergies(v []string) *ProfileUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *ProfileUpdate) AppendAllergies(v []string) *ProfileUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *ProfileUpdate) ClearAllergies() *ProfileUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *ProfileUpdate) SetBloodType(v string) *ProfileUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableBloodType(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *ProfileUpdate) ClearBloodType() *ProfileUpdate {
	_u.mutation.ClearBloodType()
	return _u
}

// SetCitizenID sets the "citizen_id" field.
func (_u *ProfileUpdate) SetCitizenID(v string) *ProfileUpdate {
	_u.mutation.SetCitizenID(v)
	return _u
}

// SetNillableCitizenID sets the "citizen_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCitizenID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCitizenID(*v)
	}
	return _u
}

// ClearCitizenID clears the value of the "citizen_id" field.
func (_u *ProfileUpdate) ClearCitizenID() *ProfileUpdate {
	_u.mutation.ClearCitizenID()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SmartID(); ok {
		if err := profile.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "Profile.smart_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := profile.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`repo: validator failed for field "Profile.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := profile.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Profile.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(profile.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(profile.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.SmartID(); ok {
		_spec.SetField(profile.FieldSmartID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(profile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(profile.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(profile.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Diseases(); ok {
		_spec.SetField(profile.FieldDiseases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiseases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldDiseases, value)
		})
	}
	if _u.mutation.DiseasesCleared() {
		_spec.ClearField(profile.FieldDiseases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(profile.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(profile.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(profile.FieldBloodType, field.TypeString, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(profile.FieldBloodType, field.TypeString)
	}
	if value, ok := _u.mutation.CitizenID(); ok {
		_spec.SetField(profile.FieldCitizenID, field.TypeString, value)
	}
	if _u.mutation.CitizenIDCleared() {
		_spec.ClearField(profile.FieldCitizenID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ProfileUpdateOne) SetPatientID(v uuid.UUID) *ProfileUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePatientID(v *uuid.UUID) *ProfileUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ProfileUpdateOne) ClearName() *ProfileUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetSmartID sets the "smart_id" field.
func (_u *ProfileUpdateOne) SetSmartID(v string) *ProfileUpdateOne {
	_u.mutation.SetSmartID(v)
	return _u
}

// SetNillableSmartID sets the "smart_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSmartID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSmartID(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *ProfileUpdateOne) SetAge(v int) *ProfileUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAge(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *ProfileUpdateOne) AddAge(v int) *ProfileUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *ProfileUpdateOne) ClearAge() *ProfileUpdateOne {
	_u.mutation.ClearAge()
	return _u
}

// SetDiseases sets the "diseases" field.
func (_u *ProfileUpdateOne) SetDiseases(v []string) *ProfileUpdateOne {
	_u.mutation.SetDiseases(v)
	return _u
}

// AppendDiseases appends value to the "diseases" field.
func (_u *ProfileUpdateOne) AppendDiseases(v []string) *ProfileUpdateOne {
	_u.mutation.AppendDiseases(v)
	return _u
}

// ClearDiseases clears the value of the "diseases" field.
func (_u *ProfileUpdateOne) ClearDiseases() *ProfileUpdateOne {
	_u.mutation.ClearDiseases()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *ProfileUpdateOne) SetAllergies(v []string) *ProfileUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *ProfileUpdateOne) AppendAllergies(v []string) *ProfileUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *ProfileUpdateOne) ClearAllergies() *ProfileUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *ProfileUpdateOne) SetBloodType(v string) *ProfileUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableBloodType(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *ProfileUpdateOne) ClearBloodType() *ProfileUpdateOne {
	_u.mutation.ClearBloodType()
	return _u
}

// SetCitizenID sets the "citizen_id" field.
func (_u *ProfileUpdateOne) SetCitizenID(v string) *ProfileUpdateOne {
	_u.mutation.SetCitizenID(v)
	return _u
}

// SetNillableCitizenID sets the "citizen_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCitizenID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCitizenID(*v)
	}
	return _u
}

// ClearCitizenID clears the value of the "citizen_id" field.
func (_u *ProfileUpdateOne) ClearCitizenID() *ProfileUpdateOne {
	_u.mutation.ClearCitizenID()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SmartID(); ok {
		if err := profile.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "Profile.smart_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := profile.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`repo: validator failed for field "Profile.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := profile.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Profile.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(profile.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(profile.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.SmartID(); ok {
		_spec.SetField(profile.FieldSmartID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(profile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(profile.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(profile.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Diseases(); ok {
		_spec.SetField(profile.FieldDiseases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiseases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldDiseases, value)
		})
	}
	if _u.mutation.DiseasesCleared() {
		_spec.ClearField(profile.FieldDiseases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(profile.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(profile.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(profile.FieldBloodType, field.TypeString, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(profile.FieldBloodType, field.TypeString)
	}
	if value, ok := _u.mutation.CitizenID(); ok {
		_spec.SetField(profile.FieldCitizenID, field.TypeString, value)
	}
	if _u.mutation.CitizenIDCleared() {
		_spec.ClearField(profile.FieldCitizenID, field.TypeString)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
