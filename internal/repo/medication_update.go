// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/medication"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicationUpdate is the builder for updating Medication entities.
type MedicationUpdate struct {
	config
	hooks    []Hook
	mutation *MedicationMutation
}

// Where appends a list predicates to the MedicationUpdate builder.
func (_u *MedicationUpdate) Where(ps ...predicate.Medication) *MedicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationUpdate) SetUpdatedAt(v time.Time) *MedicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicationUpdate) SetPatientID(v uuid.UUID) *MedicationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillablePatientID(v *uuid.UUID) *MedicationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MedicationUpdate) SetName(v string) *MedicationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableName(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDose sets the "dose" field.
func (_u *MedicationUpdate) SetDose(v string) *MedicationUpdate {
	_u.mutation.SetDose(v)
	return _u
}

// SetNillableDose sets the "dose" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableDose(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetDose(*v)
	}
	return _u
}

// ClearDose clears the value of the "dose" field.
func (_u *MedicationUpdate) ClearDose() *MedicationUpdate {
	_u.mutation.ClearDose()
	return _u
}

// SetTime sets the "time" field.
func (_u *MedicationUpdate) SetTime(v medication.Time) *MedicationUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableTime(v *medication.Time) *MedicationUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *MedicationUpdate) SetNote(v string) *MedicationUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableNote(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *MedicationUpdate) ClearNote() *MedicationUpdate {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the MedicationMutation object of the builder.
func (_u *MedicationUpdate) Mutation() *MedicationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dose(); ok {
		if err := medication.DoseValidator(v); err != nil {
			return &ValidationError{Name: "dose", err: fmt.Errorf(`repo: validator failed for field "Medication.dose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := medication.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Medication.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := medication.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "Medication.note": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medication.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dose(); ok {
		_spec.SetField(medication.FieldDose, field.TypeString, value)
	}
	if _u.mutation.DoseCleared() {
		_spec.ClearField(medication.FieldDose, field.TypeString)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(medication.FieldTime, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(medication.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(medication.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicationUpdateOne is the builder for updating a single Medication entity.
type MedicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationUpdateOne) SetUpdatedAt(v time.Time) *MedicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicationUpdateOne) SetPatientID(v uuid.UUID) *MedicationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MedicationUpdateOne) SetName(v string) *MedicationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableName(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDose sets the "dose" field.
func (_u *MedicationUpdateOne) SetDose(v string) *MedicationUpdateOne {
	_u.mutation.SetDose(v)
	return _u
}

// SetNillableDose sets the "dose" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableDose(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetDose(*v)
	}
	return _u
}

// ClearDose clears the value of the "dose" field.
func (_u *MedicationUpdateOne) ClearDose() *MedicationUpdateOne {
	_u.mutation.ClearDose()
	return _u
}

// SetTime sets the "time" field.
func (_u *MedicationUpdateOne) SetTime(v medication.Time) *MedicationUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableTime(v *medication.Time) *MedicationUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *MedicationUpdateOne) SetNote(v string) *MedicationUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableNote(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *MedicationUpdateOne) ClearNote() *MedicationUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the MedicationMutation object of the builder.
func (_u *MedicationUpdateOne) Mutation() *MedicationMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicationUpdate builder.
func (_u *MedicationUpdateOne) Where(ps ...predicate.Medication) *MedicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicationUpdateOne) Select(field string, fields ...string) *MedicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Medication entity.
func (_u *MedicationUpdateOne) Save(ctx context.Context) (*Medication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationUpdateOne) SaveX(ctx context.Context) *Medication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dose(); ok {
		if err := medication.DoseValidator(v); err != nil {
			return &ValidationError{Name: "dose", err: fmt.Errorf(`repo: validator failed for field "Medication.dose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := medication.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Medication.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := medication.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`repo: validator failed for field "Medication.note": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationUpdateOne) sqlSave(ctx context.Context) (_node *Medication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Medication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medication.FieldID)
		for _, f := range fields {
			if !medication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medication.FieldID {
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
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medication.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dose(); ok {
		_spec.SetField(medication.FieldDose, field.TypeString, value)
	}
	if _u.mutation.DoseCleared() {
		_spec.ClearField(medication.FieldDose, field.TypeString)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(medication.FieldTime, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(medication.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(medication.FieldNote, field.TypeString)
	}
	_node = &Medication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
