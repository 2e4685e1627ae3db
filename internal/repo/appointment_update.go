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
	"github.com/Warinthorn/carelink_backend/internal/repo/appointment"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdate) SetDate(v string) *AppointmentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDate(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *AppointmentUpdate) SetTime(v string) *AppointmentUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTime(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// ClearTime clears the value of the "time" field.
func (_u *AppointmentUpdate) ClearTime() *AppointmentUpdate {
	_u.mutation.ClearTime()
	return _u
}

// SetLocation sets the "location" field.
func (_u *AppointmentUpdate) SetLocation(v string) *AppointmentUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableLocation(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *AppointmentUpdate) ClearLocation() *AppointmentUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *AppointmentUpdate) SetDepartment(v string) *AppointmentUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDepartment(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *AppointmentUpdate) ClearDepartment() *AppointmentUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := appointment.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Appointment.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := appointment.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Appointment.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := appointment.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "Appointment.department": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(appointment.FieldTime, field.TypeString, value)
	}
	if _u.mutation.TimeCleared() {
		_spec.ClearField(appointment.FieldTime, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(appointment.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(appointment.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(appointment.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(appointment.FieldDepartment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdateOne) SetDate(v string) *AppointmentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDate(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *AppointmentUpdateOne) SetTime(v string) *AppointmentUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTime(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// ClearTime clears the value of the "time" field.
func (_u *AppointmentUpdateOne) ClearTime() *AppointmentUpdateOne {
	_u.mutation.ClearTime()
	return _u
}

// SetLocation sets the "location" field.
func (_u *AppointmentUpdateOne) SetLocation(v string) *AppointmentUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableLocation(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *AppointmentUpdateOne) ClearLocation() *AppointmentUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *AppointmentUpdateOne) SetDepartment(v string) *AppointmentUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDepartment(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *AppointmentUpdateOne) ClearDepartment() *AppointmentUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := appointment.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Appointment.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := appointment.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Appointment.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := appointment.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "Appointment.department": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(appointment.FieldTime, field.TypeString, value)
	}
	if _u.mutation.TimeCleared() {
		_spec.ClearField(appointment.FieldTime, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(appointment.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(appointment.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(appointment.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(appointment.FieldDepartment, field.TypeString)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
