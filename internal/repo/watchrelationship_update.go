// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
	"github.com/google/uuid"
)

// WatchRelationshipUpdate is the builder for updating WatchRelationship entities.
type WatchRelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *WatchRelationshipMutation
}

// Where appends a list predicates to the WatchRelationshipUpdate builder.
func (_u *WatchRelationshipUpdate) Where(ps ...predicate.WatchRelationship) *WatchRelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaregiverID sets the "caregiver_id" field.
func (_u *WatchRelationshipUpdate) SetCaregiverID(v uuid.UUID) *WatchRelationshipUpdate {
	_u.mutation.SetCaregiverID(v)
	return _u
}

// SetNillableCaregiverID sets the "caregiver_id" field if the given value is not nil.
func (_u *WatchRelationshipUpdate) SetNillableCaregiverID(v *uuid.UUID) *WatchRelationshipUpdate {
	if v != nil {
		_u.SetCaregiverID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *WatchRelationshipUpdate) SetPatientID(v uuid.UUID) *WatchRelationshipUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *WatchRelationshipUpdate) SetNillablePatientID(v *uuid.UUID) *WatchRelationshipUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *WatchRelationshipUpdate) SetPatientName(v string) *WatchRelationshipUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *WatchRelationshipUpdate) SetNillablePatientName(v *string) *WatchRelationshipUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetSmartID sets the "smart_id" field.
func (_u *WatchRelationshipUpdate) SetSmartID(v string) *WatchRelationshipUpdate {
	_u.mutation.SetSmartID(v)
	return _u
}

// SetNillableSmartID sets the "smart_id" field if the given value is not nil.
func (_u *WatchRelationshipUpdate) SetNillableSmartID(v *string) *WatchRelationshipUpdate {
	if v != nil {
		_u.SetSmartID(*v)
	}
	return _u
}

// Mutation returns the WatchRelationshipMutation object of the builder.
func (_u *WatchRelationshipUpdate) Mutation() *WatchRelationshipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WatchRelationshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatchRelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WatchRelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatchRelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatchRelationshipUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := watchrelationship.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "WatchRelationship.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SmartID(); ok {
		if err := watchrelationship.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "WatchRelationship.smart_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WatchRelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watchrelationship.Table, watchrelationship.Columns, sqlgraph.NewFieldSpec(watchrelationship.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaregiverID(); ok {
		_spec.SetField(watchrelationship.FieldCaregiverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(watchrelationship.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(watchrelationship.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SmartID(); ok {
		_spec.SetField(watchrelationship.FieldSmartID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watchrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WatchRelationshipUpdateOne is the builder for updating a single WatchRelationship entity.
type WatchRelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WatchRelationshipMutation
}

// SetCaregiverID sets the "caregiver_id" field.
func (_u *WatchRelationshipUpdateOne) SetCaregiverID(v uuid.UUID) *WatchRelationshipUpdateOne {
	_u.mutation.SetCaregiverID(v)
	return _u
}

// SetNillableCaregiverID sets the "caregiver_id" field if the given value is not nil.
func (_u *WatchRelationshipUpdateOne) SetNillableCaregiverID(v *uuid.UUID) *WatchRelationshipUpdateOne {
	if v != nil {
		_u.SetCaregiverID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *WatchRelationshipUpdateOne) SetPatientID(v uuid.UUID) *WatchRelationshipUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *WatchRelationshipUpdateOne) SetNillablePatientID(v *uuid.UUID) *WatchRelationshipUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *WatchRelationshipUpdateOne) SetPatientName(v string) *WatchRelationshipUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *WatchRelationshipUpdateOne) SetNillablePatientName(v *string) *WatchRelationshipUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetSmartID sets the "smart_id" field.
func (_u *WatchRelationshipUpdateOne) SetSmartID(v string) *WatchRelationshipUpdateOne {
	_u.mutation.SetSmartID(v)
	return _u
}

// SetNillableSmartID sets the "smart_id" field if the given value is not nil.
func (_u *WatchRelationshipUpdateOne) SetNillableSmartID(v *string) *WatchRelationshipUpdateOne {
	if v != nil {
		_u.SetSmartID(*v)
	}
	return _u
}

// Mutation returns the WatchRelationshipMutation object of the builder.
func (_u *WatchRelationshipUpdateOne) Mutation() *WatchRelationshipMutation {
	return _u.mutation
}

// Where appends a list predicates to the WatchRelationshipUpdate builder.
func (_u *WatchRelationshipUpdateOne) Where(ps ...predicate.WatchRelationship) *WatchRelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WatchRelationshipUpdateOne) Select(field string, fields ...string) *WatchRelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WatchRelationship entity.
func (_u *WatchRelationshipUpdateOne) Save(ctx context.Context) (*WatchRelationship, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatchRelationshipUpdateOne) SaveX(ctx context.Context) *WatchRelationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WatchRelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatchRelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatchRelationshipUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := watchrelationship.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "WatchRelationship.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SmartID(); ok {
		if err := watchrelationship.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "WatchRelationship.smart_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WatchRelationshipUpdateOne) sqlSave(ctx context.Context) (_node *WatchRelationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watchrelationship.Table, watchrelationship.Columns, sqlgraph.NewFieldSpec(watchrelationship.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WatchRelationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, watchrelationship.FieldID)
		for _, f := range fields {
			if !watchrelationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != watchrelationship.FieldID {
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
	if value, ok := _u.mutation.CaregiverID(); ok {
		_spec.SetField(watchrelationship.FieldCaregiverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(watchrelationship.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(watchrelationship.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SmartID(); ok {
		_spec.SetField(watchrelationship.FieldSmartID, field.TypeString, value)
	}
	_node = &WatchRelationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watchrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
