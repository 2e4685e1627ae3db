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
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/google/uuid"
)

// SmartIDEntryUpdate is the builder for updating SmartIDEntry entities.
type SmartIDEntryUpdate struct {
	config
	hooks    []Hook
	mutation *SmartIDEntryMutation
}

// Where appends a list predicates to the SmartIDEntryUpdate builder.
func (_u *SmartIDEntryUpdate) Where(ps ...predicate.SmartIDEntry) *SmartIDEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSmartID sets the "smart_id" field.
func (_u *SmartIDEntryUpdate) SetSmartID(v string) *SmartIDEntryUpdate {
	_u.mutation.SetSmartID(v)
	return _u
}

// SetNillableSmartID sets the "smart_id" field if the given value is not nil.
func (_u *SmartIDEntryUpdate) SetNillableSmartID(v *string) *SmartIDEntryUpdate {
	if v != nil {
		_u.SetSmartID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SmartIDEntryUpdate) SetPatientID(v uuid.UUID) *SmartIDEntryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SmartIDEntryUpdate) SetNillablePatientID(v *uuid.UUID) *SmartIDEntryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// Mutation returns the SmartIDEntryMutation object of the builder.
func (_u *SmartIDEntryUpdate) Mutation() *SmartIDEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SmartIDEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SmartIDEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SmartIDEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SmartIDEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SmartIDEntryUpdate) check() error {
	if v, ok := _u.mutation.SmartID(); ok {
		if err := smartidentry.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "SmartIDEntry.smart_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SmartIDEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smartidentry.Table, smartidentry.Columns, sqlgraph.NewFieldSpec(smartidentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SmartID(); ok {
		_spec.SetField(smartidentry.FieldSmartID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(smartidentry.FieldPatientID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smartidentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SmartIDEntryUpdateOne is the builder for updating a single SmartIDEntry entity.
type SmartIDEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SmartIDEntryMutation
}

// SetSmartID sets the "smart_id" field.
func (_u *SmartIDEntryUpdateOne) SetSmartID(v string) *SmartIDEntryUpdateOne {
	_u.mutation.SetSmartID(v)
	return _u
}

// SetNillableSmartID sets the "smart_id" field if the given value is not nil.
func (_u *SmartIDEntryUpdateOne) SetNillableSmartID(v *string) *SmartIDEntryUpdateOne {
	if v != nil {
		_u.SetSmartID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SmartIDEntryUpdateOne) SetPatientID(v uuid.UUID) *SmartIDEntryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SmartIDEntryUpdateOne) SetNillablePatientID(v *uuid.UUID) *SmartIDEntryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// Mutation returns the SmartIDEntryMutation object of the builder.
func (_u *SmartIDEntryUpdateOne) Mutation() *SmartIDEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SmartIDEntryUpdate builder.
func (_u *SmartIDEntryUpdateOne) Where(ps ...predicate.SmartIDEntry) *SmartIDEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SmartIDEntryUpdateOne) Select(field string, fields ...string) *SmartIDEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SmartIDEntry entity.
func (_u *SmartIDEntryUpdateOne) Save(ctx context.Context) (*SmartIDEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SmartIDEntryUpdateOne) SaveX(ctx context.Context) *SmartIDEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SmartIDEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SmartIDEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SmartIDEntryUpdateOne) check() error {
	if v, ok := _u.mutation.SmartID(); ok {
		if err := smartidentry.SmartIDValidator(v); err != nil {
			return &ValidationError{Name: "smart_id", err: fmt.Errorf(`repo: validator failed for field "SmartIDEntry.smart_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SmartIDEntryUpdateOne) sqlSave(ctx context.Context) (_node *SmartIDEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smartidentry.Table, smartidentry.Columns, sqlgraph.NewFieldSpec(smartidentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SmartIDEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smartidentry.FieldID)
		for _, f := range fields {
			if !smartidentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != smartidentry.FieldID {
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
	if value, ok := _u.mutation.SmartID(); ok {
		_spec.SetField(smartidentry.FieldSmartID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(smartidentry.FieldPatientID, field.TypeUUID, value)
	}
	_node = &SmartIDEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smartidentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
