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
	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AdherenceLogUpdate is the builder for updating AdherenceLog entities.
type AdherenceLogUpdate struct {
	config
	hooks    []Hook
	mutation *AdherenceLogMutation
}

// Where appends a list predicates to the AdherenceLogUpdate builder.
func (_u *AdherenceLogUpdate) Where(ps ...predicate.AdherenceLog) *AdherenceLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdherenceLogUpdate) SetUpdatedAt(v time.Time) *AdherenceLogUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AdherenceLogUpdate) SetPatientID(v uuid.UUID) *AdherenceLogUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AdherenceLogUpdate) SetNillablePatientID(v *uuid.UUID) *AdherenceLogUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AdherenceLogUpdate) SetDate(v string) *AdherenceLogUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AdherenceLogUpdate) SetNillableDate(v *string) *AdherenceLogUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTakenMeds sets the "taken_meds" field.
func (_u *AdherenceLogUpdate) SetTakenMeds(v []string) *AdherenceLogUpdate {
	_u.mutation.SetTakenMeds(v)
	return _u
}

// AppendTakenMeds appends value to the "taken_meds" field.
func (_u *AdherenceLogUpdate) AppendTakenMeds(v []string) *AdherenceLogUpdate {
	_u.mutation.AppendTakenMeds(v)
	return _u
}

// SetTakenCount sets the "taken_count" field.
func (_u *AdherenceLogUpdate) SetTakenCount(v int) *AdherenceLogUpdate {
	_u.mutation.ResetTakenCount()
	_u.mutation.SetTakenCount(v)
	return _u
}

// SetNillableTakenCount sets the "taken_count" field if the given value is not nil.
func (_u *AdherenceLogUpdate) SetNillableTakenCount(v *int) *AdherenceLogUpdate {
	if v != nil {
		_u.SetTakenCount(*v)
	}
	return _u
}

// AddTakenCount adds value to the "taken_count" field.
func (_u *AdherenceLogUpdate) AddTakenCount(v int) *AdherenceLogUpdate {
	_u.mutation.AddTakenCount(v)
	return _u
}

// Mutation returns the AdherenceLogMutation object of the builder.
func (_u *AdherenceLogUpdate) Mutation() *AdherenceLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdherenceLogUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdherenceLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdherenceLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdherenceLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdherenceLogUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adherencelog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdherenceLogUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := adherencelog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "AdherenceLog.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TakenCount(); ok {
		if err := adherencelog.TakenCountValidator(v); err != nil {
			return &ValidationError{Name: "taken_count", err: fmt.Errorf(`repo: validator failed for field "AdherenceLog.taken_count": %w`, err)}
		}
	}
	return nil
}

func (_u *AdherenceLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adherencelog.Table, adherencelog.Columns, sqlgraph.NewFieldSpec(adherencelog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adherencelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(adherencelog.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(adherencelog.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakenMeds(); ok {
		_spec.SetField(adherencelog.FieldTakenMeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTakenMeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adherencelog.FieldTakenMeds, value)
		})
	}
	if value, ok := _u.mutation.TakenCount(); ok {
		_spec.SetField(adherencelog.FieldTakenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTakenCount(); ok {
		_spec.AddField(adherencelog.FieldTakenCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adherencelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdherenceLogUpdateOne is the builder for updating a single AdherenceLog entity.
type AdherenceLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdherenceLogMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdherenceLogUpdateOne) SetUpdatedAt(v time.Time) *AdherenceLogUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AdherenceLogUpdateOne) SetPatientID(v uuid.UUID) *AdherenceLogUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AdherenceLogUpdateOne) SetNillablePatientID(v *uuid.UUID) *AdherenceLogUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AdherenceLogUpdateOne) SetDate(v string) *AdherenceLogUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AdherenceLogUpdateOne) SetNillableDate(v *string) *AdherenceLogUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTakenMeds sets the "taken_meds" field.
func (_u *AdherenceLogUpdateOne) SetTakenMeds(v []string) *AdherenceLogUpdateOne {
	_u.mutation.SetTakenMeds(v)
	return _u
}

// AppendTakenMeds appends value to the "taken_meds" field.
func (_u *AdherenceLogUpdateOne) AppendTakenMeds(v []string) *AdherenceLogUpdateOne {
	_u.mutation.AppendTakenMeds(v)
	return _u
}

// SetTakenCount sets the "taken_count" field.
func (_u *AdherenceLogUpdateOne) SetTakenCount(v int) *AdherenceLogUpdateOne {
	_u.mutation.ResetTakenCount()
	_u.mutation.SetTakenCount(v)
	return _u
}

// SetNillableTakenCount sets the "taken_count" field if the given value is not nil.
func (_u *AdherenceLogUpdateOne) SetNillableTakenCount(v *int) *AdherenceLogUpdateOne {
	if v != nil {
		_u.SetTakenCount(*v)
	}
	return _u
}

// AddTakenCount adds value to the "taken_count" field.
func (_u *AdherenceLogUpdateOne) AddTakenCount(v int) *AdherenceLogUpdateOne {
	_u.mutation.AddTakenCount(v)
	return _u
}

// Mutation returns the AdherenceLogMutation object of the builder.
func (_u *AdherenceLogUpdateOne) Mutation() *AdherenceLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdherenceLogUpdate builder.
func (_u *AdherenceLogUpdateOne) Where(ps ...predicate.AdherenceLog) *AdherenceLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdherenceLogUpdateOne) Select(field string, fields ...string) *AdherenceLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdherenceLog entity.
func (_u *AdherenceLogUpdateOne) Save(ctx context.Context) (*AdherenceLog, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdherenceLogUpdateOne) SaveX(ctx context.Context) *AdherenceLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdherenceLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdherenceLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdherenceLogUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adherencelog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdherenceLogUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := adherencelog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "AdherenceLog.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TakenCount(); ok {
		if err := adherencelog.TakenCountValidator(v); err != nil {
			return &ValidationError{Name: "taken_count", err: fmt.Errorf(`repo: validator failed for field "AdherenceLog.taken_count": %w`, err)}
		}
	}
	return nil
}

func (_u *AdherenceLogUpdateOne) sqlSave(ctx context.Context) (_node *AdherenceLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adherencelog.Table, adherencelog.Columns, sqlgraph.NewFieldSpec(adherencelog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AdherenceLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adherencelog.FieldID)
		for _, f := range fields {
			if !adherencelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != adherencelog.FieldID {
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
		_spec.SetField(adherencelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(adherencelog.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(adherencelog.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakenMeds(); ok {
		_spec.SetField(adherencelog.FieldTakenMeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTakenMeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adherencelog.FieldTakenMeds, value)
		})
	}
	if value, ok := _u.mutation.TakenCount(); ok {
		_spec.SetField(adherencelog.FieldTakenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTakenCount(); ok {
		_spec.AddField(adherencelog.FieldTakenCount, field.TypeInt, value)
	}
	_node = &AdherenceLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adherencelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
