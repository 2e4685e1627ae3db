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
	"github.com/Warinthorn/carelink_backend/internal/repo/familymember"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// FamilyMemberUpdate is the builder for updating FamilyMember entities.
type FamilyMemberUpdate struct {
	config
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// Where appends a list predicates to the FamilyMemberUpdate builder.
func (_u *FamilyMemberUpdate) Where(ps ...predicate.FamilyMember) *FamilyMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FamilyMemberUpdate) SetUpdatedAt(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *FamilyMemberUpdate) SetPatientID(v uuid.UUID) *FamilyMemberUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillablePatientID(v *uuid.UUID) *FamilyMemberUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FamilyMemberUpdate) SetName(v string) *FamilyMemberUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableName(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *FamilyMemberUpdate) SetPhone(v string) *FamilyMemberUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillablePhone(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *FamilyMemberUpdate) ClearPhone() *FamilyMemberUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetRelation sets the "relation" field.
func (_u *FamilyMemberUpdate) SetRelation(v familymember.Relation) *FamilyMemberUpdate {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableRelation(v *familymember.Relation) *FamilyMemberUpdate {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_u *FamilyMemberUpdate) Mutation() *FamilyMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FamilyMemberUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FamilyMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FamilyMemberUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := familymember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FamilyMemberUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := familymember.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := familymember.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relation(); ok {
		if err := familymember.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.relation": %w`, err)}
		}
	}
	return nil
}

func (_u *FamilyMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(familymember.Table, familymember.Columns, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(familymember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(familymember.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(familymember.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(familymember.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(familymember.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(familymember.FieldRelation, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familymember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FamilyMemberUpdateOne is the builder for updating a single FamilyMember entity.
type FamilyMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FamilyMemberUpdateOne) SetUpdatedAt(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *FamilyMemberUpdateOne) SetPatientID(v uuid.UUID) *FamilyMemberUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillablePatientID(v *uuid.UUID) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FamilyMemberUpdateOne) SetName(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableName(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *FamilyMemberUpdateOne) SetPhone(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillablePhone(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *FamilyMemberUpdateOne) ClearPhone() *FamilyMemberUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetRelation sets the "relation" field.
func (_u *FamilyMemberUpdateOne) SetRelation(v familymember.Relation) *FamilyMemberUpdateOne {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableRelation(v *familymember.Relation) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_u *FamilyMemberUpdateOne) Mutation() *FamilyMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the FamilyMemberUpdate builder.
func (_u *FamilyMemberUpdateOne) Where(ps ...predicate.FamilyMember) *FamilyMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FamilyMemberUpdateOne) Select(field string, fields ...string) *FamilyMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FamilyMember entity.
func (_u *FamilyMemberUpdateOne) Save(ctx context.Context) (*FamilyMember, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyMemberUpdateOne) SaveX(ctx context.Context) *FamilyMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FamilyMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FamilyMemberUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := familymember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FamilyMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := familymember.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := familymember.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relation(); ok {
		if err := familymember.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.relation": %w`, err)}
		}
	}
	return nil
}

func (_u *FamilyMemberUpdateOne) sqlSave(ctx context.Context) (_node *FamilyMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(familymember.Table, familymember.Columns, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FamilyMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, familymember.FieldID)
		for _, f := range fields {
			if !familymember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != familymember.FieldID {
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
		_spec.SetField(familymember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(familymember.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(familymember.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(familymember.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(familymember.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(familymember.FieldRelation, field.TypeEnum, value)
	}
	_node = &FamilyMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familymember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
