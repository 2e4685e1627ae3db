// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// HealthLogUpdate is the builder for updating HealthLog entities.
type HealthLogUpdate struct {
	config
	hooks    []Hook
	mutation *HealthLogMutation
}

// Where appends a list predicates to the HealthLogUpdate builder.
func (_u *HealthLogUpdate) Where(ps ...predicate.HealthLog) *HealthLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HealthLogUpdate) SetPatientID(v uuid.UUID) *HealthLogUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillablePatientID(v *uuid.UUID) *HealthLogUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *HealthLogUpdate) SetType(v healthlog.Type) *HealthLogUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableType(v *healthlog.Type) *HealthLogUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *HealthLogUpdate) SetDate(v string) *HealthLogUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableDate(v *string) *HealthLogUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetSys sets the "sys" field.
func (_u *HealthLogUpdate) SetSys(v float64) *HealthLogUpdate {
	_u.mutation.ResetSys()
	_u.mutation.SetSys(v)
	return _u
}

// SetNillableSys sets the "sys" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableSys(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetSys(*v)
	}
	return _u
}

// AddSys adds value to the "sys" field.
func (_u *HealthLogUpdate) AddSys(v float64) *HealthLogUpdate {
	_u.mutation.AddSys(v)
	return _u
}

// ClearSys clears the value of the "sys" field.
func (_u *HealthLogUpdate) ClearSys() *HealthLogUpdate {
	_u.mutation.ClearSys()
	return _u
}

// SetDia sets the "dia" field.
func (_u *HealthLogUpdate) SetDia(v float64) *HealthLogUpdate {
	_u.mutation.ResetDia()
	_u.mutation.SetDia(v)
	return _u
}

// SetNillableDia sets the "dia" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableDia(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetDia(*v)
	}
	return _u
}

// AddDia adds value to the "dia" field.
func (_u *HealthLogUpdate) AddDia(v float64) *HealthLogUpdate {
	_u.mutation.AddDia(v)
	return _u
}

// ClearDia clears the value of the "dia" field.
func (_u *HealthLogUpdate) ClearDia() *HealthLogUpdate {
	_u.mutation.ClearDia()
	return _u
}

// SetSugar sets the "sugar" field.
func (_u *HealthLogUpdate) SetSugar(v float64) *HealthLogUpdate {
	_u.mutation.ResetSugar()
	_u.mutation.SetSugar(v)
	return _u
}

// SetNillableSugar sets the "sugar" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableSugar(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetSugar(*v)
	}
	return _u
}

// AddSugar adds value to the "sugar" field.
func (_u *HealthLogUpdate) AddSugar(v float64) *HealthLogUpdate {
	_u.mutation.AddSugar(v)
	return _u
}

// ClearSugar clears the value of the "sugar" field.
func (_u *HealthLogUpdate) ClearSugar() *HealthLogUpdate {
	_u.mutation.ClearSugar()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *HealthLogUpdate) SetWeight(v float64) *HealthLogUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableWeight(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *HealthLogUpdate) AddWeight(v float64) *HealthLogUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *HealthLogUpdate) ClearWeight() *HealthLogUpdate {
	_u.mutation.ClearWeight()
	return _u
}

// SetHba1c sets the "hba1c" field.
func (_u *HealthLogUpdate) SetHba1c(v float64) *HealthLogUpdate {
	_u.mutation.ResetHba1c()
	_u.mutation.SetHba1c(v)
	return _u
}

// SetNillableHba1c sets the "hba1c" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableHba1c(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetHba1c(*v)
	}
	return _u
}

// AddHba1c adds value to the "hba1c" field.
func (_u *HealthLogUpdate) AddHba1c(v float64) *HealthLogUpdate {
	_u.mutation.AddHba1c(v)
	return _u
}

// ClearHba1c clears the value of the "hba1c" field.
func (_u *HealthLogUpdate) ClearHba1c() *HealthLogUpdate {
	_u.mutation.ClearHba1c()
	return _u
}

// SetLipid sets the "lipid" field.
func (_u *HealthLogUpdate) SetLipid(v float64) *HealthLogUpdate {
	_u.mutation.ResetLipid()
	_u.mutation.SetLipid(v)
	return _u
}

// SetNillableLipid sets the "lipid" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableLipid(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetLipid(*v)
	}
	return _u
}

// AddLipid adds value to the "lipid" field.
func (_u *HealthLogUpdate) AddLipid(v float64) *HealthLogUpdate {
	_u.mutation.AddLipid(v)
	return _u
}

// ClearLipid clears the value of the "lipid" field.
func (_u *HealthLogUpdate) ClearLipid() *HealthLogUpdate {
	_u.mutation.ClearLipid()
	return _u
}

// SetEgfr sets the "egfr" field.
func (_u *HealthLogUpdate) SetEgfr(v float64) *HealthLogUpdate {
	_u.mutation.ResetEgfr()
	_u.mutation.SetEgfr(v)
	return _u
}

// SetNillableEgfr sets the "egfr" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableEgfr(v *float64) *HealthLogUpdate {
	if v != nil {
		_u.SetEgfr(*v)
	}
	return _u
}

// AddEgfr adds value to the "egfr" field.
func (_u *HealthLogUpdate) AddEgfr(v float64) *HealthLogUpdate {
	_u.mutation.AddEgfr(v)
	return _u
}

// ClearEgfr clears the value of the "egfr" field.
func (_u *HealthLogUpdate) ClearEgfr() *HealthLogUpdate {
	_u.mutation.ClearEgfr()
	return _u
}

// Mutation returns the HealthLogMutation object of the builder.
func (_u *HealthLogUpdate) Mutation() *HealthLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthLogUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := healthlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "HealthLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := healthlog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "HealthLog.date": %w`, err)}
		}
	}
	return nil
}

func (_u *HealthLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthlog.Table, healthlog.Columns, sqlgraph.NewFieldSpec(healthlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(healthlog.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(healthlog.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(healthlog.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sys(); ok {
		_spec.SetField(healthlog.FieldSys, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSys(); ok {
		_spec.AddField(healthlog.FieldSys, field.TypeFloat64, value)
	}
	if _u.mutation.SysCleared() {
		_spec.ClearField(healthlog.FieldSys, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Dia(); ok {
		_spec.SetField(healthlog.FieldDia, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDia(); ok {
		_spec.AddField(healthlog.FieldDia, field.TypeFloat64, value)
	}
	if _u.mutation.DiaCleared() {
		_spec.ClearField(healthlog.FieldDia, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sugar(); ok {
		_spec.SetField(healthlog.FieldSugar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSugar(); ok {
		_spec.AddField(healthlog.FieldSugar, field.TypeFloat64, value)
	}
	if _u.mutation.SugarCleared() {
		_spec.ClearField(healthlog.FieldSugar, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(healthlog.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(healthlog.FieldWeight, field.TypeFloat64, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(healthlog.FieldWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Hba1c(); ok {
		_spec.SetField(healthlog.FieldHba1c, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHba1c(); ok {
		_spec.AddField(healthlog.FieldHba1c, field.TypeFloat64, value)
	}
	if _u.mutation.Hba1cCleared() {
		_spec.ClearField(healthlog.FieldHba1c, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lipid(); ok {
		_spec.SetField(healthlog.FieldLipid, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLipid(); ok {
		_spec.AddField(healthlog.FieldLipid, field.TypeFloat64, value)
	}
	if _u.mutation.LipidCleared() {
		_spec.ClearField(healthlog.FieldLipid, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Egfr(); ok {
		_spec.SetField(healthlog.FieldEgfr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEgfr(); ok {
		_spec.AddField(healthlog.FieldEgfr, field.TypeFloat64, value)
	}
	if _u.mutation.EgfrCleared() {
		_spec.ClearField(healthlog.FieldEgfr, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthLogUpdateOne is the builder for updating a single HealthLog entity.
type HealthLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthLogMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *HealthLogUpdateOne) SetPatientID(v uuid.UUID) *HealthLogUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillablePatientID(v *uuid.UUID) *HealthLogUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *HealthLogUpdateOne) SetType(v healthlog.Type) *HealthLogUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableType(v *healthlog.Type) *HealthLogUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *HealthLogUpdateOne) SetDate(v string) *HealthLogUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableDate(v *string) *HealthLogUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetSys sets the "sys" field.
func (_u *HealthLogUpdateOne) SetSys(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetSys()
	_u.mutation.SetSys(v)
	return _u
}

// SetNillableSys sets the "sys" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableSys(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetSys(*v)
	}
	return _u
}

// AddSys adds value to the "sys" field.
func (_u *HealthLogUpdateOne) AddSys(v float64) *HealthLogUpdateOne {
	_u.mutation.AddSys(v)
	return _u
}

// ClearSys clears the value of the "sys" field.
func (_u *HealthLogUpdateOne) ClearSys() *HealthLogUpdateOne {
	_u.mutation.ClearSys()
	return _u
}

// SetDia sets the "dia" field.
func (_u *HealthLogUpdateOne) SetDia(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetDia()
	_u.mutation.SetDia(v)
	return _u
}

// SetNillableDia sets the "dia" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableDia(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetDia(*v)
	}
	return _u
}

// AddDia adds value to the "dia" field.
func (_u *HealthLogUpdateOne) AddDia(v float64) *HealthLogUpdateOne {
	_u.mutation.AddDia(v)
	return _u
}

// ClearDia clears the value of the "dia" field.
func (_u *HealthLogUpdateOne) ClearDia() *HealthLogUpdateOne {
	_u.mutation.ClearDia()
	return _u
}

// SetSugar sets the "sugar" field.
func (_u *HealthLogUpdateOne) SetSugar(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetSugar()
	_u.mutation.SetSugar(v)
	return _u
}

// SetNillableSugar sets the "sugar" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableSugar(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetSugar(*v)
	}
	return _u
}

// AddSugar adds value to the "sugar" field.
func (_u *HealthLogUpdateOne) AddSugar(v float64) *HealthLogUpdateOne {
	_u.mutation.AddSugar(v)
	return _u
}

// ClearSugar clears the value of the "sugar" field.
func (_u *HealthLogUpdateOne) ClearSugar() *HealthLogUpdateOne {
	_u.mutation.ClearSugar()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *HealthLogUpdateOne) SetWeight(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableWeight(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *HealthLogUpdateOne) AddWeight(v float64) *HealthLogUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *HealthLogUpdateOne) ClearWeight() *HealthLogUpdateOne {
	_u.mutation.ClearWeight()
	return _u
}

// SetHba1c sets the "hba1c" field.
func (_u *HealthLogUpdateOne) SetHba1c(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetHba1c()
	_u.mutation.SetHba1c(v)
	return _u
}

// SetNillableHba1c sets the "hba1c" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableHba1c(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetHba1c(*v)
	}
	return _u
}

// AddHba1c adds value to the "hba1c" field.
func (_u *HealthLogUpdateOne) AddHba1c(v float64) *HealthLogUpdateOne {
	_u.mutation.AddHba1c(v)
	return _u
}

// ClearHba1c clears the value of the "hba1c" field.
func (_u *HealthLogUpdateOne) ClearHba1c() *HealthLogUpdateOne {
	_u.mutation.ClearHba1c()
	return _u
}

// SetLipid sets the "lipid" field.
func (_u *HealthLogUpdateOne) SetLipid(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetLipid()
	_u.mutation.SetLipid(v)
	return _u
}

// SetNillableLipid sets the "lipid" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableLipid(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetLipid(*v)
	}
	return _u
}

// AddLipid adds value to the "lipid" field.
func (_u *HealthLogUpdateOne) AddLipid(v float64) *HealthLogUpdateOne {
	_u.mutation.AddLipid(v)
	return _u
}

// ClearLipid clears the value of the "lipid" field.
func (_u *HealthLogUpdateOne) ClearLipid() *HealthLogUpdateOne {
	_u.mutation.ClearLipid()
	return _u
}

// SetEgfr sets the "egfr" field.
func (_u *HealthLogUpdateOne) SetEgfr(v float64) *HealthLogUpdateOne {
	_u.mutation.ResetEgfr()
	_u.mutation.SetEgfr(v)
	return _u
}

// SetNillableEgfr sets the "egfr" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableEgfr(v *float64) *HealthLogUpdateOne {
	if v != nil {
		_u.SetEgfr(*v)
	}
	return _u
}

// AddEgfr adds value to the "egfr" field.
func (_u *HealthLogUpdateOne) AddEgfr(v float64) *HealthLogUpdateOne {
	_u.mutation.AddEgfr(v)
	return _u
}

// ClearEgfr clears the value of the "egfr" field.
func (_u *HealthLogUpdateOne) ClearEgfr() *HealthLogUpdateOne {
	_u.mutation.ClearEgfr()
	return _u
}

// Mutation returns the HealthLogMutation object of the builder.
func (_u *HealthLogUpdateOne) Mutation() *HealthLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the HealthLogUpdate builder.
func (_u *HealthLogUpdateOne) Where(ps ...predicate.HealthLog) *HealthLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthLogUpdateOne) Select(field string, fields ...string) *HealthLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthLog entity.
func (_u *HealthLogUpdateOne) Save(ctx context.Context) (*HealthLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthLogUpdateOne) SaveX(ctx context.Context) *HealthLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthLogUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := healthlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "HealthLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := healthlog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "HealthLog.date": %w`, err)}
		}
	}
	return nil
}

func (_u *HealthLogUpdateOne) sqlSave(ctx context.Context) (_node *HealthLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthlog.Table, healthlog.Columns, sqlgraph.NewFieldSpec(healthlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HealthLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthlog.FieldID)
		for _, f := range fields {
			if !healthlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != healthlog.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(healthlog.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(healthlog.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(healthlog.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sys(); ok {
		_spec.SetField(healthlog.FieldSys, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSys(); ok {
		_spec.AddField(healthlog.FieldSys, field.TypeFloat64, value)
	}
	if _u.mutation.SysCleared() {
		_spec.ClearField(healthlog.FieldSys, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Dia(); ok {
		_spec.SetField(healthlog.FieldDia, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDia(); ok {
		_spec.AddField(healthlog.FieldDia, field.TypeFloat64, value)
	}
	if _u.mutation.DiaCleared() {
		_spec.ClearField(healthlog.FieldDia, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sugar(); ok {
		_spec.SetField(healthlog.FieldSugar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSugar(); ok {
		_spec.AddField(healthlog.FieldSugar, field.TypeFloat64, value)
	}
	if _u.mutation.SugarCleared() {
		_spec.ClearField(healthlog.FieldSugar, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(healthlog.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(healthlog.FieldWeight, field.TypeFloat64, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(healthlog.FieldWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Hba1c(); ok {
		_spec.SetField(healthlog.FieldHba1c, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHba1c(); ok {
		_spec.AddField(healthlog.FieldHba1c, field.TypeFloat64, value)
	}
	if _u.mutation.Hba1cCleared() {
		_spec.ClearField(healthlog.FieldHba1c, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lipid(); ok {
		_spec.SetField(healthlog.FieldLipid, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLipid(); ok {
		_spec.AddField(healthlog.FieldLipid, field.TypeFloat64, value)
	}
	if _u.mutation.LipidCleared() {
		_spec.ClearField(healthlog.FieldLipid, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Egfr(); ok {
		_spec.SetField(healthlog.FieldEgfr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEgfr(); ok {
		_spec.AddField(healthlog.FieldEgfr, field.TypeFloat64, value)
	}
	if _u.mutation.EgfrCleared() {
		_spec.ClearField(healthlog.FieldEgfr, field.TypeFloat64)
	}
	_node = &HealthLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
