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
	"github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/google/uuid"
)

// HealthLogCreate is the builder for creating a HealthLog entity.
type HealthLogCreate struct {
	config
	mutation *HealthLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HealthLogCreate) SetCreatedAt(v time.Time) *HealthLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableCreatedAt(v *time.Time) *HealthLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *HealthLogCreate) SetPatientID(v uuid.UUID) *HealthLogCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *HealthLogCreate) SetType(v healthlog.Type) *HealthLogCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *HealthLogCreate) SetDate(v string) *HealthLogCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetSys sets the "sys" field.
func (_c *HealthLogCreate) SetSys(v float64) *HealthLogCreate {
	_c.mutation.SetSys(v)
	return _c
}

// SetNillableSys sets the "sys" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableSys(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetSys(*v)
	}
	return _c
}

// SetDia sets the "dia" field.
func (_c *HealthLogCreate) SetDia(v float64) *HealthLogCreate {
	_c.mutation.SetDia(v)
	return _c
}

// SetNillableDia sets the "dia" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableDia(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetDia(*v)
	}
	return _c
}

// SetSugar sets the "sugar" field.
func (_c *HealthLogCreate) SetSugar(v float64) *HealthLogCreate {
	_c.mutation.SetSugar(v)
	return _c
}

// SetNillableSugar sets the "sugar" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableSugar(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetSugar(*v)
	}
	return _c
}

// SetWeight sets the "weight" field.
func (_c *HealthLogCreate) SetWeight(v float64) *HealthLogCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableWeight(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetHba1c sets the "hba1c" field.
func (_c *HealthLogCreate) SetHba1c(v float64) *HealthLogCreate {
	_c.mutation.SetHba1c(v)
	return _c
}

// SetNillableHba1c sets the "hba1c" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableHba1c(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetHba1c(*v)
	}
	return _c
}

// SetLipid sets the "lipid" field.
func (_c *HealthLogCreate) SetLipid(v float64) *HealthLogCreate {
	_c.mutation.SetLipid(v)
	return _c
}

// SetNillableLipid sets the "lipid" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableLipid(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetLipid(*v)
	}
	return _c
}

// SetEgfr sets the "egfr" field.
func (_c *HealthLogCreate) SetEgfr(v float64) *HealthLogCreate {
	_c.mutation.SetEgfr(v)
	return _c
}

// SetNillableEgfr sets the "egfr" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableEgfr(v *float64) *HealthLogCreate {
	if v != nil {
		_c.SetEgfr(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HealthLogCreate) SetID(v uuid.UUID) *HealthLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableID(v *uuid.UUID) *HealthLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HealthLogMutation object of the builder.
func (_c *HealthLogCreate) Mutation() *HealthLogMutation {
	return _c.mutation
}

// Save creates the HealthLog in the database.
func (_c *HealthLogCreate) Save(ctx context.Context) (*HealthLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthLogCreate) SaveX(ctx context.Context) *HealthLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := healthlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := healthlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HealthLog.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "HealthLog.patient_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "HealthLog.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := healthlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "HealthLog.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "HealthLog.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := healthlog.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "HealthLog.date": %w`, err)}
		}
	}
	return nil
}

func (_c *HealthLogCreate) sqlSave(ctx context.Context) (*HealthLog, error) {
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

func (_c *HealthLogCreate) createSpec() (*HealthLog, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthlog.Table, sqlgraph.NewFieldSpec(healthlog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(healthlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(healthlog.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(healthlog.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(healthlog.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Sys(); ok {
		_spec.SetField(healthlog.FieldSys, field.TypeFloat64, value)
		_node.Sys = &value
	}
	if value, ok := _c.mutation.Dia(); ok {
		_spec.SetField(healthlog.FieldDia, field.TypeFloat64, value)
		_node.Dia = &value
	}
	if value, ok := _c.mutation.Sugar(); ok {
		_spec.SetField(healthlog.FieldSugar, field.TypeFloat64, value)
		_node.Sugar = &value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(healthlog.FieldWeight, field.TypeFloat64, value)
		_node.Weight = &value
	}
	if value, ok := _c.mutation.Hba1c(); ok {
		_spec.SetField(healthlog.FieldHba1c, field.TypeFloat64, value)
		_node.Hba1c = &value
	}
	if value, ok := _c.mutation.Lipid(); ok {
		_spec.SetField(healthlog.FieldLipid, field.TypeFloat64, value)
		_node.Lipid = &value
	}
	if value, ok := _c.mutation.Egfr(); ok {
		_spec.SetField(healthlog.FieldEgfr, field.TypeFloat64, value)
		_node.Egfr = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthLog.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthLogCreate) OnConflict(opts ...sql.ConflictOption) *HealthLogUpsertOne {
	_c.conflict = opts
	return &HealthLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthLogCreate) OnConflictColumns(columns ...string) *HealthLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthLogUpsertOne{
		create: _c,
	}
}

type (
	// HealthLogUpsertOne is the builder for "upsert"-ing
	//  one HealthLog node.
	HealthLogUpsertOne struct {
		create *HealthLogCreate
	}

	// HealthLogUpsert is the "OnConflict" setter.
	HealthLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *HealthLogUpsert) SetPatientID(v uuid.UUID) *HealthLogUpsert {
	u.Set(healthlog.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdatePatientID() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldPatientID)
	return u
}

// SetType sets the "type" field.
func (u *HealthLogUpsert) SetType(v healthlog.Type) *HealthLogUpsert {
	u.Set(healthlog.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateType() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldType)
	return u
}

// SetDate sets the "date" field.
func (u *HealthLogUpsert) SetDate(v string) *HealthLogUpsert {
	u.Set(healthlog.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateDate() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldDate)
	return u
}

// SetSys sets the "sys" field.
func (u *HealthLogUpsert) SetSys(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldSys, v)
	return u
}

// UpdateSys sets the "sys" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateSys() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldSys)
	return u
}

// AddSys adds v to the "sys" field.
func (u *HealthLogUpsert) AddSys(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldSys, v)
	return u
}

// ClearSys clears the value of the "sys" field.
func (u *HealthLogUpsert) ClearSys() *HealthLogUpsert {
	u.SetNull(healthlog.FieldSys)
	return u
}

// SetDia sets the "dia" field.
func (u *HealthLogUpsert) SetDia(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldDia, v)
	return u
}

// UpdateDia sets the "dia" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateDia() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldDia)
	return u
}

// AddDia adds v to the "dia" field.
func (u *HealthLogUpsert) AddDia(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldDia, v)
	return u
}

// ClearDia clears the value of the "dia" field.
func (u *HealthLogUpsert) ClearDia() *HealthLogUpsert {
	u.SetNull(healthlog.FieldDia)
	return u
}

// SetSugar sets the "sugar" field.
func (u *HealthLogUpsert) SetSugar(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldSugar, v)
	return u
}

// UpdateSugar sets the "sugar" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateSugar() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldSugar)
	return u
}

// AddSugar adds v to the "sugar" field.
func (u *HealthLogUpsert) AddSugar(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldSugar, v)
	return u
}

// ClearSugar clears the value of the "sugar" field.
func (u *HealthLogUpsert) ClearSugar() *HealthLogUpsert {
	u.SetNull(healthlog.FieldSugar)
	return u
}

// SetWeight sets the "weight" field.
func (u *HealthLogUpsert) SetWeight(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateWeight() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *HealthLogUpsert) AddWeight(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldWeight, v)
	return u
}

// ClearWeight clears the value of the "weight" field.
func (u *HealthLogUpsert) ClearWeight() *HealthLogUpsert {
	u.SetNull(healthlog.FieldWeight)
	return u
}

// SetHba1c sets the "hba1c" field.
func (u *HealthLogUpsert) SetHba1c(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldHba1c, v)
	return u
}

// UpdateHba1c sets the "hba1c" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateHba1c() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldHba1c)
	return u
}

// AddHba1c adds v to the "hba1c" field.
func (u *HealthLogUpsert) AddHba1c(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldHba1c, v)
	return u
}

// ClearHba1c clears the value of the "hba1c" field.
func (u *HealthLogUpsert) ClearHba1c() *HealthLogUpsert {
	u.SetNull(healthlog.FieldHba1c)
	return u
}

// SetLipid sets the "lipid" field.
func (u *HealthLogUpsert) SetLipid(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldLipid, v)
	return u
}

// UpdateLipid sets the "lipid" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateLipid() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldLipid)
	return u
}

// AddLipid adds v to the "lipid" field.
func (u *HealthLogUpsert) AddLipid(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldLipid, v)
	return u
}

// ClearLipid clears the value of the "lipid" field.
func (u *HealthLogUpsert) ClearLipid() *HealthLogUpsert {
	u.SetNull(healthlog.FieldLipid)
	return u
}

// SetEgfr sets the "egfr" field.
func (u *HealthLogUpsert) SetEgfr(v float64) *HealthLogUpsert {
	u.Set(healthlog.FieldEgfr, v)
	return u
}

// UpdateEgfr sets the "egfr" field to the value that was provided on create.
func (u *HealthLogUpsert) UpdateEgfr() *HealthLogUpsert {
	u.SetExcluded(healthlog.FieldEgfr)
	return u
}

// AddEgfr adds v to the "egfr" field.
func (u *HealthLogUpsert) AddEgfr(v float64) *HealthLogUpsert {
	u.Add(healthlog.FieldEgfr, v)
	return u
}

// ClearEgfr clears the value of the "egfr" field.
func (u *HealthLogUpsert) ClearEgfr() *HealthLogUpsert {
	u.SetNull(healthlog.FieldEgfr)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HealthLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthLogUpsertOne) UpdateNewValues() *HealthLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(healthlog.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(healthlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HealthLogUpsertOne) Ignore() *HealthLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthLogUpsertOne) DoNothing() *HealthLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthLogCreate.OnConflict
// documentation for more info.
func (u *HealthLogUpsertOne) Update(set func(*HealthLogUpsert)) *HealthLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *HealthLogUpsertOne) SetPatientID(v uuid.UUID) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdatePatientID() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdatePatientID()
	})
}

// SetType sets the "type" field.
func (u *HealthLogUpsertOne) SetType(v healthlog.Type) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateType() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateType()
	})
}

// SetDate sets the "date" field.
func (u *HealthLogUpsertOne) SetDate(v string) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateDate() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateDate()
	})
}

// SetSys sets the "sys" field.
func (u *HealthLogUpsertOne) SetSys(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetSys(v)
	})
}

// AddSys adds v to the "sys" field.
func (u *HealthLogUpsertOne) AddSys(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddSys(v)
	})
}

// UpdateSys sets the "sys" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateSys() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateSys()
	})
}

// ClearSys clears the value of the "sys" field.
func (u *HealthLogUpsertOne) ClearSys() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearSys()
	})
}

// SetDia sets the "dia" field.
func (u *HealthLogUpsertOne) SetDia(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetDia(v)
	})
}

// AddDia adds v to the "dia" field.
func (u *HealthLogUpsertOne) AddDia(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddDia(v)
	})
}

// UpdateDia sets the "dia" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateDia() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateDia()
	})
}

// ClearDia clears the value of the "dia" field.
func (u *HealthLogUpsertOne) ClearDia() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearDia()
	})
}

// SetSugar sets the "sugar" field.
func (u *HealthLogUpsertOne) SetSugar(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetSugar(v)
	})
}

// AddSugar adds v to the "sugar" field.
func (u *HealthLogUpsertOne) AddSugar(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddSugar(v)
	})
}

// UpdateSugar sets the "sugar" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateSugar() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateSugar()
	})
}

// ClearSugar clears the value of the "sugar" field.
func (u *HealthLogUpsertOne) ClearSugar() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearSugar()
	})
}

// SetWeight sets the "weight" field.
func (u *HealthLogUpsertOne) SetWeight(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *HealthLogUpsertOne) AddWeight(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateWeight() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateWeight()
	})
}

// ClearWeight clears the value of the "weight" field.
func (u *HealthLogUpsertOne) ClearWeight() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearWeight()
	})
}

// SetHba1c sets the "hba1c" field.
func (u *HealthLogUpsertOne) SetHba1c(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetHba1c(v)
	})
}

// AddHba1c adds v to the "hba1c" field.
func (u *HealthLogUpsertOne) AddHba1c(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddHba1c(v)
	})
}

// UpdateHba1c sets the "hba1c" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateHba1c() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateHba1c()
	})
}

// ClearHba1c clears the value of the "hba1c" field.
func (u *HealthLogUpsertOne) ClearHba1c() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearHba1c()
	})
}

// SetLipid sets the "lipid" field.
func (u *HealthLogUpsertOne) SetLipid(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetLipid(v)
	})
}

// AddLipid adds v to the "lipid" field.
func (u *HealthLogUpsertOne) AddLipid(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddLipid(v)
	})
}

// UpdateLipid sets the "lipid" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateLipid() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateLipid()
	})
}

// ClearLipid clears the value of the "lipid" field.
func (u *HealthLogUpsertOne) ClearLipid() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearLipid()
	})
}

// SetEgfr sets the "egfr" field.
func (u *HealthLogUpsertOne) SetEgfr(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetEgfr(v)
	})
}

// AddEgfr adds v to the "egfr" field.
func (u *HealthLogUpsertOne) AddEgfr(v float64) *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddEgfr(v)
	})
}

// UpdateEgfr sets the "egfr" field to the value that was provided on create.
func (u *HealthLogUpsertOne) UpdateEgfr() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateEgfr()
	})
}

// ClearEgfr clears the value of the "egfr" field.
func (u *HealthLogUpsertOne) ClearEgfr() *HealthLogUpsertOne {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearEgfr()
	})
}

// Exec executes the query.
func (u *HealthLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HealthLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HealthLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HealthLogUpsertOne.ID is not supported by MySQL driver. Use HealthLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HealthLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HealthLogCreateBulk is the builder for creating many HealthLog entities in bulk.
type HealthLogCreateBulk struct {
	config
	err      error
	builders []*HealthLogCreate
	conflict []sql.ConflictOption
}

// Save creates the HealthLog entities in the database.
func (_c *HealthLogCreateBulk) Save(ctx context.Context) ([]*HealthLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthLogMutation)
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
func (_c *HealthLogCreateBulk) SaveX(ctx context.Context) []*HealthLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *HealthLogUpsertBulk {
	_c.conflict = opts
	return &HealthLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthLogCreateBulk) OnConflictColumns(columns ...string) *HealthLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthLogUpsertBulk{
		create: _c,
	}
}

// HealthLogUpsertBulk is the builder for "upsert"-ing
// a bulk of HealthLog nodes.
type HealthLogUpsertBulk struct {
	create *HealthLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HealthLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthLogUpsertBulk) UpdateNewValues() *HealthLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(healthlog.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(healthlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HealthLogUpsertBulk) Ignore() *HealthLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthLogUpsertBulk) DoNothing() *HealthLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthLogCreateBulk.OnConflict
// documentation for more info.
func (u *HealthLogUpsertBulk) Update(set func(*HealthLogUpsert)) *HealthLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *HealthLogUpsertBulk) SetPatientID(v uuid.UUID) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdatePatientID() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdatePatientID()
	})
}

// SetType sets the "type" field.
func (u *HealthLogUpsertBulk) SetType(v healthlog.Type) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateType() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateType()
	})
}

// SetDate sets the "date" field.
func (u *HealthLogUpsertBulk) SetDate(v string) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateDate() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateDate()
	})
}

// SetSys sets the "sys" field.
func (u *HealthLogUpsertBulk) SetSys(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetSys(v)
	})
}

// AddSys adds v to the "sys" field.
func (u *HealthLogUpsertBulk) AddSys(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddSys(v)
	})
}

// UpdateSys sets the "sys" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateSys() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateSys()
	})
}

// ClearSys clears the value of the "sys" field.
func (u *HealthLogUpsertBulk) ClearSys() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearSys()
	})
}

// SetDia sets the "dia" field.
func (u *HealthLogUpsertBulk) SetDia(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetDia(v)
	})
}

// AddDia adds v to the "dia" field.
func (u *HealthLogUpsertBulk) AddDia(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddDia(v)
	})
}

// UpdateDia sets the "dia" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateDia() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateDia()
	})
}

// ClearDia clears the value of the "dia" field.
func (u *HealthLogUpsertBulk) ClearDia() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearDia()
	})
}

// SetSugar sets the "sugar" field.
func (u *HealthLogUpsertBulk) SetSugar(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetSugar(v)
	})
}

// AddSugar adds v to the "sugar" field.
func (u *HealthLogUpsertBulk) AddSugar(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddSugar(v)
	})
}

// UpdateSugar sets the "sugar" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateSugar() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateSugar()
	})
}

// ClearSugar clears the value of the "sugar" field.
func (u *HealthLogUpsertBulk) ClearSugar() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearSugar()
	})
}

// SetWeight sets the "weight" field.
func (u *HealthLogUpsertBulk) SetWeight(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *HealthLogUpsertBulk) AddWeight(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateWeight() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateWeight()
	})
}

// ClearWeight clears the value of the "weight" field.
func (u *HealthLogUpsertBulk) ClearWeight() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearWeight()
	})
}

// SetHba1c sets the "hba1c" field.
func (u *HealthLogUpsertBulk) SetHba1c(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetHba1c(v)
	})
}

// AddHba1c adds v to the "hba1c" field.
func (u *HealthLogUpsertBulk) AddHba1c(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddHba1c(v)
	})
}

// UpdateHba1c sets the "hba1c" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateHba1c() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateHba1c()
	})
}

// ClearHba1c clears the value of the "hba1c" field.
func (u *HealthLogUpsertBulk) ClearHba1c() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearHba1c()
	})
}

// SetLipid sets the "lipid" field.
func (u *HealthLogUpsertBulk) SetLipid(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetLipid(v)
	})
}

// AddLipid adds v to the "lipid" field.
func (u *HealthLogUpsertBulk) AddLipid(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddLipid(v)
	})
}

// UpdateLipid sets the "lipid" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateLipid() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateLipid()
	})
}

// ClearLipid clears the value of the "lipid" field.
func (u *HealthLogUpsertBulk) ClearLipid() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearLipid()
	})
}

// SetEgfr sets the "egfr" field.
func (u *HealthLogUpsertBulk) SetEgfr(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.SetEgfr(v)
	})
}

// AddEgfr adds v to the "egfr" field.
func (u *HealthLogUpsertBulk) AddEgfr(v float64) *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.AddEgfr(v)
	})
}

// UpdateEgfr sets the "egfr" field to the value that was provided on create.
func (u *HealthLogUpsertBulk) UpdateEgfr() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.UpdateEgfr()
	})
}

// ClearEgfr clears the value of the "egfr" field.
func (u *HealthLogUpsertBulk) ClearEgfr() *HealthLogUpsertBulk {
	return u.Update(func(s *HealthLogUpsert) {
		s.ClearEgfr()
	})
}

// Exec executes the query.
func (u *HealthLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HealthLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HealthLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
