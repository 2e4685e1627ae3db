// Code generated by ent, DO NOT EDIT.

package healthlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldPatientID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldDate, v))
}

// Sys applies equality check predicate on the "sys" field. It's identical to SysEQ.
func Sys(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldSys, v))
}

// Dia applies equality check predicate on the "dia" field. It's identical to DiaEQ.
func Dia(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldDia, v))
}

// Sugar applies equality check predicate on the "sugar" field. It's identical to SugarEQ.
func Sugar(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldSugar, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldWeight, v))
}

// Hba1c applies equality check predicate on the "hba1c" field. It's identical to Hba1cEQ.
func Hba1c(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldHba1c, v))
}

// Lipid applies equality check predicate on the "lipid" field. It's identical to LipidEQ.
func Lipid(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldLipid, v))
}

// Egfr applies equality check predicate on the "egfr" field. It's identical to EgfrEQ.
func Egfr(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldEgfr, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldPatientID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldType, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldContainsFold(FieldDate, v))
}

// SysEQ applies the EQ predicate on the "sys" field.
func SysEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldSys, v))
}

// SysNEQ applies the NEQ predicate on the "sys" field.
func SysNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldSys, v))
}

// SysIn applies the In predicate on the "sys" field.
func SysIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldSys, vs...))
}

// SysNotIn applies the NotIn predicate on the "sys" field.
func SysNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldSys, vs...))
}

// SysGT applies the GT predicate on the "sys" field.
func SysGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldSys, v))
}

// SysGTE applies the GTE predicate on the "sys" field.
func SysGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldSys, v))
}

// SysLT applies the LT predicate on the "sys" field.
func SysLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldSys, v))
}

// SysLTE applies the LTE predicate on the "sys" field.
func SysLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldSys, v))
}

// SysIsNil applies the IsNil predicate on the "sys" field.
func SysIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldSys))
}

// SysNotNil applies the NotNil predicate on the "sys" field.
func SysNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldSys))
}

// DiaEQ applies the EQ predicate on the "dia" field.
func DiaEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldDia, v))
}

// DiaNEQ applies the NEQ predicate on the "dia" field.
func DiaNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldDia, v))
}

// DiaIn applies the In predicate on the "dia" field.
func DiaIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldDia, vs...))
}

// DiaNotIn applies the NotIn predicate on the "dia" field.
func DiaNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldDia, vs...))
}

// DiaGT applies the GT predicate on the "dia" field.
func DiaGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldDia, v))
}

// DiaGTE applies the GTE predicate on the "dia" field.
func DiaGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldDia, v))
}

// DiaLT applies the LT predicate on the "dia" field.
func DiaLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldDia, v))
}

// DiaLTE applies the LTE predicate on the "dia" field.
func DiaLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldDia, v))
}

// DiaIsNil applies the IsNil predicate on the "dia" field.
func DiaIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldDia))
}

// DiaNotNil applies the NotNil predicate on the "dia" field.
func DiaNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldDia))
}

// SugarEQ applies the EQ predicate on the "sugar" field.
func SugarEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldSugar, v))
}

// SugarNEQ applies the NEQ predicate on the "sugar" field.
func SugarNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldSugar, v))
}

// SugarIn applies the In predicate on the "sugar" field.
func SugarIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldSugar, vs...))
}

// SugarNotIn applies the NotIn predicate on the "sugar" field.
func SugarNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldSugar, vs...))
}

// SugarGT applies the GT predicate on the "sugar" field.
func SugarGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldSugar, v))
}

// SugarGTE applies the GTE predicate on the "sugar" field.
func SugarGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldSugar, v))
}

// SugarLT applies the LT predicate on the "sugar" field.
func SugarLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldSugar, v))
}

// SugarLTE applies the LTE predicate on the "sugar" field.
func SugarLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldSugar, v))
}

// SugarIsNil applies the IsNil predicate on the "sugar" field.
func SugarIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldSugar))
}

// SugarNotNil applies the NotNil predicate on the "sugar" field.
func SugarNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldSugar))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldWeight, v))
}

// WeightIsNil applies the IsNil predicate on the "weight" field.
func WeightIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldWeight))
}

// WeightNotNil applies the NotNil predicate on the "weight" field.
func WeightNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldWeight))
}

// Hba1cEQ applies the EQ predicate on the "hba1c" field.
func Hba1cEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldHba1c, v))
}

// Hba1cNEQ applies the NEQ predicate on the "hba1c" field.
func Hba1cNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldHba1c, v))
}

// Hba1cIn applies the In predicate on the "hba1c" field.
func Hba1cIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldHba1c, vs...))
}

// Hba1cNotIn applies the NotIn predicate on the "hba1c" field.
func Hba1cNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldHba1c, vs...))
}

// Hba1cGT applies the GT predicate on the "hba1c" field.
func Hba1cGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldHba1c, v))
}

// Hba1cGTE applies the GTE predicate on the "hba1c" field.
func Hba1cGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldHba1c, v))
}

// Hba1cLT applies the LT predicate on the "hba1c" field.
func Hba1cLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldHba1c, v))
}

// Hba1cLTE applies the LTE predicate on the "hba1c" field.
func Hba1cLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldHba1c, v))
}

// Hba1cIsNil applies the IsNil predicate on the "hba1c" field.
func Hba1cIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldHba1c))
}

// Hba1cNotNil applies the NotNil predicate on the "hba1c" field.
func Hba1cNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldHba1c))
}

// LipidEQ applies the EQ predicate on the "lipid" field.
func LipidEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldLipid, v))
}

// LipidNEQ applies the NEQ predicate on the "lipid" field.
func LipidNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldLipid, v))
}

// LipidIn applies the In predicate on the "lipid" field.
func LipidIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldLipid, vs...))
}

// LipidNotIn applies the NotIn predicate on the "lipid" field.
func LipidNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldLipid, vs...))
}

// LipidGT applies the GT predicate on the "lipid" field.
func LipidGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldLipid, v))
}

// LipidGTE applies the GTE predicate on the "lipid" field.
func LipidGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldLipid, v))
}

// LipidLT applies the LT predicate on the "lipid" field.
func LipidLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldLipid, v))
}

// LipidLTE applies the LTE predicate on the "lipid" field.
func LipidLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldLipid, v))
}

// LipidIsNil applies the IsNil predicate on the "lipid" field.
func LipidIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldLipid))
}

// LipidNotNil applies the NotNil predicate on the "lipid" field.
func LipidNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldLipid))
}

// EgfrEQ applies the EQ predicate on the "egfr" field.
func EgfrEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldEgfr, v))
}

// EgfrNEQ applies the NEQ predicate on the "egfr" field.
func EgfrNEQ(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldEgfr, v))
}

// EgfrIn applies the In predicate on the "egfr" field.
func EgfrIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldEgfr, vs...))
}

// EgfrNotIn applies the NotIn predicate on the "egfr" field.
func EgfrNotIn(vs ...float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldEgfr, vs...))
}

// EgfrGT applies the GT predicate on the "egfr" field.
func EgfrGT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldEgfr, v))
}

// EgfrGTE applies the GTE predicate on the "egfr" field.
func EgfrGTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldEgfr, v))
}

// EgfrLT applies the LT predicate on the "egfr" field.
func EgfrLT(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldEgfr, v))
}

// EgfrLTE applies the LTE predicate on the "egfr" field.
func EgfrLTE(v float64) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldEgfr, v))
}

// EgfrIsNil applies the IsNil predicate on the "egfr" field.
func EgfrIsNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIsNull(FieldEgfr))
}

// EgfrNotNil applies the NotNil predicate on the "egfr" field.
func EgfrNotNil() predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotNull(FieldEgfr))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthLog) predicate.HealthLog {
	return predicate.HealthLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthLog) predicate.HealthLog {
	return predicate.HealthLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthLog) predicate.HealthLog {
	return predicate.HealthLog(sql.NotPredicates(p))
}
