// Code generated by ent, DO NOT EDIT.

package adherencelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldPatientID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldDate, v))
}

// TakenCount applies equality check predicate on the "taken_count" field. It's identical to TakenCountEQ.
func TakenCount(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldTakenCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLTE(FieldPatientID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldContainsFold(FieldDate, v))
}

// TakenCountEQ applies the EQ predicate on the "taken_count" field.
func TakenCountEQ(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldEQ(FieldTakenCount, v))
}

// TakenCountNEQ applies the NEQ predicate on the "taken_count" field.
func TakenCountNEQ(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNEQ(FieldTakenCount, v))
}

// TakenCountIn applies the In predicate on the "taken_count" field.
func TakenCountIn(vs ...int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldIn(FieldTakenCount, vs...))
}

// TakenCountNotIn applies the NotIn predicate on the "taken_count" field.
func TakenCountNotIn(vs ...int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldNotIn(FieldTakenCount, vs...))
}

// TakenCountGT applies the GT predicate on the "taken_count" field.
func TakenCountGT(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGT(FieldTakenCount, v))
}

// TakenCountGTE applies the GTE predicate on the "taken_count" field.
func TakenCountGTE(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldGTE(FieldTakenCount, v))
}

// TakenCountLT applies the LT predicate on the "taken_count" field.
func TakenCountLT(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLT(FieldTakenCount, v))
}

// TakenCountLTE applies the LTE predicate on the "taken_count" field.
func TakenCountLTE(v int) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.FieldLTE(FieldTakenCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdherenceLog) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdherenceLog) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdherenceLog) predicate.AdherenceLog {
	return predicate.AdherenceLog(sql.NotPredicates(p))
}
