// Code generated by ent, DO NOT EDIT.

package smartidentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// SmartID applies equality check predicate on the "smart_id" field. It's identical to SmartIDEQ.
func SmartID(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldSmartID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldPatientID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// SmartIDEQ applies the EQ predicate on the "smart_id" field.
func SmartIDEQ(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldSmartID, v))
}

// SmartIDNEQ applies the NEQ predicate on the "smart_id" field.
func SmartIDNEQ(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNEQ(FieldSmartID, v))
}

// SmartIDIn applies the In predicate on the "smart_id" field.
func SmartIDIn(vs ...string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldIn(FieldSmartID, vs...))
}

// SmartIDNotIn applies the NotIn predicate on the "smart_id" field.
func SmartIDNotIn(vs ...string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNotIn(FieldSmartID, vs...))
}

// SmartIDGT applies the GT predicate on the "smart_id" field.
func SmartIDGT(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGT(FieldSmartID, v))
}

// SmartIDGTE applies the GTE predicate on the "smart_id" field.
func SmartIDGTE(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGTE(FieldSmartID, v))
}

// SmartIDLT applies the LT predicate on the "smart_id" field.
func SmartIDLT(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLT(FieldSmartID, v))
}

// SmartIDLTE applies the LTE predicate on the "smart_id" field.
func SmartIDLTE(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLTE(FieldSmartID, v))
}

// SmartIDContains applies the Contains predicate on the "smart_id" field.
func SmartIDContains(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldContains(FieldSmartID, v))
}

// SmartIDHasPrefix applies the HasPrefix predicate on the "smart_id" field.
func SmartIDHasPrefix(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldHasPrefix(FieldSmartID, v))
}

// SmartIDHasSuffix applies the HasSuffix predicate on the "smart_id" field.
func SmartIDHasSuffix(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldHasSuffix(FieldSmartID, v))
}

// SmartIDEqualFold applies the EqualFold predicate on the "smart_id" field.
func SmartIDEqualFold(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEqualFold(FieldSmartID, v))
}

// SmartIDContainsFold applies the ContainsFold predicate on the "smart_id" field.
func SmartIDContainsFold(v string) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldContainsFold(FieldSmartID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.FieldLTE(FieldPatientID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SmartIDEntry) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SmartIDEntry) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SmartIDEntry) predicate.SmartIDEntry {
	return predicate.SmartIDEntry(sql.NotPredicates(p))
}
