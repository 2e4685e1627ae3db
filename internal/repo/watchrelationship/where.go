// Code generated by ent, DO NOT EDIT.

package watchrelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CaregiverID applies equality check predicate on the "caregiver_id" field. It's identical to CaregiverIDEQ.
func CaregiverID(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldCaregiverID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldPatientID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldPatientName, v))
}

// SmartID applies equality check predicate on the "smart_id" field. It's identical to SmartIDEQ.
func SmartID(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldSmartID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLTE(FieldCreatedAt, v))
}

// CaregiverIDEQ applies the EQ predicate on the "caregiver_id" field.
func CaregiverIDEQ(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldCaregiverID, v))
}

// CaregiverIDNEQ applies the NEQ predicate on the "caregiver_id" field.
func CaregiverIDNEQ(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNEQ(FieldCaregiverID, v))
}

// CaregiverIDIn applies the In predicate on the "caregiver_id" field.
func CaregiverIDIn(vs ...uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldIn(FieldCaregiverID, vs...))
}

// CaregiverIDNotIn applies the NotIn predicate on the "caregiver_id" field.
func CaregiverIDNotIn(vs ...uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNotIn(FieldCaregiverID, vs...))
}

// CaregiverIDGT applies the GT predicate on the "caregiver_id" field.
func CaregiverIDGT(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGT(FieldCaregiverID, v))
}

// CaregiverIDGTE applies the GTE predicate on the "caregiver_id" field.
func CaregiverIDGTE(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGTE(FieldCaregiverID, v))
}

// CaregiverIDLT applies the LT predicate on the "caregiver_id" field.
func CaregiverIDLT(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLT(FieldCaregiverID, v))
}

// CaregiverIDLTE applies the LTE predicate on the "caregiver_id" field.
func CaregiverIDLTE(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLTE(FieldCaregiverID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLTE(FieldPatientID, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldContainsFold(FieldPatientName, v))
}

// SmartIDEQ applies the EQ predicate on the "smart_id" field.
func SmartIDEQ(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEQ(FieldSmartID, v))
}

// SmartIDNEQ applies the NEQ predicate on the "smart_id" field.
func SmartIDNEQ(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNEQ(FieldSmartID, v))
}

// SmartIDIn applies the In predicate on the "smart_id" field.
func SmartIDIn(vs ...string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldIn(FieldSmartID, vs...))
}

// SmartIDNotIn applies the NotIn predicate on the "smart_id" field.
func SmartIDNotIn(vs ...string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldNotIn(FieldSmartID, vs...))
}

// SmartIDGT applies the GT predicate on the "smart_id" field.
func SmartIDGT(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGT(FieldSmartID, v))
}

// SmartIDGTE applies the GTE predicate on the "smart_id" field.
func SmartIDGTE(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldGTE(FieldSmartID, v))
}

// SmartIDLT applies the LT predicate on the "smart_id" field.
func SmartIDLT(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLT(FieldSmartID, v))
}

// SmartIDLTE applies the LTE predicate on the "smart_id" field.
func SmartIDLTE(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldLTE(FieldSmartID, v))
}

// SmartIDContains applies the Contains predicate on the "smart_id" field.
func SmartIDContains(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldContains(FieldSmartID, v))
}

// SmartIDHasPrefix applies the HasPrefix predicate on the "smart_id" field.
func SmartIDHasPrefix(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldHasPrefix(FieldSmartID, v))
}

// SmartIDHasSuffix applies the HasSuffix predicate on the "smart_id" field.
func SmartIDHasSuffix(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldHasSuffix(FieldSmartID, v))
}

// SmartIDEqualFold applies the EqualFold predicate on the "smart_id" field.
func SmartIDEqualFold(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldEqualFold(FieldSmartID, v))
}

// SmartIDContainsFold applies the ContainsFold predicate on the "smart_id" field.
func SmartIDContainsFold(v string) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.FieldContainsFold(FieldSmartID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WatchRelationship) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WatchRelationship) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WatchRelationship) predicate.WatchRelationship {
	return predicate.WatchRelationship(sql.NotPredicates(p))
}
