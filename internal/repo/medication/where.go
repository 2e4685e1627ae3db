// Code generated by ent, DO NOT EDIT.

package medication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldPatientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldName, v))
}

// Dose applies equality check predicate on the "dose" field. It's identical to DoseEQ.
func Dose(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDose, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldPatientID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldName, v))
}

// DoseEQ applies the EQ predicate on the "dose" field.
func DoseEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDose, v))
}

// DoseNEQ applies the NEQ predicate on the "dose" field.
func DoseNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldDose, v))
}

// DoseIn applies the In predicate on the "dose" field.
func DoseIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldDose, vs...))
}

// DoseNotIn applies the NotIn predicate on the "dose" field.
func DoseNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldDose, vs...))
}

// DoseGT applies the GT predicate on the "dose" field.
func DoseGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldDose, v))
}

// DoseGTE applies the GTE predicate on the "dose" field.
func DoseGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldDose, v))
}

// DoseLT applies the LT predicate on the "dose" field.
func DoseLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldDose, v))
}

// DoseLTE applies the LTE predicate on the "dose" field.
func DoseLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldDose, v))
}

// DoseContains applies the Contains predicate on the "dose" field.
func DoseContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldDose, v))
}

// DoseHasPrefix applies the HasPrefix predicate on the "dose" field.
func DoseHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldDose, v))
}

// DoseHasSuffix applies the HasSuffix predicate on the "dose" field.
func DoseHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldDose, v))
}

// DoseIsNil applies the IsNil predicate on the "dose" field.
func DoseIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldDose))
}

// DoseNotNil applies the NotNil predicate on the "dose" field.
func DoseNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldDose))
}

// DoseEqualFold applies the EqualFold predicate on the "dose" field.
func DoseEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldDose, v))
}

// DoseContainsFold applies the ContainsFold predicate on the "dose" field.
func DoseContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldDose, v))
}

// TimeEQ applies the EQ predicate on the "time" field.
func TimeEQ(v Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldTime, v))
}

// TimeNEQ applies the NEQ predicate on the "time" field.
func TimeNEQ(v Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldTime, v))
}

// TimeIn applies the In predicate on the "time" field.
func TimeIn(vs ...Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldTime, vs...))
}

// TimeNotIn applies the NotIn predicate on the "time" field.
func TimeNotIn(vs ...Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldTime, vs...))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldNote, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.NotPredicates(p))
}
