// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPatientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// SmartID applies equality check predicate on the "smart_id" field. It's identical to SmartIDEQ.
func SmartID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSmartID, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAge, v))
}

// BloodType applies equality check predicate on the "blood_type" field. It's identical to BloodTypeEQ.
func BloodType(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldBloodType, v))
}

// CitizenID applies equality check predicate on the "citizen_id" field. It's identical to CitizenIDEQ.
func CitizenID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCitizenID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldPatientID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// SmartIDEQ applies the EQ predicate on the "smart_id" field.
func SmartIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSmartID, v))
}

// SmartIDNEQ applies the NEQ predicate on the "smart_id" field.
func SmartIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSmartID, v))
}

// SmartIDIn applies the In predicate on the "smart_id" field.
func SmartIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSmartID, vs...))
}

// SmartIDNotIn applies the NotIn predicate on the "smart_id" field.
func SmartIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSmartID, vs...))
}

// SmartIDGT applies the GT predicate on the "smart_id" field.
func SmartIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSmartID, v))
}

// SmartIDGTE applies the GTE predicate on the "smart_id" field.
func SmartIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSmartID, v))
}

// SmartIDLT applies the LT predicate on the "smart_id" field.
func SmartIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSmartID, v))
}

// SmartIDLTE applies the LTE predicate on the "smart_id" field.
func SmartIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSmartID, v))
}

// SmartIDContains applies the Contains predicate on the "smart_id" field.
func SmartIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSmartID, v))
}

// SmartIDHasPrefix applies the HasPrefix predicate on the "smart_id" field.
func SmartIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSmartID, v))
}

// SmartIDHasSuffix applies the HasSuffix predicate on the "smart_id" field.
func SmartIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSmartID, v))
}

// SmartIDEqualFold applies the EqualFold predicate on the "smart_id" field.
func SmartIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSmartID, v))
}

// SmartIDContainsFold applies the ContainsFold predicate on the "smart_id" field.
func SmartIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSmartID, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAge, v))
}

// AgeIsNil applies the IsNil predicate on the "age" field.
func AgeIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldAge))
}

// AgeNotNil applies the NotNil predicate on the "age" field.
func AgeNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldAge))
}

// DiseasesIsNil applies the IsNil predicate on the "diseases" field.
func DiseasesIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldDiseases))
}

// DiseasesNotNil applies the NotNil predicate on the "diseases" field.
func DiseasesNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldDiseases))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldAllergies))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldBloodType, vs...))
}

// BloodTypeGT applies the GT predicate on the "blood_type" field.
func BloodTypeGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldBloodType, v))
}

// BloodTypeGTE applies the GTE predicate on the "blood_type" field.
func BloodTypeGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldBloodType, v))
}

// BloodTypeLT applies the LT predicate on the "blood_type" field.
func BloodTypeLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldBloodType, v))
}

// BloodTypeLTE applies the LTE predicate on the "blood_type" field.
func BloodTypeLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldBloodType, v))
}

// BloodTypeContains applies the Contains predicate on the "blood_type" field.
func BloodTypeContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldBloodType, v))
}

// BloodTypeHasPrefix applies the HasPrefix predicate on the "blood_type" field.
func BloodTypeHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldBloodType, v))
}

// BloodTypeHasSuffix applies the HasSuffix predicate on the "blood_type" field.
func BloodTypeHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldBloodType, v))
}

// BloodTypeIsNil applies the IsNil predicate on the "blood_type" field.
func BloodTypeIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldBloodType))
}

// BloodTypeNotNil applies the NotNil predicate on the "blood_type" field.
func BloodTypeNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldBloodType))
}

// BloodTypeEqualFold applies the EqualFold predicate on the "blood_type" field.
func BloodTypeEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldBloodType, v))
}

// BloodTypeContainsFold applies the ContainsFold predicate on the "blood_type" field.
func BloodTypeContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldBloodType, v))
}

// CitizenIDEQ applies the EQ predicate on the "citizen_id" field.
func CitizenIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCitizenID, v))
}

// CitizenIDNEQ applies the NEQ predicate on the "citizen_id" field.
func CitizenIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCitizenID, v))
}

// CitizenIDIn applies the In predicate on the "citizen_id" field.
func CitizenIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCitizenID, vs...))
}

// CitizenIDNotIn applies the NotIn predicate on the "citizen_id" field.
func CitizenIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCitizenID, vs...))
}

// CitizenIDGT applies the GT predicate on the "citizen_id" field.
func CitizenIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCitizenID, v))
}

// CitizenIDGTE applies the GTE predicate on the "citizen_id" field.
func CitizenIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCitizenID, v))
}

// CitizenIDLT applies the LT predicate on the "citizen_id" field.
func CitizenIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCitizenID, v))
}

// CitizenIDLTE applies the LTE predicate on the "citizen_id" field.
func CitizenIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCitizenID, v))
}

// CitizenIDContains applies the Contains predicate on the "citizen_id" field.
func CitizenIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldCitizenID, v))
}

// CitizenIDHasPrefix applies the HasPrefix predicate on the "citizen_id" field.
func CitizenIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldCitizenID, v))
}

// CitizenIDHasSuffix applies the HasSuffix predicate on the "citizen_id" field.
func CitizenIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldCitizenID, v))
}

// CitizenIDIsNil applies the IsNil predicate on the "citizen_id" field.
func CitizenIDIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldCitizenID))
}

// CitizenIDNotNil applies the NotNil predicate on the "citizen_id" field.
func CitizenIDNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldCitizenID))
}

// CitizenIDEqualFold applies the EqualFold predicate on the "citizen_id" field.
func CitizenIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldCitizenID, v))
}

// CitizenIDContainsFold applies the ContainsFold predicate on the "citizen_id" field.
func CitizenIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldCitizenID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
