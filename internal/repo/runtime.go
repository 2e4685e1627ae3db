// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/Warinthorn/carelink_backend/internal/repo/appointment"
	"github.com/Warinthorn/carelink_backend/internal/repo/familymember"
	"github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/repo/medication"
	"github.com/Warinthorn/carelink_backend/internal/repo/profile"
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/Warinthorn/carelink_backend/internal/repo/user"
	"github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
	"github.com/Warinthorn/carelink_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adherencelogMixin := schema.AdherenceLog{}.Mixin()
	adherencelogMixinFields0 := adherencelogMixin[0].Fields()
	_ = adherencelogMixinFields0
	adherencelogMixinFields1 := adherencelogMixin[1].Fields()
	_ = adherencelogMixinFields1
	adherencelogFields := schema.AdherenceLog{}.Fields()
	_ = adherencelogFields
	// adherencelogDescCreatedAt is the schema descriptor for created_at field.
	adherencelogDescCreatedAt := adherencelogMixinFields1[0].Descriptor()
	// adherencelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	adherencelog.DefaultCreatedAt = adherencelogDescCreatedAt.Default.(func() time.Time)
	// adherencelogDescUpdatedAt is the schema descriptor for updated_at field.
	adherencelogDescUpdatedAt := adherencelogMixinFields1[1].Descriptor()
	// adherencelog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adherencelog.DefaultUpdatedAt = adherencelogDescUpdatedAt.Default.(func() time.Time)
	// adherencelog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adherencelog.UpdateDefaultUpdatedAt = adherencelogDescUpdatedAt.UpdateDefault.(func() time.Time)
	// adherencelogDescDate is the schema descriptor for date field.
	adherencelogDescDate := adherencelogFields[1].Descriptor()
	// adherencelog.DateValidator is a validator for the "date" field. It is called by the builders before save.
	adherencelog.DateValidator = adherencelogDescDate.Validators[0].(func(string) error)
	// adherencelogDescTakenMeds is the schema descriptor for taken_meds field.
	adherencelogDescTakenMeds := adherencelogFields[2].Descriptor()
	// adherencelog.DefaultTakenMeds holds the default value on creation for the taken_meds field.
	adherencelog.DefaultTakenMeds = adherencelogDescTakenMeds.Default.([]string)
	// adherencelogDescTakenCount is the schema descriptor for taken_count field.
	adherencelogDescTakenCount := adherencelogFields[3].Descriptor()
	// adherencelog.DefaultTakenCount holds the default value on creation for the taken_count field.
	adherencelog.DefaultTakenCount = adherencelogDescTakenCount.Default.(int)
	// adherencelog.TakenCountValidator is a validator for the "taken_count" field. It is called by the builders before save.
	adherencelog.TakenCountValidator = adherencelogDescTakenCount.Validators[0].(func(int) error)
	// adherencelogDescID is the schema descriptor for id field.
	adherencelogDescID := adherencelogMixinFields0[0].Descriptor()
	// adherencelog.DefaultID holds the default value on creation for the id field.
	adherencelog.DefaultID = adherencelogDescID.Default.(func() uuid.UUID)
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDate is the schema descriptor for date field.
	appointmentDescDate := appointmentFields[1].Descriptor()
	// appointment.DateValidator is a validator for the "date" field. It is called by the builders before save.
	appointment.DateValidator = appointmentDescDate.Validators[0].(func(string) error)
	// appointmentDescTime is the schema descriptor for time field.
	appointmentDescTime := appointmentFields[2].Descriptor()
	// appointment.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	appointment.TimeValidator = appointmentDescTime.Validators[0].(func(string) error)
	// appointmentDescLocation is the schema descriptor for location field.
	appointmentDescLocation := appointmentFields[3].Descriptor()
	// appointment.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	appointment.LocationValidator = appointmentDescLocation.Validators[0].(func(string) error)
	// appointmentDescDepartment is the schema descriptor for department field.
	appointmentDescDepartment := appointmentFields[4].Descriptor()
	// appointment.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	appointment.DepartmentValidator = appointmentDescDepartment.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	familymemberMixin := schema.FamilyMember{}.Mixin()
	familymemberMixinFields0 := familymemberMixin[0].Fields()
	_ = familymemberMixinFields0
	familymemberMixinFields1 := familymemberMixin[1].Fields()
	_ = familymemberMixinFields1
	familymemberFields := schema.FamilyMember{}.Fields()
	_ = familymemberFields
	// familymemberDescCreatedAt is the schema descriptor for created_at field.
	familymemberDescCreatedAt := familymemberMixinFields1[0].Descriptor()
	// familymember.DefaultCreatedAt holds the default value on creation for the created_at field.
	familymember.DefaultCreatedAt = familymemberDescCreatedAt.Default.(func() time.Time)
	// familymemberDescUpdatedAt is the schema descriptor for updated_at field.
	familymemberDescUpdatedAt := familymemberMixinFields1[1].Descriptor()
	// familymember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	familymember.DefaultUpdatedAt = familymemberDescUpdatedAt.Default.(func() time.Time)
	// familymember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	familymember.UpdateDefaultUpdatedAt = familymemberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// familymemberDescName is the schema descriptor for name field.
	familymemberDescName := familymemberFields[1].Descriptor()
	// familymember.NameValidator is a validator for the "name" field. It is called by the builders before save.
	familymember.NameValidator = func() func(string) error {
		validators := familymemberDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// familymemberDescPhone is the schema descriptor for phone field.
	familymemberDescPhone := familymemberFields[2].Descriptor()
	// familymember.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	familymember.PhoneValidator = familymemberDescPhone.Validators[0].(func(string) error)
	// familymemberDescID is the schema descriptor for id field.
	familymemberDescID := familymemberMixinFields0[0].Descriptor()
	// familymember.DefaultID holds the default value on creation for the id field.
	familymember.DefaultID = familymemberDescID.Default.(func() uuid.UUID)
	healthlogMixin := schema.HealthLog{}.Mixin()
	healthlogMixinFields0 := healthlogMixin[0].Fields()
	_ = healthlogMixinFields0
	healthlogMixinFields1 := healthlogMixin[1].Fields()
	_ = healthlogMixinFields1
	healthlogFields := schema.HealthLog{}.Fields()
	_ = healthlogFields
	// healthlogDescCreatedAt is the schema descriptor for created_at field.
	healthlogDescCreatedAt := healthlogMixinFields1[0].Descriptor()
	// healthlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	healthlog.DefaultCreatedAt = healthlogDescCreatedAt.Default.(func() time.Time)
	// healthlogDescDate is the schema descriptor for date field.
	healthlogDescDate := healthlogFields[2].Descriptor()
	// healthlog.DateValidator is a validator for the "date" field. It is called by the builders before save.
	healthlog.DateValidator = healthlogDescDate.Validators[0].(func(string) error)
	// healthlogDescID is the schema descriptor for id field.
	healthlogDescID := healthlogMixinFields0[0].Descriptor()
	// healthlog.DefaultID holds the default value on creation for the id field.
	healthlog.DefaultID = healthlogDescID.Default.(func() uuid.UUID)
	medicationMixin := schema.Medication{}.Mixin()
	medicationMixinFields0 := medicationMixin[0].Fields()
	_ = medicationMixinFields0
	medicationMixinFields1 := medicationMixin[1].Fields()
	_ = medicationMixinFields1
	medicationFields := schema.Medication{}.Fields()
	_ = medicationFields
	// medicationDescCreatedAt is the schema descriptor for created_at field.
	medicationDescCreatedAt := medicationMixinFields1[0].Descriptor()
	// medication.DefaultCreatedAt holds the default value on creation for the created_at field.
	medication.DefaultCreatedAt = medicationDescCreatedAt.Default.(func() time.Time)
	// medicationDescUpdatedAt is the schema descriptor for updated_at field.
	medicationDescUpdatedAt := medicationMixinFields1[1].Descriptor()
	// medication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medication.DefaultUpdatedAt = medicationDescUpdatedAt.Default.(func() time.Time)
	// medication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medication.UpdateDefaultUpdatedAt = medicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicationDescName is the schema descriptor for name field.
	medicationDescName := medicationFields[1].Descriptor()
	// medication.NameValidator is a validator for the "name" field. It is called by the builders before save.
	medication.NameValidator = func() func(string) error {
		validators := medicationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// medicationDescDose is the schema descriptor for dose field.
	medicationDescDose := medicationFields[2].Descriptor()
	// medication.DoseValidator is a validator for the "dose" field. It is called by the builders before save.
	medication.DoseValidator = medicationDescDose.Validators[0].(func(string) error)
	// medicationDescNote is the schema descriptor for note field.
	medicationDescNote := medicationFields[4].Descriptor()
	// medication.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	medication.NoteValidator = medicationDescNote.Validators[0].(func(string) error)
	// medicationDescID is the schema descriptor for id field.
	medicationDescID := medicationMixinFields0[0].Descriptor()
	// medication.DefaultID holds the default value on creation for the id field.
	medication.DefaultID = medicationDescID.Default.(func() uuid.UUID)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileMixinFields1 := profileMixin[1].Fields()
	_ = profileMixinFields1
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields1[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields1[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescSmartID is the schema descriptor for smart_id field.
	profileDescSmartID := profileFields[2].Descriptor()
	// profile.SmartIDValidator is a validator for the "smart_id" field. It is called by the builders before save.
	profile.SmartIDValidator = profileDescSmartID.Validators[0].(func(string) error)
	// profileDescAge is the schema descriptor for age field.
	profileDescAge := profileFields[3].Descriptor()
	// profile.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	profile.AgeValidator = profileDescAge.Validators[0].(func(int) error)
	// profileDescDiseases is the schema descriptor for diseases field.
	profileDescDiseases := profileFields[4].Descriptor()
	// profile.DefaultDiseases holds the default value on creation for the diseases field.
	profile.DefaultDiseases = profileDescDiseases.Default.([]string)
	// profileDescAllergies is the schema descriptor for allergies field.
	profileDescAllergies := profileFields[5].Descriptor()
	// profile.DefaultAllergies holds the default value on creation for the allergies field.
	profile.DefaultAllergies = profileDescAllergies.Default.([]string)
	// profileDescBloodType is the schema descriptor for blood_type field.
	profileDescBloodType := profileFields[6].Descriptor()
	// profile.BloodTypeValidator is a validator for the "blood_type" field. It is called by the builders before save.
	profile.BloodTypeValidator = profileDescBloodType.Validators[0].(func(string) error)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileMixinFields0[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	smartidentryMixin := schema.SmartIDEntry{}.Mixin()
	smartidentryMixinFields0 := smartidentryMixin[0].Fields()
	_ = smartidentryMixinFields0
	smartidentryMixinFields1 := smartidentryMixin[1].Fields()
	_ = smartidentryMixinFields1
	smartidentryFields := schema.SmartIDEntry{}.Fields()
	_ = smartidentryFields
	// smartidentryDescCreatedAt is the schema descriptor for created_at field.
	smartidentryDescCreatedAt := smartidentryMixinFields1[0].Descriptor()
	// smartidentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	smartidentry.DefaultCreatedAt = smartidentryDescCreatedAt.Default.(func() time.Time)
	// smartidentryDescSmartID is the schema descriptor for smart_id field.
	smartidentryDescSmartID := smartidentryFields[0].Descriptor()
	// smartidentry.SmartIDValidator is a validator for the "smart_id" field. It is called by the builders before save.
	smartidentry.SmartIDValidator = smartidentryDescSmartID.Validators[0].(func(string) error)
	// smartidentryDescID is the schema descriptor for id field.
	smartidentryDescID := smartidentryMixinFields0[0].Descriptor()
	// smartidentry.DefaultID holds the default value on creation for the id field.
	smartidentry.DefaultID = smartidentryDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[4].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	watchrelationshipMixin := schema.WatchRelationship{}.Mixin()
	watchrelationshipMixinFields0 := watchrelationshipMixin[0].Fields()
	_ = watchrelationshipMixinFields0
	watchrelationshipMixinFields1 := watchrelationshipMixin[1].Fields()
	_ = watchrelationshipMixinFields1
	watchrelationshipFields := schema.WatchRelationship{}.Fields()
	_ = watchrelationshipFields
	// watchrelationshipDescCreatedAt is the schema descriptor for created_at field.
	watchrelationshipDescCreatedAt := watchrelationshipMixinFields1[0].Descriptor()
	// watchrelationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	watchrelationship.DefaultCreatedAt = watchrelationshipDescCreatedAt.Default.(func() time.Time)
	// watchrelationshipDescPatientName is the schema descriptor for patient_name field.
	watchrelationshipDescPatientName := watchrelationshipFields[2].Descriptor()
	// watchrelationship.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	watchrelationship.PatientNameValidator = watchrelationshipDescPatientName.Validators[0].(func(string) error)
	// watchrelationshipDescSmartID is the schema descriptor for smart_id field.
	watchrelationshipDescSmartID := watchrelationshipFields[3].Descriptor()
	// watchrelationship.SmartIDValidator is a validator for the "smart_id" field. It is called by the builders before save.
	watchrelationship.SmartIDValidator = watchrelationshipDescSmartID.Validators[0].(func(string) error)
	// watchrelationshipDescID is the schema descriptor for id field.
	watchrelationshipDescID := watchrelationshipMixinFields0[0].Descriptor()
	// watchrelationship.DefaultID holds the default value on creation for the id field.
	watchrelationship.DefaultID = watchrelationshipDescID.Default.(func() uuid.UUID)
}
