// Code generated by ent, DO NOT EDIT.

package watchrelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the watchrelationship type in the database.
	Label = "watch_relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCaregiverID holds the string denoting the caregiver_id field in the database.
	FieldCaregiverID = "caregiver_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldSmartID holds the string denoting the smart_id field in the database.
	FieldSmartID = "smart_id"
	// Table holds the table name of the watchrelationship in the database.
	Table = "watch_relationships"
)

// Columns holds all SQL columns for watchrelationship fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldCaregiverID,
	FieldPatientID,
	FieldPatientName,
	FieldSmartID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// SmartIDValidator is a validator for the "smart_id" field. It is called by the builders before save.
	SmartIDValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WatchRelationship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCaregiverID orders the results by the caregiver_id field.
func ByCaregiverID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaregiverID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// BySmartID orders the results by the smart_id field.
func BySmartID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSmartID, opts...).ToFunc()
}
