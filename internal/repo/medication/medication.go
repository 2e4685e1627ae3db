// Code generated by ent, DO NOT EDIT.

package medication

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the medication type in the database.
	Label = "medication"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDose holds the string denoting the dose field in the database.
	FieldDose = "dose"
	// FieldTime holds the string denoting the time field in the database.
	FieldTime = "time"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// Table holds the table name of the medication in the database.
	Table = "medications"
)

// Columns holds all SQL columns for medication fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldName,
	FieldDose,
	FieldTime,
	FieldNote,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DoseValidator is a validator for the "dose" field. It is called by the builders before save.
	DoseValidator func(string) error
	// NoteValidator is a validator for the "note" field. It is called by the builders before save.
	NoteValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Time defines the type for the "time" enum field.
type Time string

// Time values.
const (
	TimeBeforeBreakfast Time = "before_breakfast"
	TimeAfterBreakfast  Time = "after_breakfast"
	TimeBeforeLunch     Time = "before_lunch"
	TimeAfterLunch      Time = "after_lunch"
	TimeBeforeDinner    Time = "before_dinner"
	TimeAfterDinner     Time = "after_dinner"
	TimeBedtime         Time = "bedtime"
)

func (t Time) String() string {
	return string(t)
}

// TimeValidator is a validator for the "time" field enum values. It is called by the builders before save.
func TimeValidator(t Time) error {
	switch t {
	case TimeBeforeBreakfast, TimeAfterBreakfast, TimeBeforeLunch, TimeAfterLunch, TimeBeforeDinner, TimeAfterDinner, TimeBedtime:
		return nil
	default:
		return fmt.Errorf("medication: invalid enum value for time field: %q", t)
	}
}

// OrderOption defines the ordering options for the Medication queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDose orders the results by the dose field.
func ByDose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDose, opts...).ToFunc()
}

// ByTime orders the results by the time field.
func ByTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTime, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}
