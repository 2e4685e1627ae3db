// Code generated by ent, DO NOT EDIT.

package healthlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the healthlog type in the database.
	Label = "health_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldSys holds the string denoting the sys field in the database.
	FieldSys = "sys"
	// FieldDia holds the string denoting the dia field in the database.
	FieldDia = "dia"
	// FieldSugar holds the string denoting the sugar field in the database.
	FieldSugar = "sugar"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldHba1c holds the string denoting the hba1c field in the database.
	FieldHba1c = "hba1c"
	// FieldLipid holds the string denoting the lipid field in the database.
	FieldLipid = "lipid"
	// FieldEgfr holds the string denoting the egfr field in the database.
	FieldEgfr = "egfr"
	// Table holds the table name of the healthlog in the database.
	Table = "health_logs"
)

// Columns holds all SQL columns for healthlog fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldType,
	FieldDate,
	FieldSys,
	FieldDia,
	FieldSugar,
	FieldWeight,
	FieldHba1c,
	FieldLipid,
	FieldEgfr,
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
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeBp     Type = "bp"
	TypeSugar  Type = "sugar"
	TypeWeight Type = "weight"
	TypeLab    Type = "lab"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeBp, TypeSugar, TypeWeight, TypeLab:
		return nil
	default:
		return fmt.Errorf("healthlog: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the HealthLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// BySys orders the results by the sys field.
func BySys(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSys, opts...).ToFunc()
}

// ByDia orders the results by the dia field.
func ByDia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDia, opts...).ToFunc()
}

// BySugar orders the results by the sugar field.
func BySugar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSugar, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByHba1c orders the results by the hba1c field.
func ByHba1c(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHba1c, opts...).ToFunc()
}

// ByLipid orders the results by the lipid field.
func ByLipid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLipid, opts...).ToFunc()
}

// ByEgfr orders the results by the egfr field.
func ByEgfr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEgfr, opts...).ToFunc()
}
