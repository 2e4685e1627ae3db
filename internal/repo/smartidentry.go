// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/google/uuid"
)

// SmartIDEntry is the model entity for the SmartIDEntry schema.
type SmartIDEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SmartID holds the value of the "smart_id" field.
	SmartID string `json:"smart_id,omitempty"`
	// FK → users.id
	PatientID    uuid.UUID `json:"patient_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SmartIDEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case smartidentry.FieldSmartID:
			values[i] = new(sql.NullString)
		case smartidentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case smartidentry.FieldID, smartidentry.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SmartIDEntry fields.
func (_m *SmartIDEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case smartidentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case smartidentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case smartidentry.FieldSmartID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field smart_id", values[i])
			} else if value.Valid {
				_m.SmartID = value.String
			}
		case smartidentry.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SmartIDEntry.
// This includes values selected through modifiers, order, etc.
func (_m *SmartIDEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SmartIDEntry.
// Note that you need to call SmartIDEntry.Unwrap() before calling this method if this SmartIDEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SmartIDEntry) Update() *SmartIDEntryUpdateOne {
	return NewSmartIDEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SmartIDEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SmartIDEntry) Unwrap() *SmartIDEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SmartIDEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SmartIDEntry) String() string {
	var builder strings.Builder
	builder.WriteString("SmartIDEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("smart_id=")
	builder.WriteString(_m.SmartID)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteByte(')')
	return builder.String()
}

// SmartIDEntries is a parsable slice of SmartIDEntry.
type SmartIDEntries []*SmartIDEntry
