// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/google/uuid"
)

// AdherenceLog is the model entity for the AdherenceLog schema.
type AdherenceLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (owner)
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Calendar day, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// TakenMeds holds the value of the "taken_meds" field.
	TakenMeds []string `json:"taken_meds,omitempty"`
	// TakenCount holds the value of the "taken_count" field.
	TakenCount   int `json:"taken_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdherenceLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adherencelog.FieldTakenMeds:
			values[i] = new([]byte)
		case adherencelog.FieldTakenCount:
			values[i] = new(sql.NullInt64)
		case adherencelog.FieldDate:
			values[i] = new(sql.NullString)
		case adherencelog.FieldCreatedAt, adherencelog.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case adherencelog.FieldID, adherencelog.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdherenceLog fields.
func (_m *AdherenceLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adherencelog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case adherencelog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case adherencelog.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case adherencelog.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case adherencelog.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case adherencelog.FieldTakenMeds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field taken_meds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TakenMeds); err != nil {
					return fmt.Errorf("unmarshal field taken_meds: %w", err)
				}
			}
		case adherencelog.FieldTakenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field taken_count", values[i])
			} else if value.Valid {
				_m.TakenCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdherenceLog.
// This includes values selected through modifiers, order, etc.
func (_m *AdherenceLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdherenceLog.
// Note that you need to call AdherenceLog.Unwrap() before calling this method if this AdherenceLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdherenceLog) Update() *AdherenceLogUpdateOne {
	return NewAdherenceLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdherenceLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdherenceLog) Unwrap() *AdherenceLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AdherenceLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdherenceLog) String() string {
	var builder strings.Builder
	builder.WriteString("AdherenceLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("taken_meds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TakenMeds))
	builder.WriteString(", ")
	builder.WriteString("taken_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TakenCount))
	builder.WriteByte(')')
	return builder.String()
}

// AdherenceLogs is a parsable slice of AdherenceLog.
type AdherenceLogs []*AdherenceLog
