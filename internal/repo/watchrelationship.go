// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
	"github.com/google/uuid"
)

// WatchRelationship is the model entity for the WatchRelationship schema.
type WatchRelationship struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id
	CaregiverID uuid.UUID `json:"caregiver_id,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Denormalized at link time
	PatientName string `json:"patient_name,omitempty"`
	// Code the caregiver linked with
	SmartID      string `json:"smart_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WatchRelationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case watchrelationship.FieldPatientName, watchrelationship.FieldSmartID:
			values[i] = new(sql.NullString)
		case watchrelationship.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case watchrelationship.FieldID, watchrelationship.FieldCaregiverID, watchrelationship.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WatchRelationship fields.
func (_m *WatchRelationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case watchrelationship.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case watchrelationship.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case watchrelationship.FieldCaregiverID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field caregiver_id", values[i])
			} else if value != nil {
				_m.CaregiverID = *value
			}
		case watchrelationship.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case watchrelationship.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case watchrelationship.FieldSmartID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field smart_id", values[i])
			} else if value.Valid {
				_m.SmartID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WatchRelationship.
// This includes values selected through modifiers, order, etc.
func (_m *WatchRelationship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WatchRelationship.
// Note that you need to call WatchRelationship.Unwrap() before calling this method if this WatchRelationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WatchRelationship) Update() *WatchRelationshipUpdateOne {
	return NewWatchRelationshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WatchRelationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WatchRelationship) Unwrap() *WatchRelationship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WatchRelationship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WatchRelationship) String() string {
	var builder strings.Builder
	builder.WriteString("WatchRelationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("caregiver_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaregiverID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("smart_id=")
	builder.WriteString(_m.SmartID)
	builder.WriteByte(')')
	return builder.String()
}

// WatchRelationships is a parsable slice of WatchRelationship.
type WatchRelationships []*WatchRelationship
