// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/google/uuid"
)

// HealthLog is the model entity for the HealthLog schema.
type HealthLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id (owner)
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Type holds the value of the "type" field.
	Type healthlog.Type `json:"type,omitempty"`
	// Display date as entered by the patient
	Date string `json:"date,omitempty"`
	// Sys holds the value of the "sys" field.
	Sys *float64 `json:"sys,omitempty"`
	// Dia holds the value of the "dia" field.
	Dia *float64 `json:"dia,omitempty"`
	// Sugar holds the value of the "sugar" field.
	Sugar *float64 `json:"sugar,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight *float64 `json:"weight,omitempty"`
	// Hba1c holds the value of the "hba1c" field.
	Hba1c *float64 `json:"hba1c,omitempty"`
	// Lipid holds the value of the "lipid" field.
	Lipid *float64 `json:"lipid,omitempty"`
	// Egfr holds the value of the "egfr" field.
	Egfr         *float64 `json:"egfr,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthlog.FieldSys, healthlog.FieldDia, healthlog.FieldSugar, healthlog.FieldWeight, healthlog.FieldHba1c, healthlog.FieldLipid, healthlog.FieldEgfr:
			values[i] = new(sql.NullFloat64)
		case healthlog.FieldType, healthlog.FieldDate:
			values[i] = new(sql.NullString)
		case healthlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case healthlog.FieldID, healthlog.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthLog fields.
func (_m *HealthLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case healthlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case healthlog.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case healthlog.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = healthlog.Type(value.String)
			}
		case healthlog.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case healthlog.FieldSys:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sys", values[i])
			} else if value.Valid {
				_m.Sys = new(float64)
				*_m.Sys = value.Float64
			}
		case healthlog.FieldDia:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field dia", values[i])
			} else if value.Valid {
				_m.Dia = new(float64)
				*_m.Dia = value.Float64
			}
		case healthlog.FieldSugar:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sugar", values[i])
			} else if value.Valid {
				_m.Sugar = new(float64)
				*_m.Sugar = value.Float64
			}
		case healthlog.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = new(float64)
				*_m.Weight = value.Float64
			}
		case healthlog.FieldHba1c:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hba1c", values[i])
			} else if value.Valid {
				_m.Hba1c = new(float64)
				*_m.Hba1c = value.Float64
			}
		case healthlog.FieldLipid:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lipid", values[i])
			} else if value.Valid {
				_m.Lipid = new(float64)
				*_m.Lipid = value.Float64
			}
		case healthlog.FieldEgfr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field egfr", values[i])
			} else if value.Valid {
				_m.Egfr = new(float64)
				*_m.Egfr = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HealthLog.
// This includes values selected through modifiers, order, etc.
func (_m *HealthLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HealthLog.
// Note that you need to call HealthLog.Unwrap() before calling this method if this HealthLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthLog) Update() *HealthLogUpdateOne {
	return NewHealthLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthLog) Unwrap() *HealthLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HealthLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthLog) String() string {
	var builder strings.Builder
	builder.WriteString("HealthLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	if v := _m.Sys; v != nil {
		builder.WriteString("sys=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Dia; v != nil {
		builder.WriteString("dia=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sugar; v != nil {
		builder.WriteString("sugar=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Weight; v != nil {
		builder.WriteString("weight=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Hba1c; v != nil {
		builder.WriteString("hba1c=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Lipid; v != nil {
		builder.WriteString("lipid=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Egfr; v != nil {
		builder.WriteString("egfr=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// HealthLogs is a parsable slice of HealthLog.
type HealthLogs []*HealthLog
