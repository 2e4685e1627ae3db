// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdherenceLogsColumns holds the columns for the "adherence_logs" table.
	AdherenceLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "taken_meds", Type: field.TypeJSON},
		{Name: "taken_count", Type: field.TypeInt, Default: 0},
	}
	// AdherenceLogsTable holds the schema information for the "adherence_logs" table.
	AdherenceLogsTable = &schema.Table{
		Name:       "adherence_logs",
		Columns:    AdherenceLogsColumns,
		PrimaryKey: []*schema.Column{AdherenceLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adherencelog_patient_id_date",
				Unique:  true,
				Columns: []*schema.Column{AdherenceLogsColumns[3], AdherenceLogsColumns[4]},
			},
		},
	}
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "time", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 100},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4]},
			},
		},
	}
	// FamilyMembersColumns holds the columns for the "family_members" table.
	FamilyMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "relation", Type: field.TypeEnum, Enums: []string{"child", "grandchild", "caregiver"}},
	}
	// FamilyMembersTable holds the schema information for the "family_members" table.
	FamilyMembersTable = &schema.Table{
		Name:       "family_members",
		Columns:    FamilyMembersColumns,
		PrimaryKey: []*schema.Column{FamilyMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "familymember_patient_id",
				Unique:  false,
				Columns: []*schema.Column{FamilyMembersColumns[3]},
			},
		},
	}
	// HealthLogsColumns holds the columns for the "health_logs" table.
	HealthLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"bp", "sugar", "weight", "lab"}},
		{Name: "date", Type: field.TypeString, Size: 20},
		{Name: "sys", Type: field.TypeFloat64, Nullable: true},
		{Name: "dia", Type: field.TypeFloat64, Nullable: true},
		{Name: "sugar", Type: field.TypeFloat64, Nullable: true},
		{Name: "weight", Type: field.TypeFloat64, Nullable: true},
		{Name: "hba1c", Type: field.TypeFloat64, Nullable: true},
		{Name: "lipid", Type: field.TypeFloat64, Nullable: true},
		{Name: "egfr", Type: field.TypeFloat64, Nullable: true},
	}
	// HealthLogsTable holds the schema information for the "health_logs" table.
	HealthLogsTable = &schema.Table{
		Name:       "health_logs",
		Columns:    HealthLogsColumns,
		PrimaryKey: []*schema.Column{HealthLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "healthlog_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HealthLogsColumns[2], HealthLogsColumns[1]},
			},
		},
	}
	// MedicationsColumns holds the columns for the "medications" table.
	MedicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "dose", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "time", Type: field.TypeEnum, Enums: []string{"before_breakfast", "after_breakfast", "before_lunch", "after_lunch", "before_dinner", "after_dinner", "bedtime"}},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// MedicationsTable holds the schema information for the "medications" table.
	MedicationsTable = &schema.Table{
		Name:       "medications",
		Columns:    MedicationsColumns,
		PrimaryKey: []*schema.Column{MedicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medication_patient_id",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[3]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "smart_id", Type: field.TypeString, Size: 12},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "diseases", Type: field.TypeJSON, Nullable: true},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "blood_type", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "citizen_id", Type: field.TypeString, Nullable: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_smart_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[5]},
			},
		},
	}
	// SmartIDEntriesColumns holds the columns for the "smart_id_entries" table.
	SmartIDEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "smart_id", Type: field.TypeString, Unique: true, Size: 12},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
	}
	// SmartIDEntriesTable holds the schema information for the "smart_id_entries" table.
	SmartIDEntriesTable = &schema.Table{
		Name:       "smart_id_entries",
		Columns:    SmartIDEntriesColumns,
		PrimaryKey: []*schema.Column{SmartIDEntriesColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "role", Type: field.TypeEnum, Nullable: true, Enums: []string{"patient", "caregiver"}},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WatchRelationshipsColumns holds the columns for the "watch_relationships" table.
	WatchRelationshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "caregiver_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "patient_name", Type: field.TypeString, Size: 100},
		{Name: "smart_id", Type: field.TypeString, Size: 12},
	}
	// WatchRelationshipsTable holds the schema information for the "watch_relationships" table.
	WatchRelationshipsTable = &schema.Table{
		Name:       "watch_relationships",
		Columns:    WatchRelationshipsColumns,
		PrimaryKey: []*schema.Column{WatchRelationshipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "watchrelationship_caregiver_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{WatchRelationshipsColumns[2], WatchRelationshipsColumns[3]},
			},
			{
				Name:    "watchrelationship_patient_id",
				Unique:  false,
				Columns: []*schema.Column{WatchRelationshipsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdherenceLogsTable,
		AppointmentsTable,
		FamilyMembersTable,
		HealthLogsTable,
		MedicationsTable,
		ProfilesTable,
		SmartIDEntriesTable,
		UsersTable,
		WatchRelationshipsTable,
	}
)

func init() {
}
