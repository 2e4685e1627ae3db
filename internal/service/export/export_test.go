package export

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/repo"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
)

// Stub services returning fixed data.

type stubProfiles struct {
	view *profile.View
	err  error
}

func (s stubProfiles) Get(context.Context, uuid.UUID) (*profile.View, error) {
	return s.view, s.err
}
func (s stubProfiles) Update(context.Context, uuid.UUID, profile.UpdateRequest) (*profile.View, error) {
	return nil, nil
}

type stubMedications struct{ items []*repo.Medication }

func (s stubMedications) List(context.Context, uuid.UUID) ([]*repo.Medication, error) {
	return s.items, nil
}
func (s stubMedications) Create(context.Context, uuid.UUID, medication.CreateRequest) (*repo.Medication, error) {
	return nil, nil
}
func (s stubMedications) Update(context.Context, uuid.UUID, uuid.UUID, medication.UpdateRequest) (*repo.Medication, error) {
	return nil, nil
}
func (s stubMedications) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubAdherence struct{ items []*repo.AdherenceLog }

func (s stubAdherence) Toggle(context.Context, uuid.UUID, string, string) (*repo.AdherenceLog, error) {
	return nil, nil
}
func (s stubAdherence) Get(context.Context, uuid.UUID, string) (*repo.AdherenceLog, error) {
	return nil, nil
}
func (s stubAdherence) List(context.Context, uuid.UUID) ([]*repo.AdherenceLog, error) {
	return s.items, nil
}

type stubHealthLogs struct{ items []*repo.HealthLog }

func (s stubHealthLogs) Add(context.Context, uuid.UUID, healthlog.AddRequest) (*repo.HealthLog, error) {
	return nil, nil
}
func (s stubHealthLogs) List(context.Context, uuid.UUID) ([]*repo.HealthLog, error) {
	return s.items, nil
}
func (s stubHealthLogs) Recent(context.Context, uuid.UUID, string) ([]*repo.HealthLog, error) {
	return nil, nil
}

type stubAppointments struct{ items []*repo.Appointment }

func (s stubAppointments) List(context.Context, uuid.UUID) ([]*repo.Appointment, error) {
	return s.items, nil
}
func (s stubAppointments) Create(context.Context, uuid.UUID, appointment.CreateRequest) (*repo.Appointment, error) {
	return nil, nil
}
func (s stubAppointments) Update(context.Context, uuid.UUID, uuid.UUID, appointment.UpdateRequest) (*repo.Appointment, error) {
	return nil, nil
}
func (s stubAppointments) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func TestBuildAssemblesDocument(t *testing.T) {
	svc := New(
		stubProfiles{view: &profile.View{Name: "สมศรี"}},
		stubMedications{items: []*repo.Medication{{Name: "Metformin"}, {Name: "Aspirin"}}},
		stubAppointments{items: []*repo.Appointment{{Location: "รพ.ศิริราช"}}},
		stubHealthLogs{items: []*repo.HealthLog{{Type: "bp"}, {Type: "bp"}, {Type: "sugar"}}},
		stubAdherence{},
	)

	before := time.Now().UTC()
	doc, err := svc.Build(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if doc.Profile == nil || doc.Profile.Name != "สมศรี" {
		t.Errorf("Profile = %+v, want name สมศรี", doc.Profile)
	}
	if len(doc.Medications) != 2 {
		t.Errorf("len(Medications) = %d, want 2", len(doc.Medications))
	}
	if len(doc.Appointments) != 1 {
		t.Errorf("len(Appointments) = %d, want 1", len(doc.Appointments))
	}
	if len(doc.HealthLogs) != 3 {
		t.Errorf("len(HealthLogs) = %d, want 3", len(doc.HealthLogs))
	}
	if doc.DailyLogs == nil || len(doc.DailyLogs) != 0 {
		t.Errorf("DailyLogs = %v, want empty non-nil slice", doc.DailyLogs)
	}
	if doc.ExportDate.Before(before) || doc.ExportDate.After(time.Now().UTC()) {
		t.Errorf("ExportDate = %v, outside build window", doc.ExportDate)
	}
}

func TestBuildExportDateIsParseable(t *testing.T) {
	svc := New(
		stubProfiles{view: &profile.View{}},
		stubMedications{}, stubAppointments{}, stubHealthLogs{}, stubAdherence{},
	)

	doc, err := svc.Build(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var wire struct {
		ExportDate string `json:"exportDate"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, err := time.Parse(time.RFC3339Nano, wire.ExportDate); err != nil {
		t.Errorf("exportDate %q is not RFC 3339: %v", wire.ExportDate, err)
	}
}

func TestBuildPropagatesProfileError(t *testing.T) {
	boom := errors.New("profile backend down")
	svc := New(
		stubProfiles{err: boom},
		stubMedications{}, stubAppointments{}, stubHealthLogs{}, stubAdherence{},
	)

	if _, err := svc.Build(context.Background(), uuid.New()); !errors.Is(err, boom) {
		t.Errorf("Build() error = %v, want wrapped %v", err, boom)
	}
}
