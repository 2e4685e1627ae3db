// Package export assembles a patient's data into a single JSON document the
// patient can hand to a clinic.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/repo"
	"github.com/Warinthorn/carelink_backend/internal/service/adherence"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
)

// Document is the export payload. Field names are part of the wire format.
type Document struct {
	Profile      *profile.View        `json:"profile"`
	Medications  []*repo.Medication   `json:"medications"`
	Appointments []*repo.Appointment  `json:"appointments"`
	HealthLogs   []*repo.HealthLog    `json:"logs"`
	DailyLogs    []*repo.AdherenceLog `json:"dailyLogs"`
	ExportDate   time.Time            `json:"exportDate"`
}

type Service interface {
	Build(ctx context.Context, patientID uuid.UUID) (*Document, error)
}

type exportService struct {
	profiles     profile.Service
	medications  medication.Service
	appointments appointment.Service
	healthLogs   healthlog.Service
	adherence    adherence.Service
}

func New(
	profileSvc profile.Service,
	medicationSvc medication.Service,
	appointmentSvc appointment.Service,
	healthLogSvc healthlog.Service,
	adherenceSvc adherence.Service,
) Service {
	return &exportService{
		profiles:     profileSvc,
		medications:  medicationSvc,
		appointments: appointmentSvc,
		healthLogs:   healthLogSvc,
		adherence:    adherenceSvc,
	}
}

func (s *exportService) Build(ctx context.Context, patientID uuid.UUID) (*Document, error) {
	p, err := s.profiles.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	meds, err := s.medications.List(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("export medications: %w", err)
	}
	appts, err := s.appointments.List(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("export appointments: %w", err)
	}
	logs, err := s.healthLogs.List(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("export health logs: %w", err)
	}
	daily, err := s.adherence.List(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("export daily logs: %w", err)
	}

	if meds == nil {
		meds = []*repo.Medication{}
	}
	if appts == nil {
		appts = []*repo.Appointment{}
	}
	if logs == nil {
		logs = []*repo.HealthLog{}
	}
	if daily == nil {
		daily = []*repo.AdherenceLog{}
	}

	return &Document{
		Profile:      p,
		Medications:  meds,
		Appointments: appts,
		HealthLogs:   logs,
		DailyLogs:    daily,
		ExportDate:   time.Now().UTC(),
	}, nil
}
