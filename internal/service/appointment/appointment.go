package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entappt "github.com/Warinthorn/carelink_backend/internal/repo/appointment"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Date       string
	Time       string
	Location   string
	Department string
}

type UpdateRequest struct {
	Date       *string
	Time       *string
	Location   *string
	Department *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// List returns appointments soonest first.
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.Appointment, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Appointment, error)
	Update(ctx context.Context, patientID, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error)
	Delete(ctx context.Context, patientID, apptID uuid.UUID) error
}

type appointmentService struct {
	db     *repo.Client
	events *events.Publisher
}

func New(db *repo.Client, pub *events.Publisher) Service {
	return &appointmentService{db: db, events: pub}
}

func (s *appointmentService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID)).
		Order(entappt.ByDate(), entappt.ByTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Appointment, error) {
	req.Date = strings.TrimSpace(req.Date)
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	req.Time = strings.TrimSpace(req.Time)
	if req.Time != "" {
		if _, err := time.Parse(timeLayout, req.Time); err != nil {
			return nil, ErrInvalidTime
		}
	}

	a, err := s.db.Appointment.Create().
		SetPatientID(patientID).
		SetDate(req.Date).
		SetTime(req.Time).
		SetLocation(strings.TrimSpace(req.Location)).
		SetDepartment(strings.TrimSpace(req.Department)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionAppointments, a.ID.String())
	return a, nil
}

func (s *appointmentService) Update(ctx context.Context, patientID, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	a, err := s.get(ctx, patientID, apptID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Appointment.UpdateOne(a)
	if req.Date != nil {
		d := strings.TrimSpace(*req.Date)
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, ErrInvalidDate
		}
		upd = upd.SetDate(d)
	}
	if req.Time != nil {
		tm := strings.TrimSpace(*req.Time)
		if tm != "" {
			if _, err := time.Parse(timeLayout, tm); err != nil {
				return nil, ErrInvalidTime
			}
		}
		upd = upd.SetTime(tm)
	}
	if req.Location != nil {
		upd = upd.SetLocation(strings.TrimSpace(*req.Location))
	}
	if req.Department != nil {
		upd = upd.SetDepartment(strings.TrimSpace(*req.Department))
	}

	a, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionAppointments, a.ID.String())
	return a, nil
}

func (s *appointmentService) Delete(ctx context.Context, patientID, apptID uuid.UUID) error {
	a, err := s.get(ctx, patientID, apptID)
	if err != nil {
		return err
	}

	if err := s.db.Appointment.DeleteOne(a).Exec(ctx); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionAppointments, apptID.String())
	return nil
}

func (s *appointmentService) get(ctx context.Context, patientID, apptID uuid.UUID) (*repo.Appointment, error) {
	a, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query appointment: %w", err)
	}
	return a, nil
}
