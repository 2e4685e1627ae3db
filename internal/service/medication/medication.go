package medication

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entmed "github.com/Warinthorn/carelink_backend/internal/repo/medication"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

// Meal-relative dose slots, wire-visible.
const (
	TimeBeforeBreakfast = "before_breakfast"
	TimeAfterBreakfast  = "after_breakfast"
	TimeBeforeLunch     = "before_lunch"
	TimeAfterLunch      = "after_lunch"
	TimeBeforeDinner    = "before_dinner"
	TimeAfterDinner     = "after_dinner"
	TimeBedtime         = "bedtime"
)

var validTimes = map[string]bool{
	TimeBeforeBreakfast: true,
	TimeAfterBreakfast:  true,
	TimeBeforeLunch:     true,
	TimeAfterLunch:      true,
	TimeBeforeDinner:    true,
	TimeAfterDinner:     true,
	TimeBedtime:         true,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name string
	Dose string
	Time string
	Note string
}

type UpdateRequest struct {
	Name *string
	Dose *string
	Time *string
	Note *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.Medication, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Medication, error)
	Update(ctx context.Context, patientID, medID uuid.UUID, req UpdateRequest) (*repo.Medication, error)
	Delete(ctx context.Context, patientID, medID uuid.UUID) error
}

type medicationService struct {
	db     *repo.Client
	events *events.Publisher
}

func New(db *repo.Client, pub *events.Publisher) Service {
	return &medicationService{db: db, events: pub}
}

func (s *medicationService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.Medication, error) {
	meds, err := s.db.Medication.Query().
		Where(entmed.PatientID(patientID)).
		Order(entmed.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return meds, nil
}

func (s *medicationService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Medication, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameMissing
	}
	if !validTimes[req.Time] {
		return nil, ErrInvalidTime
	}

	m, err := s.db.Medication.Create().
		SetPatientID(patientID).
		SetName(req.Name).
		SetDose(strings.TrimSpace(req.Dose)).
		SetTime(entmed.Time(req.Time)).
		SetNote(strings.TrimSpace(req.Note)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionMedications, m.ID.String())
	return m, nil
}

func (s *medicationService) Update(ctx context.Context, patientID, medID uuid.UUID, req UpdateRequest) (*repo.Medication, error) {
	m, err := s.get(ctx, patientID, medID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Medication.UpdateOne(m)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameMissing
		}
		upd = upd.SetName(name)
	}
	if req.Time != nil {
		if !validTimes[*req.Time] {
			return nil, ErrInvalidTime
		}
		upd = upd.SetTime(entmed.Time(*req.Time))
	}
	if req.Dose != nil {
		upd = upd.SetDose(strings.TrimSpace(*req.Dose))
	}
	if req.Note != nil {
		upd = upd.SetNote(strings.TrimSpace(*req.Note))
	}

	m, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update medication: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionMedications, m.ID.String())
	return m, nil
}

func (s *medicationService) Delete(ctx context.Context, patientID, medID uuid.UUID) error {
	m, err := s.get(ctx, patientID, medID)
	if err != nil {
		return err
	}

	if err := s.db.Medication.DeleteOne(m).Exec(ctx); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionMedications, medID.String())
	return nil
}

func (s *medicationService) get(ctx context.Context, patientID, medID uuid.UUID) (*repo.Medication, error) {
	m, err := s.db.Medication.Query().
		Where(entmed.ID(medID), entmed.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query medication: %w", err)
	}
	return m, nil
}
