package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entprofile "github.com/Warinthorn/carelink_backend/internal/repo/profile"
	entuser "github.com/Warinthorn/carelink_backend/internal/repo/user"
	"github.com/Warinthorn/carelink_backend/internal/service/smartid"
	"github.com/Warinthorn/carelink_backend/pkg/crypto"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type View struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patientId"`
	Name      string    `json:"name"`
	SmartID   string    `json:"smartId"`
	Age       *int      `json:"age,omitempty"`
	Diseases  []string  `json:"diseases"`
	Allergies []string  `json:"allergies"`
	BloodType string    `json:"bloodType,omitempty"`
	CitizenID string    `json:"citizenId,omitempty"`
}

type UpdateRequest struct {
	Name      *string
	Age       *int
	Diseases  *[]string
	Allergies *[]string
	BloodType *string
	CitizenID *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Get returns the patient's profile, creating it on first read. A read
	// also repairs the public code index if the entry went missing, so a
	// profile and its index never stay out of sync for more than one read.
	Get(ctx context.Context, patientID uuid.UUID) (*View, error)

	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*View, error)
}

type profileService struct {
	db      *repo.Client
	cfg     *config.Config
	smartID smartid.Service
	events  *events.Publisher
	encKey  []byte
}

func New(db *repo.Client, cfg *config.Config, smartIDSvc smartid.Service, pub *events.Publisher) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("profile service: invalid encryption key: %w", err)
	}
	return &profileService{
		db:      db,
		cfg:     cfg,
		smartID: smartIDSvc,
		events:  pub,
		encKey:  encKey,
	}, nil
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func (s *profileService) Get(ctx context.Context, patientID uuid.UUID) (*View, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return s.bootstrap(ctx, patientID)
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	// Repair the public index on read; a missing entry would leave the
	// patient unreachable by code.
	if err := s.smartID.Ensure(ctx, patientID, p.SmartID); err != nil {
		slog.Warn("smart id index repair failed", "patient_id", patientID, "error", err)
	}

	return s.toView(p), nil
}

// bootstrap creates the initial profile for a patient on first read.
func (s *profileService) bootstrap(ctx context.Context, patientID uuid.UUID) (*View, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(patientID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	code, err := s.smartID.GenerateUnique(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate smart id: %w", err)
	}

	create := s.db.Profile.Create().
		SetPatientID(patientID).
		SetSmartID(code)
	if u.Name != nil {
		create = create.SetName(*u.Name)
	}

	p, err := create.Save(ctx)
	if err != nil {
		// Lost a race with a concurrent first read; the winner's row is fine.
		if repo.IsConstraintError(err) {
			existing, qerr := s.db.Profile.Query().
				Where(entprofile.PatientID(patientID)).
				Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("query profile after race: %w", qerr)
			}
			return s.toView(existing), nil
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if err := s.smartID.Ensure(ctx, patientID, code); err != nil {
		slog.Warn("smart id index write failed at bootstrap", "patient_id", patientID, "error", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionProfile, p.ID.String())

	return s.toView(p), nil
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (s *profileService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*View, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	upd := s.db.Profile.UpdateOne(p)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) > 100 {
			return nil, ErrInvalidName
		}
		upd = upd.SetName(name)
	}
	if req.Age != nil {
		if *req.Age < 0 || *req.Age > 150 {
			return nil, ErrInvalidAge
		}
		upd = upd.SetAge(*req.Age)
	}
	if req.Diseases != nil {
		upd = upd.SetDiseases(*req.Diseases)
	}
	if req.Allergies != nil {
		upd = upd.SetAllergies(*req.Allergies)
	}
	if req.BloodType != nil {
		upd = upd.SetBloodType(strings.TrimSpace(*req.BloodType))
	}
	if req.CitizenID != nil {
		enc, err := crypto.Encrypt(s.encKey, strings.TrimSpace(*req.CitizenID))
		if err != nil {
			return nil, fmt.Errorf("encrypt citizen id: %w", err)
		}
		upd = upd.SetCitizenID(enc)
	}

	p, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionProfile, p.ID.String())

	return s.toView(p), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *profileService) toView(p *repo.Profile) *View {
	v := &View{
		ID:        p.ID,
		PatientID: p.PatientID,
		Name:      p.Name,
		SmartID:   p.SmartID,
		Age:       p.Age,
		Diseases:  p.Diseases,
		Allergies: p.Allergies,
		BloodType: p.BloodType,
	}
	if v.Diseases == nil {
		v.Diseases = []string{}
	}
	if v.Allergies == nil {
		v.Allergies = []string{}
	}
	if p.CitizenID != "" {
		plain, err := crypto.Decrypt(s.encKey, p.CitizenID)
		if err != nil {
			slog.Warn("citizen id decrypt failed", "profile_id", p.ID, "error", err)
		} else {
			v.CitizenID = plain
		}
	}
	return v
}
