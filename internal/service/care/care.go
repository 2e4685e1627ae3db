// Package care manages caregiver-to-patient links. A caregiver enters a
// patient's shareable code; a successful link grants read-only access to
// that patient's records until the caregiver unlinks.
package care

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entprofile "github.com/Warinthorn/carelink_backend/internal/repo/profile"
	entwatch "github.com/Warinthorn/carelink_backend/internal/repo/watchrelationship"
	"github.com/Warinthorn/carelink_backend/internal/service/smartid"
	"github.com/Warinthorn/carelink_backend/pkg/authorize"
)

// fallbackPatientName labels a watched patient whose profile has no name
// yet ("patient" in Thai, matching the client UI).
const fallbackPatientName = "ผู้ป่วย"

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Link resolves a shareable code and adds the patient to the
	// caregiver's watch list. Linking the same patient twice refreshes the
	// stored name instead of failing.
	Link(ctx context.Context, caregiverID uuid.UUID, code string) (*repo.WatchRelationship, error)

	ListWatched(ctx context.Context, caregiverID uuid.UUID) ([]*repo.WatchRelationship, error)

	// Unlink removes the patient from the watch list and revokes the
	// read grant.
	Unlink(ctx context.Context, caregiverID, patientID uuid.UUID) error
}

type careService struct {
	db        *repo.Client
	smartID   smartid.Service
	authorize authorize.IAuthorization
	events    *events.Publisher
}

func New(db *repo.Client, smartIDSvc smartid.Service, authz authorize.IAuthorization, pub *events.Publisher) Service {
	return &careService{
		db:        db,
		smartID:   smartIDSvc,
		authorize: authz,
		events:    pub,
	}
}

func (s *careService) Link(ctx context.Context, caregiverID uuid.UUID, code string) (*repo.WatchRelationship, error) {
	if err := s.smartID.Validate(code); err != nil {
		return nil, err
	}

	patientID, err := s.smartID.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}
	if patientID == caregiverID {
		return nil, ErrCannotWatchSelf
	}

	patientName := s.lookupPatientName(ctx, patientID)

	w, err := s.db.WatchRelationship.Query().
		Where(entwatch.CaregiverID(caregiverID), entwatch.PatientID(patientID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("query watch relationship: %w", err)
	}

	if w != nil {
		w, err = s.db.WatchRelationship.UpdateOne(w).
			SetPatientName(patientName).
			SetSmartID(code).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("refresh watch relationship: %w", err)
		}
	} else {
		w, err = s.db.WatchRelationship.Create().
			SetCaregiverID(caregiverID).
			SetPatientID(patientID).
			SetPatientName(patientName).
			SetSmartID(code).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create watch relationship: %w", err)
		}
	}

	// Viewer grant lives in the patient's domain so the caregiver can read
	// (and only read) that patient's collections.
	if err := authorize.AssignCaregiverViewerRole(ctx, s.authorize, caregiverID.String(), patientID.String()); err != nil {
		return nil, fmt.Errorf("assign viewer role: %w", err)
	}

	s.events.UserDocChanged(caregiverID.String())

	return w, nil
}

func (s *careService) ListWatched(ctx context.Context, caregiverID uuid.UUID) ([]*repo.WatchRelationship, error) {
	watched, err := s.db.WatchRelationship.Query().
		Where(entwatch.CaregiverID(caregiverID)).
		Order(entwatch.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list watched patients: %w", err)
	}
	return watched, nil
}

func (s *careService) Unlink(ctx context.Context, caregiverID, patientID uuid.UUID) error {
	n, err := s.db.WatchRelationship.Delete().
		Where(entwatch.CaregiverID(caregiverID), entwatch.PatientID(patientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete watch relationship: %w", err)
	}
	if n == 0 {
		return ErrNotLinked
	}

	if err := authorize.RemoveCaregiverViewerRole(ctx, s.authorize, caregiverID.String(), patientID.String()); err != nil {
		return fmt.Errorf("revoke viewer role: %w", err)
	}

	s.events.UserDocChanged(caregiverID.String())

	return nil
}

func (s *careService) lookupPatientName(ctx context.Context, patientID uuid.UUID) string {
	p, err := s.db.Profile.Query().
		Where(entprofile.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		return patientDisplayName("")
	}
	return patientDisplayName(p.Name)
}

// patientDisplayName is the name stored on the watch relationship: the
// profile name when the patient has set one, the placeholder otherwise.
func patientDisplayName(profileName string) string {
	if profileName == "" {
		return fallbackPatientName
	}
	return profileName
}
