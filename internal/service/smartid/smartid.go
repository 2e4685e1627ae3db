// Package smartid maintains the public lookup index that maps a patient's
// shareable numeric code to their account. Caregivers resolve codes through
// this index without being able to enumerate patients.
package smartid

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entsmart "github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
	"github.com/Warinthorn/carelink_backend/pkg/util/codes"
)

type Service interface {
	// Resolve maps a shareable code to the owning patient's ID.
	Resolve(ctx context.Context, code string) (uuid.UUID, error)

	// Ensure makes the index entry for a patient exist and carry the given
	// code. Idempotent: re-running with the same pair is a no-op.
	Ensure(ctx context.Context, patientID uuid.UUID, code string) error

	// GenerateUnique draws random candidate codes until one is free of the
	// index, giving up after a bounded number of attempts.
	GenerateUnique(ctx context.Context) (string, error)

	// Validate checks shape only (length and digits), no I/O.
	Validate(code string) error
}

type smartIDService struct {
	db     *repo.Client
	cfg    *config.Config
	events *events.Publisher
}

func New(db *repo.Client, cfg *config.Config, pub *events.Publisher) Service {
	return &smartIDService{db: db, cfg: cfg, events: pub}
}

func (s *smartIDService) Validate(code string) error {
	code = codes.NormalizeCode(code)
	if len(code) != s.cfg.SmartID.CodeLength() || !codes.IsNumeric(code) {
		return ErrInvalidCode
	}
	return nil
}

func (s *smartIDService) Resolve(ctx context.Context, code string) (uuid.UUID, error) {
	code = codes.NormalizeCode(code)
	if err := s.Validate(code); err != nil {
		return uuid.Nil, err
	}

	entry, err := s.db.SmartIDEntry.Query().
		Where(entsmart.SmartID(code)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("query smart id: %w", err)
	}
	return entry.PatientID, nil
}

func (s *smartIDService) Ensure(ctx context.Context, patientID uuid.UUID, code string) error {
	code = codes.NormalizeCode(code)

	entry, err := s.db.SmartIDEntry.Query().
		Where(entsmart.PatientID(patientID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("query index entry: %w", err)
	}

	if entry != nil {
		if entry.SmartID == code {
			return nil
		}
		if _, err := s.db.SmartIDEntry.UpdateOne(entry).SetSmartID(code).Save(ctx); err != nil {
			return fmt.Errorf("update index entry: %w", err)
		}
		s.events.SmartIndexChanged(entry.ID.String())
		return nil
	}

	created, err := s.db.SmartIDEntry.Create().
		SetSmartID(code).
		SetPatientID(patientID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create index entry: %w", err)
	}
	s.events.SmartIndexChanged(created.ID.String())
	return nil
}

func (s *smartIDService) GenerateUnique(ctx context.Context) (string, error) {
	length := s.cfg.SmartID.CodeLength()
	attempts := s.cfg.SmartID.Attempts()

	for i := 0; i < attempts; i++ {
		candidate, err := codes.GenerateSmartID(length)
		if err != nil {
			return "", fmt.Errorf("generate candidate: %w", err)
		}
		taken, err := s.db.SmartIDEntry.Query().
			Where(entsmart.SmartID(candidate)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check candidate: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}
