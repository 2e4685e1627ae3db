// Package healthlog stores append-only measurement entries. Entries are never
// edited or deleted; a wrong value is corrected by adding a new entry.
package healthlog

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entlog "github.com/Warinthorn/carelink_backend/internal/repo/healthlog"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

// Measurement type discriminators, wire-visible.
const (
	TypeBP     = "bp"
	TypeSugar  = "sugar"
	TypeWeight = "weight"
	TypeLab    = "lab"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AddRequest struct {
	Type string
	Date string

	Sys *float64
	Dia *float64

	Sugar *float64

	Weight *float64

	HbA1c *float64
	Lipid *float64
	EGFR  *float64
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Add(ctx context.Context, patientID uuid.UUID, req AddRequest) (*repo.HealthLog, error)

	// List returns all entries oldest first.
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.HealthLog, error)

	// Recent returns the newest entries of one type, oldest first, capped at
	// the chart window.
	Recent(ctx context.Context, patientID uuid.UUID, logType string) ([]*repo.HealthLog, error)
}

type healthLogService struct {
	db     *repo.Client
	cfg    *config.Config
	events *events.Publisher
}

func New(db *repo.Client, cfg *config.Config, pub *events.Publisher) Service {
	return &healthLogService{db: db, cfg: cfg, events: pub}
}

func (s *healthLogService) Add(ctx context.Context, patientID uuid.UUID, req AddRequest) (*repo.HealthLog, error) {
	req.Date = strings.TrimSpace(req.Date)
	if req.Date == "" {
		return nil, ErrDateRequired
	}
	if err := validateReadings(req); err != nil {
		return nil, err
	}

	create := s.db.HealthLog.Create().
		SetPatientID(patientID).
		SetType(entlog.Type(req.Type)).
		SetDate(req.Date).
		SetNillableSys(req.Sys).
		SetNillableDia(req.Dia).
		SetNillableSugar(req.Sugar).
		SetNillableWeight(req.Weight).
		SetNillableHba1c(req.HbA1c).
		SetNillableLipid(req.Lipid).
		SetNillableEgfr(req.EGFR)

	l, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create health log: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionHealthLogs, l.ID.String())
	return l, nil
}

func (s *healthLogService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.HealthLog, error) {
	logs, err := s.db.HealthLog.Query().
		Where(entlog.PatientID(patientID)).
		Order(entlog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}
	return logs, nil
}

func (s *healthLogService) Recent(ctx context.Context, patientID uuid.UUID, logType string) ([]*repo.HealthLog, error) {
	if !validType(logType) {
		return nil, ErrInvalidType
	}

	limit := s.cfg.Sync.ChartLimit()

	// Fetch newest first to apply the cap, then flip so charts draw
	// left-to-right in time.
	logs, err := s.db.HealthLog.Query().
		Where(entlog.PatientID(patientID), entlog.TypeEQ(entlog.Type(logType))).
		Order(entlog.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent health logs: %w", err)
	}

	reverse(logs)
	return logs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validType(t string) bool {
	switch t {
	case TypeBP, TypeSugar, TypeWeight, TypeLab:
		return true
	}
	return false
}

// validateReadings checks that the values matching the type discriminator
// are present. Lab entries may carry any subset of panel values but not none.
func validateReadings(req AddRequest) error {
	switch req.Type {
	case TypeBP:
		if req.Sys == nil || req.Dia == nil {
			return ErrMissingReadings
		}
	case TypeSugar:
		if req.Sugar == nil {
			return ErrMissingReadings
		}
	case TypeWeight:
		if req.Weight == nil {
			return ErrMissingReadings
		}
	case TypeLab:
		if req.HbA1c == nil && req.Lipid == nil && req.EGFR == nil {
			return ErrMissingReadings
		}
	default:
		return ErrInvalidType
	}
	return nil
}

func reverse(logs []*repo.HealthLog) {
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
}
