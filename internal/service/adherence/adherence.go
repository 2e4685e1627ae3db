// Package adherence tracks which medications a patient marked taken on each
// calendar day. One row per patient-day; marking is a toggle so a stray tap
// can be undone by tapping again.
package adherence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entlog "github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

const dateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Toggle flips one medication's taken mark for the given day, creating
	// the day's log on first use. taken_count always equals len(taken_meds)
	// after the write.
	Toggle(ctx context.Context, patientID uuid.UUID, date, medID string) (*repo.AdherenceLog, error)

	// Get returns the log for one day, or an empty view when none exists.
	Get(ctx context.Context, patientID uuid.UUID, date string) (*repo.AdherenceLog, error)

	List(ctx context.Context, patientID uuid.UUID) ([]*repo.AdherenceLog, error)
}

type adherenceService struct {
	db     *repo.Client
	events *events.Publisher
}

func New(db *repo.Client, pub *events.Publisher) Service {
	return &adherenceService{db: db, events: pub}
}

func (s *adherenceService) Toggle(ctx context.Context, patientID uuid.UUID, date, medID string) (*repo.AdherenceLog, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	medID = strings.TrimSpace(medID)
	if medID == "" {
		return nil, ErrMedRequired
	}

	l, err := s.db.AdherenceLog.Query().
		Where(entlog.PatientID(patientID), entlog.Date(date)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("query adherence log: %w", err)
	}

	if l == nil {
		taken := []string{medID}
		l, err = s.db.AdherenceLog.Create().
			SetPatientID(patientID).
			SetDate(date).
			SetTakenMeds(taken).
			SetTakenCount(len(taken)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create adherence log: %w", err)
		}
	} else {
		taken := toggleMed(l.TakenMeds, medID)
		l, err = s.db.AdherenceLog.UpdateOne(l).
			SetTakenMeds(taken).
			SetTakenCount(len(taken)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update adherence log: %w", err)
		}
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionAdherence, l.ID.String())
	return l, nil
}

func (s *adherenceService) Get(ctx context.Context, patientID uuid.UUID, date string) (*repo.AdherenceLog, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	l, err := s.db.AdherenceLog.Query().
		Where(entlog.PatientID(patientID), entlog.Date(date)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// A day with no log reads as an empty one; the row appears on
			// the first toggle.
			return &repo.AdherenceLog{
				PatientID:  patientID,
				Date:       date,
				TakenMeds:  []string{},
				TakenCount: 0,
			}, nil
		}
		return nil, fmt.Errorf("query adherence log: %w", err)
	}
	return l, nil
}

func (s *adherenceService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.AdherenceLog, error) {
	logs, err := s.db.AdherenceLog.Query().
		Where(entlog.PatientID(patientID)).
		Order(entlog.ByDate()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list adherence logs: %w", err)
	}
	return logs, nil
}

// toggleMed returns taken with medID added if absent, removed if present.
// Order of the remaining entries is preserved.
func toggleMed(taken []string, medID string) []string {
	out := make([]string, 0, len(taken)+1)
	found := false
	for _, id := range taken {
		if id == medID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, medID)
	}
	return out
}
