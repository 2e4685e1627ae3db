// Package sync pushes live snapshots of a patient's collections to attached
// viewers. The model deliberately avoids diffs: every change re-reads the
// whole collection and replaces the previous snapshot, so a viewer that
// misses an event is healed by the next one.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/service/adherence"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
	"github.com/Warinthorn/carelink_backend/internal/service/family"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

const snapshotTimeout = 10 * time.Second

// Snapshot is one full re-read of a collection, ready to serialize.
type Snapshot struct {
	Collection string `json:"collection"`
	Data       any    `json:"data"`
}

// ChartData accompanies health log snapshots with the per-type windows the
// client charts draw from.
type ChartData struct {
	Entries []any            `json:"entries"`
	Charts  map[string][]any `json:"charts"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Attach opens a live view of one patient's collections for a viewer.
	// A viewer holds at most one attachment; attaching again detaches the
	// previous one first.
	Attach(ctx context.Context, viewerID, patientID uuid.UUID) (*Session, error)

	// Detach closes the viewer's current attachment, if any.
	Detach(viewerID uuid.UUID)
}

type syncService struct {
	cfg *config.Config
	bus Bus

	profiles     profile.Service
	medications  medication.Service
	adherence    adherence.Service
	healthLogs   healthlog.Service
	appointments appointment.Service
	family       family.Service

	mu       gosync.Mutex
	sessions map[uuid.UUID]*Session
}

func New(
	cfg *config.Config,
	bus Bus,
	profileSvc profile.Service,
	medicationSvc medication.Service,
	adherenceSvc adherence.Service,
	healthLogSvc healthlog.Service,
	appointmentSvc appointment.Service,
	familySvc family.Service,
) Service {
	return &syncService{
		cfg:          cfg,
		bus:          bus,
		profiles:     profileSvc,
		medications:  medicationSvc,
		adherence:    adherenceSvc,
		healthLogs:   healthLogSvc,
		appointments: appointmentSvc,
		family:       familySvc,
		sessions:     make(map[uuid.UUID]*Session),
	}
}

func (s *syncService) Attach(ctx context.Context, viewerID, patientID uuid.UUID) (*Session, error) {
	s.Detach(viewerID)

	sess := newSession(viewerID, patientID, s.cfg.Sync.Buffer())

	partition := s.cfg.Sync.PartitionName()
	pid := patientID.String()

	for _, collection := range docpath.PatientCollections {
		collection := collection
		subject := docpath.CollectionSubject(partition, pid, collection)
		unsub, err := s.bus.Subscribe(subject, func([]byte) {
			s.deliver(sess, collection)
		})
		if err != nil {
			sess.Close()
			return nil, fmt.Errorf("%w: subscribe %s: %v", ErrAttachFailed, subject, err)
		}
		sess.addUnsub(unsub)
	}

	// Initial state: one snapshot per collection before any change arrives.
	for _, collection := range docpath.PatientCollections {
		s.deliver(sess, collection)
	}

	s.mu.Lock()
	s.sessions[viewerID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *syncService) Detach(viewerID uuid.UUID) {
	s.mu.Lock()
	sess := s.sessions[viewerID]
	delete(s.sessions, viewerID)
	s.mu.Unlock()

	if sess != nil {
		sess.Close()
	}
}

// deliver re-reads one collection and pushes the result into the session.
func (s *syncService) deliver(sess *Session, collection string) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	data, err := s.snapshot(ctx, sess.patientID, collection)
	if err != nil {
		slog.Warn("snapshot failed",
			"viewer_id", sess.viewerID,
			"patient_id", sess.patientID,
			"collection", collection,
			"error", err)
		return
	}
	sess.push(Snapshot{Collection: collection, Data: data})
}

func (s *syncService) snapshot(ctx context.Context, patientID uuid.UUID, collection string) (any, error) {
	switch collection {
	case docpath.CollectionProfile:
		return s.profiles.Get(ctx, patientID)
	case docpath.CollectionMedications:
		return s.medications.List(ctx, patientID)
	case docpath.CollectionAdherence:
		return s.adherence.List(ctx, patientID)
	case docpath.CollectionHealthLogs:
		return s.healthLogSnapshot(ctx, patientID)
	case docpath.CollectionAppointments:
		return s.appointments.List(ctx, patientID)
	case docpath.CollectionFamily:
		return s.family.List(ctx, patientID)
	}
	return nil, fmt.Errorf("unknown collection %q", collection)
}

func (s *syncService) healthLogSnapshot(ctx context.Context, patientID uuid.UUID) (*ChartData, error) {
	all, err := s.healthLogs.List(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := &ChartData{
		Entries: make([]any, 0, len(all)),
		Charts:  make(map[string][]any),
	}
	for _, l := range all {
		out.Entries = append(out.Entries, l)
	}

	for _, typ := range []string{healthlog.TypeBP, healthlog.TypeSugar, healthlog.TypeWeight, healthlog.TypeLab} {
		recent, err := s.healthLogs.Recent(ctx, patientID, typ)
		if err != nil {
			return nil, err
		}
		window := make([]any, 0, len(recent))
		for _, l := range recent {
			window = append(window, l)
		}
		out.Charts[typ] = window
	}

	return out, nil
}
