package sync

import (
	"context"
	gosync "sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
	"github.com/Warinthorn/carelink_backend/internal/service/family"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

// fakeBus records handlers so tests can fire change events directly.
type fakeBus struct {
	mu       gosync.Mutex
	handlers map[string]func([]byte)
}

func newFakeBus() *fakeBus {
	return &fakeBus{handlers: make(map[string]func([]byte))}
}

func (b *fakeBus) Subscribe(subject string, fn func(data []byte)) (func() error, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[subject] = fn
	return func() error {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, subject)
		return nil
	}, nil
}

func (b *fakeBus) fire(subject string) {
	b.mu.Lock()
	fn := b.handlers[subject]
	b.mu.Unlock()
	if fn != nil {
		fn(nil)
	}
}

func (b *fakeBus) subscriptionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Stub services returning fixed data.

type stubProfiles struct{}

func (stubProfiles) Get(context.Context, uuid.UUID) (*profile.View, error) {
	return &profile.View{Name: "stub"}, nil
}
func (stubProfiles) Update(context.Context, uuid.UUID, profile.UpdateRequest) (*profile.View, error) {
	return nil, nil
}

type stubMedications struct{}

func (stubMedications) List(context.Context, uuid.UUID) ([]*repo.Medication, error) { return nil, nil }
func (stubMedications) Create(context.Context, uuid.UUID, medication.CreateRequest) (*repo.Medication, error) {
	return nil, nil
}
func (stubMedications) Update(context.Context, uuid.UUID, uuid.UUID, medication.UpdateRequest) (*repo.Medication, error) {
	return nil, nil
}
func (stubMedications) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubAdherence struct{}

func (stubAdherence) Toggle(context.Context, uuid.UUID, string, string) (*repo.AdherenceLog, error) {
	return nil, nil
}
func (stubAdherence) Get(context.Context, uuid.UUID, string) (*repo.AdherenceLog, error) {
	return nil, nil
}
func (stubAdherence) List(context.Context, uuid.UUID) ([]*repo.AdherenceLog, error) { return nil, nil }

type stubHealthLogs struct{}

func (stubHealthLogs) Add(context.Context, uuid.UUID, healthlog.AddRequest) (*repo.HealthLog, error) {
	return nil, nil
}
func (stubHealthLogs) List(context.Context, uuid.UUID) ([]*repo.HealthLog, error)   { return nil, nil }
func (stubHealthLogs) Recent(context.Context, uuid.UUID, string) ([]*repo.HealthLog, error) {
	return nil, nil
}

type stubAppointments struct{}

func (stubAppointments) List(context.Context, uuid.UUID) ([]*repo.Appointment, error) {
	return nil, nil
}
func (stubAppointments) Create(context.Context, uuid.UUID, appointment.CreateRequest) (*repo.Appointment, error) {
	return nil, nil
}
func (stubAppointments) Update(context.Context, uuid.UUID, uuid.UUID, appointment.UpdateRequest) (*repo.Appointment, error) {
	return nil, nil
}
func (stubAppointments) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubFamily struct{}

func (stubFamily) List(context.Context, uuid.UUID) ([]*repo.FamilyMember, error) { return nil, nil }
func (stubFamily) Create(context.Context, uuid.UUID, family.CreateRequest) (*repo.FamilyMember, error) {
	return nil, nil
}
func (stubFamily) Update(context.Context, uuid.UUID, uuid.UUID, family.UpdateRequest) (*repo.FamilyMember, error) {
	return nil, nil
}
func (stubFamily) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func newTestService(bus Bus) Service {
	cfg := &config.Config{}
	return New(cfg, bus,
		stubProfiles{}, stubMedications{}, stubAdherence{},
		stubHealthLogs{}, stubAppointments{}, stubFamily{})
}

func drain(t *testing.T, sess *Session, want int) []Snapshot {
	t.Helper()
	var out []Snapshot
	deadline := time.After(2 * time.Second)
	for len(out) < want {
		select {
		case snap := <-sess.Snapshots():
			out = append(out, snap)
		case <-deadline:
			t.Fatalf("drained %d snapshots, want %d", len(out), want)
		}
	}
	return out
}

func TestAttachDeliversInitialSnapshots(t *testing.T) {
	bus := newFakeBus()
	svc := newTestService(bus)

	sess, err := svc.Attach(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	defer sess.Close()

	snaps := drain(t, sess, len(docpath.PatientCollections))

	seen := make(map[string]bool)
	for _, s := range snaps {
		seen[s.Collection] = true
	}
	for _, collection := range docpath.PatientCollections {
		if !seen[collection] {
			t.Errorf("no initial snapshot for %q", collection)
		}
	}
}

func TestChangeEventTriggersFreshSnapshot(t *testing.T) {
	bus := newFakeBus()
	svc := newTestService(bus)
	patientID := uuid.New()

	sess, err := svc.Attach(context.Background(), uuid.New(), patientID)
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	defer sess.Close()

	drain(t, sess, len(docpath.PatientCollections))

	cfg := &config.Config{}
	subject := docpath.CollectionSubject(cfg.Sync.PartitionName(), patientID.String(), docpath.CollectionMedications)
	bus.fire(subject)

	snaps := drain(t, sess, 1)
	if snaps[0].Collection != docpath.CollectionMedications {
		t.Errorf("snapshot collection = %q, want %q", snaps[0].Collection, docpath.CollectionMedications)
	}
}

func TestReattachDetachesPreviousSession(t *testing.T) {
	bus := newFakeBus()
	svc := newTestService(bus)
	viewerID := uuid.New()

	first, err := svc.Attach(context.Background(), viewerID, uuid.New())
	if err != nil {
		t.Fatalf("first Attach() error = %v", err)
	}

	second, err := svc.Attach(context.Background(), viewerID, uuid.New())
	if err != nil {
		t.Fatalf("second Attach() error = %v", err)
	}
	defer second.Close()

	select {
	case <-first.Done():
	default:
		t.Error("first session still open after re-attach")
	}

	if got := bus.subscriptionCount(); got != len(docpath.PatientCollections) {
		t.Errorf("subscription count = %d, want %d", got, len(docpath.PatientCollections))
	}
}

func TestDetachUnsubscribes(t *testing.T) {
	bus := newFakeBus()
	svc := newTestService(bus)
	viewerID := uuid.New()

	if _, err := svc.Attach(context.Background(), viewerID, uuid.New()); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	svc.Detach(viewerID)

	if got := bus.subscriptionCount(); got != 0 {
		t.Errorf("subscription count after detach = %d, want 0", got)
	}
}
