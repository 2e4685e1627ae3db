package sync

import (
	gosync "sync"

	"github.com/google/uuid"
)

// Session is one viewer's live attachment to one patient. Snapshots arrive on
// a buffered channel; when the viewer falls behind, the oldest pending
// snapshot is discarded because a newer one supersedes it.
type Session struct {
	viewerID  uuid.UUID
	patientID uuid.UUID

	snapshots chan Snapshot
	done      chan struct{}

	mu     gosync.Mutex
	unsubs []func() error
	closed bool
}

func newSession(viewerID, patientID uuid.UUID, buffer int) *Session {
	if buffer < 1 {
		buffer = 1
	}
	return &Session{
		viewerID:  viewerID,
		patientID: patientID,
		snapshots: make(chan Snapshot, buffer),
		done:      make(chan struct{}),
	}
}

// Snapshots is the stream the transport layer drains.
func (s *Session) Snapshots() <-chan Snapshot { return s.snapshots }

// Done closes when the session is detached.
func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) PatientID() uuid.UUID { return s.patientID }

func (s *Session) addUnsub(fn func() error) {
	s.mu.Lock()
	s.unsubs = append(s.unsubs, fn)
	s.mu.Unlock()
}

// push enqueues a snapshot, dropping the oldest pending one when the buffer
// is full. Dropped state is safe to lose: each snapshot is complete.
func (s *Session) push(snap Snapshot) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	select {
	case s.snapshots <- snap:
		return
	default:
	}

	select {
	case <-s.snapshots:
	default:
	}
	select {
	case s.snapshots <- snap:
	default:
	}
}

// Close unsubscribes and signals Done. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, fn := range unsubs {
		_ = fn()
	}
	close(s.done)
}
