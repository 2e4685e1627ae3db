package sync

import (
	"testing"

	"github.com/google/uuid"
)

func TestSessionPushDropsOldestWhenFull(t *testing.T) {
	s := newSession(uuid.New(), uuid.New(), 2)

	s.push(Snapshot{Collection: "a"})
	s.push(Snapshot{Collection: "b"})
	s.push(Snapshot{Collection: "c"})

	first := <-s.Snapshots()
	second := <-s.Snapshots()

	if first.Collection != "b" || second.Collection != "c" {
		t.Errorf("got %q then %q, want b then c", first.Collection, second.Collection)
	}

	select {
	case extra := <-s.Snapshots():
		t.Errorf("unexpected extra snapshot %q", extra.Collection)
	default:
	}
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	calls := 0
	s := newSession(uuid.New(), uuid.New(), 1)
	s.addUnsub(func() error { calls++; return nil })

	s.Close()
	s.Close()

	if calls != 1 {
		t.Errorf("unsubscribe called %d times, want 1", calls)
	}

	select {
	case <-s.Done():
	default:
		t.Error("Done() not closed after Close()")
	}
}

func TestSessionPushAfterCloseIsNoop(t *testing.T) {
	s := newSession(uuid.New(), uuid.New(), 2)
	s.Close()
	s.push(Snapshot{Collection: "a"})

	select {
	case snap := <-s.Snapshots():
		t.Errorf("got snapshot %q after close", snap.Collection)
	default:
	}
}
