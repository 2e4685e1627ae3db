// Package events publishes change notifications on NATS. Every mutation in
// the service layer announces the collection it touched; the sync layer and
// background workers subscribe by subject and re-read the data themselves,
// so payloads carry only the changed document's ID.
package events

import (
	"github.com/nats-io/nats.go"

	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

type Publisher struct {
	nc        *nats.Conn
	partition string
}

func New(nc *nats.Conn, partition string) *Publisher {
	return &Publisher{nc: nc, partition: partition}
}

// CollectionChanged announces a write inside one patient-scoped collection.
// Best effort: a dropped event only delays watchers until the next change.
func (p *Publisher) CollectionChanged(patientID, collection, docID string) {
	if p == nil || p.nc == nil {
		return
	}
	subject := docpath.CollectionSubject(p.partition, patientID, collection)
	_ = p.nc.Publish(subject, []byte(docID))
}

// SmartIndexChanged announces a write to the public smart-ID index.
func (p *Publisher) SmartIndexChanged(entryID string) {
	if p == nil || p.nc == nil {
		return
	}
	_ = p.nc.Publish(docpath.Subject(docpath.SmartIDEntry(entryID)), []byte(entryID))
}

// UserDocChanged announces a write to a per-user role document.
func (p *Publisher) UserDocChanged(userID string) {
	if p == nil || p.nc == nil {
		return
	}
	_ = p.nc.Publish(docpath.Subject(docpath.UserDoc(userID)), []byte(userID))
}
