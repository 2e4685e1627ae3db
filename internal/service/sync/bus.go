package sync

import "github.com/nats-io/nats.go"

// Bus is the subscription side of the change feed. Satisfied by NATS in
// production and by in-memory fakes in tests.
type Bus interface {
	// Subscribe registers fn for a subject and returns an unsubscribe func.
	Subscribe(subject string, fn func(data []byte)) (func() error, error)
}

type natsBus struct {
	nc *nats.Conn
}

func NewNatsBus(nc *nats.Conn) Bus {
	return &natsBus{nc: nc}
}

func (b *natsBus) Subscribe(subject string, fn func(data []byte)) (func() error, error) {
	sub, err := b.nc.Subscribe(subject, func(msg *nats.Msg) {
		fn(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return sub.Unsubscribe, nil
}
