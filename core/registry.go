package core

import (
	"github.com/google/uuid"
)

// subscription pairs a caller's bounded response channel with a done signal
// the facade closes when the caller's context is canceled. See worker.go
// for how delivery uses the pairing to detect an abandoned caller.
type subscription struct {
	ch   chan Result[[]byte]
	done <-chan struct{}
}

// registry maps a subscription id to its caller subscription. It is
// confined to the Connection Worker goroutine — no field here is ever
// touched from another goroutine, so no locking is required.
type registry struct {
	entries map[uuid.UUID]subscription
}

func newRegistry() *registry {
	return &registry{entries: make(map[uuid.UUID]subscription)}
}

// insert registers sub under id, returning the previously registered
// subscription if one already existed. A duplicate id is an internal
// invariant violation (an id collision); the worker logs a warning and
// still replaces the prior entry.
func (r *registry) insert(id uuid.UUID, sub subscription) (subscription, bool) {
	prev, had := r.entries[id]
	r.entries[id] = sub
	return prev, had
}

func (r *registry) lookup(id uuid.UUID) (subscription, bool) {
	sub, ok := r.entries[id]
	return sub, ok
}

// remove deregisters id and returns its subscription, if any, so the
// caller can close its channel.
func (r *registry) remove(id uuid.UUID) (subscription, bool) {
	sub, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return sub, ok
}

// drain consumes every entry, returning their subscriptions. Used on fatal
// transport failure to fan out a final error to every live subscription.
func (r *registry) drain() []subscription {
	out := make([]subscription, 0, len(r.entries))
	for id, sub := range r.entries {
		out = append(out, sub)
		delete(r.entries, id)
	}
	return out
}

func (r *registry) len() int { return len(r.entries) }
