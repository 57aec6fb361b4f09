package dispatch

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/vincentAlen/dispatch/signal"
)

// Bus is the central event dispatcher. It exclusively owns one pool per
// event type referenced so far, in a slot table indexed by the Registry's
// identifiers; pools are created lazily on first reference, so no
// operation can fail with a missing event type.
//
// A Bus provides no internal locking; see the package documentation for
// the single-threaded contract.
type Bus struct {
	id       string
	registry *Registry
	logger   *slog.Logger

	// pools is indexed by EventID. A nil slot is a type known to the
	// Registry (possibly via another Bus sharing it) but never referenced
	// on this Bus; it is treated as absent.
	pools []queuedPool
}

// New creates a Bus with the given options. By default the Bus owns a
// private Registry; use WithRegistry to share one across buses.
func New(opts ...Option) *Bus {
	b := &Bus{
		id:     uuid.NewString(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = NewRegistry()
	}
	b.logger.Debug("bus created", "bus", b.id)
	return b
}

// ID returns the unique identifier of this Bus instance.
func (b *Bus) ID() string {
	return b.id
}

// DispatchAll drains the pending queue of every pool that exists on this
// Bus, in identifier order, skipping never-referenced slots. It stops at
// the first subscriber error and returns it. On a Bus with no pools it is
// a no-op.
func (b *Bus) DispatchAll(ctx context.Context) error {
	for _, p := range b.pools {
		if p == nil {
			continue
		}
		if err := p.dispatchQueued(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll discards the pending queue of every pool on this Bus without
// invoking any subscriber.
func (b *Bus) ClearAll() {
	for _, p := range b.pools {
		if p != nil {
			p.clearQueue()
		}
	}
}

// Unsubscribe disconnects the subscriber registration behind conn. Other
// subscribers to the same event type are unaffected. Safe to call more
// than once and on a nil connection.
func (b *Bus) Unsubscribe(conn *signal.Connection) {
	conn.Disconnect()
}

// EventTypes returns the event types that have a pool on this Bus, in
// identifier order.
func (b *Bus) EventTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(b.pools))
	for id, p := range b.pools {
		if p != nil {
			types = append(types, b.registry.Type(EventID(id)))
		}
	}
	return types
}

// poolFor resolves the pool for T, growing the slot table and creating the
// pool on first reference. Every public operation reaches its pool through
// here.
func poolFor[T any](b *Bus) *pool[T] {
	id := EventIDFor[T](b.registry)
	if n := int(id) + 1 - len(b.pools); n > 0 {
		b.pools = append(b.pools, make([]queuedPool, n)...)
	}
	if b.pools[id] == nil {
		b.pools[id] = &pool[T]{}
		b.logger.Debug("event pool created",
			"bus", b.id,
			"type", reflect.TypeFor[T]().String(),
			"id", int(id))
	}
	return b.pools[id].(*pool[T])
}

// peekPool returns the pool for T if this Bus already has one, without
// creating it.
func peekPool[T any](b *Bus) *pool[T] {
	id, ok := b.registry.Lookup(reflect.TypeFor[T]())
	if !ok || int(id) >= len(b.pools) || b.pools[id] == nil {
		return nil
	}
	return b.pools[id].(*pool[T])
}
