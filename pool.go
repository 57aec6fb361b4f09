package dispatch

import (
	"context"

	"github.com/vincentAlen/dispatch/signal"
)

// queuedPool is the type-erased face of a pool: the two operations the Bus
// applies without knowing the concrete event type.
type queuedPool interface {
	dispatchQueued(ctx context.Context) error
	clearQueue()
}

// pool pairs the multicast subscriber list for one event type with that
// type's queue of pending values. Pools are created lazily by the Bus and
// live as long as it does.
type pool[T any] struct {
	sig   signal.Signal[T]
	queue []T
}

func (p *pool[T]) trigger(ctx context.Context, ev T) error {
	return p.sig.Emit(ctx, ev)
}

func (p *pool[T]) enqueue(ev T) {
	p.queue = append(p.queue, ev)
}

// dispatchQueued drains the pending queue through fan-out in FIFO order.
// The queue is taken over up front: events enqueued by a subscriber while
// the drain runs land in a fresh queue and wait for the next call, so every
// dispatch terminates. A subscriber error aborts the drain and discards the
// rest of the taken batch.
func (p *pool[T]) dispatchQueued(ctx context.Context) error {
	pending := p.queue
	p.queue = nil

	for _, ev := range pending {
		if err := p.sig.Emit(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

func (p *pool[T]) clearQueue() {
	p.queue = nil
}
