package dispatch

import "context"

// Trigger fans ev out to every current subscriber for T, in subscription
// order, and returns after the last one completes. The first subscriber
// error aborts the remaining subscribers and is returned unwrapped. With
// no subscribers for T it only ensures the pool exists.
func Trigger[T any](ctx context.Context, b *Bus, ev T) error {
	return poolFor[T](b).trigger(ctx, ev)
}

// Enqueue appends ev to the pending queue for T without invoking any
// subscriber. The value is delivered by a later DispatchQueued or
// DispatchAll call, or discarded by ClearQueue or ClearAll.
func Enqueue[T any](b *Bus, ev T) {
	poolFor[T](b).enqueue(ev)
}

// DispatchQueued drains the pending queue for T in FIFO order, fanning
// each value out like Trigger, and leaves the queue empty. The queue is
// snapshotted before delivery starts: an event enqueued for T by a
// subscriber during this call is held for the next DispatchQueued. Stops
// at and returns the first subscriber error; a no-op on an empty queue.
func DispatchQueued[T any](ctx context.Context, b *Bus) error {
	return poolFor[T](b).dispatchQueued(ctx)
}

// ClearQueue discards every pending event for T without invoking any
// subscriber. A no-op on an empty queue.
func ClearQueue[T any](b *Bus) {
	poolFor[T](b).clearQueue()
}

// QueueLen reports the number of pending events for T. It does not create
// a pool for a never-referenced type.
func QueueLen[T any](b *Bus) int {
	if p := peekPool[T](b); p != nil {
		return len(p.queue)
	}
	return 0
}

// Subscribers reports the number of current subscribers for T, without
// creating a pool.
func Subscribers[T any](b *Bus) int {
	if p := peekPool[T](b); p != nil {
		return p.sig.Len()
	}
	return 0
}
