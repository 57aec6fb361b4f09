// Package dispatch is an in-process, typed event bus with deferred
// delivery. Producers publish plain event values; consumers subscribe per
// event type and are invoked either immediately (Trigger) or later, in
// batches, when a pending queue is explicitly drained (DispatchQueued,
// DispatchAll).
//
// Events are indexed by their Go type. The first operation that references
// a type lazily creates its pool — a multicast subscriber list paired with
// a FIFO queue of pending values — so there is no registration step and no
// "unknown event type" error path.
//
// # Immediate vs deferred delivery
//
// Trigger fans an event out to every current subscriber before returning.
// Enqueue only appends the event to its type's pending queue; nothing is
// invoked until DispatchQueued (one type) or DispatchAll (every type seen
// so far) drains it in FIFO order. Draining snapshots the queue first:
// events enqueued by a subscriber while the drain runs are held for the
// next drain, so a dispatch call always terminates even when subscribers
// keep producing.
//
// Subscriber errors are returned to the caller unwrapped; a failing
// subscriber aborts the remaining fan-out of that call.
//
// # Single-threaded contract
//
// A Bus provides no internal locking. Every operation, including lazy pool
// creation and identifier assignment in its Registry, must run on the
// goroutine that owns the Bus. Callers needing cross-goroutine access must
// serialize externally, for example one Bus per goroutine or a mutex
// around every call.
package dispatch
