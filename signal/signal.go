// Package signal implements a multicast invocation list with revocable
// connections. A Signal holds an ordered list of bound handlers; Emit
// invokes them in bind order, and every Bind returns a Connection that can
// disconnect exactly that handler later.
//
// Signals are strictly single-threaded: all operations on a Signal and its
// Connections must run on the goroutine that owns it.
package signal

import "context"

// Handler is a function bound to a Signal for values of type T.
// Method values satisfy Handler, so a bound method on any receiver can be
// passed directly to Bind.
type Handler[T any] func(ctx context.Context, ev T) error

type slot[T any] struct {
	id uint64
	fn Handler[T]
}

// Signal is an ordered multicast invocation list for values of type T.
// The zero value is ready to use.
type Signal[T any] struct {
	slots  []slot[T]
	nextID uint64
}

// Bind appends fn to the invocation list and returns a Connection that
// revokes the binding. Handlers are invoked in bind order.
func (s *Signal[T]) Bind(fn Handler[T]) *Connection {
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})
	return &Connection{disconnect: func() { s.remove(id) }}
}

// Emit invokes every handler bound at the time of the call with ev, in bind
// order, and returns after the last one completes. It stops at the first
// handler error and returns it; remaining handlers are not invoked. A
// handler bound during an Emit is not invoked by that same Emit, and a
// handler disconnected during an Emit is not invoked if its turn has not
// come yet.
func (s *Signal[T]) Emit(ctx context.Context, ev T) error {
	// Snapshot so that handlers may bind or disconnect without disturbing
	// this invocation pass.
	snapshot := make([]slot[T], len(s.slots))
	copy(snapshot, s.slots)

	for _, sl := range snapshot {
		if !s.bound(sl.id) {
			continue
		}
		if err := sl.fn(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of currently bound handlers.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

func (s *Signal[T]) bound(id uint64) bool {
	for _, sl := range s.slots {
		if sl.id == id {
			return true
		}
	}
	return false
}

func (s *Signal[T]) remove(id uint64) {
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}
