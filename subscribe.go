package dispatch

import (
	"context"

	"github.com/vincentAlen/dispatch/signal"
)

// Handler is implemented by types that consume events of type T with a
// bound method. The return value of HandleEvent follows the same contract
// as a subscribed function: a non-nil error aborts the fan-out it is part
// of.
type Handler[T any] interface {
	HandleEvent(ctx context.Context, ev T) error
}

// Subscribe registers fn as a subscriber for events of type T and returns
// the connection that revokes the registration. Subscribers are invoked in
// subscription order. Method values work as fn, so
//
//	dispatch.Subscribe[Damage](bus, tracker.OnDamage)
//
// binds a method together with its receiver.
func Subscribe[T any](b *Bus, fn signal.Handler[T]) *signal.Connection {
	return poolFor[T](b).sig.Bind(fn)
}

// SubscribeHandler registers h's HandleEvent method as a subscriber for
// events of type T.
func SubscribeHandler[T any](b *Bus, h Handler[T]) *signal.Connection {
	return Subscribe[T](b, h.HandleEvent)
}
