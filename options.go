package dispatch

import "log/slog"

// Option configures a Bus.
type Option func(*Bus)

// WithRegistry makes the Bus resolve event identifiers through r instead
// of a private Registry. Buses sharing one Registry assign the same
// identifier to the same event type.
func WithRegistry(r *Registry) Option {
	return func(b *Bus) { b.registry = r }
}

// WithLogger sets the structured logger used for debug output. By default
// everything is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}
