package signal

// Connection is a revocable, non-owning handle to one handler bound to a
// Signal. Connections are deliberately not generic over the event type, so
// code holding connections to handlers of different types can keep them in
// one place.
//
// A Connection must not be used after the Signal it points into has been
// dropped; that is a precondition violation, not a handled case.
type Connection struct {
	disconnect func()
}

// Disconnect removes the bound handler from its Signal. After Disconnect
// returns the handler is not invoked by subsequent Emit calls.
// It is safe to call multiple times or on a nil Connection.
func (c *Connection) Disconnect() {
	if c == nil || c.disconnect == nil {
		return
	}
	c.disconnect()
	c.disconnect = nil
}
