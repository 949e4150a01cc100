// Package sink writes forged frames to their destinations.
package sink

// Sink consumes finished frames. Implementations own their underlying
// resources; Close flushes and releases them.
type Sink interface {
	Write(frame []byte) error
	Close() error
}
