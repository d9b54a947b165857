// Package core defines the transport-facing contracts the room logic
// fans out to, and the wire payloads in both directions.
package core

// Frame is an encoded outbound payload.
type Frame []byte

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
