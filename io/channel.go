// Package io provides output channel implementations for the LS-8 emulator.
// A channel receives the byte values printed by the running program, either
// as decimal text lines (Tape) or into a bounded buffer (Temporary).
package io

// Channel defines the interface for all output channels of the LS-8.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single byte value to the channel.
	Send(value uint8) error
}
