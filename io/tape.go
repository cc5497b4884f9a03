package io

import (
	"fmt"
	"io"
)

// Tape writes every value sent to it as a decimal line on Output.
type Tape struct {
	Output io.Writer

	Lines int // Number of lines written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape, only the line counter is reset.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Send writes the decimal representation of value, followed by a newline.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelOutput
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Lines++

	return
}
