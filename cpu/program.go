package cpu

import (
	"iter"
)

// Line is a single loaded byte and where it came from.
type Line struct {
	LineNo  int    // Source line number, starting at 1.
	Address int    // Memory address the byte is loaded at.
	Text    string // Source text, without comment.
	Value   uint8  // Loaded value.
}

// Program is a loaded program listing.
type Program struct {
	Lines []Line
}

// Debug returns the source line loaded at address.
func (prog *Program) Debug(address int) (line Line, ok bool) {
	for _, ln := range prog.Lines {
		if ln.Address == address {
			return ln, true
		}
	}

	return
}

// Binary returns the memory image of the program.
// Addresses not covered by a line are zero.
func (prog *Program) Binary() (bins []uint8) {
	for address, value := range prog.Bytes() {
		if address >= len(bins) {
			bins = append(bins, make([]uint8, address+1-len(bins))...)
		}
		bins[address] = value
	}

	return
}

// Bytes iterates over the address and value of every loaded byte.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(address int, value uint8) bool) {
		for _, ln := range prog.Lines {
			if !yield(ln.Address, ln.Value) {
				return
			}
		}
	}
}
