// Package cpu implements the LS-8 microprocessor and its program loader.
//
// The CPU consists of a 256 byte memory, eight 8-bit general-purpose
// registers (r0-r7), a program counter (PC), a flag register (FL), and a
// stack pointer (SP) growing down from 0xf4. Instructions are dispatched
// through a table of self-describing handlers, and arithmetic is delegated
// to the ALU.
//
// The loader reads the text format of one binary byte literal per line,
// with '#' comments, and supports compile-time $(...) expressions over
// the opcode mnemonics.
package cpu
