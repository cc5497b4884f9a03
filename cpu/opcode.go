package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Opcode is the 8-bit value identifying an instruction.
//
// The LS-8 encoding is AABCDDDD: AA is the operand count, B is set for
// ALU instructions, C is set for instructions that set the PC, and DDDD
// is the instruction identifier.
type Opcode uint8

const (
	OP_HLT  = Opcode(0b00000001) // HALT
	OP_LDI  = Opcode(0b10000010) // LOAD_IMMEDIATE
	OP_PRN  = Opcode(0b01000111) // PRINT_REGISTER
	OP_MUL  = Opcode(0b10100010) // MULTIPLY
	OP_POP  = Opcode(0b01000110) // POP
	OP_PUSH = Opcode(0b01000101) // PUSH
)

const (
	OPCODE_OPERANDS_SHIFT = 6
	OPCODE_ALU            = Opcode(1 << 5)
	OPCODE_SETS_PC        = Opcode(1 << 4)
)

// Operands returns the operand count encoded in the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// IsAlu returns true if the opcode is encoded as an ALU instruction.
func (op Opcode) IsAlu() bool {
	return (op & OPCODE_ALU) != 0
}

// SetsPc returns true if the opcode is encoded as setting the PC.
func (op Opcode) SetsPc() bool {
	return (op & OPCODE_SETS_PC) != 0
}

// String returns the mnemonic of the opcode, or its binary value if unknown.
func (op Opcode) String() string {
	inst, ok := Instructions[op]
	if !ok {
		return fmt.Sprintf("0b%08b", uint8(op))
	}

	return inst.Mnemonic
}

// Result is what an instruction handler reports back to the run loop.
type Result struct {
	Advance int  // Amount to advance the PC by.
	Running bool // False once the machine should halt.
}

// Handler implements one instruction. It receives the operand bytes
// declared by its Instruction; unused operands are zero.
type Handler func(cpu *Cpu, a, b uint8) (res Result, err error)

// Instruction is an entry in the dispatch table.
type Instruction struct {
	Mnemonic string  // Assembly mnemonic.
	Operands int     // Number of operand bytes following the opcode.
	Handler  Handler // Implementation.
}

// Defines returns the opcode mnemonics and register names, as
// equates usable by the loader.
func Defines() iter.Seq2[string, string] {
	defines := map[string]string{}
	for op, inst := range Instructions {
		defines[inst.Mnemonic] = fmt.Sprintf("0b%08b", uint8(op))
	}
	for n := range REGISTER_COUNT {
		defines[fmt.Sprintf("R%d", n)] = fmt.Sprintf("%d", n)
	}

	return maps.All(defines)
}
