package cpu

import (
	"fmt"
)

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
)

var aluOpName = map[AluOp]string{
	ALU_OP_ADD: "add",
	ALU_OP_MUL: "mul",
}

func (op AluOp) String() string {
	name, ok := aluOpName[op]
	if !ok {
		return fmt.Sprintf("AluOp(%d)", int(op))
	}
	return name
}

// Alu performs op on registers reg_a and reg_b, storing the result
// in reg_a. It returns the number of operand bytes consumed.
func (cpu *Cpu) Alu(op AluOp, reg_a, reg_b uint8) (consumed int, err error) {
	input, err := cpu.Register.Read(int(reg_a))
	if err != nil {
		return
	}

	value, err := cpu.Register.Read(int(reg_b))
	if err != nil {
		return
	}

	output, err := cpu.doAlu(op, input, value)
	if err != nil {
		return
	}

	cpu.Register[reg_a] = output
	consumed = 2

	return
}

// doAlu performs the requested ALU action, and returns the output value.
// Results wrap modulo 256.
func (cpu *Cpu) doAlu(op AluOp, input uint8, value uint8) (output uint8, err error) {
	switch op {
	case ALU_OP_ADD: // add
		output = input + value
	case ALU_OP_MUL: // mul
		output = input * value
	default:
		err = ErrAluUnsupported(op)
	}

	return
}
