// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/ls8/io"
)

// State is the run state of the CPU.
type State int

const (
	STATE_RUNNING = State(0) // Fetching and executing.
	STATE_HALTED  = State(1) // Stopped by HLT.
	STATE_FAULTED = State(2) // Stopped by an execution error.
)

func (st State) String() string {
	switch st {
	case STATE_RUNNING:
		return "running"
	case STATE_HALTED:
		return "halted"
	case STATE_FAULTED:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Cpu is the simulation context for the LS-8.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Flat memory array.
	Register Registers // Register bank.
	Pc       int       // Program counter.
	Sp       int       // Stack pointer.
	Fl       uint8     // Flags. Unused by the current instruction set.
	Ir       Opcode    // Opcode of the most recently fetched instruction.
	State    State     // Run state.

	Ticks int // Instructions executed since reset.

	Output io.Channel // Destination of PRN.
}

// NewCpu creates a new CPU, with zeroed memory and registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears memory and registers.
// - Sets PC to 0 and SP to the top of the stack.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Sp = STACK_START
	cpu.Fl = 0
	cpu.Ir = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Load writes a program image into memory at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrProgramTooLarge
		return
	}

	err = cpu.Memory.Load(0, image)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Fetch decodes the instruction at the PC, and reads the operand
// bytes it declares. Undeclared operands are returned as zero.
func (cpu *Cpu) Fetch() (op Opcode, inst Instruction, operands [2]uint8, err error) {
	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	op = Opcode(value)
	inst, ok := Instructions[op]
	if !ok {
		err = ErrUnknownOpcode(value)
		return
	}

	for n := range min(inst.Operands, len(operands)) {
		operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return ErrFaulted
	}

	pc := cpu.Pc
	defer func() {
		if err != nil {
			cpu.State = STATE_FAULTED
			if _, unknown := err.(ErrUnknownOpcode); !unknown {
				err = &ErrInstruction{Pc: pc, Opcode: cpu.Ir, Err: err}
			}
		}
	}()

	op, inst, operands, err := cpu.Fetch()
	cpu.Ir = op
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%02x: %v %v", pc, inst.Mnemonic, operands[:inst.Operands])
	}

	res, err := inst.Handler(cpu, operands[0], operands[1])
	if err != nil {
		return
	}

	cpu.Pc += res.Advance
	cpu.Ticks++

	if !res.Running {
		cpu.State = STATE_HALTED
		if cpu.Verbose {
			log.Printf("cpu: halted at %02x after %d ticks", cpu.Pc, cpu.Ticks)
		}
	}

	return
}

// Run executes instructions until the CPU halts or faults.
// There is no step limit.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Trace returns a one line summary of the CPU state: the PC, the byte at
// the PC and the two following bytes, and the register file.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%02X |", cpu.Pc)
	for n := range 3 {
		value, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			sb.WriteString(" --")
		} else {
			fmt.Fprintf(&sb, " %02X", value)
		}
	}
	sb.WriteString(" |")
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "fl", "sp",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack", "state",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%08b %v", uint8(cpu.Ir), cpu.Ir.String())
		case "fl":
			strval = fmt.Sprintf("%08b", cpu.Fl)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Sp)
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			val := cpu.Register[byte(reg[1]-'0')]
			strval = fmt.Sprintf("%02X (%d)", val, val)
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		case "state":
			strval = cpu.State.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
