// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	goio "io"
	"log"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

var tracePrefix = color.New(color.FgCyan).SprintFunc()

// Emulator state. CPU + loaded program + output tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging and tracing.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Tape io.Tape // Output tape written by PRN.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Output = &emu.Tape

	return
}

// Reset the emulator, and load the current program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	return
}

// Load replaces the current program, and resets the emulator.
func (emu *Emulator) Load(prog *cpu.Program) (err error) {
	emu.Program = prog

	return emu.Reset()
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the source line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	line, ok := emu.Program.Debug(emu.Cpu.Pc)
	if !ok {
		return 0
	}

	return line.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	address := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.State == cpu.STATE_HALTED {
		done = true
		return
	}

	if emu.Verbose {
		log.Printf("%v %v", tracePrefix("TRACE:"), emu.Cpu.Trace())
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// Dump writes a table of the CPU registers to w.
func (emu *Emulator) Dump(w goio.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Register", "Hex", "Decimal"})

	row := func(name string, value int) {
		table.Append([]string{name, fmt.Sprintf("%02X", value), fmt.Sprintf("%d", value)})
	}

	row("PC", emu.Cpu.Pc)
	row("IR", int(emu.Cpu.Ir))
	row("FL", int(emu.Cpu.Fl))
	row("SP", emu.Cpu.Sp)
	for n, value := range emu.Cpu.Register {
		row(fmt.Sprintf("R%d", n), int(value))
	}

	table.Render()
}
