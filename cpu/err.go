package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("cpu halted"))
	ErrFaulted        = errors.New(f("cpu faulted"))
	ErrOutOfRange     = errors.New(f("out of range"))
	ErrChannelInvalid = errors.New(f("output channel invalid"))

	// Loader errors
	ErrProgramTooLarge = errors.New(f("program exceeds memory"))
)

// ErrAddressRange is a memory access outside of the memory array.
type ErrAddressRange int

func (ea ErrAddressRange) Error() string {
	return f("address %d out of range", int(ea))
}

func (ea ErrAddressRange) Is(err error) bool {
	return err == ErrOutOfRange
}

// ErrRegisterRange is a register access outside of the register file.
type ErrRegisterRange int

func (er ErrRegisterRange) Error() string {
	return f("register %d out of range", int(er))
}

func (er ErrRegisterRange) Is(err error) bool {
	return err == ErrOutOfRange
}

// ErrUnknownOpcode is a fetched byte with no dispatch table entry.
type ErrUnknownOpcode uint8

func (eu ErrUnknownOpcode) Error() string {
	return f("Unknown command: %d", uint8(eu))
}

func (eu ErrUnknownOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownOpcode)
	return
}

// ErrAluUnsupported is an ALU operation that is not implemented.
type ErrAluUnsupported AluOp

func (ea ErrAluUnsupported) Error() string {
	return f("unsupported alu operation %v", AluOp(ea).String())
}

func (ea ErrAluUnsupported) Is(err error) (ok bool) {
	_, ok = err.(ErrAluUnsupported)
	return
}

// ErrInstruction locates a failure inside an instruction handler.
type ErrInstruction struct {
	Pc     int
	Opcode Opcode
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("%02x: %v %v", err.Pc, err.Opcode.String(), err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not a binary byte", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid byte expression", string(err))
}
