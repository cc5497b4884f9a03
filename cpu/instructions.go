package cpu

// Instructions is the dispatch table of the LS-8.
// Adding an opcode is adding an entry here.
var Instructions = map[Opcode]Instruction{
	OP_HLT:  {"HLT", 0, opHlt},
	OP_LDI:  {"LDI", 2, opLdi},
	OP_PRN:  {"PRN", 1, opPrn},
	OP_MUL:  {"MUL", 2, opMul},
	OP_POP:  {"POP", 1, opPop},
	OP_PUSH: {"PUSH", 1, opPush},
}

// opHlt stops the run loop, leaving the PC on the HLT.
func opHlt(cpu *Cpu, a, b uint8) (res Result, err error) {
	return Result{Advance: 0, Running: false}, nil
}

// opLdi sets register a to the immediate b.
func opLdi(cpu *Cpu, a, b uint8) (res Result, err error) {
	err = cpu.Register.Write(int(a), int(b))
	if err != nil {
		return
	}

	return Result{Advance: 3, Running: true}, nil
}

// opPrn sends register a to the output channel.
func opPrn(cpu *Cpu, a, b uint8) (res Result, err error) {
	value, err := cpu.Register.Read(int(a))
	if err != nil {
		return
	}

	if cpu.Output == nil {
		err = ErrChannelInvalid
		return
	}

	err = cpu.Output.Send(value)
	if err != nil {
		return
	}

	return Result{Advance: 2, Running: true}, nil
}

// opMul multiplies register a by register b, through the ALU.
func opMul(cpu *Cpu, a, b uint8) (res Result, err error) {
	_, err = cpu.Alu(ALU_OP_MUL, a, b)
	if err != nil {
		return
	}

	return Result{Advance: 3, Running: true}, nil
}

// opPop pops the top of the stack into register a.
func opPop(cpu *Cpu, a, b uint8) (res Result, err error) {
	if int(a) >= REGISTER_COUNT {
		err = ErrRegisterRange(a)
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Register[a] = value

	return Result{Advance: 2, Running: true}, nil
}

// opPush pushes register a onto the stack.
func opPush(cpu *Cpu, a, b uint8) (res Result, err error) {
	value, err := cpu.Register.Read(int(a))
	if err != nil {
		return
	}

	err = cpu.Push(value)
	if err != nil {
		return
	}

	return Result{Advance: 2, Running: true}, nil
}
