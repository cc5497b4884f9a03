package cpu

// Push decrements SP, then stores value at the new top of stack.
// SP is left untouched if the store fails.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Sp - 1

	err = cpu.Memory.Write(sp, int(value))
	if err != nil {
		return
	}

	cpu.Sp = sp
	return
}

// Pop reads the top of stack, then increments SP.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Memory.Read(cpu.Sp)
	if err != nil {
		return
	}

	cpu.Sp++
	return
}

// Peek returns the top of stack without moving SP.
func (cpu *Cpu) Peek() (value uint8, ok bool) {
	value, err := cpu.Memory.Read(cpu.Sp)
	ok = err == nil && cpu.Sp < STACK_START
	return
}

// Depth returns the number of values pushed below the initial stack pointer.
func (cpu *Cpu) Depth() int {
	return STACK_START - cpu.Sp
}
