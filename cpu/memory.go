package cpu

const (
	MEMORY_SIZE    = 256  // Size of the memory array, in bytes.
	REGISTER_COUNT = 8    // Number of general-purpose registers.
	STACK_START    = 0xf4 // Initial stack pointer; 0xf4-0xff is stack space.
)

// Memory is the flat byte-addressable memory of the LS-8.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value uint8, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddressRange(address)
		return
	}

	value = mem[address]
	return
}

// Write stores the low 8 bits of value at address.
func (mem *Memory) Write(address int, value int) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddressRange(address)
		return
	}

	mem[address] = uint8(value & 0xff)
	return
}

// Load copies data into memory starting at address.
// Nothing is written if the data does not fit.
func (mem *Memory) Load(address int, data []uint8) (err error) {
	if len(data) == 0 {
		return
	}

	if address < 0 {
		err = ErrAddressRange(address)
		return
	}

	if address+len(data) > len(mem) {
		err = ErrAddressRange(address + len(data) - 1)
		return
	}

	copy(mem[address:], data)
	return
}

// Registers is the general-purpose register file.
type Registers [REGISTER_COUNT]uint8

// Read returns the value of register index.
func (reg *Registers) Read(index int) (value uint8, err error) {
	if index < 0 || index >= len(reg) {
		err = ErrRegisterRange(index)
		return
	}

	value = reg[index]
	return
}

// Write stores the low 8 bits of value into register index.
func (reg *Registers) Write(index int, value int) (err error) {
	if index < 0 || index >= len(reg) {
		err = ErrRegisterRange(index)
		return
	}

	reg[index] = uint8(value & 0xff)
	return
}
