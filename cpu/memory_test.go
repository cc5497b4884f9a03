package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	assert.NoError(mem.Write(0, 0x12))
	assert.NoError(mem.Write(MEMORY_SIZE-1, 0x34))

	val, err := mem.Read(0)
	assert.NoError(err)
	assert.Equal(uint8(0x12), val)

	val, err = mem.Read(MEMORY_SIZE - 1)
	assert.NoError(err)
	assert.Equal(uint8(0x34), val)
}

func TestMemory_Write_Truncates(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Write(1, 0x1ff))
	assert.Equal(uint8(0xff), mem[1])

	assert.NoError(mem.Write(2, -1))
	assert.Equal(uint8(0xff), mem[2])
}

func TestMemory_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, address := range []int{-1, MEMORY_SIZE, MEMORY_SIZE + 1} {
		_, err := mem.Read(address)
		assert.ErrorIs(err, ErrOutOfRange, address)
		assert.Equal(ErrAddressRange(address), err)

		err = mem.Write(address, 0)
		assert.ErrorIs(err, ErrOutOfRange, address)
	}
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Load(0x10, []uint8{1, 2, 3}))
	assert.Equal([]uint8{0, 1, 2, 3, 0}, mem[0x0f:0x14])

	assert.NoError(mem.Load(0, nil))

	full := make([]uint8, MEMORY_SIZE)
	assert.NoError(mem.Load(0, full))

	err := mem.Load(1, full)
	assert.ErrorIs(err, ErrOutOfRange)

	err = mem.Load(-1, []uint8{1})
	assert.ErrorIs(err, ErrOutOfRange)
}

func TestRegisters_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	for n := range REGISTER_COUNT {
		assert.NoError(reg.Write(n, n*0x11))
	}

	for n := range REGISTER_COUNT {
		val, err := reg.Read(n)
		assert.NoError(err)
		assert.Equal(uint8(n*0x11), val)
	}

	assert.NoError(reg.Write(0, 256+9))
	assert.Equal(uint8(9), reg[0])
}

func TestRegisters_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	for _, index := range []int{-1, REGISTER_COUNT, 0xff} {
		_, err := reg.Read(index)
		assert.ErrorIs(err, ErrOutOfRange, index)
		assert.Equal(ErrRegisterRange(index), err)

		err = reg.Write(index, 1)
		assert.ErrorIs(err, ErrOutOfRange, index)
	}
}
