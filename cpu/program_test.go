package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{LineNo: 1, Address: 0, Text: "10000010", Value: 0b10000010},
			{LineNo: 2, Address: 1, Text: "00000000", Value: 0},
			{LineNo: 4, Address: 2, Text: "00001000", Value: 8},
		},
	}

	line, ok := prog.Debug(0)
	assert.True(ok)
	assert.Equal(1, line.LineNo)

	line, ok = prog.Debug(2)
	assert.True(ok)
	assert.Equal(4, line.LineNo)
	assert.Equal(uint8(8), line.Value)

	_, ok = prog.Debug(3)
	assert.False(ok)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{LineNo: 1, Address: 0, Value: 1},
			{LineNo: 2, Address: 1, Value: 2},
			{LineNo: 3, Address: 3, Value: 4},
		},
	}

	assert.Equal([]uint8{1, 2, 0, 4}, prog.Binary())
	assert.Nil((&Program{}).Binary())
}

func TestProgram_Bytes_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{Address: 0, Value: 1},
			{Address: 1, Value: 2},
		},
	}

	count := 0
	for range prog.Bytes() {
		count++
		break
	}
	assert.Equal(1, count)
}
