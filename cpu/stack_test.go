package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.True(cpu.Empty())
	assert.Equal(0, cpu.Depth())

	cpu.Push(0x12)
	assert.False(cpu.Empty())
	assert.Equal(1, cpu.Depth())
	assert.Equal(byte(SP_INIT-1), cpu.Sp())
	assert.Equal(byte(0x12), cpu.Ram[SP_INIT-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xab)

	assert.Equal(byte(0xab), cpu.Pop())
	assert.Equal(1, cpu.Depth())
	assert.Equal(byte(0), cpu.Ram[SP_INIT-2])

	assert.Equal(byte(0x12), cpu.Pop())
	assert.Equal(0, cpu.Depth())
	assert.Equal(byte(0), cpu.Ram[SP_INIT-1])
	assert.True(cpu.Empty())
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xab)

	val, ok := cpu.Peek()
	assert.True(ok)
	assert.Equal(byte(0xab), val)
	assert.Equal(2, cpu.Depth())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	val, ok := cpu.Peek()
	assert.False(ok)
	assert.Equal(byte(0), val)
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REG_SP] = 0

	cpu.Push(0x77)
	assert.Equal(byte(0xff), cpu.Sp())
	assert.Equal(byte(0x77), cpu.Ram[0xff])

	assert.Equal(byte(0x77), cpu.Pop())
	assert.Equal(byte(0), cpu.Sp())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xab)

	cpu.Reset()
	assert.True(cpu.Empty())
	assert.Equal(byte(SP_INIT), cpu.Sp())
}
