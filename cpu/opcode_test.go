package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Opcode
		name     string
		operands int
		alu      bool
		setsPc   bool
	}){
		{HLT, "HLT", 0, false, false},
		{RET, "RET", 0, false, true},
		{PUSH, "PUSH", 1, false, false},
		{POP, "POP", 1, false, false},
		{PRN, "PRN", 1, false, false},
		{CALL, "CALL", 1, false, true},
		{JMP, "JMP", 1, false, true},
		{JEQ, "JEQ", 1, false, true},
		{JNE, "JNE", 1, false, true},
		{LDI, "LDI", 2, false, false},
		{ADD, "ADD", 2, true, false},
		{MUL, "MUL", 2, true, false},
		{CMP, "CMP", 2, true, false},
	}

	assert.Equal(len(opcodeOperands), len(table))

	for _, entry := range table {
		assert.True(entry.op.Known(), entry.name)
		assert.Equal(entry.name, entry.op.String())
		assert.Equal(entry.operands, entry.op.Operands(), entry.name)
		assert.Equal(entry.operands, len(entry.op.OperandTypes()), entry.name)
		assert.Equal(entry.operands+1, entry.op.Size(), entry.name)
		assert.Equal(entry.alu, entry.op.IsAlu(), entry.name)
		assert.Equal(entry.setsPc, entry.op.SetsPc(), entry.name)

		op, ok := LookupOpcode(entry.name)
		assert.True(ok)
		assert.Equal(entry.op, op)
	}
}

func TestOpcodeUnknown(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []byte{0x00, 0x02, 0xff, 0xa1} {
		op := Opcode(value)
		assert.False(op.Known())
		assert.Nil(op.OperandTypes())
	}

	assert.Equal("Opcode(255)", Opcode(0xff).String())

	_, ok := LookupOpcode("NOP")
	assert.False(ok)
}

func TestLookupOpcodeCase(t *testing.T) {
	assert := assert.New(t)

	op, ok := LookupOpcode("ldi")
	assert.True(ok)
	assert.Equal(LDI, op)

	op, ok = LookupOpcode("Push")
	assert.True(ok)
	assert.Equal(PUSH, op)
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code []byte
		text string
	}){
		{nil, ""},
		{[]byte{0x01}, "HLT"},
		{[]byte{0x82, 0x00, 0x08}, "LDI R0, 8"},
		{[]byte{0x47, 0x03}, "PRN R3"},
		{[]byte{0xa7, 0x01, 0x02}, "CMP R1, R2"},
		{[]byte{0xa2, 0x01}, "MUL R1, ?"},
		{[]byte{0xff, 0x01}, ".db 0xff"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, Disassemble(entry.code))
	}
}
