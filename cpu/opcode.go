package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an LS-8 instruction byte.
type Opcode byte

//go:generate go tool stringer -type=Opcode
const (
	HLT  = Opcode(0b00000001) // Halt.
	RET  = Opcode(0b00010001) // Return from subroutine.
	PUSH = Opcode(0b01000101) // Push register.
	POP  = Opcode(0b01000110) // Pop register.
	PRN  = Opcode(0b01000111) // Print register.
	CALL = Opcode(0b01010000) // Call subroutine at register.
	JMP  = Opcode(0b01010100) // Jump to register.
	JEQ  = Opcode(0b01010101) // Jump to register if equal.
	JNE  = Opcode(0b01010110) // Jump to register if not equal.
	LDI  = Opcode(0b10000010) // Load immediate.
	ADD  = Opcode(0b10100000) // Add registers.
	MUL  = Opcode(0b10100010) // Print product of registers.
	CMP  = Opcode(0b10100111) // Compare registers.
)

// Instruction byte layout: AABCDDDD
//   - AA:   operand count
//   - B:    ALU operation
//   - C:    sets PC
//   - DDDD: instruction identifier
const (
	OPCODE_OPERANDS_SHIFT = 6
	OPCODE_ALU            = Opcode(1 << 5)
	OPCODE_SETS_PC        = Opcode(1 << 4)
)

// OperandType is the interpretation of an operand byte.
type OperandType int

const (
	OPERAND_REGISTER  = OperandType(0) // Register index.
	OPERAND_IMMEDIATE = OperandType(1) // Literal value.
)

// opcodeOperands lists the operand types of every known opcode.
var opcodeOperands = map[Opcode][]OperandType{
	HLT:  nil,
	RET:  nil,
	PUSH: {OPERAND_REGISTER},
	POP:  {OPERAND_REGISTER},
	PRN:  {OPERAND_REGISTER},
	CALL: {OPERAND_REGISTER},
	JMP:  {OPERAND_REGISTER},
	JEQ:  {OPERAND_REGISTER},
	JNE:  {OPERAND_REGISTER},
	LDI:  {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	ADD:  {OPERAND_REGISTER, OPERAND_REGISTER},
	MUL:  {OPERAND_REGISTER, OPERAND_REGISTER},
	CMP:  {OPERAND_REGISTER, OPERAND_REGISTER},
}

// mnemonicMap maps assembler mnemonics to opcodes.
var mnemonicMap map[string]Opcode

func init() {
	mnemonicMap = make(map[string]Opcode, len(opcodeOperands))
	for op := range opcodeOperands {
		mnemonicMap[op.String()] = op
	}
}

// LookupOpcode returns the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[strings.ToUpper(mnemonic)]
	return
}

// Known returns true if the opcode is part of the implemented instruction set.
func (op Opcode) Known() bool {
	_, ok := opcodeOperands[op]
	return ok
}

// Operands returns the number of operand bytes that follow the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// OperandTypes returns how each operand of a known opcode is interpreted.
func (op Opcode) OperandTypes() []OperandType {
	return opcodeOperands[op]
}

// Size returns the length of the instruction in bytes.
func (op Opcode) Size() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the opcode is dispatched to the ALU.
func (op Opcode) IsAlu() bool {
	return op&OPCODE_ALU != 0
}

// SetsPc returns true if the opcode may set the program counter itself.
func (op Opcode) SetsPc() bool {
	return op&OPCODE_SETS_PC != 0
}

// Disassemble renders the instruction at the start of code.
func Disassemble(code []byte) (text string) {
	if len(code) == 0 {
		return
	}

	op := Opcode(code[0])
	if !op.Known() {
		return fmt.Sprintf(".db 0x%02x", code[0])
	}

	words := []string{op.String()}
	for n, kind := range op.OperandTypes() {
		if n+1 >= len(code) {
			words = append(words, "?")
			continue
		}
		arg := code[n+1]
		switch kind {
		case OPERAND_REGISTER:
			words = append(words, fmt.Sprintf("R%d", arg))
		case OPERAND_IMMEDIATE:
			words = append(words, fmt.Sprintf("%d", arg))
		}
	}

	text = words[0]
	if len(words) > 1 {
		text += " " + strings.Join(words[1:], ", ")
	}

	return
}
