// Package cpu implements the LS-8 microprocessor, its program image loader
// and assembler.
//
// The CPU consists of 256 bytes of RAM, eight 8-bit general-purpose
// registers (R0-R7, with R7 doubling as the stack pointer), a program
// counter (PC), an instruction register (IR), and the less-than,
// greater-than, and equal flags set by CMP.
//
// Each instruction is one opcode byte followed by zero, one, or two operand
// bytes. The operand count is encoded in the two most significant bits of
// the opcode.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting labels, equates, raw data, and compile-time expression
// evaluation.
package cpu
