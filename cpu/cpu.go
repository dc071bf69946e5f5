// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/ezrec/ls8/internal"
)

const (
	RAM_SIZE       = 256  // Bytes of RAM.
	REGISTER_COUNT = 8    // General-purpose registers.
	REG_SP         = 7    // Register holding the stack pointer.
	SP_INIT        = 0xf4 // Stack pointer after reset.
)

var _cpu_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%v", RAM_SIZE),
	"SP_INIT":  fmt.Sprintf("0x%02x", SP_INIT),
	"SP":       fmt.Sprintf("R%d", REG_SP),
}

// opcodeDefines yields OP_<mnemonic> equates for every opcode.
func opcodeDefines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for op := range opcodeOperands {
			if !yield("OP_"+op.String(), fmt.Sprintf("0x%02x", byte(op))) {
				return
			}
		}
	}
}

func defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_cpu_defines), opcodeDefines())
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of PRN and MUL output.
	Tracer  io.Writer // If set, receives a trace line before each instruction.

	Ram      [RAM_SIZE]byte       // Main memory.
	Register [REGISTER_COUNT]byte // Register bank. R7 is the stack pointer.
	Pc       byte                 // Program counter.
	Ir       Opcode               // Most recently fetched opcode.
	Flags    Flags                // Condition flags.

	Halted bool  // Set once HLT, an unknown opcode, or an error stops execution.
	Reason error // Why the CPU halted.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a CPU in its reset state, printing to os.Stdout.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output: os.Stdout,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return defines()
}

// Reset the CPU state.
// - Clears RAM, registers, and flags.
// - Sets the stack pointer to SP_INIT.
// - Sets PC to 0 and the CPU to running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Ram[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = SP_INIT
	cpu.Flags = Flags{}
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Halted = false
	cpu.Reason = nil
	cpu.Ticks = 0
}

// Load copies a program image into RAM starting at address 0.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cpu.Ram) {
		err = ErrImageTooLarge
		return
	}

	copy(cpu.Ram[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Read returns the RAM value at addr.
func (cpu *Cpu) Read(addr byte) byte {
	return cpu.Ram[addr]
}

// Write sets the RAM value at addr.
func (cpu *Cpu) Write(addr byte, value byte) {
	cpu.Ram[addr] = value
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "sp",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%02X %v", byte(cpu.Ir), cpu.Ir.String())
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Sp())
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Tick executes a single fetch-decode-execute cycle.
// Returns ErrHalt on HLT, and ErrOpcodeUnknown (joined with the opcode) on
// an unrecognised instruction. Once halted, Tick returns ErrHalted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	if cpu.Tracer != nil {
		cpu.Trace(cpu.Tracer)
	}

	cpu.Ir = Opcode(cpu.Read(cpu.Pc))
	cpu.Ticks++

	err = cpu.Execute(cpu.Ir)

	return
}

// Execute executes a single decoded instruction located at PC.
func (cpu *Cpu) Execute(op Opcode) (err error) {
	pc := cpu.Pc

	defer func() {
		if err == nil {
			return
		}
		if !errors.Is(err, ErrHalt) {
			err = errors.Join(ErrOpcode{Pc: pc, Opcode: op}, err)
		}
		cpu.Halted = true
		cpu.Reason = err
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", pc, Disassemble([]byte{byte(op), cpu.Read(pc + 1), cpu.Read(pc + 2)}))
	}

	if !op.Known() {
		err = ErrOpcodeUnknown
		return
	}

	a := cpu.Read(pc + 1)
	b := cpu.Read(pc + 2)

	args := [2]byte{a, b}
	for n, kind := range op.OperandTypes() {
		if kind == OPERAND_REGISTER && args[n] >= REGISTER_COUNT {
			err = ErrRegisterInvalid
			return
		}
	}

	next_pc := pc + byte(op.Size())

	switch {
	case op.IsAlu():
		err = cpu.Alu(op, a, b)
	case op.SetsPc():
		next_pc = cpu.branch(op, a, next_pc)
	default:
		switch op {
		case HLT:
			err = ErrHalt
			return
		case LDI:
			cpu.Register[a] = b
		case PRN:
			_, err = fmt.Fprintln(cpu.output(), cpu.Register[a])
		case PUSH:
			cpu.Push(cpu.Register[a])
		case POP:
			cpu.Register[a] = cpu.Pop()
		}
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}

// branch returns the PC following a control flow instruction.
func (cpu *Cpu) branch(op Opcode, a byte, next_pc byte) byte {
	switch op {
	case CALL:
		target := cpu.Register[a]
		cpu.Push(next_pc)
		return target
	case RET:
		return cpu.Pop()
	case JMP:
		return cpu.Register[a]
	case JEQ:
		if cpu.Flags.Equal {
			return cpu.Register[a]
		}
	case JNE:
		if !cpu.Flags.Equal {
			return cpu.Register[a]
		}
	}

	return next_pc
}

// output returns the PRN destination, discarding output if none is set.
func (cpu *Cpu) output() io.Writer {
	if cpu.Output == nil {
		return io.Discard
	}
	return cpu.Output
}
