package cpu

import (
	"fmt"
	"log"
)

// Alu performs an arithmetic or compare operation on registers a and b.
//   - ADD: a = a + b, wrapping at 8 bits.
//   - MUL: prints a * b in decimal. No register is written.
//   - CMP: sets exactly one of the Less, Greater, or Equal flags.
//
// Any other opcode returns ErrAluUnsupported.
func (cpu *Cpu) Alu(op Opcode, a, b byte) (err error) {
	if a >= REGISTER_COUNT || b >= REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	switch op {
	case ADD:
		cpu.Register[a] += cpu.Register[b]
		if cpu.Verbose {
			log.Printf("alu: r%d = %d", a, cpu.Register[a])
		}
	case MUL:
		product := int(cpu.Register[a]) * int(cpu.Register[b])
		_, err = fmt.Fprintln(cpu.output(), product)
	case CMP:
		cpu.Flags.Compare(cpu.Register[a], cpu.Register[b])
	default:
		err = ErrAluUnsupported
	}

	return
}
