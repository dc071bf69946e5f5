package cpu

import (
	"fmt"
	"io"
	"strings"
)

// Trace writes the PC, the next three bytes of RAM, and every register in
// hexadecimal on a single line.
func (cpu *Cpu) Trace(w io.Writer) {
	var sb strings.Builder

	pc := cpu.Pc
	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |", pc, cpu.Read(pc), cpu.Read(pc+1), cpu.Read(pc+2))

	for _, reg := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", reg)
	}

	sb.WriteByte('\n')

	io.WriteString(w, sb.String())
}
