package cpu

// The stack lives in RAM and grows downward from SP_INIT. The stack
// pointer is the value of register REG_SP, used as a RAM address by
// PUSH, POP, CALL and RET alike.

// Sp returns the current stack pointer.
func (cpu *Cpu) Sp() byte {
	return cpu.Register[REG_SP]
}

// Push decrements the stack pointer and stores value at the new top.
func (cpu *Cpu) Push(value byte) {
	cpu.Register[REG_SP]--
	cpu.Ram[cpu.Register[REG_SP]] = value
}

// Pop loads the top of the stack, zeroes the vacated cell, and increments
// the stack pointer.
func (cpu *Cpu) Pop() (value byte) {
	sp := cpu.Register[REG_SP]
	value = cpu.Ram[sp]
	cpu.Ram[sp] = 0
	cpu.Register[REG_SP]++
	return
}

// Peek returns the top of the stack without popping it.
func (cpu *Cpu) Peek() (value byte, ok bool) {
	if cpu.Empty() {
		return
	}

	return cpu.Ram[cpu.Sp()], true
}

// Depth returns the number of bytes pushed since reset.
func (cpu *Cpu) Depth() int {
	return int(SP_INIT) - int(cpu.Sp())
}

// Empty returns true if nothing has been pushed since reset.
func (cpu *Cpu) Empty() bool {
	return cpu.Depth() <= 0
}
