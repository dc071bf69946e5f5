// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs LS-8 programs and maps runtime errors back to the
// program source.
package emulator

import (
	"errors"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
)

// Emulator state. CPU + loaded program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	MaxTicks int          // If non-zero, the most instructions a run may execute.

	Define map[string]string // User supplied assembler equates.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Define:  map[string]string{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		maps.All(emu.Define),
	)
}

// Reset the CPU and load the program image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Binary())
	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU halts, either from HLT or an unknown opcode.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Addr: addr, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	switch {
	case err == nil:
	case errors.Is(err, cpu.ErrHalt), errors.Is(err, cpu.ErrHalted):
		err = nil
		done = true
	case errors.Is(err, cpu.ErrOpcodeUnknown):
		if emu.Verbose {
			log.Printf("emulator: line %d: %v", lineno, err)
		}
		err = nil
		done = true
	}

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

// UnknownOpcode returns true if the last run halted on an unrecognised
// instruction.
func (emu *Emulator) UnknownOpcode() bool {
	return emu.Cpu.Halted && errors.Is(emu.Cpu.Reason, cpu.ErrOpcodeUnknown)
}
