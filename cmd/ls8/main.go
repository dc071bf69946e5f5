// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/internal"
)

// notFound reports a missing program file and exits with status 2.
func notFound(path string) {
	fmt.Fprintf(os.Stderr, "%v: %v not found\n", os.Args[0], path)
	os.Exit(2)
}

// errorLine renders err on a single line, separating joined errors by ": ".
func errorLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}

// loadProgram reads a program listing, or assembles it from source.
func loadProgram(emu *emulator.Emulator, path string, assemble bool, verbose bool) (prog *cpu.Program, err error) {
	if !assemble {
		prog, err = cpu.LoadImage(path)
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	prog, err = asm.Parse(inf)
	return
}

// writeOutput writes to a file, or to stdout for "-".
func writeOutput(path string, write func(w io.Writer) error) (err error) {
	if path == "-" {
		return write(os.Stdout)
	}

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = write(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

func main() {
	var assemble bool
	var save string
	var dump bool
	var trace bool
	var verbose bool
	var ticks int
	var list bool

	emu := emulator.NewEmulator()

	flag.BoolVar(&assemble, "a", false, "Assemble the program from .asm source")
	flag.StringVar(&save, "s", "", "Save program listing to file ('-' for stdout), do not execute")
	flag.BoolVar(&dump, "d", false, "Dump program bytes, do not execute")
	flag.BoolVar(&trace, "t", false, "Trace each instruction to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&ticks, "n", 0, "Maximum instructions to execute (0 for no limit)")
	flag.BoolVar(&list, "l", false, "List predefined assembler equates")
	flag.Func("D", "Define an assembler equate as NAME=VALUE", func(arg string) error {
		equ, value, ok := strings.Cut(arg, "=")
		if !ok || len(equ) == 0 {
			return fmt.Errorf("%v: expected NAME=VALUE", arg)
		}
		emu.Define[equ] = value
		return nil
	})

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] program\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if list {
		for equ, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Printf("%v %v\n", equ, value)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)

	prog, err := loadProgram(emu, path, assemble, verbose)
	if errors.Is(err, fs.ErrNotExist) {
		notFound(path)
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if dump {
		err = prog.Dump(os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		return
	}

	if len(save) != 0 {
		err = writeOutput(save, prog.WriteListing)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	emu.Program = prog
	emu.Verbose = verbose
	emu.MaxTicks = ticks
	emu.Cpu.Output = os.Stdout
	if trace {
		emu.Cpu.Tracer = os.Stderr
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			log.Print(emu.Cpu.String())
		}
		log.Fatalf("%v: %v", path, errorLine(err))
	}

	if emu.UnknownOpcode() {
		log.Printf("%v: halted: %v", path, errorLine(emu.Cpu.Reason))
	}
}
