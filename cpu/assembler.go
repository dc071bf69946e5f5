// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	reLabel     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reCharacter = regexp.MustCompile(`'\\?[^']'`)
	reParen     = regexp.MustCompile(`\$\([^\$]*\)`)
)

// link is a byte to be patched with the address of a label.
type link struct {
	line  int // Index into Assembler.Line
	index int // Byte index within the line.
	label string
}

// Assembler is a single pass assembler for the LS-8.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	links []link
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap is a map of register names to register indexes.
var regMap = map[string]byte{
	"R0": 0,
	"R1": 1,
	"R2": 2,
	"R3": 3,
	"R4": 4,
	"R5": 5,
	"R6": 6,
	"R7": 7,
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// byteOf returns a word as a byte, accepting -128..255.
func (asm *Assembler) byteOf(word string) (value byte, err error) {
	v64, err := asm.valueOf(word)
	if err != nil {
		return
	}

	if v64 < -128 || v64 > 0xff {
		err = ErrParseNumber(word)
		return
	}

	value = byte(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v64 int64
		v64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	err = nil
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// currentAddr gets the address of the next generated byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Line) == 0 {
		return 0
	}

	last := asm.Line[len(asm.Line)-1]

	return last.Addr + len(last.Bytes)
}

// splitWords splits a line on spaces, tabs and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// cutComment removes a ';' or '#' comment, ignoring either inside a
// character literal.
func cutComment(text string) string {
	quoted := reCharacter.FindAllStringIndex(text, -1)
	for n, r := range text {
		if r != ';' && r != '#' {
			continue
		}
		inside := slices.ContainsFunc(quoted, func(span []int) bool {
			return n > span[0] && n < span[1]-1
		})
		if !inside {
			return text[:n]
		}
	}

	return text
}

// parseLine expands a single line into words, handling equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	asm.links = asm.links[:0]
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range defines() {
		asm.Equate[attr] = val
	}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(cutComment(text))

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.currentAddr() > RAM_SIZE {
		err = ErrImageTooLarge
		return
	}

	// Final linking of labels.
	for _, ln := range asm.links {
		addr, ok := asm.Label[ln.label]
		if !ok {
			lineno = asm.Line[ln.line].LineNo
			line = asm.Line[ln.line].Text
			err = ErrLabelMissing(ln.label)
			return
		}
		asm.Line[ln.line].Bytes[ln.index] = byte(addr)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Line),
	}

	return
}

// register parses a register operand.
func (asm *Assembler) register(word string) (reg byte, err error) {
	reg, ok := regMap[strings.ToUpper(word)]
	if !ok {
		err = ErrParseRegister(word)
		return
	}

	return
}

// immediate parses a literal operand. Labels are linked after parsing.
func (asm *Assembler) immediate(word string, index int) (value byte, err error) {
	if reLabel.MatchString(word) {
		asm.links = append(asm.links, link{line: len(asm.Line), index: index, label: word})
		return
	}

	value, err = asm.byteOf(word)
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int, text string) (err error) {
	var bytes []byte

	// no-op
	if len(words) == 0 {
		return
	}

	defer func() {
		if err != nil || len(bytes) == 0 {
			return
		}
		line := Line{LineNo: lineno, Addr: asm.currentAddr(), Text: text, Bytes: bytes}
		asm.Line = append(asm.Line, line)
	}()

	// .db VALUE...
	if strings.EqualFold(words[0], ".db") {
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		for n, word := range words[1:] {
			var value byte
			value, err = asm.immediate(word, n)
			if err != nil {
				return
			}
			bytes = append(bytes, value)
		}
		return
	}

	op, ok := LookupOpcode(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	kinds := op.OperandTypes()
	if len(args) < len(kinds) {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > len(kinds) {
		err = ErrOpcodeExtraArgs
		return
	}

	bytes = append(bytes, byte(op))
	for n, kind := range kinds {
		var value byte
		switch kind {
		case OPERAND_REGISTER:
			value, err = asm.register(args[n])
		case OPERAND_IMMEDIATE:
			value, err = asm.immediate(args[n], n+1)
		}
		if err != nil {
			return
		}
		bytes = append(bytes, value)
	}

	return
}
