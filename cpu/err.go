package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt            = errors.New(f("halt"))
	ErrHalted          = errors.New(f("halted"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrAluUnsupported  = errors.New(f("unsupported alu operation"))

	// Image errors
	ErrImageTooLarge = errors.New(f("image too large"))
	ErrParseBinary   = errors.New(f("not a binary literal"))
	ErrParseByte     = errors.New(f("value exceeds one byte"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcode identifies the instruction that failed.
type ErrOpcode struct {
	Pc     byte
	Opcode Opcode
}

func (eo ErrOpcode) Error() string {
	return f("pc 0x%02x opcode 0x%02x %v", eo.Pc, byte(eo.Opcode), eo.Opcode.String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
