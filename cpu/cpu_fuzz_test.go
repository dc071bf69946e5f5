package cpu

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for op := range opcodeOperands {
		f.Add(byte(op), byte(0), byte(1), byte(0x20), byte(0x30), false)
		f.Add(byte(op), byte(1), byte(0), byte(0x30), byte(0x30), true)
		f.Add(byte(op), byte(7), byte(9), byte(0xff), byte(0x00), true)
	}
	f.Add(byte(0), byte(0), byte(0), byte(0), byte(0), false)
	f.Add(byte(0xff), byte(0xff), byte(0xff), byte(0xff), byte(0xff), true)

	f.Fuzz(func(t *testing.T, opcode byte, arg_a byte, arg_b byte, r0 byte, r1 byte, equal bool) {
		assert := assert.New(t)

		op := Opcode(opcode)

		cpu := NewCpu()
		out := &bytes.Buffer{}
		cpu.Output = out

		const pc = byte(0x10)
		cpu.Pc = pc
		cpu.Ram[pc] = opcode
		cpu.Ram[pc+1] = arg_a
		cpu.Ram[pc+2] = arg_b
		cpu.Register[0] = r0
		cpu.Register[1] = r1
		cpu.Flags.Equal = equal

		prior := cpu.Register

		err := cpu.Tick()

		assert.Equal(op, cpu.Ir)
		assert.Equal(err != nil, cpu.Halted)

		invalid := false
		args := [2]byte{arg_a, arg_b}
		for n, kind := range op.OperandTypes() {
			if kind == OPERAND_REGISTER && args[n] >= REGISTER_COUNT {
				invalid = true
			}
		}

		switch {
		case !op.Known():
			assert.ErrorIs(err, ErrOpcodeUnknown)
			assert.Equal(pc, cpu.Pc)
			assert.Equal(prior, cpu.Register)
		case op == HLT:
			assert.ErrorIs(err, ErrHalt)
			assert.Equal(pc, cpu.Pc)
		case invalid:
			assert.ErrorIs(err, ErrRegisterInvalid)
			assert.Equal(pc, cpu.Pc)
			assert.Equal(prior, cpu.Register)
		default:
			assert.NoError(err)
			if !op.SetsPc() {
				assert.Equal(pc+byte(op.Size()), cpu.Pc)
			}
		}

		if err != nil {
			return
		}

		switch op {
		case LDI:
			assert.Equal(arg_b, cpu.Register[arg_a])
		case PRN:
			assert.Equal(fmt.Sprintf("%d\n", prior[arg_a]), out.String())
		case MUL:
			assert.Equal(fmt.Sprintf("%d\n", int(prior[arg_a])*int(prior[arg_b])), out.String())
			assert.Equal(prior, cpu.Register)
		case ADD:
			assert.Equal(prior[arg_a]+prior[arg_b], cpu.Register[arg_a])
		case CMP:
			assert.Equal(prior[arg_a] < prior[arg_b], cpu.Flags.Less)
			assert.Equal(prior[arg_a] > prior[arg_b], cpu.Flags.Greater)
			assert.Equal(prior[arg_a] == prior[arg_b], cpu.Flags.Equal)
		case PUSH:
			assert.Equal(byte(SP_INIT-1), cpu.Sp())
			assert.Equal(prior[arg_a], cpu.Ram[SP_INIT-1])
		case POP:
			assert.Equal(cpu.Ram[SP_INIT], byte(0))
			if arg_a != REG_SP {
				assert.Equal(byte(SP_INIT+1), cpu.Sp())
			}
		case CALL:
			assert.Equal(prior[arg_a], cpu.Pc)
			assert.Equal(pc+2, cpu.Ram[SP_INIT-1])
		case RET:
			assert.Equal(byte(0), cpu.Pc)
			assert.Equal(byte(SP_INIT+1), cpu.Sp())
		case JMP:
			assert.Equal(prior[arg_a], cpu.Pc)
		case JEQ:
			if equal {
				assert.Equal(prior[arg_a], cpu.Pc)
			} else {
				assert.Equal(pc+2, cpu.Pc)
			}
		case JNE:
			if !equal {
				assert.Equal(prior[arg_a], cpu.Pc)
			} else {
				assert.Equal(pc+2, cpu.Pc)
			}
		}
	})
}
