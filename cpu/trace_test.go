package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Load([]byte{byte(LDI), 0, 8, byte(HLT)}))

	out := &bytes.Buffer{}
	cpu.Trace(out)
	assert.Equal("TRACE: 00 | 82 00 08 | 00 00 00 00 00 00 00 F4\n", out.String())
}

func TestTraceWrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Pc = 0xff
	cpu.Ram[0xff] = 0xaa
	cpu.Ram[0x00] = 0xbb
	cpu.Ram[0x01] = 0xcc

	out := &bytes.Buffer{}
	cpu.Trace(out)
	assert.True(strings.HasPrefix(out.String(), "TRACE: FF | AA BB CC |"))
}

func TestTracer(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	out := &bytes.Buffer{}
	cpu.Tracer = out
	cpu.Output = &bytes.Buffer{}
	assert.NoError(cpu.Load([]byte{byte(LDI), 0, 8, byte(PRN), 0, byte(HLT)}))

	for cpu.Tick() == nil {
	}

	assert.Equal([]string{
		"TRACE: 00 | 82 00 08 | 00 00 00 00 00 00 00 F4",
		"TRACE: 03 | 47 00 01 | 08 00 00 00 00 00 00 F4",
		"TRACE: 05 | 01 00 00 | 08 00 00 00 00 00 00 F4",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}
