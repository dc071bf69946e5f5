package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is a source line and the bytes it placed in the image.
type Line struct {
	LineNo int    // Source line number, 1 based.
	Addr   int    // Address of the first byte.
	Text   string // Source text or comment, for listings and diagnostics.
	Bytes  []byte // Bytes generated by the line.
}

// Program is a program image with its source mapping.
type Program struct {
	Lines []Line
}

// Debug locates the byte at an address within its source line.
type Debug struct {
	*Line
	Index int
}

// Debug returns the source line covering addr. Debug.Line is nil if no
// line generated a byte at addr.
func (prog *Program) Debug(addr byte) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(addr) >= line.Addr && int(addr) < line.Addr+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr) - line.Addr,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes covered by the image.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Addr+len(line.Bytes))
	}
	return
}

// Binary returns the image, ready to be loaded at address 0.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for addr, value := range prog.Bytes() {
		bins[addr] = value
	}

	return
}

// Bytes iterates over the address and value of every byte in the image.
func (prog *Program) Bytes() iter.Seq2[byte, byte] {
	return func(yield func(addr byte, value byte) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(byte(line.Addr+n), value) {
					return
				}
			}
		}
	}
}

// WriteListing writes the image in the text format read by ParseImage.
// The source text of each line is attached as a comment to its first byte.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		for n, value := range line.Bytes {
			text := fmt.Sprintf("%08b", value)
			if n == 0 && len(line.Text) != 0 {
				text += " # " + line.Text
			}
			_, err = fmt.Fprintln(w, text)
			if err != nil {
				return
			}
		}
	}

	return
}

// Dump writes each byte of the image in binary and decimal.
func (prog *Program) Dump(w io.Writer) (err error) {
	var sb strings.Builder
	for _, value := range prog.Bytes() {
		fmt.Fprintf(&sb, "%08b: %d\n", value, value)
	}

	_, err = io.WriteString(w, sb.String())
	return
}
