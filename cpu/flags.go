package cpu

// Flag register bits, as encoded by Flags.Byte().
const (
	FLAG_EQUAL   = byte(1 << 0)
	FLAG_GREATER = byte(1 << 1)
	FLAG_LESS    = byte(1 << 2)
)

// Flags are the condition flags set by CMP.
type Flags struct {
	Less    bool
	Greater bool
	Equal   bool
}

// Compare sets exactly one flag from the ordering of a and b.
func (fl *Flags) Compare(a, b byte) {
	fl.Less = a < b
	fl.Greater = a > b
	fl.Equal = a == b
}

// Byte returns the flags in the conventional 00000LGE layout.
func (fl Flags) Byte() (value byte) {
	if fl.Less {
		value |= FLAG_LESS
	}
	if fl.Greater {
		value |= FLAG_GREATER
	}
	if fl.Equal {
		value |= FLAG_EQUAL
	}
	return
}

// String returns the flags as "LGE", with clear flags shown as '-'.
func (fl Flags) String() string {
	text := []byte("---")
	if fl.Less {
		text[0] = 'L'
	}
	if fl.Greater {
		text[1] = 'G'
	}
	if fl.Equal {
		text[2] = 'E'
	}
	return string(text)
}
