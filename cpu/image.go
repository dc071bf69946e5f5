package cpu

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadImage reads a program image listing from a file.
// A missing file returns an error matching fs.ErrNotExist.
func LoadImage(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = ParseImage(inf)
	return
}

// ParseImage parses a program image listing.
//   - Text after the first '#' on a line is a comment.
//   - Blank lines are skipped and do not consume an address.
//   - Every other line is one byte, written as a binary literal.
func ParseImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	prog = &Program{}

	addr := 0
	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		word, comment, _ := strings.Cut(text, "#")
		word = strings.TrimSpace(word)
		if len(word) == 0 {
			continue
		}

		if addr >= RAM_SIZE {
			err = ErrImageTooLarge
			return
		}

		var value byte
		value, err = parseBinary(word)
		if err != nil {
			return
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo: lineno,
			Addr:   addr,
			Text:   strings.TrimSpace(comment),
			Bytes:  []byte{value},
		})
		addr++
	}

	err = scanner.Err()
	return
}

// parseBinary parses a single byte written in base 2, with an optional 0b
// prefix.
func parseBinary(word string) (value byte, err error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(word, "0b"), "0B")

	v64, err := strconv.ParseUint(digits, 2, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = errors.Join(ErrParseByte, ErrParseNumber(word))
		} else {
			err = errors.Join(ErrParseBinary, ErrParseNumber(word))
		}
		return
	}

	value = byte(v64)
	return
}
