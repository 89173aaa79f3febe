package hexio

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Entry is one non-blank line of a hex word source.
type Entry struct {
	LineNo int    // Source line number, from 1.
	Text   string // Trimmed line text.
	Word   uint32 // Parsed word, if Err is nil.
	Err    error  // ErrInvalidHex if the text is not a 32-bit hex word.
}

// Reader reads hex words, one per line, from an io.Reader.
type Reader struct {
	Input io.Reader

	err error
}

// ParseWord parses a hex word, with or without a 0x prefix.
func ParseWord(text string) (word uint32, err error) {
	digits := Digits(text)
	if len(digits) == 0 {
		err = ErrInvalidHex
		return
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		err = ErrInvalidHex
		return
	}

	word = uint32(value)

	return
}

// Digits returns text without its 0x prefix.
func Digits(text string) string {
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return text[2:]
	}
	return text
}

// All returns an iterator over the non-blank lines of the input.
// Blank lines are skipped but still counted.
func (rd *Reader) All() iter.Seq[Entry] {
	return func(yield func(entry Entry) bool) {
		scanner := bufio.NewScanner(rd.Input)
		var lineno int
		for scanner.Scan() {
			lineno++
			text := strings.TrimSpace(scanner.Text())
			if len(text) == 0 {
				continue
			}
			entry := Entry{LineNo: lineno, Text: text}
			entry.Word, entry.Err = ParseWord(text)
			if !yield(entry) {
				return
			}
		}
		rd.err = scanner.Err()
	}
}

// Err returns the first read error seen by All, if any.
func (rd *Reader) Err() error {
	return rd.err
}
