package asm

import (
	"fmt"
	"strings"
)

// Record is the outcome of assembling a single source line.
type Record struct {
	LineNo  int      // Source line number, from 1.
	Source  string   // Trimmed source text, comments included.
	Address uint32   // Address the line was encoded and run at.
	Words   []uint32 // Encoded words, nil on error.
	NextPC  uint32   // Program counter after simulation.
	Err     error    // Line error, if any.
}

// String renders the record as a listing line.
func (rec Record) String() string {
	if rec.Err != nil {
		return fmt.Sprintf("%s => ERROR: %v", rec.Source, rec.Err)
	}

	hex := make([]string, len(rec.Words))
	for n, word := range rec.Words {
		hex[n] = fmt.Sprintf("0x%08x", word)
	}

	return fmt.Sprintf("%s => %s", rec.Source, strings.Join(hex, "; "))
}

// LineErr returns the record error located at its source line, or nil.
func (rec Record) LineErr() error {
	if rec.Err == nil {
		return nil
	}

	return ErrLine{LineNo: rec.LineNo, Line: rec.Source, Err: rec.Err}
}
