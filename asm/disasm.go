package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/duasm/hexio"
	"github.com/ezrec/duasm/isa"
)

// INVALID_HEX marks a disassembly input line that is not a 32-bit hex word.
const INVALID_HEX = "INVALID HEX FORMAT"

// Disassemble decodes one hex word per non-blank input line.
func Disassemble(tbl *isa.Table, input io.Reader) (lines []string, err error) {
	rd := &hexio.Reader{Input: input}

	for entry := range rd.All() {
		if entry.Err != nil {
			lines = append(lines, fmt.Sprintf("0x%s => %s", entry.Text, INVALID_HEX))
			continue
		}
		digits := strings.ToUpper(hexio.Digits(entry.Text))
		lines = append(lines, fmt.Sprintf("0x%s => %s", digits, tbl.Decode(entry.Word)))
	}

	err = rd.Err()

	return
}
