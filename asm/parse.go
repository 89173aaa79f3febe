// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"regexp"
	"strings"

	"github.com/ezrec/duasm/isa"
)

// Line is a parsed line of assembly text.
type Line struct {
	Labels []string // Labels defined on the line, in order.
	Tokens []string // Mnemonic and operands, nil if there is no instruction.
}

// memPattern matches `mnemonic reg, imm(base)`.
var memPattern = regexp.MustCompile(`^(\w+)\s+([^,\s]+)\s*,\s*([^(\s]+)\s*\(\s*([^)\s]+)\s*\)$`)

// jPattern matches the RISC-V `j label` alias.
var jPattern = regexp.MustCompile(`^j\s+(\S+)$`)

// memMnemonics lists the mnemonics that take a memory operand.
var memMnemonics = map[isa.Arch]map[string]bool{
	isa.ARCH_RISCV: {"lw": true, "sw": true, "jalr": true},
	isa.ARCH_MIPS:  {"lw": true, "sw": true},
}

// stripComment removes everything from the first '#', and surrounding space.
func stripComment(text string) string {
	code, _, _ := strings.Cut(text, "#")
	return strings.TrimSpace(code)
}

// ParseLine splits a line of assembly text into its labels and tokens.
//
// Memory operands are reordered to [mnemonic, reg, base, imm], and the
// RISC-V `j label` becomes [jal, x0, label].
func ParseLine(arch isa.Arch, text string) (line Line) {
	code := stripComment(text)
	if len(code) == 0 {
		return
	}

	for {
		label, rest, ok := strings.Cut(code, ":")
		if !ok {
			break
		}
		line.Labels = append(line.Labels, strings.TrimSpace(label))
		code = strings.TrimSpace(rest)
		if len(code) == 0 {
			return
		}
	}

	if match := memPattern.FindStringSubmatch(code); match != nil && memMnemonics[arch][match[1]] {
		line.Tokens = []string{match[1], match[2], match[4], match[3]}
		return
	}

	if arch == isa.ARCH_RISCV {
		if match := jPattern.FindStringSubmatch(code); match != nil {
			line.Tokens = []string{"jal", "x0", match[1]}
			return
		}
	}

	line.Tokens = strings.Fields(strings.ReplaceAll(code, ",", " "))

	return
}
