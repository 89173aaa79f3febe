// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strings"
)

// Arch selects an instruction set.
type Arch int

const (
	ARCH_RISCV = Arch(0) // RISC-V (RV32I subset plus mul)
	ARCH_MIPS  = Arch(1) // MIPS I subset
)

var archNames = map[string]Arch{
	"riscv":  ARCH_RISCV,
	"risc-v": ARCH_RISCV,
	"rv32":   ARCH_RISCV,
	"rv32i":  ARCH_RISCV,
	"mips":   ARCH_MIPS,
}

// ParseArch parses an architecture name, ignoring case.
func ParseArch(name string) (arch Arch, err error) {
	arch, ok := archNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		err = ErrArchUnknown
	}

	return
}

// String returns the display name of the architecture.
func (arch Arch) String() string {
	switch arch {
	case ARCH_RISCV:
		return "RISC-V"
	case ARCH_MIPS:
		return "MIPS"
	}

	return "unknown"
}

// Table returns the immutable instruction table for the architecture.
func (arch Arch) Table() *Table {
	switch arch {
	case ARCH_MIPS:
		return mipsTable
	default:
		return riscvTable
	}
}
