package isa

import (
	"fmt"
)

// REGISTER_COUNT is the size of the register file on both architectures.
const REGISTER_COUNT = 32

// Registers maps symbolic register names to canonical indexes and back.
type Registers struct {
	fallback string                 // Prefix for indexes without a name.
	name     [REGISTER_COUNT]string // Canonical names by index.
	index    map[string]int         // Canonical names and aliases.
}

// newRegisters builds a name table from canonical names and extra aliases.
func newRegisters(fallback string, names [REGISTER_COUNT]string, aliases map[string]int) (regs *Registers) {
	regs = &Registers{
		fallback: fallback,
		name:     names,
		index:    make(map[string]int, len(names)+len(aliases)),
	}

	for n, name := range names {
		if len(name) != 0 {
			regs.index[name] = n
		}
	}
	for alias, n := range aliases {
		regs.index[alias] = n
	}

	return
}

// Index returns the canonical index of a register name or alias.
func (regs *Registers) Index(name string) (index int, ok bool) {
	index, ok = regs.index[name]
	return
}

// Name returns the canonical name of a register index.
func (regs *Registers) Name(index int) string {
	if index >= 0 && index < REGISTER_COUNT && len(regs.name[index]) != 0 {
		return regs.name[index]
	}

	return fmt.Sprintf("%s%d", regs.fallback, index)
}

var riscvRegisters = func() *Registers {
	var names [REGISTER_COUNT]string
	for n := range names {
		names[n] = fmt.Sprintf("x%d", n)
	}

	abi := []string{
		"zero", "ra", "sp", "gp", "tp",
		"t0", "t1", "t2",
		"s0", "s1",
		"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
		"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
		"t3", "t4", "t5", "t6",
	}
	aliases := make(map[string]int, len(abi)+1)
	for n, name := range abi {
		aliases[name] = n
	}
	aliases["fp"] = 8

	return newRegisters("x", names, aliases)
}()

var mipsRegisters = func() *Registers {
	names := [REGISTER_COUNT]string{
		"$zero", "$at", "$v0", "$v1",
		"$a0", "$a1", "$a2", "$a3",
		"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
		"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
		"$t8", "$t9", "$k0", "$k1",
		"$gp", "$sp", "$fp", "$ra",
	}

	aliases := make(map[string]int, REGISTER_COUNT)
	for n := range REGISTER_COUNT {
		aliases[fmt.Sprintf("$%d", n)] = n
	}

	return newRegisters("$", names, aliases)
}()
