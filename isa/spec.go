// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"maps"
	"slices"
)

// Spec is the static description of one mnemonic.
type Spec struct {
	Arch     Arch     // Owning architecture.
	Mnemonic string   // Source mnemonic.
	Format   Format   // Bit layout.
	Operands Operands // Operand syntax.
	Kind     Kind     // Semantic effect.
	Opcode   uint32   // Major opcode (bits 6:0 RISC-V, bits 31:26 MIPS).
	Funct3   uint32   // RISC-V funct3.
	Funct7   uint32   // RISC-V funct7.
	Funct    uint32   // MIPS R-type funct.
	Width    uint32   // Bytes of program space consumed.
	Pseudo   bool     // Alias or expansion; never produced by decoding.
}

// Key is a reverse-lookup field tuple. Unused positions hold -1.
type Key [3]int64

// Key returns the minimal discriminating field tuple of a Spec.
func (spec *Spec) Key() Key {
	op := int64(spec.Opcode)

	switch spec.Arch {
	case ARCH_RISCV:
		switch spec.Format {
		case FORMAT_R:
			return Key{op, int64(spec.Funct3), int64(spec.Funct7)}
		case FORMAT_I, FORMAT_S, FORMAT_SB:
			return Key{op, int64(spec.Funct3), -1}
		}
	case ARCH_MIPS:
		if spec.Format == FORMAT_R {
			return Key{op, int64(spec.Funct), -1}
		}
	}

	return Key{op, -1, -1}
}

// Table is the immutable instruction table of one architecture.
type Table struct {
	Arch      Arch
	Registers *Registers

	spec    map[string]*Spec
	reverse map[Key]*Spec
}

// newTable indexes a list of specs.
func newTable(arch Arch, regs *Registers, specs []Spec) (tbl *Table) {
	tbl = &Table{
		Arch:      arch,
		Registers: regs,
		spec:      make(map[string]*Spec, len(specs)),
		reverse:   make(map[Key]*Spec, len(specs)),
	}

	for n := range specs {
		spec := &specs[n]
		spec.Arch = arch
		if spec.Width == 0 {
			spec.Width = 4
		}
		tbl.spec[spec.Mnemonic] = spec
		if !spec.Pseudo {
			if _, dup := tbl.reverse[spec.Key()]; dup {
				panic("isa: duplicate reverse key for " + spec.Mnemonic)
			}
			tbl.reverse[spec.Key()] = spec
		}
	}

	return
}

// Lookup returns the Spec of a mnemonic.
func (tbl *Table) Lookup(mnemonic string) (spec *Spec, ok bool) {
	spec, ok = tbl.spec[mnemonic]
	return
}

// Reverse returns the Spec registered under a field tuple.
func (tbl *Table) Reverse(key Key) (spec *Spec, ok bool) {
	spec, ok = tbl.reverse[key]
	return
}

// Width returns the program space consumed by a mnemonic. Unknown mnemonics
// occupy one word.
func (tbl *Table) Width(mnemonic string) uint32 {
	spec, ok := tbl.spec[mnemonic]
	if !ok {
		return 4
	}

	return spec.Width
}

// Mnemonics iterates over all mnemonics in sorted order.
func (tbl *Table) Mnemonics() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(tbl.spec)))
}
