// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/duasm/isa"
)

// Registers is the 32 entry register file, by canonical index.
type Registers [isa.REGISTER_COUNT]uint32

// Signed returns a register interpreted as a signed value.
func (regs *Registers) Signed(index int) int32 {
	return int32(regs[index])
}

// Memory is a sparse word-addressed memory. Missing words read as zero.
type Memory map[uint32]uint32

// Load returns the word at addr.
func (mem Memory) Load(addr uint32) uint32 {
	return mem[addr]
}

// Store returns a copy of the memory with the word at addr set.
func (mem Memory) Store(addr uint32, value uint32) (next Memory) {
	next = make(Memory, len(mem)+1)
	maps.Copy(next, mem)
	next[addr] = value
	return
}

// All returns the stored words by ascending address.
func (mem Memory) All() iter.Seq2[uint32, uint32] {
	return func(yield func(addr uint32, value uint32) bool) {
		for _, addr := range slices.Sorted(maps.Keys(mem)) {
			if !yield(addr, mem[addr]) {
				return
			}
		}
	}
}

// State is the complete machine state between steps.
type State struct {
	Regs Registers
	Mem  Memory
	PC   uint32
}

// Changed returns the indexes of the registers that differ between two states.
func (st State) Changed(other State) iter.Seq[int] {
	return func(yield func(index int) bool) {
		for n := range st.Regs {
			if st.Regs[n] != other.Regs[n] {
				if !yield(n) {
					return
				}
			}
		}
	}
}
