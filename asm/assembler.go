// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/duasm/isa"
	"github.com/ezrec/duasm/sim"
)

// Assembler is a two pass assembler and execution tracer for a single
// instruction table.
type Assembler struct {
	Verbose      bool       // If set, verbosely logs the assembler actions.
	Table        *isa.Table // Instruction table. Defaults to RISC-V.
	HardwireZero bool       // If set, register 0 always reads as zero.
}

// table returns the instruction table in use.
func (asm *Assembler) table() *isa.Table {
	if asm.Table == nil {
		return isa.ARCH_RISCV.Table()
	}
	return asm.Table
}

// Labels runs the layout pass over the source lines, returning the address
// of every label. A repeated label binds to its later address.
func (asm *Assembler) Labels(lines []string) (labels map[string]uint32) {
	tbl := asm.table()

	labels = make(map[string]uint32, 16)

	var pc uint32
	for _, text := range lines {
		line := ParseLine(tbl.Arch, text)
		for _, label := range line.Labels {
			if len(label) > 0 {
				labels[label] = pc
			}
		}
		if line.Tokens != nil {
			pc += tbl.Width(line.Tokens[0])
		}
	}

	return
}

// ReadLines collects every line of input.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()

	return
}

// Assemble reads assembly source, then assembles and simulates it.
// The only error returned is a read error from input; per-line errors are
// carried in the result records.
func (asm *Assembler) Assemble(input io.Reader) (result *Result, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	result = asm.AssembleLines(lines)

	return
}

// AssembleLines assembles and simulates source lines. Each line is visited
// once, in order, at the pc left by the previous line: a taken jump moves
// the pc of every following line.
func (asm *Assembler) AssembleLines(lines []string) (result *Result) {
	tbl := asm.table()
	cfg := sim.Config{HardwireZero: asm.HardwireZero}
	bd := &binder{table: tbl, labels: asm.Labels(lines)}

	result = &Result{
		Table:  tbl,
		Labels: bd.labels,
	}

	var state sim.State
	var pc uint32
	for n, text := range lines {
		lineno := n + 1

		code := stripComment(text)
		line := ParseLine(tbl.Arch, code)
		if line.Tokens == nil {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		width := tbl.Width(line.Tokens[0])
		rec := Record{
			LineNo:  lineno,
			Source:  strings.TrimSpace(text),
			Address: pc,
			NextPC:  pc + width,
		}

		state.PC = pc
		next, err := asm.step(cfg, bd, state, code)
		if err != nil {
			if asm.Verbose {
				log.Printf("%v: %v\n", lineno, err)
			}
			rec.Err = err
		} else {
			rec.Words = next.words
			rec.NextPC = next.state.PC
			state = next.state
		}

		result.Records = append(result.Records, rec)
		pc = rec.NextPC
	}

	state.PC = pc
	result.State = state

	return
}

// stepped is the outcome of a successful line.
type stepped struct {
	words []uint32
	state sim.State
}

// step evaluates, binds, encodes and simulates one line of code at st.PC.
func (asm *Assembler) step(cfg sim.Config, bd *binder, st sim.State, code string) (next stepped, err error) {
	code, err = expandExpressions(code, bd.labels, st.PC)
	if err != nil {
		return
	}

	line := ParseLine(bd.table.Arch, code)

	op, err := bd.bind(line.Tokens)
	if err != nil {
		return
	}

	next.words, err = bd.table.Encode(op, st.PC)
	if err != nil {
		return
	}

	next.state, err = cfg.Step(st, op)

	return
}
