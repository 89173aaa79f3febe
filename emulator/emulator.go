// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"slices"
	"strconv"

	"github.com/ezrec/duasm/asm"
	"github.com/ezrec/duasm/isa"
)

// Emulator is an interactive tracing session. Every entered line is
// appended to the program, and the whole program is reassembled.
type Emulator struct {
	Verbose   bool           // If set, enables verbose logging.
	Assembler *asm.Assembler // Assembler used for each pass.
	Lines     []string       // Program source lines.
	Result    *asm.Result    // Result of the latest assembly.
}

// Trace is the outcome of entering a single line.
type Trace struct {
	Record  *asm.Record // Record of the line, nil if it has no instruction.
	Changed []string    // Registers changed by the line, as `name = value`.
}

// NewEmulator creates a new session for an instruction table.
func NewEmulator(tbl *isa.Table) (emu *Emulator) {
	emu = &Emulator{
		Assembler: &asm.Assembler{Table: tbl},
	}

	emu.Reset()

	return
}

// Table returns the instruction table of the session.
func (emu *Emulator) Table() *isa.Table {
	return emu.Result.Table
}

// Reset clears the program.
func (emu *Emulator) Reset() {
	emu.Lines = nil
	emu.assemble()
}

// assemble reassembles the whole program.
func (emu *Emulator) assemble() {
	emu.Assembler.Verbose = emu.Verbose
	emu.Result = emu.Assembler.AssembleLines(emu.Lines)
}

// Load replaces the program with source read from input.
func (emu *Emulator) Load(input io.Reader) (err error) {
	lines, err := asm.ReadLines(input)
	if err != nil {
		return
	}

	emu.Lines = lines
	emu.assemble()

	if emu.Verbose {
		log.Printf("emulator: loaded %v lines\n", len(lines))
	}

	return
}

// Enter appends a line to the program and reassembles it.
func (emu *Emulator) Enter(line string) (trace Trace) {
	before := emu.Result

	emu.Lines = append(emu.Lines, line)
	emu.assemble()

	lineno := len(emu.Lines)
	records := emu.Result.Records
	if len(records) == 0 || records[len(records)-1].LineNo != lineno {
		return
	}

	rec := records[len(records)-1]
	trace.Record = &rec

	// Reassembly is deterministic, so the previous final state is the
	// state just before the new line.
	for n := range before.State.Changed(emu.Result.State) {
		trace.Changed = append(trace.Changed, emu.register(n))
	}

	if emu.Verbose {
		log.Printf("emulator: %v\n", rec.String())
	}

	return
}

// Undo removes the last entered line.
func (emu *Emulator) Undo() (err error) {
	if len(emu.Lines) == 0 {
		err = ErrUndoEmpty
		return
	}

	emu.Lines = emu.Lines[:len(emu.Lines)-1]
	emu.assemble()

	return
}

// register renders a register as `name = value`.
func (emu *Emulator) register(index int) string {
	return emu.Table().Registers.Name(index) + " = " +
		strconv.FormatInt(int64(emu.Result.State.Regs.Signed(index)), 10)
}

// Labels returns `name = address` for every label, by address.
func (emu *Emulator) Labels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, label := range emu.Result.SortedLabels() {
			if !yield(label + " = " + strconv.FormatUint(uint64(emu.Result.Labels[label]), 10)) {
				return
			}
		}
	}
}

// Source returns a copy of the program lines.
func (emu *Emulator) Source() []string {
	return slices.Clone(emu.Lines)
}
