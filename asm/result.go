package asm

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/duasm/hexio"
	"github.com/ezrec/duasm/internal"
	"github.com/ezrec/duasm/isa"
	"github.com/ezrec/duasm/sim"
)

// Result is a complete assembly: the records, labels and final machine state.
type Result struct {
	Table   *isa.Table
	Records []Record
	Labels  map[string]uint32
	State   sim.State
}

// Listing returns the listing line of every record.
func (res *Result) Listing() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, rec := range res.Records {
			if !yield(rec.String()) {
				return
			}
		}
	}
}

// RegisterDump returns `name = value` for every register, by index.
func (res *Result) RegisterDump() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range isa.REGISTER_COUNT {
			line := res.Table.Registers.Name(n) + " = " + strconv.FormatInt(int64(res.State.Regs.Signed(n)), 10)
			if !yield(line) {
				return
			}
		}
	}
}

// MemoryDump returns the memory contents by ascending signed address,
// headed by "Memory:". Empty memory has no dump.
func (res *Result) MemoryDump() iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(res.State.Mem) == 0 {
			return
		}
		if !yield("Memory:") {
			return
		}
		addrs := slices.SortedFunc(maps.Keys(res.State.Mem), func(a, b uint32) int {
			return cmp.Compare(int32(a), int32(b))
		})
		for _, addr := range addrs {
			if !yield(fmt.Sprintf("[%d] = 0x%08x", int32(addr), res.State.Mem[addr])) {
				return
			}
		}
	}
}

// Dump returns the register dump followed by the memory dump.
func (res *Result) Dump() iter.Seq[string] {
	gap := internal.IterSeqOf[string]()
	if len(res.State.Mem) > 0 {
		gap = internal.IterSeqOf("")
	}

	return internal.IterSeqConcat(res.RegisterDump(), gap, res.MemoryDump())
}

// Words returns the first word of every successful record.
func (res *Result) Words() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, rec := range res.Records {
			if rec.Err != nil || len(rec.Words) == 0 {
				continue
			}
			if !yield(rec.Words[0]) {
				return
			}
		}
	}
}

// Errors returns the located error of every failed record.
func (res *Result) Errors() iter.Seq[error] {
	return func(yield func(error) bool) {
		for _, rec := range res.Records {
			if rec.Err == nil {
				continue
			}
			if !yield(rec.LineErr()) {
				return
			}
		}
	}
}

// SortedLabels returns the label names ordered by address, then name.
func (res *Result) SortedLabels() []string {
	return slices.SortedFunc(maps.Keys(res.Labels), func(a, b string) int {
		return cmp.Or(cmp.Compare(res.Labels[a], res.Labels[b]), strings.Compare(a, b))
	})
}

// WriteHex exports Words as a hex file.
func (res *Result) WriteHex(output io.Writer) (err error) {
	wr := &hexio.Writer{Output: output}
	err = wr.WriteAll(res.Words())
	return
}
