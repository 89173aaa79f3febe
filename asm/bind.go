package asm

import (
	"strconv"

	"github.com/ezrec/duasm/isa"
)

// binder maps parsed tokens onto an isa.Op.
type binder struct {
	table  *isa.Table
	labels map[string]uint32
}

// immediateBits is the width of the immediate field of I-type formats.
var immediateBits = map[isa.Arch]int{
	isa.ARCH_RISCV: 12,
	isa.ARCH_MIPS:  16,
}

// register resolves a register name to its index.
func (bd *binder) register(word string) (index int, err error) {
	index, ok := bd.table.Registers.Index(word)
	if !ok {
		err = ErrUnknownRegister(word)
		return
	}

	return
}

// number parses a decimal, 0x hex, 0o octal or 0b binary literal.
func (bd *binder) number(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// immediate parses an immediate that must fit the architecture's field.
func (bd *binder) immediate(word string) (imm int32, err error) {
	value, err := bd.number(word)
	if err != nil {
		return
	}

	imm, err = isa.FitImmediate(value, immediateBits[bd.table.Arch])

	return
}

// shamt parses a shift amount.
func (bd *binder) shamt(word string) (imm int32, err error) {
	value, err := bd.number(word)
	if err != nil {
		return
	}

	if value < 0 || value > 31 {
		err = isa.ErrImmediateRange{Value: value, Bits: 5}
		return
	}

	imm = int32(value)

	return
}

// label resolves a label to its address.
func (bd *binder) label(word string) (addr uint32, err error) {
	addr, ok := bd.labels[word]
	if !ok {
		err = ErrUnresolvedLabel(word)
		return
	}

	return
}

// bind converts tokens (mnemonic first) into an operation.
func (bd *binder) bind(tokens []string) (op isa.Op, err error) {
	if len(tokens) == 0 {
		err = ErrUnknownInstruction("")
		return
	}

	spec, ok := bd.table.Lookup(tokens[0])
	if !ok {
		err = ErrUnknownInstruction(tokens[0])
		return
	}

	args := tokens[1:]
	if len(args) != spec.Operands.Count() {
		err = ErrMalformedOperand{
			Mnemonic: spec.Mnemonic,
			Expected: spec.Operands.Count(),
			Got:      len(args),
		}
		return
	}

	op.Spec = spec

	regs := func(targets ...*int) (err error) {
		for n, target := range targets {
			*target, err = bd.register(args[n])
			if err != nil {
				return
			}
		}
		return
	}

	switch spec.Operands {
	case isa.OPERANDS_RRR:
		err = regs(&op.Rd, &op.Rs1, &op.Rs2)
	case isa.OPERANDS_RRI:
		err = regs(&op.Rd, &op.Rs1)
		if err == nil {
			op.Imm, err = bd.immediate(args[2])
		}
	case isa.OPERANDS_MEM:
		// [reg, base, imm]
		err = regs(&op.Rd, &op.Rs1)
		if err == nil {
			op.Imm, err = bd.immediate(args[2])
		}
	case isa.OPERANDS_BRANCH:
		err = regs(&op.Rs1, &op.Rs2)
		if err == nil {
			op.Label = args[2]
			op.Target, err = bd.label(args[2])
		}
	case isa.OPERANDS_LINK:
		err = regs(&op.Rd)
		if err == nil {
			op.Label = args[1]
			op.Target, err = bd.label(args[1])
		}
	case isa.OPERANDS_LABEL:
		op.Label = args[0]
		op.Target, err = bd.label(args[0])
	case isa.OPERANDS_SHIFT:
		err = regs(&op.Rd, &op.Rs2)
		if err == nil {
			op.Imm, err = bd.shamt(args[2])
		}
	case isa.OPERANDS_REG:
		err = regs(&op.Rs1)
	default:
		err = isa.ErrFormat
	}

	return
}
