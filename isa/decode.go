// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
)

// Decode renders a machine word as mnemonic text. Words that match no
// table entry render as an UNKNOWN_INSTRUCTION marker.
func (tbl *Table) Decode(word uint32) (text string) {
	switch tbl.Arch {
	case ARCH_RISCV:
		text = tbl.decodeRiscv(word)
	case ARCH_MIPS:
		text = tbl.decodeMips(word)
	}

	if len(text) == 0 {
		text = fmt.Sprintf("UNKNOWN_INSTRUCTION: 0x%08x", word)
	}

	return
}

// reg renders a register field.
func (tbl *Table) reg(word uint32, shift int) string {
	return tbl.Registers.Name(int((word >> shift) & 0x1f))
}

// decodeRiscv probes (opcode, funct3, funct7), then (opcode, funct3), then
// (opcode).
func (tbl *Table) decodeRiscv(word uint32) (text string) {
	opcode := int64(word & 0x7f)
	funct3 := int64((word >> 12) & 0x7)
	funct7 := int64((word >> 25) & 0x7f)

	var spec *Spec
	var ok bool
	for _, key := range []Key{{opcode, funct3, funct7}, {opcode, funct3, -1}, {opcode, -1, -1}} {
		spec, ok = tbl.Reverse(key)
		if ok {
			break
		}
	}
	if !ok {
		return
	}

	rd := tbl.reg(word, 7)
	rs1 := tbl.reg(word, 15)
	rs2 := tbl.reg(word, 20)

	switch spec.Format {
	case FORMAT_R:
		text = fmt.Sprintf("%s %s, %s, %s", spec.Mnemonic, rd, rs1, rs2)
	case FORMAT_I:
		imm := int32(SignExtend(word>>20, 12))
		if spec.Operands == OPERANDS_MEM {
			text = fmt.Sprintf("%s %s, %d(%s)", spec.Mnemonic, rd, imm, rs1)
		} else {
			text = fmt.Sprintf("%s %s, %s, %d", spec.Mnemonic, rd, rs1, imm)
		}
	case FORMAT_S:
		imm := int32(SignExtend(((word>>25)&0x7f)<<5|(word>>7)&0x1f, 12))
		text = fmt.Sprintf("%s %s, %d(%s)", spec.Mnemonic, rs2, imm, rs1)
	case FORMAT_SB:
		offset := ((word>>31)&0x1)<<12 |
			((word>>7)&0x1)<<11 |
			((word>>25)&0x3f)<<5 |
			((word>>8)&0xf)<<1
		text = fmt.Sprintf("%s %s, %s, %d", spec.Mnemonic, rs1, rs2, int32(SignExtend(offset, 13)))
	case FORMAT_UJ:
		offset := ((word>>31)&0x1)<<20 |
			((word>>12)&0xff)<<12 |
			((word>>20)&0x1)<<11 |
			((word>>21)&0x3ff)<<1
		imm := int32(SignExtend(offset, 21))
		if (word>>7)&0x1f == 0 {
			text = fmt.Sprintf("j %d", imm)
		} else {
			text = fmt.Sprintf("%s %s, %d", spec.Mnemonic, rd, imm)
		}
	}

	return
}

// decodeMips probes (opcode, funct) for SPECIAL words, then (opcode).
func (tbl *Table) decodeMips(word uint32) (text string) {
	opcode := int64((word >> 26) & 0x3f)
	funct := int64(word & 0x3f)

	spec, ok := tbl.Reverse(Key{opcode, funct, -1})
	if !ok || spec.Format != FORMAT_R {
		spec, ok = tbl.Reverse(Key{opcode, -1, -1})
	}
	if !ok {
		return
	}

	rs := tbl.reg(word, 21)
	rt := tbl.reg(word, 16)
	rd := tbl.reg(word, 11)
	imm := int32(SignExtend(word&0xffff, 16))

	switch spec.Operands {
	case OPERANDS_REG:
		text = fmt.Sprintf("%s %s", spec.Mnemonic, rs)
	case OPERANDS_SHIFT:
		text = fmt.Sprintf("%s %s, %s, %d", spec.Mnemonic, rd, rt, (word>>6)&0x1f)
	case OPERANDS_RRR:
		text = fmt.Sprintf("%s %s, %s, %s", spec.Mnemonic, rd, rs, rt)
	case OPERANDS_MEM:
		text = fmt.Sprintf("%s %s, %d(%s)", spec.Mnemonic, rt, imm, rs)
	case OPERANDS_RRI:
		text = fmt.Sprintf("%s %s, %s, %d", spec.Mnemonic, rt, rs, imm)
	case OPERANDS_BRANCH:
		text = fmt.Sprintf("%s %s, %s, %d", spec.Mnemonic, rs, rt, imm)
	case OPERANDS_LABEL:
		text = fmt.Sprintf("%s 0x%08x", spec.Mnemonic, (word&0x3ffffff)<<2)
	}

	return
}
