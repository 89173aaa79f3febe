// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Encode produces the machine word(s) of an operation assembled at pc.
func (tbl *Table) Encode(op Op, pc uint32) (words []uint32, err error) {
	if op.Spec == nil {
		err = ErrFormat
		return
	}

	var word uint32
	switch tbl.Arch {
	case ARCH_RISCV:
		word, err = encodeRiscv(op, pc)
	case ARCH_MIPS:
		if op.Kind == KIND_BLT {
			return tbl.expandBlt(op, pc)
		}
		word, err = encodeMips(op, pc)
	default:
		err = ErrArchUnknown
	}
	if err != nil {
		return
	}

	words = []uint32{word}

	return
}

// encodeRiscv packs a RISC-V operation into one word.
func encodeRiscv(op Op, pc uint32) (word uint32, err error) {
	spec := op.Spec
	rd := uint32(op.Rd) & 0x1f
	rs1 := uint32(op.Rs1) & 0x1f
	rs2 := uint32(op.Rs2) & 0x1f
	imm := uint32(op.Imm)

	switch spec.Format {
	case FORMAT_R:
		word = spec.Funct7<<25 | rs2<<20 | rs1<<15 | spec.Funct3<<12 | rd<<7 | spec.Opcode
	case FORMAT_I:
		word = (imm&0xfff)<<20 | rs1<<15 | spec.Funct3<<12 | rd<<7 | spec.Opcode
	case FORMAT_S:
		// Store source travels in Rd.
		word = ((imm>>5)&0x7f)<<25 | rd<<20 | rs1<<15 | spec.Funct3<<12 | (imm&0x1f)<<7 | spec.Opcode
	case FORMAT_SB:
		offset := int64(op.Target) - int64(pc)
		err = fitSigned(offset, 13)
		if err != nil {
			return
		}
		off := uint32(offset)
		word = ((off>>12)&0x1)<<31 |
			((off>>5)&0x3f)<<25 |
			rs2<<20 | rs1<<15 | spec.Funct3<<12 |
			((off>>1)&0xf)<<8 |
			((off>>11)&0x1)<<7 |
			spec.Opcode
	case FORMAT_UJ:
		offset := int64(op.Target) - int64(pc)
		err = fitSigned(offset, 21)
		if err != nil {
			return
		}
		off := uint32(offset)
		word = ((off>>20)&0x1)<<31 |
			((off>>1)&0x3ff)<<21 |
			((off>>11)&0x1)<<20 |
			((off>>12)&0xff)<<12 |
			rd<<7 | spec.Opcode
	default:
		err = ErrFormat
	}

	return
}

// encodeMips packs a native MIPS operation into one word.
func encodeMips(op Op, pc uint32) (word uint32, err error) {
	spec := op.Spec
	rd := uint32(op.Rd) & 0x1f
	rs := uint32(op.Rs1) & 0x1f
	rt := uint32(op.Rs2) & 0x1f
	imm := uint32(op.Imm)

	switch spec.Format {
	case FORMAT_R:
		switch spec.Operands {
		case OPERANDS_SHIFT:
			word = rt<<16 | rd<<11 | (imm&0x1f)<<6
		case OPERANDS_REG:
			word = rs << 21
		default:
			word = rs<<21 | rt<<16 | rd<<11
		}
		word |= spec.Opcode<<26 | spec.Funct
	case FORMAT_I:
		if spec.Operands == OPERANDS_BRANCH {
			offset := (int64(op.Target) - int64(pc) - 4) / 4
			err = fitSigned(offset, 16)
			if err != nil {
				return
			}
			imm = uint32(offset)
			word = spec.Opcode<<26 | rs<<21 | rt<<16 | imm&0xffff
		} else {
			// I-type destination (or store source) rt travels in Rd.
			word = spec.Opcode<<26 | rs<<21 | rd<<16 | imm&0xffff
		}
	case FORMAT_J:
		word = spec.Opcode<<26 | (op.Target/4)&0x3ffffff
	default:
		err = ErrFormat
	}

	return
}

// expandBlt encodes blt rs, rt, label as slt $at, rs, rt followed by
// bne $at, $zero, label. The branch word sits at pc+4, so its offset is
// relative to pc+8.
func (tbl *Table) expandBlt(op Op, pc uint32) (words []uint32, err error) {
	slt, ok := tbl.Lookup("slt")
	if !ok {
		err = ErrExpansion
		return
	}
	bne, ok := tbl.Lookup("bne")
	if !ok {
		err = ErrExpansion
		return
	}

	first, err := encodeMips(Op{Spec: slt, Rd: MIPS_REG_AT, Rs1: op.Rs1, Rs2: op.Rs2}, pc)
	if err != nil {
		return
	}

	second, err := encodeMips(Op{
		Spec:   bne,
		Rs1:    MIPS_REG_AT,
		Rs2:    MIPS_REG_ZERO,
		Label:  op.Label,
		Target: op.Target,
	}, pc+4)
	if err != nil {
		return
	}

	words = []uint32{first, second}

	return
}
