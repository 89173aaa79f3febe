// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"github.com/ezrec/duasm/isa"
)

// Config selects simulator behaviour.
type Config struct {
	HardwireZero bool // If set, register 0 always reads as zero.
}

// Step executes op against st with the default Config.
func Step(st State, op isa.Op) (next State, err error) {
	return Config{}.Step(st, op)
}

// Step executes op against st, returning the following state.
// On error the input state is returned unchanged.
func (cfg Config) Step(st State, op isa.Op) (next State, err error) {
	next = st

	if op.Spec == nil {
		err = ErrOpMissing
		return
	}

	regs := &next.Regs
	rs1 := regs[op.Rs1&0x1f]
	rs2 := regs[op.Rs2&0x1f]
	imm := uint32(op.Imm)
	pc := st.PC

	next.PC = pc + op.Width

	// MIPS shifts take the value from rt and the amount from shamt.
	if op.Operands == isa.OPERANDS_SHIFT {
		rs1 = rs2
		rs2 = imm
	}

	write := func(index int, value uint32) {
		regs[index&0x1f] = value
	}

	switch op.Kind {
	case isa.KIND_ADD:
		write(op.Rd, rs1+rs2)
	case isa.KIND_SUB:
		write(op.Rd, rs1-rs2)
	case isa.KIND_MUL:
		write(op.Rd, rs1*rs2)
	case isa.KIND_XOR:
		write(op.Rd, rs1^rs2)
	case isa.KIND_OR:
		write(op.Rd, rs1|rs2)
	case isa.KIND_AND:
		write(op.Rd, rs1&rs2)
	case isa.KIND_SLL:
		write(op.Rd, rs1<<(rs2&0x1f))
	case isa.KIND_SRL:
		write(op.Rd, rs1>>(rs2&0x1f))
	case isa.KIND_SRA:
		write(op.Rd, uint32(int32(rs1)>>(rs2&0x1f)))
	case isa.KIND_SLT:
		write(op.Rd, boolWord(int32(rs1) < int32(rs2)))
	case isa.KIND_SLTU:
		write(op.Rd, boolWord(rs1 < rs2))
	case isa.KIND_ADDI:
		write(op.Rd, rs1+imm)
	case isa.KIND_LW:
		addr := rs1 + imm
		if addr&3 != 0 {
			err = ErrUnalignedAccess{Address: addr}
			break
		}
		write(op.Rd, st.Mem.Load(addr))
	case isa.KIND_SW:
		addr := rs1 + imm
		if addr&3 != 0 {
			err = ErrUnalignedAccess{Address: addr}
			break
		}
		next.Mem = st.Mem.Store(addr, regs[op.Rd&0x1f])
	case isa.KIND_JAL:
		rd := op.Rd
		if op.Arch == isa.ARCH_MIPS {
			rd = isa.MIPS_REG_RA
		}
		write(rd, pc+4)
		next.PC = op.Target
	case isa.KIND_JALR:
		write(op.Rd, pc+4)
		next.PC = rs1 + imm
	case isa.KIND_J:
		next.PC = op.Target
	case isa.KIND_JR:
		next.PC = rs1
	case isa.KIND_BEQ:
		if rs1 == rs2 {
			next.PC = op.Target
		}
	case isa.KIND_BNE:
		if rs1 != rs2 {
			next.PC = op.Target
		}
	case isa.KIND_BLT:
		if int32(rs1) < int32(rs2) {
			next.PC = op.Target
		}
	default:
		err = ErrKind
	}

	if err != nil {
		next = st
		return
	}

	if cfg.HardwireZero {
		regs[0] = 0
	}

	return
}

func boolWord(cond bool) uint32 {
	if cond {
		return 1
	}
	return 0
}
