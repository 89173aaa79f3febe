package isa

// Format is an instruction bit layout class.
type Format int

//go:generate go tool stringer -linecomment -type=Format,Operands,Kind
const (
	FORMAT_R  = Format(0) // R
	FORMAT_I  = Format(1) // I
	FORMAT_S  = Format(2) // S
	FORMAT_SB = Format(3) // SB
	FORMAT_UJ = Format(4) // UJ
	FORMAT_J  = Format(5) // J
)

// Operands is the source syntax of an instruction's operand list.
type Operands int

const (
	OPERANDS_RRR    = Operands(0) // rd, rs1, rs2
	OPERANDS_RRI    = Operands(1) // rd, rs1, imm
	OPERANDS_MEM    = Operands(2) // reg, imm(base)
	OPERANDS_BRANCH = Operands(3) // rs1, rs2, label
	OPERANDS_LINK   = Operands(4) // rd, label
	OPERANDS_LABEL  = Operands(5) // label
	OPERANDS_SHIFT  = Operands(6) // rd, rt, shamt
	OPERANDS_REG    = Operands(7) // rs
)

// Count returns the number of operand tokens expected after the mnemonic.
func (operands Operands) Count() int {
	switch operands {
	case OPERANDS_LABEL, OPERANDS_REG:
		return 1
	case OPERANDS_LINK:
		return 2
	default:
		return 3
	}
}

// Kind is the semantic effect of an instruction.
type Kind int

const (
	KIND_ADD  = Kind(0)  // add
	KIND_SUB  = Kind(1)  // sub
	KIND_MUL  = Kind(2)  // mul
	KIND_XOR  = Kind(3)  // xor
	KIND_OR   = Kind(4)  // or
	KIND_AND  = Kind(5)  // and
	KIND_SLL  = Kind(6)  // sll
	KIND_SRL  = Kind(7)  // srl
	KIND_SRA  = Kind(8)  // sra
	KIND_SLT  = Kind(9)  // slt
	KIND_SLTU = Kind(10) // sltu
	KIND_ADDI = Kind(11) // addi
	KIND_LW   = Kind(12) // lw
	KIND_SW   = Kind(13) // sw
	KIND_JAL  = Kind(14) // jal
	KIND_JALR = Kind(15) // jalr
	KIND_J    = Kind(16) // j
	KIND_JR   = Kind(17) // jr
	KIND_BEQ  = Kind(18) // beq
	KIND_BNE  = Kind(19) // bne
	KIND_BLT  = Kind(20) // blt
)
