package isa

// MIPS major opcodes.
const (
	MIPS_OP_SPECIAL = 0x00
	MIPS_OP_J       = 0x02
	MIPS_OP_JAL     = 0x03
	MIPS_OP_BEQ     = 0x04
	MIPS_OP_BNE     = 0x05
	MIPS_OP_ADDI    = 0x08
	MIPS_OP_LW      = 0x23
	MIPS_OP_SW      = 0x2b
)

// MIPS registers with a fixed role in the subset.
const (
	MIPS_REG_ZERO = 0
	MIPS_REG_AT   = 1
	MIPS_REG_RA   = 31
)

var mipsTable = newTable(ARCH_MIPS, mipsRegisters, []Spec{
	{Mnemonic: "add", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_ADD, Opcode: MIPS_OP_SPECIAL, Funct: 0x20},
	{Mnemonic: "sub", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SUB, Opcode: MIPS_OP_SPECIAL, Funct: 0x22},
	{Mnemonic: "and", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_AND, Opcode: MIPS_OP_SPECIAL, Funct: 0x24},
	{Mnemonic: "or", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_OR, Opcode: MIPS_OP_SPECIAL, Funct: 0x25},
	{Mnemonic: "slt", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SLT, Opcode: MIPS_OP_SPECIAL, Funct: 0x2a},
	{Mnemonic: "sll", Format: FORMAT_R, Operands: OPERANDS_SHIFT, Kind: KIND_SLL, Opcode: MIPS_OP_SPECIAL, Funct: 0x00},
	{Mnemonic: "srl", Format: FORMAT_R, Operands: OPERANDS_SHIFT, Kind: KIND_SRL, Opcode: MIPS_OP_SPECIAL, Funct: 0x02},
	{Mnemonic: "sra", Format: FORMAT_R, Operands: OPERANDS_SHIFT, Kind: KIND_SRA, Opcode: MIPS_OP_SPECIAL, Funct: 0x03},
	{Mnemonic: "jr", Format: FORMAT_R, Operands: OPERANDS_REG, Kind: KIND_JR, Opcode: MIPS_OP_SPECIAL, Funct: 0x08},
	{Mnemonic: "addi", Format: FORMAT_I, Operands: OPERANDS_RRI, Kind: KIND_ADDI, Opcode: MIPS_OP_ADDI},
	{Mnemonic: "lw", Format: FORMAT_I, Operands: OPERANDS_MEM, Kind: KIND_LW, Opcode: MIPS_OP_LW},
	{Mnemonic: "sw", Format: FORMAT_I, Operands: OPERANDS_MEM, Kind: KIND_SW, Opcode: MIPS_OP_SW},
	{Mnemonic: "beq", Format: FORMAT_I, Operands: OPERANDS_BRANCH, Kind: KIND_BEQ, Opcode: MIPS_OP_BEQ},
	{Mnemonic: "bne", Format: FORMAT_I, Operands: OPERANDS_BRANCH, Kind: KIND_BNE, Opcode: MIPS_OP_BNE},
	{Mnemonic: "j", Format: FORMAT_J, Operands: OPERANDS_LABEL, Kind: KIND_J, Opcode: MIPS_OP_J},
	{Mnemonic: "jal", Format: FORMAT_J, Operands: OPERANDS_LABEL, Kind: KIND_JAL, Opcode: MIPS_OP_JAL},
	// blt rs, rt, label => slt $at, rs, rt ; bne $at, $zero, label
	{Mnemonic: "blt", Format: FORMAT_I, Operands: OPERANDS_BRANCH, Kind: KIND_BLT, Width: 8, Pseudo: true},
})
