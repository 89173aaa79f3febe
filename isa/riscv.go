package isa

// RISC-V major opcodes.
const (
	RV_OP_REG    = 0x33
	RV_OP_IMM    = 0x13
	RV_OP_LOAD   = 0x03
	RV_OP_JALR   = 0x67
	RV_OP_STORE  = 0x23
	RV_OP_BRANCH = 0x63
	RV_OP_JAL    = 0x6f
)

var riscvTable = newTable(ARCH_RISCV, riscvRegisters, []Spec{
	{Mnemonic: "add", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_ADD, Opcode: RV_OP_REG, Funct3: 0b000, Funct7: 0b0000000},
	{Mnemonic: "sub", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SUB, Opcode: RV_OP_REG, Funct3: 0b000, Funct7: 0b0100000},
	{Mnemonic: "sll", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SLL, Opcode: RV_OP_REG, Funct3: 0b001, Funct7: 0b0000000},
	{Mnemonic: "slt", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SLT, Opcode: RV_OP_REG, Funct3: 0b010, Funct7: 0b0000000},
	{Mnemonic: "sltu", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SLTU, Opcode: RV_OP_REG, Funct3: 0b011, Funct7: 0b0000000},
	{Mnemonic: "xor", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_XOR, Opcode: RV_OP_REG, Funct3: 0b100, Funct7: 0b0000000},
	{Mnemonic: "srl", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SRL, Opcode: RV_OP_REG, Funct3: 0b101, Funct7: 0b0000000},
	{Mnemonic: "sra", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_SRA, Opcode: RV_OP_REG, Funct3: 0b101, Funct7: 0b0100000},
	{Mnemonic: "or", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_OR, Opcode: RV_OP_REG, Funct3: 0b110, Funct7: 0b0000000},
	{Mnemonic: "and", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_AND, Opcode: RV_OP_REG, Funct3: 0b111, Funct7: 0b0000000},
	{Mnemonic: "mul", Format: FORMAT_R, Operands: OPERANDS_RRR, Kind: KIND_MUL, Opcode: RV_OP_REG, Funct3: 0b000, Funct7: 0b0000001},
	{Mnemonic: "addi", Format: FORMAT_I, Operands: OPERANDS_RRI, Kind: KIND_ADDI, Opcode: RV_OP_IMM, Funct3: 0b000},
	{Mnemonic: "lw", Format: FORMAT_I, Operands: OPERANDS_MEM, Kind: KIND_LW, Opcode: RV_OP_LOAD, Funct3: 0b010},
	{Mnemonic: "jalr", Format: FORMAT_I, Operands: OPERANDS_MEM, Kind: KIND_JALR, Opcode: RV_OP_JALR, Funct3: 0b000},
	{Mnemonic: "sw", Format: FORMAT_S, Operands: OPERANDS_MEM, Kind: KIND_SW, Opcode: RV_OP_STORE, Funct3: 0b010},
	{Mnemonic: "beq", Format: FORMAT_SB, Operands: OPERANDS_BRANCH, Kind: KIND_BEQ, Opcode: RV_OP_BRANCH, Funct3: 0b000},
	{Mnemonic: "blt", Format: FORMAT_SB, Operands: OPERANDS_BRANCH, Kind: KIND_BLT, Opcode: RV_OP_BRANCH, Funct3: 0b100},
	{Mnemonic: "jal", Format: FORMAT_UJ, Operands: OPERANDS_LINK, Kind: KIND_JAL, Opcode: RV_OP_JAL},
	// j label is jal x0, label
	{Mnemonic: "j", Format: FORMAT_UJ, Operands: OPERANDS_LABEL, Kind: KIND_J, Opcode: RV_OP_JAL, Pseudo: true},
})
