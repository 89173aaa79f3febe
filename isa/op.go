package isa

// Op is an instruction with its operands bound to register indexes,
// immediates and resolved label addresses.
//
// For OPERANDS_MEM, Rd is the data register (load target or store source)
// and Rs1 the base register. On MIPS, Rs1 is rs and Rs2 is rt; an I-type
// destination rt is carried in Rd.
type Op struct {
	*Spec

	Rd     int
	Rs1    int
	Rs2    int
	Imm    int32  // Sign-extended immediate or shift amount.
	Label  string // Referenced label, if any.
	Target uint32 // Byte address of Label.
}
