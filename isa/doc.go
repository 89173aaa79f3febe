// Package isa describes the RISC-V and MIPS instruction subsets understood by
// duasm.
//
// Each architecture has one immutable Table holding the mnemonic to Spec
// mapping, the reverse field-tuple lookup used for disassembly, and the
// register name map. A Table encodes bound operations (Op) into 32-bit
// machine words and decodes machine words back into mnemonic text.
package isa
