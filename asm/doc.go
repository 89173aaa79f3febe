// Package asm implements the duasm two pass assembler, execution tracer
// and hex disassembler.
//
// The first pass lays out every line, assigning label addresses. The second
// pass evaluates $(...) expressions with Starlark, binds operands, encodes
// each line with the isa tables and runs it through the simulator, whose next
// pc is the address of the following line. Errors are per line; a failing
// line still advances the pc by its width.
package asm
