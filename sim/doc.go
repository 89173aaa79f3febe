// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim is a micro-simulator for bound RISC-V and MIPS operations.
//
// A simulation step is a pure transition from one State to the next;
// the input State is never modified.
package sim
