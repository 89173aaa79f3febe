package asm

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/duasm/isa"
	"github.com/ezrec/duasm/sim"
)

func assemble(t *testing.T, arch isa.Arch, program ...string) *Result {
	asm := &Assembler{Table: arch.Table()}
	result, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	result, err := asm.Assemble(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(result.Records)
	assert.Empty(result.Labels)
	assert.Equal(isa.ARCH_RISCV, result.Table.Arch)
	assert.Equal(sim.State{}, result.State)
}

func TestAssembleScenarios(t *testing.T) {
	assert := assert.New(t)

	// RISC-V immediate
	result := assemble(t, isa.ARCH_RISCV, "addi x1, x0, 10")
	assert.Equal([]string{"addi x1, x0, 10 => 0x00a00093"}, slices.Collect(result.Listing()))

	// RISC-V register arithmetic
	result = assemble(t, isa.ARCH_RISCV,
		"addi x1,x0,10",
		"addi x2,x0,20",
		"add x3,x1,x2",
	)
	assert.Equal(int32(30), result.State.Regs.Signed(3))
	assert.Contains(slices.Collect(result.RegisterDump()), "x3 = 30")

	// MIPS immediate
	result = assemble(t, isa.ARCH_MIPS, "addi $t0, $zero, 10")
	assert.Equal([]string{"addi $t0, $zero, 10 => 0x2008000a"}, slices.Collect(result.Listing()))

	// MIPS blt expansion, not taken
	result = assemble(t, isa.ARCH_MIPS,
		"addi $t0, $zero, 2",
		"addi $t1, $zero, 1",
		"loop: blt $t0, $t1, loop",
		"addi $t2, $zero, 3",
	)
	assert.Equal(uint32(8), result.Labels["loop"])
	blt := result.Records[2]
	assert.Equal(uint32(8), blt.Address)
	assert.Equal([]uint32{0x0109082a, 0x1420fffe}, blt.Words)
	assert.Equal("loop: blt $t0, $t1, loop => 0x0109082a; 0x1420fffe", blt.String())
	assert.Equal(uint32(16), result.Records[3].Address)

	// Unaligned load
	result = assemble(t, isa.ARCH_RISCV,
		"lw x1, 1(x0)",
		"addi x2, x0, 2",
	)
	assert.Equal("lw x1, 1(x0) => ERROR: Unaligned memory access at address 1", result.Records[0].String())
	var ua sim.ErrUnalignedAccess
	assert.ErrorAs(result.Records[0].Err, &ua)
	assert.Nil(result.Records[0].Words)
	assert.Equal(uint32(4), result.Records[1].Address)
	assert.Equal(uint32(4), result.Records[0].NextPC)
}

func TestAssembleForwardReference(t *testing.T) {
	assert := assert.New(t)

	result := assemble(t, isa.ARCH_RISCV,
		"beq x0, x0, done # skip",
		"addi x1, x0, 1",
		"done: addi x2, x0, 2",
	)

	assert.Equal([]string{
		"beq x0, x0, done # skip => 0x00000463",
		"addi x1, x0, 1 => 0x00100093",
		"done: addi x2, x0, 2 => 0x00200113",
	}, slices.Collect(result.Listing()))

	// The taken branch moves the following lines, which still run once.
	assert.Equal(uint32(8), result.Records[0].NextPC)
	assert.Equal(uint32(8), result.Records[1].Address)
	assert.Equal(uint32(12), result.Records[2].Address)
	assert.Equal(int32(1), result.State.Regs.Signed(1))
	assert.Equal(uint32(16), result.State.PC)
}

func TestAssembleTakenJump(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		arch    isa.Arch
		program []string
		address []uint32
		words   []uint32
		pc      uint32
	}){
		{isa.ARCH_RISCV,
			[]string{
				"main:",
				"addi x1, x0, 5",
				"jal x10, factorial",
				"j end",
				"factorial:",
				"addi x2, x0, 1",
				"end:",
			},
			[]uint32{0, 4, 12, 16},
			// j end is encoded at 12, so its offset is 4.
			[]uint32{0x00500093, 0x0080056f, 0x0040006f, 0x00100113},
			20,
		},
		{isa.ARCH_MIPS,
			[]string{
				"beq $zero, $zero, skip",
				"addi $t0, $zero, 1",
				"skip: beq $t0, $zero, skip",
			},
			[]uint32{0, 8, 12},
			// beq at 12: (8 - 12 - 4) / 4 = -2.
			[]uint32{0x10000001, 0x20080001, 0x1100fffe},
			16,
		},
		{isa.ARCH_MIPS,
			[]string{
				"jal sub",
				"addi $t0, $zero, 1",
				"sub: jr $ra",
				"addi $t1, $zero, 2",
			},
			// jal links 4, and jr at 12 returns there.
			[]uint32{0, 8, 12, 4},
			[]uint32{0x0c000002, 0x20080001, 0x03e00008, 0x20090002},
			8,
		},
	}

	for _, entry := range table {
		result := assemble(t, entry.arch, entry.program...)
		assert.Empty(slices.Collect(result.Errors()), entry.arch)

		var address, words []uint32
		for _, rec := range result.Records {
			address = append(address, rec.Address)
			words = append(words, rec.Words...)
		}
		assert.Equal(entry.address, address, "%v: %v", entry.arch, entry.program)
		assert.Equal(entry.words, words, "%v: %v", entry.arch, entry.program)
		assert.Equal(entry.pc, result.State.PC, "%v: %v", entry.arch, entry.program)

		for n, rec := range result.Records[1:] {
			assert.Equal(result.Records[n].NextPC, rec.Address, rec.Source)
		}
	}
}

func TestAssembleMultipleLabels(t *testing.T) {
	assert := assert.New(t)

	result := assemble(t, isa.ARCH_RISCV,
		"addi x2, x0, 2",
		"a: b: addi x1, x0, 1",
		"c:d:",
		"beq x1, x2, b",
	)

	assert.Empty(slices.Collect(result.Errors()))
	assert.Equal(map[string]uint32{"a": 4, "b": 4, "c": 8, "d": 8}, result.Labels)
	assert.Equal("a: b: addi x1, x0, 1 => 0x00100093", result.Records[1].String())
	// beq at 8 back to 4.
	assert.Equal([]uint32{0xfe208ee3}, result.Records[2].Words)
}

func TestAssembleNegativeAddress(t *testing.T) {
	assert := assert.New(t)

	result := assemble(t, isa.ARCH_RISCV,
		"addi x1, x0, 7",
		"sw x1, 4(x0)",
		"sw x1, -8(x0)",
		"addi x3, x0, -4",
		"sw x3, 0(x3)",
		"lw x2, -8(x0)",
	)

	assert.Empty(slices.Collect(result.Errors()))
	assert.Equal(int32(7), result.State.Regs.Signed(2))
	assert.Equal([]string{
		"Memory:",
		"[-8] = 0x00000007",
		"[-4] = 0xfffffffc",
		"[4] = 0x00000007",
	}, slices.Collect(result.MemoryDump()))
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		arch    isa.Arch
		line    string
		message string
		target  error
	}){
		{isa.ARCH_RISCV, "frob x1, x2", `Unknown instruction "frob"`, ErrUnknownInstruction("frob")},
		{isa.ARCH_RISCV, "beq x1, x2, nowhere", `Label "nowhere" not found`, ErrUnresolvedLabel("nowhere")},
		{isa.ARCH_RISCV, "add x1, x2", `Malformed operands for "add": expected 3, got 2`,
			ErrMalformedOperand{Mnemonic: "add", Expected: 3, Got: 2}},
		{isa.ARCH_RISCV, "add x1, x2, x3, x4", `Malformed operands for "add": expected 3, got 4`,
			ErrMalformedOperand{Mnemonic: "add", Expected: 3, Got: 4}},
		{isa.ARCH_RISCV, "add x1, x2, x40", `Unknown register "x40"`, ErrUnknownRegister("x40")},
		{isa.ARCH_RISCV, "addi x1, x0, ten", `'ten' is not a number`, ErrParseNumber("ten")},
		{isa.ARCH_RISCV, "addi x1, x0, 5000", `Immediate 5000 out of range for 12 bits`,
			isa.ErrImmediateRange{Value: 5000, Bits: 12}},
		{isa.ARCH_RISCV, "addi x1, x0, $(1 +)", `$(1 +) is not a valid expression`, ErrParseExpression("1 +")},
		{isa.ARCH_MIPS, "mul $t0, $t1, $t2", `Unknown instruction "mul"`, ErrUnknownInstruction("mul")},
		{isa.ARCH_MIPS, "sll $t0, $t1, 32", `Immediate 32 out of range for 5 bits`,
			isa.ErrImmediateRange{Value: 32, Bits: 5}},
		{isa.ARCH_MIPS, "add $t0, $t1, t2", `Unknown register "t2"`, ErrUnknownRegister("t2")},
		{isa.ARCH_MIPS, "jr", `Malformed operands for "jr": expected 1, got 0`,
			ErrMalformedOperand{Mnemonic: "jr", Expected: 1, Got: 0}},
		{isa.ARCH_MIPS, "sw $t0, 2($zero)", `Unaligned memory access at address 2`, sim.ErrUnalignedAccess{Address: 2}},
		{isa.ARCH_RISCV, "lw x1, -3(x0)", `Unaligned memory access at address -3`, sim.ErrUnalignedAccess{Address: 0xfffffffd}},
		{isa.ARCH_MIPS, "lw $t0, -2($zero)", `Unaligned memory access at address -2`, sim.ErrUnalignedAccess{Address: 0xfffffffe}},
	}

	filler := map[isa.Arch]string{
		isa.ARCH_RISCV: "next: add x0, x0, x0",
		isa.ARCH_MIPS:  "next: add $zero, $zero, $zero",
	}

	for _, entry := range table {
		result := assemble(t, entry.arch, entry.line, filler[entry.arch])
		if !assert.Len(result.Records, 2, entry.line) {
			continue
		}
		rec := result.Records[0]
		assert.Equal(entry.line+" => ERROR: "+entry.message, rec.String())
		if entry.target != nil {
			assert.True(errors.Is(rec.Err, entry.target), "%v: %v", entry.line, rec.Err)
		}

		var el ErrLine
		assert.ErrorAs(rec.LineErr(), &el)
		assert.Equal(1, el.LineNo)
		assert.Equal(entry.line, el.Line)

		// Errors never stop the run.
		assert.Equal(uint32(4), result.Records[1].Address, entry.line)
		assert.Equal([]error{rec.LineErr()}, slices.Collect(result.Errors()))
	}
}

func TestAssembleAddress(t *testing.T) {
	assert := assert.New(t)

	for _, arch := range []isa.Arch{isa.ARCH_RISCV, isa.ARCH_MIPS} {
		tbl := arch.Table()
		program := []string{
			"start:",
			"blt x1, x2, start",
			"blt $t0, $t1, start",
			"bogus",
			"",
			"# comment",
			"j start",
		}
		result := assemble(t, arch, program...)
		assert.Len(result.Records, 4)

		// Untaken branches and errors advance by the width rule.
		var pc uint32
		for _, rec := range result.Records {
			assert.Equal(pc, rec.Address, "%v: %v", arch, rec.Source)
			assert.Zero(rec.Address % 4)
			mnemonic := ParseLine(arch, rec.Source).Tokens[0]
			pc += tbl.Width(mnemonic)
		}

		width := uint32(4)
		if arch == isa.ARCH_MIPS {
			width = 8
		}
		assert.Equal(4+width, result.Records[2].Address, arch)
		assert.Equal([]string{"start"}, result.SortedLabels())
		assert.Equal(uint32(0), result.State.PC, arch)
	}
}

func TestAssembleDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	result := assemble(t, isa.ARCH_RISCV,
		"here: addi x1, x0, 1",
		"here: j here",
	)

	assert.Equal(uint32(4), result.Labels["here"])
	// j 0
	assert.Equal([]uint32{0x0000006f}, result.Records[1].Words)
}

func TestAssembleDeterminism(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"addi x1, x0, 42",
		"sw x1, 8(x0)",
		"lw x2, 8(x0)",
		"blt x1, x2, nowhere",
	}

	first := assemble(t, isa.ARCH_RISCV, program...)
	second := assemble(t, isa.ARCH_RISCV, program...)

	assert.Equal(slices.Collect(first.Listing()), slices.Collect(second.Listing()))
	assert.Equal(slices.Collect(first.Dump()), slices.Collect(second.Dump()))
	assert.Equal(first.State, second.State)
}

func TestAssembleExpressions(t *testing.T) {
	assert := assert.New(t)

	result := assemble(t, isa.ARCH_RISCV,
		"addi x1, x0, $(6 * 8)",
		"lw x2, $(data - 4)(x1)",
		"addi x3, x0, $(PC)",
		"data:",
	)

	assert.NoError(result.Records[0].Err)
	assert.Equal(int32(48), result.State.Regs.Signed(1))
	// data is 12, so the load is lw x2, 8(x1).
	assert.Equal([]uint32{0x0080a103}, result.Records[1].Words)
	assert.Equal(int32(8), result.State.Regs.Signed(3))
	// Source text is kept as written.
	assert.Equal("addi x1, x0, $(6 * 8)", result.Records[0].Source)
}

func TestAssembleHardwireZero(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"addi x0, x0, 7",
		"addi x1, x0, 1",
	}

	result := assemble(t, isa.ARCH_RISCV, program...)
	assert.Equal(int32(7), result.State.Regs.Signed(0))
	assert.Equal(int32(8), result.State.Regs.Signed(1))

	asm := &Assembler{HardwireZero: true}
	result, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(int32(0), result.State.Regs.Signed(0))
	assert.Equal(int32(1), result.State.Regs.Signed(1))
}

type failReader struct{}

var errRead = errors.New("read failed")

func (failReader) Read(p []byte) (int, error) {
	return 0, errRead
}

func TestAssembleReadError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	result, err := asm.Assemble(failReader{})
	assert.ErrorIs(err, errRead)
	assert.Nil(result)
}
