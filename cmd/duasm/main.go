// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command duasm assembles, disassembles and traces RISC-V and MIPS
// mnemonic programs.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/duasm/isa"
	"github.com/ezrec/duasm/translate"
)

var f = translate.From

// Persistent flags
var (
	archName     string
	verbose      bool
	lang         string
	hardwireZero bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "duasm",
	Short: "Dual-ISA assembler, disassembler and execution tracer",
	Long: `Duasm assembles RISC-V or MIPS mnemonic source into 32-bit machine
words, tracing each instruction through a small simulator as it goes.
The final registers and memory are printed after the listing.

Hex files written by 'duasm asm -o' can be read back by 'duasm dis'.
'duasm repl' traces a program one line at a time.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if len(lang) != 0 {
			err = translate.SetLanguage(lang)
		}
		return
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&archName, "arch", "a", "riscv", "architecture: riscv or mips")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	flags.StringVar(&lang, "lang", "", "message language, as a BCP 47 tag")
	flags.BoolVar(&hardwireZero, "hardwire-zero", false, "register 0 always reads as zero")
}

// table returns the instruction table selected by --arch.
func table() (tbl *isa.Table, err error) {
	arch, err := isa.ParseArch(archName)
	if err != nil {
		return
	}

	tbl = arch.Table()

	return
}

// openInput opens a named input, where "-" is stdin.
func openInput(name string) (inf *os.File, err error) {
	if name == "-" {
		inf = os.Stdin
		return
	}

	inf, err = os.Open(name)

	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
