package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/duasm/asm"
	"github.com/ezrec/duasm/internal"
)

var hexOutput string

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm [sourceFile]",
	Short: "Assemble and trace a source file",
	Long: `Asm assembles a source file (or stdin) and prints the listing,
one line per instruction, followed by the simulated registers and memory.

Lines that fail to assemble are listed with their error, and the rest of
the program is still assembled.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		name := "-"
		if len(args) == 1 {
			name = args[0]
		}

		tbl, err := table()
		if err != nil {
			return
		}

		inf, err := openInput(name)
		if err != nil {
			return
		}
		defer inf.Close()

		assembler := &asm.Assembler{
			Table:        tbl,
			Verbose:      verbose,
			HardwireZero: hardwireZero,
		}

		result, err := assembler.Assemble(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", name, err)
			return
		}

		out := cmd.OutOrStdout()
		for line := range internal.IterSeqConcat(result.Listing(), internal.IterSeqOf(""), result.Dump()) {
			fmt.Fprintln(out, line)
		}

		if len(hexOutput) != 0 {
			var ouf *os.File
			ouf, err = os.Create(hexOutput)
			if err != nil {
				return
			}
			err = result.WriteHex(ouf)
			if cerr := ouf.Close(); err == nil {
				err = cerr
			}
		}

		return
	},
}

func init() {
	asmCmd.Flags().StringVarP(&hexOutput, "output", "o", "", "write a hex file of the assembled words")
	rootCmd.AddCommand(asmCmd)
}
