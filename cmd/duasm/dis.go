package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/duasm/asm"
)

// disCmd represents the dis command
var disCmd = &cobra.Command{
	Use:   "dis [hexFile]",
	Short: "Disassemble a hex file",
	Long: `Dis reads one hexadecimal word per line from a file (or stdin) and
prints each word with its decoded mnemonic text.
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

		lines, err := asm.Disassemble(tbl, inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", name, err)
			return
		}

		out := cmd.OutOrStdout()
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}

		return
	},
}

func init() {
	rootCmd.AddCommand(disCmd)
}
