package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/duasm/emulator"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl [sourceFile]",
	Short: "Trace a program one line at a time",
	Long: `Repl starts an interactive tracing session. Each entered line is
added to the program, the program is reassembled, and the line's words and
the registers it changed are printed. Commands start with ':', see :help.

An optional source file is loaded as the initial program.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		tbl, err := table()
		if err != nil {
			return
		}

		emu := emulator.NewEmulator(tbl)
		emu.Verbose = verbose
		emu.Assembler.HardwireZero = hardwireZero

		if len(args) == 1 {
			var inf *os.File
			inf, err = os.Open(args[0])
			if err != nil {
				return
			}
			err = emu.Load(inf)
			inf.Close()
			if err != nil {
				return
			}
		}

		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return replStream(emu, os.Stdin, cmd.OutOrStdout())
		}

		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return
		}
		defer term.Restore(fd, oldState)

		screen := struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}
		terminal := term.NewTerminal(screen, tbl.Arch.String()+"> ")

		for {
			var line string
			line, err = terminal.ReadLine()
			if errors.Is(err, io.EOF) {
				err = nil
				return
			}
			if err != nil {
				return
			}

			quit, cerr := emu.Exec(line, terminal)
			if cerr != nil {
				fmt.Fprintln(terminal, f("error: %v", cerr))
			}
			if quit {
				return
			}
		}
	},
}

// replStream runs a session over a non-interactive input.
func replStream(emu *emulator.Emulator, input io.Reader, output io.Writer) (err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		quit, cerr := emu.Exec(scanner.Text(), output)
		if cerr != nil {
			fmt.Fprintln(output, f("error: %v", cerr))
		}
		if quit {
			return
		}
	}

	err = scanner.Err()

	return
}

func init() {
	rootCmd.AddCommand(replCmd)
}
