package emulator

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// commands lists the session commands with their help text.
var commands = [][2]string{
	{":regs", "show all registers"},
	{":mem", "show memory"},
	{":list", "show the program listing"},
	{":labels", "show label addresses"},
	{":undo", "remove the last line"},
	{":reset", "clear the program"},
	{":load FILE", "replace the program with FILE"},
	{":save FILE", "export the program as a hex file"},
	{":help", "show this help"},
	{":quit", "end the session"},
}

// printAll writes each line of a sequence.
func printAll(output io.Writer, lines iter.Seq[string]) {
	for line := range lines {
		fmt.Fprintln(output, line)
	}
}

// Exec runs a session command, or enters a program line, writing its
// output. quit is set by :quit.
func (emu *Emulator) Exec(text string, output io.Writer) (quit bool, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	if !strings.HasPrefix(text, ":") {
		trace := emu.Enter(text)
		if trace.Record != nil {
			fmt.Fprintln(output, trace.Record.String())
			for _, change := range trace.Changed {
				fmt.Fprintln(output, "  "+change)
			}
		}
		return
	}

	words := strings.Fields(text)
	args := words[1:]

	switch {
	case words[0] == ":quit" && len(args) == 0:
		quit = true
	case words[0] == ":regs" && len(args) == 0:
		printAll(output, emu.Result.RegisterDump())
	case words[0] == ":mem" && len(args) == 0:
		printAll(output, emu.Result.MemoryDump())
	case words[0] == ":list" && len(args) == 0:
		printAll(output, emu.Result.Listing())
	case words[0] == ":labels" && len(args) == 0:
		printAll(output, emu.Labels())
	case words[0] == ":undo" && len(args) == 0:
		err = emu.Undo()
	case words[0] == ":reset" && len(args) == 0:
		emu.Reset()
	case words[0] == ":help" && len(args) == 0:
		for _, cmd := range commands {
			fmt.Fprintf(output, "%-12s %s\n", cmd[0], f(cmd[1]))
		}
	case words[0] == ":load" && len(args) == 1:
		var inf *os.File
		inf, err = os.Open(args[0])
		if err != nil {
			return
		}
		defer inf.Close()
		err = emu.Load(inf)
	case words[0] == ":save" && len(args) == 1:
		var ouf *os.File
		ouf, err = os.Create(args[0])
		if err != nil {
			return
		}
		err = emu.Result.WriteHex(ouf)
		if cerr := ouf.Close(); err == nil {
			err = cerr
		}
	default:
		err = ErrCommand(text)
	}

	return
}
