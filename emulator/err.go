package emulator

import (
	"errors"

	"github.com/ezrec/duasm/translate"
)

var f = translate.From

var (
	ErrUndoEmpty = errors.New(f("nothing to undo"))
)

// ErrCommand indicates an unknown or misused session command.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("command '%v' unknown or malformed, try :help", string(err))
}
