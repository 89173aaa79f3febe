package isa

import (
	"errors"
	"strconv"

	"github.com/ezrec/duasm/translate"
)

var f = translate.From

var (
	ErrArchUnknown = errors.New(f("unknown architecture"))
	ErrFormat      = errors.New(f("unsupported instruction format"))
	ErrExpansion   = errors.New(f("pseudo-instruction expansion unavailable"))
)

// ErrImmediateRange is returned when a value does not fit its bit field.
type ErrImmediateRange struct {
	Value int64
	Bits  int
}

func (err ErrImmediateRange) Error() string {
	return f("Immediate %s out of range for %s bits",
		strconv.FormatInt(err.Value, 10), strconv.Itoa(err.Bits))
}
