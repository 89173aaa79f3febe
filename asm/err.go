package asm

import (
	"strconv"

	"github.com/ezrec/duasm/translate"
)

var f = translate.From

type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("Unknown instruction \"%v\"", string(err))
}

type ErrUnresolvedLabel string

func (err ErrUnresolvedLabel) Error() string {
	return f("Label \"%v\" not found", string(err))
}

type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("Unknown register \"%v\"", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrMalformedOperand is returned when an instruction has the wrong number
// of operands.
type ErrMalformedOperand struct {
	Mnemonic string
	Expected int
	Got      int
}

func (err ErrMalformedOperand) Error() string {
	return f("Malformed operands for \"%v\": expected %v, got %v",
		err.Mnemonic, strconv.Itoa(err.Expected), strconv.Itoa(err.Got))
}

// ErrLine locates an error at a source line.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}
