package hexio

import (
	"errors"

	"github.com/ezrec/duasm/translate"
)

var f = translate.From

var (
	// Hex input errors
	ErrInvalidHex = errors.New(f("invalid hex format"))
)
