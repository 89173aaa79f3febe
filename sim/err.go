package sim

import (
	"errors"
	"strconv"

	"github.com/ezrec/duasm/translate"
)

var f = translate.From

var (
	ErrOpMissing = errors.New(f("operation missing"))
	ErrKind      = errors.New(f("operation kind unsupported"))
)

// ErrUnalignedAccess is the error of a load or store to an address that
// is not a multiple of 4. The address is reported signed.
type ErrUnalignedAccess struct {
	Address uint32
}

func (err ErrUnalignedAccess) Error() string {
	return f("Unaligned memory access at address %v", strconv.FormatInt(int64(int32(err.Address)), 10))
}
