package isa

// SignExtend reinterprets the low bits of value as a two's-complement field
// and widens it to 32 bits.
func SignExtend(value uint32, bits int) uint32 {
	mask := uint32(1)<<bits - 1
	value &= mask
	if value&(1<<(bits-1)) != 0 {
		value |= ^mask
	}

	return value
}

// FitImmediate checks that value is representable in a bits-wide field,
// either as a signed or as an unsigned quantity, and returns the field
// contents sign-extended to 32 bits.
func FitImmediate(value int64, bits int) (imm int32, err error) {
	if value < -(int64(1)<<(bits-1)) || value >= int64(1)<<bits {
		err = ErrImmediateRange{Value: value, Bits: bits}
		return
	}

	imm = int32(SignExtend(uint32(value), bits))

	return
}

// fitSigned checks that value is a signed bits-wide quantity.
func fitSigned(value int64, bits int) (err error) {
	if value < -(int64(1)<<(bits-1)) || value >= int64(1)<<(bits-1) {
		err = ErrImmediateRange{Value: value, Bits: bits}
	}

	return
}
