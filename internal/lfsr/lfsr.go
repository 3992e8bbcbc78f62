// Package lfsr generates GIFT's round constants with the 6-bit affine LFSR
//
//	c' = (c << 1) mod 64 | (1 ^ c4 ^ c5)
//
// seeded with zero. The constant for round r is the register after r+1 steps.
package lfsr

// Len is the number of constants in Table and the largest supported round count.
const Len = 48

// Table is the precomputed constant sequence for rounds 0 through Len-1.
var Table = [Len]byte{ //nolint:gochecknoglobals // round constants
	0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3e, 0x3d, 0x3b, 0x37, 0x2f, 0x1e, 0x3c,
	0x39, 0x33, 0x27, 0x0e, 0x1d, 0x3a, 0x35, 0x2b, 0x16, 0x2c, 0x18, 0x30,
	0x21, 0x02, 0x05, 0x0b, 0x17, 0x2e, 0x1c, 0x38, 0x31, 0x23, 0x06, 0x0d,
	0x1b, 0x36, 0x2d, 0x1a, 0x34, 0x29, 0x12, 0x24, 0x08, 0x11, 0x22, 0x04,
}

func step(c byte) byte {
	return (c<<1)&0x3f | (1 ^ (c>>4)&1 ^ (c>>5)&1)
}

// Constant recomputes the constant for round r from the seed. It costs O(r) but needs no state, so it suits callers
// that visit rounds out of order.
func Constant(r int) byte {
	var c byte
	for range r + 1 {
		c = step(c)
	}
	return c
}

// An LFSR produces the constants of consecutive rounds in O(1) each. The zero value is positioned before round 0.
//
// An LFSR must be owned by a single encryption; sharing one between concurrent encryptions interleaves their
// constants.
type LFSR struct {
	c     byte
	round int
}

// Next advances the register and returns the constant for the next round.
func (l *LFSR) Next() byte {
	l.c = step(l.c)
	l.round++
	return l.c
}

// Reset returns the register to its seed, so the following Next yields the round 0 constant.
func (l *LFSR) Reset() {
	l.c = 0
	l.round = 0
}

// Round returns the number of constants produced since the last reset.
func (l *LFSR) Round() int {
	return l.round
}
