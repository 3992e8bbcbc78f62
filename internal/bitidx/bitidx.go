// Package bitidx is the single definition of how GIFT numbers the bits of a block held in a byte slice.
//
// A block is the big-endian integer of its bytes, and bit i is that integer's bit of weight 2^i. Bit 0 is therefore
// the low bit of the last byte and bit len(b)*8-1 is the high bit of the first byte. Nibble k is bits 4k through 4k+3,
// with bit 4k as its least significant bit. Every table in this module (S-box, permutation, subkey positions) is
// written against this numbering.
package bitidx

// Get returns bit i of b as 0 or 1.
func Get(b []byte, i int) byte {
	return (b[len(b)-1-i>>3] >> (i & 7)) & 1
}

// Xor flips bit i of b if v is 1. Only the low bit of v is used.
func Xor(b []byte, i int, v byte) {
	b[len(b)-1-i>>3] ^= (v & 1) << (i & 7)
}
