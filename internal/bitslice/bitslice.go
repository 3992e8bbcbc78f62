// Package bitslice is GIFT's round function over four bit-planes.
//
// A block of n nibbles is held as four n-bit words: plane j holds bit j of every nibble, so bit i of plane j is bit
// 4i+j of the block. GIFT-64 uses 16-bit planes and GIFT-128 uses 32-bit planes. The S-box becomes a short boolean
// network evaluated on all nibbles at once, and the bit permutation becomes an independent rotation-and-merge of each
// plane, since GIFT never moves a bit to a different position within its nibble.
package bitslice

import (
	"math/bits"

	"github.com/codahale/gift/internal/bitidx"
)

// Word is the type of a single plane.
type Word interface {
	~uint16 | ~uint32
}

// Planes is a bitsliced block.
type Planes[W Word] [4]W

// Pack slices a block of 4*size(W) bits into planes. It reads only that many leading bytes of src.
func Pack[W Word](src []byte) Planes[W] {
	var p Planes[W]
	n := rows[W]() * 4
	src = src[:n/2]
	for i := range n {
		for j := range p {
			p[j] |= W(bitidx.Get(src, 4*i+j)) << i
		}
	}
	return p
}

// Unpack writes the planes back out as a block into the leading bytes of dst.
func Unpack[W Word](dst []byte, p *Planes[W]) {
	n := rows[W]() * 4
	dst = dst[:n/2]
	clear(dst)
	for i := range n {
		for j, w := range p {
			bitidx.Xor(dst, 4*i+j, byte(w>>i))
		}
	}
}

// Sub applies the S-box to every nibble.
func Sub[W Word](s *Planes[W]) {
	s[1] ^= s[0] & s[2]
	s[0] ^= s[1] & s[3]
	s[2] ^= s[0] | s[1]
	s[3] ^= s[2]
	s[1] ^= s[3]
	s[3] = ^s[3]
	s[2] ^= s[0] & s[1]
	s[0], s[3] = s[3], s[0]
}

// InvSub undoes Sub by running its steps in reverse.
func InvSub[W Word](s *Planes[W]) {
	s[0], s[3] = s[3], s[0]
	s[2] ^= s[0] & s[1]
	s[3] = ^s[3]
	s[1] ^= s[3]
	s[3] ^= s[2]
	s[2] ^= s[0] | s[1]
	s[0] ^= s[1] & s[3]
	s[1] ^= s[0] & s[2]
}

// Permute applies the bit permutation to every plane.
func Permute[W Word](s *Planes[W]) {
	s[0] = RowPerm(s[0], 0, 3, 2, 1)
	s[1] = RowPerm(s[1], 1, 0, 3, 2)
	s[2] = RowPerm(s[2], 2, 1, 0, 3)
	s[3] = RowPerm(s[3], 3, 2, 1, 0)
}

// InvPermute undoes Permute.
func InvPermute[W Word](s *Planes[W]) {
	s[0] = InvRowPerm(s[0], 0, 3, 2, 1)
	s[1] = InvRowPerm(s[1], 1, 0, 3, 2)
	s[2] = InvRowPerm(s[2], 2, 1, 0, 3)
	s[3] = InvRowPerm(s[3], 3, 2, 1, 0)
}

// RowPerm moves bit 4b+t of x to bit b+R*Bt, where R is a quarter of the word size. Viewing the plane as R rows of
// four bits, column t of every row is gathered into row Bt.
func RowPerm[W Word](x W, b0, b1, b2, b3 int) W {
	r := rows[W]()
	var y W
	for b := range r {
		y |= (x>>(4*b)&1)<<(b+r*b0) |
			(x>>(4*b+1)&1)<<(b+r*b1) |
			(x>>(4*b+2)&1)<<(b+r*b2) |
			(x>>(4*b+3)&1)<<(b+r*b3)
	}
	return y
}

// InvRowPerm undoes RowPerm with the same arguments.
func InvRowPerm[W Word](x W, b0, b1, b2, b3 int) W {
	r := rows[W]()
	var y W
	for b := range r {
		y |= (x>>(b+r*b0)&1)<<(4*b) |
			(x>>(b+r*b1)&1)<<(4*b+1) |
			(x>>(b+r*b2)&1)<<(4*b+2) |
			(x>>(b+r*b3)&1)<<(4*b+3)
	}
	return y
}

// rows returns R, the number of bits in a quarter of a plane.
func rows[W Word]() int {
	return bits.OnesCount64(uint64(^W(0))) / 4
}
