// Package pbox is GIFT's bit permutation in its lookup-table and closed forms.
//
// The permutation moves bit i of the state to bit Position(i). Both forms use the numbering of package bitidx.
package pbox

import "github.com/codahale/gift/internal/bitidx"

// Table64 is the GIFT-64 permutation: bit i moves to bit Table64[i].
var Table64 = [64]byte{ //nolint:gochecknoglobals // permutation table
	0, 17, 34, 51, 48, 1, 18, 35, 32, 49, 2, 19, 16, 33, 50, 3,
	4, 21, 38, 55, 52, 5, 22, 39, 36, 53, 6, 23, 20, 37, 54, 7,
	8, 25, 42, 59, 56, 9, 26, 43, 40, 57, 10, 27, 24, 41, 58, 11,
	12, 29, 46, 63, 60, 13, 30, 47, 44, 61, 14, 31, 28, 45, 62, 15,
}

// Inverse64 is the inverse of Table64.
var Inverse64 = [64]byte{ //nolint:gochecknoglobals // permutation table
	0, 5, 10, 15, 16, 21, 26, 31, 32, 37, 42, 47, 48, 53, 58, 63,
	12, 1, 6, 11, 28, 17, 22, 27, 44, 33, 38, 43, 60, 49, 54, 59,
	8, 13, 2, 7, 24, 29, 18, 23, 40, 45, 34, 39, 56, 61, 50, 55,
	4, 9, 14, 3, 20, 25, 30, 19, 36, 41, 46, 35, 52, 57, 62, 51,
}

// Table128 is the GIFT-128 permutation: bit i moves to bit Table128[i].
var Table128 = [128]byte{ //nolint:gochecknoglobals // permutation table
	0, 33, 66, 99, 96, 1, 34, 67, 64, 97, 2, 35, 32, 65, 98, 3,
	4, 37, 70, 103, 100, 5, 38, 71, 68, 101, 6, 39, 36, 69, 102, 7,
	8, 41, 74, 107, 104, 9, 42, 75, 72, 105, 10, 43, 40, 73, 106, 11,
	12, 45, 78, 111, 108, 13, 46, 79, 76, 109, 14, 47, 44, 77, 110, 15,
	16, 49, 82, 115, 112, 17, 50, 83, 80, 113, 18, 51, 48, 81, 114, 19,
	20, 53, 86, 119, 116, 21, 54, 87, 84, 117, 22, 55, 52, 85, 118, 23,
	24, 57, 90, 123, 120, 25, 58, 91, 88, 121, 26, 59, 56, 89, 122, 27,
	28, 61, 94, 127, 124, 29, 62, 95, 92, 125, 30, 63, 60, 93, 126, 31,
}

// Inverse128 is the inverse of Table128.
var Inverse128 = [128]byte{ //nolint:gochecknoglobals // permutation table
	0, 5, 10, 15, 16, 21, 26, 31, 32, 37, 42, 47, 48, 53, 58, 63,
	64, 69, 74, 79, 80, 85, 90, 95, 96, 101, 106, 111, 112, 117, 122, 127,
	12, 1, 6, 11, 28, 17, 22, 27, 44, 33, 38, 43, 60, 49, 54, 59,
	76, 65, 70, 75, 92, 81, 86, 91, 108, 97, 102, 107, 124, 113, 118, 123,
	8, 13, 2, 7, 24, 29, 18, 23, 40, 45, 34, 39, 56, 61, 50, 55,
	72, 77, 66, 71, 88, 93, 82, 87, 104, 109, 98, 103, 120, 125, 114, 119,
	4, 9, 14, 3, 20, 25, 30, 19, 36, 41, 46, 35, 52, 57, 62, 51,
	68, 73, 78, 67, 84, 89, 94, 83, 100, 105, 110, 99, 116, 121, 126, 115,
}

// Position returns where bit i of a width-bit state moves to. Width must be 64 or 128.
func Position(i, width int) int {
	m := width / 4
	return 4*(i/16) + m*((3*((i%16)/4)+i%4)%4) + i%4
}

// Apply permutes src into dst with a lookup table, moving bit i to bit table[i]. Pass an inverse table to undo the
// permutation. dst and src must not overlap.
func Apply(dst, src, table []byte) {
	clear(dst)
	for i, p := range table {
		bitidx.Xor(dst, int(p), bitidx.Get(src, i))
	}
}

// Permute permutes src into dst by evaluating Position for every bit. dst and src must not overlap.
func Permute(dst, src []byte) {
	width := len(src) * 8
	clear(dst)
	for i := range width {
		bitidx.Xor(dst, Position(i, width), bitidx.Get(src, i))
	}
}

// InvPermute undoes Permute by gathering bit Position(i) back into bit i. dst and src must not overlap.
func InvPermute(dst, src []byte) {
	width := len(src) * 8
	clear(dst)
	for i := range width {
		bitidx.Xor(dst, i, bitidx.Get(src, Position(i, width)))
	}
}
