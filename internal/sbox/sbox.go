// Package sbox is the table form of GIFT's substitution layer.
package sbox

// Table is the GIFT S-box GS.
var Table = [16]byte{ //nolint:gochecknoglobals // S-box
	0x1, 0xa, 0x4, 0xc, 0x6, 0xf, 0x3, 0x9, 0x2, 0xd, 0xb, 0x7, 0x5, 0x0, 0x8, 0xe,
}

// Inverse is the inverse of Table.
var Inverse = [16]byte{ //nolint:gochecknoglobals // S-box
	0xd, 0x0, 0x8, 0x6, 0x2, 0xc, 0x4, 0xb, 0xe, 0x7, 0x1, 0xa, 0x3, 0x9, 0xf, 0x5,
}

// Bytes substitutes every nibble of state in place.
func Bytes(state []byte) {
	for i, b := range state {
		state[i] = Table[b>>4]<<4 | Table[b&0xf]
	}
}

// InvBytes undoes Bytes.
func InvBytes(state []byte) {
	for i, b := range state {
		state[i] = Inverse[b>>4]<<4 | Inverse[b&0xf]
	}
}
