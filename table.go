package gift

import (
	"slices"

	"github.com/codahale/gift/internal/bitidx"
	"github.com/codahale/gift/internal/keystate"
	"github.com/codahale/gift/internal/lfsr"
	"github.com/codahale/gift/internal/mem"
	"github.com/codahale/gift/internal/pbox"
	"github.com/codahale/gift/internal/sbox"
)

// expand writes the subkey mask of every round into masks, one block-sized mask per round. Each mask holds the round's
// key bits, its round constant, and the always-set top bit, so a round's key addition is a single XOR.
func expand(masks []byte, w Width, key *[KeySize]byte, rounds int) {
	n := w.BlockSize()
	ks := keystate.New(key)
	var c lfsr.LFSR

	for r := range rounds {
		m := masks[r*n : (r+1)*n]
		clear(m)

		switch w {
		case Width64:
			u, v := ks.Subkey64()
			for i := range 16 {
				bitidx.Xor(m, 4*i+1, byte(u>>i))
				bitidx.Xor(m, 4*i, byte(v>>i))
			}
		case Width128:
			u, v := ks.Subkey128()
			for i := range 32 {
				bitidx.Xor(m, 4*i+2, byte(u>>i))
				bitidx.Xor(m, 4*i+1, byte(v>>i))
			}
		}

		rc := c.Next()
		for j := range 6 {
			bitidx.Xor(m, 4*j+3, rc>>j)
		}
		bitidx.Xor(m, n*8-1, 1)

		ks.Advance()
	}
}

func permTables(w Width) (perm, inv []byte) {
	if w == Width64 {
		return pbox.Table64[:], pbox.Inverse64[:]
	}
	return pbox.Table128[:], pbox.Inverse128[:]
}

func encryptTable(s []byte, w Width, masks []byte) {
	perm, _ := permTables(w)
	var buf [16]byte
	t := buf[:len(s)]

	for m := range slices.Chunk(masks, len(s)) {
		sbox.Bytes(s)
		pbox.Apply(t, s, perm)
		mem.XOR(s, t, m)
	}
}

func decryptTable(s []byte, w Width, masks []byte) {
	_, inv := permTables(w)
	var buf [16]byte
	t := buf[:len(s)]

	for r := len(masks)/len(s) - 1; r >= 0; r-- {
		mem.XOR(t, s, masks[r*len(s):(r+1)*len(s)])
		pbox.Apply(s, t, inv)
		sbox.InvBytes(s)
	}
}
