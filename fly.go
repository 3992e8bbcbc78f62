package gift

import (
	"github.com/codahale/gift/internal/bitidx"
	"github.com/codahale/gift/internal/keystate"
	"github.com/codahale/gift/internal/lfsr"
	"github.com/codahale/gift/internal/pbox"
	"github.com/codahale/gift/internal/sbox"
)

func encryptFly(s []byte, w Width, key *[KeySize]byte, rounds int) {
	ks := keystate.Bytes(*key)
	var c lfsr.LFSR
	var buf [16]byte
	t := buf[:len(s)]

	for range rounds {
		sbox.Bytes(s)
		pbox.Permute(t, s)
		copy(s, t)
		addKeyFly(s, w, &ks, c.Next())
		ks.Advance()
	}
}

func decryptFly(s []byte, w Width, key *[KeySize]byte, rounds int) {
	ks := keystate.Bytes(*key)
	for range rounds {
		ks.Advance()
	}

	var buf [16]byte
	t := buf[:len(s)]

	for r := rounds - 1; r >= 0; r-- {
		ks.Retreat()
		addKeyFly(s, w, &ks, lfsr.Constant(r))
		pbox.InvPermute(t, s)
		copy(s, t)
		sbox.InvBytes(s)
	}
}

// addKeyFly XORs the round's key bits and constant into s, reading the key words straight from their bytes.
func addKeyFly(s []byte, w Width, ks *keystate.Bytes, rc byte) {
	switch w {
	case Width64:
		u, v := ks.Subkey64()
		for i := range 16 {
			bitidx.Xor(s, 4*i+1, bitidx.Get(u, i))
			bitidx.Xor(s, 4*i, bitidx.Get(v, i))
		}
	case Width128:
		u, v := ks.Subkey128()
		for i := range 32 {
			bitidx.Xor(s, 4*i+2, bitidx.Get(u, i))
			bitidx.Xor(s, 4*i+1, bitidx.Get(v, i))
		}
	}

	for j := range 6 {
		bitidx.Xor(s, 4*j+3, rc>>j)
	}
	bitidx.Xor(s, int(w)-1, 1)
}
