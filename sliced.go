package gift

import (
	"github.com/codahale/gift/internal/bitslice"
	"github.com/codahale/gift/internal/keystate"
	"github.com/codahale/gift/internal/lfsr"
)

func encryptSliced(s []byte, w Width, key *[KeySize]byte, rounds int) {
	if w == Width64 {
		slicedEncrypt(s, keystate.New(key), rounds, 0, (*keystate.State).Subkey64)
	} else {
		slicedEncrypt(s, keystate.New(key), rounds, 1, (*keystate.State).Subkey128)
	}
}

func decryptSliced(s []byte, w Width, key *[KeySize]byte, rounds int) {
	if w == Width64 {
		slicedDecrypt(s, keystate.New(key), rounds, 0, (*keystate.State).Subkey64)
	} else {
		slicedDecrypt(s, keystate.New(key), rounds, 1, (*keystate.State).Subkey128)
	}
}

// slicedEncrypt runs the round function over planes of type W. V is added to plane lane and U to plane lane+1;
// the round constant and top bit always go to plane 3.
func slicedEncrypt[W bitslice.Word](
	s []byte, ks keystate.State, rounds, lane int, subkey func(*keystate.State) (u, v W),
) {
	p := bitslice.Pack[W](s)
	top := ^(^W(0) >> 1)
	var c lfsr.LFSR

	for range rounds {
		bitslice.Sub(&p)
		bitslice.Permute(&p)

		u, v := subkey(&ks)
		p[lane] ^= v
		p[lane+1] ^= u
		p[3] ^= top | W(c.Next())

		ks.Advance()
	}

	bitslice.Unpack(s, &p)
}

func slicedDecrypt[W bitslice.Word](
	s []byte, ks keystate.State, rounds, lane int, subkey func(*keystate.State) (u, v W),
) {
	for range rounds {
		ks.Advance()
	}

	p := bitslice.Pack[W](s)
	top := ^(^W(0) >> 1)

	for r := rounds - 1; r >= 0; r-- {
		ks.Retreat()

		u, v := subkey(&ks)
		p[lane] ^= v
		p[lane+1] ^= u
		p[3] ^= top | W(lfsr.Constant(r))

		bitslice.InvPermute(&p)
		bitslice.InvSub(&p)
	}

	bitslice.Unpack(s, &p)
}
