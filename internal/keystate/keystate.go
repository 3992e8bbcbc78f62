// Package keystate holds GIFT's 128-bit key state and its per-round update.
//
// The key is split into eight 16-bit words k0 through k7, with k0 the least significant 16 bits of the big-endian key.
// Each round the state is rolled by
//
//	k7 || k6 || ... || k0  <-  (k1 >>> 2) || (k0 >>> 12) || k7 || ... || k2
//
// which is a bijection with period 32.
package keystate

import (
	"encoding/binary"
	"math/bits"
)

// Size is the key size in bytes.
const Size = 16

// Period is the number of Advance calls after which every key state returns to itself.
const Period = 32

// A State is the key state as eight 16-bit words, indexed so that State[i] is k_i.
type State [8]uint16

// New splits a key into its key state.
func New(key *[Size]byte) State {
	var s State
	for i := range s {
		s[i] = binary.BigEndian.Uint16(key[14-2*i:])
	}
	return s
}

// Bytes returns the key state in its byte form.
func (s *State) Bytes() Bytes {
	var b Bytes
	for i, w := range s {
		binary.BigEndian.PutUint16(b[14-2*i:], w)
	}
	return b
}

// Advance rolls the key state to the next round.
func (s *State) Advance() {
	t6 := bits.RotateLeft16(s[0], -12)
	t7 := bits.RotateLeft16(s[1], -2)
	copy(s[0:6], s[2:8])
	s[6] = t6
	s[7] = t7
}

// Retreat undoes one Advance.
func (s *State) Retreat() {
	k0 := bits.RotateLeft16(s[6], 12)
	k1 := bits.RotateLeft16(s[7], 2)
	copy(s[2:8], s[0:6])
	s[0] = k0
	s[1] = k1
}

// Subkey64 returns the words GIFT-64 injects into the state: U = k1 and V = k0.
func (s *State) Subkey64() (u, v uint16) {
	return s[1], s[0]
}

// Subkey128 returns the words GIFT-128 injects into the state: U = k5 || k4 and V = k1 || k0.
func (s *State) Subkey128() (u, v uint32) {
	return uint32(s[5])<<16 | uint32(s[4]), uint32(s[1])<<16 | uint32(s[0])
}

// Bytes is the key state stored as the big-endian bytes of the key, k7 first. It is the form the on-the-fly pipeline
// rolls in place each round.
type Bytes [Size]byte

// State returns the word form of b.
func (b *Bytes) State() State {
	return New((*[Size]byte)(b))
}

// Advance rolls the key state to the next round.
func (b *Bytes) Advance() {
	k1hi, k1lo := b[12], b[13]
	k0hi, k0lo := b[14], b[15]
	copy(b[4:16], b[0:12])

	// k6 = k0 >>> 12
	b[2] = k0hi<<4 | k0lo>>4
	b[3] = k0lo<<4 | k0hi>>4

	// k7 = k1 >>> 2
	b[0] = k1hi>>2 | k1lo<<6
	b[1] = k1lo>>2 | k1hi<<6
}

// Retreat undoes one Advance.
func (b *Bytes) Retreat() {
	k7hi, k7lo := b[0], b[1]
	k6hi, k6lo := b[2], b[3]
	copy(b[0:12], b[4:16])

	// k0 = k6 <<< 12
	b[14] = k6hi>>4 | k6lo<<4
	b[15] = k6lo>>4 | k6hi<<4

	// k1 = k7 <<< 2
	b[12] = k7hi<<2 | k7lo>>6
	b[13] = k7lo<<2 | k7hi>>6
}

// Subkey64 returns the bytes of U = k1 and V = k0, aliasing b.
func (b *Bytes) Subkey64() (u, v []byte) {
	return b[12:14], b[14:16]
}

// Subkey128 returns the bytes of U = k5 || k4 and V = k1 || k0, aliasing b.
func (b *Bytes) Subkey128() (u, v []byte) {
	return b[4:8], b[12:16]
}
