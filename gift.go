// Package gift implements the [GIFT] lightweight block cipher: GIFT-64 with a 64-bit block and GIFT-128 with a 128-bit
// block, both under a 128-bit key and a caller-chosen number of rounds.
//
// Each round substitutes every nibble of the state through a 4-bit S-box, permutes the state's bits, and then XORs in
// a subkey and a round constant drawn from the 128-bit key state, which is then rolled for the next round.
//
// The round function has three interchangeable implementations, selected with [Implementation]: a bitsliced one that
// evaluates the S-box as a boolean network over four bit-planes, a table-driven one that uses lookup tables and a
// precomputed key schedule, and an on-the-fly one that derives every permutation index, key word, and round constant
// as it goes. All three produce identical output.
//
// Bits are numbered as in the published GIFT test vectors: the block is read as a big-endian integer and bit i is the
// bit of weight 2^i.
//
// GIFT is not constant-time in this implementation and none of these are suitable where side channels matter.
//
// [GIFT]: https://eprint.iacr.org/2017/622.pdf
package gift

import (
	"errors"
	"fmt"

	"github.com/codahale/gift/internal/keystate"
	"github.com/codahale/gift/internal/lfsr"
	"github.com/codahale/gift/internal/mem"
)

// KeySize is the size of a GIFT key in bytes.
const KeySize = keystate.Size

// MaxRounds is the largest supported round count. Round constants are defined for this many rounds.
const MaxRounds = lfsr.Len

var (
	// ErrInvalidLength is returned when a key or block has the wrong size for the cipher, or the block width is not one
	// of Width64 or Width128.
	ErrInvalidLength = errors.New("gift: invalid length")

	// ErrInvalidRoundCount is returned when the round count is negative or larger than MaxRounds.
	ErrInvalidRoundCount = errors.New("gift: invalid round count")

	// ErrInvalidImplementation is returned when Params names an unknown Implementation.
	ErrInvalidImplementation = errors.New("gift: invalid implementation")

	// ErrAllocation is returned when memory for a Schedule cannot be obtained.
	ErrAllocation = errors.New("gift: schedule allocation failed")

	// ErrReleased is returned when a Schedule is used after Release.
	ErrReleased = errors.New("gift: schedule released")
)

// Width is the block size of a GIFT variant in bits.
type Width int

const (
	// Width64 selects GIFT-64.
	Width64 Width = 64
	// Width128 selects GIFT-128.
	Width128 Width = 128
)

// BlockSize returns the block size in bytes.
func (w Width) BlockSize() int {
	return int(w) / 8
}

func (w Width) String() string {
	return fmt.Sprintf("GIFT-%d", int(w))
}

func (w Width) valid() bool {
	return w == Width64 || w == Width128
}

// Params selects a GIFT variant and the implementation that computes it.
type Params struct {
	// Width is the block width.
	Width Width

	// Rounds is the number of rounds, between 0 and MaxRounds. Zero rounds leaves the block unchanged.
	Rounds int

	// Impl is the implementation of the round function. The zero value is Bitsliced.
	Impl Implementation
}

//nolint:gochecknoglobals // presets
var (
	// GIFT64 is GIFT-64 with its standard 28 rounds.
	GIFT64 = Params{Width: Width64, Rounds: 28}

	// GIFT128 is GIFT-128 with its standard 40 rounds.
	GIFT128 = Params{Width: Width128, Rounds: 40}
)

// BlockSize returns the block size in bytes.
func (p Params) BlockSize() int {
	return p.Width.BlockSize()
}

// Encrypt encrypts a single block of plaintext with key, appends the ciphertext to dst, and returns the resulting
// slice. Neither plaintext nor key is modified, and dst is untouched if an error is returned.
func (p Params) Encrypt(dst, plaintext, key []byte) ([]byte, error) {
	return p.crypt(dst, plaintext, key, (*pipeline).encrypt)
}

// Decrypt decrypts a single block of ciphertext with key, appends the plaintext to dst, and returns the resulting
// slice. Neither ciphertext nor key is modified, and dst is untouched if an error is returned.
func (p Params) Decrypt(dst, ciphertext, key []byte) ([]byte, error) {
	return p.crypt(dst, ciphertext, key, (*pipeline).decrypt)
}

func (p Params) crypt(dst, in, key []byte, f func(*pipeline, []byte)) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	k, err := checkKey(key)
	if err != nil {
		return nil, err
	}

	if len(in) != p.BlockSize() {
		return nil, fmt.Errorf("%w: %s block is %d bytes, got %d", ErrInvalidLength, p.Width, p.BlockSize(), len(in))
	}

	pl := pipeline{params: p, key: &k}
	if p.Impl == Table {
		pl.masks = make([]byte, p.Rounds*p.BlockSize())
		expand(pl.masks, p.Width, &k, p.Rounds)
	}

	// Work on a local copy so that dst may alias the input.
	var state [16]byte
	s := state[:p.BlockSize()]
	copy(s, in)
	f(&pl, s)

	ret, out := mem.SliceForAppend(dst, len(s))
	copy(out, s)
	return ret, nil
}

func (p Params) validate() error {
	if !p.Width.valid() {
		return fmt.Errorf("%w: unknown width %d", ErrInvalidLength, int(p.Width))
	}

	if p.Rounds < 0 || p.Rounds > MaxRounds {
		return fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidRoundCount, p.Rounds, MaxRounds)
	}

	if !p.Impl.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidImplementation, int(p.Impl))
	}

	return nil
}

func checkKey(key []byte) ([KeySize]byte, error) {
	var k [KeySize]byte
	if len(key) != KeySize {
		return k, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidLength, len(key), KeySize)
	}
	copy(k[:], key)
	return k, nil
}

// EncryptBlock encrypts a single block of plaintext with the given width, key, and round count using the bitsliced
// implementation. It appends the ciphertext to dst and returns the resulting slice.
func EncryptBlock(width Width, dst, plaintext, key []byte, rounds int) ([]byte, error) {
	return Params{Width: width, Rounds: rounds}.Encrypt(dst, plaintext, key)
}

// DecryptBlock decrypts a single block of ciphertext with the given width, key, and round count using the bitsliced
// implementation. It appends the plaintext to dst and returns the resulting slice.
func DecryptBlock(width Width, dst, ciphertext, key []byte, rounds int) ([]byte, error) {
	return Params{Width: width, Rounds: rounds}.Decrypt(dst, ciphertext, key)
}
