package gift

import (
	"fmt"
	"runtime"

	"github.com/codahale/gift/internal/mem"
)

// A Schedule is a key expanded for a fixed width, round count, and implementation. It holds the key and one subkey
// mask per round in memory obtained directly from the operating system where possible, locked into RAM when the
// process is permitted to do so.
//
// A Schedule is safe for concurrent use by Encrypt, Decrypt, and Subkey. Release must not be called concurrently with
// any other method. A Schedule that becomes unreachable without being released is released by the garbage collector.
type Schedule struct {
	params  Params
	arena   *arena
	key     *[KeySize]byte
	masks   []byte
	cleanup runtime.Cleanup
}

// DeriveSubkeys expands key into a Schedule for the table implementation of the given width and round count.
func DeriveSubkeys(width Width, key []byte, rounds int) (*Schedule, error) {
	return Params{Width: width, Rounds: rounds, Impl: Table}.Schedule(key)
}

// Schedule expands key into a Schedule. The caller should call Release when done with it.
func (p Params) Schedule(key []byte) (*Schedule, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidLength, len(key), KeySize)
	}

	a, err := newArena(KeySize + p.Rounds*p.BlockSize())
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		params: p,
		arena:  a,
		key:    (*[KeySize]byte)(a.buf[:KeySize]),
		masks:  a.buf[KeySize:],
	}
	copy(s.key[:], key)
	expand(s.masks, p.Width, s.key, p.Rounds)

	s.cleanup = runtime.AddCleanup(s, func(a *arena) { _ = a.free() }, a)

	return s, nil
}

// Params returns the parameters the schedule was derived for.
func (s *Schedule) Params() Params {
	return s.params
}

// Width returns the block width of the schedule.
func (s *Schedule) Width() Width {
	return s.params.Width
}

// Rounds returns the number of rounds in the schedule.
func (s *Schedule) Rounds() int {
	return s.params.Rounds
}

// Locked reports whether the schedule's memory is locked into RAM and so cannot be paged out.
func (s *Schedule) Locked() bool {
	return s.arena != nil && s.arena.locked
}

// Subkey appends the subkey mask XORed into the state in round r to dst and returns the resulting slice. The mask
// includes the round constant and the always-set top bit.
func (s *Schedule) Subkey(dst []byte, r int) ([]byte, error) {
	if s.arena == nil {
		return nil, ErrReleased
	}

	if r < 0 || r >= s.params.Rounds {
		return nil, fmt.Errorf("%w: round %d is outside [0, %d)", ErrInvalidRoundCount, r, s.params.Rounds)
	}

	n := s.params.BlockSize()
	ret, out := mem.SliceForAppend(dst, n)
	copy(out, s.masks[r*n:(r+1)*n])
	runtime.KeepAlive(s)
	return ret, nil
}

// Encrypt encrypts a single block of plaintext, appends the ciphertext to dst, and returns the resulting slice.
func (s *Schedule) Encrypt(dst, plaintext []byte) ([]byte, error) {
	return s.crypt(dst, plaintext, (*pipeline).encrypt)
}

// Decrypt decrypts a single block of ciphertext, appends the plaintext to dst, and returns the resulting slice.
func (s *Schedule) Decrypt(dst, ciphertext []byte) ([]byte, error) {
	return s.crypt(dst, ciphertext, (*pipeline).decrypt)
}

func (s *Schedule) crypt(dst, in []byte, f func(*pipeline, []byte)) ([]byte, error) {
	if s.arena == nil {
		return nil, ErrReleased
	}

	n := s.params.BlockSize()
	if len(in) != n {
		return nil, fmt.Errorf("%w: %s block is %d bytes, got %d", ErrInvalidLength, s.params.Width, n, len(in))
	}

	ret, out := mem.SliceForAppend(dst, n)
	s.block(out, in, f)
	return ret, nil
}

// block runs f over a copy of in and writes the result to out. out and in may alias.
func (s *Schedule) block(out, in []byte, f func(*pipeline, []byte)) {
	var state [16]byte
	t := state[:len(in)]
	copy(t, in)

	pl := pipeline{params: s.params, key: s.key, masks: s.masks}
	f(&pl, t)
	copy(out, t)

	runtime.KeepAlive(s)
}

// Release wipes the schedule and returns its memory. Any later use of the schedule returns ErrReleased.
func (s *Schedule) Release() error {
	if s.arena == nil {
		return ErrReleased
	}

	s.cleanup.Stop()
	a := s.arena
	s.arena, s.key, s.masks = nil, nil, nil
	return a.free()
}
