package gift

import (
	"crypto/cipher"

	"github.com/codahale/gift/internal/mem"
)

type blockCipher struct {
	s *Schedule
}

var _ cipher.Block = (*blockCipher)(nil)

// NewCipher returns a cipher.Block for the given parameters and key, for use with the modes in crypto/cipher. The
// expanded key is released when the returned value is garbage collected.
func NewCipher(p Params, key []byte) (cipher.Block, error) {
	s, err := p.Schedule(key)
	if err != nil {
		return nil, err
	}
	return &blockCipher{s: s}, nil
}

func (c *blockCipher) BlockSize() int {
	return c.s.params.BlockSize()
}

func (c *blockCipher) Encrypt(dst, src []byte) {
	c.check(dst, src)
	n := c.BlockSize()
	c.s.block(dst[:n], src[:n], (*pipeline).encrypt)
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	c.check(dst, src)
	n := c.BlockSize()
	c.s.block(dst[:n], src[:n], (*pipeline).decrypt)
}

func (c *blockCipher) check(dst, src []byte) {
	n := c.BlockSize()
	if len(src) < n {
		panic("gift: input not full block")
	}
	if len(dst) < n {
		panic("gift: output not full block")
	}
	if mem.InexactOverlap(dst[:n], src[:n]) {
		panic("gift: invalid buffer overlap")
	}
}
