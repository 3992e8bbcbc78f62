// Package testdata provides a deterministic source of test inputs.
package testdata

import "crypto/sha3"

// DRBG is a deterministic random bit generator built on SHAKE128. Two DRBGs created with the same domain produce the
// same stream.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG keyed with the given domain string.
func New(domain string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(domain))
	return &DRBG{h: h}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Key returns the next 16 bytes of the stream as a key.
func (d *DRBG) Key() *[16]byte {
	return (*[16]byte)(d.Data(16))
}
