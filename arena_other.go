//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly) || purego

package gift

// An arena is a heap allocation on platforms without an anonymous mmap.
type arena struct {
	buf    []byte
	locked bool
}

func newArena(n int) (*arena, error) {
	return &arena{buf: make([]byte, n)}, nil
}

func (a *arena) free() error {
	clear(a.buf)
	return nil
}
