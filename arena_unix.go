//go:build (linux || darwin || freebsd || netbsd || openbsd || dragonfly) && !purego

package gift

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// An arena is an anonymous private mapping outside the Go heap, so the garbage collector never copies its contents.
type arena struct {
	buf    []byte
	locked bool
}

func newArena(n int) (*arena, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrAllocation, n, err)
	}

	// Locking is best-effort: RLIMIT_MEMLOCK is often small for unprivileged processes.
	return &arena{buf: b, locked: unix.Mlock(b) == nil}, nil
}

func (a *arena) free() error {
	clear(a.buf)

	if a.locked {
		if err := unix.Munlock(a.buf); err != nil {
			return fmt.Errorf("gift: munlock: %w", err)
		}
	}

	if err := unix.Munmap(a.buf); err != nil {
		return fmt.Errorf("gift: munmap: %w", err)
	}
	return nil
}
