package pbox

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/codahale/gift/internal/bitidx"
)

func TestPositionMatchesTables(t *testing.T) {
	for i, p := range Table64 {
		if got := Position(i, 64); got != int(p) {
			t.Errorf("Position(%d, 64) = %d, want = %d", i, got, p)
		}
	}

	for i, p := range Table128 {
		if got := Position(i, 128); got != int(p) {
			t.Errorf("Position(%d, 128) = %d, want = %d", i, got, p)
		}
	}
}

func TestBijection(t *testing.T) {
	tests := []struct {
		name           string
		table, inverse []byte
	}{
		{"64", Table64[:], Inverse64[:]},
		{"128", Table128[:], Inverse128[:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]bool, len(tt.table))
			for i, p := range tt.table {
				if seen[p] {
					t.Fatalf("table[%d] = %d repeats an earlier output", i, p)
				}
				seen[p] = true

				if got := tt.inverse[p]; int(got) != i {
					t.Errorf("inverse[table[%d]] = %d", i, got)
				}
			}
		})
	}
}

func TestNibblePositionPreserved(t *testing.T) {
	// Every bit keeps its position within its nibble, which is what lets the bitsliced form permute each plane
	// independently.
	for i := range 128 {
		if got, want := Position(i, 128)%4, i%4; got != want {
			t.Errorf("Position(%d, 128) %% 4 = %d, want = %d", i, got, want)
		}
	}
}

func TestSingleBit(t *testing.T) {
	src := make([]byte, 8)
	bitidx.Xor(src, 1, 1)

	dst := make([]byte, 8)
	Apply(dst, src, Table64[:])

	for i := range 64 {
		want := byte(0)
		if i == 17 {
			want = 1
		}
		if got := bitidx.Get(dst, i); got != want {
			t.Errorf("bit %d = %d, want = %d", i, got, want)
		}
	}
}

func TestFormsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, n := range []int{8, 16} {
		table, inverse := Table64[:], Inverse64[:]
		if n == 16 {
			table, inverse = Table128[:], Inverse128[:]
		}

		src := make([]byte, n)
		a, b := make([]byte, n), make([]byte, n)
		for i := range 1000 {
			rng.Read(src)

			Apply(a, src, table)
			Permute(b, src)
			if !bytes.Equal(a, b) {
				t.Fatalf("%d-bit iteration %d: Apply(%x) = %x, Permute = %x", n*8, i, src, a, b)
			}

			Apply(b, a, inverse)
			if !bytes.Equal(b, src) {
				t.Fatalf("%d-bit iteration %d: inverse table gave %x, want = %x", n*8, i, b, src)
			}

			InvPermute(b, a)
			if !bytes.Equal(b, src) {
				t.Fatalf("%d-bit iteration %d: InvPermute gave %x, want = %x", n*8, i, b, src)
			}
		}
	}
}

func BenchmarkApply128(b *testing.B) {
	src, dst := make([]byte, 16), make([]byte, 16)
	b.ReportAllocs()
	for b.Loop() {
		Apply(dst, src, Table128[:])
	}
}

func BenchmarkPermute128(b *testing.B) {
	src, dst := make([]byte, 16), make([]byte, 16)
	b.ReportAllocs()
	for b.Loop() {
		Permute(dst, src)
	}
}
