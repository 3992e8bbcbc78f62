package mem

import (
	"bytes"
	"testing"
)

func TestXOR(t *testing.T) {
	for _, n := range []int{0, 1, 8, 16, 17, 768} {
		a, b := make([]byte, n), make([]byte, n)
		want := make([]byte, n)
		for i := range n {
			a[i] = byte(i)
			b[i] = byte(3 * i)
			want[i] = byte(i) ^ byte(3*i)
		}

		got := make([]byte, n)
		XOR(got, a, b)
		if !bytes.Equal(got, want) {
			t.Errorf("XOR(%d bytes) = %x, want = %x", n, got, want)
		}
	}
}

func TestSliceForAppend(t *testing.T) {
	in := []byte("prefix")
	head, tail := SliceForAppend(in, 8)

	if got, want := len(head), 14; got != want {
		t.Errorf("len(head) = %d, want = %d", got, want)
	}

	if got, want := len(tail), 8; got != want {
		t.Errorf("len(tail) = %d, want = %d", got, want)
	}

	if !bytes.HasPrefix(head, []byte("prefix")) {
		t.Errorf("head = %q, want prefix %q", head, "prefix")
	}

	tail[0] = 'x'
	if head[6] != 'x' {
		t.Error("tail does not alias head")
	}
}

func TestInexactOverlap(t *testing.T) {
	buf := make([]byte, 32)

	tests := []struct {
		name string
		x, y []byte
		want bool
	}{
		{"exact", buf[0:16], buf[0:16], false},
		{"disjoint", buf[0:16], buf[16:32], false},
		{"shifted", buf[0:16], buf[1:17], true},
		{"empty", buf[0:0], buf[0:16], false},
		{"separate", make([]byte, 16), make([]byte, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InexactOverlap(tt.x, tt.y); got != tt.want {
				t.Errorf("InexactOverlap() = %v, want = %v", got, tt.want)
			}
		})
	}
}
