package lfsr //nolint:testpackage // testing internals

import "testing"

func TestConstantMatchesTable(t *testing.T) {
	for r := range Len {
		if got, want := Constant(r), Table[r]; got != want {
			t.Errorf("Constant(%d) = %#02x, want = %#02x", r, got, want)
		}
	}
}

func TestLFSRMatchesTable(t *testing.T) {
	var l LFSR
	for r := range Len {
		if got, want := l.Next(), Table[r]; got != want {
			t.Errorf("round %d: Next() = %#02x, want = %#02x", r, got, want)
		}
	}

	if got, want := l.Round(), Len; got != want {
		t.Errorf("Round() = %d, want = %d", got, want)
	}
}

func TestReset(t *testing.T) {
	var l LFSR
	for range 17 {
		l.Next()
	}

	l.Reset()

	if got := l.Round(); got != 0 {
		t.Errorf("Round() = %d after Reset, want = 0", got)
	}

	if got, want := l.Next(), Table[0]; got != want {
		t.Errorf("Next() after Reset = %#02x, want = %#02x", got, want)
	}
}

func TestConstantsAreSixBits(t *testing.T) {
	for r, c := range Table {
		if c&^0x3f != 0 {
			t.Errorf("Table[%d] = %#02x has bits above the sixth", r, c)
		}
	}
}

func TestIndependentRegisters(t *testing.T) {
	var a, b LFSR
	for r := range Len / 2 {
		a.Next()
		a.Next()
		if got, want := b.Next(), Table[r]; got != want {
			t.Fatalf("round %d: Next() = %#02x, want = %#02x", r, got, want)
		}
	}
}
