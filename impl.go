package gift

import (
	"fmt"
)

// Implementation selects how the round function is computed. Every implementation produces the same output.
type Implementation int

const (
	// Bitsliced holds the state as four bit-planes and evaluates the S-box as a boolean network.
	Bitsliced Implementation = iota

	// Table uses lookup tables for the S-box and permutation and XORs in subkeys from a precomputed schedule.
	Table

	// OnTheFly evaluates the permutation's closed form and rolls the key state and round constant every round.
	OnTheFly
)

//nolint:gochecknoglobals // names
var implNames = [...]string{
	Bitsliced: "sliced",
	Table:     "table",
	OnTheFly:  "fly",
}

func (i Implementation) valid() bool {
	return i >= 0 && int(i) < len(implNames)
}

func (i Implementation) String() string {
	if !i.valid() {
		return fmt.Sprintf("Implementation(%d)", int(i))
	}
	return implNames[i]
}

// MarshalText implements encoding.TextMarshaler.
func (i Implementation) MarshalText() ([]byte, error) {
	if !i.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidImplementation, int(i))
	}
	return []byte(implNames[i]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "sliced", "table", or "fly".
func (i *Implementation) UnmarshalText(text []byte) error {
	for j, name := range implNames {
		if string(text) == name {
			*i = Implementation(j)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidImplementation, text)
}

// A pipeline is one configured run of the round function over a single block.
type pipeline struct {
	params Params
	key    *[KeySize]byte

	// masks holds one subkey mask per round and is only read by the table implementation.
	masks []byte
}

func (pl *pipeline) encrypt(s []byte) {
	switch pl.params.Impl {
	case Table:
		encryptTable(s, pl.params.Width, pl.masks[:pl.params.Rounds*len(s)])
	case OnTheFly:
		encryptFly(s, pl.params.Width, pl.key, pl.params.Rounds)
	default:
		encryptSliced(s, pl.params.Width, pl.key, pl.params.Rounds)
	}
}

func (pl *pipeline) decrypt(s []byte) {
	switch pl.params.Impl {
	case Table:
		decryptTable(s, pl.params.Width, pl.masks[:pl.params.Rounds*len(s)])
	case OnTheFly:
		decryptFly(s, pl.params.Width, pl.key, pl.params.Rounds)
	default:
		decryptSliced(s, pl.params.Width, pl.key, pl.params.Rounds)
	}
}
