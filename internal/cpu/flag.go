package cpu

import "strings"

// Flags is the packed flag register F. Individual flags are only ever
// manipulated through the named Flag constants.
type Flags uint8

// Flag names a single bit of the flag register.
type Flag = Flags

const (
	// FlagCarry is set on an unsigned carry or borrow out of the top bit.
	FlagCarry Flag = 1 << iota
	// FlagSubtract records whether the last arithmetic operation was a subtraction.
	FlagSubtract
	// FlagParity holds parity for logical operations and signed overflow
	// for arithmetic ones.
	FlagParity
	_ // bit 3, undocumented
	// FlagHalfCarry is set on a carry or borrow between the low and high nibble.
	FlagHalfCarry
	_ // bit 5, undocumented
	// FlagZero is set when the result is zero.
	FlagZero
	// FlagSign mirrors the top bit of the result.
	FlagSign
)

// FlagOverflow is FlagParity as interpreted by arithmetic instructions.
const FlagOverflow = FlagParity

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagSign, "S"},
	{FlagZero, "Z"},
	{FlagHalfCarry, "H"},
	{FlagParity, "P"},
	{FlagSubtract, "N"},
	{FlagCarry, "C"},
}

// Has returns true if the given flag is set.
func (f Flags) Has(flag Flag) bool {
	return f&flag != 0
}

// String renders the six named flags, "-" for each clear flag.
func (f Flags) String() string {
	var b strings.Builder
	for _, n := range flagNames {
		if f.Has(n.flag) {
			b.WriteString(n.name)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// SetFlag sets or clears the given flag.
func (s *State) SetFlag(flag Flag, on bool) {
	if on {
		s.F |= flag
	} else {
		s.F &^= flag
	}
}

// Flag returns true if the given flag is set.
func (s *State) Flag(flag Flag) bool {
	return s.F.Has(flag)
}

// setSignZero sets FlagSign and FlagZero from an 8-bit result.
func (s *State) setSignZero(result uint8) {
	s.SetFlag(FlagSign, int8(result) < 0)
	s.SetFlag(FlagZero, result == 0)
}

// evenParity returns true if value has an even number of set bits.
func evenParity(value uint8) bool {
	value ^= value >> 4
	value ^= value >> 2
	value ^= value >> 1
	return value&1 == 0
}
