package cpu

// add8 adds value and an optional carry to A, setting every flag.
func (s *State) add8(value uint8, carry bool) {
	a, c := s.A, carryBit(carry)
	sum := uint16(a) + uint16(value) + uint16(c)
	result := uint8(sum)

	s.setSignZero(result)
	s.SetFlag(FlagHalfCarry, (a&0x0F)+(value&0x0F)+c > 0x0F)
	s.SetFlag(FlagOverflow, (a^value)&0x80 == 0 && (a^result)&0x80 != 0)
	s.SetFlag(FlagSubtract, false)
	s.SetFlag(FlagCarry, sum > 0xFF)
	s.A = result
}

// subc computes A - value - borrow and sets every flag, without storing
// the result. Overflow is the signed rule: the operands differ in sign
// and the result's sign differs from A.
func (s *State) subc(value uint8, borrow bool) uint8 {
	a, b := s.A, int(carryBit(borrow))
	diff := int(a) - int(value) - b
	result := uint8(diff)

	s.setSignZero(result)
	s.SetFlag(FlagHalfCarry, int(a&0x0F)-int(value&0x0F)-b < 0)
	s.SetFlag(FlagOverflow, (a^value)&(a^result)&0x80 != 0)
	s.SetFlag(FlagSubtract, true)
	s.SetFlag(FlagCarry, diff < 0)
	return result
}

// logic stores a bitwise result in A and sets the flags shared by
// AND, XOR and OR. Only AND sets the half-carry.
func (s *State) logic(result uint8, halfCarry bool) {
	s.A = result
	s.setSignZero(result)
	s.SetFlag(FlagHalfCarry, halfCarry)
	s.SetFlag(FlagParity, evenParity(result))
	s.SetFlag(FlagSubtract, false)
	s.SetFlag(FlagCarry, false)
}

// inc8 returns value+1. The carry flag is preserved.
func (s *State) inc8(value uint8) uint8 {
	result := value + 1
	s.setSignZero(result)
	s.SetFlag(FlagHalfCarry, value&0x0F == 0x0F)
	s.SetFlag(FlagOverflow, value == 0x7F)
	s.SetFlag(FlagSubtract, false)
	return result
}

// dec8 returns value-1. The carry flag is preserved.
func (s *State) dec8(value uint8) uint8 {
	result := value - 1
	s.setSignZero(result)
	s.SetFlag(FlagHalfCarry, value&0x0F == 0)
	s.SetFlag(FlagOverflow, value == 0x80)
	s.SetFlag(FlagSubtract, true)
	return result
}

// add16 returns a+b. Sign, zero and parity are left untouched.
func (s *State) add16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	s.SetFlag(FlagHalfCarry, (a&0x0FFF)+(b&0x0FFF) > 0x0FFF)
	s.SetFlag(FlagSubtract, false)
	s.SetFlag(FlagCarry, sum > 0xFFFF)
	return uint16(sum)
}

// adc16 returns a+b+carry, setting every flag from the 16-bit result.
func (s *State) adc16(a, b uint16) uint16 {
	c := uint32(carryBit(s.Flag(FlagCarry)))
	sum := uint32(a) + uint32(b) + c
	result := uint16(sum)

	s.setSignZero16(result)
	s.SetFlag(FlagHalfCarry, uint32(a&0x0FFF)+uint32(b&0x0FFF)+c > 0x0FFF)
	s.SetFlag(FlagOverflow, (a^b)&0x8000 == 0 && (a^result)&0x8000 != 0)
	s.SetFlag(FlagSubtract, false)
	s.SetFlag(FlagCarry, sum > 0xFFFF)
	return result
}

// sbc16 returns a-b-carry, setting every flag from the 16-bit result.
func (s *State) sbc16(a, b uint16) uint16 {
	c := int(carryBit(s.Flag(FlagCarry)))
	diff := int(a) - int(b) - c
	result := uint16(diff)

	s.setSignZero16(result)
	s.SetFlag(FlagHalfCarry, int(a&0x0FFF)-int(b&0x0FFF)-c < 0)
	s.SetFlag(FlagOverflow, (a^b)&(a^result)&0x8000 != 0)
	s.SetFlag(FlagSubtract, true)
	s.SetFlag(FlagCarry, diff < 0)
	return result
}

func (s *State) setSignZero16(result uint16) {
	s.SetFlag(FlagSign, int16(result) < 0)
	s.SetFlag(FlagZero, result == 0)
}

func carryBit(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}
