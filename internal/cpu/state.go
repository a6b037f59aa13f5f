package cpu

import (
	"fmt"

	"github.com/thelolagemann/gosms/pkg/utils"
)

// State holds every CPU-visible register. It is a plain value: copying a
// State snapshots the whole register file.
type State struct {
	A Register
	F Flags
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	// shadow register set, swapped in by EX AF,AF' and EXX
	A_ Register
	F_ Flags
	B_ Register
	C_ Register
	D_ Register
	E_ Register
	H_ Register
	L_ Register

	IX uint16
	IY uint16

	// I is the interrupt vector base, R the memory refresh counter.
	I Register
	R Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to fetch.
	PC uint16

	IFF1 bool
	IFF2 bool
	// IM is the interrupt mode selected by IM 0, IM 1 or IM 2.
	IM uint8
}

// Register is an 8-bit CPU register.
type Register = uint8

// Pair reads a 16-bit register, composing register pairs high:low.
func (s *State) Pair(p Reg16) uint16 {
	switch p {
	case AF:
		return utils.BytesToUint16(s.A, uint8(s.F))
	case BC:
		return utils.BytesToUint16(s.B, s.C)
	case DE:
		return utils.BytesToUint16(s.D, s.E)
	case HL:
		return utils.BytesToUint16(s.H, s.L)
	case SP:
		return s.SP
	case IX:
		return s.IX
	case IY:
		return s.IY
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// SetPair writes a 16-bit register, splitting register pairs high:low.
func (s *State) SetPair(p Reg16, value uint16) {
	switch p {
	case AF:
		var f uint8
		s.A, f = utils.Uint16ToBytes(value)
		s.F = Flags(f)
	case BC:
		s.B, s.C = utils.Uint16ToBytes(value)
	case DE:
		s.D, s.E = utils.Uint16ToBytes(value)
	case HL:
		s.H, s.L = utils.Uint16ToBytes(value)
	case SP:
		s.SP = value
	case IX:
		s.IX = value
	case IY:
		s.IY = value
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}

// register returns a pointer to an 8-bit register.
func (s *State) register(r Reg8) *Register {
	switch r {
	case A:
		return &s.A
	case B:
		return &s.B
	case C:
		return &s.C
	case D:
		return &s.D
	case E:
		return &s.E
	case H:
		return &s.H
	case L:
		return &s.L
	}
	panic(fmt.Sprintf("invalid register index: %d", r))
}

// Next8 reads the byte at PC and advances PC by one.
func (s *State) Next8(bus Bus) (uint8, error) {
	value, err := bus.Read(s.PC)
	if err != nil {
		return 0, err
	}
	s.PC++
	return value, nil
}

// Next16 reads the little-endian word at PC and advances PC by two.
func (s *State) Next16(bus Bus) (uint16, error) {
	low, err := s.Next8(bus)
	if err != nil {
		return 0, err
	}
	high, err := s.Next8(bus)
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}

// Push16 pushes value onto the stack, high byte first.
func (s *State) Push16(bus Bus, value uint16) error {
	high, low := utils.Uint16ToBytes(value)
	s.SP--
	if err := bus.Write(s.SP, high); err != nil {
		return err
	}
	s.SP--
	return bus.Write(s.SP, low)
}

// Pop16 pops a value from the stack, low byte first.
func (s *State) Pop16(bus Bus) (uint16, error) {
	low, err := bus.Read(s.SP)
	if err != nil {
		return 0, err
	}
	s.SP++
	high, err := bus.Read(s.SP)
	if err != nil {
		return 0, err
	}
	s.SP++
	return utils.BytesToUint16(high, low), nil
}

// exchangeAF swaps AF with its shadow.
func (s *State) exchangeAF() {
	s.A, s.A_ = s.A_, s.A
	s.F, s.F_ = s.F_, s.F
}

// exchange swaps BC, DE and HL with their shadows.
func (s *State) exchange() {
	s.B, s.B_ = s.B_, s.B
	s.C, s.C_ = s.C_, s.C
	s.D, s.D_ = s.D_, s.D
	s.E, s.E_ = s.E_, s.E
	s.H, s.H_ = s.H_, s.H
	s.L, s.L_ = s.L_, s.L
}

// refresh advances the low seven bits of R, as every opcode fetch does.
func (s *State) refresh() {
	s.R = s.R&0x80 | (s.R+1)&0x7F
}

// String returns a one-line dump of the register file.
func (s State) String() string {
	return fmt.Sprintf("AF:%04X BC:%04X DE:%04X HL:%04X SP:%04X PC:%04X [%s]",
		s.Pair(AF), s.Pair(BC), s.Pair(DE), s.Pair(HL), s.SP, s.PC, s.F)
}
