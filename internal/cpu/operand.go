package cpu

import "fmt"

// Operand descriptors are small value types describing where an operand
// lives. They own no data: every access resolves against the State and
// Bus of the executing step. Each descriptor implements the capability
// interfaces below that make sense for it.
type Operand interface {
	format(d *disassembler) (string, error)
}

// Src8 is an operand readable as 8 bits.
type Src8 interface {
	Operand
	read8(e *executor) (uint8, error)
}

// Dst8 is an operand writable as 8 bits.
type Dst8 interface {
	Operand
	write8(e *executor, value uint8) error
}

// RW8 is an operand that is both read and written by one instruction.
// bind8 resolves its location once, so that the read and the write hit
// the same place.
type RW8 interface {
	Src8
	Dst8
	bind8(e *executor) (RW8, error)
}

// Src16 is an operand readable as 16 bits.
type Src16 interface {
	Operand
	read16(e *executor) (uint16, error)
}

// Dst16 is an operand writable as 16 bits.
type Dst16 interface {
	Operand
	write16(e *executor, value uint16) error
}

// RW16 is the 16-bit counterpart of RW8.
type RW16 interface {
	Src16
	Dst16
	bind16(e *executor) (RW16, error)
}

// Address is an operand that resolves to a 16-bit memory address.
type Address interface {
	Operand
	address(e *executor) (uint16, error)
}

// Port is an operand that resolves to an 8-bit I/O port number.
type Port interface {
	Operand
	port(e *executor) (uint8, error)
}

// Condition is a branch predicate over the flag register.
type Condition interface {
	Operand
	test(s *State) bool
}

// Reg8 selects an 8-bit register.
type Reg8 uint8

const (
	A Reg8 = iota
	B
	C
	D
	E
	H
	L
)

var reg8Names = [...]string{"A", "B", "C", "D", "E", "H", "L"}

func (r Reg8) String() string {
	if int(r) < len(reg8Names) {
		return reg8Names[r]
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

func (r Reg8) format(*disassembler) (string, error) { return r.String(), nil }

func (r Reg8) read8(e *executor) (uint8, error) {
	return *e.s.register(r), nil
}

func (r Reg8) write8(e *executor, value uint8) error {
	*e.s.register(r) = value
	return nil
}

func (r Reg8) bind8(*executor) (RW8, error) { return r, nil }

// Reg16 selects a 16-bit register or register pair.
type Reg16 uint8

const (
	AF Reg16 = iota
	BC
	DE
	HL
	SP
	IX
	IY
)

var reg16Names = [...]string{"AF", "BC", "DE", "HL", "SP", "IX", "IY"}

func (r Reg16) String() string {
	if int(r) < len(reg16Names) {
		return reg16Names[r]
	}
	return fmt.Sprintf("Reg16(%d)", uint8(r))
}

func (r Reg16) format(*disassembler) (string, error) { return r.String(), nil }

func (r Reg16) read16(e *executor) (uint16, error) {
	return e.s.Pair(r), nil
}

func (r Reg16) write16(e *executor, value uint16) error {
	e.s.SetPair(r, value)
	return nil
}

func (r Reg16) bind16(*executor) (RW16, error) { return r, nil }

// Imm8 is an 8-bit immediate, fetched from the instruction stream.
type Imm8 struct{}

func (Imm8) read8(e *executor) (uint8, error) {
	return e.s.Next8(e.bus)
}

func (Imm8) format(d *disassembler) (string, error) {
	n, err := d.next8()
	return fmt.Sprintf("$%02X", n), err
}

// Imm16 is a 16-bit immediate, fetched low byte first.
type Imm16 struct{}

func (Imm16) read16(e *executor) (uint16, error) {
	return e.s.Next16(e.bus)
}

func (Imm16) format(d *disassembler) (string, error) {
	nn, err := d.next16()
	return fmt.Sprintf("$%04X", nn), err
}

// Direct addresses memory through a 16-bit immediate.
type Direct struct{}

func (Direct) address(e *executor) (uint16, error) {
	return e.s.Next16(e.bus)
}

func (Direct) format(d *disassembler) (string, error) {
	nn, err := d.next16()
	return fmt.Sprintf("$%04X", nn), err
}

// ZeroPage addresses page 0 through an 8-bit immediate low byte.
type ZeroPage struct{}

func (ZeroPage) address(e *executor) (uint16, error) {
	n, err := e.s.Next8(e.bus)
	return uint16(n), err
}

func (ZeroPage) format(d *disassembler) (string, error) {
	n, err := d.next8()
	return fmt.Sprintf("$%04X", uint16(n)), err
}

// Indirect addresses memory through the contents of a register pair.
type Indirect Reg16

func (i Indirect) address(e *executor) (uint16, error) {
	return e.s.Pair(Reg16(i)), nil
}

func (i Indirect) format(*disassembler) (string, error) {
	return Reg16(i).String(), nil
}

// Fixed is an address encoded in the opcode itself, such as a restart
// vector. It is also what a Mem operand binds to.
type Fixed uint16

func (f Fixed) address(*executor) (uint16, error) { return uint16(f), nil }

func (f Fixed) format(*disassembler) (string, error) {
	return fmt.Sprintf("$%04X", uint16(f)), nil
}

// Mem is the memory location at a resolved address. As a 16-bit operand
// it covers the little-endian word at address and address+1.
type Mem struct {
	Addr Address
}

func (m Mem) read8(e *executor) (uint8, error) {
	addr, err := m.Addr.address(e)
	if err != nil {
		return 0, err
	}
	return e.bus.Read(addr)
}

func (m Mem) write8(e *executor, value uint8) error {
	addr, err := m.Addr.address(e)
	if err != nil {
		return err
	}
	return e.bus.Write(addr, value)
}

func (m Mem) bind8(e *executor) (RW8, error) {
	addr, err := m.Addr.address(e)
	if err != nil {
		return nil, err
	}
	return Mem{Fixed(addr)}, nil
}

func (m Mem) read16(e *executor) (uint16, error) {
	addr, err := m.Addr.address(e)
	if err != nil {
		return 0, err
	}
	low, err := e.bus.Read(addr)
	if err != nil {
		return 0, err
	}
	high, err := e.bus.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

func (m Mem) write16(e *executor, value uint16) error {
	addr, err := m.Addr.address(e)
	if err != nil {
		return err
	}
	if err := e.bus.Write(addr, uint8(value)); err != nil {
		return err
	}
	return e.bus.Write(addr+1, uint8(value>>8))
}

func (m Mem) bind16(e *executor) (RW16, error) {
	addr, err := m.Addr.address(e)
	if err != nil {
		return nil, err
	}
	return Mem{Fixed(addr)}, nil
}

func (m Mem) format(d *disassembler) (string, error) {
	s, err := m.Addr.format(d)
	return "(" + s + ")", err
}

// PortImm is a port number taken from an 8-bit immediate.
type PortImm struct{}

func (PortImm) port(e *executor) (uint8, error) {
	return e.s.Next8(e.bus)
}

func (PortImm) format(d *disassembler) (string, error) {
	n, err := d.next8()
	return fmt.Sprintf("($%02X)", n), err
}

// PortC is a port number taken from register C.
type PortC struct{}

func (PortC) port(e *executor) (uint8, error) {
	return e.s.C, nil
}

func (PortC) format(*disassembler) (string, error) { return "(C)", nil }

// Cond is a branch condition testing a single flag.
type Cond uint8

const (
	Always Cond = iota
	CondNZ
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM
)

var condNames = [...]string{"", "NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("Cond(%d)", uint8(c))
}

func (c Cond) format(*disassembler) (string, error) { return c.String(), nil }

func (c Cond) test(s *State) bool {
	switch c {
	case Always:
		return true
	case CondNZ:
		return !s.Flag(FlagZero)
	case CondZ:
		return s.Flag(FlagZero)
	case CondNC:
		return !s.Flag(FlagCarry)
	case CondC:
		return s.Flag(FlagCarry)
	case CondPO:
		return !s.Flag(FlagParity)
	case CondPE:
		return s.Flag(FlagParity)
	case CondP:
		return !s.Flag(FlagSign)
	case CondM:
		return s.Flag(FlagSign)
	}
	panic(fmt.Sprintf("invalid condition: %d", c))
}
