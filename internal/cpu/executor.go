package cpu

// executor runs decoded instructions against a State and a Bus. One is
// built per step and discarded when the step returns.
type executor struct {
	s   *State
	bus Bus
}

var _ Operations = (*executor)(nil)

func (e *executor) ReadOpcode() (uint8, error) {
	opcode, err := e.s.Next8(e.bus)
	if err != nil {
		return 0, err
	}
	e.s.refresh()
	return opcode, nil
}

func (e *executor) ReadExtendedOpcode() (uint8, error) {
	return e.ReadOpcode()
}

func (e *executor) Nop() error { return nil }

// Halt re-executes itself until an interrupt arrives.
func (e *executor) Halt() error {
	e.s.PC--
	return nil
}

func (e *executor) Load8(dst Dst8, src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	return dst.write8(e, value)
}

func (e *executor) Load16(dst Dst16, src Src16) error {
	value, err := src.read16(e)
	if err != nil {
		return err
	}
	return dst.write16(e, value)
}

func (e *executor) Push16(src Src16) error {
	value, err := src.read16(e)
	if err != nil {
		return err
	}
	return e.s.Push16(e.bus, value)
}

func (e *executor) Pop16(dst Dst16) error {
	value, err := e.s.Pop16(e.bus)
	if err != nil {
		return err
	}
	return dst.write16(e, value)
}

func (e *executor) Exchange(a, b RW16) error {
	a, err := a.bind16(e)
	if err != nil {
		return err
	}
	b, err = b.bind16(e)
	if err != nil {
		return err
	}

	va, err := a.read16(e)
	if err != nil {
		return err
	}
	vb, err := b.read16(e)
	if err != nil {
		return err
	}
	if err := a.write16(e, vb); err != nil {
		return err
	}
	return b.write16(e, va)
}

func (e *executor) ExchangeAF() error {
	e.s.exchangeAF()
	return nil
}

func (e *executor) ExchangeAll() error {
	e.s.exchange()
	return nil
}

// blockCopy copies the byte at HL to DE, steps both by delta and
// decrements BC. No flags are affected.
func (e *executor) blockCopy(delta uint16) error {
	value, err := e.bus.Read(e.s.Pair(HL))
	if err != nil {
		return err
	}
	if err := e.bus.Write(e.s.Pair(DE), value); err != nil {
		return err
	}
	e.s.SetPair(DE, e.s.Pair(DE)+delta)
	e.s.SetPair(HL, e.s.Pair(HL)+delta)
	e.s.SetPair(BC, e.s.Pair(BC)-1)
	return nil
}

// blockRepeat copies one byte and rewinds PC over the two-byte
// instruction while BC is non-zero, so each transferred byte is a step
// of its own.
func (e *executor) blockRepeat(delta uint16) error {
	if e.s.Pair(BC) == 0 {
		return nil
	}
	if err := e.blockCopy(delta); err != nil {
		return err
	}
	if e.s.Pair(BC) != 0 {
		e.s.PC -= 2
	}
	return nil
}

func (e *executor) Ldi() error { return e.blockCopy(1) }

// Ldir starting with BC = 0 copies nothing.
func (e *executor) Ldir() error {
	return e.blockRepeat(1)
}

func (e *executor) Ldd() error { return e.blockCopy(0xFFFF) }

func (e *executor) Lddr() error {
	return e.blockRepeat(0xFFFF)
}

func (e *executor) Add8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.add8(value, false)
	return nil
}

func (e *executor) Adc8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.add8(value, e.s.Flag(FlagCarry))
	return nil
}

func (e *executor) Sub8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.A = e.s.subc(value, false)
	return nil
}

func (e *executor) Sbc8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.A = e.s.subc(value, e.s.Flag(FlagCarry))
	return nil
}

func (e *executor) And8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.logic(e.s.A&value, true)
	return nil
}

func (e *executor) Xor8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.logic(e.s.A^value, false)
	return nil
}

func (e *executor) Or8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.logic(e.s.A|value, false)
	return nil
}

func (e *executor) Cp8(src Src8) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	e.s.subc(value, false)
	return nil
}

func (e *executor) Inc8(dst RW8) error {
	return e.modify8(dst, e.s.inc8)
}

func (e *executor) Dec8(dst RW8) error {
	return e.modify8(dst, e.s.dec8)
}

// modify8 reads, transforms and writes back an operand whose location
// is resolved once.
func (e *executor) modify8(dst RW8, fn func(uint8) uint8) error {
	loc, err := dst.bind8(e)
	if err != nil {
		return err
	}
	value, err := loc.read8(e)
	if err != nil {
		return err
	}
	return loc.write8(e, fn(value))
}

func (e *executor) Cpl() error {
	e.s.A = ^e.s.A
	e.s.SetFlag(FlagHalfCarry, true)
	e.s.SetFlag(FlagSubtract, true)
	return nil
}

func (e *executor) Neg() error {
	value := e.s.A
	e.s.A = 0
	e.s.A = e.s.subc(value, false)
	return nil
}

func (e *executor) Scf() error {
	e.s.SetFlag(FlagCarry, true)
	e.s.SetFlag(FlagHalfCarry, false)
	e.s.SetFlag(FlagSubtract, false)
	return nil
}

func (e *executor) Ccf() error {
	carry := e.s.Flag(FlagCarry)
	e.s.SetFlag(FlagHalfCarry, carry)
	e.s.SetFlag(FlagCarry, !carry)
	e.s.SetFlag(FlagSubtract, false)
	return nil
}

func (e *executor) Add16(dst RW16, src Src16) error {
	return e.arith16(dst, src, e.s.add16)
}

func (e *executor) Adc16(dst RW16, src Src16) error {
	return e.arith16(dst, src, e.s.adc16)
}

func (e *executor) Sbc16(dst RW16, src Src16) error {
	return e.arith16(dst, src, e.s.sbc16)
}

func (e *executor) arith16(dst RW16, src Src16, fn func(a, b uint16) uint16) error {
	loc, err := dst.bind16(e)
	if err != nil {
		return err
	}
	a, err := loc.read16(e)
	if err != nil {
		return err
	}
	b, err := src.read16(e)
	if err != nil {
		return err
	}
	return loc.write16(e, fn(a, b))
}

func (e *executor) Inc16(dst RW16) error {
	return e.arith16(dst, dst, func(a, _ uint16) uint16 { return a + 1 })
}

func (e *executor) Dec16(dst RW16) error {
	return e.arith16(dst, dst, func(a, _ uint16) uint16 { return a - 1 })
}

// Jump always resolves the target, so that the instruction's operand
// bytes are consumed whether or not the branch is taken.
func (e *executor) Jump(cond Condition, target Address) error {
	addr, err := target.address(e)
	if err != nil {
		return err
	}
	if cond.test(e.s) {
		e.s.PC = addr
	}
	return nil
}

func (e *executor) JumpRelative(cond Condition, disp Src8) error {
	d, err := disp.read8(e)
	if err != nil {
		return err
	}
	if cond.test(e.s) {
		e.s.PC += uint16(int8(d))
	}
	return nil
}

func (e *executor) Djnz(disp Src8) error {
	d, err := disp.read8(e)
	if err != nil {
		return err
	}
	e.s.B--
	if e.s.B != 0 {
		e.s.PC += uint16(int8(d))
	}
	return nil
}

func (e *executor) Call(cond Condition, target Address) error {
	addr, err := target.address(e)
	if err != nil {
		return err
	}
	if !cond.test(e.s) {
		return nil
	}
	if err := e.s.Push16(e.bus, e.s.PC); err != nil {
		return err
	}
	e.s.PC = addr
	return nil
}

func (e *executor) Restart(vector Address) error {
	return e.Call(Always, vector)
}

func (e *executor) Return(cond Condition) error {
	if !cond.test(e.s) {
		return nil
	}
	pc, err := e.s.Pop16(e.bus)
	if err != nil {
		return err
	}
	e.s.PC = pc
	return nil
}

func (e *executor) Retn() error {
	if err := e.Return(Always); err != nil {
		return err
	}
	e.s.IFF1 = e.s.IFF2
	return nil
}

func (e *executor) Reti() error {
	return e.Retn()
}

func (e *executor) DisableInterrupts() error {
	e.s.IFF1, e.s.IFF2 = false, false
	return nil
}

func (e *executor) EnableInterrupts() error {
	e.s.IFF1, e.s.IFF2 = true, true
	return nil
}

func (e *executor) SetInterruptMode(mode uint8) error {
	e.s.IM = mode
	return nil
}

// Out resolves the value before the port, in encoding order.
func (e *executor) Out(src Src8, port Port) error {
	value, err := src.read8(e)
	if err != nil {
		return err
	}
	p, err := port.port(e)
	if err != nil {
		return err
	}
	return e.bus.WritePort(p, value)
}
