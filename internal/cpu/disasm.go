package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// disassembler renders decoded instructions as assembly text. It reads
// instruction bytes from the bus without touching any CPU state.
type disassembler struct {
	bus  Bus
	pc   uint16
	text string
}

var _ Operations = (*disassembler)(nil)

// Disassemble decodes the instruction at pc and returns its text and
// encoded length in bytes.
func Disassemble(bus Bus, pc uint16) (text string, length uint16, err error) {
	d := &disassembler{bus: bus, pc: pc}
	if err := visit(d); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.PC = pc
		}
		return "", d.pc - pc, err
	}
	return d.text, d.pc - pc, nil
}

func (d *disassembler) next8() (uint8, error) {
	value, err := d.bus.Read(d.pc)
	if err != nil {
		return 0, err
	}
	d.pc++
	return value, nil
}

func (d *disassembler) next16() (uint16, error) {
	low, err := d.next8()
	if err != nil {
		return 0, err
	}
	high, err := d.next8()
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// emit formats operands in encoding order and joins the non-empty ones
// after the mnemonic.
func (d *disassembler) emit(mnemonic string, operands ...Operand) error {
	parts := make([]string, 0, len(operands))
	for _, op := range operands {
		s, err := op.format(d)
		if err != nil {
			return err
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		d.text = mnemonic
	} else {
		d.text = mnemonic + " " + strings.Join(parts, ",")
	}
	return nil
}

func (d *disassembler) ReadOpcode() (uint8, error)         { return d.next8() }
func (d *disassembler) ReadExtendedOpcode() (uint8, error) { return d.next8() }

func (d *disassembler) Nop() error  { return d.emit("NOP") }
func (d *disassembler) Halt() error { return d.emit("HALT") }

func (d *disassembler) Load8(dst Dst8, src Src8) error    { return d.emit("LD", dst, src) }
func (d *disassembler) Load16(dst Dst16, src Src16) error { return d.emit("LD", dst, src) }
func (d *disassembler) Push16(src Src16) error            { return d.emit("PUSH", src) }
func (d *disassembler) Pop16(dst Dst16) error             { return d.emit("POP", dst) }
func (d *disassembler) Exchange(a, b RW16) error          { return d.emit("EX", a, b) }
func (d *disassembler) ExchangeAF() error                 { return d.emit("EX AF,AF'") }
func (d *disassembler) ExchangeAll() error                { return d.emit("EXX") }

func (d *disassembler) Ldi() error  { return d.emit("LDI") }
func (d *disassembler) Ldir() error { return d.emit("LDIR") }
func (d *disassembler) Ldd() error  { return d.emit("LDD") }
func (d *disassembler) Lddr() error { return d.emit("LDDR") }

func (d *disassembler) Add8(src Src8) error { return d.emit("ADD", A, src) }
func (d *disassembler) Adc8(src Src8) error { return d.emit("ADC", A, src) }
func (d *disassembler) Sub8(src Src8) error { return d.emit("SUB", src) }
func (d *disassembler) Sbc8(src Src8) error { return d.emit("SBC", A, src) }
func (d *disassembler) And8(src Src8) error { return d.emit("AND", src) }
func (d *disassembler) Xor8(src Src8) error { return d.emit("XOR", src) }
func (d *disassembler) Or8(src Src8) error  { return d.emit("OR", src) }
func (d *disassembler) Cp8(src Src8) error  { return d.emit("CP", src) }
func (d *disassembler) Inc8(dst RW8) error  { return d.emit("INC", dst) }
func (d *disassembler) Dec8(dst RW8) error  { return d.emit("DEC", dst) }
func (d *disassembler) Cpl() error          { return d.emit("CPL") }
func (d *disassembler) Neg() error          { return d.emit("NEG") }
func (d *disassembler) Scf() error          { return d.emit("SCF") }
func (d *disassembler) Ccf() error          { return d.emit("CCF") }

func (d *disassembler) Add16(dst RW16, src Src16) error { return d.emit("ADD", dst, src) }
func (d *disassembler) Adc16(dst RW16, src Src16) error { return d.emit("ADC", dst, src) }
func (d *disassembler) Sbc16(dst RW16, src Src16) error { return d.emit("SBC", dst, src) }
func (d *disassembler) Inc16(dst RW16) error            { return d.emit("INC", dst) }
func (d *disassembler) Dec16(dst RW16) error            { return d.emit("DEC", dst) }

// Jump prints register-indirect targets in parentheses, as in JP (HL).
func (d *disassembler) Jump(cond Condition, target Address) error {
	if r, ok := target.(Indirect); ok {
		return d.emit("JP", cond, Mem{r})
	}
	return d.emit("JP", cond, target)
}

// JumpRelative prints the absolute branch target rather than the
// displacement.
func (d *disassembler) JumpRelative(cond Condition, disp Src8) error {
	target, err := d.relative()
	if err != nil {
		return err
	}
	return d.emit("JR", cond, target)
}

func (d *disassembler) Djnz(disp Src8) error {
	target, err := d.relative()
	if err != nil {
		return err
	}
	return d.emit("DJNZ", target)
}

// relative consumes a displacement byte and resolves it against the
// address of the following instruction.
func (d *disassembler) relative() (Fixed, error) {
	n, err := d.next8()
	if err != nil {
		return 0, err
	}
	return Fixed(d.pc + uint16(int8(n))), nil
}

func (d *disassembler) Call(cond Condition, target Address) error {
	return d.emit("CALL", cond, target)
}

func (d *disassembler) Restart(vector Address) error { return d.emit("RST", vector) }
func (d *disassembler) Return(cond Condition) error  { return d.emit("RET", cond) }
func (d *disassembler) Retn() error                  { return d.emit("RETN") }
func (d *disassembler) Reti() error                  { return d.emit("RETI") }

func (d *disassembler) DisableInterrupts() error { return d.emit("DI") }
func (d *disassembler) EnableInterrupts() error  { return d.emit("EI") }

func (d *disassembler) SetInterruptMode(mode uint8) error {
	d.text = fmt.Sprintf("IM %d", mode)
	return nil
}

func (d *disassembler) Out(src Src8, port Port) error { return d.emit("OUT", port, src) }
