package cpu

// Opcode tables. Each entry is complete on its own: adding an opcode
// means adding an entry, never touching another one. Opcodes without an
// entry are decode errors.

var (
	atBC  = Mem{Indirect(BC)}
	atDE  = Mem{Indirect(DE)}
	atHL  = Mem{Indirect(HL)}
	atSP  = Mem{Indirect(SP)}
	atNN  = Mem{Direct{}}
	imm8  = Imm8{}
	imm16 = Imm16{}
)

var primary = [256]instruction{
	0x00: Operations.Nop,
	0x01: load16(BC, imm16),
	0x02: load8(atBC, A),
	0x03: rw16(Operations.Inc16, BC),
	0x04: rw8(Operations.Inc8, B),
	0x05: rw8(Operations.Dec8, B),
	0x06: load8(B, imm8),
	0x08: Operations.ExchangeAF,
	0x09: arith16(Operations.Add16, HL, BC),
	0x0A: load8(A, atBC),
	0x0B: rw16(Operations.Dec16, BC),
	0x0C: rw8(Operations.Inc8, C),
	0x0D: rw8(Operations.Dec8, C),
	0x0E: load8(C, imm8),

	0x10: djnz(imm8),
	0x11: load16(DE, imm16),
	0x12: load8(atDE, A),
	0x13: rw16(Operations.Inc16, DE),
	0x14: rw8(Operations.Inc8, D),
	0x15: rw8(Operations.Dec8, D),
	0x16: load8(D, imm8),
	0x18: jr(Always),
	0x19: arith16(Operations.Add16, HL, DE),
	0x1A: load8(A, atDE),
	0x1B: rw16(Operations.Dec16, DE),
	0x1C: rw8(Operations.Inc8, E),
	0x1D: rw8(Operations.Dec8, E),
	0x1E: load8(E, imm8),

	0x20: jr(CondNZ),
	0x21: load16(HL, imm16),
	0x22: load16(atNN, HL),
	0x23: rw16(Operations.Inc16, HL),
	0x24: rw8(Operations.Inc8, H),
	0x25: rw8(Operations.Dec8, H),
	0x26: load8(H, imm8),
	0x28: jr(CondZ),
	0x29: arith16(Operations.Add16, HL, HL),
	0x2A: load16(HL, atNN),
	0x2B: rw16(Operations.Dec16, HL),
	0x2C: rw8(Operations.Inc8, L),
	0x2D: rw8(Operations.Dec8, L),
	0x2E: load8(L, imm8),
	0x2F: Operations.Cpl,

	0x30: jr(CondNC),
	0x31: load16(SP, imm16),
	0x32: load8(atNN, A),
	0x33: rw16(Operations.Inc16, SP),
	0x34: rw8(Operations.Inc8, atHL),
	0x35: rw8(Operations.Dec8, atHL),
	0x36: load8(atHL, imm8),
	0x37: Operations.Scf,
	0x38: jr(CondC),
	0x39: arith16(Operations.Add16, HL, SP),
	0x3A: load8(A, atNN),
	0x3B: rw16(Operations.Dec16, SP),
	0x3C: rw8(Operations.Inc8, A),
	0x3D: rw8(Operations.Dec8, A),
	0x3E: load8(A, imm8),
	0x3F: Operations.Ccf,

	0x40: load8(B, B),
	0x41: load8(B, C),
	0x42: load8(B, D),
	0x43: load8(B, E),
	0x44: load8(B, H),
	0x45: load8(B, L),
	0x46: load8(B, atHL),
	0x47: load8(B, A),
	0x48: load8(C, B),
	0x49: load8(C, C),
	0x4A: load8(C, D),
	0x4B: load8(C, E),
	0x4C: load8(C, H),
	0x4D: load8(C, L),
	0x4E: load8(C, atHL),
	0x4F: load8(C, A),

	0x50: load8(D, B),
	0x51: load8(D, C),
	0x52: load8(D, D),
	0x53: load8(D, E),
	0x54: load8(D, H),
	0x55: load8(D, L),
	0x56: load8(D, atHL),
	0x57: load8(D, A),
	0x58: load8(E, B),
	0x59: load8(E, C),
	0x5A: load8(E, D),
	0x5B: load8(E, E),
	0x5C: load8(E, H),
	0x5D: load8(E, L),
	0x5E: load8(E, atHL),
	0x5F: load8(E, A),

	0x60: load8(H, B),
	0x61: load8(H, C),
	0x62: load8(H, D),
	0x63: load8(H, E),
	0x64: load8(H, H),
	0x65: load8(H, L),
	0x66: load8(H, atHL),
	0x67: load8(H, A),
	0x68: load8(L, B),
	0x69: load8(L, C),
	0x6A: load8(L, D),
	0x6B: load8(L, E),
	0x6C: load8(L, H),
	0x6D: load8(L, L),
	0x6E: load8(L, atHL),
	0x6F: load8(L, A),

	0x70: load8(atHL, B),
	0x71: load8(atHL, C),
	0x72: load8(atHL, D),
	0x73: load8(atHL, E),
	0x74: load8(atHL, H),
	0x75: load8(atHL, L),
	0x76: Operations.Halt,
	0x77: load8(atHL, A),
	0x78: load8(A, B),
	0x79: load8(A, C),
	0x7A: load8(A, D),
	0x7B: load8(A, E),
	0x7C: load8(A, H),
	0x7D: load8(A, L),
	0x7E: load8(A, atHL),
	0x7F: load8(A, A),

	0x80: alu(Operations.Add8, B),
	0x81: alu(Operations.Add8, C),
	0x82: alu(Operations.Add8, D),
	0x83: alu(Operations.Add8, E),
	0x84: alu(Operations.Add8, H),
	0x85: alu(Operations.Add8, L),
	0x86: alu(Operations.Add8, atHL),
	0x87: alu(Operations.Add8, A),
	0x88: alu(Operations.Adc8, B),
	0x89: alu(Operations.Adc8, C),
	0x8A: alu(Operations.Adc8, D),
	0x8B: alu(Operations.Adc8, E),
	0x8C: alu(Operations.Adc8, H),
	0x8D: alu(Operations.Adc8, L),
	0x8E: alu(Operations.Adc8, atHL),
	0x8F: alu(Operations.Adc8, A),

	0x90: alu(Operations.Sub8, B),
	0x91: alu(Operations.Sub8, C),
	0x92: alu(Operations.Sub8, D),
	0x93: alu(Operations.Sub8, E),
	0x94: alu(Operations.Sub8, H),
	0x95: alu(Operations.Sub8, L),
	0x96: alu(Operations.Sub8, atHL),
	0x97: alu(Operations.Sub8, A),
	0x98: alu(Operations.Sbc8, B),
	0x99: alu(Operations.Sbc8, C),
	0x9A: alu(Operations.Sbc8, D),
	0x9B: alu(Operations.Sbc8, E),
	0x9C: alu(Operations.Sbc8, H),
	0x9D: alu(Operations.Sbc8, L),
	0x9E: alu(Operations.Sbc8, atHL),
	0x9F: alu(Operations.Sbc8, A),

	0xA0: alu(Operations.And8, B),
	0xA1: alu(Operations.And8, C),
	0xA2: alu(Operations.And8, D),
	0xA3: alu(Operations.And8, E),
	0xA4: alu(Operations.And8, H),
	0xA5: alu(Operations.And8, L),
	0xA6: alu(Operations.And8, atHL),
	0xA7: alu(Operations.And8, A),
	0xA8: alu(Operations.Xor8, B),
	0xA9: alu(Operations.Xor8, C),
	0xAA: alu(Operations.Xor8, D),
	0xAB: alu(Operations.Xor8, E),
	0xAC: alu(Operations.Xor8, H),
	0xAD: alu(Operations.Xor8, L),
	0xAE: alu(Operations.Xor8, atHL),
	0xAF: alu(Operations.Xor8, A),

	0xB0: alu(Operations.Or8, B),
	0xB1: alu(Operations.Or8, C),
	0xB2: alu(Operations.Or8, D),
	0xB3: alu(Operations.Or8, E),
	0xB4: alu(Operations.Or8, H),
	0xB5: alu(Operations.Or8, L),
	0xB6: alu(Operations.Or8, atHL),
	0xB7: alu(Operations.Or8, A),
	0xB8: alu(Operations.Cp8, B),
	0xB9: alu(Operations.Cp8, C),
	0xBA: alu(Operations.Cp8, D),
	0xBB: alu(Operations.Cp8, E),
	0xBC: alu(Operations.Cp8, H),
	0xBD: alu(Operations.Cp8, L),
	0xBE: alu(Operations.Cp8, atHL),
	0xBF: alu(Operations.Cp8, A),

	0xC0: ret(CondNZ),
	0xC1: pop(BC),
	0xC2: branch(Operations.Jump, CondNZ, Direct{}),
	0xC3: branch(Operations.Jump, Always, Direct{}),
	0xC4: branch(Operations.Call, CondNZ, Direct{}),
	0xC5: push(BC),
	0xC6: alu(Operations.Add8, imm8),
	0xC7: rst(0x00),
	0xC8: ret(CondZ),
	0xC9: ret(Always),
	0xCA: branch(Operations.Jump, CondZ, Direct{}),
	0xCC: branch(Operations.Call, CondZ, Direct{}),
	0xCD: branch(Operations.Call, Always, Direct{}),
	0xCE: alu(Operations.Adc8, imm8),
	0xCF: rst(0x08),

	0xD0: ret(CondNC),
	0xD1: pop(DE),
	0xD2: branch(Operations.Jump, CondNC, Direct{}),
	0xD3: out(A, PortImm{}),
	0xD4: branch(Operations.Call, CondNC, Direct{}),
	0xD5: push(DE),
	0xD6: alu(Operations.Sub8, imm8),
	0xD7: rst(0x10),
	0xD8: ret(CondC),
	0xD9: Operations.ExchangeAll,
	0xDA: branch(Operations.Jump, CondC, Direct{}),
	0xDC: branch(Operations.Call, CondC, Direct{}),
	0xDE: alu(Operations.Sbc8, imm8),
	0xDF: rst(0x18),

	0xE0: ret(CondPO),
	0xE1: pop(HL),
	0xE2: branch(Operations.Jump, CondPO, Direct{}),
	0xE3: exchange(atSP, HL),
	0xE4: branch(Operations.Call, CondPO, Direct{}),
	0xE5: push(HL),
	0xE6: alu(Operations.And8, imm8),
	0xE7: rst(0x20),
	0xE8: ret(CondPE),
	0xE9: branch(Operations.Jump, Always, Indirect(HL)),
	0xEA: branch(Operations.Jump, CondPE, Direct{}),
	0xEB: exchange(DE, HL),
	0xEC: branch(Operations.Call, CondPE, Direct{}),
	0xED: visitED,
	0xEE: alu(Operations.Xor8, imm8),
	0xEF: rst(0x28),

	0xF0: ret(CondP),
	0xF1: pop(AF),
	0xF2: branch(Operations.Jump, CondP, Direct{}),
	0xF3: Operations.DisableInterrupts,
	0xF4: branch(Operations.Call, CondP, Direct{}),
	0xF5: push(AF),
	0xF6: alu(Operations.Or8, imm8),
	0xF7: rst(0x30),
	0xF8: ret(CondM),
	0xF9: load16(SP, HL),
	0xFA: branch(Operations.Jump, CondM, Direct{}),
	0xFB: Operations.EnableInterrupts,
	0xFC: branch(Operations.Call, CondM, Direct{}),
	0xFE: alu(Operations.Cp8, imm8),
	0xFF: rst(0x38),
}

// extended holds the opcodes that follow the ED prefix.
var extended = [256]instruction{
	0x41: out(B, PortC{}),
	0x42: arith16(Operations.Sbc16, HL, BC),
	0x43: load16(atNN, BC),
	0x44: Operations.Neg,
	0x45: Operations.Retn,
	0x46: im(0),
	0x49: out(C, PortC{}),
	0x4A: arith16(Operations.Adc16, HL, BC),
	0x4B: load16(BC, atNN),
	0x4D: Operations.Reti,

	0x51: out(D, PortC{}),
	0x52: arith16(Operations.Sbc16, HL, DE),
	0x53: load16(atNN, DE),
	0x56: im(1),
	0x59: out(E, PortC{}),
	0x5A: arith16(Operations.Adc16, HL, DE),
	0x5B: load16(DE, atNN),
	0x5E: im(2),

	0x61: out(H, PortC{}),
	0x62: arith16(Operations.Sbc16, HL, HL),
	0x63: load16(atNN, HL),
	0x69: out(L, PortC{}),
	0x6A: arith16(Operations.Adc16, HL, HL),
	0x6B: load16(HL, atNN),

	0x72: arith16(Operations.Sbc16, HL, SP),
	0x73: load16(atNN, SP),
	0x79: out(A, PortC{}),
	0x7A: arith16(Operations.Adc16, HL, SP),
	0x7B: load16(SP, atNN),

	0xA0: Operations.Ldi,
	0xA8: Operations.Ldd,
	0xB0: Operations.Ldir,
	0xB8: Operations.Lddr,
}

func load8(dst Dst8, src Src8) instruction {
	return func(o Operations) error { return o.Load8(dst, src) }
}

func load16(dst Dst16, src Src16) instruction {
	return func(o Operations) error { return o.Load16(dst, src) }
}

func push(src Src16) instruction {
	return func(o Operations) error { return o.Push16(src) }
}

func pop(dst Dst16) instruction {
	return func(o Operations) error { return o.Pop16(dst) }
}

func exchange(a, b RW16) instruction {
	return func(o Operations) error { return o.Exchange(a, b) }
}

func alu(op func(Operations, Src8) error, src Src8) instruction {
	return func(o Operations) error { return op(o, src) }
}

func rw8(op func(Operations, RW8) error, dst RW8) instruction {
	return func(o Operations) error { return op(o, dst) }
}

func rw16(op func(Operations, RW16) error, dst RW16) instruction {
	return func(o Operations) error { return op(o, dst) }
}

func arith16(op func(Operations, RW16, Src16) error, dst RW16, src Src16) instruction {
	return func(o Operations) error { return op(o, dst, src) }
}

func branch(op func(Operations, Condition, Address) error, cond Condition, target Address) instruction {
	return func(o Operations) error { return op(o, cond, target) }
}

func jr(cond Condition) instruction {
	return func(o Operations) error { return o.JumpRelative(cond, imm8) }
}

func djnz(disp Src8) instruction {
	return func(o Operations) error { return o.Djnz(disp) }
}

func ret(cond Condition) instruction {
	return func(o Operations) error { return o.Return(cond) }
}

func rst(vector uint16) instruction {
	return func(o Operations) error { return o.Restart(Fixed(vector)) }
}

func im(mode uint8) instruction {
	return func(o Operations) error { return o.SetInterruptMode(mode) }
}

func out(src Src8, port Port) instruction {
	return func(o Operations) error { return o.Out(src, port) }
}
