package cpu

// Operations is implemented by everything that consumes decoded
// instructions. The executor implements it to run them, the
// disassembler to print them. The decoder calls exactly one operation
// per instruction, binding it to the operand descriptors its opcode
// selects.
type Operations interface {
	ReadOpcode() (uint8, error)
	ReadExtendedOpcode() (uint8, error)

	Nop() error
	Halt() error

	Load8(dst Dst8, src Src8) error
	Load16(dst Dst16, src Src16) error
	Push16(src Src16) error
	Pop16(dst Dst16) error
	Exchange(a, b RW16) error
	ExchangeAF() error
	ExchangeAll() error

	Ldi() error
	Ldir() error
	Ldd() error
	Lddr() error

	Add8(src Src8) error
	Adc8(src Src8) error
	Sub8(src Src8) error
	Sbc8(src Src8) error
	And8(src Src8) error
	Xor8(src Src8) error
	Or8(src Src8) error
	Cp8(src Src8) error
	Inc8(dst RW8) error
	Dec8(dst RW8) error
	Cpl() error
	Neg() error
	Scf() error
	Ccf() error

	Add16(dst RW16, src Src16) error
	Adc16(dst RW16, src Src16) error
	Sbc16(dst RW16, src Src16) error
	Inc16(dst RW16) error
	Dec16(dst RW16) error

	Jump(cond Condition, target Address) error
	JumpRelative(cond Condition, disp Src8) error
	Djnz(disp Src8) error
	Call(cond Condition, target Address) error
	Restart(vector Address) error
	Return(cond Condition) error
	Retn() error
	Reti() error

	DisableInterrupts() error
	EnableInterrupts() error
	SetInterruptMode(mode uint8) error

	Out(src Src8, port Port) error
}

// instruction binds one opcode to the operation it invokes.
type instruction func(o Operations) error

const prefixED = 0xED

// visit fetches one opcode and dispatches it through the primary table.
func visit(o Operations) error {
	opcode, err := o.ReadOpcode()
	if err != nil {
		return err
	}

	ins := primary[opcode]
	if ins == nil {
		return &DecodeError{Table: TablePrimary, Opcode: opcode}
	}
	return ins(o)
}

// visitED fetches the byte following the ED prefix and dispatches it
// through the extended table.
func visitED(o Operations) error {
	opcode, err := o.ReadExtendedOpcode()
	if err != nil {
		return err
	}

	ins := extended[opcode]
	if ins == nil {
		return &DecodeError{Table: TableExtended, Opcode: opcode}
	}
	return ins(o)
}
