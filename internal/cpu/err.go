package cpu

import (
	"errors"

	"github.com/thelolagemann/gosms/pkg/translate"
)

var f = translate.From

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New(f("undefined opcode"))

// Table identifies an opcode table.
type Table uint8

const (
	// TablePrimary is the unprefixed opcode table.
	TablePrimary Table = iota
	// TableExtended is the table behind the ED prefix.
	TableExtended
)

func (t Table) String() string {
	switch t {
	case TablePrimary:
		return "primary"
	case TableExtended:
		return "ED"
	}
	return f("table %v", uint8(t))
}

// DecodeError reports an opcode with no entry in its table.
type DecodeError struct {
	Table  Table
	Opcode uint8
	// PC is the address of the first byte of the instruction.
	PC uint16
}

func (e *DecodeError) Error() string {
	return f("undefined opcode $%02X in %v table at $%04X", e.Opcode, e.Table, e.PC)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// StepError wraps a bus failure with the address of the instruction
// that caused it.
type StepError struct {
	PC  uint16
	Err error
}

func (e *StepError) Error() string {
	return f("step at $%04X: %v", e.PC, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
