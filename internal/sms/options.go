package sms

import (
	"io"

	"github.com/thelolagemann/gosms/internal/console"
	"github.com/thelolagemann/gosms/internal/cpu"
	"github.com/thelolagemann/gosms/internal/interrupts"
	"github.com/thelolagemann/gosms/pkg/log"
)

// Opt is a function that modifies a Machine instance.
type Opt func(m *Machine)

// WithLogger sets the logger used by the machine and its bus.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.Logger = l
		m.MMU.Log = l
	}
}

// WithConsole sends console port output to w instead of stdout.
func WithConsole(w io.Writer) Opt {
	return func(m *Machine) {
		m.Console = console.New(w)
	}
}

// WithInterrupts replaces the interrupt controller the CPU polls.
func WithInterrupts(s *interrupts.Service) Opt {
	return func(m *Machine) {
		m.Interrupts = s
		m.CPU = cpu.NewCPU(s)
	}
}

// Trace logs every instruction and the register file at debug level.
func Trace() Opt {
	return func(m *Machine) {
		m.trace = true
	}
}

// StepLimit stops Run with ErrStepLimit after n instructions. Zero
// means no limit.
func StepLimit(n uint64) Opt {
	return func(m *Machine) {
		m.limit = n
	}
}
