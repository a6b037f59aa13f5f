package cpu

import "errors"

// CPU executes instructions one at a time against a Bus.
type CPU struct {
	State

	irq              InterruptController
	interruptPending bool
}

// NewCPU creates a new CPU in its power-on state. irq may be nil, in
// which case no interrupt is ever observed.
func NewCPU(irq InterruptController) *CPU {
	c := &CPU{irq: irq}
	c.Reset()
	return c
}

// Reset returns every register to zero.
func (c *CPU) Reset() {
	c.State = State{}
	c.interruptPending = false
}

// Step fetches, decodes and executes exactly one instruction.
//
// On a decode error the returned error is a *DecodeError. Any other
// failure is wrapped in a *StepError carrying the instruction address.
// In both cases the State may already reflect the opcode fetch.
func (c *CPU) Step(bus Bus) error {
	pc := c.PC
	if err := visit(&executor{s: &c.State, bus: bus}); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.PC = pc
			return de
		}
		return &StepError{PC: pc, Err: err}
	}

	c.interruptPending = c.IFF1 && c.irq != nil && c.irq.Pending()
	return nil
}

// InterruptPending reports whether the last step observed a pending
// interrupt. Interrupts are observed, not delivered.
func (c *CPU) InterruptPending() bool {
	return c.interruptPending
}
