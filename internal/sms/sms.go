// Package sms wires the CPU, bus, cartridge and console into a machine
// and runs it.
package sms

import (
	"context"
	"os"

	"github.com/thelolagemann/gosms/internal/cartridge"
	"github.com/thelolagemann/gosms/internal/console"
	"github.com/thelolagemann/gosms/internal/cpu"
	"github.com/thelolagemann/gosms/internal/interrupts"
	"github.com/thelolagemann/gosms/internal/mmu"
	"github.com/thelolagemann/gosms/pkg/log"
)

// ConsolePort is the I/O port whose writes are printed as characters.
const ConsolePort uint8 = 0xFD

// the run loop checks for cancellation every this many steps
const cancelInterval = 1024

// Machine contains all the components of the machine. It is the main
// entry point for the emulator.
type Machine struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Cartridge  *cartridge.Cartridge
	Interrupts *interrupts.Service
	Console    *console.Console

	log.Logger

	steps uint64
	limit uint64
	trace bool
}

// New returns a new Machine in its power-on state with cart inserted.
func New(cart *cartridge.Cartridge, opts ...Opt) *Machine {
	logger := log.NewNullLogger()
	interrupt := interrupts.NewService()
	memBus := mmu.NewMMU(cart, logger)

	m := &Machine{
		CPU:        cpu.NewCPU(interrupt),
		MMU:        memBus,
		Cartridge:  cart,
		Interrupts: interrupt,
		Console:    console.New(os.Stdout),
		Logger:     logger,
	}

	// the console may be swapped by an option, so resolve it per write
	m.MMU.ReservePort(ConsolePort, func(v uint8) error {
		return m.Console.WriteByte(v)
	})

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Step executes a single instruction.
func (m *Machine) Step() error {
	if m.trace {
		m.traceStep()
	}
	if err := m.CPU.Step(m.MMU); err != nil {
		return err
	}
	m.steps++
	return nil
}

func (m *Machine) traceStep() {
	text, _, err := cpu.Disassemble(m.MMU, m.CPU.PC)
	if err != nil {
		text = "??"
	}
	m.Debugf("%04X  %-16s %s", m.CPU.PC, text, m.CPU.State)
}

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Run executes instructions until one fails, ctx is done, or the step
// limit is reached. The console is flushed before returning.
func (m *Machine) Run(ctx context.Context) (err error) {
	m.Infof("running %d byte image, xxhash %016x", m.Cartridge.Len(), m.Cartridge.Hash())
	if h := m.Cartridge.Header(); h != nil {
		m.Infof("header at %04X: %s", h.Offset, h)
	}

	defer func() {
		if ferr := m.Console.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	for {
		if m.limit > 0 && m.steps >= m.limit {
			return ErrStepLimit
		}
		if m.steps%cancelInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := m.Step(); err != nil {
			m.Errorf("registers at failure: %s", m.CPU.State)
			return err
		}
	}
}
