// Package mmu provides the memory and I/O bus of the machine. The MMU
// is unaware of the other components: the cartridge and RAM are mapped
// into its address table, and port writes are fanned out to whatever
// handlers have been reserved.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gosms/internal/cartridge"
	"github.com/thelolagemann/gosms/internal/cpu"
	"github.com/thelolagemann/gosms/internal/ram"
	"github.com/thelolagemann/gosms/pkg/log"
)

const (
	// ROMStart and ROMEnd bound the cartridge window.
	ROMStart uint16 = 0x0000
	ROMEnd   uint16 = 0xBFFF
	// RAMStart and RAMEnd bound the work RAM window.
	RAMStart uint16 = 0xC000
	RAMEnd   uint16 = 0xDFFF
	// RAMSize is the size of the work RAM (8kB).
	RAMSize = uint32(RAMEnd-RAMStart) + 1
)

// PortHandler receives the bytes written to an I/O port.
type PortHandler func(value uint8) error

// region is one window of the address space.
type region struct {
	Read  func(address uint16) (uint8, error)
	Write func(address uint16, value uint8) error
}

// MMU maps the 64kB address space and the 256 I/O ports.
type MMU struct {
	// 64kB address space, nil entries are unmapped
	raw [0x10000]*region

	// 0x0000 - 0xBFFF - ROM (48kB)
	Cart *cartridge.Cartridge

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM ram.RAM

	ports [0x100]PortHandler

	Log log.Logger
}

var _ cpu.Bus = (*MMU)(nil)

// NewMMU returns a new MMU with cart mapped into the ROM window.
func NewMMU(cart *cartridge.Cartridge, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	m := &MMU{
		Cart: cart,
		wRAM: ram.NewRAM(RAMSize),
		Log:  logger,
	}
	m.init()
	return m
}

func (m *MMU) init() {
	regions := []region{
		{Read: m.Cart.Read, Write: writeProtected},
		{Read: readOffset(m.wRAM.Read, RAMStart), Write: writeOffset(m.wRAM.Write, RAMStart)},
	}

	// 0x0000 - 0xBFFF - ROM (48kB)
	for i := int(ROMStart); i <= int(ROMEnd); i++ {
		m.raw[i] = &regions[0]
	}

	// 0xC000 - 0xDFFF - internal RAM (8kB)
	for i := int(RAMStart); i <= int(RAMEnd); i++ {
		m.raw[i] = &regions[1]
	}
}

func writeProtected(uint16, uint8) error {
	return ErrReadOnly
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) (uint8, error) {
	return func(addr uint16) (uint8, error) {
		return read(addr - offset), nil
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) error {
	return func(addr uint16, v uint8) error {
		write(addr-offset, v)
		return nil
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	r := m.raw[address]
	if r == nil {
		return 0, &AccessError{Address: address, Kind: KindRead, Err: ErrUnmapped}
	}
	v, err := r.Read(address)
	if err != nil {
		return 0, &AccessError{Address: address, Kind: KindRead, Err: err}
	}
	return v, nil
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	r := m.raw[address]
	if r == nil {
		return &AccessError{Address: address, Kind: KindWrite, Err: ErrUnmapped}
	}
	if err := r.Write(address, value); err != nil {
		return &AccessError{Address: address, Kind: KindWrite, Err: err}
	}
	return nil
}

// ReservePort routes writes to port through handler. Reserving a port
// twice is a programming error and panics.
func (m *MMU) ReservePort(port uint8, handler PortHandler) {
	if m.ports[port] != nil {
		panic(fmt.Sprintf("port %02X is already reserved", port))
	}
	m.ports[port] = handler
}

// WritePort writes value to port. Writes to ports without a handler
// are only logged.
func (m *MMU) WritePort(port uint8, value uint8) error {
	if h := m.ports[port]; h != nil {
		return h(value)
	}
	m.Log.Debugf("write to port %02X = %02X", port, value)
	return nil
}
