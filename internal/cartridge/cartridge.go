// Package cartridge provides the read-only ROM image mapped into the
// low address window.
package cartridge

import (
	"github.com/cespare/xxhash"
)

// MaxSize is the size of the ROM window, 0x0000-0xBFFF. No bank
// switching is performed, so larger images cannot be addressed.
const MaxSize = 0xC000

// Cartridge is an immutable ROM image.
type Cartridge struct {
	rom    []byte
	header *Header
}

// New returns a cartridge backed by a copy of rom.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) == 0 {
		return nil, ErrEmptyImage
	}
	if len(rom) > MaxSize {
		return nil, &SizeError{Size: len(rom)}
	}

	c := &Cartridge{rom: append([]byte(nil), rom...)}
	c.header = parseHeader(c.rom)
	return c, nil
}

// Read returns the byte at address, failing with ErrOutOfBounds past
// the end of the image.
func (c *Cartridge) Read(address uint16) (uint8, error) {
	if int(address) >= len(c.rom) {
		return 0, ErrOutOfBounds
	}
	return c.rom[address], nil
}

// Len returns the image size in bytes.
func (c *Cartridge) Len() int {
	return len(c.rom)
}

// Hash returns the xxhash64 fingerprint of the image.
func (c *Cartridge) Hash() uint64 {
	return xxhash.Sum64(c.rom)
}

// Header returns the SEGA header found in the image, or nil.
func (c *Cartridge) Header() *Header {
	return c.header
}
