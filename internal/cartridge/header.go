package cartridge

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// signature marks a SEGA header. It is looked for at the last 16 bytes
// of each of these windows, largest first.
var (
	signature     = []byte("TMR SEGA")
	headerOffsets = []uint16{0x7FF0, 0x3FF0, 0x1FF0}
)

// Region is the region and system code of a SEGA header.
type Region uint8

const (
	RegionSMSJapan        Region = 0x3
	RegionSMSExport       Region = 0x4
	RegionGGJapan         Region = 0x5
	RegionGGExport        Region = 0x6
	RegionGGInternational Region = 0x7
)

func (r Region) String() string {
	switch r {
	case RegionSMSJapan:
		return "SMS Japan"
	case RegionSMSExport:
		return "SMS Export"
	case RegionGGJapan:
		return "GG Japan"
	case RegionGGExport:
		return "GG Export"
	case RegionGGInternational:
		return "GG International"
	}
	return fmt.Sprintf("Region(%d)", uint8(r))
}

var romSizes = map[uint8]uint{
	0xA: 8 * 1024,
	0xB: 16 * 1024,
	0xC: 32 * 1024,
	0xD: 48 * 1024,
	0xE: 64 * 1024,
	0xF: 128 * 1024,
	0x0: 256 * 1024,
	0x1: 512 * 1024,
	0x2: 1024 * 1024,
}

// Header is the 16-byte SEGA header some images carry. The header is
// informational only: nothing in the machine depends on it.
type Header struct {
	// Offset is the address the header was found at.
	Offset uint16

	// +0x0A-0x0B, little-endian
	Checksum uint16
	// +0x0C-0x0E, BCD with a fifth digit in the high nibble of +0x0E
	ProductCode uint32
	// low nibble of +0x0E
	Version uint8
	// high nibble of +0x0F
	Region Region
	// ROMSize is the size declared by the low nibble of +0x0F, in
	// bytes, or 0 for an unknown size code.
	ROMSize uint
}

func parseHeader(rom []byte) *Header {
	for _, offset := range headerOffsets {
		end := int(offset) + 16
		if end > len(rom) {
			continue
		}
		raw := rom[offset:end]
		if !bytes.Equal(raw[:8], signature) {
			continue
		}

		return &Header{
			Offset:      offset,
			Checksum:    binary.LittleEndian.Uint16(raw[0x0A:]),
			ProductCode: uint32(raw[0x0E]>>4)*10000 + bcd(raw[0x0D])*100 + bcd(raw[0x0C]),
			Version:     raw[0x0E] & 0x0F,
			Region:      Region(raw[0x0F] >> 4),
			ROMSize:     romSizes[raw[0x0F]&0x0F],
		}
	}
	return nil
}

func bcd(b uint8) uint32 {
	return uint32(b>>4)*10 + uint32(b&0x0F)
}

// String returns a one-line summary of the header.
func (h *Header) String() string {
	return fmt.Sprintf("product %05d v%d | %s | checksum %04X | %d KiB declared",
		h.ProductCode, h.Version, h.Region, h.Checksum, h.ROMSize/1024)
}
