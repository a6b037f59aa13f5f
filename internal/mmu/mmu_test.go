package mmu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gosms/internal/cartridge"
	"github.com/thelolagemann/gosms/pkg/log"
)

func newTestMMU(t *testing.T, rom []byte, l log.Logger) *MMU {
	t.Helper()
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	return NewMMU(cart, l)
}

func TestMMU_ROM(t *testing.T) {
	m := newTestMMU(t, []byte{0x11, 0x22, 0x33}, nil)

	v, err := m.Read(0x0002)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x33), v)

	err = m.Write(0x0000, 0xFF)
	assert.ErrorIs(t, err, ErrReadOnly)
	var ae *AccessError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, KindWrite, ae.Kind)
	assert.Equal(t, uint16(0x0000), ae.Address)

	v, _ = m.Read(0x0000)
	assert.Equal(t, uint8(0x11), v)

	// inside the ROM window but past the image
	_, err = m.Read(0x8000)
	assert.ErrorIs(t, err, cartridge.ErrOutOfBounds)
}

func TestMMU_RAM(t *testing.T) {
	m := newTestMMU(t, []byte{0x00}, nil)

	for _, addr := range []uint16{RAMStart, 0xC123, RAMEnd} {
		require.NoError(t, m.Write(addr, uint8(addr)))
		v, err := m.Read(addr)
		require.NoError(t, err)
		assert.Equal(t, uint8(addr), v)
	}
}

func TestMMU_Unmapped(t *testing.T) {
	m := newTestMMU(t, []byte{0x00}, nil)

	for _, addr := range []uint16{0xE000, 0xF123, 0xFFFF} {
		_, err := m.Read(addr)
		assert.ErrorIs(t, err, ErrUnmapped)
		var ae *AccessError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, addr, ae.Address)
		assert.Equal(t, KindRead, ae.Kind)

		err = m.Write(addr, 0x01)
		assert.ErrorIs(t, err, ErrUnmapped)
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, KindWrite, ae.Kind)
	}
}

func TestMMU_Ports(t *testing.T) {
	var out bytes.Buffer
	m := newTestMMU(t, []byte{0x00}, log.New(&out, log.LevelDebug))

	var got []uint8
	m.ReservePort(0xFD, func(v uint8) error {
		got = append(got, v)
		return nil
	})

	require.NoError(t, m.WritePort(0xFD, 'o'))
	require.NoError(t, m.WritePort(0xFD, 'k'))
	assert.Equal(t, []uint8{'o', 'k'}, got)
	assert.Empty(t, out.String())

	require.NoError(t, m.WritePort(0x3F, 0xA5))
	assert.Equal(t, "[DEBUG]\twrite to port 3F = A5\n", out.String())

	assert.Panics(t, func() { m.ReservePort(0xFD, nil) })
}

func TestMMU_PortError(t *testing.T) {
	m := newTestMMU(t, []byte{0x00}, nil)
	sink := errors.New("sink closed")
	m.ReservePort(0x01, func(uint8) error { return sink })
	assert.ErrorIs(t, m.WritePort(0x01, 0), sink)
}
