package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAM(t *testing.T) {
	assert := assert.New(t)

	r := NewRAM(0x2000)
	assert.Equal(0x2000, r.Len())
	assert.Equal(uint8(0), r.Read(0x1FFF))

	r.Write(0x0000, 0x12)
	r.Write(0x1FFF, 0x34)
	assert.Equal(uint8(0x12), r.Read(0x0000))
	assert.Equal(uint8(0x34), r.Read(0x1FFF))

	assert.Panics(func() { r.Read(0x2000) })
}
