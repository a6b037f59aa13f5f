package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []uint16{0x0000, 0x00FF, 0xFF00, 0x1234, 0xFFFF} {
		hi, lo := Uint16ToBytes(v)
		assert.Equal(v, BytesToUint16(hi, lo))
	}
	assert.Equal(uint16(0xABCD), BytesToUint16(0xAB, 0xCD))
}

func TestDecompress_Raw(t *testing.T) {
	data := []byte{0xF3, 0xED, 0x56}

	out, err := Decompress(".sms", data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_Gzip(t *testing.T) {
	data := []byte{0x3E, 0x42, 0xD3, 0xFD}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decompress(".GZ", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_Zip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("image.sms")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decompress(".zip", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_EmptyZip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, zip.NewWriter(&buf).Close())

	_, err := Decompress(".zip", buf.Bytes())
	assert.ErrorIs(t, err, ErrEmptyArchive)
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(name, []byte{0xC3, 0x00, 0x00}, 0o644))

	out, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC3, 0x00, 0x00}, out)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
