package encoding_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/mobility/internal/encoding"
)

func TestReadAll_UTF8Passthrough(t *testing.T) {
	input := "Fecha Inicio;Ubicación;Nombre y Apellidos\n28/08/2025;Logroño;María Pérez\n"

	got, charset, err := encoding.ReadAll(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	assert.Equal(t, encoding.CharsetUTF8, charset)
	assert.Equal(t, input, got)
}

func TestReadAll_Windows1252(t *testing.T) {
	utf8CSV := "Ubicación;Delegación\nLogroño;Cádiz\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	got, _, err := encoding.ReadAll(bytes.NewReader(latin1))
	require.NoError(t, err)
	assert.Equal(t, utf8CSV, got)
}

func TestReadAll_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("GPID,Ubicación\n1,Madrid\n")...)

	got, charset, err := encoding.ReadAll(bytes.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, encoding.CharsetUTF8BOM, charset)
	assert.Equal(t, "GPID,Ubicación\n1,Madrid\n", got)
}

func TestReadAll_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	utf16, err := enc.Bytes([]byte("Ubicación\nMálaga\n"))
	require.NoError(t, err)

	got, charset, err := encoding.ReadAll(bytes.NewReader(utf16))
	require.NoError(t, err)

	assert.Equal(t, encoding.CharsetUTF16LE, charset)
	assert.Equal(t, "Ubicación\nMálaga\n", got)
}

func TestReadAll_Empty(t *testing.T) {
	got, charset, err := encoding.ReadAll(bytes.NewReader(nil))
	require.NoError(t, err)

	assert.Equal(t, encoding.CharsetUTF8, charset)
	assert.Empty(t, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadAll_ReadError(t *testing.T) {
	_, _, err := encoding.ReadAll(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestNewUTF8Reader_LargeInput(t *testing.T) {
	// Larger than the sniff window, so Peek reports a full buffer.
	input := bytes.Repeat([]byte("Madrid;"), 2000)

	r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, encoding.CharsetUTF8, charset)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}
