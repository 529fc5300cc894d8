package palette

import (
	"bytes"
	"image/color"
	"testing"

	"decicn/cicn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromColorTable(t *testing.T) {
	table := &cicn.ColorTable{
		Size: 1,
		Entries: []cicn.ColorEntry{
			{Value: 9, Red: 0xFFFF, Green: 0x8000, Blue: 0},
			{Value: 2, Red: 0x1234, Green: 0, Blue: 0xABCD},
		},
	}

	pal := FromColorTable(table)
	require.Len(t, pal, 2)
	assert.Equal(t, color.RGBA64{R: 0xFFFF, G: 0x8000, B: 0, A: 0xFFFF}, pal[0])
	assert.Equal(t, color.RGBA64{R: 0x1234, G: 0, B: 0xABCD, A: 0xFFFF}, pal[1])
}

func TestWriteReadRIFF(t *testing.T) {
	pal := color.Palette{
		color.RGBA64{R: 0xFFFF, G: 0x8000, B: 0, A: 0xFFFF},
		color.RGBA64{R: 0x1234, G: 0, B: 0xABCD, A: 0xFFFF},
		color.RGBA{R: 1, G: 2, B: 3, A: 0xFF},
	}

	var buf bytes.Buffer
	n, err := WriteTo(&buf, pal)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 8+4+8+4+3*4, buf.Len())
	assert.Equal(t, []byte("RIFF"), buf.Bytes()[:4])
	assert.Equal(t, []byte("PAL data"), buf.Bytes()[8:16])

	pals, err := ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, pals, 1)
	assert.Equal(t, color.Palette{
		color.RGBA{R: 0xFF, G: 0x80, B: 0, A: 0xFF},
		color.RGBA{R: 0x12, G: 0, B: 0xAB, A: 0xFF},
		color.RGBA{R: 1, G: 2, B: 3, A: 0xFF},
	}, pals[0])
}

func TestReadFromWrongForm(t *testing.T) {
	doc := []byte("RIFF\x04\x00\x00\x00WAVE")
	_, err := ReadFrom(bytes.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported RIFF content type")
}
