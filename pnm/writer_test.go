package pnm

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"decicn/cicn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter(logs *bytes.Buffer) *Writer {
	return &Writer{Logger: slog.New(slog.NewTextHandler(logs, nil))}
}

func twoColorPixMap(data []byte) *cicn.PixMap {
	return &cicn.PixMap{
		Plane: cicn.Plane{
			RowBytes:  1,
			Flags:     0x8000,
			Bounds:    cicn.Rect{Top: 0, Left: 0, Bottom: 1, Right: 2},
			PixelSize: 8,
			Data:      data,
		},
		Table: cicn.ColorTable{
			Size: 1,
			Entries: []cicn.ColorEntry{
				{Value: 5, Red: 0, Green: 0, Blue: 65535},
				{Value: 9, Red: 65535, Green: 0, Blue: 0},
			},
		},
	}
}

func TestWritePixMap(t *testing.T) {
	var out, logs bytes.Buffer
	skipped, err := testWriter(&logs).WritePixMap(&out, twoColorPixMap([]byte{5, 9}))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, "P3\n# converted from cicn\n2 1\n65535\n0 0 65535\n65535 0 0\n", out.String())
	assert.Empty(t, logs.String())
}

func TestWritePixMapNoRowBreaks(t *testing.T) {
	pm := &cicn.PixMap{
		Plane: cicn.Plane{
			RowBytes:  1,
			Bounds:    cicn.Rect{Top: 10, Left: 20, Bottom: 12, Right: 24},
			PixelSize: 2,
			Data:      []byte{0b00_01_10_11, 0b11_10_01_00},
		},
		Table: cicn.ColorTable{
			Size: 3,
			Entries: []cicn.ColorEntry{
				{Value: 0, Red: 0, Green: 0, Blue: 0},
				{Value: 1, Red: 1, Green: 1, Blue: 1},
				{Value: 2, Red: 2, Green: 2, Blue: 2},
				{Value: 3, Red: 3, Green: 3, Blue: 3},
			},
		},
	}

	var out, logs bytes.Buffer
	_, err := testWriter(&logs).WritePixMap(&out, pm)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4+8)
	assert.Equal(t, "4 2", lines[2])
	assert.Equal(t, []string{
		"0 0 0", "1 1 1", "2 2 2", "3 3 3",
		"3 3 3", "2 2 2", "1 1 1", "0 0 0",
	}, lines[4:])
}

func TestWritePixMapUnresolved(t *testing.T) {
	var out, logs bytes.Buffer
	skipped, err := testWriter(&logs).WritePixMap(&out, twoColorPixMap([]byte{7, 9}))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "P3\n# converted from cicn\n2 1\n65535\n65535 0 0\n", out.String())

	assert.Contains(t, logs.String(), "unresolved palette index")
	assert.Contains(t, logs.String(), "index=7")
	assert.Contains(t, logs.String(), "x=0")
}

func TestWritePixMapUnsupportedDepth(t *testing.T) {
	pm := twoColorPixMap([]byte{5, 9})
	pm.PixelSize = 16

	var out, logs bytes.Buffer
	_, err := testWriter(&logs).WritePixMap(&out, pm)
	require.ErrorIs(t, err, cicn.ErrUnsupportedPixelDepth)
	assert.Empty(t, out.String())
}

func TestWriteBitMap(t *testing.T) {
	p := &cicn.Plane{
		RowBytes:  1,
		Bounds:    cicn.Rect{Top: 0, Left: 0, Bottom: 2, Right: 3},
		PixelSize: 1,
		Data:      []byte{0b10100000, 0b01000000},
	}

	var out, logs bytes.Buffer
	require.NoError(t, testWriter(&logs).WriteBitMap(&out, p))
	assert.Equal(t, "P1\n# converted from cicn\n3 2\n1 0 1\n0 1 0\n", out.String())
}

func TestWriteBitMapComment(t *testing.T) {
	p := &cicn.Plane{
		RowBytes:  2,
		Bounds:    cicn.Rect{Bottom: 1, Right: 10},
		PixelSize: 1,
		Data:      []byte{0xFF, 0b11000000},
	}

	var out bytes.Buffer
	w := &Writer{Comment: "mask of 128"}
	require.NoError(t, w.WriteBitMap(&out, p))
	assert.Equal(t, "P1\n# mask of 128\n10 1\n1 1 1 1 1 1 1 1 1 1\n", out.String())
}

func TestWriteBitMapStrideTooSmall(t *testing.T) {
	p := &cicn.Plane{
		RowBytes:  1,
		Bounds:    cicn.Rect{Bottom: 1, Right: 9},
		PixelSize: 1,
		Data:      []byte{0xFF},
	}

	var out bytes.Buffer
	err := (&Writer{}).WriteBitMap(&out, p)
	require.ErrorIs(t, err, cicn.ErrInvalidFormat)
}

func TestWritePixMapDepth8Stride(t *testing.T) {
	gray := func(n int) []cicn.ColorEntry {
		entries := make([]cicn.ColorEntry, n)
		for i := range entries {
			entries[i] = cicn.ColorEntry{Value: uint16(i), Red: uint16(i), Green: uint16(i), Blue: uint16(i)}
		}
		return entries
	}

	tests := []struct {
		name     string
		rowBytes int
		bounds   cicn.Rect
		data     []byte
		want     []string
	}{
		{
			name:     "stride wider than row",
			rowBytes: 3,
			bounds:   cicn.Rect{Bottom: 2, Right: 2},
			data:     []byte{1, 2, 7, 3, 4, 7},
			want:     []string{"1 1 1", "2 2 2", "3 3 3", "4 4 4"},
		},
		{
			name:     "row wider than stride",
			rowBytes: 1,
			bounds:   cicn.Rect{Bottom: 2, Right: 2},
			data:     []byte{1, 2, 3},
			want:     []string{"1 1 1", "2 2 2", "2 2 2", "3 3 3"},
		},
		{
			name:     "offset bounds",
			rowBytes: 2,
			bounds:   cicn.Rect{Top: 5, Left: -3, Bottom: 6, Right: -1},
			data:     []byte{6, 5},
			want:     []string{"6 6 6", "5 5 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := &cicn.PixMap{
				Plane: cicn.Plane{
					RowBytes:  tt.rowBytes,
					Bounds:    tt.bounds,
					PixelSize: 8,
					Data:      tt.data,
				},
				Table: cicn.ColorTable{Size: 7, Entries: gray(8)},
			}

			var out, logs bytes.Buffer
			skipped, err := testWriter(&logs).WritePixMap(&out, pm)
			require.NoError(t, err)
			assert.Zero(t, skipped)

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Len(t, lines, 4+len(tt.want))
			assert.Equal(t, tt.want, lines[4:])
		})
	}
}

func TestWritePixMapPastBuffer(t *testing.T) {
	pm := twoColorPixMap([]byte{5})

	var out, logs bytes.Buffer
	_, err := testWriter(&logs).WritePixMap(&out, pm)
	require.ErrorIs(t, err, cicn.ErrInvalidFormat)
	assert.Empty(t, out.String())
}
