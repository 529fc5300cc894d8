// Package cicntest builds cicn byte streams for tests.
package cicntest

import (
	"encoding/binary"

	"decicn/cicn"
)

// Offsets of fixed fields within an encoded stream.
const (
	OffsetRowBytes     = 4
	OffsetVersion      = 14
	OffsetPackType     = 16
	OffsetPackSize     = 18
	OffsetHRes         = 22
	OffsetVRes         = 26
	OffsetPixelType    = 30
	OffsetPixelSize    = 32
	OffsetCmpCount     = 34
	OffsetPlaneBytes   = 38
	OffsetPMTable      = 42
	OffsetPMReserved   = 46
	OffsetMaskHeader   = cicn.SizeOfPixMapHeader
	OffsetBitMapHeader = OffsetMaskHeader + cicn.SizeOfBitMapHeader
	OffsetPlaceholder  = OffsetBitMapHeader + cicn.SizeOfBitMapHeader
	OffsetMaskData     = OffsetPlaceholder + 4
)

// Sample returns a small valid icon: a 2x2 color plane at 2 bits per pixel
// with a four color table, a 2x2 mask and a 2x2 monochrome plane.
func Sample() *cicn.Icon {
	bounds := cicn.Rect{Top: 0, Left: 0, Bottom: 2, Right: 2}
	return &cicn.Icon{
		PixMap: cicn.PixMap{
			Plane: cicn.Plane{
				RowBytes:  1,
				Flags:     0x8000,
				Bounds:    bounds,
				PixelSize: 2,
				Data:      []byte{0b00_01_0000, 0b10_11_0000},
			},
			HRes:     cicn.FixedResolution,
			VRes:     cicn.FixedResolution,
			CmpCount: 1,
			CmpSize:  2,
			Table: cicn.ColorTable{
				Seed: 0x1234,
				Size: 3,
				Entries: []cicn.ColorEntry{
					{Value: 0, Red: 0xFFFF, Green: 0xFFFF, Blue: 0xFFFF},
					{Value: 1, Red: 0xFFFF, Green: 0, Blue: 0},
					{Value: 2, Red: 0, Green: 0xFFFF, Blue: 0},
					{Value: 3, Red: 0, Green: 0, Blue: 0},
				},
			},
		},
		Mask: cicn.Plane{
			RowBytes:  2,
			Bounds:    bounds,
			PixelSize: 1,
			Data:      []byte{0b11000000, 0, 0b01000000, 0},
		},
		BitMap: cicn.Plane{
			RowBytes:  2,
			Bounds:    bounds,
			PixelSize: 1,
			Data:      []byte{0b10000000, 0, 0b01000000, 0},
		},
	}
}

// Encode serializes ic in cicn field order. Fields are written as given, so
// a test can produce invalid streams by altering the icon first.
func Encode(ic *cicn.Icon) []byte {
	var b []byte
	u16 := func(v uint16) { b = binary.BigEndian.AppendUint16(b, v) }
	u32 := func(v uint32) { b = binary.BigEndian.AppendUint32(b, v) }
	rect := func(r cicn.Rect) {
		u16(uint16(r.Top))
		u16(uint16(r.Left))
		u16(uint16(r.Bottom))
		u16(uint16(r.Right))
	}

	pm := &ic.PixMap
	u32(0)
	u16(uint16(pm.RowBytes) | pm.Flags)
	rect(pm.Bounds)
	u16(pm.Version)
	u16(pm.PackType)
	u32(pm.PackSize)
	u32(pm.HRes)
	u32(pm.VRes)
	u16(pm.PixelType)
	u16(uint16(pm.PixelSize))
	u16(pm.CmpCount)
	u16(pm.CmpSize)
	u32(0)
	u32(0)
	u32(0)

	for _, p := range []*cicn.Plane{&ic.Mask, &ic.BitMap} {
		u32(0)
		u16(uint16(p.RowBytes))
		rect(p.Bounds)
	}
	u32(0)

	b = append(b, ic.Mask.Data...)
	b = append(b, ic.BitMap.Data...)

	u32(pm.Table.Seed)
	u16(pm.Table.Flags)
	u16(pm.Table.Size)
	for _, e := range pm.Table.Entries {
		u16(e.Value)
		u16(e.Red)
		u16(e.Green)
		u16(e.Blue)
	}

	return append(b, pm.Data...)
}
