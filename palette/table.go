package palette

import (
	"image/color"

	"decicn/cicn"
)

// FromColorTable converts a cicn color table to a palette in table order.
// Entry values are not carried over.
func FromColorTable(t *cicn.ColorTable) color.Palette {
	pal := make(color.Palette, len(t.Entries))
	for i, e := range t.Entries {
		pal[i] = color.RGBA64{R: e.Red, G: e.Green, B: e.Blue, A: 0xFFFF}
	}
	return pal
}
