package cicn

import "fmt"

// PixelsPerRow is the number of packed pixels a row of rowBytes holds.
func PixelsPerRow(rowBytes, depth int) int {
	if depth <= 0 {
		return 0
	}
	return rowBytes * 8 / depth
}

// Unpack extracts the pixel at column x, row y from a packed buffer. Pixels
// are packed most significant bits first.
func Unpack(buf []byte, rowBytes, depth, x, y int) (uint16, error) {
	switch depth {
	case 1, 2, 4, 8:
	default:
		return 0, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedPixelDepth, depth)
	}

	idx := y*PixelsPerRow(rowBytes, depth) + x
	off := idx * depth / 8
	if idx < 0 || off >= len(buf) {
		return 0, invalid("pixel (%d, %d) is past the end of a %d byte buffer", x, y, len(buf))
	}
	b := buf[off]

	switch depth {
	case 1:
		return uint16(b>>(7-idx%8)) & 1, nil
	case 2:
		return uint16(b>>(2*(3-idx%4))) & 0x03, nil
	case 4:
		if idx%2 == 1 {
			return uint16(b & 0x0F), nil
		}
		return uint16(b>>4) & 0x0F, nil
	}
	return uint16(b), nil
}

// CheckExtent makes sure every pixel of the plane's bounds is backed by data.
func (p *Plane) CheckExtent() error {
	switch p.PixelSize {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedPixelDepth, p.PixelSize)
	}
	w, h := p.Bounds.Dx(), p.Bounds.Dy()
	if w < 0 || h < 0 {
		return invalid("negative extent %dx%d", w, h)
	}
	if w == 0 || h == 0 {
		return nil
	}

	// Rows wider than the stride run on into the next row; only the last
	// pixel has to land inside the buffer.
	last := (h-1)*PixelsPerRow(p.RowBytes, p.PixelSize) + w - 1
	if off := last * p.PixelSize / 8; off >= len(p.Data) {
		return invalid("pixel (%d, %d) is past the end of a %d byte buffer", w-1, h-1, len(p.Data))
	}
	return nil
}

