package cicn

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxPlaneBytes caps the size of a single pixel buffer.
const DefaultMaxPlaneBytes = 64 << 20

type Decoder struct {
	// MaxPlaneBytes refuses pixel buffers larger than this. Zero means
	// DefaultMaxPlaneBytes.
	MaxPlaneBytes int
	Logger        *slog.Logger
}

// Decode reads a whole cicn resource from r with default limits.
func Decode(r io.Reader) (*Icon, error) {
	var d Decoder
	return d.Decode(r)
}

// Decode reads a whole cicn resource from r. The layout is the color plane
// header, the mask and monochrome headers, a zero long, the mask and
// monochrome pixels, the color table and finally the color pixels.
func (d *Decoder) Decode(r io.Reader) (*Icon, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	br := newByteReader(r)
	icon := &Icon{}

	if err := readPixMapHeader(br, &icon.PixMap); err != nil {
		return nil, fmt.Errorf("could not read pixmap header: %w", err)
	}
	if err := readBitMapHeader(br, &icon.Mask); err != nil {
		return nil, fmt.Errorf("could not read mask header: %w", err)
	}
	if err := readBitMapHeader(br, &icon.BitMap); err != nil {
		return nil, fmt.Errorf("could not read bitmap header: %w", err)
	}
	if err := br.expect("icon data placeholder", 0); err != nil {
		return nil, err
	}

	var err error
	if icon.Mask.Data, err = d.readPlaneData(br, &icon.Mask, "mask"); err != nil {
		return nil, err
	}
	logger.Debug("read plane", "plane", "mask", "rowBytes", icon.Mask.RowBytes, "bytes", len(icon.Mask.Data))

	if icon.BitMap.Data, err = d.readPlaneData(br, &icon.BitMap, "bitmap"); err != nil {
		return nil, err
	}
	logger.Debug("read plane", "plane", "bitmap", "rowBytes", icon.BitMap.RowBytes, "bytes", len(icon.BitMap.Data))

	if err = readColorTable(br, &icon.PixMap.Table); err != nil {
		return nil, fmt.Errorf("could not read color table: %w", err)
	}
	logger.Debug("read color table", "entries", len(icon.PixMap.Table.Entries))

	if icon.PixMap.Data, err = d.readPlaneData(br, &icon.PixMap.Plane, "pixmap"); err != nil {
		return nil, err
	}
	logger.Debug("read plane", "plane", "pixmap", "rowBytes", icon.PixMap.RowBytes,
		"pixelSize", icon.PixMap.PixelSize, "bytes", len(icon.PixMap.Data))

	return icon, nil
}

func readRect(br *byteReader, r *Rect) error {
	for _, f := range []struct {
		name string
		dst  *int16
	}{
		{"bounds.top", &r.Top},
		{"bounds.left", &r.Left},
		{"bounds.bottom", &r.Bottom},
		{"bounds.right", &r.Right},
	} {
		v, err := br.readU16(f.name)
		if err != nil {
			return err
		}
		*f.dst = int16(v)
	}
	return nil
}

func readPixMapHeader(br *byteReader, pm *PixMap) error {
	if err := br.expect("baseAddr", 0); err != nil {
		return err
	}

	rowBytes, err := br.readU16("rowBytes")
	if err != nil {
		return err
	}
	if rowBytes&flagsMask != pixMapFlag {
		return invalid("rowBytes flags are 0x%04X, expected 0x%04X", rowBytes&flagsMask, pixMapFlag)
	}
	pm.RowBytes = int(rowBytes & rowBytesMask)
	pm.Flags = rowBytes & flagsMask

	if err = readRect(br, &pm.Bounds); err != nil {
		return err
	}
	if err = br.expect16("pmVersion", 0); err != nil {
		return err
	}
	if err = br.expect16("packType", 0); err != nil {
		return err
	}
	if err = br.expect("packSize", 0); err != nil {
		return err
	}
	if err = br.expect("hRes", FixedResolution); err != nil {
		return err
	}
	if err = br.expect("vRes", FixedResolution); err != nil {
		return err
	}
	if err = br.expect16("pixelType", 0); err != nil {
		return err
	}

	pixelSize, err := br.readU16("pixelSize")
	if err != nil {
		return err
	}
	pm.PixelSize = int(pixelSize)

	if err = br.expect16("cmpCount", 1); err != nil {
		return err
	}
	if pm.CmpSize, err = br.readU16("cmpSize"); err != nil {
		return err
	}
	if err = br.expect("planeBytes", 0); err != nil {
		return err
	}
	if err = br.expect("pmTable", 0); err != nil {
		return err
	}
	if err = br.expect("pmReserved", 0); err != nil {
		return err
	}

	pm.HRes, pm.VRes = FixedResolution, FixedResolution
	pm.CmpCount = 1
	return nil
}

func readBitMapHeader(br *byteReader, p *Plane) error {
	if err := br.expect("baseAddr", 0); err != nil {
		return err
	}
	rowBytes, err := br.readU16("rowBytes")
	if err != nil {
		return err
	}
	p.RowBytes = int(rowBytes)
	p.PixelSize = 1
	return readRect(br, &p.Bounds)
}

func (d *Decoder) readPlaneData(br *byteReader, p *Plane, name string) ([]byte, error) {
	n := p.RowBytes * p.Bounds.Dy()
	if n <= 0 {
		return nil, fmt.Errorf("could not size %s pixels: %w",
			name, invalid("%d rows of %d bytes", p.Bounds.Dy(), p.RowBytes))
	}

	limit := d.MaxPlaneBytes
	if limit <= 0 {
		limit = DefaultMaxPlaneBytes
	}
	if n > limit {
		return nil, fmt.Errorf("could not allocate %d bytes for %s pixels (limit %d): %w", n, name, limit, ErrAllocation)
	}

	buf, err := br.readBytes(n, name+" pixels")
	if err != nil {
		return nil, fmt.Errorf("could not read %s pixels: %w", name, err)
	}
	return buf, nil
}

func readColorTable(br *byteReader, t *ColorTable) error {
	var err error
	if t.Seed, err = br.readU32("ctSeed"); err != nil {
		return err
	}
	if t.Flags, err = br.readU16("ctFlags"); err != nil {
		return err
	}
	if t.Size, err = br.readU16("ctSize"); err != nil {
		return err
	}

	count := int(t.Size) + 1
	t.Entries = make([]ColorEntry, count)
	for i := range t.Entries {
		e := &t.Entries[i]
		for _, dst := range []*uint16{&e.Value, &e.Red, &e.Green, &e.Blue} {
			if *dst, err = br.readU16(fmt.Sprintf("color %d/%d", i, count)); err != nil {
				return err
			}
		}
	}
	return nil
}
