package cicn

const (
	SizeOfPixMapHeader     = 50
	SizeOfBitMapHeader     = 14
	SizeOfColorTableHeader = 8
	SizeOfColorSpec        = 8
)

const (
	// FixedResolution is 72 dpi in 16.16 fixed point.
	FixedResolution = 0x00480000

	rowBytesMask = 0x3FFF
	flagsMask    = 0xC000
	pixMapFlag   = 0x8000
)

// Rect is a QuickDraw rectangle. Coordinates are signed.
type Rect struct {
	Top    int16 `yaml:"top"`
	Left   int16 `yaml:"left"`
	Bottom int16 `yaml:"bottom"`
	Right  int16 `yaml:"right"`
}

func (r Rect) Dx() int {
	return int(r.Right) - int(r.Left)
}

func (r Rect) Dy() int {
	return int(r.Bottom) - int(r.Top)
}

// ColorEntry is one slot of a color table. Channels use the full 16-bit range.
type ColorEntry struct {
	Value uint16
	Red   uint16
	Green uint16
	Blue  uint16
}

type ColorTable struct {
	Seed  uint32
	Flags uint16

	// Size is the number of entries minus one.
	Size    uint16
	Entries []ColorEntry
}

// Lookup returns the first entry whose Value matches index.
func (t *ColorTable) Lookup(index uint16) (ColorEntry, bool) {
	for _, e := range t.Entries {
		if e.Value == index {
			return e, true
		}
	}
	return ColorEntry{}, false
}

// Plane is one packed image of an icon. RowBytes is the byte stride with the
// packing flags already removed; Flags keeps them (only set on the color plane).
type Plane struct {
	RowBytes  int
	Flags     uint16
	Bounds    Rect
	PixelSize int
	Data      []byte
}

// Index returns the packed value of the pixel at column x, row y.
func (p *Plane) Index(x, y int) (uint16, error) {
	return Unpack(p.Data, p.RowBytes, p.PixelSize, x, y)
}

// PixMap is the color plane with the header fields the format carries
// alongside it.
type PixMap struct {
	Plane

	Version   uint16
	PackType  uint16
	PackSize  uint32
	HRes      uint32
	VRes      uint32
	PixelType uint16
	CmpCount  uint16
	CmpSize   uint16
	Table     ColorTable
}

// Icon is a decoded cicn resource.
type Icon struct {
	PixMap PixMap
	Mask   Plane
	BitMap Plane
}
