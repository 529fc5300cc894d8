package cicn

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type planeInfo struct {
	RowBytes  int    `yaml:"rowBytes"`
	Flags     string `yaml:"flags,omitempty"`
	Bounds    Rect   `yaml:"bounds"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	PixelSize int    `yaml:"pixelSize,omitempty"`
	CmpCount  uint16 `yaml:"cmpCount,omitempty"`
	CmpSize   uint16 `yaml:"cmpSize,omitempty"`
	Length    int    `yaml:"length,omitempty"`
	Colors    int    `yaml:"colors,omitempty"`
}

type iconInfo struct {
	PixMap planeInfo `yaml:"pixmap"`
	Mask   planeInfo `yaml:"mask"`
	BitMap planeInfo `yaml:"bitmap"`
}

func bitMapInfo(p *Plane) planeInfo {
	return planeInfo{
		RowBytes: p.RowBytes,
		Bounds:   p.Bounds,
		Width:    p.Bounds.Dx(),
		Height:   p.Bounds.Dy(),
	}
}

// Dump writes the decoded header fields of every plane as YAML.
func (ic *Icon) Dump(w io.Writer) error {
	pm := bitMapInfo(&ic.PixMap.Plane)
	pm.Flags = fmt.Sprintf("0x%04X", ic.PixMap.Flags)
	pm.PixelSize = ic.PixMap.PixelSize
	pm.CmpCount = ic.PixMap.CmpCount
	pm.CmpSize = ic.PixMap.CmpSize
	pm.Length = len(ic.PixMap.Data)
	pm.Colors = len(ic.PixMap.Table.Entries)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(iconInfo{
		PixMap: pm,
		Mask:   bitMapInfo(&ic.Mask),
		BitMap: bitMapInfo(&ic.BitMap),
	}); err != nil {
		return fmt.Errorf("could not write icon info: %w", err)
	}
	return enc.Close()
}
