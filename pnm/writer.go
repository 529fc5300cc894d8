// Package pnm renders icon planes as plain text netpbm images.
package pnm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"decicn/cicn"
)

const (
	DefaultComment = "converted from cicn"
	MaxChannel     = 65535
)

type Writer struct {
	Comment string
	// Logger receives one warning per unresolved palette index.
	Logger *slog.Logger
}

func (pw *Writer) comment() string {
	if pw.Comment == "" {
		return DefaultComment
	}
	return pw.Comment
}

func (pw *Writer) logger() *slog.Logger {
	if pw.Logger == nil {
		return slog.Default()
	}
	return pw.Logger
}

// WritePixMap emits the color plane as P3, one "R G B" triple per line.
// Pixels whose index has no color table entry are skipped and reported; the
// number of skipped pixels is returned.
func (pw *Writer) WritePixMap(w io.Writer, pm *cicn.PixMap) (int, error) {
	if err := pm.CheckExtent(); err != nil {
		return 0, fmt.Errorf("could not render pixmap: %w", err)
	}

	width, height := pm.Bounds.Dx(), pm.Bounds.Dy()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n# %s\n%d %d\n%d\n", pw.comment(), width, height, MaxChannel)

	var skipped int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx, err := pm.Index(x, y)
			if err != nil {
				return skipped, fmt.Errorf("could not unpack pixel (%d, %d): %w", x, y, err)
			}
			c, ok := pm.Table.Lookup(idx)
			if !ok {
				skipped++
				uerr := &cicn.UnresolvedIndexError{X: x, Y: y, Index: idx}
				pw.logger().Warn("unresolved palette index", "x", x, "y", y, "index", idx, "error", uerr)
				continue
			}
			fmt.Fprintf(bw, "%d %d %d\n", c.Red, c.Green, c.Blue)
		}
	}

	if err := bw.Flush(); err != nil {
		return skipped, fmt.Errorf("could not write pixmap: %w", err)
	}
	return skipped, nil
}

// WriteBitMap emits a one bit plane as P1, one line per row.
func (pw *Writer) WriteBitMap(w io.Writer, p *cicn.Plane) error {
	if p.PixelSize != 1 {
		return fmt.Errorf("could not render bitmap: %w: %d bits per pixel", cicn.ErrUnsupportedPixelDepth, p.PixelSize)
	}
	if err := p.CheckExtent(); err != nil {
		return fmt.Errorf("could not render bitmap: %w", err)
	}

	width, height := p.Bounds.Dx(), p.Bounds.Dy()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P1\n# %s\n%d %d\n", pw.comment(), width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v, err := p.Index(x, y)
			if err != nil {
				return fmt.Errorf("could not unpack pixel (%d, %d): %w", x, y, err)
			}
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte('0' + byte(v))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write bitmap: %w", err)
	}
	return nil
}

