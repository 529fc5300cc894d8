package palette

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadFrom loads every palette of a RIFF PAL document.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	var res []color.Palette
	for {
		id, _, data, err := rd.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return res, fmt.Errorf("could not read chunk #%d: %w", len(res), err)
		}

		if id != dataType {
			return res, fmt.Errorf("unsupported chunk type in #%d: %s", len(res), id)
		}

		pal, err := readPalette(data, len(res))
		if err != nil {
			return res, err
		}
		res = append(res, pal)
	}

	return res, nil
}

func readPalette(r io.Reader, chunk int) (color.Palette, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read header of chunk #%d: %w", chunk, err)
	}

	ver := binary.BigEndian.Uint16(buf[:2])
	if ver != 3 {
		return nil, fmt.Errorf("unsupported palette version in chunk #%d: %d", chunk, ver)
	}

	count := binary.LittleEndian.Uint16(buf[2:])
	res := make(color.Palette, count)
	for i := uint16(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return res, fmt.Errorf("could not read color %d/%d from chunk #%d: %w", i, count, chunk, err)
		}

		res[i] = color.RGBA{
			R: buf[0],
			G: buf[1],
			B: buf[2],
			A: 0xFF,
		}
	}

	return res, nil
}

// WriteTo stores pal as a single chunk RIFF PAL document and returns the
// number of colors written.
func WriteTo(w io.Writer, pal color.Palette) (int64, error) {
	n := 4 + 4 + 4 + 4 + len(pal)*4 // form type + chunk id + chunk size + palVersion + palNumEntries + 4 bytes/color

	if err := writeBytes(w, riffType[:]); err != nil {
		return 0, fmt.Errorf("could not write RIFF magic: %w", err)
	}

	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(n))); err != nil {
		return 0, fmt.Errorf("could not write document size: %w", err)
	}

	if err := writeBytes(w, palType[:]); err != nil {
		return 0, fmt.Errorf("could not write content type: %w", err)
	}

	if err := writeBytes(w, dataType[:]); err != nil {
		return 0, fmt.Errorf("could not write chunk type: %w", err)
	}

	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(4+len(pal)*4))); err != nil {
		return 0, fmt.Errorf("could not write chunk size: %w", err)
	}

	if err := writeBytes(w, []byte{0, 0x03}); err != nil {
		return 0, fmt.Errorf("could not write palette version: %w", err)
	}

	if err := writeBytes(w, binary.LittleEndian.AppendUint16(nil, uint16(len(pal)))); err != nil {
		return 0, fmt.Errorf("could not write number of colors: %w", err)
	}

	for i, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		if err := writeBytes(w, []byte{c.R, c.G, c.B, 0x00}); err != nil {
			return int64(i), fmt.Errorf("could not write color %d/%d: %w", i, len(pal), err)
		}
	}

	return int64(len(pal)), nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
