package cicn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// byteReader pulls big-endian fields from a forward-only stream and keeps
// track of the offset for error messages.
type byteReader struct {
	r   io.Reader
	off int64
	buf [4]byte
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{r: r}
}

func (br *byteReader) fill(p []byte, field string) error {
	n, err := io.ReadFull(br.r, p)
	br.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("not enough bytes to read %s at offset %d (%d/%d): %w",
				field, br.off-int64(n), n, len(p), ErrUnexpectedEOF)
		}
		return fmt.Errorf("could not read %s at offset %d: %w", field, br.off-int64(n), err)
	}
	return nil
}

func (br *byteReader) readU16(field string) (uint16, error) {
	if err := br.fill(br.buf[:2], field); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(br.buf[:2]), nil
}

// readU32 composes two big-endian halves, high half first.
func (br *byteReader) readU32(field string) (uint32, error) {
	hi, err := br.readU16(field)
	if err != nil {
		return 0, err
	}
	lo, err := br.readU16(field)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

func (br *byteReader) readBytes(n int, field string) ([]byte, error) {
	buf := make([]byte, n)
	if err := br.fill(buf, field); err != nil {
		return nil, err
	}
	return buf, nil
}

// expect reads a 32-bit field and checks it against a fixed value.
func (br *byteReader) expect(field string, want uint32) error {
	v, err := br.readU32(field)
	if err != nil {
		return err
	}
	if v != want {
		return invalid("%s at offset %d is 0x%08X, expected 0x%08X", field, br.off-4, v, want)
	}
	return nil
}

func (br *byteReader) expect16(field string, want uint16) error {
	v, err := br.readU16(field)
	if err != nil {
		return err
	}
	if v != want {
		return invalid("%s at offset %d is %d, expected %d", field, br.off-2, v, want)
	}
	return nil
}
