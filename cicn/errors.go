package cicn

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF         = errors.New("unexpected end of input")
	ErrInvalidFormat         = errors.New("invalid cicn format")
	ErrAllocation            = errors.New("buffer allocation refused")
	ErrUnsupportedPixelDepth = errors.New("unsupported pixel depth")
)

// UnresolvedIndexError reports a color plane pixel whose palette index has
// no entry in the color table. It is recoverable: the pixel is skipped.
type UnresolvedIndexError struct {
	X, Y  int
	Index uint16
}

func (e *UnresolvedIndexError) Error() string {
	return fmt.Sprintf("no color table entry for index %d at (%d, %d)", e.Index, e.X, e.Y)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, args...))
}
