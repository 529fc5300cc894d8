package convert

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"decicn/cicn"
	"decicn/palette"
	"decicn/pnm"

	"github.com/alecthomas/kong"
)

// ErrInput wraps failures to acquire the input file.
var ErrInput = errors.New("unreadable input")

type CLICmd struct {
	Mode          string `arg:"" enum:"pmap,bmap,mask,info,pal" help:"Plane to emit: pmap (color), bmap (monochrome), mask, info (header dump) or pal (RIFF palette)"`
	File          string `arg:"" help:"Raw cicn resource, optionally zstd compressed"`
	Comment       string `help:"Comment line written in netpbm headers" default:"converted from cicn"`
	MaxPlaneBytes int    `help:"Refuse pixel buffers larger than this many bytes" default:"67108864"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.MaxPlaneBytes <= 0 {
		return fmt.Errorf("invalid max plane bytes: %d", c.MaxPlaneBytes)
	}
	return nil
}

func (c *CLICmd) Run(stdout io.Writer) error {
	logger := slog.Default().With("file", c.File)

	icon, err := c.load(logger)
	if err != nil {
		return err
	}

	pw := &pnm.Writer{Comment: c.Comment, Logger: logger}
	switch c.Mode {
	case "pmap":
		skipped, err := pw.WritePixMap(stdout, &icon.PixMap)
		if err != nil {
			return err
		}
		if skipped > 0 {
			logger.Warn("pixels skipped", "count", skipped)
		}
	case "bmap":
		return pw.WriteBitMap(stdout, &icon.BitMap)
	case "mask":
		return pw.WriteBitMap(stdout, &icon.Mask)
	case "info":
		return icon.Dump(stdout)
	case "pal":
		n, err := palette.WriteTo(stdout, palette.FromColorTable(&icon.PixMap.Table))
		if err != nil {
			return fmt.Errorf("could not write palette: %w", err)
		}
		logger.Info("palette written", "colors", n)
	default:
		return fmt.Errorf("unsupported mode: %s", c.Mode)
	}
	return nil
}

func (c *CLICmd) load(logger *slog.Logger) (*cicn.Icon, error) {
	in, err := openInput(c.File, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			logger.Error("could not close input file", "error", closeErr)
		}
	}()

	dec := cicn.Decoder{MaxPlaneBytes: c.MaxPlaneBytes, Logger: logger}
	icon, err := dec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", c.File, err)
	}
	return icon, nil
}
