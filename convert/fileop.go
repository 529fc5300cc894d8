package convert

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

type input struct {
	io.Reader
	file *os.File
	dec  *zstd.Decoder
}

func (in *input) Close() error {
	if in.dec != nil {
		in.dec.Close()
	}
	return in.file.Close()
}

// openInput opens a cicn file. A zstd frame is decompressed on the fly.
func openInput(name string, logger *slog.Logger) (*input, error) {
	srcFileInfo, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("cannot stat input file %q: %w", name, err)
	}
	if !srcFileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot read non-regular file %q: %s", srcFileInfo.Name(), srcFileInfo.Mode().String())
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open input file %q: %w", name, err)
	}

	br := bufio.NewReader(f)
	in := &input{Reader: br, file: f}
	if magic, _ := br.Peek(len(zstdMagic)); bytes.Equal(magic, zstdMagic) {
		logger.Debug("input is zstd compressed")
		if in.dec, err = zstd.NewReader(br); err != nil {
			if closeErr := f.Close(); closeErr != nil {
				logger.Error("could not close input file", "error", closeErr)
			}
			return nil, fmt.Errorf("could not open zstd stream %q: %w", name, err)
		}
		in.Reader = in.dec
	}

	return in, nil
}
