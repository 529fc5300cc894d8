package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"decicn/cicn"
	"decicn/convert"

	"github.com/alecthomas/kong"
)

const usage = "usage: decicn [pmap|bmap|mask|info|pal] file"

const (
	exitOK = iota
	exitUsage
	exitInput
	exitInvalidFormat
	exitTruncated
	exitPixelDepth
	exitAllocation
)

type cli struct {
	convert.CLICmd `embed:""`

	LogLevel string `help:"Diagnostics verbosity" enum:"debug,info,warn,error" default:"warn"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("decicn"),
		kong.Description("Extracts the color, monochrome and mask images of a cicn resource."),
		kong.Writers(stdout, stderr),
		kong.NoDefaultHelp(),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if _, err = parser.Parse(args); err != nil {
		fmt.Fprintln(stdout, usage)
		return exitUsage
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		fmt.Fprintln(stdout, usage)
		return exitUsage
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if err = c.Run(stdout); err != nil {
		slog.Error("could not convert icon", "error", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, convert.ErrInput):
		return exitInput
	case errors.Is(err, cicn.ErrInvalidFormat):
		return exitInvalidFormat
	case errors.Is(err, cicn.ErrUnexpectedEOF):
		return exitTruncated
	case errors.Is(err, cicn.ErrUnsupportedPixelDepth):
		return exitPixelDepth
	case errors.Is(err, cicn.ErrAllocation):
		return exitAllocation
	}
	return exitInput
}
