package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"image2rle/internal/convert"
	"image2rle/internal/imaging"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
)

// cliReporter prints each output path on stdout and a diagnostic for every
// skipped input on stderr.
type cliReporter struct {
	out      io.Writer
	errOut   io.Writer
	colorize bool
}

func newCLIReporter(out, errOut io.Writer) *cliReporter {
	return &cliReporter{out: out, errOut: errOut, colorize: shouldColorize(errOut)}
}

func (r *cliReporter) Converted(res convert.Result) {
	fmt.Fprintln(r.out, res.Output)
}

func (r *cliReporter) Skipped(input string, err error) {
	reason := err
	var decodeErr *imaging.DecodeError
	if errors.As(err, &decodeErr) && decodeErr.Err != nil {
		reason = decodeErr.Err
	}
	line := fmt.Sprintf("Cannot read %q: %v", input, reason)
	if r.colorize {
		line = ansiRed + line + ansiReset
	}
	fmt.Fprintln(r.errOut, line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
