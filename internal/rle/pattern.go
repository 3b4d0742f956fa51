package rle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

var separator = "# " + strings.Repeat("-", 78)

const (
	toolPrefix   = "RLE file created by "
	sourcePrefix = "Original file: "
)

// Header carries the metadata written ahead of the pattern body.
type Header struct {
	Width  int
	Height int
	// Tool names the program that produced the pattern.
	Tool string
	// Source is the input path as the user supplied it.
	Source string
	// Rule is only populated by Parse; the writer never emits one.
	Rule string
	// Comments holds every "#" line seen by Parse, without the leading "#".
	Comments []string
}

// Pattern is a grid plus the header describing it.
type Pattern struct {
	Header Header
	Grid   *Grid
}

// NewPattern wraps grid with a header derived from its dimensions.
func NewPattern(grid *Grid, tool, source string) *Pattern {
	return &Pattern{
		Header: Header{
			Width:  grid.Width(),
			Height: grid.Height(),
			Tool:   tool,
			Source: source,
		},
		Grid: grid,
	}
}

// WriteTo renders the comment block, the dimension line, every encoded row
// and the end-of-pattern token followed by a newline.
func (p *Pattern) WriteTo(w io.Writer) (int64, error) {
	if p == nil || p.Grid == nil {
		return 0, errors.New("rle: pattern has no grid")
	}
	bw := bufio.NewWriter(w)
	var total int64
	write := func(n int, err error) error {
		total += int64(n)
		return err
	}

	if err := write(fmt.Fprintf(bw, "%s\n# %s%s\n# %s%s\n%s\n",
		separator, toolPrefix, p.Header.Tool, sourcePrefix, p.Header.Source, separator)); err != nil {
		return total, err
	}
	if err := write(fmt.Fprintf(bw, "x = %d, y = %d\n", p.Grid.Width(), p.Grid.Height())); err != nil {
		return total, err
	}

	buf := make([]byte, 0, p.Grid.Width()+8)
	for y := 0; y < p.Grid.Height(); y++ {
		buf = AppendRow(buf[:0], p.Grid.Row(y))
		if err := write(bw.Write(buf)); err != nil {
			return total, err
		}
	}
	if err := write(bw.Write([]byte{EndOfPattern, '\n'})); err != nil {
		return total, err
	}
	return total, bw.Flush()
}

// Bytes renders the pattern into memory.
func (p *Pattern) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders the pattern text. Rendering to memory only fails for a
// pattern without a grid; that case yields a "%!rle(...)" marker in the style
// of fmt's bad-verb output rather than an empty string.
func (p *Pattern) String() string {
	b, err := p.Bytes()
	if err != nil {
		return fmt.Sprintf("%%!rle(%v)", err)
	}
	return string(b)
}
