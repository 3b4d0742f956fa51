package rle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed marks input that is not a valid two-state RLE pattern.
var ErrMalformed = errors.New("rle: malformed pattern")

const maxRunCount = 1 << 30

// Parse reads a pattern produced by WriteTo or by any tool emitting the
// two-state RLE dialect. Cells not covered by a run are dead.
func Parse(r io.Reader) (*Pattern, error) {
	br := bufio.NewReader(r)
	var (
		header    Header
		haveDims  bool
		grid      *Grid
		body      bodyDecoder
		completed bool
	)

	for !completed {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read pattern: %w", readErr)
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
			raw := strings.TrimRight(line, "\r\n")
			header.addComment(raw[strings.IndexByte(raw, '#')+1:])
		case !haveDims:
			if err := header.parseDimensions(trimmed); err != nil {
				return nil, err
			}
			var err error
			if grid, err = NewGrid(header.Width, header.Height); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			body.grid = grid
			haveDims = true
		default:
			done, err := body.feed(trimmed)
			if err != nil {
				return nil, err
			}
			completed = done
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	if !haveDims {
		return nil, fmt.Errorf("%w: missing dimension line", ErrMalformed)
	}
	if !completed {
		return nil, fmt.Errorf("%w: missing end-of-pattern token", ErrMalformed)
	}
	return &Pattern{Header: header, Grid: grid}, nil
}

// addComment records the text after "#". Only the single space that follows
// the marker is dropped, so values such as source paths keep trailing blanks.
func (h *Header) addComment(text string) {
	h.Comments = append(h.Comments, text)
	text = strings.TrimPrefix(text, " ")
	// Some writers use "#C" / "#N" style comment prefixes.
	if len(text) > 0 && text[0] >= 'A' && text[0] <= 'Z' && (len(text) == 1 || text[1] == ' ') {
		text = strings.TrimPrefix(text[1:], " ")
	}
	switch {
	case strings.HasPrefix(text, toolPrefix) && h.Tool == "":
		h.Tool = strings.TrimPrefix(text, toolPrefix)
	case strings.HasPrefix(text, sourcePrefix) && h.Source == "":
		h.Source = strings.TrimPrefix(text, sourcePrefix)
	}
}

func (h *Header) parseDimensions(line string) error {
	var sawX, sawY bool
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: dimension field %q", ErrMalformed, strings.TrimSpace(field))
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("%w: %s = %q", ErrMalformed, key, value)
			}
			if key == "x" {
				h.Width, sawX = n, true
			} else {
				h.Height, sawY = n, true
			}
		case "rule":
			h.Rule = value
		}
	}
	if !sawX || !sawY {
		return fmt.Errorf("%w: dimension line %q", ErrMalformed, line)
	}
	return nil
}

type bodyDecoder struct {
	grid  *Grid
	x, y  int
	count int
}

// feed consumes one body line and reports whether "!" was reached.
func (d *bodyDecoder) feed(line string) (bool, error) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= '0' && c <= '9':
			d.count = d.count*10 + int(c-'0')
			if d.count > maxRunCount {
				return false, fmt.Errorf("%w: run count too large", ErrMalformed)
			}
		case c == byte(Alive) || c == byte(Dead):
			n := d.take()
			if d.y >= d.grid.Height() || d.x+n > d.grid.Width() {
				return false, fmt.Errorf("%w: run of %d %c at (%d,%d) exceeds %dx%d",
					ErrMalformed, n, c, d.x, d.y, d.grid.Width(), d.grid.Height())
			}
			if c == byte(Alive) {
				row := d.grid.Row(d.y)
				for k := d.x; k < d.x+n; k++ {
					row[k] = true
				}
			}
			d.x += n
		case c == RowTerminator:
			d.y += d.take()
			d.x = 0
			if d.y > d.grid.Height() {
				return false, fmt.Errorf("%w: %d rows exceed height %d", ErrMalformed, d.y, d.grid.Height())
			}
		case c == EndOfPattern:
			return true, nil
		case c == ' ' || c == '\t' || c == '\r':
		default:
			return false, fmt.Errorf("%w: unexpected %q in body", ErrMalformed, c)
		}
	}
	return false, nil
}

func (d *bodyDecoder) take() int {
	n := d.count
	d.count = 0
	if n == 0 {
		return 1
	}
	return n
}
