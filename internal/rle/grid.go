package rle

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid would have a non-positive
// width or height.
var ErrInvalidDimensions = errors.New("rle: grid dimensions must be positive")

// Grid is a row-major rectangle of cell states. True means alive.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid allocates an all-dead grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{width: width, height: height, cells: make([]bool, width*height)}, nil
}

// GridFromRows builds a grid from equally sized rows.
func GridFromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("rle: row %d has %d cells, want %d", y, len(row), g.width)
		}
		copy(g.Row(y), row)
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Row returns the backing slice for row y. Writes through it modify the grid.
func (g *Grid) Row(y int) []bool {
	start := y * g.width
	return g.cells[start : start+g.width]
}

func (g *Grid) At(x, y int) bool {
	return g.cells[y*g.width+x]
}

func (g *Grid) Set(x, y int, alive bool) {
	g.cells[y*g.width+x] = alive
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
