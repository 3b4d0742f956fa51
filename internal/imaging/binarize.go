package imaging

import (
	"image"

	"image2rle/internal/rle"
)

// Threshold is half of the 8-bit intensity range.
const Threshold = 128

// Polarity selects which side of the threshold counts as alive.
type Polarity int

const (
	// BrightAlive marks pixels at or above Threshold alive.
	BrightAlive Polarity = iota
	// DarkAlive marks pixels below Threshold alive.
	DarkAlive
)

// PolarityFor maps the --invert flag to a polarity.
func PolarityFor(invert bool) Polarity {
	if invert {
		return DarkAlive
	}
	return BrightAlive
}

func (p Polarity) String() string {
	if p == DarkAlive {
		return "dark-alive"
	}
	return "bright-alive"
}

// Alive applies the cutoff to one intensity.
func (p Polarity) Alive(intensity uint8) bool {
	if p == DarkAlive {
		return intensity < Threshold
	}
	return intensity >= Threshold
}

// Binarize maps every pixel of gray to a cell state.
func Binarize(gray *image.Gray, polarity Polarity) (*rle.Grid, error) {
	b := gray.Bounds()
	grid, err := rle.NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		off := gray.PixOffset(b.Min.X, b.Min.Y+y)
		pix := gray.Pix[off : off+b.Dx()]
		cells := grid.Row(y)
		for x, v := range pix {
			cells[x] = polarity.Alive(v)
		}
	}
	return grid, nil
}
