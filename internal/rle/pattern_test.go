package rle

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

const sampleHeader = "# ------------------------------------------------------------------------------\n" +
	"# RLE file created by image2rle\n" +
	"# Original file: art/glider.png\n" +
	"# ------------------------------------------------------------------------------\n"

func TestPatternWriteTo(t *testing.T) {
	grid, err := GridFromRows([][]bool{
		{false, true, true},
		{true, true, false},
	})
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}

	var buf bytes.Buffer
	n, err := NewPattern(grid, "image2rle", "art/glider.png").WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := sampleHeader + "x = 3, y = 2\nb2o$2o$!\n"
	if buf.String() != want {
		t.Fatalf("unexpected pattern:\n%s\nwant:\n%s", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Fatalf("WriteTo reported %d bytes, want %d", n, len(want))
	}
}

func TestPatternAllDeadRows(t *testing.T) {
	grid, err := NewGrid(5, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	got := NewPattern(grid, "image2rle", "blank.png").String()
	if !strings.HasSuffix(got, "x = 5, y = 3\n$$$!\n") {
		t.Fatalf("unexpected body: %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPatternWriteToPropagatesErrors(t *testing.T) {
	grid, _ := NewGrid(2, 2)
	if _, err := NewPattern(grid, "t", "s").WriteTo(failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
	if _, err := (&Pattern{}).WriteTo(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error for a pattern without grid")
	}
}

func TestPatternStringMarksRenderFailure(t *testing.T) {
	got := (&Pattern{}).String()
	if !strings.HasPrefix(got, "%!rle(") || !strings.Contains(got, "no grid") {
		t.Fatalf("String() = %q, want a %%!rle(...) marker", got)
	}
}

func TestPatternRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	for i := 0; i < 200; i++ {
		width, height := 1+rng.IntN(40), 1+rng.IntN(20)
		grid, err := NewGrid(width, height)
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		for y := 0; y < height; y++ {
			copy(grid.Row(y), randomRow(rng, width))
		}

		encoded := NewPattern(grid, "image2rle", "in.png").String()
		parsed, err := Parse(strings.NewReader(encoded))
		if err != nil {
			t.Fatalf("Parse(%q): %v", encoded, err)
		}
		if !parsed.Grid.Equal(grid) {
			t.Fatalf("round trip mismatch for %dx%d pattern %q", width, height, encoded)
		}
		if parsed.Header.Tool != "image2rle" || parsed.Header.Source != "in.png" {
			t.Fatalf("unexpected parsed header: %+v", parsed.Header)
		}
	}
}

func TestNewGridRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
	if _, err := GridFromRows(nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("GridFromRows(nil) error = %v", err)
	}
	if _, err := GridFromRows([][]bool{{true}, {true, false}}); err == nil {
		t.Fatal("expected ragged rows to be rejected")
	}
}
