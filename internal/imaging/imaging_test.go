package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func grayImage(rows [][]uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, v := range row {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestPolarityThreshold(t *testing.T) {
	tests := []struct {
		value  uint8
		bright bool
	}{
		{0, false},
		{127, false},
		{128, true},
		{255, true},
	}
	for _, tt := range tests {
		if got := BrightAlive.Alive(tt.value); got != tt.bright {
			t.Errorf("BrightAlive.Alive(%d) = %v, want %v", tt.value, got, tt.bright)
		}
		if got := DarkAlive.Alive(tt.value); got == tt.bright {
			t.Errorf("DarkAlive.Alive(%d) = %v, want %v", tt.value, got, !tt.bright)
		}
	}
	if PolarityFor(true) != DarkAlive || PolarityFor(false) != BrightAlive {
		t.Fatal("PolarityFor mapped the invert flag incorrectly")
	}
}

func TestBinarizeComplement(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 200, 255, 12},
		{128, 127, 64, 190},
		{90, 91, 250, 3},
	})
	bright, err := Binarize(img, BrightAlive)
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}
	dark, err := Binarize(img, DarkAlive)
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}
	for y := 0; y < bright.Height(); y++ {
		for x := 0; x < bright.Width(); x++ {
			if bright.At(x, y) == dark.At(x, y) {
				t.Fatalf("cell (%d,%d) not complemented", x, y)
			}
		}
	}
	if !bright.At(1, 0) || !bright.At(0, 1) || bright.At(1, 1) {
		t.Fatal("unexpected bright-alive cells")
	}
}

func TestBinarizeSubImage(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	})
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)
	grid, err := Binarize(sub, BrightAlive)
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}
	if grid.Width() != 2 || grid.Height() != 2 {
		t.Fatalf("unexpected size %dx%d", grid.Width(), grid.Height())
	}
	if !grid.At(0, 0) || grid.At(1, 0) || grid.At(0, 1) || !grid.At(1, 1) {
		t.Fatal("sub-image cells mismatch")
	}
}

func TestToGrayUsesLuma(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 6))
	src.Set(5, 5, color.RGBA{255, 255, 255, 255})
	src.Set(6, 5, color.RGBA{0, 0, 0, 255})
	src.Set(7, 5, color.RGBA{255, 0, 0, 255})

	gray := ToGray(src)
	if gray.Bounds().Min != (image.Point{}) {
		t.Fatalf("expected origin at 0,0, got %v", gray.Bounds())
	}
	if got := gray.GrayAt(0, 0).Y; got != 255 {
		t.Fatalf("white -> %d", got)
	}
	if got := gray.GrayAt(1, 0).Y; got != 0 {
		t.Fatalf("black -> %d", got)
	}
	if got := gray.GrayAt(2, 0).Y; got < 74 || got > 78 {
		t.Fatalf("red -> %d, want about 76", got)
	}
}

func encodeNRGBA(t *testing.T, pixels []color.NRGBA) *bytes.Buffer {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, len(pixels), 1))
	for x, c := range pixels {
		src.SetNRGBA(x, 0, c)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return &buf
}

func TestDecodeIgnoresAlpha(t *testing.T) {
	buf := encodeNRGBA(t, []color.NRGBA{
		{255, 255, 255, 0},
		{255, 255, 255, 128},
		{0, 0, 255, 255},
	})
	img, err := Decode(buf, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wantGray := []int{255, 255, 29}
	for x, want := range wantGray {
		if got := int(img.Gray.GrayAt(x, 0).Y); got < want-1 || got > want+1 {
			t.Errorf("gray[%d] = %d, want about %d", x, got, want)
		}
	}

	grid, err := Binarize(img.Gray, BrightAlive)
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}
	wantAlive := []bool{true, true, false}
	for x, want := range wantAlive {
		if got := grid.At(x, 0); got != want {
			t.Errorf("alive[%d] = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeIgnoresAlphaWhenDownscaling(t *testing.T) {
	buf := encodeNRGBA(t, []color.NRGBA{
		{255, 255, 255, 0},
		{255, 255, 255, 0},
		{255, 255, 255, 64},
		{255, 255, 255, 64},
	})
	img, err := Decode(buf, Options{MaxWidth: 2})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width() != 2 {
		t.Fatalf("width = %d, want 2", img.Width())
	}
	for x := 0; x < 2; x++ {
		if got := img.Gray.GrayAt(x, 0).Y; got < 254 {
			t.Errorf("gray[%d] = %d, want white", x, got)
		}
	}
}

func TestDropAlphaKeepsOpaqueImages(t *testing.T) {
	src := grayImage([][]uint8{{10, 20}})
	if DropAlpha(src) != image.Image(src) {
		t.Fatal("opaque image should be returned unchanged")
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{100, 50, 0, 0, 100, 50},
		{100, 50, 200, 200, 100, 50},
		{100, 50, 50, 0, 50, 25},
		{100, 50, 0, 10, 20, 10},
		{100, 50, 40, 10, 20, 10},
		{1000, 1, 10, 0, 10, 1},
	}
	for _, tt := range tests {
		w, h := fitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitWithin(%d,%d,%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestDecodePNGAndBMP(t *testing.T) {
	src := grayImage([][]uint8{{0, 255}, {255, 0}})

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	img, err := Decode(&pngBuf, Options{})
	if err != nil {
		t.Fatalf("Decode png: %v", err)
	}
	if img.Format != "png" || img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("unexpected png decode: %s %dx%d", img.Format, img.Width(), img.Height())
	}

	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	img, err = Decode(&bmpBuf, Options{})
	if err != nil {
		t.Fatalf("Decode bmp: %v", err)
	}
	if img.Format != "bmp" {
		t.Fatalf("unexpected format %q", img.Format)
	}
	if img.Gray.GrayAt(1, 0).Y != 255 || img.Gray.GrayAt(0, 0).Y != 0 {
		t.Fatal("bmp pixels mismatch")
	}
}

func TestDecodeDownscales(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	img, err := Decode(&buf, Options{MaxWidth: 4})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("downscaled to %dx%d, want 4x2", img.Width(), img.Height())
	}
	if img.SourceWidth != 8 || img.SourceHeight != 4 {
		t.Fatalf("source size %dx%d, want 8x4", img.SourceWidth, img.SourceHeight)
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.png")
	_, err := Load(missing, Options{})
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Path != missing || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected decode error: %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if _, err := Load(garbage, Options{}); !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError for garbage, got %v", err)
	}
}
