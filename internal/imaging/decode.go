package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images whose bounds hold no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// DecodeError reports an input that could not be turned into a grayscale
// grid. Callers skip the file and move on.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Options tunes decoding. Zero values disable downscaling.
type Options struct {
	MaxWidth  int
	MaxHeight int
}

// Image is a decoded grayscale picture plus the format image.Decode sniffed.
type Image struct {
	Gray   *image.Gray
	Format string
	// SourceWidth and SourceHeight are the dimensions before any downscale.
	SourceWidth  int
	SourceHeight int
}

func (i *Image) Width() int  { return i.Gray.Bounds().Dx() }
func (i *Image) Height() int { return i.Gray.Bounds().Dy() }

// Load opens path and decodes it. Every failure, including a missing file,
// comes back as a *DecodeError.
func Load(path string, opts Options) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, err := Decode(file, opts)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader, opts Options) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, bounds.Dx(), bounds.Dy())
	}
	return &Image{
		Gray:         ToGray(Downscale(DropAlpha(src), opts)),
		Format:       format,
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
	}, nil
}
