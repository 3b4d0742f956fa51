package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
)

// ToGray converts img to 8-bit luma with its origin moved to (0,0). Alpha is
// ignored: a pixel's gray value comes from its stored colour alone.
func ToGray(img image.Image) *image.Gray {
	img = DropAlpha(img)
	g := gift.New(gift.Grayscale())
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// DropAlpha returns img with every pixel fully opaque and its non-premultiplied
// colour unchanged, so white drawn at zero alpha stays white. Images that are
// already opaque are returned as is.
func DropAlpha(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	switch src := img.(type) {
	case *image.NRGBA:
		n := 4 * b.Dx()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(b.Min.X, y):][:n], src.Pix[src.PixOffset(b.Min.X, y):][:n])
		}
	case *image.NRGBA64:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := src.NRGBA64At(x, y)
				dst.SetNRGBA(x, y, color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8)})
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetNRGBA(x, y, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
			}
		}
	}
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// Downscale shrinks img to fit inside the configured maximums, keeping its
// aspect ratio. Images that already fit are returned unchanged.
func Downscale(img image.Image, opts Options) image.Image {
	b := img.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), opts.MaxWidth, opts.MaxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor)
}

func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	scale := 1.0
	if maxWidth > 0 && width > maxWidth {
		scale = float64(maxWidth) / float64(width)
	}
	if maxHeight > 0 && height > maxHeight {
		if s := float64(maxHeight) / float64(height); s < scale {
			scale = s
		}
	}
	if scale >= 1 {
		return width, height
	}
	return max(1, int(float64(width)*scale+0.5)), max(1, int(float64(height)*scale+0.5))
}
