// Package imaging decodes raster images into 8-bit grayscale and binarizes
// them into rle grids.
//
// PNG, JPEG and GIF come from the standard library; BMP, TIFF and WebP are
// registered from golang.org/x/image. Grayscale conversion uses the ITU-R 601
// luma weights through the gift filter chain, and an optional nearest
// neighbour downscale keeps hard pixel edges intact. Binarization is a fixed
// per-pixel cutoff at the middle of the 8-bit range; there is no dithering.
package imaging
