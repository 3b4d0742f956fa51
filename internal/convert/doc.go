// Package convert drives the image to pattern batch.
//
// Each input is decoded, binarized, assembled into an RLE pattern, and written
// next to the source with its extension replaced by ".rle", one file at a
// time. Inputs that cannot be decoded are reported and skipped; a failure to
// write an output stops the batch and is returned to the caller.
package convert
