// Package rle renders boolean cell grids as Game of Life RLE patterns and
// reads them back.
//
// Rows are encoded independently with a two-symbol alphabet: "o" for alive
// cells and "b" for dead ones, each optionally prefixed by a run length
// greater than one, and closed by "$". A row's final dead run is never
// written; readers fill the remainder of a row with dead cells up to the
// declared width. The pattern body ends with "!".
//
// Grid is the in-memory form shared by the encoder, the parser, and the
// image binarizer in package imaging.
package rle
