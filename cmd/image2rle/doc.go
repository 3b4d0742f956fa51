// Package main hosts the image2rle command.
//
// The root command converts every image named on the command line into a
// Game of Life RLE pattern written beside it. Subcommands inspect existing
// pattern files and scaffold or validate the TOML configuration. Flags given
// on the command line override configured values for that run only.
package main
