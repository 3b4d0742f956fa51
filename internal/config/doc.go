// Package config loads, normalizes, and validates image2rle configuration.
//
// Settings come from TOML at ~/.config/image2rle/config.toml, falling back to
// ./image2rle.toml, with repository defaults filling anything unset. A missing
// file is fine: the defaults reproduce the plain command-line behaviour. The
// IMAGE2RLE_LOG_LEVEL environment variable overrides the configured level.
package config
