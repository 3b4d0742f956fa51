// Package logging assembles structured slog loggers for image2rle.
//
// It owns the console and JSON handlers, maps configured level strings onto
// slog levels, and exposes attribute helpers plus a session-aware WithContext
// so every line of one invocation carries the same session_id. Console output
// goes to stderr; stdout belongs to the converted file list.
//
// NewNop gives tests and optional wiring a logger that cannot fail.
package logging
