// Package textutil holds small formatting helpers for CLI tables, with
// locale-aware number rendering through golang.org/x/text.
package textutil
