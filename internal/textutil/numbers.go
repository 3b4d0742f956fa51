package textutil

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1,048,576.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent renders part/whole with one decimal, or "-" when whole is zero.
func Percent(part, whole int) string {
	if whole == 0 {
		return "-"
	}
	return printer.Sprintf("%.1f%%", float64(part)*100/float64(whole))
}

// OrDash returns s, or "-" when s is blank, so table cells never render empty.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
