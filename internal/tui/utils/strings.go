package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// TruncateString cuts s to at most width display cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// Ellipsize cuts s to width cells, ending in "..." when something was cut.
func Ellipsize(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return strings.Repeat(".", max(width, 0))
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads or cuts s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// TruncateANSI cuts a styled string to width cells, keeping escape sequences
// intact.
func TruncateANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.String(s, uint(width))
}
