// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// The display mixes two unit systems on purpose: memory comes from
// /proc/meminfo and is shown in binary gibibytes (2^30 bytes), while
// swap and storage come from byte-counting kernel interfaces and are
// shown in decimal gigabytes (10^9 bytes). That matches what users of
// the respective interfaces expect; do not unify the two.
const (
	kibPerGiB  = 1024 * 1024
	bytesPerGB = 1e9
)

// unknownField is the fallback FieldValue for a probe whose source is
// absent or unparseable.
const unknownField = "unknown"

// kibToGiB converts a kibibyte count to binary gibibytes.
func kibToGiB(kib uint64) float64 {
	return float64(kib) / kibPerGiB
}

// bytesToGB converts a byte count to decimal gigabytes.
func bytesToGB(b uint64) float64 {
	return float64(b) / bytesPerGB
}

// formatRatio renders a used/total pair to one decimal digit, e.g.
// "3.9 GiB / 7.8 GiB".
func formatRatio(used, total float64) string {
	return fmt.Sprintf("%.1f GiB / %.1f GiB", used, total)
}

// formatUptime renders a seconds count as "{H}h {M}m". Days are not
// broken out; 50 hours reads "50h 0m".
func formatUptime(seconds float64) string {
	minutes := uint64(seconds / 60)
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// PadRight pads a string with spaces to reach a minimum display width.
// Width is measured in terminal columns (wide runes count double), not
// bytes, so label columns stay aligned.
//
// Example: PadRight("OS", 8) returns "OS      "
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
