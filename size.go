package syskit

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// sizeUnits is the ordered unit ladder for base-1024 scaling. Values past the
// last entry are not divided further; they show as a large number of EB.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

const (
	// DefaultSizePrecision is the fractional digit count used when callers
	// do not specify one.
	DefaultSizePrecision = 2

	// MaxSizePrecision bounds the precision accepted at the CLI boundary.
	MaxSizePrecision = 10
)

// FormatSize converts a non-negative byte count into a human-readable string
// such as "1.50 KB". The value is divided by 1024 until it drops below 1024
// or the unit ladder is exhausted, then rendered with exactly precision
// fractional digits. Rounding follows Go's standard fixed-point formatting,
// which rounds the exact binary value to nearest, ties to even, so
// FormatSize(1536, 0) == "2 KB".
//
// Preconditions (bytes >= 0, precision in [0, MaxSizePrecision]) are the
// caller's responsibility; the command layer validates them before calling.
func FormatSize(bytes int64, precision int) string {
	size, unit := scaleSize(bytes)
	return strconv.FormatFloat(size, 'f', precision, 64) + " " + unit
}

// FormatSizeIn renders the humanized size using the digit and separator
// conventions of the given locale. An unresolvable locale reports ok == false
// and falls back to plain FormatSize output.
func FormatSizeIn(locale string, bytes int64, precision int) (formatted string, ok bool) {
	normalized, ok := NormalizeLocale(locale)
	if !ok {
		return FormatSize(bytes, precision), false
	}

	size, unit := scaleSize(bytes)
	printer := message.NewPrinter(language.Make(normalized))
	decimal := number.Decimal(size,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	)
	return printer.Sprintf("%v", decimal) + " " + unit, true
}

func scaleSize(bytes int64) (float64, string) {
	size := float64(bytes)
	order := 0
	for size >= 1024 && order < len(sizeUnits)-1 {
		size /= 1024
		order++
	}
	return size, sizeUnits[order]
}
