package inventory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary size units used by size labels.
const (
	KB = 1024
	MB = 1024 * KB
	GB = 1024 * MB
)

// ErrMalformedSize is returned by ParseSize for labels it cannot read.
var ErrMalformedSize = errors.New("malformed size label")

// FormatSize renders bytes as "<value> <unit>" using the largest of GB, MB and KB
// whose value is at least 1, rounded to two decimals. Anything below 1 KB is shown in KB.
func FormatSize(bytes float64) string {
	kb := bytes / KB
	mb := kb / 1024
	gb := mb / 1024

	switch {
	case gb >= 1:
		return formatUnit(gb, "GB")
	case mb >= 1:
		return formatUnit(mb, "MB")
	default:
		return formatUnit(kb, "KB")
	}
}

// formatUnit prints the shortest decimal form with at least one fractional digit (1.0, 1.5, 1.25).
func formatUnit(value float64, unit string) string {
	rounded := math.RoundToEven(value*100) / 100

	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s + " " + unit
}

// ParseSize converts a label produced by FormatSize back into bytes.
// The result carries the rounding of the label; it is not the original byte count.
func ParseSize(label string) (float64, error) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSize, label)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformedSize, label, err)
	}

	switch fields[1] {
	case "GB":
		return value * GB, nil
	case "MB":
		return value * MB, nil
	case "KB":
		return value * KB, nil
	default:
		return 0, fmt.Errorf("%w: %q: unknown unit %q", ErrMalformedSize, label, fields[1])
	}
}
