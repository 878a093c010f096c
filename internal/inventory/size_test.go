package inventory

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    float64
		expected string
	}{
		{name: "zero", bytes: 0, expected: "0.0 KB"},
		{name: "below one KB", bytes: 512, expected: "0.5 KB"},
		{name: "tiny", bytes: 1, expected: "0.0 KB"},
		{name: "one and a half KB", bytes: 1536, expected: "1.5 KB"},
		{name: "two KB", bytes: 2048, expected: "2.0 KB"},
		{name: "two decimals", bytes: 1280 + 2.56, expected: "1.25 KB"},
		{name: "tie rounds to even down", bytes: 128, expected: "0.12 KB"},
		{name: "tie rounds to even down again", bytes: 640, expected: "0.62 KB"},
		{name: "tie above one KB", bytes: 1152, expected: "1.12 KB"},
		{name: "tie rounds to even up", bytes: 384, expected: "0.38 KB"},
		{name: "one MB", bytes: MB, expected: "1.0 MB"},
		{name: "rounded MB", bytes: 1234567, expected: "1.18 MB"},
		{name: "just below one MB stays in KB", bytes: MB - 1, expected: "1024.0 KB"},
		{name: "two and a half GB", bytes: GB * 2.5, expected: "2.5 GB"},
		{name: "GB is the largest unit", bytes: 5 * 1024 * GB, expected: "5120.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSize(tt.bytes))
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		label    string
		expected float64
	}{
		{label: "0.0 KB", expected: 0},
		{label: "1.5 KB", expected: 1536},
		{label: "1.0 MB", expected: MB},
		{label: "2.5 GB", expected: 2.5 * GB},
		{label: "  3.0   MB ", expected: 3 * MB},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseSize(tt.label)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestParseSize_Malformed(t *testing.T) {
	labels := []string{
		"",
		"1.5",
		"KB",
		"abc KB",
		"1.5 TB",
		"1.5 kb",
		"1.5 KB extra",
	}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			got, err := ParseSize(label)
			require.ErrorIs(t, err, ErrMalformedSize)
			assert.Zero(t, got)
		})
	}
}

func TestParseSize_RoundTripIsBounded(t *testing.T) {
	sizes := []float64{0, 1, 100, 1023, 1024, 1536, 4097, 999_999, MB, 1234567, 77 * MB, GB, 2.5 * GB, 3_333_333_333}

	for _, b := range sizes {
		label := FormatSize(b)

		got, err := ParseSize(label)
		require.NoError(t, err)

		// Two decimals of the chosen unit: at most half a hundredth off.
		bound := 0.005 * unitOf(t, label)
		assert.LessOrEqualf(t, math.Abs(got-b), bound+1e-6, "round trip of %v via %q gave %v", b, label, got)
	}
}

func unitOf(t *testing.T, label string) float64 {
	t.Helper()

	switch {
	case strings.HasSuffix(label, " GB"):
		return GB
	case strings.HasSuffix(label, " MB"):
		return MB
	case strings.HasSuffix(label, " KB"):
		return KB
	}

	t.Fatalf("unexpected label %q", label)

	return 0
}
