package analyzer

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeSuffixes maps unit suffixes to binary multipliers. Two-letter
// suffixes come first so that "1KB" matches KB rather than bare B.
//
//nolint:gochecknoglobals // Fixed lookup table
var sizeSuffixes = []struct {
	suffix string
	mult   int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"TB", 1 << 40},
	{"B", 1},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"T", 1 << 40},
}

// ParseSize converts a human-readable size such as "10M" or "1.5GB"
// to a byte count. Units are case-insensitive binary multiples
// (K = 1024). A bare integer is taken as bytes.
func ParseSize(s string) (int64, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))

	for _, unit := range sizeSuffixes {
		if !strings.HasSuffix(upper, unit.suffix) {
			continue
		}

		number, err := strconv.ParseFloat(upper[:len(upper)-len(unit.suffix)], 64)
		if err != nil || number < 0 {
			break
		}

		return int64(number * float64(unit.mult)), nil
	}

	number, err := strconv.ParseInt(upper, 10, 64)
	if err != nil || number < 0 {
		return 0, fmt.Errorf("invalid size format %q", s)
	}

	return number, nil
}

// FormatSize renders a byte count in human-readable form with one
// decimal, using binary steps: "0 B", "512.0 B", "1.5 KB", "1.0 TB".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	size := float64(bytes)

	for _, unit := range []string{"B", "KB", "MB", "GB", "TB", "PB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}

		size /= 1024.0
	}

	return fmt.Sprintf("%.1f EB", size)
}
