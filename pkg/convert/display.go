package convert

import (
	"errors"
	"strconv"
)

// DefaultPrecision is the number of fractional digits used when a caller
// passes a negative precision.
const DefaultPrecision = 2

// FormatValue renders v as a fixed-point decimal with precision fractional
// digits. The output uses '.' as separator and no grouping, independent of
// locale. The value is not clamped.
func FormatValue(v float32, precision int) string {
	return strconv.FormatFloat(float64(v), 'f', resolvePrecision(precision), 32)
}

// AppendValue appends the FormatValue rendering of v to dst.
func AppendValue(dst []byte, v float32, precision int) []byte {
	return strconv.AppendFloat(dst, float64(v), 'f', resolvePrecision(precision), 32)
}

// ParseValue parses a float literal and returns fallback if s is not one.
// Literals beyond the float32 range parse to ±Inf.
func ParseValue(s string, fallback float32) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fallback
	}
	return float32(v)
}

func resolvePrecision(precision int) int {
	if precision < 0 {
		return DefaultPrecision
	}
	return precision
}
