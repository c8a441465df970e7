package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/justyntemme/paramtoolbox/pkg/convert"
)

// Common parameter formatters and parsers. Numbers are rendered with
// convert.FormatValue, so output never depends on locale.

// parseFloat parses a trimmed float32 literal.
func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return float32(v), nil
}

// trimSuffixFold removes suffix from s ignoring case.
func trimSuffixFold(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

// FrequencyFormatter formats frequency values with Hz/kHz
func FrequencyFormatter(hz float32) string {
	if hz >= 1000 {
		return convert.FormatValue(hz/1000, 2) + " kHz"
	}
	return convert.FormatValue(hz, 1) + " Hz"
}

// FrequencyParser parses frequency strings
func FrequencyParser(str string) (float32, error) {
	str = strings.TrimSpace(str)
	if num, ok := trimSuffixFold(str, "khz"); ok {
		val, err := parseFloat(num)
		if err != nil {
			return 0, err
		}
		return val * 1000, nil
	}
	str, _ = trimSuffixFold(str, "hz")
	return parseFloat(str)
}

// DecibelFloor is the level at and below which DecibelFormatter shows -∞.
const DecibelFloor float32 = -80

// DecibelFormatter formats dB values
func DecibelFormatter(db float32) string {
	if db <= DecibelFloor {
		return "-∞ dB"
	}
	return convert.FormatValue(db, 1) + " dB"
}

// DecibelParser parses dB strings
func DecibelParser(str string) (float32, error) {
	if strings.Contains(str, "∞") || strings.Contains(strings.ToLower(str), "inf") {
		return DecibelFloor, nil
	}
	str, _ = trimSuffixFold(strings.TrimSpace(str), "db")
	return parseFloat(str)
}

// PercentFormatter formats percentage values
func PercentFormatter(value float32) string {
	return convert.FormatValue(value, 0) + "%"
}

// PercentParser parses percentage strings
func PercentParser(str string) (float32, error) {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(str), "%"))
}

// TimeFormatter formats millisecond values with appropriate units
func TimeFormatter(ms float32) string {
	switch {
	case ms < 1:
		return convert.FormatValue(ms*1000, 2) + " µs"
	case ms < 1000:
		return convert.FormatValue(ms, 1) + " ms"
	default:
		return convert.FormatValue(ms/1000, 2) + " s"
	}
}

// TimeParser parses time strings into milliseconds
func TimeParser(str string) (float32, error) {
	str = strings.TrimSpace(str)

	if num, ok := trimSuffixFold(str, "µs"); ok {
		val, err := parseFloat(num)
		return val / 1000, err
	}
	if num, ok := trimSuffixFold(str, "us"); ok {
		val, err := parseFloat(num)
		return val / 1000, err
	}
	if num, ok := trimSuffixFold(str, "ms"); ok {
		return parseFloat(num)
	}
	if num, ok := trimSuffixFold(str, "s"); ok {
		val, err := parseFloat(num)
		return val * 1000, err
	}
	return parseFloat(str)
}

// OnOffFormatter formats boolean as On/Off
func OnOffFormatter(value float32) string {
	if value > 0.5 {
		return "On"
	}
	return "Off"
}

// OnOffParser parses On/Off strings
func OnOffParser(str string) (float32, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "on", "yes", "true", "1":
		return 1, nil
	case "off", "no", "false", "0":
		return 0, nil
	default:
		return 0, fmt.Errorf("expected 'on' or 'off', got: %s", str)
	}
}
