package convert

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyRange indicates min == max, or a bound that is not finite.
	ErrEmptyRange = errors.New("convert: range min must differ from max")
	// ErrMidOutOfRange indicates a midpoint that is not strictly between min
	// and max.
	ErrMidOutOfRange = errors.New("convert: midpoint must lie strictly between min and max")
)

// CheckRange reports whether [min, max] satisfies the converter
// precondition. Constructors never call it.
func CheckRange(min, max float32) error {
	if !finite(min) || !finite(max) || min == max {
		return fmt.Errorf("%w: min=%g max=%g", ErrEmptyRange, min, max)
	}
	return nil
}

// CheckMid reports whether mid yields a well-defined skew factor for
// [min, max].
func CheckMid(min, max, mid float32) error {
	if err := CheckRange(min, max); err != nil {
		return err
	}
	lo, hi := min, max
	if hi < lo {
		lo, hi = hi, lo
	}
	if !(mid > lo && mid < hi) {
		return fmt.Errorf("%w: min=%g max=%g mid=%g", ErrMidOutOfRange, min, max, mid)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
