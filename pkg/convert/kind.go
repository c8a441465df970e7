package convert

import "math"

// Kind selects the quantization applied to physical values.
type Kind int32

const (
	// Continuous applies no rounding.
	Continuous Kind = iota
	// Stepped rounds physical values to the nearest integer.
	Stepped
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "Continuous"
	case Stepped:
		return "Stepped"
	default:
		return "Unknown"
	}
}

// Quantize rounds v half away from zero for Stepped and returns it as is
// otherwise.
func (k Kind) Quantize(v float32) float32 {
	if k != Stepped {
		return v
	}
	return float32(math.Round(float64(v)))
}

// steps reports the integer span for Stepped kinds. The count is max-min, not
// max-min+1. A negative or NaN span saturates at 0.
func (k Kind) steps(r Range) int {
	if k != Stepped || !(r.span > 0) {
		return 0
	}
	return int(r.span)
}
