package convert

// Normalized bounds of the control space.
const (
	NormMin float32 = 0
	NormMax float32 = 1
)

// Converter maps one parameter between normalized and physical space.
// It is a plain value: copies are independent and every method is a pure
// read, so a Converter can be shared across goroutines without locking.
type Converter struct {
	rng   Range
	kind  Kind
	curve ScaleCurve
}

type options struct {
	mid    float32
	hasMid bool
}

// Option configures a Converter at construction.
type Option func(*options)

// WithMid skews the mapping so that normalized 0.5 maps to mid.
func WithMid(mid float32) Option {
	return func(o *options) {
		o.mid = mid
		o.hasMid = true
	}
}

// New creates a converter for [min, max]. Without WithMid the mapping is
// linear. See the package documentation for preconditions.
func New(min, max float32, kind Kind, opts ...Option) Converter {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	curve := LinearCurve()
	if o.hasMid {
		curve = NewScaleCurve(min, max, o.mid)
	}

	return Converter{
		rng:   NewRange(min, max),
		kind:  kind,
		curve: curve,
	}
}

// NewLinear creates an unskewed converter.
func NewLinear(min, max float32, kind Kind) Converter {
	return New(min, max, kind)
}

// NewLog creates a continuous converter whose midpoint sits at mid.
func NewLog(min, max, mid float32) Converter {
	return New(min, max, Continuous, WithMid(mid))
}

// NewList creates a stepped converter over item indices 0..itemCount-1.
func NewList(itemCount int) Converter {
	return New(0, float32(itemCount-1), Stepped)
}

// ToPhysical converts a normalized value to physical space. The input is
// clamped to [0,1]; the output is not clamped again.
func (c Converter) ToPhysical(normalized float32) float32 {
	v := clamp(normalized, NormMin, NormMax)
	v = c.curve.ScaleUp(v)
	v = c.rng.Up(v)
	return c.kind.Quantize(v)
}

// ToNormalized converts a physical value to normalized space. Stepped
// values are rounded before the down transform so the result lands on a
// valid step. The output is not clamped to [0,1].
func (c Converter) ToNormalized(physical float32) float32 {
	v := c.rng.Clamp(physical)
	v = c.kind.Quantize(v)
	v = c.rng.Down(v)
	return c.curve.ScaleDown(v)
}

// ToDisplay formats a physical value. A negative precision selects
// DefaultPrecision.
func (c Converter) ToDisplay(physical float32, precision int) string {
	return FormatValue(physical, precision)
}

// FromDisplay parses a display string, returning Min() if it does not hold a
// number.
func (c Converter) FromDisplay(s string) float32 {
	return ParseValue(s, c.rng.min)
}

// NumSteps returns 0 for continuous converters and the truncated span
// max-min for stepped ones.
func (c Converter) NumSteps() int {
	return c.kind.steps(c.rng)
}

// Min returns the configured minimum.
func (c Converter) Min() float32 { return c.rng.min }

// Max returns the configured maximum.
func (c Converter) Max() float32 { return c.rng.max }

// Kind returns the quantization kind.
func (c Converter) Kind() Kind { return c.kind }

// Range returns the underlying range.
func (c Converter) Range() Range { return c.rng }

// Curve returns the scale curve.
func (c Converter) Curve() ScaleCurve { return c.curve }
